package hours

import (
	"strings"

	"studyscape/pkg/models"
)

const closedSentinel = "closed"

type windowKind int

const (
	// windowUnspecified means no usable schedule exists for the day:
	// no entry, a nil entry, or one of open/close missing.
	windowUnspecified windowKind = iota
	// windowClosed means the day carries the explicit "closed" sentinel.
	windowClosed
	// windowOpen means both bounds are present and neither is the sentinel.
	windowOpen
)

// dayWindow is the resolved form of one day's schedule, so the
// match logic below never re-derives sentinel/absence handling.
type dayWindow struct {
	kind  windowKind
	open  string
	close string
}

// resolveWindow looks up one day in the weekly map (case-insensitive
// key, on both sides) and classifies its schedule.
func resolveWindow(h models.WeeklyHours, day string) dayWindow {
	sched := h[strings.ToLower(day)]
	if sched == nil {
		for k, v := range h {
			if strings.EqualFold(k, day) {
				sched = v
				break
			}
		}
	}
	if sched == nil || sched.Open == "" || sched.Close == "" {
		return dayWindow{kind: windowUnspecified}
	}
	if strings.EqualFold(sched.Open, closedSentinel) || strings.EqualFold(sched.Close, closedSentinel) {
		return dayWindow{kind: windowClosed}
	}
	return dayWindow{kind: windowOpen, open: sched.Open, close: sched.Close}
}

// IsOpenNow reports whether a spot with the given weekly hours is open
// at the instant described by tc. Nil or empty hours means not open.
//
// Times are compared as zero-padded "HH:MM" strings, which orders the
// same as minutes-since-midnight. The open bound is inclusive, the
// close bound exclusive. A window whose close precedes its open is an
// overnight window: the part from open to midnight is matched via
// today's schedule, the part from midnight to close via yesterday's.
// open == close never matches.
func IsOpenNow(h models.WeeklyHours, tc TimeContext) bool {
	if len(h) == 0 {
		return false
	}

	now := tc.CurrentTime

	today := resolveWindow(h, tc.DayOfWeek)
	if today.kind == windowOpen {
		switch {
		case today.open < today.close:
			if now >= today.open && now < today.close {
				return true
			}
		case today.open > today.close:
			if now >= today.open {
				return true
			}
		}
	}

	yesterday := resolveWindow(h, tc.YesterdayDayOfWeek)
	if yesterday.kind == windowOpen && yesterday.open > yesterday.close {
		if now < yesterday.close {
			return true
		}
	}

	return false
}
