package hours

import (
	"fmt"
	"os"
	"time"
)

// dayNames indexed by time.Weekday (Sunday = 0).
var dayNames = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// TimeContext is the single point-in-time reference shared by one
// evaluation batch: today's day name, the current "HH:MM" wall-clock
// time in the service timezone, and yesterday's day name (needed to
// catch overnight windows that spill past midnight).
type TimeContext struct {
	DayOfWeek          string `json:"day_of_week"`
	CurrentTime        string `json:"current_time"`
	YesterdayDayOfWeek string `json:"yesterday_day_of_week"`
}

// NewTimeContext derives a TimeContext from an explicit instant and
// location. The clock is passed in rather than read globally so the
// evaluator can be tested against fixed instants.
func NewTimeContext(now time.Time, loc *time.Location) TimeContext {
	local := now.In(loc)
	idx := int(local.Weekday())
	return TimeContext{
		DayOfWeek:          dayNames[idx],
		CurrentTime:        local.Format("15:04"),
		YesterdayDayOfWeek: dayNames[(idx+6)%7],
	}
}

// LoadServiceLocation loads the fixed service timezone from the
// TIMEZONE environment variable, defaulting to Australia/Melbourne.
// All open-now evaluation happens in this one zone regardless of the
// caller's own timezone.
func LoadServiceLocation() (*time.Location, error) {
	name := os.Getenv("TIMEZONE")
	if name == "" {
		name = "Australia/Melbourne"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}
