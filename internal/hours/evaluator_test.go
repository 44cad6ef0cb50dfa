package hours

import (
	"testing"

	"studyscape/pkg/models"
)

func day(open, close string) *models.DaySchedule {
	return &models.DaySchedule{Open: open, Close: close}
}

var wednesdayNoon = TimeContext{
	DayOfWeek:          "wednesday",
	CurrentTime:        "12:00",
	YesterdayDayOfWeek: "tuesday",
}

func TestIsOpenNowNilHours(t *testing.T) {
	contexts := []TimeContext{
		wednesdayNoon,
		{DayOfWeek: "sunday", CurrentTime: "00:00", YesterdayDayOfWeek: "saturday"},
		{DayOfWeek: "friday", CurrentTime: "23:59", YesterdayDayOfWeek: "thursday"},
	}
	for _, tc := range contexts {
		if IsOpenNow(nil, tc) {
			t.Errorf("nil hours at %s %s: expected false", tc.DayOfWeek, tc.CurrentTime)
		}
		if IsOpenNow(models.WeeklyHours{}, tc) {
			t.Errorf("empty hours at %s %s: expected false", tc.DayOfWeek, tc.CurrentTime)
		}
	}
}

func TestIsOpenNowSameDayWindow(t *testing.T) {
	h := models.WeeklyHours{"wednesday": day("09:00", "17:00")}

	tests := []struct {
		currentTime string
		expected    bool
	}{
		{"12:00", true},
		{"08:59", false},
		{"09:00", true},  // open bound inclusive
		{"17:00", false}, // close bound exclusive
		{"16:59", true},
		{"23:30", false},
		{"00:00", false},
	}

	for _, tt := range tests {
		tc := wednesdayNoon
		tc.CurrentTime = tt.currentTime
		if got := IsOpenNow(h, tc); got != tt.expected {
			t.Errorf("IsOpenNow at %s = %v, expected %v", tt.currentTime, got, tt.expected)
		}
	}
}

func TestIsOpenNowOvernightToday(t *testing.T) {
	h := models.WeeklyHours{"wednesday": day("22:00", "02:00")}

	tests := []struct {
		currentTime string
		expected    bool
	}{
		{"23:30", true},
		{"22:00", true},
		{"21:59", false},
		// Before opening, and wednesday's post-midnight stretch only
		// counts once thursday becomes "today".
		{"01:00", false},
	}

	for _, tt := range tests {
		tc := wednesdayNoon
		tc.CurrentTime = tt.currentTime
		if got := IsOpenNow(h, tc); got != tt.expected {
			t.Errorf("IsOpenNow at %s = %v, expected %v", tt.currentTime, got, tt.expected)
		}
	}
}

func TestIsOpenNowOvernightSpillover(t *testing.T) {
	h := models.WeeklyHours{"tuesday": day("22:00", "02:00")}

	tests := []struct {
		currentTime string
		expected    bool
	}{
		{"01:15", true},
		{"00:00", true},
		{"01:59", true},
		{"02:00", false}, // close bound exclusive
		{"03:00", false},
		{"12:00", false},
	}

	for _, tt := range tests {
		tc := wednesdayNoon
		tc.CurrentTime = tt.currentTime
		if got := IsOpenNow(h, tc); got != tt.expected {
			t.Errorf("IsOpenNow at %s = %v, expected %v", tt.currentTime, got, tt.expected)
		}
	}
}

func TestIsOpenNowSpilloverIgnoresSameDayYesterdayWindow(t *testing.T) {
	// Yesterday's window did not cross midnight, so it contributes
	// nothing this morning.
	h := models.WeeklyHours{"tuesday": day("09:00", "17:00")}
	tc := wednesdayNoon
	tc.CurrentTime = "01:00"
	if IsOpenNow(h, tc) {
		t.Error("expected false: non-overnight yesterday window must not spill over")
	}
}

func TestIsOpenNowClosedSentinel(t *testing.T) {
	for _, sentinel := range []string{"closed", "Closed", "CLOSED"} {
		h := models.WeeklyHours{
			"wednesday": day(sentinel, sentinel),
			"tuesday":   day(sentinel, sentinel),
		}
		if IsOpenNow(h, wednesdayNoon) {
			t.Errorf("sentinel %q: expected false", sentinel)
		}
	}

	// Sentinel in just one field still disables the day.
	h := models.WeeklyHours{"wednesday": day("09:00", "closed")}
	if IsOpenNow(h, wednesdayNoon) {
		t.Error("expected false when close is the sentinel")
	}
}

func TestIsOpenNowCaseInsensitiveDayKeys(t *testing.T) {
	h := models.WeeklyHours{"wednesday": day("09:00", "17:00")}
	for _, dayName := range []string{"wednesday", "Wednesday", "WEDNESDAY"} {
		tc := TimeContext{DayOfWeek: dayName, CurrentTime: "12:00", YesterdayDayOfWeek: "tuesday"}
		if !IsOpenNow(h, tc) {
			t.Errorf("lookup key %q: expected true", dayName)
		}
	}

	// Mixed case on the stored side resolves too.
	stored := models.WeeklyHours{"Wednesday": day("09:00", "17:00")}
	if !IsOpenNow(stored, wednesdayNoon) {
		t.Error(`stored key "Wednesday": expected true`)
	}
}

func TestIsOpenNowMalformedSchedules(t *testing.T) {
	tests := []struct {
		name  string
		hours models.WeeklyHours
	}{
		{"nil day entry", models.WeeklyHours{"wednesday": nil}},
		{"missing close", models.WeeklyHours{"wednesday": day("09:00", "")}},
		{"missing open", models.WeeklyHours{"wednesday": day("", "17:00")}},
		{"open equals close", models.WeeklyHours{"wednesday": day("12:00", "12:00")}},
		{"unrelated day only", models.WeeklyHours{"monday": day("00:00", "23:59")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsOpenNow(tt.hours, wednesdayNoon) {
				t.Error("expected false")
			}
		})
	}
}
