package hours

import (
	"testing"
	"time"
)

func TestNewTimeContext(t *testing.T) {
	melbourne, err := time.LoadLocation("Australia/Melbourne")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}

	tests := []struct {
		name          string
		instant       time.Time
		loc           *time.Location
		wantDay       string
		wantTime      string
		wantYesterday string
	}{
		{
			name:          "weekday afternoon",
			instant:       time.Date(2025, 7, 16, 14, 30, 0, 0, melbourne), // Wednesday
			loc:           melbourne,
			wantDay:       "wednesday",
			wantTime:      "14:30",
			wantYesterday: "tuesday",
		},
		{
			name:          "sunday wraps yesterday to saturday",
			instant:       time.Date(2025, 7, 13, 9, 5, 0, 0, melbourne), // Sunday
			loc:           melbourne,
			wantDay:       "sunday",
			wantTime:      "09:05",
			wantYesterday: "saturday",
		},
		{
			name:          "single digit hour is zero padded",
			instant:       time.Date(2025, 7, 14, 8, 7, 59, 0, melbourne), // Monday, seconds dropped
			loc:           melbourne,
			wantDay:       "monday",
			wantTime:      "08:07",
			wantYesterday: "sunday",
		},
		{
			name:          "instant converted into target zone",
			instant:       time.Date(2025, 7, 15, 23, 0, 0, 0, time.UTC), // 09:00 Wed in Melbourne (AEST +10)
			loc:           melbourne,
			wantDay:       "wednesday",
			wantTime:      "09:00",
			wantYesterday: "tuesday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := NewTimeContext(tt.instant, tt.loc)
			if tc.DayOfWeek != tt.wantDay {
				t.Errorf("DayOfWeek = %q, expected %q", tc.DayOfWeek, tt.wantDay)
			}
			if tc.CurrentTime != tt.wantTime {
				t.Errorf("CurrentTime = %q, expected %q", tc.CurrentTime, tt.wantTime)
			}
			if tc.YesterdayDayOfWeek != tt.wantYesterday {
				t.Errorf("YesterdayDayOfWeek = %q, expected %q", tc.YesterdayDayOfWeek, tt.wantYesterday)
			}
		})
	}
}

func TestNewTimeContextYesterdayWrapsForEveryDay(t *testing.T) {
	// 2025-07-13 is a Sunday; walk the whole week once.
	for i := 0; i < 7; i++ {
		instant := time.Date(2025, 7, 13+i, 12, 0, 0, 0, time.UTC)
		tc := NewTimeContext(instant, time.UTC)

		wantYesterday := dayNames[(i+6)%7]
		if tc.YesterdayDayOfWeek != wantYesterday {
			t.Errorf("day %s: YesterdayDayOfWeek = %q, expected %q", dayNames[i], tc.YesterdayDayOfWeek, wantYesterday)
		}
	}
}

func TestLoadServiceLocation(t *testing.T) {
	t.Setenv("TIMEZONE", "")
	loc, err := LoadServiceLocation()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.String() != "Australia/Melbourne" {
		t.Errorf("default location = %q, expected Australia/Melbourne", loc.String())
	}

	t.Setenv("TIMEZONE", "Europe/Lisbon")
	loc, err = LoadServiceLocation()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.String() != "Europe/Lisbon" {
		t.Errorf("location = %q, expected Europe/Lisbon", loc.String())
	}

	t.Setenv("TIMEZONE", "Not/AZone")
	if _, err := LoadServiceLocation(); err == nil {
		t.Error("expected error for unknown timezone, got nil")
	}
}
