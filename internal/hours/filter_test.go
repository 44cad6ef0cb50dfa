package hours

import (
	"testing"

	"github.com/google/uuid"

	"studyscape/pkg/models"
)

func TestFilterOpenEmptyInput(t *testing.T) {
	got := FilterOpen(nil, wednesdayNoon)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d ids", len(got))
	}
}

func TestFilterOpenPreservesOrder(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	allDay := models.WeeklyHours{"wednesday": day("00:00", "23:59")}

	entries := []Entry{
		{ID: ids[0], Hours: allDay},
		{ID: ids[1], Hours: nil},
		{ID: ids[2], Hours: allDay},
		{ID: ids[3], Hours: models.WeeklyHours{"wednesday": day("closed", "closed")}},
	}

	got := FilterOpen(entries, wednesdayNoon)
	if len(got) != 2 {
		t.Fatalf("expected 2 open ids, got %d", len(got))
	}
	if got[0] != ids[0] || got[1] != ids[2] {
		t.Errorf("result order %v does not match input order of open entries", got)
	}
}

func TestFilterOpenAllOpenAndAllClosed(t *testing.T) {
	allDay := models.WeeklyHours{"wednesday": day("00:00", "23:59")}

	var open []Entry
	var closed []Entry
	var wantIDs []uuid.UUID
	for i := 0; i < 5; i++ {
		id := uuid.New()
		open = append(open, Entry{ID: id, Hours: allDay})
		wantIDs = append(wantIDs, id)
		closed = append(closed, Entry{ID: uuid.New(), Hours: nil})
	}

	got := FilterOpen(open, wednesdayNoon)
	if len(got) != len(wantIDs) {
		t.Fatalf("all-open input: expected %d ids, got %d", len(wantIDs), len(got))
	}
	for i, id := range got {
		if id != wantIDs[i] {
			t.Errorf("all-open input: id[%d] = %v, expected %v", i, id, wantIDs[i])
		}
	}

	if got := FilterOpen(closed, wednesdayNoon); len(got) != 0 {
		t.Errorf("all-closed input: expected empty result, got %d ids", len(got))
	}
}

func TestFilterOpenLateNightScenario(t *testing.T) {
	// Three spots at 23:00 on a Wednesday: a daytime spot already
	// closed, an overnight spot just opened, and one without hours.
	idA, idB, idC := uuid.New(), uuid.New(), uuid.New()
	entries := []Entry{
		{ID: idA, Hours: models.WeeklyHours{"wednesday": day("08:00", "22:00")}},
		{ID: idB, Hours: models.WeeklyHours{"wednesday": day("22:00", "06:00")}},
		{ID: idC, Hours: nil},
	}
	tc := TimeContext{DayOfWeek: "wednesday", CurrentTime: "23:00", YesterdayDayOfWeek: "tuesday"}

	got := FilterOpen(entries, tc)
	if len(got) != 1 || got[0] != idB {
		t.Errorf("expected only the overnight spot %v, got %v", idB, got)
	}
}
