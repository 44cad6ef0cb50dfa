package hours

import (
	"github.com/google/uuid"

	"studyscape/pkg/models"
)

// Entry pairs a spot identifier with its weekly hours for batch
// evaluation.
type Entry struct {
	ID    uuid.UUID
	Hours models.WeeklyHours
}

// FilterOpen returns the IDs of the entries that are open at the
// instant described by tc, preserving input order. One entry's
// malformed hours never affects the others; the result is empty (but
// never nil) when nothing matches.
func FilterOpen(entries []Entry, tc TimeContext) []uuid.UUID {
	open := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		if IsOpenNow(e.Hours, tc) {
			open = append(open, e.ID)
		}
	}
	return open
}
