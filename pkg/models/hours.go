package models

import (
	"database/sql/driver"
	"encoding/json"
)

// DaySchedule represents one day's opening window for a spot.
// Open and Close are zero-padded 24-hour "HH:MM" strings, or the
// case-insensitive sentinel "closed". An empty string means the field
// was not recorded for that day.
type DaySchedule struct {
	Open  string `json:"open,omitempty"`
	Close string `json:"close,omitempty"`
}

// WeeklyHours maps lowercase English day names ("sunday".."saturday")
// to that day's schedule. Keys are looked up case-insensitively by the
// open-now evaluator. A nil map or nil entry means no hours recorded.
type WeeklyHours map[string]*DaySchedule

// Value implements driver.Valuer for JSONB storage
func (w WeeklyHours) Value() (driver.Value, error) {
	if w == nil {
		return nil, nil
	}
	return json.Marshal(w)
}

// Scan implements sql.Scanner. Malformed stored JSON scans to an empty
// map rather than failing the row load.
func (w *WeeklyHours) Scan(value interface{}) error {
	if value == nil {
		*w = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			*w = WeeklyHours{}
			return nil
		}
	}

	if err := json.Unmarshal(bytes, w); err != nil {
		*w = WeeklyHours{}
	}
	return nil
}
