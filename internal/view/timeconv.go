package view

import (
	"fmt"
	"time"
)

// TimeLayout is the layout booking timestamps use at rest and on screen.
const TimeLayout = "2006-01-02 15:04:05"

// wireClockLayout is how the server expects since/until query values:
// the date-T-time form with underscores instead of colons.
const wireClockLayout = "2006-01-02T15_04_05"

// TimeConverter turns naive UTC timestamp strings into wall-clock strings
// for one target zone. It is pure: same input and zone, same output.
type TimeConverter struct {
	loc *time.Location
}

func NewTimeConverter(loc *time.Location) TimeConverter {
	if loc == nil {
		loc = time.Local
	}
	return TimeConverter{loc: loc}
}

// ToLocal converts a UTC timestamp string to the converter's zone, keeping
// the layout.
func (c TimeConverter) ToLocal(utc string) (string, error) {
	const op = "view.TimeConverter.ToLocal"

	t, err := time.ParseInLocation(TimeLayout, utc, time.UTC)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return t.In(c.loc).Format(TimeLayout), nil
}
