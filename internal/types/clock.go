// clock.go
//
// Parsing for the 12-hour slot labels the booking frontend sends,
// e.g. "9:00am-10:00am" or "2:30pm". Only the start of the range matters
// for ordering.

package types

import (
	"fmt"
	"strings"
	"time"
)

// MinuteOfDay is a slot start expressed as minutes since midnight.
type MinuteOfDay int

// EndOfDay sorts after every real clock value. Used as the sort key for
// labels that fail to parse so they sink to the end of the day, stably.
const EndOfDay MinuteOfDay = 1 << 30

var clockLayouts = []string{"3:04pm", "3pm"}

// ParseClockLabel extracts the start time from a slot label and returns it
// as minutes since midnight. The label's substring before the first '-' is
// parsed as a 12-hour clock time ("9:00am", "12:15PM", "9am").
func ParseClockLabel(label string) (MinuteOfDay, error) {
	start := label
	if i := strings.IndexByte(label, '-'); i >= 0 {
		start = label[:i]
	}
	start = strings.ToLower(strings.TrimSpace(start))

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, start); err == nil {
			return MinuteOfDay(t.Hour()*60 + t.Minute()), nil
		}
	}
	return 0, fmt.Errorf("invalid clock label %q", label)
}

// SortKey is ParseClockLabel with the EndOfDay fallback for bad labels.
func SortKey(label string) MinuteOfDay {
	m, err := ParseClockLabel(label)
	if err != nil {
		return EndOfDay
	}
	return m
}
