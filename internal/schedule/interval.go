package schedule

import (
	"errors"
	"fmt"
	"time"

	"daywork/internal/clock"
)

// ErrEndNotAfterStart is returned when an interval's effective end is not
// strictly after its effective start. Because both ends are pinned to the
// same calendar day, this one check also rejects zero-length and
// cross-midnight intervals.
var ErrEndNotAfterStart = errors.New("end must be after start within the same day (no cross-midnight)")

// Interval is a start/end pair of clock times on a single day. A nil End
// marks the open interval: its effective end is the evaluation moment.
type Interval struct {
	Start clock.Time
	End   *clock.Time
}

// IsOpen reports whether the interval has no fixed end.
func (iv Interval) IsOpen() bool {
	return iv.End == nil
}

// Resolve pins the interval to the calendar day of `day` and returns its
// effective start and end instants. For open intervals the end is now.
func (iv Interval) Resolve(day, now time.Time) (time.Time, time.Time, error) {
	startAt := iv.Start.At(day)
	endAt := now
	if iv.End != nil {
		endAt = iv.End.At(day)
	}
	if !endAt.After(startAt) {
		return time.Time{}, time.Time{}, fmt.Errorf("interval %s: %w", iv, ErrEndNotAfterStart)
	}
	return startAt, endAt, nil
}

// DurationSeconds returns the resolved length of the interval in seconds.
func (iv Interval) DurationSeconds(day, now time.Time) (int, error) {
	startAt, endAt, err := iv.Resolve(day, now)
	if err != nil {
		return 0, err
	}
	return int(endAt.Sub(startAt) / time.Second), nil
}

func (iv Interval) String() string {
	if iv.End == nil {
		return iv.Start.String() + " → (open)"
	}
	return iv.Start.String() + " → " + iv.End.String()
}
