package schedule

import (
	"sort"
	"time"
)

// DefaultTargetSeconds is the stock full workday of 08:30:00.
const DefaultTargetSeconds = 8*3600 + 30*60

// Day holds the intervals entered for one calendar date plus the target
// duration. It is rebuilt from scratch on every evaluation, never mutated
// incrementally.
type Day struct {
	Date          time.Time
	Intervals     []Interval
	TargetSeconds int
}

// NewDay returns an empty schedule for the calendar day of date with the
// default target.
func NewDay(date time.Time) *Day {
	return &Day{Date: date, TargetSeconds: DefaultTargetSeconds}
}

// IssueKind identifies a class of collection-level validation failure.
type IssueKind int

const (
	// IssueMultipleOpen: more than one interval has a blank end.
	IssueMultipleOpen IssueKind = iota
	// IssueInvalidInterval: an interval's effective end is not after its
	// effective start.
	IssueInvalidInterval
	// IssueOverlap: two intervals overlap after sorting by start.
	IssueOverlap
)

// Issue is a single validation finding. For IssueInvalidInterval the
// offending interval is carried along for identification.
type Issue struct {
	Kind     IssueKind
	Interval Interval
}

// Message returns the human-readable text for the issue.
func (i Issue) Message() string {
	switch i.Kind {
	case IssueMultipleOpen:
		return "Only one open interval is allowed."
	case IssueInvalidInterval:
		return "End must be after Start within the same day (no cross-midnight)."
	case IssueOverlap:
		return "Intervals overlap after sorting."
	}
	return "Unknown validation issue."
}

// SortedIntervals returns a copy of the intervals ordered by start time.
// The receiver is not mutated; the sort is stable.
func (d *Day) SortedIntervals() []Interval {
	out := make([]Interval, len(d.Intervals))
	copy(out, d.Intervals)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Seconds() < out[j].Start.Seconds()
	})
	return out
}

// Validate checks the interval collection as a whole at the evaluation
// moment. It returns every finding in order; an empty result means the
// schedule is valid. Deduplication by kind is left to the caller.
func (d *Day) Validate(now time.Time) []Issue {
	var issues []Issue

	open := 0
	for _, iv := range d.Intervals {
		if iv.IsOpen() {
			open++
		}
	}
	if open > 1 {
		issues = append(issues, Issue{Kind: IssueMultipleOpen})
	}

	// Every interval is resolved independently; a bad one does not stop
	// the others from being checked.
	type span struct {
		start, end time.Time
	}
	var spans []span
	for _, iv := range d.SortedIntervals() {
		startAt := iv.Start.At(d.Date)
		endAt := now
		if iv.End != nil {
			endAt = iv.End.At(d.Date)
		}
		if !endAt.After(startAt) {
			issues = append(issues, Issue{Kind: IssueInvalidInterval, Interval: iv})
		}
		spans = append(spans, span{startAt, endAt})
	}

	// Overlap walk over start-sorted spans. Touching intervals are fine;
	// the first overlap fails the whole set.
	sort.Slice(spans, func(i, j int) bool { return spans[i].start.Before(spans[j].start) })
	for i := 1; i < len(spans); i++ {
		if spans[i].start.Before(spans[i-1].end) {
			issues = append(issues, Issue{Kind: IssueOverlap})
			break
		}
	}

	return issues
}

// TotalWorkedSeconds sums the resolved duration of every interval. The
// total is only meaningful for a day that passed Validate; callers must
// treat it as zero otherwise.
func (d *Day) TotalWorkedSeconds(now time.Time) (int, error) {
	total := 0
	for _, iv := range d.Intervals {
		secs, err := iv.DurationSeconds(d.Date, now)
		if err != nil {
			return 0, err
		}
		total += secs
	}
	return total, nil
}

// RemainingSeconds returns the time still to work to reach the target,
// clamped at zero.
func (d *Day) RemainingSeconds(now time.Time) (int, error) {
	worked, err := d.TotalWorkedSeconds(now)
	if err != nil {
		return 0, err
	}
	return max(0, d.TargetSeconds-worked), nil
}

// OvertimeSeconds returns the time worked beyond the target, clamped at
// zero.
func (d *Day) OvertimeSeconds(now time.Time) (int, error) {
	worked, err := d.TotalWorkedSeconds(now)
	if err != nil {
		return 0, err
	}
	return max(0, worked-d.TargetSeconds), nil
}
