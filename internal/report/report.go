package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"daywork/internal/clock"
	"daywork/internal/schedule"
)

// Row is one editable interval as raw text, exactly as the user typed it.
// A fully blank row is ignored; a blank end marks the open interval.
type Row struct {
	Start string
	End   string
}

// Result is a complete evaluation of the day's rows at one moment. Given
// the same rows, target text and now, Evaluate always produces an
// identical Result.
type Result struct {
	Date   time.Time
	Now    time.Time
	Target int

	// RowNotes holds one annotation per input row: "", "OK",
	// "Start required", a parse error, or the open-interval note.
	RowNotes []string
	// Issues holds the collection-level validation messages, deduplicated
	// by kind, in the order the validator found them.
	Issues []string
	// TargetNote is set when the target text was invalid and the default
	// was used instead.
	TargetNote string
	// Status is the single line a user should see: the joined problems,
	// "Fix invalid rows." when only row-level errors exist, or "OK.".
	Status string

	WorkedSeconds    int
	RemainingSeconds int
	OvertimeSeconds  int
	// Ratio is worked/target clamped to [0,1]; 1 when the target is
	// degenerate.
	Ratio float64

	Milestone schedule.Milestone

	rows     []Row
	problems []string
}

// Valid reports whether the totals are meaningful: no collection-level
// issue and no row-level error.
func (r Result) Valid() bool {
	return len(r.problems) == 0
}

func (r Result) WorkedHMS() string    { return clock.FormatHMS(r.WorkedSeconds) }
func (r Result) RemainingHMS() string { return clock.FormatHMS(r.RemainingSeconds) }
func (r Result) OvertimeHMS() string  { return clock.FormatHMS(r.OvertimeSeconds) }

// Percent returns the completion ratio as a whole percentage.
func (r Result) Percent() int {
	return int(r.Ratio * 100)
}

// Evaluate runs the full pipeline over a snapshot of row texts: parse each
// row, validate the resulting schedule, aggregate totals and project the
// next milestone. The schedule's date is the calendar day of now.
func Evaluate(rows []Row, targetText string, now time.Time) Result {
	now = now.Truncate(time.Second)
	day := schedule.NewDay(now)

	res := Result{
		Date:     now,
		Now:      now,
		RowNotes: make([]string, len(rows)),
		rows:     append([]Row(nil), rows...),
	}

	rowErr := false
	for i, row := range rows {
		startTxt := strings.TrimSpace(row.Start)
		endTxt := strings.TrimSpace(row.End)

		if startTxt == "" && endTxt == "" {
			continue // empty row is fine
		}
		if startTxt == "" {
			res.RowNotes[i] = "Start required"
			rowErr = true
			continue
		}

		startT, err := clock.Parse(startTxt)
		if err != nil {
			res.RowNotes[i] = "Start invalid: " + err.Error()
			rowErr = true
			continue
		}

		if endTxt == "" {
			res.RowNotes[i] = "Open interval → using current time " + now.Format("15:04:05")
			day.Intervals = append(day.Intervals, schedule.Interval{Start: startT})
			continue
		}

		endT, err := clock.Parse(endTxt)
		if err != nil {
			res.RowNotes[i] = "End invalid: " + err.Error()
			rowErr = true
			continue
		}

		// Quick semantic check so the row itself carries the message.
		if endT.Seconds() <= startT.Seconds() {
			res.RowNotes[i] = "End must be after Start (no cross-midnight)"
			rowErr = true
			continue
		}

		res.RowNotes[i] = "OK"
		day.Intervals = append(day.Intervals, schedule.Interval{Start: startT, End: &endT})
	}

	target, err := clock.ParseDuration(targetText)
	if err != nil {
		res.TargetNote = fmt.Sprintf("Target invalid: %v (using %s)",
			err, clock.FormatHMS(schedule.DefaultTargetSeconds))
		target = schedule.DefaultTargetSeconds
	}
	day.TargetSeconds = target
	res.Target = target

	seen := map[schedule.IssueKind]bool{}
	for _, issue := range day.Validate(now) {
		if seen[issue.Kind] {
			continue
		}
		seen[issue.Kind] = true
		res.Issues = append(res.Issues, issue.Message())
	}

	// Row-level errors only surface in the status when no collection-level
	// message exists; either way they make the totals undefined.
	res.problems = res.Issues
	if len(res.problems) == 0 && rowErr {
		res.problems = []string{"Fix invalid rows."}
	}
	if len(res.problems) > 0 {
		res.Status = strings.Join(res.problems, " ; ")
	} else {
		res.Status = "OK."
	}

	worked := 0
	if len(res.problems) == 0 {
		w, err := day.TotalWorkedSeconds(now)
		if err != nil {
			// Unreachable for a validated day; the total stays zero.
			res.Status = fmt.Sprintf("Error computing totals: %v", err)
		} else {
			worked = w
		}
	}

	res.WorkedSeconds = worked
	res.RemainingSeconds = max(0, target-worked)
	res.OvertimeSeconds = max(0, worked-target)

	if target > 0 {
		res.Ratio = min(1.0, float64(worked)/float64(target))
	} else {
		res.Ratio = 1.0
	}

	res.Milestone = schedule.ProjectMilestone(worked, target, now)
	return res
}

// Export renders the evaluation as a plain-text summary, one datum per
// line, suitable for pasting elsewhere.
func (r Result) Export() string {
	lines := []string{
		"Date: " + r.Date.Format("2006-01-02"),
		"Now: " + r.Now.Format("15:04:05"),
		"Target: " + clock.FormatHMS(r.Target),
		"Intervals:",
	}
	for _, row := range r.rows {
		s := strings.TrimSpace(row.Start)
		e := strings.TrimSpace(row.End)
		if s == "" && e == "" {
			continue
		}
		if e == "" {
			e = "(open)"
		}
		lines = append(lines, fmt.Sprintf("  - %s → %s", s, e))
	}
	if len(r.problems) > 0 {
		lines = append(lines, "Validation: "+strings.Join(r.problems, " ; "))
	}
	lines = append(lines,
		"Worked: "+r.WorkedHMS(),
		"Remaining: "+r.RemainingHMS(),
		"Overtime: "+r.OvertimeHMS(),
	)
	if r.Milestone.Primary != "" {
		lines = append(lines, "Milestone:", "  "+r.Milestone.Primary)
		if r.Milestone.Secondary != "" {
			lines = append(lines, "  "+r.Milestone.Secondary)
		}
	}
	return strings.Join(lines, "\n")
}

// SortRows returns the rows ordered by their parsed start time, as a new
// slice. Rows with a blank or unparseable start sink to the bottom; the
// sort is stable so equal keys keep their relative order.
func SortRows(rows []Row) []Row {
	out := append([]Row(nil), rows...)
	key := func(row Row) int {
		s := strings.TrimSpace(row.Start)
		if s == "" {
			return 24 * 3600
		}
		t, err := clock.Parse(s)
		if err != nil {
			return 24 * 3600
		}
		return t.Seconds()
	}
	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	return out
}
