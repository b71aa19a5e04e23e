package schedule

import (
	"fmt"
	"time"

	"daywork/internal/clock"
)

// Milestone describes the next meaningful threshold (reaching the target,
// or the next whole overtime hour) and the projected clock time it lands.
type Milestone struct {
	Primary   string
	Secondary string
	ETA       time.Time
}

// secondsToNextWholeHour returns how much additional overtime reaches the
// next whole overtime hour, or 0 when already on a whole hour.
func secondsToNextWholeHour(overtime int) int {
	if overtime <= 0 {
		return 0
	}
	rem := overtime % 3600
	if rem == 0 {
		return 0
	}
	return 3600 - rem
}

// ProjectMilestone projects when the next milestone will be hit, assuming
// continuous work from now on. Whoever evaluates the schedule is taken to
// be working at that moment, whether or not an open interval exists; this
// is a fixed policy, not a bug.
func ProjectMilestone(worked, target int, now time.Time) Milestone {
	if target <= 0 {
		return Milestone{Primary: "Target is 00:00:00 (or invalid)."}
	}

	if worked < target {
		remaining := target - worked
		eta := now.Add(time.Duration(remaining) * time.Second)
		return Milestone{
			Primary: fmt.Sprintf("%s left to reach target %s.",
				clock.FormatHMS(remaining), clock.FormatHMS(target)),
			Secondary: fmt.Sprintf("If you keep working, you'll reach the target at: %s",
				eta.Format("15:04:05")),
			ETA: eta,
		}
	}

	overtime := worked - target
	toNext := secondsToNextWholeHour(overtime)

	if toNext == 0 {
		// Already on a whole overtime hour; project the one after it.
		eta := now.Add(time.Hour)
		return Milestone{
			Primary: fmt.Sprintf("Overtime: %s. You are already at a whole extra hour.",
				clock.FormatHMS(overtime)),
			Secondary: fmt.Sprintf("Next overtime whole-hour milestone (+01:00:00) at: %s",
				eta.Format("15:04:05")),
			ETA: eta,
		}
	}

	nextWhole := overtime + toNext
	eta := now.Add(time.Duration(toNext) * time.Second)
	return Milestone{
		Primary: fmt.Sprintf("Overtime: %s. %s more to reach extra %s.",
			clock.FormatHMS(overtime), clock.FormatHMS(toNext), clock.FormatHMS(nextWhole)),
		Secondary: fmt.Sprintf("If you keep working, you'll reach that at: %s",
			eta.Format("15:04:05")),
		ETA: eta,
	}
}
