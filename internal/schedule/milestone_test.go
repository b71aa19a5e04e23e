package schedule_test

import (
	"strings"
	"testing"
	"time"

	"daywork/internal/schedule"
)

const targetEightThirty = 8*3600 + 30*60

func TestProjectMilestoneBelowTarget(t *testing.T) {
	now := at(14, 0, 0)
	m := schedule.ProjectMilestone(4*3600, targetEightThirty, now)

	if want := "04:30:00 left to reach target 08:30:00."; m.Primary != want {
		t.Errorf("Primary = %q, want %q", m.Primary, want)
	}
	if !strings.Contains(m.Secondary, "18:30:00") {
		t.Errorf("Secondary = %q, want ETA 18:30:00", m.Secondary)
	}
	if !m.ETA.Equal(at(18, 30, 0)) {
		t.Errorf("ETA = %v, want %v", m.ETA, at(18, 30, 0))
	}
}

func TestProjectMilestoneWholeHourCeiling(t *testing.T) {
	now := at(18, 0, 0)
	tests := []struct {
		overtime    int
		wantPrimary string
		wantETA     time.Time
	}{
		// Exactly on a whole hour (including zero): the next milestone is
		// a full hour away.
		{0, "Overtime: 00:00:00. You are already at a whole extra hour.", at(19, 0, 0)},
		{3600, "Overtime: 01:00:00. You are already at a whole extra hour.", at(19, 0, 0)},
		{3599, "Overtime: 00:59:59. 00:00:01 more to reach extra 01:00:00.", at(18, 0, 1)},
		{3601, "Overtime: 01:00:01. 00:59:59 more to reach extra 02:00:00.", at(18, 59, 59)},
	}
	for _, tt := range tests {
		m := schedule.ProjectMilestone(targetEightThirty+tt.overtime, targetEightThirty, now)
		if m.Primary != tt.wantPrimary {
			t.Errorf("overtime %d: Primary = %q, want %q", tt.overtime, m.Primary, tt.wantPrimary)
		}
		if !m.ETA.Equal(tt.wantETA) {
			t.Errorf("overtime %d: ETA = %v, want %v", tt.overtime, m.ETA, tt.wantETA)
		}
	}
}

func TestProjectMilestoneInvalidTarget(t *testing.T) {
	m := schedule.ProjectMilestone(3600, 0, at(14, 0, 0))
	if m.Primary != "Target is 00:00:00 (or invalid)." {
		t.Errorf("Primary = %q", m.Primary)
	}
	if m.Secondary != "" || !m.ETA.IsZero() {
		t.Errorf("want no projection, got Secondary=%q ETA=%v", m.Secondary, m.ETA)
	}
}

func TestProjectMilestoneAssumesWorkingNow(t *testing.T) {
	// The projection is shown even with nothing worked at all: checking
	// the tool means you are working right now.
	now := at(9, 0, 0)
	m := schedule.ProjectMilestone(0, targetEightThirty, now)
	if !m.ETA.Equal(at(17, 30, 0)) {
		t.Errorf("ETA = %v, want %v", m.ETA, at(17, 30, 0))
	}
}
