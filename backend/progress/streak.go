package progress

import (
	"fmt"
	"time"
)

// StreakPolicy turns task completion times into a streak length in days.
type StreakPolicy interface {
	Streak(completions []time.Time, now time.Time) int
}

// ConsecutiveDays counts calendar days in Location, walking back from the day
// containing now, that hold at least one completion. A day without any
// completion ends the count, and that includes today.
type ConsecutiveDays struct {
	Location *time.Location
}

func (p ConsecutiveDays) Streak(completions []time.Time, now time.Time) int {
	if len(completions) == 0 {
		return 0
	}
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}

	days := make(map[string]struct{}, len(completions))
	for _, c := range completions {
		days[dayKey(c.In(loc))] = struct{}{}
	}

	local := now.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	streak := 0
	for {
		if _, ok := days[dayKey(day)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FixedStreak always reports Days. It reproduces the legacy dashboard, which
// showed a constant streak of 12 regardless of activity.
type FixedStreak struct {
	Days int
}

const LegacyStreakDays = 12

func (p FixedStreak) Streak(_ []time.Time, _ time.Time) int {
	return p.Days
}

// PolicyFor maps a configured policy name to a StreakPolicy.
func PolicyFor(name string, loc *time.Location) (StreakPolicy, error) {
	switch name {
	case "", "consecutive":
		return ConsecutiveDays{Location: loc}, nil
	case "placeholder":
		return FixedStreak{Days: LegacyStreakDays}, nil
	default:
		return nil, fmt.Errorf("unknown streak policy %q", name)
	}
}
