package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsecutiveDays(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	day := func(offset int, hour int) time.Time {
		return time.Date(2024, time.March, 15+offset, hour, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name        string
		completions []time.Time
		want        int
	}{
		{name: "no completions", want: 0},
		{name: "only today", completions: []time.Time{day(0, 8)}, want: 1},
		{name: "several on one day", completions: []time.Time{day(0, 1), day(0, 2), day(0, 9)}, want: 1},
		{name: "three days running", completions: []time.Time{day(0, 8), day(-1, 23), day(-2, 0)}, want: 3},
		{name: "gap breaks streak", completions: []time.Time{day(0, 8), day(-1, 8), day(-3, 8), day(-4, 8)}, want: 2},
		{name: "nothing today", completions: []time.Time{day(-1, 8), day(-2, 8)}, want: 0},
		{name: "unordered input", completions: []time.Time{day(-2, 8), day(0, 8), day(-1, 8)}, want: 3},
		{name: "across month boundary", completions: []time.Time{day(0, 8), day(-14, 8), day(-15, 8)}, want: 1},
	}

	policy := ConsecutiveDays{Location: time.UTC}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Streak(tt.completions, now))
		})
	}
}

func TestConsecutiveDaysMonthRollover(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	completions := []time.Time{
		time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 28, 9, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 3, ConsecutiveDays{Location: time.UTC}.Streak(completions, now))
}

func TestConsecutiveDaysUsesReferenceTimezone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 2024-03-15 01:00 in Tokyo is still 2024-03-14 in UTC.
	now := time.Date(2024, time.March, 14, 16, 0, 0, 0, time.UTC)
	completions := []time.Time{
		time.Date(2024, time.March, 14, 15, 30, 0, 0, time.UTC), // Mar 15 00:30 Tokyo
		time.Date(2024, time.March, 14, 1, 0, 0, 0, time.UTC),   // Mar 14 10:00 Tokyo
	}

	assert.Equal(t, 2, ConsecutiveDays{Location: tokyo}.Streak(completions, now))
	assert.Equal(t, 1, ConsecutiveDays{Location: time.UTC}.Streak(completions, now))
}

func TestConsecutiveDaysNilLocationIsUTC(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 30, 0, 0, time.UTC)
	completions := []time.Time{time.Date(2024, time.March, 15, 0, 10, 0, 0, time.UTC)}
	assert.Equal(t, 1, ConsecutiveDays{}.Streak(completions, now))
}

func TestFixedStreak(t *testing.T) {
	assert.Equal(t, 12, FixedStreak{Days: LegacyStreakDays}.Streak(nil, time.Now()))
	assert.Equal(t, 0, FixedStreak{}.Streak([]time.Time{time.Now()}, time.Now()))
}

func TestPolicyFor(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	p, err := PolicyFor("consecutive", berlin)
	require.NoError(t, err)
	assert.Equal(t, ConsecutiveDays{Location: berlin}, p)

	p, err = PolicyFor("placeholder", berlin)
	require.NoError(t, err)
	assert.Equal(t, FixedStreak{Days: 12}, p)

	_, err = PolicyFor("weekly", berlin)
	assert.Error(t, err)
}
