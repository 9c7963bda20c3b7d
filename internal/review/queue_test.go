package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestDueItems(t *testing.T) {
	now := time.Date(2025, 8, 15, 9, 0, 0, 0, time.UTC)

	never := LearningItem{ID: "never"}
	overdue := LearningItem{ID: "overdue", NextDueAt: timePtr(now.AddDate(0, 0, -3))}
	dueNow := LearningItem{ID: "due-now", NextDueAt: timePtr(now)}
	tomorrow := LearningItem{ID: "tomorrow", NextDueAt: timePtr(now.AddDate(0, 0, 1))}

	due := DueItems([]LearningItem{tomorrow, dueNow, never, overdue}, now)

	require.Len(t, due, 3)
	// Never-reviewed items come first, then by due time.
	assert.Equal(t, "never", due[0].ID)
	assert.Equal(t, "overdue", due[1].ID)
	assert.Equal(t, "due-now", due[2].ID)
	for _, item := range due {
		assert.NotEqual(t, "tomorrow", item.ID)
	}
}

func TestDueItems_Empty(t *testing.T) {
	now := time.Now()
	assert.Empty(t, DueItems(nil, now))
	assert.Empty(t, DueItems([]LearningItem{
		{ID: "future", NextDueAt: timePtr(now.AddDate(0, 0, 7))},
	}, now))
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2025, 8, 15, 9, 0, 0, 0, time.UTC)

	items := []LearningItem{
		{ID: "never"},
		{ID: "overdue", NextDueAt: timePtr(now.AddDate(0, 0, -1))},
		{ID: "in-six-days", NextDueAt: timePtr(now.AddDate(0, 0, 6))},
		{ID: "in-two-days", NextDueAt: timePtr(now.AddDate(0, 0, 2))},
		{ID: "in-ten-days", NextDueAt: timePtr(now.AddDate(0, 0, 10))},
	}

	upcoming := Upcoming(items, now, 7)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "in-two-days", upcoming[0].ID)
	assert.Equal(t, "in-six-days", upcoming[1].ID)
}

func TestMasteryThresholds_Classify(t *testing.T) {
	thresholds := DefaultMasteryThresholds()

	tests := []struct {
		name string
		item LearningItem
		want Mastery
	}{
		{
			name: "never reviewed",
			item: LearningItem{EasinessFactor: DefaultEasinessFactor},
			want: MasteryNew,
		},
		{
			name: "reviewed once and failed",
			item: LearningItem{EasinessFactor: 1.7, Attempts: 1},
			want: MasteryLearning,
		},
		{
			name: "streak met but EF too low",
			item: LearningItem{EasinessFactor: 1.5, Attempts: 10, ConsecutiveSuccesses: 8},
			want: MasteryLearning,
		},
		{
			name: "familiar",
			item: LearningItem{EasinessFactor: 1.9, Attempts: 3, ConsecutiveSuccesses: 2},
			want: MasteryFamiliar,
		},
		{
			name: "proficient",
			item: LearningItem{EasinessFactor: 2.2, Attempts: 5, ConsecutiveSuccesses: 4},
			want: MasteryProficient,
		},
		{
			name: "mastered",
			item: LearningItem{EasinessFactor: 2.6, Attempts: 8, ConsecutiveSuccesses: 6},
			want: MasteryMastered,
		},
		{
			name: "high EF alone is not proficiency",
			item: LearningItem{EasinessFactor: 2.8, Attempts: 2, ConsecutiveSuccesses: 1},
			want: MasteryLearning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, thresholds.Classify(tt.item))
		})
	}
}

func TestMastery_MonotonicOverSuccesses(t *testing.T) {
	now := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	thresholds := DefaultMasteryThresholds()

	item := NewItem("c1", "n5", "水", "water", now)
	previous := thresholds.Classify(item)
	require.Equal(t, MasteryNew, previous)

	// Successive passing reviews never demote an item.
	for i := 0; i < 10; i++ {
		item = Review(item, 4, now)
		current := thresholds.Classify(item)
		assert.GreaterOrEqual(t, int(current), int(previous))
		previous = current
	}
	assert.Equal(t, MasteryMastered, previous)
}

func TestMastery_String(t *testing.T) {
	assert.Equal(t, "new", MasteryNew.String())
	assert.Equal(t, "mastered", MasteryMastered.String())
	assert.Equal(t, "unknown", Mastery(42).String())
}
