package review

import (
	"sort"
	"time"
)

// DueItems returns the items whose next review time has arrived, most urgent
// first. An item with no NextDueAt has never been reviewed and sorts before
// everything else.
func DueItems(items []LearningItem, now time.Time) []LearningItem {
	var due []LearningItem
	for _, item := range items {
		if item.NextDueAt == nil || !item.NextDueAt.After(now) {
			due = append(due, item)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i].NextDueAt, due[j].NextDueAt
		if a == nil {
			return b != nil
		}
		if b == nil {
			return false
		}
		return a.Before(*b)
	})
	return due
}

// Upcoming returns items due after now but within the given number of days,
// soonest first.
func Upcoming(items []LearningItem, now time.Time, withinDays int) []LearningItem {
	horizon := now.AddDate(0, 0, withinDays)

	var upcoming []LearningItem
	for _, item := range items {
		if item.NextDueAt == nil {
			continue
		}
		if item.NextDueAt.After(now) && !item.NextDueAt.After(horizon) {
			upcoming = append(upcoming, item)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].NextDueAt.Before(*upcoming[j].NextDueAt)
	})
	return upcoming
}

// Mastery is the ordered learning tier of an item.
type Mastery int

const (
	MasteryNew Mastery = iota
	MasteryLearning
	MasteryFamiliar
	MasteryProficient
	MasteryMastered
)

func (m Mastery) String() string {
	switch m {
	case MasteryNew:
		return "new"
	case MasteryLearning:
		return "learning"
	case MasteryFamiliar:
		return "familiar"
	case MasteryProficient:
		return "proficient"
	case MasteryMastered:
		return "mastered"
	}
	return "unknown"
}

// masteryTier is one classification step: an item qualifies when both its
// streak and its EF reach the tier's minimums.
type masteryTier struct {
	mastery     Mastery
	minStreak   int
	minEasiness float64
}

// MasteryThresholds classifies items into tiers. Tiers must be listed from
// highest to lowest with non-increasing minimums so that more successes or a
// higher EF never lowers the tier.
type MasteryThresholds struct {
	tiers []masteryTier
}

// DefaultMasteryThresholds returns the standard tier ladder.
func DefaultMasteryThresholds() MasteryThresholds {
	return MasteryThresholds{
		tiers: []masteryTier{
			{mastery: MasteryMastered, minStreak: 6, minEasiness: 2.4},
			{mastery: MasteryProficient, minStreak: 4, minEasiness: 2.1},
			{mastery: MasteryFamiliar, minStreak: 2, minEasiness: 1.8},
		},
	}
}

// Classify returns the item's tier: never-reviewed items are new, reviewed
// items are at least learning, and the highest tier whose streak and EF
// minimums are both met wins.
func (t MasteryThresholds) Classify(item LearningItem) Mastery {
	if item.Attempts == 0 {
		return MasteryNew
	}
	for _, tier := range t.tiers {
		if item.ConsecutiveSuccesses >= tier.minStreak && item.EasinessFactor >= tier.minEasiness {
			return tier.mastery
		}
	}
	return MasteryLearning
}
