// Package statistics aggregates review-scheduling state into the counts the
// rest of the application displays: due totals, streaks, and the mastery
// distribution.
package statistics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kioku-app/kioku/internal/content"
	"github.com/kioku-app/kioku/internal/review"
)

// Overview holds aggregate review statistics for one content level.
type Overview struct {
	Level           content.Level
	GeneratedAt     time.Time
	TotalItems      int
	DueNow          int
	Upcoming        int
	UpcomingDays    int
	LongestStreak   int
	AverageEasiness float64
	Mastery         map[review.Mastery]int
}

// BuildOverview computes an Overview from the items of one level.
func BuildOverview(
	level content.Level,
	items []review.LearningItem,
	now time.Time,
	upcomingDays int,
	thresholds review.MasteryThresholds,
) Overview {
	overview := Overview{
		Level:        level,
		GeneratedAt:  now,
		TotalItems:   len(items),
		DueNow:       len(review.DueItems(items, now)),
		Upcoming:     len(review.Upcoming(items, now, upcomingDays)),
		UpcomingDays: upcomingDays,
		Mastery:      make(map[review.Mastery]int),
	}

	var easinessSum float64
	for _, item := range items {
		if item.ConsecutiveSuccesses > overview.LongestStreak {
			overview.LongestStreak = item.ConsecutiveSuccesses
		}
		easinessSum += item.EasinessFactor
		overview.Mastery[thresholds.Classify(item)]++
	}
	if len(items) > 0 {
		overview.AverageEasiness = easinessSum / float64(len(items))
	}
	return overview
}

// RenderMarkdown renders the overview as a markdown progress report.
func RenderMarkdown(overview Overview) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Review progress: %s\n\n", strings.ToUpper(overview.Level.String()))
	fmt.Fprintf(&b, "Generated at %s\n\n", overview.GeneratedAt.Format("2006-01-02 15:04"))

	fmt.Fprintf(&b, "## Queue\n\n")
	fmt.Fprintf(&b, "| Metric | Count |\n")
	fmt.Fprintf(&b, "| --- | --- |\n")
	fmt.Fprintf(&b, "| Total items | %d |\n", overview.TotalItems)
	fmt.Fprintf(&b, "| Due now | %d |\n", overview.DueNow)
	fmt.Fprintf(&b, "| Upcoming (%d days) | %d |\n", overview.UpcomingDays, overview.Upcoming)
	fmt.Fprintf(&b, "| Longest streak | %d |\n", overview.LongestStreak)
	fmt.Fprintf(&b, "| Average easiness | %.2f |\n\n", overview.AverageEasiness)

	fmt.Fprintf(&b, "## Mastery\n\n")
	fmt.Fprintf(&b, "| Tier | Items |\n")
	fmt.Fprintf(&b, "| --- | --- |\n")

	tiers := make([]review.Mastery, 0, len(overview.Mastery))
	for tier := range overview.Mastery {
		tiers = append(tiers, tier)
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i] < tiers[j] })
	for _, tier := range tiers {
		fmt.Fprintf(&b, "| %s | %d |\n", tier, overview.Mastery[tier])
	}

	return b.String()
}
