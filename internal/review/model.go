// Package review implements the SM-2 spaced-repetition scheduler and the
// review queue built from its item state.
package review

import (
	"time"

	"github.com/kioku-app/kioku/internal/content"
)

// LearningItem is the unit under spaced repetition. Attempts counts every
// review; ConsecutiveSuccesses counts the current streak of quality >= 3
// answers and drives the interval ladder. The two are deliberately separate
// fields. State is mutated only through Review.
type LearningItem struct {
	ID                   string        `db:"id"`
	Level                content.Level `db:"level"`
	Front                string        `db:"front"`
	Back                 string        `db:"back"`
	EasinessFactor       float64       `db:"easiness_factor"`
	Attempts             int           `db:"attempts"`
	ConsecutiveSuccesses int           `db:"consecutive_successes"`
	IntervalDays         int           `db:"interval_days"`
	LastReviewedAt       *time.Time    `db:"last_reviewed_at"`
	NextDueAt            *time.Time    `db:"next_due_at"`
	CreatedAt            time.Time     `db:"created_at"`
	UpdatedAt            time.Time     `db:"updated_at"`
}

// NewItem creates the initial state for a content item: default easiness,
// one-day interval, never reviewed. A nil NextDueAt means due immediately.
func NewItem(id string, level content.Level, front, back string, now time.Time) LearningItem {
	return LearningItem{
		ID:             id,
		Level:          level,
		Front:          front,
		Back:           back,
		EasinessFactor: DefaultEasinessFactor,
		IntervalDays:   1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
