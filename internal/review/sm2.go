package review

import (
	"math"
	"time"
)

const (
	DefaultEasinessFactor = 2.5
	MinEasinessFactor     = 1.3

	// MaxQuality is the highest grade a learner can give an answer.
	MaxQuality = 5
	// passingQuality is the lowest grade counted as successful recall.
	passingQuality = 3
)

// UpdateEasinessFactor calculates the new EF from a quality grade using the
// standard SM-2 delta, clamped at MinEasinessFactor.
func UpdateEasinessFactor(ef float64, quality int) float64 {
	if ef == 0 {
		ef = DefaultEasinessFactor
	}

	q := float64(quality)
	delta := 0.1 - (5-q)*(0.08+(5-q)*0.02)

	return math.Max(ef+delta, MinEasinessFactor)
}

// Review applies one review outcome to an item and returns the updated state.
// It is pure and deterministic: all fields change in one transition.
//
// Quality is clamped to [0, 5]. Attempts always increments. On failed recall
// (quality < 3) the streak resets and the item comes back the next day. On
// success the interval follows the SM-2 ladder over the streak: 1 day, then
// 6 days, then round(previous * EF').
func Review(item LearningItem, quality int, now time.Time) LearningItem {
	if quality < 0 {
		quality = 0
	}
	if quality > MaxQuality {
		quality = MaxQuality
	}

	item.Attempts++
	item.EasinessFactor = UpdateEasinessFactor(item.EasinessFactor, quality)

	if quality < passingQuality {
		item.ConsecutiveSuccesses = 0
		item.IntervalDays = 1
	} else {
		item.ConsecutiveSuccesses++
		switch item.ConsecutiveSuccesses {
		case 1:
			item.IntervalDays = 1
		case 2:
			item.IntervalDays = 6
		default:
			item.IntervalDays = int(math.Round(float64(item.IntervalDays) * item.EasinessFactor))
		}
	}

	reviewedAt := now
	dueAt := now.AddDate(0, 0, item.IntervalDays)
	item.LastReviewedAt = &reviewedAt
	item.NextDueAt = &dueAt
	item.UpdatedAt = now
	return item
}
