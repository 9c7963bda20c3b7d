package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kioku-app/kioku/internal/content"
)

// ItemRepository defines operations for persisting learning items.
//
//go:generate mockgen -source=repository.go -destination=../mocks/review/mock_repository.go -package=mock_review
type ItemRepository interface {
	FindAll(ctx context.Context) ([]LearningItem, error)
	FindByLevel(ctx context.Context, level content.Level) ([]LearningItem, error)
	FindByID(ctx context.Context, id string) (*LearningItem, error)
	Upsert(ctx context.Context, item *LearningItem) error
}

// DBItemRepository implements ItemRepository using MySQL.
type DBItemRepository struct {
	db *sqlx.DB
}

// NewDBItemRepository creates a new DBItemRepository.
func NewDBItemRepository(db *sqlx.DB) *DBItemRepository {
	return &DBItemRepository{db: db}
}

// FindAll returns all learning items.
func (r *DBItemRepository) FindAll(ctx context.Context) ([]LearningItem, error) {
	var items []LearningItem
	if err := r.db.SelectContext(ctx, &items, "SELECT * FROM learning_items ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(learning_items) > %w", err)
	}
	return items, nil
}

// FindByLevel returns all learning items for a content level.
func (r *DBItemRepository) FindByLevel(ctx context.Context, level content.Level) ([]LearningItem, error) {
	var items []LearningItem
	if err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM learning_items WHERE level = ? ORDER BY id", level); err != nil {
		return nil, fmt.Errorf("db.SelectContext(learning_items by level) > %w", err)
	}
	return items, nil
}

// FindByID returns a learning item by ID, or nil if not found.
func (r *DBItemRepository) FindByID(ctx context.Context, id string) (*LearningItem, error) {
	var item LearningItem
	err := r.db.GetContext(ctx, &item, "SELECT * FROM learning_items WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(learning_item) > %w", err)
	}
	return &item, nil
}

// Upsert inserts or updates a learning item.
func (r *DBItemRepository) Upsert(ctx context.Context, item *LearningItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO learning_items
			(id, level, front, back, easiness_factor, attempts, consecutive_successes,
			interval_days, last_reviewed_at, next_due_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			easiness_factor = VALUES(easiness_factor),
			attempts = VALUES(attempts),
			consecutive_successes = VALUES(consecutive_successes),
			interval_days = VALUES(interval_days),
			last_reviewed_at = VALUES(last_reviewed_at),
			next_due_at = VALUES(next_due_at)`,
		item.ID, item.Level, item.Front, item.Back, item.EasinessFactor, item.Attempts,
		item.ConsecutiveSuccesses, item.IntervalDays, item.LastReviewedAt, item.NextDueAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert learning_item) > %w", err)
	}
	return nil
}
