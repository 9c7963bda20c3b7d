package review

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kioku-app/kioku/internal/content"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "mysql")
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

func itemColumns() []string {
	return []string{
		"id", "level", "front", "back", "easiness_factor", "attempts",
		"consecutive_successes", "interval_days", "last_reviewed_at",
		"next_due_at", "created_at", "updated_at",
	}
}

func TestDBItemRepository_FindAll(t *testing.T) {
	now := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantLen   int
		wantError bool
	}{
		{
			name: "returns all rows",
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(itemColumns()).
					AddRow("c1", "n5", "水", "water", 2.5, 0, 0, 1, nil, nil, now, now).
					AddRow("c2", "n5", "火", "fire", 2.6, 3, 3, 6, now, now.AddDate(0, 0, 6), now, now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM learning_items ORDER BY id")).
					WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name: "no rows",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM learning_items ORDER BY id")).
					WillReturnRows(sqlmock.NewRows(itemColumns()))
			},
		},
		{
			name: "query failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM learning_items ORDER BY id")).
					WillReturnError(errors.New("connection refused"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			repo := NewDBItemRepository(db)
			items, err := repo.FindAll(context.Background())
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, items, tt.wantLen)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBItemRepository_FindByLevel(t *testing.T) {
	now := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows(itemColumns()).
		AddRow("c1", "n4", "読む", "to read", 2.5, 1, 1, 1, now, now.AddDate(0, 0, 1), now, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM learning_items WHERE level = ? ORDER BY id")).
		WithArgs(content.LevelN4).
		WillReturnRows(rows)

	repo := NewDBItemRepository(db)
	items, err := repo.FindByLevel(context.Background(), content.LevelN4)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, content.LevelN4, items[0].Level)
	assert.Equal(t, "読む", items[0].Front)
	require.NotNil(t, items[0].NextDueAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBItemRepository_FindByID(t *testing.T) {
	now := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantNil bool
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(itemColumns()).
					AddRow("c1", "n5", "水", "water", 2.5, 0, 0, 1, nil, nil, now, now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM learning_items WHERE id = ?")).
					WithArgs("c1").
					WillReturnRows(rows)
			},
		},
		{
			name: "not found returns nil without error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM learning_items WHERE id = ?")).
					WithArgs("c1").
					WillReturnRows(sqlmock.NewRows(itemColumns()))
			},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			repo := NewDBItemRepository(db)
			item, err := repo.FindByID(context.Background(), "c1")
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, item)
			} else {
				require.NotNil(t, item)
				assert.Equal(t, "c1", item.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBItemRepository_Upsert(t *testing.T) {
	now := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 6)
	item := LearningItem{
		ID:                   "c1",
		Level:                content.LevelN5,
		Front:                "水",
		Back:                 "water",
		EasinessFactor:       2.6,
		Attempts:             2,
		ConsecutiveSuccesses: 2,
		IntervalDays:         6,
		LastReviewedAt:       &now,
		NextDueAt:            &due,
	}

	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO learning_items").
		WithArgs(item.ID, item.Level, item.Front, item.Back, item.EasinessFactor,
			item.Attempts, item.ConsecutiveSuccesses, item.IntervalDays,
			item.LastReviewedAt, item.NextDueAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewDBItemRepository(db)
	require.NoError(t, repo.Upsert(context.Background(), &item))
	assert.NoError(t, mock.ExpectationsWereMet())
}
