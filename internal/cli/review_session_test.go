package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kioku-app/kioku/internal/analytics"
	"github.com/kioku-app/kioku/internal/content"
	mock_review "github.com/kioku-app/kioku/internal/mocks/review"
	"github.com/kioku-app/kioku/internal/review"
)

func newTestSession(t *testing.T, repo review.ItemRepository, input string) (*ReviewSession, time.Time) {
	t.Helper()

	now := time.Date(2025, 8, 15, 9, 0, 0, 0, time.UTC)
	session := NewReviewSession(repo, analytics.NopSink{}, strings.NewReader(input))
	session.now = func() time.Time { return now }
	return session, now
}

func parsedWithCards(cards ...content.Flashcard) *content.ParsedContent {
	return &content.ParsedContent{
		Level:      content.LevelN5,
		Version:    "2025.07.0",
		Flashcards: cards,
	}
}

func TestReviewSession_SeedItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_review.NewMockItemRepository(ctrl)

	parsed := parsedWithCards(
		content.Flashcard{ID: "c1", Front: "水", Back: "water"},
		content.Flashcard{ID: "c2", Front: "火", Back: "fire"},
	)

	// c1 already has state; only c2 is seeded.
	repo.EXPECT().FindByLevel(gomock.Any(), content.LevelN5).Return([]review.LearningItem{
		{ID: "c1", Level: content.LevelN5, Attempts: 3},
	}, nil)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Cond(func(item *review.LearningItem) bool {
		return item.ID == "c2" && item.Attempts == 0 && item.NextDueAt == nil
	})).Return(nil)

	session, _ := newTestSession(t, repo, "")
	items, err := session.SeedItems(context.Background(), parsed)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestReviewSession_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_review.NewMockItemRepository(ctrl)

	parsed := parsedWithCards(content.Flashcard{ID: "c1", Front: "水", Back: "water"})

	repo.EXPECT().FindByLevel(gomock.Any(), content.LevelN5).Return(nil, nil)
	// Seeding the new item, then persisting the graded state.
	repo.EXPECT().Upsert(gomock.Any(), gomock.Cond(func(item *review.LearningItem) bool {
		return item.ID == "c1" && item.Attempts == 0
	})).Return(nil)

	var graded *review.LearningItem
	repo.EXPECT().Upsert(gomock.Any(), gomock.Cond(func(item *review.LearningItem) bool {
		return item.ID == "c1" && item.Attempts == 1
	})).DoAndReturn(func(_ context.Context, item *review.LearningItem) error {
		graded = item
		return nil
	})

	// Enter to reveal, then grade 5.
	session, now := newTestSession(t, repo, "\n5\n")
	require.NoError(t, session.Run(context.Background(), parsed))

	require.NotNil(t, graded)
	assert.Equal(t, 1, graded.ConsecutiveSuccesses)
	assert.Equal(t, 1, graded.IntervalDays)
	require.NotNil(t, graded.NextDueAt)
	assert.Equal(t, now.AddDate(0, 0, 1), *graded.NextDueAt)
}

func TestReviewSession_RunNothingDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_review.NewMockItemRepository(ctrl)

	session, now := newTestSession(t, repo, "")
	nextWeek := now.AddDate(0, 0, 7)

	parsed := parsedWithCards(content.Flashcard{ID: "c1", Front: "水", Back: "water"})
	repo.EXPECT().FindByLevel(gomock.Any(), content.LevelN5).Return([]review.LearningItem{
		{ID: "c1", Level: content.LevelN5, Attempts: 2, NextDueAt: &nextWeek},
	}, nil)

	// No Upsert expectation: nothing is graded.
	require.NoError(t, session.Run(context.Background(), parsed))
}

func TestReviewSession_RunQuitEndsEarly(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_review.NewMockItemRepository(ctrl)

	parsed := parsedWithCards(
		content.Flashcard{ID: "c1", Front: "水", Back: "water"},
		content.Flashcard{ID: "c2", Front: "火", Back: "fire"},
	)

	repo.EXPECT().FindByLevel(gomock.Any(), content.LevelN5).Return(nil, nil)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Cond(func(item *review.LearningItem) bool {
		return item.Attempts == 0
	})).Return(nil).Times(2)

	// Grade the first card, quit on the second.
	var graded []string
	repo.EXPECT().Upsert(gomock.Any(), gomock.Cond(func(item *review.LearningItem) bool {
		return item.Attempts == 1
	})).DoAndReturn(func(_ context.Context, item *review.LearningItem) error {
		graded = append(graded, item.ID)
		return nil
	})

	session, _ := newTestSession(t, repo, "\n4\n\nquit\n")
	require.NoError(t, session.Run(context.Background(), parsed))
	assert.Len(t, graded, 1)
}

func TestReviewSession_RunReprompsOnInvalidGrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_review.NewMockItemRepository(ctrl)

	parsed := parsedWithCards(content.Flashcard{ID: "c1", Front: "水", Back: "water"})

	repo.EXPECT().FindByLevel(gomock.Any(), content.LevelN5).Return(nil, nil)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Cond(func(item *review.LearningItem) bool {
		return item.Attempts == 0
	})).Return(nil)

	var quality int
	repo.EXPECT().Upsert(gomock.Any(), gomock.Cond(func(item *review.LearningItem) bool {
		return item.Attempts == 1
	})).DoAndReturn(func(_ context.Context, item *review.LearningItem) error {
		quality = item.ConsecutiveSuccesses
		return nil
	})

	// "seven" and "9" are rejected before the valid grade.
	session, _ := newTestSession(t, repo, "\nseven\n9\n3\n")
	require.NoError(t, session.Run(context.Background(), parsed))
	assert.Equal(t, 1, quality)
}
