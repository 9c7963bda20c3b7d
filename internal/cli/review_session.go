// Package cli implements the interactive review session.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/kioku-app/kioku/internal/analytics"
	"github.com/kioku-app/kioku/internal/content"
	"github.com/kioku-app/kioku/internal/review"
)

// ReviewSession runs one interactive spaced-repetition session over the due
// items of a level.
type ReviewSession struct {
	repo        review.ItemRepository
	sink        analytics.Sink
	stdinReader *bufio.Reader
	bold        *color.Color
	italic      *color.Color
	now         func() time.Time
}

// NewReviewSession creates a session reading learner input from input.
func NewReviewSession(repo review.ItemRepository, sink analytics.Sink, input io.Reader) *ReviewSession {
	return &ReviewSession{
		repo:        repo,
		sink:        sink,
		stdinReader: bufio.NewReader(input),
		bold:        color.New(color.Bold),
		italic:      color.New(color.Italic),
		now:         time.Now,
	}
}

// SeedItems creates the initial learning item for every flashcard that has
// none yet, and returns the complete item set for the level.
func (s *ReviewSession) SeedItems(ctx context.Context, parsed *content.ParsedContent) ([]review.LearningItem, error) {
	items, err := s.repo.FindByLevel(ctx, parsed.Level)
	if err != nil {
		return nil, fmt.Errorf("repo.FindByLevel > %w", err)
	}

	existing := make(map[string]struct{}, len(items))
	for _, item := range items {
		existing[item.ID] = struct{}{}
	}

	for _, card := range parsed.Flashcards {
		if _, ok := existing[card.ID]; ok {
			continue
		}
		item := review.NewItem(card.ID, parsed.Level, card.Front, card.Back, s.now())
		if err := s.repo.Upsert(ctx, &item); err != nil {
			return nil, fmt.Errorf("repo.Upsert(%s) > %w", item.ID, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Run reviews every due item: show the front, reveal the back, grade the
// answer, and persist the rescheduled state. Typing "quit" ends the session
// early; reviewed items stay persisted.
func (s *ReviewSession) Run(ctx context.Context, parsed *content.ParsedContent) error {
	items, err := s.SeedItems(ctx, parsed)
	if err != nil {
		return err
	}

	due := review.DueItems(items, s.now())
	if len(due) == 0 {
		fmt.Println("Nothing is due for review. Come back later!")
		return nil
	}

	fmt.Printf("%d cards due for review.\n\n", len(due))

	reviewed := 0
	for _, item := range due {
		if ctx.Err() != nil {
			break
		}

		s.bold.Printf("Q: %s\n", item.Front)
		fmt.Print("Press enter to reveal the answer...")
		if _, err := s.stdinReader.ReadString('\n'); err != nil {
			return fmt.Errorf("stdinReader.ReadString > %w", err)
		}
		s.italic.Printf("A: %s\n", item.Back)

		quality, quit, err := s.readQuality()
		if err != nil {
			return err
		}
		if quit {
			break
		}

		updated := review.Review(item, quality, s.now())
		if err := s.repo.Upsert(ctx, &updated); err != nil {
			return fmt.Errorf("repo.Upsert(%s) > %w", updated.ID, err)
		}
		reviewed++

		if quality >= 3 {
			color.Green("Scheduled again in %d day(s).", updated.IntervalDays)
		} else {
			color.Red("We'll review this one again tomorrow.")
		}
		fmt.Println()
	}

	fmt.Printf("Session finished: %d card(s) reviewed.\n", reviewed)
	s.sink.Track(analytics.Event{
		Name: "review_session_completed",
		Properties: map[string]string{
			"level":    parsed.Level.String(),
			"reviewed": strconv.Itoa(reviewed),
		},
	})
	return nil
}

// readQuality prompts until the learner enters a grade between 0 and 5, or
// "quit" to stop the session.
func (s *ReviewSession) readQuality() (int, bool, error) {
	for {
		fmt.Printf("How well did you recall it? [0-5, or quit]: ")
		answer, err := s.stdinReader.ReadString('\n')
		if err != nil {
			return 0, false, fmt.Errorf("stdinReader.ReadString > %w", err)
		}
		answer = strings.TrimSpace(answer)
		if strings.EqualFold(answer, "quit") {
			return 0, true, nil
		}

		quality, err := strconv.Atoi(answer)
		if err != nil || quality < 0 || quality > review.MaxQuality {
			fmt.Println("Please enter a number between 0 and 5.")
			continue
		}
		return quality, false, nil
	}
}
