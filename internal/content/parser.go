package content

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// Known flashcard and exercise categories. Upstream content generation is not
// consistent about casing, so unmatched tags are retried case-insensitively.
var knownCategories = []string{
	"vocabulary",
	"grammar",
	"kanji",
	"phrase",
	"listening",
}

// rawDocument is the container shape of a content payload. Unknown fields are
// ignored for forward compatibility.
type rawDocument struct {
	Version       string            `json:"version"`
	Flashcards    []json.RawMessage `json:"flashcards"`
	GrammarPoints []json.RawMessage `json:"grammar_points"`
	Kanji         []json.RawMessage `json:"kanji"`
	Exercises     []json.RawMessage `json:"exercises"`
}

// Parse decodes a payload into typed collections. A record whose required
// fields are missing is dropped from its collection with a logged warning;
// the parse only fails when the payload is not decodable as a container.
func Parse(payload Payload) (*ParsedContent, error) {
	var doc rawDocument
	if err := json.Unmarshal(payload.Data, &doc); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(content container) > %w", err)
	}

	version := doc.Version
	if version == "" {
		version = payload.Version
	}

	parsed := &ParsedContent{
		Level:   payload.Level,
		Version: version,
	}

	for i, raw := range doc.Flashcards {
		var card Flashcard
		if err := json.Unmarshal(raw, &card); err != nil {
			logMalformedRecord("flashcard", i, payload.Level, err)
			continue
		}
		if card.ID == "" || card.Front == "" || card.Back == "" {
			logMalformedRecord("flashcard", i, payload.Level, fmt.Errorf("missing required fields"))
			continue
		}
		card.Category = resolveCategory(card.Category)
		parsed.Flashcards = append(parsed.Flashcards, card)
	}

	for i, raw := range doc.GrammarPoints {
		var point GrammarPoint
		if err := json.Unmarshal(raw, &point); err != nil {
			logMalformedRecord("grammar point", i, payload.Level, err)
			continue
		}
		if point.ID == "" || point.Title == "" {
			logMalformedRecord("grammar point", i, payload.Level, fmt.Errorf("missing required fields"))
			continue
		}
		parsed.GrammarPoints = append(parsed.GrammarPoints, point)
	}

	for i, raw := range doc.Kanji {
		var character KanjiCharacter
		if err := json.Unmarshal(raw, &character); err != nil {
			logMalformedRecord("kanji", i, payload.Level, err)
			continue
		}
		if character.ID == "" || character.Character == "" {
			logMalformedRecord("kanji", i, payload.Level, fmt.Errorf("missing required fields"))
			continue
		}
		parsed.Kanji = append(parsed.Kanji, character)
	}

	for i, raw := range doc.Exercises {
		var exercise Exercise
		if err := json.Unmarshal(raw, &exercise); err != nil {
			logMalformedRecord("exercise", i, payload.Level, err)
			continue
		}
		if exercise.ID == "" || exercise.Prompt == "" ||
			exercise.AnswerIndex < 0 || exercise.AnswerIndex >= len(exercise.Choices) {
			logMalformedRecord("exercise", i, payload.Level, fmt.Errorf("missing required fields"))
			continue
		}
		exercise.Category = resolveCategory(exercise.Category)
		parsed.Exercises = append(parsed.Exercises, exercise)
	}

	return parsed, nil
}

// resolveCategory matches a category tag against the known categories,
// retrying case-insensitively. Unmatched tags are cleared.
func resolveCategory(category string) string {
	if category == "" {
		return ""
	}
	for _, known := range knownCategories {
		if category == known {
			return known
		}
	}
	for _, known := range knownCategories {
		if strings.EqualFold(category, known) {
			return known
		}
	}
	slog.Default().Warn("unknown content category dropped",
		slog.String("category", category))
	return ""
}

func logMalformedRecord(kind string, index int, level Level, err error) {
	slog.Default().Warn("skipping malformed content record",
		slog.String("kind", kind),
		slog.Int("index", index),
		slog.String("level", level.String()),
		slog.Any("error", err))
}
