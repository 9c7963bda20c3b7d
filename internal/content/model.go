// Package content provides the learning-content domain model and the payload parser.
package content

import (
	"fmt"
	"strings"
)

// Level is the proficiency tier that namespaces all content and cache entries.
type Level string

const (
	LevelN5 Level = "n5"
	LevelN4 Level = "n4"
	LevelN3 Level = "n3"
	LevelN2 Level = "n2"
	LevelN1 Level = "n1"
)

// levelOrder maps each level to its position, easiest first.
var levelOrder = map[Level]int{
	LevelN5: 0,
	LevelN4: 1,
	LevelN3: 2,
	LevelN2: 3,
	LevelN1: 4,
}

// Levels returns all known levels, easiest first.
func Levels() []Level {
	return []Level{LevelN5, LevelN4, LevelN3, LevelN2, LevelN1}
}

// ParseLevel parses a level string case-insensitively.
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := levelOrder[level]; !ok {
		return "", fmt.Errorf("unknown content level: %q", s)
	}
	return level, nil
}

// Index returns the position of the level in the proficiency ordering.
func (l Level) Index() int {
	return levelOrder[l]
}

func (l Level) String() string {
	return string(l)
}

// FileName returns the payload file name for the level, following the
// <contentkind>_<level>.json convention used by the version manifest.
func (l Level) FileName() string {
	return fmt.Sprintf("content_%s.json", string(l))
}

// Payload is a raw content blob together with its version and level.
type Payload struct {
	Level   Level
	Version string
	Data    []byte
}

// ParsedContent holds the typed collections decoded from one payload.
type ParsedContent struct {
	Level         Level
	Version       string
	Flashcards    []Flashcard
	GrammarPoints []GrammarPoint
	Kanji         []KanjiCharacter
	Exercises     []Exercise
}

// Flashcard is a vocabulary card.
type Flashcard struct {
	ID       string   `json:"id"`
	Front    string   `json:"front"`
	Back     string   `json:"back"`
	Reading  string   `json:"reading,omitempty"`
	Category string   `json:"category,omitempty"`
	Examples []string `json:"examples,omitempty"`
}

// GrammarPoint is a grammar rule with usage examples.
type GrammarPoint struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Explanation string   `json:"explanation,omitempty"`
	Examples    []string `json:"examples,omitempty"`
}

// KanjiCharacter is a single character entry.
type KanjiCharacter struct {
	ID          string   `json:"id"`
	Character   string   `json:"character"`
	Meaning     string   `json:"meaning,omitempty"`
	Onyomi      []string `json:"onyomi,omitempty"`
	Kunyomi     []string `json:"kunyomi,omitempty"`
	StrokeCount int      `json:"stroke_count,omitempty"`
}

// Exercise is a multiple-choice practice question.
type Exercise struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answer_index"`
	Category    string   `json:"category,omitempty"`
}
