// Package gen synthesizes new exercise tasks with an LLM provider.
//
// The models are prompted for JSON but queried in plain text mode, so every
// response goes through extraction (first balanced JSON span), schema
// validation, and exercise-specific structural checks before a task is
// accepted and persisted. Rejected output is never stored.
package gen

import (
	"strings"
)

// Level selects the difficulty register for generated tasks.
type Level string

const (
	LevelB2     Level = "b2"
	LevelB2Plus Level = "b2plus"
)

// NormalizeLevel maps arbitrary user input onto a supported level.
// Anything that is not "b2plus" falls back to plain B2.
func NormalizeLevel(s string) Level {
	if strings.ToLower(strings.TrimSpace(s)) == string(LevelB2Plus) {
		return LevelB2Plus
	}
	return LevelB2
}
