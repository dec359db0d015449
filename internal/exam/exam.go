// Package exam defines the seven FCE exercise types and their payload shapes.
package exam

import (
	"encoding/json"
	"fmt"
	"time"
)

// Exercise identifies one of the seven exam task kinds.
type Exercise string

const (
	// MultipleChoiceCloze is Part 1: a text with 8 gaps, 4 options each.
	MultipleChoiceCloze Exercise = "multiple_choice_cloze"

	// OpenCloze is Part 2: a text with 8 gaps, one word each.
	OpenCloze Exercise = "open_cloze"

	// WordFormation is Part 3: a text with 8 gaps and stem words in capitals.
	WordFormation Exercise = "word_formation"

	// Transformation is Part 4: key word transformation, one sentence pair
	// per task, served to the learner in sets of 6.
	Transformation Exercise = "transformation"

	// ReadingMC is Part 5: a long text with 6 multiple-choice questions.
	ReadingMC Exercise = "reading_mc"

	// GappedText is Part 6: a text with 6 gaps and 7 candidate sentences.
	GappedText Exercise = "gapped_text"

	// MultipleMatching is Part 7: 4-6 labeled sections and 10 statements.
	MultipleMatching Exercise = "multiple_matching"
)

// All returns every exercise type in paper order (Part 1 through Part 7).
func All() []Exercise {
	return []Exercise{
		MultipleChoiceCloze,
		OpenCloze,
		WordFormation,
		Transformation,
		ReadingMC,
		GappedText,
		MultipleMatching,
	}
}

// FromPart maps a paper part number (1-7) to its exercise type.
func FromPart(n int) (Exercise, bool) {
	all := All()
	if n < 1 || n > len(all) {
		return "", false
	}
	return all[n-1], true
}

// Part returns the paper part number (1-7) for this exercise, or 0 if unknown.
func (e Exercise) Part() int {
	for i, ex := range All() {
		if ex == e {
			return i + 1
		}
	}
	return 0
}

// Valid reports whether e is one of the seven known exercise types.
func (e Exercise) Valid() bool {
	return e.Part() != 0
}

// QuestionCount returns the number of gradeable items per task of this type.
func (e Exercise) QuestionCount() int {
	switch e {
	case MultipleChoiceCloze, OpenCloze, WordFormation:
		return 8
	case Transformation, ReadingMC, GappedText:
		return 6
	case MultipleMatching:
		return 10
	}
	return 0
}

// Source records where a task came from. Observability only, never behavior.
type Source string

const (
	SourceManual    Source = "manual"
	SourceGenerated Source = "generated"
)

// Task is one stored exercise item. Immutable once created.
type Task struct {
	ID       int
	Exercise Exercise
	Payload  json.RawMessage

	// GrammarTopic is set only for Transformation tasks. Soft diversity
	// signal, not a constraint.
	GrammarTopic string

	Source    Source
	CreatedAt time.Time
}

func decode[T any](t *Task, want Exercise) (*T, error) {
	if t.Exercise != want {
		return nil, fmt.Errorf("task %d is %s, not %s", t.ID, t.Exercise, want)
	}
	var out T
	if err := json.Unmarshal(t.Payload, &out); err != nil {
		return nil, fmt.Errorf("decode %s payload of task %d: %w", want, t.ID, err)
	}
	return &out, nil
}

// Cloze decodes a multiple-choice cloze payload.
func (t *Task) Cloze() (*ClozePayload, error) {
	return decode[ClozePayload](t, MultipleChoiceCloze)
}

// OpenCloze decodes an open cloze payload.
func (t *Task) OpenCloze() (*OpenClozePayload, error) {
	return decode[OpenClozePayload](t, OpenCloze)
}

// WordFormation decodes a word formation payload.
func (t *Task) WordFormation() (*WordFormationPayload, error) {
	return decode[WordFormationPayload](t, WordFormation)
}

// Transformation decodes a key word transformation payload.
func (t *Task) Transformation() (*TransformationPayload, error) {
	return decode[TransformationPayload](t, Transformation)
}

// Reading decodes a reading multiple-choice payload.
func (t *Task) Reading() (*ReadingPayload, error) {
	return decode[ReadingPayload](t, ReadingMC)
}

// GappedText decodes a gapped text payload.
func (t *Task) GappedText() (*GappedTextPayload, error) {
	return decode[GappedTextPayload](t, GappedText)
}

// Matching decodes a multiple matching payload.
func (t *Task) Matching() (*MatchingPayload, error) {
	return decode[MatchingPayload](t, MultipleMatching)
}
