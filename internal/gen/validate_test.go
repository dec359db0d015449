package gen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/fcetrainer/internal/exam"
)

func gapText(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "Some words (%d)_____ more words. ", i)
	}
	return b.String()
}

func TestRequireGapMarkers(t *testing.T) {
	if err := requireGapMarkers(gapText(8), 8); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := requireGapMarkers(gapText(7), 8); err == nil {
		t.Error("expected error for missing (8)_____")
	}
}

func TestClampChoice(t *testing.T) {
	for _, tt := range []struct{ in, want int }{
		{0, 0}, {3, 3}, {-1, 0}, {4, 0}, {99, 0},
	} {
		if got := clampChoice(tt.in); got != tt.want {
			t.Errorf("clampChoice(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidateWordFormationUnchangedStems(t *testing.T) {
	p := &exam.WordFormationPayload{Text: gapText(8)}
	for i := 0; i < 8; i++ {
		p.Stems = append(p.Stems, "COMPLETE")
		p.Answers = append(p.Answers, "completion")
	}

	if err := validateWordFormation(p, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One unchanged answer is tolerated.
	p.Answers[0] = "complete"
	if err := validateWordFormation(p, 1); err != nil {
		t.Fatalf("one unchanged stem should pass: %v", err)
	}

	// Two is too many.
	p.Answers[1] = "Complete"
	if err := validateWordFormation(p, 1); err == nil {
		t.Fatal("expected error for two unchanged stems")
	}
}

func TestValidateGappedText(t *testing.T) {
	p := &exam.GappedTextPayload{
		Paragraphs: []string{"Intro.", "GAP1", "Middle.", "GAP2", "GAP3", "GAP4", "GAP5", "GAP6", "End."},
		Sentences:  make([]string, 7),
		Answers:    []int{0, 1, 2, 3, 4, 5},
	}
	if err := validateGappedText(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.Paragraphs = p.Paragraphs[:len(p.Paragraphs)-2] // drops GAP6
	if err := validateGappedText(p); err == nil {
		t.Fatal("expected error for five placeholders")
	}

	p.Paragraphs = append(p.Paragraphs, "GAP6")
	p.Answers[5] = 7
	if err := validateGappedText(p); err == nil {
		t.Fatal("expected error for out-of-range answer")
	}
}

func TestValidateMatching(t *testing.T) {
	section := func(id string, words int) exam.MatchingSection {
		return exam.MatchingSection{ID: id, Text: strings.Repeat("word ", words)}
	}
	p := &exam.MatchingPayload{
		Sections: []exam.MatchingSection{
			section("A", 150), section("B", 150), section("C", 150), section("D", 150),
		},
	}
	for i := 0; i < 10; i++ {
		p.Questions = append(p.Questions, exam.MatchingQuestion{Text: "A statement.", Correct: "A"})
	}

	if err := validateMatching(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.Questions[9].Correct = "F"
	if err := validateMatching(p); err == nil {
		t.Fatal("expected error for unknown section id")
	}
	p.Questions[9].Correct = "A"

	p.Sections[0] = section("A", 10)
	if err := validateMatching(p); err == nil {
		t.Fatal("expected error for too-short combined text")
	}
}

func TestValidateReadingWordCount(t *testing.T) {
	p := &exam.ReadingPayload{
		Title: "T",
		Text:  strings.Repeat("word ", 600),
		Questions: []exam.ReadingQuestion{
			{Q: "Q1", Options: []string{"a", "b", "c", "d"}, Correct: 0},
		},
	}
	if err := validateReading(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.Text = strings.Repeat("word ", 200)
	if err := validateReading(p); err == nil {
		t.Fatal("expected error for short text")
	}
}

func TestTransformationItemChecks(t *testing.T) {
	if !AnswerUsesKeyword("has been learning", "BEEN") {
		t.Error("keyword should match case-insensitively")
	}
	if AnswerUsesKeyword("absentminded reply here", "BEEN") {
		t.Error("keyword must match whole words only")
	}
	if AnswerLengthOK("two words") {
		t.Error("2 words should fail")
	}
	if !AnswerLengthOK("three little words") {
		t.Error("3 words should pass")
	}
	if AnswerLengthOK("one two three four five six") {
		t.Error("6 words should fail")
	}
	if !IsTrivialRephrasing("The cat sat here.", "The cat _____ here.", "sat") {
		t.Error("identical reconstruction should be trivial")
	}
	if IsTrivialRephrasing("He came two years ago.", "He _____ for two years.", "has been here") {
		t.Error("real rephrasing should not be trivial")
	}
}

func TestCanonicalGap(t *testing.T) {
	if got := canonicalGap("She _____ here."); got != "She _____ here." {
		t.Errorf("well-formed gap changed: %q", got)
	}
	got := canonicalGap("She __ here.")
	if !strings.Contains(got, "_____") {
		t.Errorf("loose gap not canonicalized: %q", got)
	}
}
