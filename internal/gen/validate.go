package gen

import (
	"fmt"
	"strings"

	"github.com/abhisek/fcetrainer/internal/exam"
	"github.com/abhisek/fcetrainer/internal/textmatch"
)

// requireGapMarkers checks that the text carries the numbered gap
// placeholders (1)_____ ... (n)_____.
func requireGapMarkers(text string, n int) *ValidationError {
	for i := 1; i <= n; i++ {
		if !strings.Contains(text, fmt.Sprintf("(%d)_____", i)) {
			return rejectf("gap-markers", "placeholder (%d)_____ missing from text", i)
		}
	}
	return nil
}

// clampChoice forces an option index into [0,3]; the paper answer sheets
// only know A-D, so out-of-range output degrades to A rather than
// discarding the whole task.
func clampChoice(idx int) int {
	if idx < 0 || idx > 3 {
		return 0
	}
	return idx
}

func validateCloze(p *exam.ClozePayload) *ValidationError {
	if err := requireGapMarkers(p.Text, 8); err != nil {
		return err
	}
	for i, g := range p.Gaps {
		for _, opt := range g.Options {
			if strings.TrimSpace(opt) == "" {
				return rejectf("cloze", "gap %d has an empty option", i+1)
			}
		}
	}
	return nil
}

func validateOpenCloze(p *exam.OpenClozePayload) *ValidationError {
	if err := requireGapMarkers(p.Text, 8); err != nil {
		return err
	}
	for i, a := range p.Answers {
		if strings.TrimSpace(a) == "" {
			return rejectf("open-cloze", "answer %d is empty", i+1)
		}
	}
	return nil
}

// validateWordFormation enforces the gap markers and the unchanged-stem
// budget: a real word-formation task almost never leaves the stem as-is.
func validateWordFormation(p *exam.WordFormationPayload, maxUnchanged int) *ValidationError {
	if err := requireGapMarkers(p.Text, 8); err != nil {
		return err
	}
	unchanged := 0
	for i := range p.Stems {
		if strings.TrimSpace(p.Stems[i]) == "" || strings.TrimSpace(p.Answers[i]) == "" {
			return rejectf("word-formation", "gap %d has an empty stem or answer", i+1)
		}
		if strings.ToUpper(strings.TrimSpace(p.Answers[i])) == p.Stems[i] {
			unchanged++
		}
	}
	if unchanged > maxUnchanged {
		return rejectf("word-formation", "%d answers identical to their stem (max %d)", unchanged, maxUnchanged)
	}
	return nil
}

func validateReading(p *exam.ReadingPayload) *ValidationError {
	// The prompt asks for 550-650 words; accept a wider band so near
	// misses on a long, otherwise fine text are not thrown away.
	wc := textmatch.WordCount(p.Text)
	if wc < 400 || wc > 750 {
		return rejectf("reading", "text is %d words, want 400-750", wc)
	}
	for i, q := range p.Questions {
		if strings.TrimSpace(q.Q) == "" {
			return rejectf("reading", "question %d is empty", i+1)
		}
	}
	return nil
}

func validateGappedText(p *exam.GappedTextPayload) *ValidationError {
	gaps := 0
	for _, para := range p.Paragraphs {
		if isGapPlaceholder(para) {
			gaps++
		}
	}
	if gaps != 6 {
		return rejectf("gapped-text", "found %d gap placeholders, want 6", gaps)
	}
	for i, a := range p.Answers {
		if a < 0 || a > 6 {
			return rejectf("gapped-text", "answer %d is %d, want 0-6", i+1, a)
		}
	}
	return nil
}

func isGapPlaceholder(para string) bool {
	switch para {
	case "GAP1", "GAP2", "GAP3", "GAP4", "GAP5", "GAP6":
		return true
	}
	return false
}

func validateMatching(p *exam.MatchingPayload) *ValidationError {
	ids := make(map[string]bool, len(p.Sections))
	totalWords := 0
	for i, sec := range p.Sections {
		if sec.ID == "" {
			return rejectf("matching", "section %d has no id", i+1)
		}
		ids[sec.ID] = true
		totalWords += textmatch.WordCount(sec.Text)
	}
	if totalWords < 550 || totalWords > 750 {
		return rejectf("matching", "sections total %d words, want 550-750", totalWords)
	}
	for i, q := range p.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return rejectf("matching", "statement %d is empty", i+1)
		}
		if !ids[q.Correct] {
			return rejectf("matching", "statement %d matches unknown section %q", i+1, q.Correct)
		}
	}
	return nil
}
