package gen

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/abhisek/fcetrainer/internal/exam"
	"github.com/abhisek/fcetrainer/internal/textmatch"
)

// AnswerUsesKeyword reports whether the keyword appears as a whole word in
// the answer, case-insensitively.
func AnswerUsesKeyword(answer, keyword string) bool {
	if answer == "" || keyword == "" {
		return false
	}
	return textmatch.ContainsWord(answer, keyword)
}

// AnswerLengthOK reports whether the answer is the required 3-5 words.
func AnswerLengthOK(answer string) bool {
	n := textmatch.WordCount(answer)
	return n >= 3 && n <= 5
}

// IsTrivialRephrasing reports whether sentence2 with the answer filled in
// is just sentence1 again. Such items test nothing.
func IsTrivialRephrasing(sentence1, sentence2, answer string) bool {
	if sentence1 == "" || sentence2 == "" || !strings.Contains(sentence2, "_____") {
		return false
	}
	reconstructed := strings.ReplaceAll(sentence2, "_____", strings.TrimSpace(answer))
	return textmatch.Normalize(reconstructed) == textmatch.Normalize(sentence1)
}

// UsableTransformation bundles the item-level quality checks shared by the
// generation path and the stored-task fallback.
func UsableTransformation(p exam.TransformationPayload) bool {
	return AnswerUsesKeyword(p.Answer, p.Keyword) &&
		AnswerLengthOK(p.Answer) &&
		!IsTrivialRephrasing(p.Sentence1, p.Sentence2, p.Answer)
}

var looseGap = regexp.MustCompile(`\s+_{2,}\s*`)

// canonicalGap rewrites sloppy gap markers (two or more underscores) to
// the exact "_____" form when the model missed it.
func canonicalGap(sentence2 string) string {
	if strings.Contains(sentence2, "_____") {
		return sentence2
	}
	return looseGap.ReplaceAllString(sentence2, " _____ ")
}

// similarTransformationExists compares a candidate against the most recent
// stored transformations, on both the first sentence and the reconstructed
// second sentence. Batch-local inserts are excluded via excludeIDs.
func (s *Synthesizer) similarTransformationExists(ctx context.Context, sentence1, sentence2, answer string, excludeIDs map[int]bool) (bool, error) {
	recent, err := s.tasks.Recent(ctx, exam.Transformation, s.cfg.DedupWindow)
	if err != nil {
		return false, err
	}

	n1New := textmatch.Normalize(sentence1)
	reconNew := textmatch.Normalize(strings.ReplaceAll(sentence2, "_____", strings.TrimSpace(answer)))

	for _, t := range recent {
		if excludeIDs[t.ID] {
			continue
		}
		p, err := t.Transformation()
		if err != nil {
			continue
		}
		n1Old := textmatch.Normalize(p.Sentence1)
		reconOld := textmatch.Normalize(strings.ReplaceAll(p.Sentence2, "_____", strings.TrimSpace(p.Answer)))
		if n1Old == "" && reconOld == "" {
			continue
		}
		if n1Old != "" && textmatch.Ratio(n1New, n1Old) >= s.cfg.SimilarityThreshold {
			return true, nil
		}
		if reconOld != "" && textmatch.Ratio(reconNew, reconOld) >= s.cfg.SimilarityThreshold {
			return true, nil
		}
	}
	return false, nil
}

type transformationItem struct {
	Sentence1    string `json:"sentence1"`
	Keyword      string `json:"keyword"`
	Sentence2    string `json:"sentence2"`
	Answer       string `json:"answer"`
	GrammarTopic string `json:"grammar_topic"`
}

// GenerateTransformationBatch generates up to SetSize fresh transformation
// items, persisting each accepted one. Items that fail any quality or
// duplication check are dropped silently; the batch may come back short
// or empty, and callers fall back to stored tasks.
func (s *Synthesizer) GenerateTransformationBatch(ctx context.Context, level Level) ([]*exam.Task, error) {
	recentTopics, err := s.shows.RecentGrammarTopics(ctx, s.cfg.RecentTopicLimit)
	if err != nil {
		return nil, err
	}

	var accepted []*exam.Task
	acceptedIDs := make(map[int]bool)
	topicsUsed := make(map[string]bool)

	for attempt := 0; attempt < s.cfg.BatchAttempts; attempt++ {
		need := s.cfg.SetSize - len(accepted)
		if need <= 0 {
			break
		}

		text, err := s.complete(ctx, transformationPrompt(need, level, recentTopics))
		if err != nil {
			// A failed call ends the batch; keep whatever was accepted.
			if len(accepted) > 0 {
				return accepted, nil
			}
			return nil, err
		}
		doc, err := extractJSONArray(text)
		if err != nil {
			continue
		}
		if err := validateAgainstSchema("transformation-batch", transformationBatchSchema, []byte(doc)); err != nil {
			continue
		}
		var items []transformationItem
		if err := json.Unmarshal([]byte(doc), &items); err != nil {
			continue
		}
		if len(items) > need {
			items = items[:need]
		}

		for _, item := range items {
			p := exam.TransformationPayload{
				Sentence1:    strings.TrimSpace(item.Sentence1),
				Keyword:      strings.ToUpper(strings.TrimSpace(item.Keyword)),
				Sentence2:    canonicalGap(strings.TrimSpace(item.Sentence2)),
				Answer:       strings.TrimSpace(item.Answer),
				GrammarTopic: strings.TrimSpace(item.GrammarTopic),
			}
			if p.Sentence1 == "" || p.Keyword == "" || p.Sentence2 == "" || p.Answer == "" {
				continue
			}
			if !UsableTransformation(p) {
				continue
			}
			dup, err := s.similarTransformationExists(ctx, p.Sentence1, p.Sentence2, p.Answer, acceptedIDs)
			if err != nil {
				return accepted, err
			}
			if dup {
				continue
			}
			exists, err := s.tasks.TransformationPairExists(ctx, p.Sentence1, p.Keyword)
			if err != nil {
				return accepted, err
			}
			if exists {
				continue
			}
			if p.GrammarTopic != "" && topicsUsed[strings.ToLower(p.GrammarTopic)] {
				continue
			}

			task, err := s.persist(ctx, exam.Transformation, p, p.GrammarTopic)
			if err != nil {
				return accepted, err
			}
			accepted = append(accepted, task)
			acceptedIDs[task.ID] = true
			if p.GrammarTopic != "" {
				topicsUsed[strings.ToLower(p.GrammarTopic)] = true
			}
		}
	}
	return accepted, nil
}
