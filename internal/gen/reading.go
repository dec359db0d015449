package gen

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/abhisek/fcetrainer/internal/exam"
)

func (s *Synthesizer) generateReading(ctx context.Context) (*exam.Task, error) {
	text, err := s.complete(ctx, readingPrompt(pickTopic(passageTopics)))
	if err != nil {
		return nil, err
	}
	doc, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}
	if err := validateAgainstSchema("reading", readingSchema, []byte(doc)); err != nil {
		return nil, err
	}

	var raw exam.ReadingPayload
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, rejectf("decode", "%v", err)
	}

	p := exam.ReadingPayload{
		Title: strings.TrimSpace(raw.Title),
		Text:  strings.TrimSpace(raw.Text),
	}
	for _, q := range raw.Questions {
		nq := exam.ReadingQuestion{
			Q:       strings.TrimSpace(q.Q),
			Correct: clampChoice(q.Correct),
		}
		for _, opt := range q.Options {
			nq.Options = append(nq.Options, strings.TrimSpace(opt))
		}
		p.Questions = append(p.Questions, nq)
	}
	if verr := validateReading(&p); verr != nil {
		return nil, verr
	}
	return s.persist(ctx, exam.ReadingMC, p, "")
}

func (s *Synthesizer) generateGappedText(ctx context.Context) (*exam.Task, error) {
	text, err := s.complete(ctx, gappedTextPrompt(pickTopic(passageTopics)))
	if err != nil {
		return nil, err
	}
	doc, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}
	if err := validateAgainstSchema("gapped-text", gappedTextSchema, []byte(doc)); err != nil {
		return nil, err
	}

	var raw exam.GappedTextPayload
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, rejectf("decode", "%v", err)
	}

	p := exam.GappedTextPayload{Answers: raw.Answers}
	for _, para := range raw.Paragraphs {
		p.Paragraphs = append(p.Paragraphs, strings.TrimSpace(para))
	}
	for _, sent := range raw.Sentences {
		p.Sentences = append(p.Sentences, strings.TrimSpace(sent))
	}
	if verr := validateGappedText(&p); verr != nil {
		return nil, verr
	}
	return s.persist(ctx, exam.GappedText, p, "")
}

func (s *Synthesizer) generateMatching(ctx context.Context) (*exam.Task, error) {
	text, err := s.complete(ctx, matchingPrompt(pickTopic(passageTopics)))
	if err != nil {
		return nil, err
	}
	doc, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}
	if err := validateAgainstSchema("matching", matchingSchema, []byte(doc)); err != nil {
		return nil, err
	}

	var raw exam.MatchingPayload
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, rejectf("decode", "%v", err)
	}

	var p exam.MatchingPayload
	for _, sec := range raw.Sections {
		p.Sections = append(p.Sections, exam.MatchingSection{
			ID:    strings.ToUpper(strings.TrimSpace(sec.ID)),
			Title: strings.TrimSpace(sec.Title),
			Text:  strings.TrimSpace(sec.Text),
		})
	}
	for _, q := range raw.Questions {
		p.Questions = append(p.Questions, exam.MatchingQuestion{
			Text:    strings.TrimSpace(q.Text),
			Correct: strings.ToUpper(strings.TrimSpace(q.Correct)),
		})
	}
	if verr := validateMatching(&p); verr != nil {
		return nil, verr
	}
	return s.persist(ctx, exam.MultipleMatching, p, "")
}
