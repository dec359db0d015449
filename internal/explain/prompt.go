package explain

import (
	"fmt"
	"strings"

	"github.com/abhisek/fcetrainer/internal/exam"
	"github.com/abhisek/fcetrainer/internal/trainer"
)

var letters = []string{"A", "B", "C", "D", "E", "F", "G"}

// snippet bounds long passages fed back into explanation prompts.
func snippet(s string, max int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max])
}

func clozeExplainPrompt(p *exam.ClozePayload, details []trainer.Detail) string {
	var lines []string
	for i, gap := range p.Gaps {
		user := "(no answer)"
		if i < len(details) {
			user = orBlank(details[i].UserValue)
		}
		opts := make([]string, 0, len(gap.Options))
		for j, opt := range gap.Options {
			opts = append(opts, fmt.Sprintf("%s) %s", letters[j], opt))
		}
		lines = append(lines, fmt.Sprintf("Gap %d: %s. Correct: %s) %s. Student chose: %s.",
			i+1, strings.Join(opts, " "), letters[gap.Correct], gap.Options[gap.Correct], user))
	}
	return `You are an FCE (B2 First) English teacher. You will see a multiple-choice cloze passage and, for each gap, the four options (A-D), the correct answer, and what the student chose.

Use the PASSAGE as context so your explanations refer to the actual sentences (e.g. "In this sentence, X is needed because...").

PASSAGE (gaps are marked as (1)_____, (2)_____, etc.):
---
` + strings.TrimSpace(p.Text) + `

---
For each gap, write ONE short explanation (1-2 sentences) in plain English:
1) Why the correct answer is right in this context (grammar/meaning in the sentence above).
2) If the student's answer was wrong, briefly why that option is wrong or doesn't fit here.

Keep each explanation clear and educational. Return ONLY a JSON array of exactly ` + fmt.Sprint(len(p.Gaps)) + ` strings (one per gap, in order). No other text.

Gaps:
` + strings.Join(lines, "\n")
}

func openClozeExplainPrompt(p *exam.OpenClozePayload, details []trainer.Detail) string {
	var lines []string
	for i, correct := range p.Answers {
		user := "(blank)"
		if i < len(details) && strings.TrimSpace(details[i].UserValue) != "" {
			user = details[i].UserValue
		}
		lines = append(lines, fmt.Sprintf("Gap %d: Correct answer: '%s'. Student wrote: '%s'.", i+1, correct, user))
	}
	return `You are an FCE (B2 First) English teacher. You will see an open-cloze passage and, for each gap, the correct answer and what the student wrote.

Use the PASSAGE as context so your explanations refer to the actual sentences (e.g. "In this sentence, X is needed because...").

PASSAGE (gaps are marked as (1)_____, (2)_____, etc.):
---
` + strings.TrimSpace(p.Text) + `

---
For each gap, write ONE short explanation (1-2 sentences) in plain English:
1) Why the correct word is right in this context (grammar/meaning in the sentence above).
2) If the student's answer was wrong or blank, briefly why their word doesn't fit or what the gap requires here.

Keep each explanation clear and educational. Return ONLY a JSON array of exactly ` + fmt.Sprint(len(p.Answers)) + ` strings (one per gap, in order). No other text.

Gaps:
` + strings.Join(lines, "\n")
}

func wordFormationExplainPrompt(p *exam.WordFormationPayload, details []trainer.Detail) string {
	var lines []string
	for i, stem := range p.Stems {
		correct := ""
		if i < len(p.Answers) {
			correct = p.Answers[i]
		}
		user := "(blank)"
		if i < len(details) && strings.TrimSpace(details[i].UserValue) != "" {
			user = details[i].UserValue
		}
		lines = append(lines, fmt.Sprintf("Gap %d: Stem word: %s. Correct answer: '%s'. Student wrote: '%s'.", i+1, stem, correct, user))
	}
	return `You are an FCE (B2 First) English teacher. For a word formation task, you will see the passage and for each gap: the stem word in CAPITALS, the correct answer, and what the student wrote.

PASSAGE (for context):
---
` + snippet(p.Text, 4000) + `

---
For each gap, provide TWO things:

1) **Explanation** (1-2 sentences): Why the correct word fits in this context (grammar/meaning). If the student's answer was wrong or blank, explain briefly why their word doesn't fit or what form was needed.

2) **Word family** for the stem: Give the main forms that exist for this word, in this exact format (use — for forms that don't exist or aren't common):
  noun: ... ; adjective: ... ; adverb: ... ; verb: ...

Return ONLY a valid JSON array of exactly ` + fmt.Sprint(len(p.Stems)) + ` objects. Each object has two keys: "explanation" (string) and "word_family" (string). No other text.

Gaps:
` + strings.Join(lines, "\n")
}

func transformationExplainPrompt(items []*exam.TransformationPayload, details []trainer.Detail) string {
	var lines []string
	for i, item := range items {
		user := "(no answer)"
		if i < len(details) {
			user = orBlank(details[i].UserValue)
		}
		lines = append(lines, fmt.Sprintf("Item %d: First sentence: %s. Key word: %s. Second sentence (gap): %s. Correct answer: %q. Student wrote: %q.",
			i+1, item.Sentence1, item.Keyword, item.Sentence2, item.Answer, user))
	}
	return `You are an FCE (B2 First) English teacher. Below are key word transformation items with the correct answer and what the student wrote.

For each item, write ONE short explanation (1-2 sentences) in plain English:
1) Why the correct answer is right (same meaning, uses the key word correctly).
2) If the student's answer was wrong, briefly why it doesn't work or what the mistake is.

Keep each explanation clear and educational. Return ONLY a JSON array of strings (one per item). No other text.

Items:
` + strings.Join(lines, "\n")
}

func readingExplainPrompt(p *exam.ReadingPayload, details []trainer.Detail) string {
	var lines []string
	for i, q := range p.Questions {
		user := "(no answer)"
		if i < len(details) {
			user = orBlank(details[i].UserValue)
		}
		lines = append(lines, fmt.Sprintf("Q%d: %s. Correct: %s) %s. Student chose: %s.",
			i+1, q.Q, letters[q.Correct], q.Options[q.Correct], user))
	}
	return `You are an FCE (B2 First) English teacher. For a reading comprehension (multiple choice) task, you will see the passage and for each question: the question text, correct answer, and student's answer.

PASSAGE (for context):
---
` + snippet(p.Text, 3000) + `

---
For each question, write ONE short explanation (1-2 sentences):
1) Why the correct answer is right, referring to specific parts of the text.
2) If the student was wrong, briefly why their choice doesn't fit.

Return ONLY a JSON array of exactly ` + fmt.Sprint(len(p.Questions)) + ` strings (one per question). No other text.

Questions:
` + strings.Join(lines, "\n")
}

func gappedTextExplainPrompt(p *exam.GappedTextPayload, details []trainer.Detail) string {
	var prose []string
	for _, para := range p.Paragraphs {
		if !strings.HasPrefix(para, "GAP") {
			prose = append(prose, para)
		}
	}
	var lines []string
	for i, correct := range p.Answers {
		sentence := ""
		if correct >= 0 && correct < len(p.Sentences) {
			sentence = p.Sentences[correct]
		}
		user := "(no answer)"
		if i < len(details) && details[i].UserValue != "" {
			user = details[i].UserValue
		}
		lines = append(lines, fmt.Sprintf("Gap %d: Correct: %s) %s. Student chose: %s.",
			i+1, letters[correct], sentence, user))
	}
	return `You are an FCE (B2 First) English teacher. For a gapped text task, you will see the text and for each gap: which sentence correctly fills it and what the student chose.

TEXT (for context):
---
` + snippet(strings.Join(prose, " "), 3000) + `

---
For each gap, write ONE short explanation (1-2 sentences):
1) Why the correct sentence fits (coherence, linking words, pronouns, logical flow).
2) If the student was wrong, briefly why their sentence doesn't fit there.

Return ONLY a JSON array of exactly ` + fmt.Sprint(len(p.Answers)) + ` strings. No other text.

Gaps:
` + strings.Join(lines, "\n")
}

func matchingExplainPrompt(p *exam.MatchingPayload, details []trainer.Detail) string {
	var secs []string
	for _, s := range p.Sections {
		secs = append(secs, fmt.Sprintf("%s: %s", s.ID, s.Title))
	}
	var lines []string
	for i, q := range p.Questions {
		user := "(no answer)"
		if i < len(details) {
			user = orBlank(details[i].UserValue)
		}
		lines = append(lines, fmt.Sprintf("Statement %d: '%s'. Correct: %s. Student chose: %s.",
			i+1, q.Text, q.Correct, user))
	}
	return `You are an FCE (B2 First) English teacher. For a multiple matching task, you will see the sections and for each statement: the correct section and what the student chose.

Sections: ` + snippet(strings.Join(secs, " | "), 1000) + `

For each statement, write ONE short explanation (1-2 sentences):
1) Why the correct section matches (what in that section corresponds to the statement).
2) If the student was wrong, briefly why their chosen section doesn't match.

Return ONLY a JSON array of exactly ` + fmt.Sprint(len(p.Questions)) + ` strings. No other text.

Statements:
` + strings.Join(lines, "\n")
}
