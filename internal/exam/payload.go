package exam

// Gap markers inside cloze texts look like "(1)_____" through "(8)_____".
// Gapped texts use "GAP1" through "GAP6" as standalone paragraph entries.

// ClozeGap is one multiple-choice gap: exactly 4 options, one correct index.
type ClozeGap struct {
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// ClozePayload is a Part 1 task: a text with 8 numbered gaps.
type ClozePayload struct {
	Text string     `json:"text"`
	Gaps []ClozeGap `json:"gaps"`
}

// OpenClozePayload is a Part 2 task: 8 numbered gaps, one word per gap.
type OpenClozePayload struct {
	Text    string   `json:"text"`
	Answers []string `json:"answers"`
}

// WordFormationPayload is a Part 3 task: 8 gaps, stems in capitals, and the
// formed word for each gap.
type WordFormationPayload struct {
	Text    string   `json:"text"`
	Stems   []string `json:"stems"`
	Answers []string `json:"answers"`
}

// TransformationPayload is one Part 4 item: rewrite sentence1 as sentence2
// using the keyword; the answer fills the single "_____" gap in sentence2.
type TransformationPayload struct {
	Sentence1    string `json:"sentence1"`
	Keyword      string `json:"keyword"`
	Sentence2    string `json:"sentence2"`
	Answer       string `json:"answer"`
	GrammarTopic string `json:"grammar_topic,omitempty"`
}

// ReadingQuestion is one Part 5 question: 4 options, one correct index.
type ReadingQuestion struct {
	Q       string   `json:"q"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// ReadingPayload is a Part 5 task: titled long text plus 6 questions.
type ReadingPayload struct {
	Title     string            `json:"title"`
	Text      string            `json:"text"`
	Questions []ReadingQuestion `json:"questions"`
}

// GappedTextPayload is a Part 6 task. Paragraphs is a mix of prose entries
// and the literal markers "GAP1".."GAP6"; Sentences holds the 7 candidates
// (index 0 = A .. 6 = G); Answers[i] is the sentence index for gap i+1.
type GappedTextPayload struct {
	Paragraphs []string `json:"paragraphs"`
	Sentences  []string `json:"sentences"`
	Answers    []int    `json:"answers"`
}

// MatchingSection is one labeled section of a Part 7 text.
type MatchingSection struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// MatchingQuestion is one Part 7 statement with its correct section label.
type MatchingQuestion struct {
	Text    string `json:"text"`
	Correct string `json:"correct"`
}

// MatchingPayload is a Part 7 task: 4-6 sections and 10 statements.
type MatchingPayload struct {
	Sections  []MatchingSection  `json:"sections"`
	Questions []MatchingQuestion `json:"questions"`
}
