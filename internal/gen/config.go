package gen

import "github.com/abhisek/fcetrainer/internal/textmatch"

// Config controls the behavior of the Synthesizer.
type Config struct {
	// MaxTokens is the token budget for a single LLM response. Reading
	// tasks produce 600+ word texts, so the budget is generous.
	MaxTokens int

	// DedupWindow is how many of the most recent stored transformation
	// tasks a new candidate is compared against.
	DedupWindow int

	// SimilarityThreshold is the fuzzy-match ratio above which a new
	// transformation is considered a duplicate of a stored one.
	SimilarityThreshold float64

	// MaxUnchangedStems is the number of word-formation gaps allowed to
	// have an answer identical to the stem.
	MaxUnchangedStems int

	// WordFormationAttempts is how many generation attempts a single
	// word-formation request may use before giving up.
	WordFormationAttempts int

	// BatchAttempts is how many LLM calls a transformation batch may use
	// to fill its quota.
	BatchAttempts int

	// SetSize is the number of transformation items in one practice set.
	SetSize int

	// RecentTopicLimit is how many recently shown grammar topics are fed
	// back into the transformation prompt to steer variety.
	RecentTopicLimit int
}

// DefaultConfig returns a Config with the standard limits.
func DefaultConfig() Config {
	return Config{
		MaxTokens:             4096,
		DedupWindow:           500,
		SimilarityThreshold:   textmatch.DefaultThreshold,
		MaxUnchangedStems:     1,
		WordFormationAttempts: 3,
		BatchAttempts:         2,
		SetSize:               6,
		RecentTopicLimit:      15,
	}
}
