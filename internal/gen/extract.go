package gen

import (
	"fmt"
	"regexp"
)

// ValidationError describes why a generated task was rejected.
type ValidationError struct {
	Check   string // short identifier of the failed check
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("check %q: %s", e.Check, e.Message)
}

func rejectf(check, format string, args ...any) *ValidationError {
	return &ValidationError{Check: check, Message: fmt.Sprintf(format, args...)}
}

var (
	objectSpan = regexp.MustCompile(`\{[\s\S]*\}`)
	arraySpan  = regexp.MustCompile(`\[[\s\S]*\]`)
)

// extractJSONObject pulls the widest {...} span out of a completion. The
// models are told to return bare JSON but routinely wrap it in prose or
// markdown fences.
func extractJSONObject(text string) (string, error) {
	if m := objectSpan.FindString(text); m != "" {
		return m, nil
	}
	return "", rejectf("extract", "no JSON object in response")
}

// extractJSONArray pulls the widest [...] span out of a completion.
func extractJSONArray(text string) (string, error) {
	if m := arraySpan.FindString(text); m != "" {
		return m, nil
	}
	return "", rejectf("extract", "no JSON array in response")
}
