package trainer

import (
	"testing"

	"github.com/abhisek/fcetrainer/internal/exam"
)

func TestResultCacheOneTimeRead(t *testing.T) {
	c := NewResultCache(5)
	token := c.Put(&CheckResult{Exercise: exam.OpenCloze, Score: 3, Total: 8})

	res, ok := c.Take(token)
	if !ok {
		t.Fatal("first read missed")
	}
	if res.Score != 3 {
		t.Errorf("score = %d, want 3", res.Score)
	}
	if _, ok := c.Take(token); ok {
		t.Error("second read of the same token should miss")
	}
}

func TestResultCacheUnknownToken(t *testing.T) {
	c := NewResultCache(5)
	if _, ok := c.Take("no-such-token"); ok {
		t.Error("unknown token should miss")
	}
}

func TestResultCacheEvictsOldest(t *testing.T) {
	c := NewResultCache(3)
	first := c.Put(&CheckResult{Score: 1})
	c.Put(&CheckResult{Score: 2})
	c.Put(&CheckResult{Score: 3})
	c.Put(&CheckResult{Score: 4}) // evicts the first

	if _, ok := c.Take(first); ok {
		t.Error("oldest entry should have been evicted")
	}
	if c.Len() != 3 {
		t.Errorf("len = %d, want 3", c.Len())
	}
}

func TestResultCacheTokensUnique(t *testing.T) {
	c := NewResultCache(20)
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		token := c.Put(&CheckResult{Score: i})
		if seen[token] {
			t.Fatalf("duplicate token %q", token)
		}
		seen[token] = true
	}
}
