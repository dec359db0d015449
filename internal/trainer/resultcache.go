package trainer

import (
	"sync"

	"github.com/google/uuid"
)

// ResultCacheCapacity bounds how many graded-but-unread results can be
// outstanding at once.
const ResultCacheCapacity = 20

// ResultCache holds graded results between the check and the read that
// consumes them. Each result is addressed by a single-use token: Take
// removes it, and inserting past capacity evicts the oldest unread entry.
type ResultCache struct {
	mu       sync.Mutex
	capacity int
	order    []string
	entries  map[string]*CheckResult
}

// NewResultCache creates a cache holding at most capacity results.
func NewResultCache(capacity int) *ResultCache {
	if capacity <= 0 {
		capacity = ResultCacheCapacity
	}
	return &ResultCache{
		capacity: capacity,
		entries:  make(map[string]*CheckResult),
	}
}

// Put stores a result and returns its one-use token.
func (c *ResultCache) Put(res *CheckResult) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	token := uuid.NewString()
	c.entries[token] = res
	c.order = append(c.order, token)
	return token
}

// Take returns the result for token and removes it. A second Take with the
// same token misses.
func (c *ResultCache) Take(token string) (*CheckResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, ok := c.entries[token]
	if !ok {
		return nil, false
	}
	delete(c.entries, token)
	for i, t := range c.order {
		if t == token {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return res, true
}

// Len reports how many unread results are outstanding.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
