package bezier

import (
	"fmt"
	"sync"
)

// BinomialCache memoizes rows of Pascal's triangle. It only grows: rows are
// appended on demand and never recomputed. It is safe for concurrent use.
//
// Coefficients are uint64 and overflow from row 68 on.
type BinomialCache struct {
	mu  sync.RWMutex
	tab [][]uint64
}

// NewBinomialCache returns a cache seeded with rows 0 through 6.
func NewBinomialCache() *BinomialCache {
	return &BinomialCache{
		tab: [][]uint64{
			{1},
			{1, 1},
			{1, 2, 1},
			{1, 3, 3, 1},
			{1, 4, 6, 4, 1},
			{1, 5, 10, 10, 5, 1},
			{1, 6, 15, 20, 15, 6, 1},
		},
	}
}

var defaultCache = sync.OnceValue(NewBinomialCache)

// Default returns the process-wide cache used by curves that carry none.
func Default() *BinomialCache {
	return defaultCache()
}

// Get returns C(n, k). It panics unless 0 <= k <= n.
func (c *BinomialCache) Get(n, k int) uint64 {
	if n < 0 || k < 0 || k > n {
		panic(fmt.Sprintf("bezier: binomial C(%d, %d) out of range", n, k))
	}

	c.mu.RLock()
	if n < len(c.tab) {
		v := c.tab[n][k]
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	// another writer may have grown the table in between
	for n >= len(c.tab) {
		prev := c.tab[len(c.tab)-1]
		row := make([]uint64, len(prev)+1)
		row[0], row[len(row)-1] = 1, 1
		for i := 1; i < len(prev); i++ {
			row[i] = prev[i-1] + prev[i]
		}
		c.tab = append(c.tab, row)
	}
	return c.tab[n][k]
}

// Rows reports how many rows are currently cached.
func (c *BinomialCache) Rows() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tab)
}
