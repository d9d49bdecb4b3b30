package equipment

import (
	"sort"
	"sync"
)

// characterLocks serializes mutations per character. Entries are reference
// counted and dropped once no caller holds or waits on them.
type characterLocks struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	sync.Mutex
	refs int
}

func newCharacterLocks() *characterLocks {
	return &characterLocks{locks: make(map[string]*refLock)}
}

// Lock acquires every key in sorted order and returns the release func.
// Callers taking two characters always lock them in the same order.
func (c *characterLocks) Lock(keys ...string) func() {
	sorted := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	held := make([]*refLock, 0, len(sorted))
	for _, k := range sorted {
		c.mu.Lock()
		l, ok := c.locks[k]
		if !ok {
			l = &refLock{}
			c.locks[k] = l
		}
		l.refs++
		c.mu.Unlock()

		l.Lock()
		held = append(held, l)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
			c.mu.Lock()
			held[i].refs--
			if held[i].refs == 0 {
				delete(c.locks, sorted[i])
			}
			c.mu.Unlock()
		}
	}
}
