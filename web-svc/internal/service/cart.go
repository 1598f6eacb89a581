package service

import (
	"sync"

	"orderflow/web-svc/internal/domain"
)

// CartStore is the visitor's ordered list of selections. It only grows until replaced.
type CartStore struct {
	mu      sync.RWMutex
	entries []domain.CartEntry
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

func (c *CartStore) Add(item domain.MenuItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, domain.CartEntry{Item: item, Quantity: quantity})
}

func (c *CartStore) ReplaceAll(entries []domain.CartEntry) {
	replaced := make([]domain.CartEntry, 0, len(entries))
	for _, entry := range entries {
		entry.Quantity = entry.Units()
		replaced = append(replaced, entry)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = replaced
}

// Read returns a copy; callers may keep it without seeing later additions.
func (c *CartStore) Read() []domain.CartEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := make([]domain.CartEntry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

func (c *CartStore) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
