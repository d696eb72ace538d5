// Package catalog holds the ordered in-memory list of stores.
package catalog

import (
	"slices"
	"strings"

	"github.com/matsen/storelist/internal/store"
)

// Catalog is the ordered sequence of stores owned by the running process.
// It is not safe for concurrent use.
type Catalog struct {
	stores []store.Store
}

// New creates a catalog holding the given stores in order.
func New(stores []store.Store) *Catalog {
	return &Catalog{stores: slices.Clone(stores)}
}

// Len returns the number of stores.
func (c *Catalog) Len() int {
	return len(c.stores)
}

// All returns a copy of the stores in list order.
func (c *Catalog) All() []store.Store {
	return slices.Clone(c.stores)
}

// Add appends a store to the end of the list.
func (c *Catalog) Add(s store.Store) {
	c.stores = append(c.stores, s)
}

// DeleteByName removes every store whose name equals name, ignoring case.
// Returns the number of stores removed.
func (c *Catalog) DeleteByName(name string) int {
	before := len(c.stores)
	c.stores = slices.DeleteFunc(c.stores, func(s store.Store) bool {
		return strings.EqualFold(s.Name, name)
	})
	return before - len(c.stores)
}

// Search returns the stores whose name, address or specialization contains
// keyword, ignoring case. Results keep list order.
func (c *Catalog) Search(keyword string) []store.Store {
	keyword = strings.ToLower(keyword)

	var matches []store.Store
	for _, s := range c.stores {
		if strings.Contains(strings.ToLower(s.Name), keyword) ||
			strings.Contains(strings.ToLower(s.Address), keyword) ||
			strings.Contains(strings.ToLower(s.Specialization), keyword) {
			matches = append(matches, s)
		}
	}
	return matches
}

// SortByName sorts by name. Comparison is case-sensitive and ordinal, so
// "Bravo" sorts before "alpha".
func (c *Catalog) SortByName() {
	c.sortBy(func(s store.Store) string { return s.Name })
}

// SortByCity sorts by the city key of each address.
func (c *Catalog) SortByCity() {
	c.sortBy(store.Store.City)
}

// SortBySpecialization sorts by specialization.
func (c *Catalog) SortBySpecialization() {
	c.sortBy(func(s store.Store) string { return s.Specialization })
}

// sortBy stable-sorts in place, ascending by key. Equal keys keep their
// relative order.
func (c *Catalog) sortBy(key func(store.Store) string) {
	slices.SortStableFunc(c.stores, func(a, b store.Store) int {
		return strings.Compare(key(a), key(b))
	})
}
