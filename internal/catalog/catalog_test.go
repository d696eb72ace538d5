package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsen/storelist/internal/store"
)

func names(stores []store.Store) []string {
	out := make([]string, len(stores))
	for i, s := range stores {
		out[i] = s.Name
	}
	return out
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	c := New(nil)
	var want []string
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("store-%d", i)
		c.Add(store.New(name, "", "", ""))
		want = append(want, name)
	}

	require.Equal(t, 5, c.Len())
	assert.Equal(t, want, names(c.All()))
}

func TestNew_CopiesInput(t *testing.T) {
	input := []store.Store{store.New("a", "", "", "")}
	c := New(input)
	input[0].Name = "changed"

	assert.Equal(t, []string{"a"}, names(c.All()))
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := New([]store.Store{store.New("a", "", "", "")})
	all := c.All()
	all[0].Name = "changed"

	assert.Equal(t, []string{"a"}, names(c.All()))
}

func TestDeleteByName(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		wantRemoved int
		wantNames   []string
	}{
		{"case-insensitive all matches", "shop", 3, []string{"Other"}},
		{"exact case", "Shop", 3, []string{"Other"}},
		{"no match leaves list unchanged", "missing", 0, []string{"Shop", "shop", "Other", "SHOP"}},
		{"substring does not match", "Sho", 0, []string{"Shop", "shop", "Other", "SHOP"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New([]store.Store{
				store.New("Shop", "", "", ""),
				store.New("shop", "", "", ""),
				store.New("Other", "", "", ""),
				store.New("SHOP", "", "", ""),
			})

			removed := c.DeleteByName(tt.target)

			assert.Equal(t, tt.wantRemoved, removed)
			assert.Equal(t, tt.wantNames, names(c.All()))
		})
	}
}

func TestSearch(t *testing.T) {
	c := New([]store.Store{
		store.New("MyStore", "Kyiv", "Food", ""),
		store.New("Alpha", "1 Store Rd", "Tools", ""),
		store.New("Beta", "Lviv", "Bookstore", ""),
		store.New("Gamma", "Odesa", "Pharmacy", ""),
	})

	t.Run("matches any field ignoring case", func(t *testing.T) {
		got := c.Search("store")
		assert.Equal(t, []string{"MyStore", "Alpha", "Beta"}, names(got))
	})

	t.Run("upper-case keyword", func(t *testing.T) {
		got := c.Search("STORE")
		assert.Equal(t, []string{"MyStore", "Alpha", "Beta"}, names(got))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.Search("zzz"))
	})

	t.Run("empty keyword matches everything", func(t *testing.T) {
		assert.Len(t, c.Search(""), 4)
	})

	t.Run("working hours and phones are not searched", func(t *testing.T) {
		s := store.New("Delta", "Kharkiv", "Bakery", "24/7")
		s.AddPhone("380501112233")
		c := New([]store.Store{s})
		assert.Empty(t, c.Search("24/7"))
		assert.Empty(t, c.Search("380"))
	})
}

func TestSortByName_CaseSensitiveOrdinal(t *testing.T) {
	c := New([]store.Store{
		store.New("Bravo", "", "", ""),
		store.New("alpha", "", "", ""),
	})

	c.SortByName()

	// Upper-case letters precede lower-case ones in code-point order.
	assert.Equal(t, []string{"Bravo", "alpha"}, names(c.All()))
}

func TestSortByName(t *testing.T) {
	c := New([]store.Store{
		store.New("charlie", "", "", ""),
		store.New("Alpha", "", "", ""),
		store.New("bravo", "", "", ""),
		store.New("", "", "", ""),
	})

	c.SortByName()

	assert.Equal(t, []string{"", "Alpha", "bravo", "charlie"}, names(c.All()))
}

func TestSortByCity(t *testing.T) {
	c := New([]store.Store{
		store.New("p", "Paris Rue1", "", ""),
		store.New("b", "Berlin Str2", "", ""),
	})

	c.SortByCity()

	var cities []string
	for _, s := range c.All() {
		cities = append(cities, s.City())
	}
	assert.Equal(t, []string{"Berlin", "Paris"}, cities)
}

func TestSortByCity_StableForEqualKeys(t *testing.T) {
	c := New([]store.Store{
		store.New("first", "Paris A", "", ""),
		store.New("second", "Berlin", "", ""),
		store.New("third", "Paris B", "", ""),
		store.New("fourth", "Paris", "", ""),
	})

	c.SortByCity()

	assert.Equal(t, []string{"second", "first", "third", "fourth"}, names(c.All()))
}

func TestSortBySpecialization(t *testing.T) {
	c := New([]store.Store{
		store.New("1", "", "Tools", ""),
		store.New("2", "", "Books", ""),
		store.New("3", "", "bakery", ""),
		store.New("4", "", "Books", ""),
	})

	c.SortBySpecialization()

	assert.Equal(t, []string{"2", "4", "1", "3"}, names(c.All()))
}
