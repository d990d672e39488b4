package contact_test

import (
	"testing"
	"time"

	"contacthub/contact"

	"github.com/stretchr/testify/assert"
)

func sampleContacts() []contact.Contact {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []contact.Contact{
		{ID: "1", Name: "Alice Smith", Email: "a@x.com", Company: "Acme", Category: contact.CategoryWork, IsFavorite: true, CreatedAt: base.Add(3 * time.Hour)},
		{ID: "2", Name: "Bob Jones", Email: "bob@y.com", Company: "Globex", Category: contact.CategoryWork, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "3", Name: "Carol King", Email: "carol@z.com", Category: contact.CategoryFamily, IsFavorite: true, CreatedAt: base.Add(time.Hour)},
		{ID: "4", Name: "Dan Brown", Email: "dan@z.com", Category: contact.CategoryPersonal, CreatedAt: base},
	}
}

func TestFilterApply(t *testing.T) {
	contacts := sampleContacts()

	t.Run("empty filter returns every contact in order", func(t *testing.T) {
		got := contact.Filter{}.Apply(contacts)
		assert.Equal(t, contacts, got)
	})

	t.Run("search matches company case-insensitively", func(t *testing.T) {
		got := contact.Filter{Search: "acme"}.Apply(contacts)
		assert.Len(t, got, 1)
		assert.Equal(t, "Alice Smith", got[0].Name)
	})

	t.Run("search with no match returns empty result", func(t *testing.T) {
		got := contact.Filter{Search: "bob smith"}.Apply(contacts)
		assert.Empty(t, got)
	})

	t.Run("search matches email", func(t *testing.T) {
		got := contact.Filter{Search: "B@Y.com"}.Apply(contacts)
		assert.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("category and favorites combine conjunctively", func(t *testing.T) {
		got := contact.Filter{Category: contact.CategoryWork, FavoritesOnly: true}.Apply(contacts)
		assert.Len(t, got, 1)
		assert.Equal(t, "Alice Smith", got[0].Name, "only the favorite work contact remains")
	})

	t.Run("the all sentinel does not restrict by category", func(t *testing.T) {
		got := contact.Filter{Category: contact.CategoryAll}.Apply(contacts)
		assert.Len(t, got, len(contacts))
	})

	t.Run("favorites only", func(t *testing.T) {
		got := contact.Filter{FavoritesOnly: true}.Apply(contacts)
		assert.Equal(t, []string{"1", "3"}, ids(got))
	})

	t.Run("result is a subset satisfying all predicates", func(t *testing.T) {
		f := contact.Filter{Search: "o", Category: contact.CategoryWork}
		for _, c := range f.Apply(contacts) {
			assert.True(t, f.Match(c))
			assert.Contains(t, contacts, c)
		}
	})

	t.Run("filtering preserves input order", func(t *testing.T) {
		got := contact.Filter{Search: "o"}.Apply(contacts)
		assert.Equal(t, []string{"2", "3", "4"}, ids(got), "Bob, Carol, Dan all contain an o, in input order")
	})

	t.Run("pure and deterministic", func(t *testing.T) {
		before := sampleContacts()
		f := contact.Filter{Search: "a", FavoritesOnly: true}

		first := f.Apply(contacts)
		second := f.Apply(contacts)

		assert.Equal(t, first, second)
		assert.Equal(t, before, contacts, "input must not be mutated")
	})
}

func ids(contacts []contact.Contact) []string {
	out := make([]string, len(contacts))
	for i, c := range contacts {
		out[i] = c.ID
	}
	return out
}
