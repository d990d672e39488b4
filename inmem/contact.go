// Package inmem provides a mutex-guarded in-memory contact repository, used
// as the test backend and as the `memory` storage driver.
package inmem

import (
	"context"
	"slices"
	"sync"
	"time"

	"contacthub/contact"

	"github.com/google/uuid"
)

// ContactRepository implements contact.Repository in memory. Contacts are
// kept newest-first, matching the ordering contract of AllContacts.
type ContactRepository struct {
	mu       sync.Mutex
	index    map[string]int
	contacts []contact.Contact

	// now is swappable so tests can pin creation timestamps.
	now func() time.Time
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{
		index: make(map[string]int),
		now:   time.Now,
	}
}

func (r *ContactRepository) AllContacts(_ context.Context) ([]contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.contacts), nil
}

func (r *ContactRepository) CreateContact(_ context.Context, f contact.Fields) (contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := contact.Contact{
		ID:         uuid.NewString(),
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		Company:    f.Company,
		Category:   f.Category,
		Avatar:     f.Avatar,
		IsFavorite: f.IsFavorite,
		CreatedAt:  r.now().UTC(),
	}

	r.contacts = slices.Insert(r.contacts, 0, c)
	r.reindex()
	return c, nil
}

func (r *ContactRepository) UpdateContact(_ context.Context, id string, f contact.Fields) (contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return contact.Contact{}, contact.ErrNotFound
	}

	c := &r.contacts[i]
	c.Name = f.Name
	c.Email = f.Email
	c.Phone = f.Phone
	c.Company = f.Company
	c.Category = f.Category
	c.Avatar = f.Avatar
	c.IsFavorite = f.IsFavorite
	return *c, nil
}

func (r *ContactRepository) SetFavorite(_ context.Context, id string, favorite bool) (contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return contact.Contact{}, contact.ErrNotFound
	}

	r.contacts[i].IsFavorite = favorite
	return r.contacts[i], nil
}

func (r *ContactRepository) DeleteContact(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return contact.ErrNotFound
	}

	r.contacts = slices.Delete(r.contacts, i, i+1)
	r.reindex()
	return nil
}

func (r *ContactRepository) reindex() {
	r.index = make(map[string]int, len(r.contacts))
	for i, c := range r.contacts {
		r.index[c.ID] = i
	}
}
