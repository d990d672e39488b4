package contact

import (
	"strings"
	"time"

	"contacthub/errs"
)

var (
	ErrInvalidName     = errs.Errorf(errs.EINVALID, "contact: name is required")
	ErrInvalidEmail    = errs.Errorf(errs.EINVALID, "contact: email is required")
	ErrInvalidCategory = errs.Errorf(errs.EINVALID, "contact: invalid category")
	ErrNotFound        = errs.Errorf(errs.ENOTFOUND, "contact not found")
)

// Category classifies a contact. Exactly four values are valid; the zero
// value is not one of them and must be defaulted before storage.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryFamily   Category = "family"
	CategoryOther    Category = "other"

	// CategoryAll is a filter sentinel, never stored on a contact.
	CategoryAll Category = "all"
)

// DefaultCategory is applied when a contact is created without a category.
const DefaultCategory = CategoryPersonal

func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryFamily, CategoryOther:
		return true
	}
	return false
}

// ParseCategory returns the category named by s, or ErrInvalidCategory.
// An empty string parses to DefaultCategory.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return DefaultCategory, nil
	}
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Contact is a single address-book record. ID and CreatedAt are assigned by
// the store at creation and never change afterwards.
type Contact struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Company    string    `json:"company,omitempty"`
	Category   Category  `json:"category"`
	Avatar     string    `json:"avatar,omitempty"`
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
}

// Fields holds the mutable attributes of a contact, everything a caller may
// set on create or replace on update.
type Fields struct {
	Name       string
	Email      string
	Phone      string
	Company    string
	Category   Category
	Avatar     string
	IsFavorite bool
}

// Sanitized returns a copy with surrounding whitespace trimmed and the
// category defaulted when unset.
func (f Fields) Sanitized() Fields {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Company = strings.TrimSpace(f.Company)
	if f.Category == "" {
		f.Category = DefaultCategory
	}
	return f
}

// Validate checks the invariants enforced before any store call: non-empty
// name and email, category one of the four values.
func (f Fields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrInvalidName
	}

	if strings.TrimSpace(f.Email) == "" {
		return ErrInvalidEmail
	}

	if !f.Category.Valid() {
		return ErrInvalidCategory
	}

	return nil
}

// Fields extracts the mutable attributes of an existing contact, e.g. to
// prefill an edit form.
func (c Contact) Fields() Fields {
	return Fields{
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Company:    c.Company,
		Category:   c.Category,
		Avatar:     c.Avatar,
		IsFavorite: c.IsFavorite,
	}
}
