// Package ui holds the transient view state of the contact list: the current
// filter selections and the entry-form state machine. It owns no contact
// data; it derives views from the contact service and dispatches user
// intents to it.
package ui

import (
	"context"

	"contacthub/contact"
)

// FormState enumerates the entry-form states.
type FormState int

const (
	FormClosed FormState = iota
	FormAdding
	FormEditing
)

// Controller is not safe for concurrent use; it models a single user's
// session, serialized by the caller.
type Controller struct {
	service contact.Service

	SearchTerm    string
	Category      contact.Category
	FavoritesOnly bool

	formState  FormState
	editTarget contact.Contact
}

func NewController(service contact.Service) *Controller {
	return &Controller{
		service:  service,
		Category: contact.CategoryAll,
	}
}

// View returns the contact set under the current filter selections,
// preserving the service's newest-first ordering.
func (c *Controller) View(ctx context.Context) ([]contact.Contact, error) {
	contacts, err := c.service.ListContacts(ctx)
	if err != nil {
		return nil, err
	}

	return contact.Filter{
		Search:        c.SearchTerm,
		Category:      c.Category,
		FavoritesOnly: c.FavoritesOnly,
	}.Apply(contacts), nil
}

func (c *Controller) FormState() FormState {
	return c.formState
}

// EditTarget returns the contact being edited. Only meaningful while the
// form is in FormEditing.
func (c *Controller) EditTarget() contact.Contact {
	return c.editTarget
}

// BeginAdd opens the entry form in add mode, discarding any edit target.
func (c *Controller) BeginAdd() {
	c.editTarget = contact.Contact{}
	c.formState = FormAdding
}

// BeginEdit opens the entry form in edit mode, prefilled from target.
func (c *Controller) BeginEdit(target contact.Contact) {
	c.editTarget = target
	c.formState = FormEditing
}

// Cancel closes the form and discards in-progress edits without touching
// the service.
func (c *Controller) Cancel() {
	c.editTarget = contact.Contact{}
	c.formState = FormClosed
}

// Submit dispatches the form: create when adding, update when editing. The
// form closes once the operation is dispatched regardless of outcome; the
// error is returned so the caller can decide whether to reopen it.
func (c *Controller) Submit(ctx context.Context, f contact.Fields) (contact.Contact, error) {
	target := c.editTarget
	state := c.formState
	c.Cancel()

	if state == FormEditing {
		return c.service.UpdateContact(ctx, target.ID, f)
	}
	return c.service.AddContact(ctx, f)
}

// ToggleFavorite forwards the favorite intent for the given contact.
func (c *Controller) ToggleFavorite(ctx context.Context, id string) (contact.Contact, error) {
	return c.service.ToggleFavorite(ctx, id)
}

// Delete forwards the delete intent for the given contact.
func (c *Controller) Delete(ctx context.Context, id string) error {
	return c.service.DeleteContact(ctx, id)
}
