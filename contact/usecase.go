package contact

import (
	"context"
	"slices"
	"sync"

	"contacthub/pkg/notify"
)

// Service is the application-facing port for contact management.
type Service interface {
	ListContacts(ctx context.Context) ([]Contact, error)
	AddContact(ctx context.Context, f Fields) (Contact, error)
	UpdateContact(ctx context.Context, id string, f Fields) (Contact, error)
	SetFavorite(ctx context.Context, id string, favorite bool) (Contact, error)
	ToggleFavorite(ctx context.Context, id string) (Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

// Repository is the storage port. AllContacts returns contacts ordered by
// creation time, newest first; mutations return the stored row so callers
// never need a follow-up read.
type Repository interface {
	AllContacts(ctx context.Context) ([]Contact, error)
	CreateContact(ctx context.Context, f Fields) (Contact, error)
	UpdateContact(ctx context.Context, id string, f Fields) (Contact, error)
	SetFavorite(ctx context.Context, id string, favorite bool) (Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

// Usecase implements Service on top of a Repository. It memoizes the last
// successful listing and drops that projection after every successful
// mutation, so the next listing reflects the change. Failed mutations leave
// the projection untouched.
type Usecase struct {
	r        Repository
	notifier notify.Notifier

	mu     sync.Mutex
	cached []Contact
	valid  bool
}

type Option func(*Usecase)

// WithNotifier sets the sink for per-attempt user feedback.
func WithNotifier(n notify.Notifier) Option {
	return func(uc *Usecase) {
		uc.notifier = n
	}
}

func NewUsecase(r Repository, opts ...Option) *Usecase {
	uc := &Usecase{r: r}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ListContacts returns the full contact set, newest first. The result is
// served from the cached projection when one is valid; callers receive a
// copy and may not observe later refreshes.
func (uc *Usecase) ListContacts(ctx context.Context) ([]Contact, error) {
	uc.mu.Lock()
	if uc.valid {
		out := slices.Clone(uc.cached)
		uc.mu.Unlock()
		return out, nil
	}
	uc.mu.Unlock()

	contacts, err := uc.r.AllContacts(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.cached = slices.Clone(contacts)
	uc.valid = true
	uc.mu.Unlock()

	return contacts, nil
}

// AddContact validates f and creates a new contact. Validation failures are
// reported before any store call is attempted.
func (uc *Usecase) AddContact(ctx context.Context, f Fields) (Contact, error) {
	f = f.Sanitized()
	if err := f.Validate(); err != nil {
		return Contact{}, err
	}

	created, err := uc.r.CreateContact(ctx, f)
	if err != nil {
		uc.notifyError(ctx, "Failed to add contact. Please try again.")
		return Contact{}, err
	}

	uc.invalidate()
	uc.notifyInfo(ctx, "Contact added", created.Name+" has been added to your contacts.")
	return created, nil
}

// UpdateContact validates f and replaces all mutable fields of the contact
// with the given id. The creation timestamp is never touched.
func (uc *Usecase) UpdateContact(ctx context.Context, id string, f Fields) (Contact, error) {
	f = f.Sanitized()
	if err := f.Validate(); err != nil {
		return Contact{}, err
	}

	updated, err := uc.r.UpdateContact(ctx, id, f)
	if err != nil {
		uc.notifyError(ctx, "Failed to update contact. Please try again.")
		return Contact{}, err
	}

	uc.invalidate()
	uc.notifyInfo(ctx, "Contact updated", updated.Name+" has been updated.")
	return updated, nil
}

// SetFavorite writes an explicit favorite value. Callers that react to a
// snapshot should pass the value they computed from that same snapshot;
// concurrent writers are last-writer-wins.
func (uc *Usecase) SetFavorite(ctx context.Context, id string, favorite bool) (Contact, error) {
	updated, err := uc.r.SetFavorite(ctx, id, favorite)
	if err != nil {
		uc.notifyError(ctx, "Failed to update favorite status. Please try again.")
		return Contact{}, err
	}

	uc.invalidate()
	if updated.IsFavorite {
		uc.notifyInfo(ctx, "Added to favorites", updated.Name+" has been added to your favorites.")
	} else {
		uc.notifyInfo(ctx, "Removed from favorites", updated.Name+" has been removed from your favorites.")
	}
	return updated, nil
}

// ToggleFavorite flips the favorite flag based on the current local
// projection. It returns ErrNotFound when the id is absent from that
// projection at call time.
func (uc *Usecase) ToggleFavorite(ctx context.Context, id string) (Contact, error) {
	contacts, err := uc.ListContacts(ctx)
	if err != nil {
		uc.notifyError(ctx, "Failed to update favorite status. Please try again.")
		return Contact{}, err
	}

	for _, c := range contacts {
		if c.ID == id {
			return uc.SetFavorite(ctx, id, !c.IsFavorite)
		}
	}

	uc.notifyError(ctx, "Failed to update favorite status. Please try again.")
	return Contact{}, ErrNotFound
}

// DeleteContact removes the contact with the given id. Deleting an unknown
// id is an error, not a silent success.
func (uc *Usecase) DeleteContact(ctx context.Context, id string) error {
	name := uc.cachedName(id)

	if err := uc.r.DeleteContact(ctx, id); err != nil {
		uc.notifyError(ctx, "Failed to delete contact. Please try again.")
		return err
	}

	uc.invalidate()
	if name == "" {
		name = "The contact"
	}
	uc.notifyInfo(ctx, "Contact deleted", name+" has been removed from your contacts.")
	return nil
}

func (uc *Usecase) invalidate() {
	uc.mu.Lock()
	uc.valid = false
	uc.cached = nil
	uc.mu.Unlock()
}

// cachedName looks up a contact's name in the current projection without
// forcing a fetch. Used only to phrase the deletion notification.
func (uc *Usecase) cachedName(id string) string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !uc.valid {
		return ""
	}
	for _, c := range uc.cached {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func (uc *Usecase) notifyInfo(ctx context.Context, title, description string) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.Notify(ctx, notify.Notification{
		Title:       title,
		Description: description,
		Severity:    notify.SeverityInfo,
	})
}

func (uc *Usecase) notifyError(ctx context.Context, description string) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.Notify(ctx, notify.Notification{
		Title:       "Error",
		Description: description,
		Severity:    notify.SeverityError,
	})
}
