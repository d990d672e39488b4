package postgres

import (
	"context"
	"time"

	"contacthub/contact"

	"gorm.io/gorm"
)

// ContactModel represents the database model for contacts
type ContactModel struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name       string `gorm:"not null"`
	Email      string `gorm:"not null"`
	Phone      string
	Company    string
	Category   string `gorm:"not null;default:personal"`
	Avatar     string
	IsFavorite bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ContactRepository implements contact.Repository interface
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// AllContacts fetches every contact ordered by creation time, newest first.
func (r *ContactRepository) AllContacts(ctx context.Context) ([]contact.Contact, error) {
	var models []ContactModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	contacts := make([]contact.Contact, len(models))
	for i, model := range models {
		contacts[i] = toDomainContact(model)
	}
	return contacts, nil
}

// CreateContact inserts a new contact and returns the stored row, including
// the database-assigned id and timestamp.
func (r *ContactRepository) CreateContact(ctx context.Context, f contact.Fields) (contact.Contact, error) {
	model := toModelContact(f)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return contact.Contact{}, err
	}
	return toDomainContact(model), nil
}

// UpdateContact replaces all mutable fields of the contact with the given id
// and returns the updated row. The creation timestamp is left untouched.
func (r *ContactRepository) UpdateContact(ctx context.Context, id string, f contact.Fields) (contact.Contact, error) {
	result := r.db.WithContext(ctx).Model(&ContactModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        f.Name,
		"email":       f.Email,
		"phone":       f.Phone,
		"company":     f.Company,
		"category":    string(f.Category),
		"avatar":      f.Avatar,
		"is_favorite": f.IsFavorite,
	})
	if result.Error != nil {
		return contact.Contact{}, result.Error
	}
	if result.RowsAffected == 0 {
		return contact.Contact{}, contact.ErrNotFound
	}
	return r.getByID(ctx, id)
}

// SetFavorite writes an explicit favorite value and returns the updated row.
func (r *ContactRepository) SetFavorite(ctx context.Context, id string, favorite bool) (contact.Contact, error) {
	result := r.db.WithContext(ctx).Model(&ContactModel{}).Where("id = ?", id).Update("is_favorite", favorite)
	if result.Error != nil {
		return contact.Contact{}, result.Error
	}
	if result.RowsAffected == 0 {
		return contact.Contact{}, contact.ErrNotFound
	}
	return r.getByID(ctx, id)
}

// DeleteContact removes the contact with the given id.
func (r *ContactRepository) DeleteContact(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ContactModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return contact.ErrNotFound
	}
	return nil
}

func (r *ContactRepository) getByID(ctx context.Context, id string) (contact.Contact, error) {
	var model ContactModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return contact.Contact{}, err
	}
	return toDomainContact(model), nil
}

func toDomainContact(model ContactModel) contact.Contact {
	return contact.Contact{
		ID:         model.ID,
		Name:       model.Name,
		Email:      model.Email,
		Phone:      model.Phone,
		Company:    model.Company,
		Category:   contact.Category(model.Category),
		Avatar:     model.Avatar,
		IsFavorite: model.IsFavorite,
		CreatedAt:  model.CreatedAt,
	}
}

func toModelContact(f contact.Fields) ContactModel {
	return ContactModel{
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		Company:    f.Company,
		Category:   string(f.Category),
		Avatar:     f.Avatar,
		IsFavorite: f.IsFavorite,
	}
}
