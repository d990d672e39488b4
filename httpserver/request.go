package httpserver

import (
	"contacthub/contact"
)

// ContactRequest is the shared payload for creating and updating a contact.
type ContactRequest struct {
	Name       string `json:"name" validate:"required,notblank,max=100"`
	Email      string `json:"email" validate:"required,notblank,email,max=255"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	Company    string `json:"company" validate:"omitempty,max=100"`
	Category   string `json:"category" validate:"category"`
	Avatar     string `json:"avatar" validate:"omitempty,url,max=500"`
	IsFavorite bool   `json:"is_favorite"`
}

func (r ContactRequest) ToFields() contact.Fields {
	category, _ := contact.ParseCategory(r.Category)
	return contact.Fields{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Company:    r.Company,
		Category:   category,
		Avatar:     r.Avatar,
		IsFavorite: r.IsFavorite,
	}
}

// SetFavoriteRequest carries the explicit desired favorite value. The caller
// computes it from the snapshot it is reacting to, which keeps the write
// unambiguous even when issued against stale data.
type SetFavoriteRequest struct {
	IsFavorite *bool `json:"is_favorite" validate:"required"`
}
