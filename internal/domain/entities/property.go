package entities

import (
	"errors"
	"time"
)

// Property representa um imóvel anunciado.
// Price e Area são texto livre (ex: "$2,850", "1,200") — vêm assim dos
// anúncios e não são normalizados para valores numéricos.
type Property struct {
	ID          string
	UserID      *string // dono opcional; nil para imóveis sem dono (seed)
	Title       string
	Location    string
	Price       string
	Area        string
	Image       string
	Bedrooms    int
	Bathrooms   int
	Rating      float64 // 0 a 5
	Featured    bool
	Amenities   []string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy verifica se o imóvel pertence ao usuário informado
func (p *Property) OwnedBy(userID string) bool {
	return p.UserID != nil && *p.UserID == userID
}

// Validate valida regras de negócio do Property
func (p *Property) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}

	if p.Location == "" {
		return errors.New("location is required")
	}

	if p.Bedrooms < 0 || p.Bathrooms < 0 {
		return errors.New("bedrooms and bathrooms must not be negative")
	}

	if p.Rating < 0 || p.Rating > 5 {
		return errors.New("rating must be between 0 and 5")
	}

	return nil
}
