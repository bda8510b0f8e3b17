package dto

import (
	"time"

	"github.com/rafabene/propfinder-backend/internal/domain/entities"
)

// CreatePropertyRequest representa a requisição para criar um imóvel.
// Price e Area são texto livre, como vêm dos anúncios.
type CreatePropertyRequest struct {
	Title       string   `json:"title" binding:"required,max=500"`
	Location    string   `json:"location" binding:"required,max=500"`
	Price       string   `json:"price" binding:"omitempty,max=100"`
	Area        string   `json:"area" binding:"omitempty,max=100"`
	Image       string   `json:"image" binding:"omitempty,max=500"`
	Bedrooms    int      `json:"bedrooms" binding:"omitempty,min=0"`
	Bathrooms   int      `json:"bathrooms" binding:"omitempty,min=0"`
	Rating      float64  `json:"rating" binding:"omitempty,min=0,max=5"`
	Featured    bool     `json:"featured"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
}

// UpdatePropertyRequest representa uma atualização parcial: campos ausentes
// do JSON permanecem inalterados
type UpdatePropertyRequest struct {
	Title       *string   `json:"title" binding:"omitempty,max=500"`
	Location    *string   `json:"location" binding:"omitempty,max=500"`
	Price       *string   `json:"price" binding:"omitempty,max=100"`
	Area        *string   `json:"area" binding:"omitempty,max=100"`
	Image       *string   `json:"image" binding:"omitempty,max=500"`
	Bedrooms    *int      `json:"bedrooms" binding:"omitempty,min=0"`
	Bathrooms   *int      `json:"bathrooms" binding:"omitempty,min=0"`
	Rating      *float64  `json:"rating" binding:"omitempty,min=0,max=5"`
	Featured    *bool     `json:"featured"`
	Amenities   *[]string `json:"amenities"`
	Description *string   `json:"description"`
}

// PropertyResponse representa a resposta de um imóvel
type PropertyResponse struct {
	ID          string    `json:"id"`
	UserID      *string   `json:"userId,omitempty"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Price       string    `json:"price"`
	Area        string    `json:"area"`
	Image       string    `json:"image"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	Rating      float64   `json:"rating"`
	Featured    bool      `json:"featured"`
	Amenities   []string  `json:"amenities"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToPropertyResponse converte uma entidade Property para PropertyResponse
func ToPropertyResponse(property *entities.Property) PropertyResponse {
	return PropertyResponse{
		ID:          property.ID,
		UserID:      property.UserID,
		Title:       property.Title,
		Location:    property.Location,
		Price:       property.Price,
		Area:        property.Area,
		Image:       property.Image,
		Bedrooms:    property.Bedrooms,
		Bathrooms:   property.Bathrooms,
		Rating:      property.Rating,
		Featured:    property.Featured,
		Amenities:   property.Amenities,
		Description: property.Description,
		CreatedAt:   property.CreatedAt,
		UpdatedAt:   property.UpdatedAt,
	}
}

// ToPropertyResponses converte uma lista de Property para PropertyResponse
func ToPropertyResponses(properties []*entities.Property) []PropertyResponse {
	responses := make([]PropertyResponse, len(properties))
	for i, property := range properties {
		responses[i] = ToPropertyResponse(property)
	}
	return responses
}
