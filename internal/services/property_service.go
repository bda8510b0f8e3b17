package services

import (
	"context"
	"net/http"

	"github.com/rafabene/propfinder-backend/internal/domain/authz"
	"github.com/rafabene/propfinder-backend/internal/domain/entities"
	"github.com/rafabene/propfinder-backend/internal/domain/errors"
	"github.com/rafabene/propfinder-backend/internal/domain/ports"
	"github.com/rafabene/propfinder-backend/internal/domain/repositories"
)

// PropertyService contém a lógica de negócio para imóveis
type PropertyService struct {
	propertyRepo repositories.PropertyRepository
	logger       ports.Logger
}

// NewPropertyService cria um novo PropertyService
func NewPropertyService(propertyRepo repositories.PropertyRepository, logger ports.Logger) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// CreatePropertyInput representa os dados para criar um imóvel
type CreatePropertyInput struct {
	Title       string
	Location    string
	Price       string
	Area        string
	Image       string
	Bedrooms    int
	Bathrooms   int
	Rating      float64
	Featured    bool
	Amenities   []string
	Description string
}

// UpdatePropertyInput representa uma atualização parcial: campos nil
// permanecem inalterados
type UpdatePropertyInput struct {
	Title       *string
	Location    *string
	Price       *string
	Area        *string
	Image       *string
	Bedrooms    *int
	Bathrooms   *int
	Rating      *float64
	Featured    *bool
	Amenities   *[]string
	Description *string
}

// ListProperties lista imóveis ordenados por criação decrescente
func (s *PropertyService) ListProperties(ctx context.Context, filters repositories.PropertyFilters) ([]*entities.Property, error) {
	return s.propertyRepo.List(ctx, filters)
}

// GetProperty busca um imóvel por ID
func (s *PropertyService) GetProperty(ctx context.Context, id string) (*entities.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.ErrNotFound
	}
	return property, nil
}

// CreateProperty cria um imóvel pertencente à identidade chamadora
// (AGENT ou ADMIN)
func (s *PropertyService) CreateProperty(ctx context.Context, identity authz.Identity, input CreatePropertyInput) (*entities.Property, error) {
	if err := authz.Authorize(identity, authz.RouteProperties, http.MethodPost, nil); err != nil {
		return nil, err
	}

	ownerID := identity.UserID
	property := &entities.Property{
		UserID:      &ownerID,
		Title:       input.Title,
		Location:    input.Location,
		Price:       input.Price,
		Area:        input.Area,
		Image:       input.Image,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Rating:      input.Rating,
		Featured:    input.Featured,
		Amenities:   input.Amenities,
		Description: input.Description,
	}

	if err := property.Validate(); err != nil {
		return nil, &errors.ValidationErrors{
			Fields: []errors.ValidationError{{Field: "property", Message: err.Error()}},
		}
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	s.logger.Info("property created", "property_id", property.ID, "owner_id", ownerID)
	return property, nil
}

// UpdateProperty atualiza parcialmente um imóvel. Exige posse ou ADMIN;
// campos não informados permanecem como estavam.
func (s *PropertyService) UpdateProperty(ctx context.Context, identity authz.Identity, id string, input UpdatePropertyInput) (*entities.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.ErrNotFound
	}

	if err := authz.Authorize(identity, authz.RouteProperties, http.MethodPut, property.UserID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Location != nil {
		property.Location = *input.Location
	}
	if input.Price != nil {
		property.Price = *input.Price
	}
	if input.Area != nil {
		property.Area = *input.Area
	}
	if input.Image != nil {
		property.Image = *input.Image
	}
	if input.Bedrooms != nil {
		property.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		property.Bathrooms = *input.Bathrooms
	}
	if input.Rating != nil {
		property.Rating = *input.Rating
	}
	if input.Featured != nil {
		property.Featured = *input.Featured
	}
	if input.Amenities != nil {
		property.Amenities = *input.Amenities
	}
	if input.Description != nil {
		property.Description = *input.Description
	}

	if err := property.Validate(); err != nil {
		return nil, &errors.ValidationErrors{
			Fields: []errors.ValidationError{{Field: "property", Message: err.Error()}},
		}
	}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// DeleteProperty remove um imóvel. Exige posse ou ADMIN.
func (s *PropertyService) DeleteProperty(ctx context.Context, identity authz.Identity, id string) error {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if property == nil {
		return errors.ErrNotFound
	}

	if err := authz.Authorize(identity, authz.RouteProperties, http.MethodDelete, property.UserID); err != nil {
		return err
	}

	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("property deleted", "property_id", id, "by", identity.UserID)
	return nil
}
