package repositories

import (
	"context"

	"github.com/rafabene/propfinder-backend/internal/domain/entities"
)

// PropertyRepository define a interface para persistência de imóveis
type PropertyRepository interface {
	Create(ctx context.Context, property *entities.Property) error
	FindByID(ctx context.Context, id string) (*entities.Property, error)
	Update(ctx context.Context, property *entities.Property) error
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, userID string) error
	List(ctx context.Context, filters PropertyFilters) ([]*entities.Property, error)
	Count(ctx context.Context) (int64, error)
}

// PropertyFilters contém filtros para listagem de imóveis.
// Location é busca por substring (case-insensitive); Featured é igualdade.
type PropertyFilters struct {
	Featured *bool
	Location string
}
