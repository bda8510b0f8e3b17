package repositories

import (
	"context"

	"github.com/rafabene/propfinder-backend/internal/domain/entities"
)

// BlogPostRepository define a interface para persistência de posts do blog
type BlogPostRepository interface {
	Create(ctx context.Context, post *entities.BlogPost) error
	FindByID(ctx context.Context, id string) (*entities.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*entities.BlogPost, error)
	Update(ctx context.Context, post *entities.BlogPost) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	List(ctx context.Context, filters BlogFilters) ([]*entities.BlogPost, error)
	Count(ctx context.Context) (int64, error)
}

// BlogFilters contém filtros para listagem de posts.
// Category é igualdade exata; Tag é pertinência exata de elemento.
type BlogFilters struct {
	Category string
	Tag      string
}
