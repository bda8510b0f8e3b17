package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rafabene/propfinder-backend/internal/domain/entities"
	"github.com/rafabene/propfinder-backend/internal/domain/repositories"
)

// BlogPostRepository implementa repositories.BlogPostRepository
type BlogPostRepository struct {
	db *gorm.DB
}

// NewBlogPostRepository cria um novo BlogPostRepository
func NewBlogPostRepository(db *gorm.DB) repositories.BlogPostRepository {
	return &BlogPostRepository{db: db}
}

func (r *BlogPostRepository) Create(ctx context.Context, post *entities.BlogPost) error {
	model := r.toModel(post)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	post.ID = model.ID
	post.CreatedAt = model.CreatedAt
	post.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *BlogPostRepository) FindByID(ctx context.Context, id string) (*entities.BlogPost, error) {
	var model BlogPostModel

	db := getDB(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *BlogPostRepository) FindBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	var model BlogPostModel

	db := getDB(ctx, r.db)
	if err := db.Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *BlogPostRepository) Update(ctx context.Context, post *entities.BlogPost) error {
	model := r.toModel(post)

	db := getDB(ctx, r.db)
	return translateWriteError(db.Save(model).Error)
}

func (r *BlogPostRepository) Delete(ctx context.Context, id string) error {
	db := getDB(ctx, r.db)
	return db.Where("id = ?", id).Delete(&BlogPostModel{}).Error
}

func (r *BlogPostRepository) IncrementViews(ctx context.Context, id string) error {
	db := getDB(ctx, r.db)
	return db.Model(&BlogPostModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *BlogPostRepository) List(ctx context.Context, filters repositories.BlogFilters) ([]*entities.BlogPost, error) {
	var models []*BlogPostModel

	db := getDB(ctx, r.db)
	query := db.Model(&BlogPostModel{})

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	query = query.Order("date DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	// Pertinência de tag aplicada sobre o JSON decodificado
	posts := make([]*entities.BlogPost, 0, len(models))
	for _, model := range models {
		if filters.Tag != "" && !containsElement(model.Tags, filters.Tag) {
			continue
		}
		posts = append(posts, r.toEntity(model))
	}

	return posts, nil
}

func (r *BlogPostRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	db := getDB(ctx, r.db)
	err := db.Model(&BlogPostModel{}).Count(&count).Error
	return count, err
}

// Conversores
func (r *BlogPostRepository) toModel(post *entities.BlogPost) *BlogPostModel {
	return &BlogPostModel{
		ID:           post.ID,
		Title:        post.Title,
		Slug:         post.Slug,
		Excerpt:      post.Excerpt,
		Content:      post.Content,
		Image:        post.Image,
		Author:       post.Author,
		AuthorAvatar: post.AuthorAvatar,
		Date:         post.Date,
		ReadTime:     post.ReadTime,
		Category:     post.Category,
		Tags:         datatypes.NewJSONSlice(post.Tags),
		Views:        post.Views,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
	}
}

func (r *BlogPostRepository) toEntity(model *BlogPostModel) *entities.BlogPost {
	return &entities.BlogPost{
		ID:           model.ID,
		Title:        model.Title,
		Slug:         model.Slug,
		Excerpt:      model.Excerpt,
		Content:      model.Content,
		Image:        model.Image,
		Author:       model.Author,
		AuthorAvatar: model.AuthorAvatar,
		Date:         model.Date,
		ReadTime:     model.ReadTime,
		Category:     model.Category,
		Tags:         model.Tags,
		Views:        model.Views,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
