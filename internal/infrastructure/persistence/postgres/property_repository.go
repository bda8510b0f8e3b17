package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rafabene/propfinder-backend/internal/domain/entities"
	"github.com/rafabene/propfinder-backend/internal/domain/repositories"
)

// PropertyRepository implementa repositories.PropertyRepository
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository cria um novo PropertyRepository
func NewPropertyRepository(db *gorm.DB) repositories.PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, property *entities.Property) error {
	model := r.toModel(property)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	property.ID = model.ID
	property.CreatedAt = model.CreatedAt
	property.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*entities.Property, error) {
	var model PropertyModel

	db := getDB(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *PropertyRepository) Update(ctx context.Context, property *entities.Property) error {
	model := r.toModel(property)

	db := getDB(ctx, r.db)
	return translateWriteError(db.Save(model).Error)
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	db := getDB(ctx, r.db)
	return db.Where("id = ?", id).Delete(&PropertyModel{}).Error
}

func (r *PropertyRepository) DeleteByOwner(ctx context.Context, userID string) error {
	db := getDB(ctx, r.db)
	return db.Where("user_id = ?", userID).Delete(&PropertyModel{}).Error
}

func (r *PropertyRepository) List(ctx context.Context, filters repositories.PropertyFilters) ([]*entities.Property, error) {
	var models []*PropertyModel

	db := getDB(ctx, r.db)
	query := db.Model(&PropertyModel{})

	// Filtros conjuntivos: cada parâmetro presente contribui uma cláusula
	if filters.Featured != nil {
		query = query.Where("featured = ?", *filters.Featured)
	}
	if filters.Location != "" {
		// Substring case-insensitive, portável entre postgres e sqlite
		query = query.Where("lower(location) LIKE ?", "%"+strings.ToLower(filters.Location)+"%")
	}

	query = query.Order("created_at DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	properties := make([]*entities.Property, 0, len(models))
	for _, model := range models {
		properties = append(properties, r.toEntity(model))
	}

	return properties, nil
}

func (r *PropertyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	db := getDB(ctx, r.db)
	err := db.Model(&PropertyModel{}).Count(&count).Error
	return count, err
}

// Conversores
func (r *PropertyRepository) toModel(property *entities.Property) *PropertyModel {
	return &PropertyModel{
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
		Amenities:   datatypes.NewJSONSlice(property.Amenities),
		Description: property.Description,
		CreatedAt:   property.CreatedAt,
		UpdatedAt:   property.UpdatedAt,
	}
}

func (r *PropertyRepository) toEntity(model *PropertyModel) *entities.Property {
	return &entities.Property{
		ID:          model.ID,
		UserID:      model.UserID,
		Title:       model.Title,
		Location:    model.Location,
		Price:       model.Price,
		Area:        model.Area,
		Image:       model.Image,
		Bedrooms:    model.Bedrooms,
		Bathrooms:   model.Bathrooms,
		Rating:      model.Rating,
		Featured:    model.Featured,
		Amenities:   model.Amenities,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
