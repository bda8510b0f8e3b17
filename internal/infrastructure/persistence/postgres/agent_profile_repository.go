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

// AgentProfileRepository implementa repositories.AgentProfileRepository
type AgentProfileRepository struct {
	db *gorm.DB
}

// NewAgentProfileRepository cria um novo AgentProfileRepository
func NewAgentProfileRepository(db *gorm.DB) repositories.AgentProfileRepository {
	return &AgentProfileRepository{db: db}
}

func (r *AgentProfileRepository) Create(ctx context.Context, profile *entities.AgentProfile) error {
	model := r.toModel(profile)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	profile.ID = model.ID
	profile.CreatedAt = model.CreatedAt
	profile.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *AgentProfileRepository) FindByID(ctx context.Context, id string) (*entities.AgentProfile, error) {
	var model AgentProfileModel

	db := getDB(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *AgentProfileRepository) FindByUserID(ctx context.Context, userID string) (*entities.AgentProfile, error) {
	var model AgentProfileModel

	db := getDB(ctx, r.db)
	if err := db.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *AgentProfileRepository) Delete(ctx context.Context, id string) error {
	db := getDB(ctx, r.db)
	return db.Where("id = ?", id).Delete(&AgentProfileModel{}).Error
}

func (r *AgentProfileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	db := getDB(ctx, r.db)
	return db.Where("user_id = ?", userID).Delete(&AgentProfileModel{}).Error
}

func (r *AgentProfileRepository) List(ctx context.Context, filters repositories.AgentFilters) ([]*repositories.AgentRecord, error) {
	db := getDB(ctx, r.db)

	query := db.Model(&AgentProfileModel{})
	if filters.OrderByCreated {
		query = query.Order("created_at DESC")
	} else {
		query = query.Order("rating DESC")
	}

	var models []*AgentProfileModel
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	// Filtros de pertinência em conjunto (specialty, language) são aplicados
	// sobre o JSON decodificado: igualdade exata de elemento, conjuntiva
	filtered := make([]*AgentProfileModel, 0, len(models))
	userIDs := make([]string, 0, len(models))
	for _, m := range models {
		if filters.Specialty != "" && !containsElement(m.Specialties, filters.Specialty) {
			continue
		}
		if filters.Language != "" && !containsElement(m.Languages, filters.Language) {
			continue
		}
		filtered = append(filtered, m)
		userIDs = append(userIDs, m.UserID)
	}

	if len(filtered) == 0 {
		return []*repositories.AgentRecord{}, nil
	}

	// Carregar os usuários donos em uma única consulta
	var userModels []*UserModel
	if err := db.Where("id IN ?", userIDs).Find(&userModels).Error; err != nil {
		return nil, err
	}

	usersByID := make(map[string]*UserModel, len(userModels))
	for _, u := range userModels {
		usersByID[u.ID] = u
	}

	userRepo := &UserRepository{db: r.db}
	records := make([]*repositories.AgentRecord, 0, len(filtered))
	for _, m := range filtered {
		userModel, ok := usersByID[m.UserID]
		if !ok {
			// Profile órfão: não deveria existir, mas não derruba a listagem
			continue
		}
		user, err := userRepo.toEntity(userModel)
		if err != nil {
			return nil, err
		}
		records = append(records, &repositories.AgentRecord{
			Profile: r.toEntity(m),
			User:    user,
		})
	}

	return records, nil
}

func (r *AgentProfileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	db := getDB(ctx, r.db)
	err := db.Model(&AgentProfileModel{}).Count(&count).Error
	return count, err
}

// Conversores
func (r *AgentProfileRepository) toModel(profile *entities.AgentProfile) *AgentProfileModel {
	return &AgentProfileModel{
		ID:              profile.ID,
		UserID:          profile.UserID,
		Title:           profile.Title,
		Image:           profile.Image,
		Rating:          profile.Rating,
		ReviewCount:     profile.ReviewCount,
		SoldProperties:  profile.SoldProperties,
		YearsExperience: profile.YearsExperience,
		Languages:       datatypes.NewJSONSlice(profile.Languages),
		Specialties:     datatypes.NewJSONSlice(profile.Specialties),
		Phone:           profile.Phone,
		Bio:             profile.Bio,
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}

func (r *AgentProfileRepository) toEntity(model *AgentProfileModel) *entities.AgentProfile {
	return &entities.AgentProfile{
		ID:              model.ID,
		UserID:          model.UserID,
		Title:           model.Title,
		Image:           model.Image,
		Rating:          model.Rating,
		ReviewCount:     model.ReviewCount,
		SoldProperties:  model.SoldProperties,
		YearsExperience: model.YearsExperience,
		Languages:       model.Languages,
		Specialties:     model.Specialties,
		Phone:           model.Phone,
		Bio:             model.Bio,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
