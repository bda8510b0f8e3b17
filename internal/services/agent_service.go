package services

import (
	"context"
	"net/http"
	"time"

	"github.com/rafabene/propfinder-backend/internal/domain"
	"github.com/rafabene/propfinder-backend/internal/domain/authz"
	"github.com/rafabene/propfinder-backend/internal/domain/entities"
	"github.com/rafabene/propfinder-backend/internal/domain/errors"
	"github.com/rafabene/propfinder-backend/internal/domain/ports"
	"github.com/rafabene/propfinder-backend/internal/domain/repositories"
	"github.com/rafabene/propfinder-backend/internal/domain/valueobjects"
)

// AgentView é a forma achatada em que a API expõe um agente:
// campos do AgentProfile mais nome/email do User dono. O ID é o do profile.
type AgentView struct {
	ID              string
	Name            string
	Title           string
	Image           string
	Rating          float64
	ReviewCount     int
	SoldProperties  int
	YearsExperience int
	Languages       []string
	Specialties     []string
	Phone           string
	Email           string
	Bio             string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AgentService é o único ponto do sistema que concede o role AGENT: toda
// promoção cria o AgentProfile na mesma transação, e toda demissão (aqui ou
// no AdminService) remove o profile junto. Ou o par (role do usuário,
// profile) muda inteiro, ou nada muda.
type AgentService struct {
	profileRepo repositories.AgentProfileRepository
	userRepo    repositories.UserRepository
	uow         domain.UnitOfWork
	logger      ports.Logger
}

// NewAgentService cria um novo AgentService
func NewAgentService(
	profileRepo repositories.AgentProfileRepository,
	userRepo repositories.UserRepository,
	uow domain.UnitOfWork,
	logger ports.Logger,
) *AgentService {
	return &AgentService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		uow:         uow,
		logger:      logger,
	}
}

// CreateAgentInput representa os dados para criar um agente
type CreateAgentInput struct {
	Name            string
	Email           string
	Title           string
	Image           string
	Rating          float64
	ReviewCount     int
	SoldProperties  int
	YearsExperience int
	Languages       []string
	Specialties     []string
	Phone           string
	Bio             string
}

// ListAgents lista agentes ordenados por rating decrescente, com filtros
// conjuntivos de specialty e language
func (s *AgentService) ListAgents(ctx context.Context, filters repositories.AgentFilters) ([]*AgentView, error) {
	records, err := s.profileRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	views := make([]*AgentView, 0, len(records))
	for _, record := range records {
		views = append(views, toAgentView(record.Profile, record.User))
	}
	return views, nil
}

// GetAgent busca um agente pelo id do profile
func (s *AgentService) GetAgent(ctx context.Context, id string) (*AgentView, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.ErrNotFound
	}

	user, err := s.userRepo.FindByID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrNotFound
	}

	return toAgentView(profile, user), nil
}

// CreateAgent promove (ou cria) o usuário do email informado a AGENT e cria
// o profile vinculado, atomicamente. Repetir a chamada com o mesmo email
// nunca duplica o usuário: a segunda tentativa falha com ErrConflict e o
// role do usuário permanece como estava antes dela (rollback).
func (s *AgentService) CreateAgent(ctx context.Context, identity authz.Identity, input CreateAgentInput) (*AgentView, error) {
	if err := authz.Authorize(identity, authz.RouteAgents, http.MethodPost, nil); err != nil {
		return nil, err
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	var view *AgentView

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.FindByEmail(txCtx, email.String())
		if err != nil {
			return err
		}

		if user == nil {
			user = &entities.User{
				Email: email,
				Name:  input.Name,
				Role:  entities.RoleAgent,
			}
			if err := user.Validate(); err != nil {
				return &errors.ValidationErrors{
					Fields: []errors.ValidationError{{Field: "user", Message: err.Error()}},
				}
			}
			if err := s.userRepo.Create(txCtx, user); err != nil {
				return err
			}
		} else if user.Role != entities.RoleAgent {
			user.Role = entities.RoleAgent
			if err := s.userRepo.Update(txCtx, user); err != nil {
				return err
			}
		}

		// Profile já existente para o usuário resolvido: conflito.
		// O retorno de erro desfaz a mudança de role feita acima.
		existing, err := s.profileRepo.FindByUserID(txCtx, user.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrConflict
		}

		profile := &entities.AgentProfile{
			UserID:          user.ID,
			Title:           input.Title,
			Image:           input.Image,
			Rating:          input.Rating,
			ReviewCount:     input.ReviewCount,
			SoldProperties:  input.SoldProperties,
			YearsExperience: input.YearsExperience,
			Languages:       input.Languages,
			Specialties:     input.Specialties,
			Phone:           input.Phone,
			Bio:             input.Bio,
		}
		if err := profile.Validate(); err != nil {
			return &errors.ValidationErrors{
				Fields: []errors.ValidationError{{Field: "profile", Message: err.Error()}},
			}
		}

		// O índice único em user_id cobre a corrida entre o FindByUserID
		// acima e este Create
		if err := s.profileRepo.Create(txCtx, profile); err != nil {
			return err
		}

		view = toAgentView(profile, user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("agent created", "profile_id", view.ID, "email", view.Email)
	return view, nil
}

// DeleteAgent remove o profile e rebaixa o usuário dono para USER,
// atomicamente. Um estado parcial (profile removido com role intacto, ou
// vice-versa) nunca é observável.
func (s *AgentService) DeleteAgent(ctx context.Context, identity authz.Identity, profileID string) error {
	if err := authz.Authorize(identity, authz.RouteAdmin, http.MethodDelete, nil); err != nil {
		return err
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		profile, err := s.profileRepo.FindByID(txCtx, profileID)
		if err != nil {
			return err
		}
		if profile == nil {
			return errors.ErrNotFound
		}

		if err := s.profileRepo.Delete(txCtx, profile.ID); err != nil {
			return err
		}

		user, err := s.userRepo.FindByID(txCtx, profile.UserID)
		if err != nil {
			return err
		}
		if user != nil && user.Role == entities.RoleAgent {
			user.Role = entities.RoleUser
			if err := s.userRepo.Update(txCtx, user); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("agent deleted", "profile_id", profileID)
	return nil
}

// ListAdminAgents lista agentes para o painel admin, ordenados por criação
// decrescente
func (s *AgentService) ListAdminAgents(ctx context.Context, identity authz.Identity) ([]*AgentView, error) {
	if err := authz.Authorize(identity, authz.RouteAdmin, http.MethodGet, nil); err != nil {
		return nil, err
	}

	return s.ListAgents(ctx, repositories.AgentFilters{OrderByCreated: true})
}

func toAgentView(profile *entities.AgentProfile, user *entities.User) *AgentView {
	return &AgentView{
		ID:              profile.ID,
		Name:            user.Name,
		Title:           profile.Title,
		Image:           profile.Image,
		Rating:          profile.Rating,
		ReviewCount:     profile.ReviewCount,
		SoldProperties:  profile.SoldProperties,
		YearsExperience: profile.YearsExperience,
		Languages:       profile.Languages,
		Specialties:     profile.Specialties,
		Phone:           profile.Phone,
		Email:           user.Email.String(),
		Bio:             profile.Bio,
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}
