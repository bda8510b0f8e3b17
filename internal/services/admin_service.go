package services

import (
	"context"
	"net/http"

	"github.com/rafabene/propfinder-backend/internal/domain"
	"github.com/rafabene/propfinder-backend/internal/domain/authz"
	"github.com/rafabene/propfinder-backend/internal/domain/entities"
	"github.com/rafabene/propfinder-backend/internal/domain/errors"
	"github.com/rafabene/propfinder-backend/internal/domain/ports"
	"github.com/rafabene/propfinder-backend/internal/domain/repositories"
)

// Stats agrega as contagens exibidas no painel admin
type Stats struct {
	Users      int64
	Agents     int64
	Properties int64
	BlogPosts  int64
}

// AdminService contém as operações restritas a administradores
type AdminService struct {
	userRepo     repositories.UserRepository
	profileRepo  repositories.AgentProfileRepository
	propertyRepo repositories.PropertyRepository
	blogRepo     repositories.BlogPostRepository
	uow          domain.UnitOfWork
	logger       ports.Logger
}

// NewAdminService cria um novo AdminService
func NewAdminService(
	userRepo repositories.UserRepository,
	profileRepo repositories.AgentProfileRepository,
	propertyRepo repositories.PropertyRepository,
	blogRepo repositories.BlogPostRepository,
	uow domain.UnitOfWork,
	logger ports.Logger,
) *AdminService {
	return &AdminService{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		propertyRepo: propertyRepo,
		blogRepo:     blogRepo,
		uow:          uow,
		logger:       logger,
	}
}

// UpdateUserInput representa a atualização de um usuário pelo admin
type UpdateUserInput struct {
	Name *string
	Role *entities.Role
}

// GetStats retorna as contagens do painel admin
func (s *AdminService) GetStats(ctx context.Context, identity authz.Identity) (*Stats, error) {
	if err := authz.Authorize(identity, authz.RouteAdmin, http.MethodGet, nil); err != nil {
		return nil, err
	}

	stats := &Stats{}
	var err error

	if stats.Users, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Agents, err = s.profileRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Properties, err = s.propertyRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.BlogPosts, err = s.blogRepo.Count(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

// ListUsers lista usuários para o painel admin
func (s *AdminService) ListUsers(ctx context.Context, identity authz.Identity, filters repositories.UserFilters) ([]*entities.User, error) {
	if err := authz.Authorize(identity, authz.RouteAdmin, http.MethodGet, nil); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx, filters)
}

// UpdateUser altera nome e/ou role de um usuário. Um admin não pode alterar
// o próprio registro por aqui (auto-proteção contra lockout). Rebaixar um
// AGENT remove o profile na mesma transação, preservando a invariante
// "profile existe sse role == AGENT". Pelo mesmo motivo a promoção a AGENT
// é rejeitada: ela exige criar o profile junto, e isso é papel exclusivo de
// AgentService.CreateAgent.
func (s *AdminService) UpdateUser(ctx context.Context, identity authz.Identity, targetID string, input UpdateUserInput) (*entities.User, error) {
	if err := authz.Authorize(identity, authz.RouteAdmin, http.MethodPut, nil); err != nil {
		return nil, err
	}

	if targetID == identity.UserID {
		return nil, errors.ErrSelfManagement
	}

	var updated *entities.User

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.FindByID(txCtx, targetID)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.ErrNotFound
		}

		if input.Role != nil && *input.Role != user.Role {
			if !input.Role.IsValid() {
				return errors.ErrInvalidRole
			}
			if *input.Role == entities.RoleAgent {
				return &errors.ValidationErrors{
					Fields: []errors.ValidationError{{
						Field:   "role",
						Message: "role AGENT requires an agent profile; create the agent instead",
					}},
				}
			}
			if user.Role == entities.RoleAgent {
				if err := s.profileRepo.DeleteByUserID(txCtx, user.ID); err != nil {
					return err
				}
			}
			user.Role = *input.Role
		}

		if input.Name != nil {
			user.Name = *input.Name
		}

		if err := user.Validate(); err != nil {
			return &errors.ValidationErrors{
				Fields: []errors.ValidationError{{Field: "user", Message: err.Error()}},
			}
		}

		if err := s.userRepo.Update(txCtx, user); err != nil {
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user updated by admin", "user_id", targetID, "admin_id", identity.UserID)
	return updated, nil
}

// DeleteUser remove um usuário em cascata: o AgentProfile dependente e os
// imóveis de sua posse saem na mesma transação — nenhuma chave estrangeira
// órfã sobrevive. Um admin não pode remover a própria conta.
func (s *AdminService) DeleteUser(ctx context.Context, identity authz.Identity, targetID string) error {
	if err := authz.Authorize(identity, authz.RouteAdmin, http.MethodDelete, nil); err != nil {
		return err
	}

	if targetID == identity.UserID {
		return errors.ErrSelfManagement
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.FindByID(txCtx, targetID)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.ErrNotFound
		}

		if err := s.profileRepo.DeleteByUserID(txCtx, user.ID); err != nil {
			return err
		}
		if err := s.propertyRepo.DeleteByOwner(txCtx, user.ID); err != nil {
			return err
		}
		return s.userRepo.Delete(txCtx, user.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("user deleted by admin", "user_id", targetID, "admin_id", identity.UserID)
	return nil
}
