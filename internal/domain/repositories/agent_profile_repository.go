package repositories

import (
	"context"

	"github.com/rafabene/propfinder-backend/internal/domain/entities"
)

// AgentRecord junta o profile com o usuário dono, na forma que a API
// expõe agentes (campos do profile + nome/email do usuário)
type AgentRecord struct {
	Profile *entities.AgentProfile
	User    *entities.User
}

// AgentProfileRepository define a interface para persistência de profiles
// de agente. Escritas só devem acontecer dentro da operação transacional
// de promoção/demissão do AgentService.
type AgentProfileRepository interface {
	Create(ctx context.Context, profile *entities.AgentProfile) error
	FindByID(ctx context.Context, id string) (*entities.AgentProfile, error)
	FindByUserID(ctx context.Context, userID string) (*entities.AgentProfile, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
	List(ctx context.Context, filters AgentFilters) ([]*AgentRecord, error)
	Count(ctx context.Context) (int64, error)
}

// AgentFilters contém filtros para listagem de agentes.
// Specialty e Language são pertinência exata de elemento no conjunto
// armazenado (não substring); vazio não contribui cláusula.
type AgentFilters struct {
	Specialty string
	Language  string

	// OrderByCreated ordena por criação decrescente (visão admin);
	// o default é rating decrescente
	OrderByCreated bool
}
