package authz

import (
	"net/http"

	"github.com/rafabene/propfinder-backend/internal/domain/entities"
	"github.com/rafabene/propfinder-backend/internal/domain/errors"
)

// Identity é o resultado da resolução de credencial de uma requisição.
// O zero value representa uma requisição anônima.
type Identity struct {
	UserID string
	Role   entities.Role
}

// Anonymous retorna a identidade de uma requisição sem credencial
func Anonymous() Identity {
	return Identity{}
}

// IsAnonymous verifica se a identidade é anônima
func (i Identity) IsAnonymous() bool {
	return i.UserID == ""
}

// RouteClass classifica os recursos da API para fins de autorização
type RouteClass string

const (
	RouteProperties RouteClass = "properties"
	RouteAgents     RouteClass = "agents"
	RouteBlog       RouteClass = "blog"
	RouteAdmin      RouteClass = "admin"
)

// requirement é o nível de acesso exigido por uma combinação rota × método
type requirement int

const (
	public    requirement = iota
	publisher             // AGENT ou ADMIN
	owner                 // dono do recurso ou ADMIN
	admin
)

// policy é a tabela estática rota × método → nível exigido.
// Mutações em blog não exigem posse: qualquer AGENT/ADMIN pode editar
// qualquer post (Author é texto livre, não chave de usuário).
var policy = map[RouteClass]map[string]requirement{
	RouteProperties: {
		http.MethodGet:    public,
		http.MethodPost:   publisher,
		http.MethodPut:    owner,
		http.MethodDelete: owner,
	},
	RouteAgents: {
		http.MethodGet:    public,
		http.MethodPost:   admin,
		http.MethodPut:    admin,
		http.MethodDelete: admin,
	},
	RouteBlog: {
		http.MethodGet:    public,
		http.MethodPost:   publisher,
		http.MethodPut:    publisher,
		http.MethodDelete: publisher,
	},
	RouteAdmin: {
		http.MethodGet:    admin,
		http.MethodPost:   admin,
		http.MethodPut:    admin,
		http.MethodDelete: admin,
	},
}

// Authorize decide permitir/negar para {identidade, classe de rota, método}.
// ownerID é o dono do recurso quando a regra de posse se aplica; nil quando
// o recurso não tem dono (nesse caso somente ADMIN passa na regra de posse).
// Negações distinguem ErrUnauthenticated (sem identidade) de ErrForbidden
// (identidade presente, role/posse insuficiente).
func Authorize(identity Identity, route RouteClass, method string, ownerID *string) error {
	req, ok := policy[route][method]
	if !ok {
		// Método desconhecido: falha fechado
		req = admin
	}

	switch req {
	case public:
		return nil
	case publisher:
		if identity.Role.CanPublish() {
			return nil
		}
	case owner:
		if identity.Role.IsAdmin() {
			return nil
		}
		if !identity.IsAnonymous() && ownerID != nil && *ownerID == identity.UserID {
			return nil
		}
	case admin:
		if identity.Role.IsAdmin() {
			return nil
		}
	}

	if identity.IsAnonymous() {
		return errors.ErrUnauthenticated
	}
	return errors.ErrForbidden
}
