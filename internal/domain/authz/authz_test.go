package authz

import (
	errs "errors"
	"net/http"
	"testing"

	"github.com/rafabene/propfinder-backend/internal/domain/entities"
	"github.com/rafabene/propfinder-backend/internal/domain/errors"
)

func strptr(s string) *string {
	return &s
}

func TestAuthorize_PolicyMatrix(t *testing.T) {
	anon := Anonymous()
	user := Identity{UserID: "u1", Role: entities.RoleUser}
	agent := Identity{UserID: "a1", Role: entities.RoleAgent}
	adm := Identity{UserID: "adm1", Role: entities.RoleAdmin}

	tests := []struct {
		name     string
		identity Identity
		route    RouteClass
		method   string
		ownerID  *string
		want     error
	}{
		{"leitura pública de imóveis sem credencial", anon, RouteProperties, http.MethodGet, nil, nil},
		{"leitura pública de agentes sem credencial", anon, RouteAgents, http.MethodGet, nil, nil},
		{"leitura pública do blog sem credencial", anon, RouteBlog, http.MethodGet, nil, nil},

		{"anônimo não cria imóvel", anon, RouteProperties, http.MethodPost, nil, errors.ErrUnauthenticated},
		{"USER não cria imóvel", user, RouteProperties, http.MethodPost, nil, errors.ErrForbidden},
		{"AGENT cria imóvel", agent, RouteProperties, http.MethodPost, nil, nil},
		{"ADMIN cria imóvel", adm, RouteProperties, http.MethodPost, nil, nil},

		{"AGENT edita o próprio imóvel", agent, RouteProperties, http.MethodPut, strptr("a1"), nil},
		{"AGENT não edita imóvel alheio", agent, RouteProperties, http.MethodPut, strptr("a2"), errors.ErrForbidden},
		{"ADMIN edita imóvel alheio", adm, RouteProperties, http.MethodPut, strptr("a2"), nil},
		{"AGENT não remove imóvel sem dono", agent, RouteProperties, http.MethodDelete, nil, errors.ErrForbidden},
		{"ADMIN remove imóvel sem dono", adm, RouteProperties, http.MethodDelete, nil, nil},
		{"anônimo não edita imóvel", anon, RouteProperties, http.MethodPut, strptr("a1"), errors.ErrUnauthenticated},

		{"AGENT não cria agente", agent, RouteAgents, http.MethodPost, nil, errors.ErrForbidden},
		{"ADMIN cria agente", adm, RouteAgents, http.MethodPost, nil, nil},
		{"anônimo não cria agente", anon, RouteAgents, http.MethodPost, nil, errors.ErrUnauthenticated},

		{"AGENT publica no blog", agent, RouteBlog, http.MethodPost, nil, nil},
		{"AGENT edita qualquer post", agent, RouteBlog, http.MethodPut, nil, nil},
		{"USER não publica no blog", user, RouteBlog, http.MethodPost, nil, errors.ErrForbidden},

		{"USER não acessa rotas admin", user, RouteAdmin, http.MethodGet, nil, errors.ErrForbidden},
		{"AGENT não acessa rotas admin", agent, RouteAdmin, http.MethodDelete, nil, errors.ErrForbidden},
		{"ADMIN acessa rotas admin", adm, RouteAdmin, http.MethodGet, nil, nil},
		{"anônimo não acessa rotas admin", anon, RouteAdmin, http.MethodGet, nil, errors.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Authorize(tt.identity, tt.route, tt.method, tt.ownerID)
			if !errs.Is(got, tt.want) {
				t.Errorf("Authorize(%v, %s, %s) = %v, esperava %v", tt.identity, tt.route, tt.method, got, tt.want)
			}
		})
	}
}

func TestAuthorize_MetodoDesconhecidoFalhaFechado(t *testing.T) {
	agent := Identity{UserID: "a1", Role: entities.RoleAgent}

	if err := Authorize(agent, RouteProperties, http.MethodPatch, nil); !errs.Is(err, errors.ErrForbidden) {
		t.Errorf("método desconhecido deveria exigir admin, obteve %v", err)
	}

	adm := Identity{UserID: "adm1", Role: entities.RoleAdmin}
	if err := Authorize(adm, RouteProperties, http.MethodPatch, nil); err != nil {
		t.Errorf("ADMIN deveria passar mesmo em método desconhecido, obteve %v", err)
	}
}

func TestIdentity_IsAnonymous(t *testing.T) {
	if !Anonymous().IsAnonymous() {
		t.Error("Anonymous() deveria ser anônima")
	}

	identity := Identity{UserID: "u1", Role: entities.RoleUser}
	if identity.IsAnonymous() {
		t.Error("identidade com UserID não deveria ser anônima")
	}
}
