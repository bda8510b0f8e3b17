package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/propfinder-backend/internal/domain/entities"
	"github.com/rafabene/propfinder-backend/internal/domain/valueobjects"
	"github.com/rafabene/propfinder-backend/internal/infrastructure/logging"
	"github.com/rafabene/propfinder-backend/internal/services"
)

// VerifyToken e GenerateToken não tocam o repositório, então o serviço
// pode ser construído sem banco para estes testes
func setupTestAuth(t *testing.T) *services.AuthService {
	t.Helper()
	return services.NewAuthService(nil, logging.NewSlogLogger("error"), "test-secret", time.Hour)
}

func testToken(t *testing.T, authService *services.AuthService, role entities.Role) string {
	t.Helper()

	email, err := valueobjects.NewEmail("user@example.com")
	if err != nil {
		t.Fatalf("failed to build email: %v", err)
	}

	token, err := authService.GenerateToken(&entities.User{
		ID:    "user-1",
		Email: email,
		Name:  "User",
		Role:  role,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func TestAuthMiddleware_ResolveIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authService := setupTestAuth(t)
	middleware := NewAuthMiddleware(authService)

	t.Run("token válido resolve para a identidade do usuário", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+testToken(t, authService, entities.RoleAgent))
		c.Request = req

		middleware.ResolveIdentity()(c)

		identity := CurrentIdentity(c)
		if identity.UserID != "user-1" {
			t.Errorf("esperava user-1, obteve '%s'", identity.UserID)
		}
		if identity.Role != entities.RoleAgent {
			t.Errorf("esperava AGENT, obteve '%s'", identity.Role)
		}
	})

	t.Run("sem header resolve para anônimo", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		middleware.ResolveIdentity()(c)

		if !CurrentIdentity(c).IsAnonymous() {
			t.Error("requisição sem credencial deveria ser anônima")
		}
	})

	t.Run("token inválido resolve para anônimo sem abortar", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer nonsense")
		c.Request = req

		middleware.ResolveIdentity()(c)

		if !CurrentIdentity(c).IsAnonymous() {
			t.Error("token inválido deveria resolver para anônimo")
		}
		if c.IsAborted() {
			t.Error("o middleware não deveria abortar a requisição")
		}
	})

	t.Run("header sem prefixo Bearer resolve para anônimo", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", testToken(t, authService, entities.RoleUser))
		c.Request = req

		middleware.ResolveIdentity()(c)

		if !CurrentIdentity(c).IsAnonymous() {
			t.Error("credencial sem esquema Bearer deveria ser ignorada")
		}
	})
}

func TestCurrentIdentity_SemMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	if !CurrentIdentity(c).IsAnonymous() {
		t.Error("contexto sem middleware deveria resolver para anônimo")
	}
}
