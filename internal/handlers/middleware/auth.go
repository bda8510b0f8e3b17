package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/propfinder-backend/internal/domain/authz"
	"github.com/rafabene/propfinder-backend/internal/services"
)

const (
	// IdentityContextKey é a chave usada para armazenar a identidade
	// resolvida no contexto do Gin
	IdentityContextKey = "identity"
)

// AuthMiddleware resolve a credencial da requisição para uma identidade
type AuthMiddleware struct {
	authService *services.AuthService
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// ResolveIdentity resolve o token Bearer para {userId, role}.
// Falha fechado: token ausente, expirado ou inválido resolve para anônimo —
// a requisição nunca é abortada aqui. Quem nega acesso é o gate de
// autorização, com a identidade (ou a falta dela) em mãos.
func (m *AuthMiddleware) ResolveIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := authz.Anonymous()

		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			token = strings.TrimSpace(token)
			if token != "" {
				if resolved, err := m.authService.VerifyToken(token); err == nil {
					identity = resolved
				}
			}
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

// CurrentIdentity retorna a identidade resolvida da requisição
// (anônima quando o middleware não rodou ou o token não validou)
func CurrentIdentity(c *gin.Context) authz.Identity {
	value, exists := c.Get(IdentityContextKey)
	if !exists {
		return authz.Anonymous()
	}

	identity, ok := value.(authz.Identity)
	if !ok {
		return authz.Anonymous()
	}

	return identity
}
