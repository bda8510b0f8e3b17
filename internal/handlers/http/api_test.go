package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rafabene/propfinder-backend/internal/domain/entities"
	"github.com/rafabene/propfinder-backend/internal/domain/repositories"
	"github.com/rafabene/propfinder-backend/internal/domain/valueobjects"
	"github.com/rafabene/propfinder-backend/internal/handlers/middleware"
	"github.com/rafabene/propfinder-backend/internal/infrastructure/i18n"
	"github.com/rafabene/propfinder-backend/internal/infrastructure/logging"
	"github.com/rafabene/propfinder-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/propfinder-backend/internal/services"
)

// apiEnv monta a API completa (router, middlewares e serviços) sobre um
// banco em memória, do jeito que main.go faz em produção
type apiEnv struct {
	router      *gin.Engine
	userRepo    repositories.UserRepository
	authService *services.AuthService
}

func setupAPI(t *testing.T) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))

	logger := logging.NewSlogLogger("error")

	localesDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(localesDir, "en.json"), []byte(`{
  "error.not_found.detail": "{{.Resource}} not found",
  "agent.deleted": "Agent deleted successfully",
  "user.deleted": "User deleted successfully"
}`), 0644)) //nolint:gosec
	i18nService, err := i18n.NewService(localesDir, "en")
	require.NoError(t, err)

	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewAgentProfileRepository(db)
	propertyRepo := postgres.NewPropertyRepository(db)
	blogRepo := postgres.NewBlogPostRepository(db)
	uow := postgres.NewUnitOfWork(db)

	authService := services.NewAuthService(userRepo, logger, "test-secret", time.Hour)
	agentService := services.NewAgentService(profileRepo, userRepo, uow, logger)
	propertyService := services.NewPropertyService(propertyRepo, logger)
	blogService := services.NewBlogService(blogRepo, logger)
	adminService := services.NewAdminService(userRepo, profileRepo, propertyRepo, blogRepo, uow, logger)

	authHandler := NewAuthHandler(authService, logger)
	agentHandler := NewAgentHandler(agentService, logger)
	propertyHandler := NewPropertyHandler(propertyService, logger)
	blogHandler := NewBlogHandler(blogService, logger)
	adminHandler := NewAdminHandler(adminService, agentService, logger)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("base_url", "http://test")
		c.Next()
	})
	router.Use(middleware.NewI18nMiddleware(i18nService).DetectLanguage())
	router.Use(middleware.NewAuthMiddleware(authService).ResolveIdentity())

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}
		properties := api.Group("/properties")
		{
			properties.GET("", propertyHandler.ListProperties)
			properties.POST("", propertyHandler.CreateProperty)
			properties.GET("/:id", propertyHandler.GetProperty)
			properties.PUT("/:id", propertyHandler.UpdateProperty)
			properties.DELETE("/:id", propertyHandler.DeleteProperty)
		}
		agents := api.Group("/agents")
		{
			agents.GET("", agentHandler.ListAgents)
			agents.POST("", agentHandler.CreateAgent)
			agents.GET("/:id", agentHandler.GetAgent)
		}
		blog := api.Group("/blog")
		{
			blog.GET("", blogHandler.ListPosts)
			blog.POST("", blogHandler.CreatePost)
			blog.GET("/:slug", blogHandler.GetPost)
			blog.PUT("/:slug", blogHandler.UpdatePost)
			blog.DELETE("/:slug", blogHandler.DeletePost)
		}
		admin := api.Group("/admin")
		{
			admin.GET("/stats", adminHandler.GetStats)
			admin.GET("/users", adminHandler.ListUsers)
			admin.PUT("/users/:id", adminHandler.UpdateUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.GET("/agents", adminHandler.ListAgents)
			admin.DELETE("/agents/:id", adminHandler.DeleteAgent)
		}
	}

	return &apiEnv{
		router:      router,
		userRepo:    userRepo,
		authService: authService,
	}
}

// tokenFor cria um usuário com o role pedido e devolve um token válido
func (e *apiEnv) tokenFor(t *testing.T, emailRaw string, role entities.Role) string {
	t.Helper()

	email, err := valueobjects.NewEmail(emailRaw)
	require.NoError(t, err)

	user := &entities.User{Email: email, Name: "Test User", Role: role}
	require.NoError(t, e.userRepo.Create(context.Background(), user))

	token, err := e.authService.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func (e *apiEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "corpo não é JSON: %s", w.Body.String())
	return body
}

func TestAPI_ErrorTaxonomy(t *testing.T) {
	env := setupAPI(t)

	property := map[string]any{"title": "Casa", "location": "Florianópolis"}

	t.Run("mutação sem credencial retorna 401 problem+json", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/properties", "", property)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "http://test/problems/unauthorized", body["type"])
		assert.Equal(t, float64(http.StatusUnauthorized), body["status"])
		assert.Equal(t, "/api/properties", body["instance"])
	})

	t.Run("USER autenticado sem permissão retorna 403", func(t *testing.T) {
		token := env.tokenFor(t, "user@example.com", entities.RoleUser)
		w := env.do(t, http.MethodPost, "/api/properties", token, property)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "http://test/problems/forbidden", decodeBody(t, w)["type"])
	})

	t.Run("recurso inexistente retorna 404 com o nome do recurso", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/properties/missing", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Property not found", decodeBody(t, w)["detail"])
	})

	t.Run("payload inválido retorna 400 com detalhe por campo", func(t *testing.T) {
		token := env.tokenFor(t, "agent@example.com", entities.RoleAgent)
		w := env.do(t, http.MethodPost, "/api/properties", token, map[string]any{"title": "Sem location"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeBody(t, w)
		errorsField, ok := body["errors"].([]any)
		require.True(t, ok, "resposta de validação deveria listar os campos")
		require.NotEmpty(t, errorsField)
		first := errorsField[0].(map[string]any)
		assert.Equal(t, "Location", first["field"])
	})
}

func TestAPI_PropertyOwnership(t *testing.T) {
	env := setupAPI(t)
	ownerToken := env.tokenFor(t, "owner@example.com", entities.RoleAgent)
	otherToken := env.tokenFor(t, "other@example.com", entities.RoleAgent)
	adminToken := env.tokenFor(t, "admin@example.com", entities.RoleAdmin)

	w := env.do(t, http.MethodPost, "/api/properties", ownerToken, map[string]any{
		"title":    "Casa na praia",
		"location": "Ubatuba, SP",
		"price":    "R$ 900.000",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	propertyID := decodeBody(t, w)["id"].(string)

	t.Run("não-dono não atualiza", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/properties/"+propertyID, otherToken, map[string]any{"title": "hijack"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("dono atualiza parcialmente", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/properties/"+propertyID, ownerToken, map[string]any{"title": "Casa reformada"})
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "Casa reformada", body["title"])
		assert.Equal(t, "R$ 900.000", body["price"], "campo não informado permanece")
	})

	t.Run("ADMIN remove imóvel alheio com 204", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, "/api/properties/"+propertyID, adminToken, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = env.do(t, http.MethodGet, "/api/properties/"+propertyID, "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAPI_AgentLifecycle(t *testing.T) {
	env := setupAPI(t)
	adminToken := env.tokenFor(t, "admin@example.com", entities.RoleAdmin)

	agentPayload := map[string]any{
		"name":  "Maria Souza",
		"email": "maria@example.com",
		"title": "Senior Broker",
	}

	w := env.do(t, http.MethodPost, "/api/agents", adminToken, agentPayload)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	profileID := body["id"].(string)
	assert.Equal(t, "maria@example.com", body["email"])

	t.Run("mesmo email pela segunda vez retorna 409", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/agents", adminToken, agentPayload)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "http://test/problems/conflict", decodeBody(t, w)["type"])
	})

	t.Run("listagem pública expõe a visão achatada", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/agents", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var agents []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &agents))
		require.Len(t, agents, 1)
		assert.Equal(t, profileID, agents[0]["id"])
		assert.Equal(t, "Maria Souza", agents[0]["name"])
	})

	t.Run("remoção via admin responde 200 com mensagem", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, "/api/admin/agents/"+profileID, adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Agent deleted successfully", decodeBody(t, w)["message"])

		w = env.do(t, http.MethodGet, "/api/agents/"+profileID, "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAPI_AuthFlow(t *testing.T) {
	env := setupAPI(t)

	register := map[string]any{
		"email":    "joao@example.com",
		"name":     "João Silva",
		"password": "senha-segura-123",
	}

	t.Run("cadastro responde 201 com token e usuário", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/register", "", register)
		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(t, w)
		assert.NotEmpty(t, body["token"])
		user := body["user"].(map[string]any)
		assert.Equal(t, "USER", user["role"])
	})

	t.Run("email repetido responde 409", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/register", "", register)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("login com credenciais corretas responde 200", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "joao@example.com",
			"password": "senha-segura-123",
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, decodeBody(t, w)["token"])
	})

	t.Run("senha errada responde 401", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "joao@example.com",
			"password": "senha-errada-000",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAPI_AdminRoutes(t *testing.T) {
	env := setupAPI(t)
	adminToken := env.tokenFor(t, "admin@example.com", entities.RoleAdmin)
	userToken := env.tokenFor(t, "user@example.com", entities.RoleUser)

	t.Run("stats exige ADMIN", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/admin/stats", userToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = env.do(t, http.MethodGet, "/api/admin/stats", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, float64(2), body["users"])
		assert.Equal(t, float64(0), body["agents"])
	})

	t.Run("admin não altera a própria conta", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/admin/users", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var users []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))

		var adminID string
		for _, u := range users {
			if u["email"] == "admin@example.com" {
				adminID = u["id"].(string)
			}
		}
		require.NotEmpty(t, adminID)

		w = env.do(t, http.MethodPut, "/api/admin/users/"+adminID, adminToken, map[string]any{"role": "USER"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAPI_BlogViews(t *testing.T) {
	env := setupAPI(t)
	agentToken := env.tokenFor(t, "agent@example.com", entities.RoleAgent)

	w := env.do(t, http.MethodPost, "/api/blog", agentToken, map[string]any{
		"title":   "Guia do comprador",
		"slug":    "guia-do-comprador",
		"content": "Conteúdo do guia.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("cada leitura pelo slug incrementa views", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/blog/guia-do-comprador", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), decodeBody(t, w)["views"])

		w = env.do(t, http.MethodGet, "/api/blog/guia-do-comprador", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(2), decodeBody(t, w)["views"])
	})

	t.Run("slug repetido responde 409", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/blog", agentToken, map[string]any{
			"title":   "Outro",
			"slug":    "guia-do-comprador",
			"content": "x",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
