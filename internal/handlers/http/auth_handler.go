package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/propfinder-backend/internal/domain/ports"
	"github.com/rafabene/propfinder-backend/internal/handlers/dto"
	"github.com/rafabene/propfinder-backend/internal/services"
)

// AuthHandler lida com cadastro e login
type AuthHandler struct {
	authService *services.AuthService
	logger      ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, logger ports.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register cadastra um novo usuário
// @Summary      Cadastrar usuário
// @Description  Cria um novo usuário com role USER e retorna o token de sessão
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.RegisterRequest  true  "Dados de cadastro"
// @Success      201      {object}  dto.LoginResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErrorResponseI18n(c, err))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, err, "User")
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		respondError(c, h.logger, err, "User")
		return
	}

	c.JSON(http.StatusCreated, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Login autentica um usuário
// @Summary      Login
// @Description  Autentica por email e senha e retorna o token de sessão
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LoginRequest  true  "Credenciais"
// @Success      200      {object}  dto.LoginResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErrorResponseI18n(c, err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err, "User")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}
