package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/propfinder-backend/internal/domain/entities"
	"github.com/rafabene/propfinder-backend/internal/domain/ports"
	"github.com/rafabene/propfinder-backend/internal/domain/repositories"
	"github.com/rafabene/propfinder-backend/internal/handlers/dto"
	"github.com/rafabene/propfinder-backend/internal/handlers/middleware"
	"github.com/rafabene/propfinder-backend/internal/services"
)

// AdminHandler lida com as rotas restritas a administradores
type AdminHandler struct {
	adminService *services.AdminService
	agentService *services.AgentService
	logger       ports.Logger
}

// NewAdminHandler cria um novo AdminHandler
func NewAdminHandler(adminService *services.AdminService, agentService *services.AgentService, logger ports.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		agentService: agentService,
		logger:       logger,
	}
}

// GetStats retorna as contagens do painel admin
// @Summary      Estatísticas do painel
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	stats, err := h.adminService.GetStats(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.logger, err, "Stats")
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// ListUsers lista usuários
// @Summary      Listar usuários
// @Tags         admin
// @Produce      json
// @Param        role      query     string  false  "Filtrar por role (USER, AGENT, ADMIN)"
// @Param        page      query     int     false  "Página (começa em 1)"
// @Param        pageSize  query     int     false  "Itens por página (max 100)"
// @Success      200       {array}   dto.UserResponse
// @Failure      401       {object}  dto.ErrorResponse
// @Failure      403       {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var filters repositories.UserFilters

	if raw := c.Query("role"); raw != "" {
		role := entities.Role(raw)
		if role.IsValid() {
			filters.Role = &role
		}
	}
	filters.Page, _ = strconv.Atoi(c.Query("page"))
	filters.PageSize, _ = strconv.Atoi(c.Query("pageSize"))

	identity := middleware.CurrentIdentity(c)
	users, err := h.adminService.ListUsers(c.Request.Context(), identity, filters)
	if err != nil {
		respondError(c, h.logger, err, "User")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// UpdateUser altera nome e/ou role de um usuário
// @Summary      Atualizar usuário
// @Description  Altera nome e/ou role. O admin não pode alterar a própria conta. Rebaixar um AGENT remove o profile na mesma transação.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "ID do usuário"
// @Param        request  body      dto.UpdateUserRequest  true  "Campos a atualizar"
// @Success      200      {object}  dto.UserResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErrorResponseI18n(c, err))
		return
	}

	input := services.UpdateUserInput{Name: req.Name}
	if req.Role != nil {
		role := entities.Role(*req.Role)
		input.Role = &role
	}

	identity := middleware.CurrentIdentity(c)
	user, err := h.adminService.UpdateUser(c.Request.Context(), identity, c.Param("id"), input)
	if err != nil {
		respondError(c, h.logger, err, "User")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser remove um usuário e seus registros dependentes
// @Summary      Remover usuário
// @Description  Remove o usuário, o AgentProfile dependente e os imóveis de sua posse, atomicamente. O admin não pode remover a própria conta.
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "ID do usuário"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if err := h.adminService.DeleteUser(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondError(c, h.logger, err, "User")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "user.deleted")})
}

// ListAgents lista agentes para o painel admin
// @Summary      Listar agentes (painel)
// @Description  Lista agentes ordenados por criação decrescente, na visão resumida do painel
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.AdminAgentListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/agents [get]
func (h *AdminHandler) ListAgents(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	agents, err := h.agentService.ListAdminAgents(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.logger, err, "Agent")
		return
	}

	c.JSON(http.StatusOK, dto.AdminAgentListResponse{
		Agents: dto.ToAdminAgentResponses(agents),
	})
}

// DeleteAgent remove um agente e rebaixa o usuário dono
// @Summary      Remover agente
// @Description  Remove o profile e rebaixa o usuário dono para USER, atomicamente
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "ID do profile do agente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/agents/{id} [delete]
func (h *AdminHandler) DeleteAgent(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if err := h.agentService.DeleteAgent(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondError(c, h.logger, err, "Agent")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "agent.deleted")})
}
