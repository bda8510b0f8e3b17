package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/propfinder-backend/internal/domain/errors"
	"github.com/rafabene/propfinder-backend/internal/domain/ports"
	"github.com/rafabene/propfinder-backend/internal/domain/repositories"
	"github.com/rafabene/propfinder-backend/internal/handlers/dto"
	"github.com/rafabene/propfinder-backend/internal/handlers/middleware"
	"github.com/rafabene/propfinder-backend/internal/services"
)

// AgentHandler lida com requisições HTTP relacionadas a agentes
type AgentHandler struct {
	agentService *services.AgentService
	logger       ports.Logger
}

// NewAgentHandler cria um novo AgentHandler
func NewAgentHandler(agentService *services.AgentService, logger ports.Logger) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
		logger:       logger,
	}
}

// ListAgents lista agentes
// @Summary      Listar agentes
// @Description  Lista agentes ordenados por rating decrescente; filtros conjuntivos de specialty e language (pertencimento exato)
// @Tags         agents
// @Produce      json
// @Param        specialty  query     string  false  "Especialidade exata"
// @Param        language   query     string  false  "Idioma exato"
// @Success      200        {array}   dto.AgentResponse
// @Router       /api/agents [get]
func (h *AgentHandler) ListAgents(c *gin.Context) {
	filters := repositories.AgentFilters{
		Specialty: c.Query("specialty"),
		Language:  c.Query("language"),
	}

	agents, err := h.agentService.ListAgents(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.logger, err, "Agent")
		return
	}

	c.JSON(http.StatusOK, dto.ToAgentResponses(agents))
}

// GetAgent busca um agente pelo id do profile
// @Summary      Buscar agente
// @Tags         agents
// @Produce      json
// @Param        id   path      string  true  "ID do profile do agente"
// @Success      200  {object}  dto.AgentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agents/{id} [get]
func (h *AgentHandler) GetAgent(c *gin.Context) {
	agent, err := h.agentService.GetAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Agent")
		return
	}

	c.JSON(http.StatusOK, dto.ToAgentResponse(agent))
}

// CreateAgent promove (ou cria) o usuário do email informado a agente
// @Summary      Criar agente
// @Description  Promove o usuário do email a AGENT e cria o profile vinculado, atomicamente. Requer ADMIN. Um profile por usuário.
// @Tags         agents
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateAgentRequest  true  "Dados do agente"
// @Success      201      {object}  dto.AgentResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/agents [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req dto.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErrorResponseI18n(c, err))
		return
	}

	identity := middleware.CurrentIdentity(c)
	agent, err := h.agentService.CreateAgent(c.Request.Context(), identity, services.CreateAgentInput{
		Name:            req.Name,
		Email:           req.Email,
		Title:           req.Title,
		Image:           req.Image,
		Rating:          req.Rating,
		ReviewCount:     req.ReviewCount,
		SoldProperties:  req.SoldProperties,
		YearsExperience: req.YearsExperience,
		Languages:       req.Languages,
		Specialties:     req.Specialties,
		Phone:           req.Phone,
		Bio:             req.Bio,
	})
	if err != nil {
		if errs.Is(err, errors.ErrConflict) {
			c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.conflict.agent_profile_exists"))
			return
		}
		respondError(c, h.logger, err, "Agent")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAgentResponse(agent))
}
