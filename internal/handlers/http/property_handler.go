package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/propfinder-backend/internal/domain/ports"
	"github.com/rafabene/propfinder-backend/internal/domain/repositories"
	"github.com/rafabene/propfinder-backend/internal/handlers/dto"
	"github.com/rafabene/propfinder-backend/internal/handlers/middleware"
	"github.com/rafabene/propfinder-backend/internal/services"
)

// PropertyHandler lida com requisições HTTP relacionadas a imóveis
type PropertyHandler struct {
	propertyService *services.PropertyService
	logger          ports.Logger
}

// NewPropertyHandler cria um novo PropertyHandler
func NewPropertyHandler(propertyService *services.PropertyService, logger ports.Logger) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		logger:          logger,
	}
}

// ListProperties lista imóveis
// @Summary      Listar imóveis
// @Description  Lista imóveis ordenados por criação decrescente; filtros conjuntivos
// @Tags         properties
// @Produce      json
// @Param        featured  query     bool    false  "Apenas destacados (true) ou não destacados (false)"
// @Param        location  query     string  false  "Substring da localização, case-insensitive"
// @Success      200       {array}   dto.PropertyResponse
// @Router       /api/properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	filters := repositories.PropertyFilters{
		Location: c.Query("location"),
	}
	// Parâmetro ausente não contribui com cláusula; valor não-booleano idem
	if raw := c.Query("featured"); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filters.Featured = &featured
		}
	}

	properties, err := h.propertyService.ListProperties(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.logger, err, "Property")
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponses(properties))
}

// GetProperty busca um imóvel por ID
// @Summary      Buscar imóvel
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "ID do imóvel"
// @Success      200  {object}  dto.PropertyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	property, err := h.propertyService.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Property")
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

// CreateProperty cria um imóvel pertencente ao chamador
// @Summary      Criar imóvel
// @Description  Requer role AGENT ou ADMIN; o imóvel criado pertence ao chamador
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreatePropertyRequest  true  "Dados do imóvel"
// @Success      201      {object}  dto.PropertyResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErrorResponseI18n(c, err))
		return
	}

	identity := middleware.CurrentIdentity(c)
	property, err := h.propertyService.CreateProperty(c.Request.Context(), identity, services.CreatePropertyInput{
		Title:       req.Title,
		Location:    req.Location,
		Price:       req.Price,
		Area:        req.Area,
		Image:       req.Image,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Rating:      req.Rating,
		Featured:    req.Featured,
		Amenities:   req.Amenities,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.logger, err, "Property")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPropertyResponse(property))
}

// UpdateProperty atualiza parcialmente um imóvel
// @Summary      Atualizar imóvel
// @Description  Atualização parcial; campos ausentes permanecem inalterados. Requer posse ou ADMIN.
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "ID do imóvel"
// @Param        request  body      dto.UpdatePropertyRequest  true  "Campos a atualizar"
// @Success      200      {object}  dto.PropertyResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErrorResponseI18n(c, err))
		return
	}

	identity := middleware.CurrentIdentity(c)
	property, err := h.propertyService.UpdateProperty(c.Request.Context(), identity, c.Param("id"), services.UpdatePropertyInput{
		Title:       req.Title,
		Location:    req.Location,
		Price:       req.Price,
		Area:        req.Area,
		Image:       req.Image,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Rating:      req.Rating,
		Featured:    req.Featured,
		Amenities:   req.Amenities,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.logger, err, "Property")
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

// DeleteProperty remove um imóvel
// @Summary      Remover imóvel
// @Description  Requer posse ou ADMIN
// @Tags         properties
// @Param        id  path  string  true  "ID do imóvel"
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if err := h.propertyService.DeleteProperty(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondError(c, h.logger, err, "Property")
		return
	}

	c.Status(http.StatusNoContent)
}
