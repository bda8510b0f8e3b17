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

// BlogHandler lida com requisições HTTP relacionadas ao blog
type BlogHandler struct {
	blogService *services.BlogService
	logger      ports.Logger
}

// NewBlogHandler cria um novo BlogHandler
func NewBlogHandler(blogService *services.BlogService, logger ports.Logger) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		logger:      logger,
	}
}

// ListPosts lista posts do blog
// @Summary      Listar posts
// @Description  Lista posts ordenados por data de publicação decrescente; filtros conjuntivos de category e tag
// @Tags         blog
// @Produce      json
// @Param        category  query     string  false  "Categoria exata"
// @Param        tag       query     string  false  "Tag exata (pertencimento)"
// @Success      200       {array}   dto.BlogPostResponse
// @Router       /api/blog [get]
func (h *BlogHandler) ListPosts(c *gin.Context) {
	filters := repositories.BlogFilters{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
	}

	posts, err := h.blogService.ListPosts(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.logger, err, "BlogPost")
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogPostResponses(posts))
}

// GetPost busca um post pelo slug
// @Summary      Buscar post
// @Description  Busca um post pelo slug e incrementa o contador de visualizações
// @Tags         blog
// @Produce      json
// @Param        slug  path      string  true  "Slug do post"
// @Success      200   {object}  dto.BlogPostResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/blog/{slug} [get]
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.blogService.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err, "BlogPost")
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogPostResponse(post))
}

// CreatePost cria um novo post
// @Summary      Criar post
// @Description  Requer role AGENT ou ADMIN. Slug deve ser único.
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateBlogPostRequest  true  "Dados do post"
// @Success      201      {object}  dto.BlogPostResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/blog [post]
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req dto.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErrorResponseI18n(c, err))
		return
	}

	input := services.CreateBlogPostInput{
		Title:        req.Title,
		Slug:         req.Slug,
		Excerpt:      req.Excerpt,
		Content:      req.Content,
		Image:        req.Image,
		Author:       req.Author,
		AuthorAvatar: req.AuthorAvatar,
		ReadTime:     req.ReadTime,
		Category:     req.Category,
		Tags:         req.Tags,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	identity := middleware.CurrentIdentity(c)
	post, err := h.blogService.CreatePost(c.Request.Context(), identity, input)
	if err != nil {
		if errs.Is(err, errors.ErrConflict) {
			c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.conflict.slug_already_exists"))
			return
		}
		respondError(c, h.logger, err, "BlogPost")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBlogPostResponse(post))
}

// UpdatePost atualiza parcialmente um post
// @Summary      Atualizar post
// @Description  Atualização parcial pelo slug; campos ausentes permanecem inalterados. Requer AGENT ou ADMIN.
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        slug     path      string                     true  "Slug do post"
// @Param        request  body      dto.UpdateBlogPostRequest  true  "Campos a atualizar"
// @Success      200      {object}  dto.BlogPostResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/blog/{slug} [put]
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	var req dto.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErrorResponseI18n(c, err))
		return
	}

	identity := middleware.CurrentIdentity(c)
	post, err := h.blogService.UpdatePost(c.Request.Context(), identity, c.Param("slug"), services.UpdateBlogPostInput{
		Title:        req.Title,
		Excerpt:      req.Excerpt,
		Content:      req.Content,
		Image:        req.Image,
		Author:       req.Author,
		AuthorAvatar: req.AuthorAvatar,
		Date:         req.Date,
		ReadTime:     req.ReadTime,
		Category:     req.Category,
		Tags:         req.Tags,
	})
	if err != nil {
		respondError(c, h.logger, err, "BlogPost")
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogPostResponse(post))
}

// DeletePost remove um post
// @Summary      Remover post
// @Description  Remove um post pelo slug. Requer AGENT ou ADMIN.
// @Tags         blog
// @Param        slug  path  string  true  "Slug do post"
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/blog/{slug} [delete]
func (h *BlogHandler) DeletePost(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if err := h.blogService.DeletePost(c.Request.Context(), identity, c.Param("slug")); err != nil {
		respondError(c, h.logger, err, "BlogPost")
		return
	}

	c.Status(http.StatusNoContent)
}
