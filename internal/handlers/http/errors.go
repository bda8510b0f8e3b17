package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/propfinder-backend/internal/domain/errors"
	"github.com/rafabene/propfinder-backend/internal/domain/ports"
	"github.com/rafabene/propfinder-backend/internal/handlers/dto"
)

// respondError traduz um erro de domínio para a resposta HTTP RFC 7807
// correspondente. resource nomeia a entidade nos 404.
// Erros não mapeados viram 500 genérico: o detalhe fica no log, nunca no
// corpo da resposta.
func respondError(c *gin.Context, logger ports.Logger, err error, resource string) {
	var verrs *errors.ValidationErrors
	if errs.As(err, &verrs) {
		fields := make([]dto.ValidationError, 0, len(verrs.Fields))
		for _, fe := range verrs.Fields {
			fields = append(fields, dto.ValidationError{
				Field:   fe.Field,
				Message: fe.Message,
			})
		}
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, fields))
		return
	}

	switch {
	case errs.Is(err, errors.ErrInvalidCredentials):
		response := dto.NewErrorResponseI18n(
			c,
			errors.ProblemTypeUnauthorized,
			"error.unauthorized.title",
			"error.invalid_credentials.detail",
			http.StatusUnauthorized,
		)
		c.JSON(http.StatusUnauthorized, response)

	case errs.Is(err, errors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))

	case errs.Is(err, errors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))

	case errs.Is(err, errors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, resource))

	case errs.Is(err, errors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.conflict.email_already_exists"))

	case errs.Is(err, errors.ErrConflict):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.conflict.detail"))

	case errs.Is(err, errors.ErrSelfManagement):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.admin_self_management.detail"))

	case errs.Is(err, errors.ErrInvalidEmail), errs.Is(err, errors.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.bad_request.detail"))

	default:
		logger.Error("request failed",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}
