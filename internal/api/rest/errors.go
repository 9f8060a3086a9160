package rest

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-referral/internal/api/shared/errors"
	"github.com/feral-file/ff-referral/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondAPIError(c, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, details string) {
	respondAPIError(c, apierrors.NewValidationError(details))
}

// respondUnauthorized responds with an unauthorized error
func respondUnauthorized(c *gin.Context, message string) {
	respondAPIError(c, apierrors.NewUnauthorizedError(message))
}

// respondError responds with the API error carried by err, or an internal error.
// Server-side failures are logged; client errors are not.
func respondError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.NewInternalError(message)
	}

	if apiErr.HTTPStatus() >= 500 {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.Request.URL.Path),
			zap.String("code", string(apiErr.Code)),
		)
	}

	respondAPIError(c, apiErr)
}

func respondAPIError(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(apiErr.HTTPStatus(), apiErr)
}
