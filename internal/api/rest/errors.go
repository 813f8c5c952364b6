package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/royaltyguard/royalty-checker/internal/api/shared/errors"
	"github.com/royaltyguard/royalty-checker/internal/logger"
)

func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondError serves an APIError with its own status. Anything else is logged
// and hidden behind a generic internal error.
func respondError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status(), apiErr)
		return
	}

	logger.ErrorCtx(c.Request.Context(), err)
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}
