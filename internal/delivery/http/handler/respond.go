package handler

import (
	"errors"
	"net/http"

	domainMovie "moviebag/internal/domain/movie"
	domainUser "moviebag/internal/domain/user"
	"moviebag/internal/logger"
	"moviebag/internal/middleware"
	appErrors "moviebag/pkg/errors"
	"moviebag/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondWithError maps service errors to HTTP status codes. Anything
// unrecognized is a datastore or internal failure and surfaces as a 500,
// never as one of the client error kinds.
func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, domainUser.ErrEmailTaken),
		errors.Is(err, domainUser.ErrInvalidResetToken):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, appErrors.ErrInvalidCredentials),
		errors.Is(err, appErrors.ErrInvalidToken),
		errors.Is(err, appErrors.ErrTokenExpired),
		errors.Is(err, appErrors.ErrUnauthorized):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domainMovie.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}

		logger.Error("Internal server error",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
