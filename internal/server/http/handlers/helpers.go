package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/napatr/coffeehouse/internal/domain/errors"
	"github.com/napatr/coffeehouse/internal/server/http/dto"
)

// writeError maps domain errors onto HTTP responses. Unclassified errors
// are attached to the gin context for the request logger and answered with
// a generic message; internal detail never reaches the caller.
func writeError(c *gin.Context, err error) {
	var validationErr domainErrors.ValidationError
	var unavailableErr domainErrors.ItemUnavailableError
	var statusErr domainErrors.InvalidStatusError
	var transitionErr domainErrors.TransitionNotAllowedError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &unavailableErr), errors.As(err, &statusErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "order not found"})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
