package handlers

import (
	"errors"
	"net/http"

	response "maisonpro_dispatch/internal/adapter/http/dto/response"
	"maisonpro_dispatch/internal/usecase"
	"maisonpro_dispatch/pkg"

	"github.com/gin-gonic/gin"
)

// DispatchHandler triggers auto-dispatch for the scoped division.

type DispatchHandler struct {
	usecase usecase.IDispatchUseCase
}

func NewDispatchHandler(uc usecase.IDispatchUseCase) *DispatchHandler {
	return &DispatchHandler{usecase: uc}
}

func (h *DispatchHandler) AutoDispatch(c *gin.Context) {
	division, ok := divisionScope(c)
	if !ok {
		return
	}

	res, err := h.usecase.AutoDispatch(c.Request.Context(), division)
	if err != nil {
		appErr := mapDispatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDispatchResult(res))
}

func mapDispatchError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDivision):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoTechnicianAvailable):
		return pkg.NewDomainErrorSimple("NO_TECHNICIAN_AVAILABLE", "No technician available for dispatch", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
