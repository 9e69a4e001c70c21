package handlers

import (
	"errors"
	"net/http"

	request "maisonpro_dispatch/internal/adapter/http/dto/request"
	response "maisonpro_dispatch/internal/adapter/http/dto/response"
	"maisonpro_dispatch/internal/usecase"
	"maisonpro_dispatch/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTechnicianPayload = pkg.NewDomainErrorSimple("INVALID_TECHNICIAN_INPUT", "Invalid technician payload", http.StatusBadRequest)
)

type TechnicianHandler struct {
	usecase usecase.ITechnicianUseCase
}

func NewTechnicianHandler(uc usecase.ITechnicianUseCase) *TechnicianHandler {
	return &TechnicianHandler{usecase: uc}
}

func (h *TechnicianHandler) CreateTechnician(c *gin.Context) {
	division, ok := divisionScope(c)
	if !ok {
		return
	}
	var payload request.TechnicianCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTechnicianPayload.HTTPStatus, errInvalidTechnicianPayload.ToHTTPError())
		return
	}

	tech, err := h.usecase.Onboard(c.Request.Context(), payload.ToTechnician(division))
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromTechnician(tech))
}

func (h *TechnicianHandler) ListTechnicians(c *gin.Context) {
	division, ok := divisionScope(c)
	if !ok {
		return
	}
	techs, err := h.usecase.List(c.Request.Context(), division)
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTechnicians(techs))
}

func (h *TechnicianHandler) GetTechnician(c *gin.Context) {
	tech, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTechnician(tech))
}

func (h *TechnicianHandler) UpdateTechnician(c *gin.Context) {
	var payload request.TechnicianUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTechnicianPayload.HTTPStatus, errInvalidTechnicianPayload.ToHTTPError())
		return
	}

	tech, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToUpdate())
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTechnician(tech))
}

func mapTechnicianError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTechnicianID),
		errors.Is(err, usecase.ErrMissingTechnicianName),
		errors.Is(err, usecase.ErrInvalidTechnicianStatus),
		errors.Is(err, usecase.ErrInvalidDivision):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTechnicianNotFound):
		return pkg.NewDomainErrorSimple("TECHNICIAN_NOT_FOUND", "Technician not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
