package handlers

import (
	"errors"
	"net/http"

	request "maisonpro_dispatch/internal/adapter/http/dto/request"
	response "maisonpro_dispatch/internal/adapter/http/dto/response"
	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase"
	"maisonpro_dispatch/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
)

// JobHandler exposes the job board: CRUD, kanban moves, assignment and
// completion.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateJob opens a pending, unassigned job in the scoped division.
func (h *JobHandler) CreateJob(c *gin.Context) {
	division, ok := divisionScope(c)
	if !ok {
		return
	}
	var payload request.JobCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), payload.ToJob(division))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	division, ok := divisionScope(c)
	if !ok {
		return
	}
	jobs, err := h.usecase.List(c.Request.Context(), division)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	var payload request.JobUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}
	upd, err := payload.ToUpdate()
	if err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// TransitionJob applies one kanban move (board drag).
func (h *JobHandler) TransitionJob(c *gin.Context) {
	var payload request.JobTransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Transition(c.Request.Context(), c.Param("id"), entities.JobStatus(payload.Status), payload.TechnicianID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) AssignJob(c *gin.Context) {
	var payload request.JobAssignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Assign(c.Request.Context(), c.Param("id"), payload.TechnicianID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// CompleteJob closes the job and returns the draft invoice it opened.
func (h *JobHandler) CompleteJob(c *gin.Context) {
	var payload request.JobCompleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, invoice, err := h.usecase.Complete(c.Request.Context(), c.Param("id"), payload.ToLineItems())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"job":     response.FromJob(job),
		"invoice": response.FromInvoice(invoice),
	})
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidDivision),
		errors.Is(err, usecase.ErrInvalidPriority),
		errors.Is(err, usecase.ErrInvalidJobStatus),
		errors.Is(err, usecase.ErrMissingClient),
		errors.Is(err, usecase.ErrInvalidLineItems):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTechnicianNotFound):
		return pkg.NewDomainErrorSimple("TECHNICIAN_NOT_FOUND", "Technician not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTechnicianRequired):
		return pkg.NewDomainErrorSimple("TECHNICIAN_REQUIRED", "A technician is required to assign this job", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Illegal status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobImmutable):
		return pkg.NewDomainErrorSimple("JOB_IMMUTABLE", "Completed jobs cannot be rescheduled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
