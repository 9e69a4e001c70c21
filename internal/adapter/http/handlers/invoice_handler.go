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
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// CreateInvoice opens a standalone invoice for an already-completed job
// (jobs closed through the completion endpoint get theirs automatically).
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.CreateFromJob(c.Request.Context(), payload.JobID, payload.ToLineItems())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	division, ok := divisionScope(c)
	if !ok {
		return
	}
	invoices, err := h.usecase.List(c.Request.Context(), division)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func (h *InvoiceHandler) UpdateLineItems(c *gin.Context) {
	var payload request.InvoiceLineItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.UpdateLineItems(c.Request.Context(), c.Param("id"), payload.ToLineItems())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	var payload request.InvoiceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.InvoiceStatus(payload.Status))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidDivision),
		errors.Is(err, usecase.ErrInvalidLineItems),
		errors.Is(err, usecase.ErrInvalidInvoiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotCompleted):
		return pkg.NewDomainErrorSimple("JOB_NOT_COMPLETED", "Job must be completed before invoicing", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoicePaid):
		return pkg.NewDomainErrorSimple("INVOICE_PAID", "Paid invoices are frozen", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
