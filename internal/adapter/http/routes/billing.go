package routes

import (
	"maisonpro_dispatch/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
)

func addBillingRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:id/line-items", invoiceHandler.UpdateLineItems)
		invoices.PATCH("/:id/status", invoiceHandler.UpdateStatus)
	}
}
