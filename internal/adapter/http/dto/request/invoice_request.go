package request

import "maisonpro_dispatch/internal/domain/entities"

type InvoiceCreateRequest struct {
	JobID     string            `json:"job_id" binding:"required"`
	LineItems []LineItemRequest `json:"line_items" binding:"required"`
}

func (r InvoiceCreateRequest) ToLineItems() []entities.LineItem {
	return toLineItems(r.LineItems)
}

type InvoiceLineItemsRequest struct {
	LineItems []LineItemRequest `json:"line_items" binding:"required"`
}

func (r InvoiceLineItemsRequest) ToLineItems() []entities.LineItem {
	return toLineItems(r.LineItems)
}

type InvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
