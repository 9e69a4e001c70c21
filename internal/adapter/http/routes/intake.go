package routes

import (
	"maisonpro_dispatch/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addIntakeRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		// POST is the public endpoint behind the marketing site quote form.
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id/contacted", quoteHandler.MarkContacted)
		quotes.PATCH("/:id/status", quoteHandler.UpdateStatus)
		quotes.POST("/:id/notes", quoteHandler.AppendNote)
	}
}
