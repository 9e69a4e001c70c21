package routes

import (
	"maisonpro_dispatch/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTechnicians = "/technicians"
	PathClients     = "/clients"
)

func addRosterRoutes(rg *gin.RouterGroup, technicianHandler *handlers.TechnicianHandler, clientHandler *handlers.ClientHandler) {
	technicians := rg.Group(PathTechnicians)
	{
		technicians.POST("", technicianHandler.CreateTechnician)
		technicians.GET("", technicianHandler.ListTechnicians)
		technicians.GET("/:id", technicianHandler.GetTechnician)
		technicians.PATCH("/:id", technicianHandler.UpdateTechnician)
	}

	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PATCH("/:id", clientHandler.UpdateClient)
	}
}
