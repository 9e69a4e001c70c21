package routes

import (
	"maisonpro_dispatch/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs     = "/jobs"
	PathDispatch = "/dispatch"
)

func addBoardRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, dispatchHandler *handlers.DispatchHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.PATCH("/:id", jobHandler.UpdateJob)
		jobs.DELETE("/:id", jobHandler.DeleteJob)

		// Lifecycle endpoints: board drags, assignment, completion.
		jobs.PATCH("/:id/status", jobHandler.TransitionJob)
		jobs.PATCH("/:id/assign", jobHandler.AssignJob)
		jobs.POST("/:id/complete", jobHandler.CompleteJob)
	}

	rg.POST(PathDispatch, dispatchHandler.AutoDispatch)
}
