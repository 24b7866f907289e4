package routes

import (
	"github.com/gin-gonic/gin"

	publichandlers "fixmylab/internal/interfaces/http/handlers/public"
	"fixmylab/internal/interfaces/http/middleware"
)

type PublicRouteConfig struct {
	IntakeHandler  *publichandlers.IntakeHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      gin.HandlerFunc
}

func SetupPublicRoutes(api *gin.RouterGroup, config *PublicRouteConfig) {
	public := api.Group("/public")
	{
		// Session creation is the only route without a token: it is how
		// the intake form obtains one.
		public.POST("/sessions", config.IntakeHandler.CreateSession)

		public.POST("/tickets",
			config.RateLimit,
			config.AuthMiddleware.RequireSession(),
			config.IntakeHandler.CreateTicket)

		public.GET("/tickets/:id",
			config.AuthMiddleware.RequireSession(),
			config.IntakeHandler.GetTicket)
	}
}
