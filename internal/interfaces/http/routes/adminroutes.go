package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "fixmylab/internal/interfaces/http/handlers/admin"
	"fixmylab/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	AdminHandler   *adminhandlers.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAdminRoutes(api *gin.RouterGroup, config *AdminRouteConfig) {
	admin := api.Group("/admin")
	admin.Use(config.AuthMiddleware.RequireStaff())
	{
		admin.POST("/old-tickets-check", config.AdminHandler.OldTicketsCheck)
	}
}
