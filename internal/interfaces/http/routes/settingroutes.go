package routes

import (
	"github.com/gin-gonic/gin"

	settinghandlers "fixmylab/internal/interfaces/http/handlers/setting"
	"fixmylab/internal/interfaces/http/middleware"
)

type SettingRouteConfig struct {
	SettingHandler *settinghandlers.SettingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupSettingRoutes(api *gin.RouterGroup, config *SettingRouteConfig) {
	settings := api.Group("/settings")
	settings.Use(config.AuthMiddleware.RequireStaff())
	{
		settings.GET("", config.SettingHandler.GetAll)
		settings.PUT("", config.SettingHandler.UpdateAll)
		settings.GET("/:key", config.SettingHandler.Get)
		settings.PUT("/:key", config.SettingHandler.Update)
	}
}
