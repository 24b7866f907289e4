package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "fixmylab/internal/interfaces/http/handlers/ticket"
	"fixmylab/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireStaff())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Using PATCH for state changes
		tickets.PATCH("/:id/status", config.TicketHandler.UpdateTicketStatus)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
