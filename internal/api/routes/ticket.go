package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/api/handlers"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/api/middleware"
)

// TicketRoutes registers ticket and attachment endpoints
func TicketRoutes(rg *gin.RouterGroup, h *handlers.TicketHandler, auth *middleware.Auth) {
	tickets := rg.Group("/ticket")
	{
		tickets.GET("", auth.Require("ticket", "read"), h.ListTickets)
		tickets.GET("/statuses", auth.Require("ticket", "read"), h.ListStatuses)
		tickets.GET("/:id", auth.Require("ticket", "read"), h.GetTicket)
		tickets.POST("", auth.Require("ticket", "create"), h.CreateTicket)
		tickets.PUT("/:id", auth.Require("ticket", "update"), h.UpdateTicket)
		tickets.DELETE("/:id", auth.Require("ticket", "delete"), h.DeleteTicket)
		tickets.POST("/:id/attachments", auth.Require("ticket", "update"), h.UploadAttachment)
		tickets.GET("/:id/attachments", auth.Require("ticket", "read"), h.ListAttachments)
	}
}

// CommentRoutes registers comment endpoints
func CommentRoutes(rg *gin.RouterGroup, h *handlers.CommentHandler, auth *middleware.Auth) {
	comments := rg.Group("/comment")
	{
		comments.GET("", auth.Require("comment", "read"), h.ListComments)
		comments.POST("", auth.Require("comment", "create"), h.CreateComment)
		comments.PUT("/:id", auth.Require("comment", "update"), h.UpdateComment)
		comments.DELETE("/:id", auth.Require("comment", "delete"), h.DeleteComment)
	}
}
