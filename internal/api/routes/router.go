package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/api/handlers"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/api/middleware"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/response"
)

// NewRouter builds the engine with the global middleware chain and all routes.
func NewRouter(logger *slog.Logger, origins []string, h *handlers.Handlers, auth *middleware.Auth) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.CORSMiddleware(origins))
	RegisterRoutes(r, h, auth)
	return r
}

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, auth *middleware.Auth) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "route not found")
	})

	v1 := r.Group("/api/v1")

	// public
	v1.POST("/auth/login", h.Auth.Login)
	// browsers cannot set headers on a websocket, so ?token= is accepted here
	v1.GET("/ws", middleware.JWTAuthMiddleware(), auth.CurrentUser(), h.WS.Serve)

	api := v1.Group("")
	api.Use(middleware.JWTAuthMiddleware(), auth.CurrentUser())
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/logout", auth.Require("auth", "logout"), h.Auth.Logout)
			authGroup.GET("/me", auth.Require("auth", "read"), h.Auth.Me)
			authGroup.PUT("/password", auth.Require("auth", "update"), h.Auth.ChangePassword)
		}

		users := api.Group("/user")
		{
			users.GET("", auth.Require("user", "list"), h.User.ListUsers)
			users.GET("/roles", auth.Require("role", "read"), h.User.ListRoles)
			// self access is decided by the service
			users.GET("/:id", h.User.GetUser)
			users.POST("", auth.Require("user", "create"), h.User.CreateUser)
			users.PUT("/:id", h.User.UpdateUser)
			users.DELETE("/:id", auth.Require("user", "delete"), h.User.DeleteUser)
		}

		projects := api.Group("/project")
		{
			projects.GET("", auth.Require("project", "read"), h.Project.ListProjects)
			projects.GET("/:id", auth.Require("project", "read"), h.Project.GetProject)
			projects.POST("", auth.Require("project", "create"), h.Project.CreateProject)
			projects.PUT("/:id", auth.Require("project", "update"), h.Project.UpdateProject)
			projects.DELETE("/:id", auth.Require("project", "delete"), h.Project.DeleteProject)
		}

		equipment := api.Group("/equipment")
		{
			equipment.GET("", auth.Require("equipment", "read"), h.Equipment.ListEquipment)
			equipment.GET("/categories", auth.Require("equipment", "read"), h.Equipment.ListCategories)
			equipment.POST("/categories", auth.Require("equipment_catalog", "create"), h.Equipment.CreateCategory)
			equipment.GET("/brands", auth.Require("equipment", "read"), h.Equipment.ListBrands)
			equipment.POST("/brands", auth.Require("equipment_catalog", "create"), h.Equipment.CreateBrand)
			equipment.GET("/:id", auth.Require("equipment", "read"), h.Equipment.GetEquipment)
			equipment.POST("", auth.Require("equipment", "create"), h.Equipment.CreateEquipment)
			equipment.PUT("/:id", auth.Require("equipment", "update"), h.Equipment.UpdateEquipment)
			equipment.DELETE("/:id", auth.Require("equipment", "delete"), h.Equipment.DeleteEquipment)
		}

		TicketRoutes(api, h.Ticket, auth)
		CommentRoutes(api, h.Comment, auth)

		notifications := api.Group("/notification")
		{
			notifications.GET("", auth.Require("notification", "read"), h.Notification.ListNotifications)
			notifications.GET("/unread-count", auth.Require("notification", "read"), h.Notification.UnreadCount)
			notifications.PUT("/read-all", auth.Require("notification", "update"), h.Notification.MarkAllRead)
			notifications.PUT("/:id/read", auth.Require("notification", "update"), h.Notification.MarkRead)
			notifications.DELETE("/:id", auth.Require("notification", "delete"), h.Notification.DeleteNotification)
		}

		api.GET("/stats", auth.Require("stats", "read"), h.Stats.Overview)
		api.GET("/audit", auth.Require("audit", "read"), h.Audit.GetAuditLogs)
	}
}
