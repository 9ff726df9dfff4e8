package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/api/middleware"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/config"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/realtime"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/response"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		// Non-browser clients send no Origin.
		return origin == "" || middleware.OriginAllowed(config.CORSOrigins, origin)
	},
}

type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Serve joins the caller to its role and user rooms. It runs behind the JWT
// and current-user middleware, so the token may also come from ?token=.
func (h *WSHandler) Serve(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response.
		slog.Warn("websocket upgrade failed", "error", err, "user_id", claims.UserID)
		return
	}
	slog.Debug("websocket connected", "user_id", claims.UserID, "role", claims.Role)
	h.hub.ServeClient(conn, claims.UserID, claims.Role)
}
