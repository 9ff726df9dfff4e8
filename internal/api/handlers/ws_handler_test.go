package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/notification"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/project"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/realtime"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsocket_RejectsMissingToken(t *testing.T) {
	gdb := testutils.NewSQLiteDB(t)
	r, _ := testutils.SetupRouter(t, gdb)
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, ""), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWebsocket_DeliversNotificationToManager(t *testing.T) {
	gdb := testutils.NewSQLiteDB(t)
	r, hub := testutils.SetupRouter(t, gdb)
	srv := httptest.NewServer(r)
	defer srv.Close()

	staff := testutils.CreateUser(t, gdb, user.RoleStaff, "staff@example.com")
	client := testutils.CreateUser(t, gdb, user.RoleClient, "client@example.com")
	p := testutils.CreateProject(t, gdb, "Portal", project.TypeExternal, &client, []user.User{staff}, nil)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, testutils.Token(t, gdb, staff)), nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool {
		return hub.RoomSize(realtime.UserRoom(staff.ID)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	f := &apiFixture{db: gdb, router: r}
	w, _ := f.do(t, http.MethodPost, "/api/v1/ticket", &client, gin.H{
		"title":       "Broken",
		"description": "it broke",
		"type":        "TECHNICAL_ISSUE",
		"projectId":   p.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame struct {
		Event string `json:"event"`
		Data  struct {
			Type string `json:"type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(msg, &frame))
	assert.Equal(t, notification.EventNewNotification, frame.Event)
	assert.Equal(t, string(notification.TypeTicketCreated), frame.Data.Type)
}

func wsURL(srv *httptest.Server, token string) string {
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws"
	if token != "" {
		u += "?token=" + token
	}
	return u
}
