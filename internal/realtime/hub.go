package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/metrics"
)

const sendBuffer = 64

// Hub tracks websocket clients by room on this instance.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
	}
}

// Emit delivers ev to local clients only.
func (h *Hub) Emit(_ context.Context, ev Event) {
	h.Deliver(ev)
}

// Deliver writes ev to every client in ev.Room without blocking. Clients whose
// send buffer is full are disconnected.
func (h *Hub) Deliver(ev Event) {
	msg, err := json.Marshal(frame{Event: ev.Name, Data: ev.Data})
	if err != nil {
		slog.Error("marshal realtime event", "event", ev.Name, "room", ev.Room, "error", err)
		return
	}

	var slow []*Client
	h.mu.RLock()
	for c := range h.rooms[ev.Room] {
		if ev.ExcludeUserID != 0 && c.UserID == ev.ExcludeUserID {
			continue
		}
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		metrics.WSEventsDropped.Inc()
		slog.Warn("dropping slow websocket client", "user_id", c.UserID, "room", ev.Room)
		h.Leave(c)
	}
}

// ServeClient registers conn in the rooms of its user and role and pumps
// messages until the connection closes.
func (h *Hub) ServeClient(conn *websocket.Conn, userID uint, role string) {
	c := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		UserID: userID,
		Role:   role,
	}
	h.Join(c, RoleRoom(role), UserRoom(userID))

	go c.writePump()
	c.readPump()
}

func (h *Hub) Join(c *Client, rooms ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(c.rooms) == 0 {
		metrics.WSConnections.Inc()
	}
	for _, room := range rooms {
		members, ok := h.rooms[room]
		if !ok {
			members = make(map[*Client]struct{})
			h.rooms[room] = members
		}
		members[c] = struct{}{}
	}
	c.rooms = append(c.rooms, rooms...)
}

// Leave removes c from all rooms and closes its send channel. Safe to call twice.
func (h *Hub) Leave(c *Client) {
	c.closeOnce.Do(func() {
		h.mu.Lock()
		for _, room := range c.rooms {
			if members, ok := h.rooms[room]; ok {
				delete(members, c)
				if len(members) == 0 {
					delete(h.rooms, room)
				}
			}
		}
		h.mu.Unlock()
		close(c.send)
		metrics.WSConnections.Dec()
	})
}

// RoomSize reports how many local clients are in room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
