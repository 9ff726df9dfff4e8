package realtime

import (
	"context"
	"strconv"
)

// Event is one message addressed to a room.
type Event struct {
	Room string `json:"room"`
	Name string `json:"event"`
	Data any    `json:"data"`
	// ExcludeUserID suppresses delivery to that user's connections in Room.
	ExcludeUserID uint   `json:"excludeUserId,omitempty"`
	InstanceID    string `json:"instanceId,omitempty"`
}

// frame is what a websocket client receives.
type frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Emitter delivers events to connected clients. Delivery is best effort.
type Emitter interface {
	Emit(ctx context.Context, ev Event)
}

func RoleRoom(role string) string {
	return "role:" + role
}

func UserRoom(userID uint) string {
	return "user:" + strconv.FormatUint(uint64(userID), 10)
}
