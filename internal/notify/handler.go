package notify

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	hub       *Hub
	keepalive time.Duration
	logger    *zap.Logger
}

func NewHandler(hub *Hub, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("notify.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notify.handler")
	}
	return &Handler{hub: hub, keepalive: 30 * time.Second, logger: l}
}

// Stream serves text/event-stream until the client goes away or the hub
// closes the client.
func (h *Handler) Stream(c *gin.Context) {
	userID := c.GetString("email")
	client := NewClient(uuid.NewString(), userID)
	h.hub.Register(client)
	defer h.hub.Unregister(client.ID)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	writeEvent(c, Event{EventType: EventConnected, Data: fmt.Sprintf(`{"client_id":%q}`, client.ID)})

	heartbeat := time.NewTicker(h.keepalive)
	defer heartbeat.Stop()

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			h.logger.Debug("stream client gone", zap.String("client_id", client.ID))
			return
		case event, ok := <-client.Events:
			if !ok {
				return
			}
			writeEvent(c, event)
		case <-heartbeat.C:
			_, _ = c.Writer.WriteString(": keepalive\n\n")
			c.Writer.Flush()
		}
	}
}

func writeEvent(c *gin.Context, event Event) {
	_, _ = fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event.EventType, event.Data)
	c.Writer.Flush()
}
