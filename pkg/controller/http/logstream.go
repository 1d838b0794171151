package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/m-mizutani/ctxlog"

	"github.com/andreas-buehlmeier/pptx-parser/pkg/utils/logbus"
)

// subscriberBuffer is the per-connection line buffer. When a viewer falls
// behind, the hub drops its oldest buffered line.
const subscriberBuffer = 64

const writeTimeout = 10 * time.Second

// LogStreamHandler pushes log lines to browsers over a WebSocket. Delivery
// is best-effort and at-most-once: lines published while nobody is
// connected are lost, and reconnecting replays only the hub's recent
// buffer. Nothing is read from the client beyond the close frame.
type LogStreamHandler struct {
	hub      *logbus.Hub
	upgrader websocket.Upgrader
}

// NewLogStreamHandler creates a new LogStreamHandler
func NewLogStreamHandler(hub *logbus.Hub) *LogStreamHandler {
	return &LogStreamHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The only intended client is the tool's own page.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle upgrades the connection and streams log lines until either side
// disconnects.
func (h *LogStreamHandler) Handle(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.From(r.Context())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	lines, cancel := h.hub.Subscribe(subscriberBuffer)
	defer cancel()

	// Reading is how gorilla surfaces the close frame; no inbound payload
	// is expected.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return
			}
			if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
