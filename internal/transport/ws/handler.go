package ws

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"lessismore/internal/app"
	"lessismore/internal/domain"
)

// Handler upgrades HTTP requests to WebSocket connections
type Handler struct {
	hub      *app.Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *app.Hub, logger *slog.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Allow all origins for development
				// In production, you should validate the origin
				return true
			},
		},
		logger: logger,
	}
}

// Handle upgrades the connection, assigns it an opaque player ID, sends the
// ID back immediately, and runs the client pumps until disconnect
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	playerID := uuid.New().String()
	client := NewClient(conn, h.hub, playerID, h.logger)

	h.logger.Info("websocket connected", "playerID", playerID)

	client.Send(domain.NewServerMessage(domain.MsgAssignPlayerID, &domain.AssignPlayerIDPayload{
		PlayerID: playerID,
	}))

	client.Run()
}
