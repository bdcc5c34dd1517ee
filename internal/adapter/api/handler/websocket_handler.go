package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	ws "qrstudio/internal/infrastructure/websocket"
	"qrstudio/pkg/errors"
)

// WebSocketHandler attaches admin views to the storage-changed hub so
// they refresh without polling the store.
type WebSocketHandler struct {
	wsManager *ws.Manager
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebSocketHandler(wsManager *ws.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager: wsManager,
	}
}

func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		ID:   uuid.New().String(),
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}
