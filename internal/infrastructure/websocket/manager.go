package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"qrstudio/pkg/logger"
)

// Event is what the hub pushes to connected admin views. Key names the
// store collection that changed so a view can reload just that data.
type Event struct {
	Type string `json:"type"`
	Key  string `json:"key,omitempty"`
}

// Client represents one connected admin view.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// Manager tracks every open admin view and fans store change events out to
// all of them, replacing the interval polling the admin panel used to do.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				m.mutex.Unlock()
				logger.Debug("Admin view connected: %s", client.ID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.ID]; ok {
					delete(m.clients, client.ID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Debug("Admin view disconnected: %s", client.ID)

			case message := <-m.broadcast:
				m.mutex.Lock()
				for _, client := range m.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						delete(m.clients, client.ID)
					}
				}
				m.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// NotifyStorageChanged pushes a storage_changed event for the given store
// key to every connected view. It is wired as a localstore watcher.
func (m *Manager) NotifyStorageChanged(key string) {
	data, err := json.Marshal(Event{Type: "storage_changed", Key: key})
	if err != nil {
		return
	}

	select {
	case m.broadcast <- data:
	default:
		logger.Warn("Dropping storage_changed broadcast for %q, hub is backed up", key)
	}
}

// ClientCount reports how many admin views are connected.
func (m *Manager) ClientCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}

// ReadPump drains the connection until the peer goes away, then
// unregisters the client. Incoming messages are ignored; the channel is
// push only.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("websocket read error: %v", err)
			}
			return
		}
	}
}

// WritePump sends queued events to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	// Send channel closed by the manager.
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
