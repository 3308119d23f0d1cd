package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// ActivityEvent is pushed to every connected dashboard of an organization
// whenever one of its records changes, so tables and charts can refetch.
type ActivityEvent struct {
	Type           string `json:"type"`
	Entity         string `json:"entity"`
	Action         string `json:"action"`
	OrganizationID string `json:"organization_id"`
}

// ActivityHub tracks dashboard connections per organization and fans activity
// events out to them.
type ActivityHub struct {
	mu             sync.RWMutex
	clients        map[string]map[*websocket.Conn]bool
	allowedOrigins []string
	logger         *zap.Logger
}

func NewActivityHub(allowedOrigins []string, logger *zap.Logger) *ActivityHub {
	return &ActivityHub{
		clients:        make(map[string]map[*websocket.Conn]bool),
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

func (h *ActivityHub) Broadcast(organizationID, entity, action string) {
	h.mu.RLock()
	clients, ok := h.clients[organizationID]
	if !ok || len(clients) == 0 {
		h.mu.RUnlock()
		return
	}

	conns := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	event := ActivityEvent{
		Type:           "refresh",
		Entity:         entity,
		Action:         action,
		OrganizationID: organizationID,
	}

	for _, conn := range conns {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			continue
		}

		if err := conn.WriteJSON(event); err != nil {
			h.logger.Warn("dropping activity feed client", zap.Error(err))
			h.remove(organizationID, conn)
			conn.Close()
		}
	}
}

func (h *ActivityHub) add(organizationID string, conn *websocket.Conn) {
	h.mu.Lock()
	if h.clients[organizationID] == nil {
		h.clients[organizationID] = make(map[*websocket.Conn]bool)
	}
	h.clients[organizationID][conn] = true
	h.mu.Unlock()
}

func (h *ActivityHub) remove(organizationID string, conn *websocket.Conn) {
	h.mu.Lock()
	if clients, ok := h.clients[organizationID]; ok {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(h.clients, organizationID)
		}
	}
	h.mu.Unlock()
}

// Serve upgrades the request and keeps the connection registered until the
// client goes away, pinging on the usual schedule.
func (h *ActivityHub) Serve(w http.ResponseWriter, r *http.Request, organizationID string) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				// Non-browser clients send no Origin header.
				return true
			}
			for _, allowed := range h.allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		conn.Close()
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	h.add(organizationID, conn)

	defer func() {
		h.remove(organizationID, conn)
		conn.Close()
	}()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return
	}

	err = conn.WriteJSON(ActivityEvent{
		Type:           "connected",
		OrganizationID: organizationID,
	})

	if err != nil {
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			break
		}

		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Debug("websocket closed", zap.String("organization_id", organizationID), zap.Error(err))
			}
			break
		}
	}
}
