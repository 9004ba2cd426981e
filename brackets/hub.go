package brackets

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Типы сообщений, которые получают экраны табло.
const (
	MessageMatchCommitted  = "MATCH_COMMITTED"
	MessagePairingUpdated  = "PAIRING_UPDATED"
	MessageRosterUpdated   = "ROSTER_UPDATED"
	MessageSessionUpdated  = "SESSION_UPDATED"
	MessageTournamentReset = "TOURNAMENT_RESET"
)

type WebSocketMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	SentAt  time.Time   `json:"sent_at"`
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 256
)

// Client is one connected scoreboard screen.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	closed bool
}

// Hub fans tournament updates out to every connected screen.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	clients    map[*Client]bool
	mu         sync.Mutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, sendBuffer),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		logger:     logger.With(slog.String("component", "ws_hub")),
	}
}

// Run processes registrations and broadcasts until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("client connected", slog.Int("clients", count))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				h.closeClient(client)
			}
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("client disconnected", slog.Int("clients", count))

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Клиент не успевает читать: отключаем его.
					delete(h.clients, client)
					h.closeClient(client)
					h.logger.Warn("dropping slow client")
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				h.closeClient(client)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Stop disconnects every client and ends Run.
func (h *Hub) Stop() {
	close(h.done)
}

// closeClient must be called with h.mu held.
func (h *Hub) closeClient(c *Client) {
	if !c.closed {
		close(c.send)
		c.closed = true
	}
}

// Broadcast queues a typed message for every connected client.
// It never blocks the caller: if the queue is full the message is dropped.
func (h *Hub) Broadcast(messageType string, payload interface{}) {
	data, err := json.Marshal(WebSocketMessage{Type: messageType, Payload: payload, SentAt: time.Now().UTC()})
	if err != nil {
		h.logger.Error("failed to marshal broadcast", slog.String("type", messageType), slog.Any("error", err))
		return
	}
	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn("broadcast queue full, message dropped", slog.String("type", messageType))
	}
}

// Attach registers conn and starts its read and write pumps.
func (h *Hub) Attach(conn *websocket.Conn) *Client {
	client := &Client{hub: h, conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return client
	}
	go client.writePump()
	go client.readPump()
	return client
}

// Send queues a message for this client only, e.g. the initial state.
func (c *Client) Send(messageType string, payload interface{}) error {
	data, err := json.Marshal(WebSocketMessage{Type: messageType, Payload: payload, SentAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	c.hub.mu.Lock()
	defer c.hub.mu.Unlock()
	if c.closed {
		return websocket.ErrCloseSent
	}
	select {
	case c.send <- data:
	default:
	}
	return nil
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	// Экраны только слушают; входящие сообщения игнорируются.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("unexpected websocket close", slog.Any("error", err))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.hub.logger.Warn("failed to write message", slog.Any("error", err))
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
