package network

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MeebitForge/MeebitStudio/server/internal/platform/metrics"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// NewClient creates a new WebSocket client and returns it.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// SpectatorCommand represents an incoming command from the frontend. The feed
// is read-only: clients can only request past events, never mutate state.
type SpectatorCommand struct {
	Type      string `json:"type"` // "REPLAY"
	SessionID string `json:"session_id"`
}

// Register adds the client to the hub.
func (c *Client) Register() {
	c.hub.register <- c
}

// ReadPump pumps messages from the websocket connection to the hub.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
				metrics.Get().RecordWSError()
			}
			break
		}
		metrics.Get().RecordWSMessage(true)

		var cmd SpectatorCommand
		if err := json.Unmarshal(message, &cmd); err != nil {
			c.hub.logger.Error("Failed to parse SpectatorCommand from WebSocket. err: " + err.Error())
			continue
		}

		c.handleCommand(cmd)
	}
}

func (c *Client) handleCommand(cmd SpectatorCommand) {
	switch cmd.Type {
	case "REPLAY":
		c.handleReplay(cmd.SessionID)
	default:
		c.hub.logger.Warn("Unknown SpectatorCommand type: " + cmd.Type)
	}
}

// handleReplay sends the full event history of one session back to the
// requesting client only.
func (c *Client) handleReplay(sessionID string) {
	if sessionID == "" {
		c.hub.logger.Warn("REPLAY command without session_id")
		return
	}

	history := c.hub.eventLog.GetBySession(sessionID)
	for _, event := range history {
		payload, err := json.Marshal(event)
		if err != nil {
			metrics.Get().RecordWSError()
			continue
		}
		select {
		case c.send <- payload:
			metrics.Get().RecordWSMessage(false)
		default:
			// Slow consumer. Drop the rest of the replay rather than block.
			metrics.Get().RecordWSError()
			return
		}
	}
	c.hub.logger.Event("REPLAY_SERVED", sessionID, "Sent session history to spectator")
}

// WritePump pumps messages from the hub to the websocket connection.
func (c *Client) WritePump() {
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
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message.
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
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
