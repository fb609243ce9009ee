package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound frame size
	maxMessageSize = 16 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin checks are relaxed; the socket still requires a valid JWT
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// inboundFrame is the only frame shape clients may send: a plain text
// message for the thread the socket is attached to.
type inboundFrame struct {
	Body string `json:"body"`
}

// MessageSink persists an inbound text message and fans the stored message
// out to the thread. Implemented by the chat service.
type MessageSink interface {
	DeliverText(ctx context.Context, threadID, senderID int64, body string) error
}

// Client is a middleman between one websocket connection and the hub
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	outbound chan []byte

	userID   int64
	threadID int64

	sink   MessageSink
	logger zerolog.Logger
}

// readPump reads frames from the connection, persisting text messages
// through the sink. It exits when the peer disconnects.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Info().Int64("userID", c.userID).Int64("threadID", c.threadID).Msg("WebSocket closed normally")
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn().Err(err).Int64("userID", c.userID).Int64("threadID", c.threadID).Msg("Unexpected WebSocket close")
			}
			break
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			c.logger.Debug().Err(err).Int64("userID", c.userID).Msg("Ignoring malformed client frame")
			continue
		}

		body := strings.TrimSpace(frame.Body)
		if body == "" {
			continue
		}

		// Sender identity comes from the authenticated socket, never from
		// the frame
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := c.sink.DeliverText(ctx, c.threadID, c.userID, body); err != nil {
			c.logger.Error().Err(err).Int64("threadID", c.threadID).Int64("userID", c.userID).Msg("Failed to deliver socket message")
		}
		cancel()
	}
}

// writePump writes hub broadcasts and keepalive pings to the connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.outbound:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
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
