package realtime

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mkosinov/taskboard/internal/domain"
	"github.com/mkosinov/taskboard/internal/jwt"
	"github.com/mkosinov/taskboard/internal/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Client struct {
	id      string
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	user    domain.User
	boardId domain.BoardId // current room, 0 = none
}

// ServeWS authenticates the token query parameter, upgrades the
// connection and runs the read/write pumps until the client disconnects.
func (h *Hub) ServeWS(jwtService jwt.JwtService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "token is required", http.StatusUnauthorized)
			return
		}
		user, err := jwtService.DecodeToken(token)
		if err != nil {
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Error("websocket upgrade failed", "error", err)
			return
		}

		client := &Client{
			id:   uuid.NewString(),
			hub:  h,
			conn: conn,
			send: make(chan []byte, sendBufferSize),
			user: *user,
		}
		logger.Log.Info("websocket connected", "client_id", client.id, "user_id", user.Id)

		go client.writePump()
		client.readPump()
	}
}

// readPump consumes join/leave events until the connection dies, then
// removes the client from its room.
func (c *Client) readPump() {
	defer func() {
		c.hub.leave(c)
		close(c.send)
		c.conn.Close()
		logger.Log.Info("websocket disconnected", "client_id", c.id, "user_id", c.user.Id)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var ev event
		if err := json.Unmarshal(raw, &ev); err != nil {
			logger.Log.Debug("ignoring malformed client event", "client_id", c.id)
			continue
		}

		switch ev.Event {
		case eventJoinBoard:
			c.hub.join(c, ev.BoardId)
		case eventLeaveBoard:
			c.hub.leave(c)
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
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
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
