// Package realtime pushes board invalidation signals to connected clients.
// The signal carries no data; receivers refetch the board snapshot over
// HTTP. Delivery is at-most-once: a slow client's message is dropped.
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/mkosinov/taskboard/internal/domain"
	"github.com/mkosinov/taskboard/internal/logger"
)

// Membership gates room joins the same way the HTTP layer gates board
// reads: no membership row, no subscription.
type Membership interface {
	IsMember(userId domain.UserId, boardId domain.BoardId) (bool, error)
}

type event struct {
	Event   string         `json:"event"`
	BoardId domain.BoardId `json:"board_id,omitempty"`
}

const (
	eventJoinBoard    = "join-board"
	eventLeaveBoard   = "leave-board"
	eventBoardUpdated = "board-updated"
)

// Hub is the subscription registry: board id -> set of clients. Lifecycle
// of an entry is tied to the client's websocket connection.
type Hub struct {
	mu         sync.RWMutex
	rooms      map[domain.BoardId]map[*Client]struct{}
	membership Membership
}

func NewHub(membership Membership) *Hub {
	return &Hub{
		rooms:      make(map[domain.BoardId]map[*Client]struct{}),
		membership: membership,
	}
}

// BoardChanged implements service.Notifier. Every subscriber of the board
// gets a single untyped "board-updated" nudge.
func (h *Hub) BoardChanged(boardId domain.BoardId) {
	msg, err := json.Marshal(event{Event: eventBoardUpdated})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[boardId] {
		select {
		case client.send <- msg:
		default:
			// drop if slow; the next mutation will nudge again
			logger.Log.Debug("dropped board-updated signal", "client_id", client.id, "board_id", boardId)
		}
	}
}

// join moves the client into the board's room, leaving its previous room
// first. Non-members are silently ignored.
func (h *Hub) join(c *Client, boardId domain.BoardId) {
	ok, err := h.membership.IsMember(c.user.Id, boardId)
	if err != nil {
		logger.Log.Error("membership lookup failed", "user_id", c.user.Id, "board_id", boardId, "error", err)
		return
	}
	if !ok {
		logger.Log.Warn("join rejected: not a board member", "client_id", c.id, "user_id", c.user.Id, "board_id", boardId)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(c)
	if h.rooms[boardId] == nil {
		h.rooms[boardId] = make(map[*Client]struct{})
	}
	h.rooms[boardId][c] = struct{}{}
	c.boardId = boardId
	logger.Log.Debug("client joined board room", "client_id", c.id, "board_id", boardId, "subscribers", len(h.rooms[boardId]))
}

func (h *Hub) leave(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(c)
}

func (h *Hub) leaveLocked(c *Client) {
	if c.boardId == 0 {
		return
	}
	if subs, ok := h.rooms[c.boardId]; ok {
		delete(subs, c)
		if len(subs) == 0 {
			delete(h.rooms, c.boardId)
		}
	}
	c.boardId = 0
}

// Subscribers reports the current room size, for tests and introspection.
func (h *Hub) Subscribers(boardId domain.BoardId) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[boardId])
}
