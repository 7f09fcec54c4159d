package realtime

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mkosinov/taskboard/internal/domain"
	"github.com/mkosinov/taskboard/internal/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockMembership struct {
	isMemberFunc func(userId domain.UserId, boardId domain.BoardId) (bool, error)
}

func (m *MockMembership) IsMember(userId domain.UserId, boardId domain.BoardId) (bool, error) {
	if m.isMemberFunc != nil {
		return m.isMemberFunc(userId, boardId)
	}
	return true, nil
}

func newTestClient(hub *Hub, userId domain.UserId) *Client {
	return &Client{
		id:   "test-client",
		hub:  hub,
		send: make(chan []byte, sendBufferSize),
		user: domain.User{Id: userId, Email: "alice@x.com"},
	}
}

func TestHubJoinLeave(t *testing.T) {
	t.Run("member joins the room", func(t *testing.T) {
		hub := NewHub(&MockMembership{})
		c := newTestClient(hub, 1)

		hub.join(c, 5)

		assert.Equal(t, 1, hub.Subscribers(5))
		assert.Equal(t, domain.BoardId(5), c.boardId)
	})

	t.Run("non-member is ignored", func(t *testing.T) {
		hub := NewHub(&MockMembership{
			isMemberFunc: func(userId domain.UserId, boardId domain.BoardId) (bool, error) { return false, nil },
		})
		c := newTestClient(hub, 1)

		hub.join(c, 5)

		assert.Equal(t, 0, hub.Subscribers(5))
		assert.Equal(t, domain.BoardId(0), c.boardId)
	})

	t.Run("membership lookup failure is ignored", func(t *testing.T) {
		hub := NewHub(&MockMembership{
			isMemberFunc: func(userId domain.UserId, boardId domain.BoardId) (bool, error) { return false, errors.New("mock") },
		})
		c := newTestClient(hub, 1)

		hub.join(c, 5)

		assert.Equal(t, 0, hub.Subscribers(5))
	})

	t.Run("joining a second board leaves the first", func(t *testing.T) {
		hub := NewHub(&MockMembership{})
		c := newTestClient(hub, 1)

		hub.join(c, 5)
		hub.join(c, 6)

		assert.Equal(t, 0, hub.Subscribers(5))
		assert.Equal(t, 1, hub.Subscribers(6))
	})

	t.Run("leave empties the room", func(t *testing.T) {
		hub := NewHub(&MockMembership{})
		c := newTestClient(hub, 1)

		hub.join(c, 5)
		hub.leave(c)

		assert.Equal(t, 0, hub.Subscribers(5))
		assert.Equal(t, domain.BoardId(0), c.boardId)

		// leaving twice is a no-op
		hub.leave(c)
		assert.Equal(t, 0, hub.Subscribers(5))
	})
}

func TestHubBoardChanged(t *testing.T) {
	t.Run("every subscriber of the board gets the signal", func(t *testing.T) {
		hub := NewHub(&MockMembership{})
		c1 := newTestClient(hub, 1)
		c2 := newTestClient(hub, 2)
		other := newTestClient(hub, 3)
		hub.join(c1, 5)
		hub.join(c2, 5)
		hub.join(other, 6)

		hub.BoardChanged(5)

		for _, c := range []*Client{c1, c2} {
			select {
			case raw := <-c.send:
				var ev event
				require.NoError(t, json.Unmarshal(raw, &ev))
				assert.Equal(t, eventBoardUpdated, ev.Event)
			default:
				t.Fatal("expected a board-updated signal")
			}
		}
		assert.Empty(t, other.send)
	})

	t.Run("no subscribers is a no-op", func(t *testing.T) {
		hub := NewHub(&MockMembership{})
		hub.BoardChanged(5)
	})

	t.Run("slow client's signal is dropped", func(t *testing.T) {
		hub := NewHub(&MockMembership{})
		c := newTestClient(hub, 1)
		c.send = make(chan []byte) // unbuffered, nobody reading
		hub.join(c, 5)

		done := make(chan struct{})
		go func() {
			hub.BoardChanged(5)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("BoardChanged blocked on a slow client")
		}
	})
}

func TestServeWS(t *testing.T) {
	jwtService := jwt.New("test-secret", time.Hour)
	user := domain.User{Id: 1, Email: "alice@x.com"}

	newServer := func(hub *Hub) *httptest.Server {
		return httptest.NewServer(hub.ServeWS(jwtService))
	}

	t.Run("missing token", func(t *testing.T) {
		srv := newServer(NewHub(&MockMembership{}))
		defer srv.Close()

		resp, err := http.Get(srv.URL)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid token", func(t *testing.T) {
		srv := newServer(NewHub(&MockMembership{}))
		defer srv.Close()

		resp, err := http.Get(srv.URL + "?token=garbage")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("join then receive board-updated", func(t *testing.T) {
		hub := NewHub(&MockMembership{})
		srv := newServer(hub)
		defer srv.Close()

		token, err := jwtService.NewToken(user)
		require.NoError(t, err)
		wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=" + token

		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.NoError(t, err)
		defer conn.Close()

		require.NoError(t, conn.WriteJSON(event{Event: eventJoinBoard, BoardId: 5}))

		// the join is processed by the server's read pump; wait for it
		require.Eventually(t, func() bool { return hub.Subscribers(5) == 1 }, time.Second, 10*time.Millisecond)

		hub.BoardChanged(5)

		conn.SetReadDeadline(time.Now().Add(time.Second))
		var ev event
		require.NoError(t, conn.ReadJSON(&ev))
		assert.Equal(t, eventBoardUpdated, ev.Event)
	})

	t.Run("disconnect cleans up the room", func(t *testing.T) {
		hub := NewHub(&MockMembership{})
		srv := newServer(hub)
		defer srv.Close()

		token, err := jwtService.NewToken(user)
		require.NoError(t, err)
		wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=" + token

		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.NoError(t, err)

		require.NoError(t, conn.WriteJSON(event{Event: eventJoinBoard, BoardId: 5}))
		require.Eventually(t, func() bool { return hub.Subscribers(5) == 1 }, time.Second, 10*time.Millisecond)

		conn.Close()
		require.Eventually(t, func() bool { return hub.Subscribers(5) == 0 }, time.Second, 10*time.Millisecond)
	})
}
