package service

import (
	"net/http"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mkosinov/taskboard/internal/domain"
	"github.com/mkosinov/taskboard/internal/errors"
)

// Notifier publishes the "board changed" invalidation signal to a board's
// subscribers. The realtime hub implements it; tests substitute a mock.
type Notifier interface {
	BoardChanged(boardId domain.BoardId)
}

// Membership is the guard every board-scoped operation runs through.
type Membership interface {
	IsMember(userId domain.UserId, boardId domain.BoardId) (bool, error)
}

var errForbidden = &errors.ErrorWithStatusCode{Message: "Forbidden", StatusCode: http.StatusForbidden}

// requireMember returns 403 for non-members. Resource existence must be
// checked first so a missing target yields 404 rather than leaking through
// the membership gate.
func requireMember(m Membership, userId domain.UserId, boardId domain.BoardId) error {
	ok, err := m.IsMember(userId, boardId)
	if err != nil {
		return err
	}
	if !ok {
		return errForbidden
	}
	return nil
}

// User-supplied text is stored plain; strip any markup outright.
var sanitizer = bluemonday.StrictPolicy()

func sanitize(s string) string {
	return sanitizer.Sanitize(s)
}
