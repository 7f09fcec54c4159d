package service

import (
	"github.com/mkosinov/taskboard/internal/domain"
)

type ListService interface {
	Create(user domain.User, boardId domain.BoardId, name string) (domain.List, error)
	Delete(user domain.User, listId domain.ListId) error
	Reorder(user domain.User, boardId domain.BoardId, orderedListIds []domain.ListId) error
}

type List struct {
	storage  ListStorage
	notifier Notifier
}

type ListStorage interface {
	Membership
	Board(boardId domain.BoardId) (domain.Board, error)
	CreateList(boardId domain.BoardId, name string) (domain.List, error)
	ListBoard(listId domain.ListId) (domain.BoardId, error)
	DeleteList(listId domain.ListId) error
	ReorderLists(boardId domain.BoardId, orderedListIds []domain.ListId) error
}

func NewList(storage ListStorage, notifier Notifier) ListService {
	return &List{storage, notifier}
}

// Create appends a list to the board (position = current list count).
func (l *List) Create(user domain.User, boardId domain.BoardId, name string) (domain.List, error) {
	if _, err := l.storage.Board(boardId); err != nil {
		return domain.List{}, err
	}
	if err := requireMember(l.storage, user.Id, boardId); err != nil {
		return domain.List{}, err
	}

	list, err := l.storage.CreateList(boardId, sanitize(name))
	if err != nil {
		return domain.List{}, err
	}

	l.notifier.BoardChanged(boardId)
	return list, nil
}

// Delete removes the list and its cards (schema cascade). Remaining lists
// are not renumbered.
func (l *List) Delete(user domain.User, listId domain.ListId) error {
	boardId, err := l.storage.ListBoard(listId)
	if err != nil {
		return err
	}
	if err := requireMember(l.storage, user.Id, boardId); err != nil {
		return err
	}

	if err := l.storage.DeleteList(listId); err != nil {
		return err
	}

	l.notifier.BoardChanged(boardId)
	return nil
}

// Reorder assigns position = index for every id in the given order.
// Applying the same order twice is idempotent.
func (l *List) Reorder(user domain.User, boardId domain.BoardId, orderedListIds []domain.ListId) error {
	if _, err := l.storage.Board(boardId); err != nil {
		return err
	}
	if err := requireMember(l.storage, user.Id, boardId); err != nil {
		return err
	}

	if err := l.storage.ReorderLists(boardId, orderedListIds); err != nil {
		return err
	}

	l.notifier.BoardChanged(boardId)
	return nil
}
