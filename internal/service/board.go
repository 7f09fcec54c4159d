package service

import (
	"github.com/mkosinov/taskboard/internal/domain"
)

type BoardService interface {
	GetAll(user domain.User) ([]domain.Board, error)
	Create(user domain.User, name string) (domain.Board, error)
	Get(user domain.User, boardId domain.BoardId) (domain.Board, error)
	Invite(user domain.User, boardId domain.BoardId, email domain.Email) error
}

type Board struct {
	storage BoardStorage
}

type BoardStorage interface {
	Membership
	CreateBoard(name string, creatorId domain.UserId) (domain.Board, error)
	BoardsForUser(userId domain.UserId) ([]domain.Board, error)
	Board(boardId domain.BoardId) (domain.Board, error)
	BoardFull(boardId domain.BoardId) (domain.Board, error)
	AddMember(boardId domain.BoardId, userId domain.UserId, role string) error
	User(email domain.Email) (domain.User, error)
}

func NewBoard(storage BoardStorage) BoardService {
	return &Board{storage}
}

func (b *Board) GetAll(user domain.User) ([]domain.Board, error) {
	return b.storage.BoardsForUser(user.Id)
}

func (b *Board) Create(user domain.User, name string) (domain.Board, error) {
	return b.storage.CreateBoard(sanitize(name), user.Id)
}

// Get returns the full snapshot. Existence is checked before membership so
// an absent board is a 404 for everyone; content never leaks to
// non-members (403).
func (b *Board) Get(user domain.User, boardId domain.BoardId) (domain.Board, error) {
	if _, err := b.storage.Board(boardId); err != nil {
		return domain.Board{}, err
	}
	if err := requireMember(b.storage, user.Id, boardId); err != nil {
		return domain.Board{}, err
	}
	return b.storage.BoardFull(boardId)
}

// Invite adds the user behind email as a plain member. Unknown email is
// 404, an existing membership surfaces as 409 from storage.
func (b *Board) Invite(user domain.User, boardId domain.BoardId, email domain.Email) error {
	if _, err := b.storage.Board(boardId); err != nil {
		return err
	}
	if err := requireMember(b.storage, user.Id, boardId); err != nil {
		return err
	}

	target, err := b.storage.User(email)
	if err != nil {
		return err
	}

	return b.storage.AddMember(boardId, target.Id, domain.RoleMember)
}
