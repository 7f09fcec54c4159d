package service

import (
	"github.com/mkosinov/taskboard/internal/domain"
)

type CommentService interface {
	Add(user domain.User, cardId domain.CardId, text string) (domain.Comment, error)
}

type Comment struct {
	storage  CommentStorage
	notifier Notifier
}

type CommentStorage interface {
	Membership
	CardBoard(cardId domain.CardId) (domain.BoardId, error)
	SaveComment(cardId domain.CardId, userId domain.UserId, text string) (domain.Comment, error)
}

func NewComment(storage CommentStorage, notifier Notifier) CommentService {
	return &Comment{storage, notifier}
}

// Add attributes the comment to the caller and returns it joined with the
// author email.
func (c *Comment) Add(user domain.User, cardId domain.CardId, text string) (domain.Comment, error) {
	boardId, err := c.storage.CardBoard(cardId)
	if err != nil {
		return domain.Comment{}, err
	}
	if err := requireMember(c.storage, user.Id, boardId); err != nil {
		return domain.Comment{}, err
	}

	comment, err := c.storage.SaveComment(cardId, user.Id, sanitize(text))
	if err != nil {
		return domain.Comment{}, err
	}

	c.notifier.BoardChanged(boardId)
	return comment, nil
}
