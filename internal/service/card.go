package service

import (
	"github.com/mkosinov/taskboard/internal/domain"
)

type CardService interface {
	Create(user domain.User, listId domain.ListId, content string) (domain.Card, error)
	Delete(user domain.User, cardId domain.CardId) error
	Move(user domain.User, cardId domain.CardId, newListId domain.ListId, newPosition int) error
	Details(user domain.User, cardId domain.CardId) (domain.CardDetails, error)
	Update(user domain.User, cardId domain.CardId, upd domain.CardUpdate) error
}

type Card struct {
	storage  CardStorage
	notifier Notifier
}

type CardStorage interface {
	Membership
	CreateCard(listId domain.ListId, content string) (domain.Card, error)
	Card(cardId domain.CardId) (domain.Card, error)
	CardBoard(cardId domain.CardId) (domain.BoardId, error)
	ListBoard(listId domain.ListId) (domain.BoardId, error)
	DeleteCard(cardId domain.CardId) error
	MoveCard(cardId domain.CardId, newListId domain.ListId, newPosition int) error
	UpdateCard(cardId domain.CardId, upd domain.CardUpdate) error
	Comments(cardId domain.CardId) ([]domain.Comment, error)
}

func NewCard(storage CardStorage, notifier Notifier) CardService {
	return &Card{storage, notifier}
}

// Create appends a card to the list (position = current card count).
// Membership is resolved through the list's board.
func (c *Card) Create(user domain.User, listId domain.ListId, content string) (domain.Card, error) {
	boardId, err := c.storage.ListBoard(listId)
	if err != nil {
		return domain.Card{}, err
	}
	if err := requireMember(c.storage, user.Id, boardId); err != nil {
		return domain.Card{}, err
	}

	card, err := c.storage.CreateCard(listId, sanitize(content))
	if err != nil {
		return domain.Card{}, err
	}

	c.notifier.BoardChanged(boardId)
	return card, nil
}

func (c *Card) Delete(user domain.User, cardId domain.CardId) error {
	boardId, err := c.storage.CardBoard(cardId)
	if err != nil {
		return err
	}
	if err := requireMember(c.storage, user.Id, boardId); err != nil {
		return err
	}

	if err := c.storage.DeleteCard(cardId); err != nil {
		return err
	}

	c.notifier.BoardChanged(boardId)
	return nil
}

// Move writes list_id and position verbatim, no recomputation or bounds
// checks. The caller must be a member of both the source and destination
// boards; both get the invalidation signal when they differ.
func (c *Card) Move(user domain.User, cardId domain.CardId, newListId domain.ListId, newPosition int) error {
	srcBoardId, err := c.storage.CardBoard(cardId)
	if err != nil {
		return err
	}
	dstBoardId, err := c.storage.ListBoard(newListId)
	if err != nil {
		return err
	}
	if err := requireMember(c.storage, user.Id, srcBoardId); err != nil {
		return err
	}
	if dstBoardId != srcBoardId {
		if err := requireMember(c.storage, user.Id, dstBoardId); err != nil {
			return err
		}
	}

	if err := c.storage.MoveCard(cardId, newListId, newPosition); err != nil {
		return err
	}

	c.notifier.BoardChanged(dstBoardId)
	if srcBoardId != dstBoardId {
		c.notifier.BoardChanged(srcBoardId)
	}
	return nil
}

func (c *Card) Details(user domain.User, cardId domain.CardId) (domain.CardDetails, error) {
	boardId, err := c.storage.CardBoard(cardId)
	if err != nil {
		return domain.CardDetails{}, err
	}
	if err := requireMember(c.storage, user.Id, boardId); err != nil {
		return domain.CardDetails{}, err
	}

	card, err := c.storage.Card(cardId)
	if err != nil {
		return domain.CardDetails{}, err
	}
	comments, err := c.storage.Comments(cardId)
	if err != nil {
		return domain.CardDetails{}, err
	}

	return domain.CardDetails{Card: card, Comments: comments}, nil
}

// Update applies a partial update; an empty update set skips the write but
// still publishes the signal, matching the original behavior.
func (c *Card) Update(user domain.User, cardId domain.CardId, upd domain.CardUpdate) error {
	boardId, err := c.storage.CardBoard(cardId)
	if err != nil {
		return err
	}
	if err := requireMember(c.storage, user.Id, boardId); err != nil {
		return err
	}

	if upd.Content != nil {
		clean := sanitize(*upd.Content)
		upd.Content = &clean
	}
	if upd.Description != nil {
		clean := sanitize(*upd.Description)
		upd.Description = &clean
	}

	if err := c.storage.UpdateCard(cardId, upd); err != nil {
		return err
	}

	c.notifier.BoardChanged(boardId)
	return nil
}
