package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mkosinov/taskboard/internal/domain"
	internal_errors "github.com/mkosinov/taskboard/internal/errors"
)

// CreateCard appends a card to the list: position = current card count.
func (s *Storage) CreateCard(listId domain.ListId, content string) (domain.Card, error) {
	var c domain.Card
	err := s.db.QueryRow(`
		INSERT INTO cards(list_id, content, position)
		SELECT $1, $2, COUNT(*) FROM cards WHERE list_id = $1
		RETURNING id, list_id, content, description, due_date, position, created_at`, listId, content).
		Scan(&c.Id, &c.ListId, &c.Content, &c.Description, &c.DueDate, &c.Position, &c.CreatedAt)
	if err != nil {
		return domain.Card{}, fmt.Errorf("failed to insert card: %w", err)
	}
	return c, nil
}

// Card fetches a single card. 404 when absent.
func (s *Storage) Card(cardId domain.CardId) (domain.Card, error) {
	var c domain.Card
	err := s.db.QueryRow("SELECT id, list_id, content, description, due_date, position, created_at FROM cards WHERE id = $1", cardId).
		Scan(&c.Id, &c.ListId, &c.Content, &c.Description, &c.DueDate, &c.Position, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Card{}, &internal_errors.ErrorWithStatusCode{Message: "Card not found", StatusCode: http.StatusNotFound}
		}
		return domain.Card{}, fmt.Errorf("failed to query card: %w", err)
	}
	return c, nil
}

// CardBoard resolves a card to its board through the card -> list -> board
// chain. 404 when the card is absent.
func (s *Storage) CardBoard(cardId domain.CardId) (domain.BoardId, error) {
	var boardId domain.BoardId
	err := s.db.QueryRow("SELECT l.board_id FROM cards c JOIN lists l ON c.list_id = l.id WHERE c.id = $1", cardId).Scan(&boardId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, &internal_errors.ErrorWithStatusCode{Message: "Card not found", StatusCode: http.StatusNotFound}
		}
		return 0, fmt.Errorf("failed to query card board: %w", err)
	}
	return boardId, nil
}

// DeleteCard removes the card. Remaining cards keep their positions.
func (s *Storage) DeleteCard(cardId domain.CardId) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM cards WHERE id = $1", cardId)
		if err != nil {
			return fmt.Errorf("failed to delete card: %w", err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return &internal_errors.ErrorWithStatusCode{Message: "Card not found", StatusCode: http.StatusNotFound}
		}
		return nil
	})
}

// MoveCard writes the destination list and position verbatim. No bounds
// validation and no renumbering of the source list.
func (s *Storage) MoveCard(cardId domain.CardId, newListId domain.ListId, newPosition int) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec("UPDATE cards SET list_id = $1, position = $2 WHERE id = $3", newListId, newPosition, cardId)
		if err != nil {
			return fmt.Errorf("failed to move card: %w", err)
		}
		return nil
	})
}

// UpdateCard applies a partial update, writing only the provided fields.
// An empty update is a no-op and never reaches the database.
func (s *Storage) UpdateCard(cardId domain.CardId, upd domain.CardUpdate) error {
	if upd.Empty() {
		return nil
	}

	set := make([]string, 0, 3)
	args := make([]any, 0, 4)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Content != nil {
		add("content", *upd.Content)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.ClearDueDate {
		set = append(set, "due_date = NULL")
	} else if upd.DueDate != nil {
		add("due_date", *upd.DueDate)
	}

	args = append(args, cardId)
	query := fmt.Sprintf("UPDATE cards SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(query, args...)
		if err != nil {
			return fmt.Errorf("failed to update card: %w", err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return &internal_errors.ErrorWithStatusCode{Message: "Card not found", StatusCode: http.StatusNotFound}
		}
		return nil
	})
}
