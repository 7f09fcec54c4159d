package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/mkosinov/taskboard/internal/domain"
	internal_errors "github.com/mkosinov/taskboard/internal/errors"
)

// CreateList appends a list to the board: position = current list count,
// computed and inserted in one statement so concurrent creates can't read
// a stale count outside the insert itself.
func (s *Storage) CreateList(boardId domain.BoardId, name string) (domain.List, error) {
	var l domain.List
	err := s.db.QueryRow(`
		INSERT INTO lists(board_id, name, position)
		SELECT $1, $2, COUNT(*) FROM lists WHERE board_id = $1
		RETURNING id, board_id, name, position`, boardId, name).
		Scan(&l.Id, &l.BoardId, &l.Name, &l.Position)
	if err != nil {
		return domain.List{}, fmt.Errorf("failed to insert list: %w", err)
	}
	l.Cards = []domain.Card{}
	return l, nil
}

// ListBoard resolves a list to its owning board. 404 when the list is absent.
func (s *Storage) ListBoard(listId domain.ListId) (domain.BoardId, error) {
	var boardId domain.BoardId
	err := s.db.QueryRow("SELECT board_id FROM lists WHERE id = $1", listId).Scan(&boardId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, &internal_errors.ErrorWithStatusCode{Message: "List not found", StatusCode: http.StatusNotFound}
		}
		return 0, fmt.Errorf("failed to query list: %w", err)
	}
	return boardId, nil
}

// DeleteList removes the list; its cards go with it via ON DELETE CASCADE.
// Surviving lists keep their positions, gaps are tolerated.
func (s *Storage) DeleteList(listId domain.ListId) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM lists WHERE id = $1", listId)
		if err != nil {
			return fmt.Errorf("failed to delete list: %w", err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return &internal_errors.ErrorWithStatusCode{Message: "List not found", StatusCode: http.StatusNotFound}
		}
		return nil
	})
}

// ReorderLists assigns position = index for each id, all within one
// transaction. Ids not belonging to the board are ignored.
func (s *Storage) ReorderLists(boardId domain.BoardId, orderedListIds []domain.ListId) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare("UPDATE lists SET position = $1 WHERE id = $2 AND board_id = $3")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, id := range orderedListIds {
			if _, err := stmt.Exec(i, id, boardId); err != nil {
				return fmt.Errorf("failed to reposition list %d: %w", id, err)
			}
		}
		return nil
	})
}
