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

// CreateBoard inserts the board and its owner membership row atomically.
// Both succeed or both roll back.
func (s *Storage) CreateBoard(name string, creatorId domain.UserId) (domain.Board, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var board domain.Board
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRow("INSERT INTO boards(name, creator_id) VALUES($1, $2) RETURNING id, name, creator_id, created_at",
			name, creatorId).Scan(&board.Id, &board.Name, &board.CreatorId, &board.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert board: %w", err)
		}
		_, err = tx.Exec("INSERT INTO board_members(board_id, user_id, role) VALUES($1, $2, $3)",
			board.Id, creatorId, domain.RoleOwner)
		if err != nil {
			return fmt.Errorf("failed to insert owner membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

// BoardsForUser returns id+name of every board the user is a member of.
func (s *Storage) BoardsForUser(userId domain.UserId) ([]domain.Board, error) {
	rows, err := s.db.Query(`
		SELECT b.id, b.name
		FROM boards b
		JOIN board_members bm ON b.id = bm.board_id
		WHERE bm.user_id = $1
		ORDER BY b.id`, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		var b domain.Board
		if err := rows.Scan(&b.Id, &b.Name); err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

// Board returns board metadata without lists. 404 when absent.
func (s *Storage) Board(boardId domain.BoardId) (domain.Board, error) {
	var b domain.Board
	err := s.db.QueryRow("SELECT id, name, creator_id, created_at FROM boards WHERE id = $1", boardId).
		Scan(&b.Id, &b.Name, &b.CreatorId, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Board{}, &internal_errors.ErrorWithStatusCode{Message: "Board not found", StatusCode: http.StatusNotFound}
		}
		return domain.Board{}, fmt.Errorf("failed to query board: %w", err)
	}
	return b, nil
}

// BoardFull returns the full snapshot: lists ordered by position, each
// populated with its cards ordered by position. Lists and cards come back
// in two queries joined in memory instead of the original's query per list.
func (s *Storage) BoardFull(boardId domain.BoardId) (domain.Board, error) {
	board, err := s.Board(boardId)
	if err != nil {
		return domain.Board{}, err
	}

	rows, err := s.db.Query("SELECT id, board_id, name, position FROM lists WHERE board_id = $1 ORDER BY position ASC, id ASC", boardId)
	if err != nil {
		return domain.Board{}, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	lists := []domain.List{}
	listIdx := make(map[domain.ListId]int)
	for rows.Next() {
		var l domain.List
		if err := rows.Scan(&l.Id, &l.BoardId, &l.Name, &l.Position); err != nil {
			return domain.Board{}, err
		}
		l.Cards = []domain.Card{}
		listIdx[l.Id] = len(lists)
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return domain.Board{}, err
	}

	cardRows, err := s.db.Query(`
		SELECT c.id, c.list_id, c.content, c.description, c.due_date, c.position, c.created_at
		FROM cards c
		JOIN lists l ON c.list_id = l.id
		WHERE l.board_id = $1
		ORDER BY c.position ASC, c.id ASC`, boardId)
	if err != nil {
		return domain.Board{}, fmt.Errorf("failed to query cards: %w", err)
	}
	defer cardRows.Close()

	for cardRows.Next() {
		var c domain.Card
		if err := cardRows.Scan(&c.Id, &c.ListId, &c.Content, &c.Description, &c.DueDate, &c.Position, &c.CreatedAt); err != nil {
			return domain.Board{}, err
		}
		if i, ok := listIdx[c.ListId]; ok {
			lists[i].Cards = append(lists[i].Cards, c)
		}
	}
	if err := cardRows.Err(); err != nil {
		return domain.Board{}, err
	}

	board.Lists = lists
	return board, nil
}

// IsMember reports whether a membership row exists for the pair.
func (s *Storage) IsMember(userId domain.UserId, boardId domain.BoardId) (bool, error) {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM board_members WHERE user_id = $1 AND board_id = $2)", userId, boardId).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query membership: %w", err)
	}
	return exists, nil
}

// AddMember inserts a membership row. A duplicate pair surfaces as 409.
func (s *Storage) AddMember(boardId domain.BoardId, userId domain.UserId, role string) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO board_members(board_id, user_id, role) VALUES($1, $2, $3)", boardId, userId, role)
		if err != nil {
			if isUniqueViolation(err) {
				return &internal_errors.ErrorWithStatusCode{Message: "User is already a member of this board", StatusCode: http.StatusConflict}
			}
			return fmt.Errorf("failed to insert membership: %w", err)
		}
		return nil
	})
}
