package pg

import (
	"fmt"

	"github.com/mkosinov/taskboard/internal/domain"
)

// SaveComment inserts the comment and returns it joined with the author's
// email, the shape the client renders directly.
func (s *Storage) SaveComment(cardId domain.CardId, userId domain.UserId, text string) (domain.Comment, error) {
	var c domain.Comment
	err := s.db.QueryRow(`
		WITH inserted AS (
			INSERT INTO comments(card_id, user_id, text) VALUES($1, $2, $3)
			RETURNING id, card_id, user_id, text, created_at
		)
		SELECT i.id, i.card_id, i.user_id, u.email, i.text, i.created_at
		FROM inserted i
		JOIN users u ON i.user_id = u.id`, cardId, userId, text).
		Scan(&c.Id, &c.CardId, &c.UserId, &c.AuthorEmail, &c.Text, &c.CreatedAt)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return c, nil
}

// Comments returns a card's comments joined with author emails, oldest first.
func (s *Storage) Comments(cardId domain.CardId) ([]domain.Comment, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.card_id, c.user_id, u.email, c.text, c.created_at
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.card_id = $1
		ORDER BY c.created_at ASC, c.id ASC`, cardId)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.Id, &c.CardId, &c.UserId, &c.AuthorEmail, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
