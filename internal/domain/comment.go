package domain

import "time"

// Comments are immutable once created and returned oldest first; the
// client reverses them for newest-first rendering.
type Comment struct {
	Id          CommentId `json:"id"`
	CardId      CardId    `json:"card_id"`
	UserId      UserId    `json:"user_id"`
	AuthorEmail Email     `json:"email"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}
