// Package api defines the request/response shapes of the HTTP surface.
// Request DTOs carry validation tags; responses reuse domain types where
// the wire shape matches.
package api

import "github.com/mkosinov/taskboard/internal/domain"

type CredentialsRequest struct {
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required" json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CreateBoardRequest struct {
	Name string `validate:"required" json:"name"`
}

type BoardSummary struct {
	Id   domain.BoardId `json:"id"`
	Name string         `json:"name"`
}

type InviteMemberRequest struct {
	Email string `validate:"required,email" json:"email"`
}

type CreateListRequest struct {
	BoardId domain.BoardId `validate:"required" json:"board_id"`
	Name    string         `validate:"required" json:"name"`
}

type ReorderListsRequest struct {
	BoardId        domain.BoardId  `validate:"required" json:"board_id"`
	OrderedListIds []domain.ListId `validate:"required,min=1" json:"ordered_list_ids"`
}

type CreateCardRequest struct {
	ListId  domain.ListId `validate:"required" json:"list_id"`
	Content string        `validate:"required" json:"content"`
}

type MoveCardRequest struct {
	CardId      domain.CardId `validate:"required" json:"card_id"`
	NewListId   domain.ListId `validate:"required" json:"new_list_id"`
	NewPosition *int          `validate:"required" json:"new_position"`
}

// UpdateCardRequest distinguishes absent fields (nil, leave unchanged)
// from present ones. An empty due_date string clears the deadline.
type UpdateCardRequest struct {
	Content     *string `json:"content"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
}

type AddCommentRequest struct {
	CardId domain.CardId `validate:"required" json:"card_id"`
	Text   string        `validate:"required" json:"text"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}
