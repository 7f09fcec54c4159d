package domain

import "time"

type Card struct {
	Id          CardId     `json:"id"`
	ListId      ListId     `json:"list_id"`
	Content     string     `json:"content"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Position    int        `json:"position"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CardDetails is the card modal view: the card plus its comment thread.
type CardDetails struct {
	Card
	Comments []Comment `json:"comments"`
}

// CardUpdate carries a partial update. Nil pointer fields are left
// untouched; ClearDueDate wipes due_date to NULL and wins over DueDate.
// An update with nothing set is skipped entirely.
type CardUpdate struct {
	Content      *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
}

func (u CardUpdate) Empty() bool {
	return u.Content == nil && u.Description == nil && u.DueDate == nil && !u.ClearDueDate
}
