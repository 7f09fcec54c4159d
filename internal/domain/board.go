package domain

import "time"

// Board metadata as stored. Lists is populated only by the full board
// snapshot query (GetBoard); list endpoints return it as nil.
type Board struct {
	Id        BoardId   `json:"id"`
	Name      string    `json:"name"`
	CreatorId UserId    `json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
	Lists     []List    `json:"lists,omitempty"`
}

type BoardMember struct {
	BoardId BoardId `json:"board_id"`
	UserId  UserId  `json:"user_id"`
	Role    string  `json:"role"`
}
