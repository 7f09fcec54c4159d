package domain

// Position is a zero-based ordering key, unique among the board's lists.
// New lists are appended (position = current list count); reorders assign
// absolute indexes. Deletions leave gaps, ordering relies on relative
// values only.
type List struct {
	Id       ListId  `json:"id"`
	BoardId  BoardId `json:"board_id"`
	Name     string  `json:"name"`
	Position int     `json:"position"`
	Cards    []Card  `json:"cards"`
}
