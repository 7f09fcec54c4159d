package domain

type (
	Email    = string
	Password = string

	UserId    = int64
	BoardId   = int64
	ListId    = int64
	CardId    = int64
	CommentId = int64
)

// Membership roles. Every board has at least one owner (its creator).
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)
