package domain

type User struct {
	Id       UserId `json:"id"`
	Email    Email  `json:"email"`
	PassHash string `json:"-"`
}

type Credentials struct {
	Email    Email
	Password Password
}
