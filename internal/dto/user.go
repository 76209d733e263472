package dto

type UserCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserUpdate struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	OldPassword *string `json:"oldPassword"`
	Password    *string `json:"password"`
}

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SessionCreate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
