package domain

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	APIKey   string `json:"-"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type CreateUserResponse struct {
	User   CreateUserRequest `json:"user"`
	APIKey string            `json:"api_key"`
}

type ReplenishRequest struct {
	Target int `json:"target"`
}

type ReplenishResponse struct {
	Added     int `json:"added"`
	Available int `json:"available"`
}
