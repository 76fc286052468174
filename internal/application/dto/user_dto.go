package dto

import "time"

// RegisterRequest kullanıcı kaydı girdisi. Role: admin | depocu | izleyici.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"`
}

// LoginRequest oturum açma girdisi.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse kullanıcı çıktısı. Parola hash'i asla dönmez.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token ve kullanıcı bilgisi.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
