package entity

import "time"

// Kullanıcı rolleri.
const (
	RoleAdmin    = "admin"
	RoleDepocu   = "depocu"
	RoleIzleyici = "izleyici"
)

// User sisteme giriş yapan kullanıcı.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt
	Role         string
	CreatedAt    time.Time
}
