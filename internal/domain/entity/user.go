package entity

import "time"

// Papéis de usuário do back-office.
const RoleAdmin = "admin"

// User representa um usuário do painel administrativo.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
}
