package repository

import "github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"

// UserRepository define o porto de persistência para usuários do back-office.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
}
