package repository

import "github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"

// UserRepository porta de persistência para User (DIP).
// Implementações retornam (nil, nil) quando o registro não existe.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
