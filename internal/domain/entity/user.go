package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/valueobject"
)

// Role papel do usuário no sistema.
type Role string

// Papéis válidos para User.
const (
	RoleClient       Role = "client"
	RoleNutritionist Role = "nutritionist"
	RoleAdmin        Role = "admin"
)

// IsValid informa se o papel é reconhecido.
func (r Role) IsValid() bool {
	return r == RoleClient || r == RoleNutritionist || r == RoleAdmin
}

const (
	userNameMinLength = 2
	userNameMaxLength = 100
)

// User usuário da plataforma. Imutável: transições retornam nova instância.
type User struct {
	id           string
	email        valueobject.Email
	passwordHash string // hash bcrypt, nunca texto plano no domínio
	name         string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser cria um usuário com identidade nova e timestamps correntes.
func NewUser(email valueobject.Email, passwordHash, name string, role Role, now time.Time) (*User, error) {
	u := &User{
		id:           uuid.New().String(),
		email:        email,
		passwordHash: passwordHash,
		name:         strings.TrimSpace(name),
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// ReconstituteUser reidrata um usuário vindo da persistência, revalidando
// os mesmos invariantes sem gerar identidade nem timestamps novos.
func ReconstituteUser(id string, email valueobject.Email, passwordHash, name string, role Role, createdAt, updatedAt time.Time) (*User, error) {
	if id == "" {
		return nil, domain.NewDomainError("id do usuário é obrigatório")
	}
	u := &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         strings.TrimSpace(name),
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) validate() error {
	if u.email.String() == "" {
		return domain.NewDomainError("email é obrigatório")
	}
	if u.passwordHash == "" {
		return domain.NewDomainError("hash de senha é obrigatório")
	}
	if len(u.name) < userNameMinLength || len(u.name) > userNameMaxLength {
		return domain.NewDomainError("nome deve ter entre %d e %d caracteres", userNameMinLength, userNameMaxLength)
	}
	if !u.role.IsValid() {
		return domain.NewDomainError("papel inválido: %s", u.role)
	}
	return nil
}

// WithPasswordHash retorna uma cópia com o hash de senha substituído.
// Única mudança estrutural permitida depois do cadastro.
func (u *User) WithPasswordHash(hash string, now time.Time) (*User, error) {
	clone := *u
	clone.passwordHash = hash
	clone.updatedAt = now
	if err := clone.validate(); err != nil {
		return nil, err
	}
	return &clone, nil
}

func (u *User) ID() string               { return u.id }
func (u *User) Email() valueobject.Email { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Name() string             { return u.name }
func (u *User) Role() Role               { return u.role }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }
