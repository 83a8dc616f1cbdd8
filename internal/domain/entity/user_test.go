package entity_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/valueobject"
)

var userNow = time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

func mustEmail(t *testing.T, raw string) valueobject.Email {
	t.Helper()
	email, err := valueobject.NewEmail(raw)
	require.NoError(t, err)
	return email
}

func TestNewUser_EcoaCampos(t *testing.T) {
	user, err := entity.NewUser(mustEmail(t, "joao@example.com"), "$2a$10$hash", "João Pedro", entity.RoleClient, userNow)
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID())
	assert.Equal(t, "joao@example.com", user.Email().String())
	assert.Equal(t, "João Pedro", user.Name())
	assert.Equal(t, entity.RoleClient, user.Role())
	assert.Equal(t, userNow, user.CreatedAt())
}

func TestNewUser_Invalidos(t *testing.T) {
	email := mustEmail(t, "joao@example.com")

	_, err := entity.NewUser(email, "$2a$10$hash", "J", entity.RoleClient, userNow)
	assert.True(t, domain.IsDomainError(err), "nome com menos de 2 caracteres")

	_, err = entity.NewUser(email, "$2a$10$hash", strings.Repeat("n", 101), entity.RoleClient, userNow)
	assert.True(t, domain.IsDomainError(err), "nome com mais de 100 caracteres")

	_, err = entity.NewUser(email, "", "João Pedro", entity.RoleClient, userNow)
	assert.True(t, domain.IsDomainError(err), "hash de senha obrigatório")

	_, err = entity.NewUser(email, "$2a$10$hash", "João Pedro", entity.Role("ghost"), userNow)
	assert.True(t, domain.IsDomainError(err), "papel desconhecido")
}

func TestUser_WithPasswordHash(t *testing.T) {
	user, err := entity.NewUser(mustEmail(t, "joao@example.com"), "$2a$10$old", "João Pedro", entity.RoleClient, userNow)
	require.NoError(t, err)

	later := userNow.Add(time.Hour)
	changed, err := user.WithPasswordHash("$2a$10$new", later)
	require.NoError(t, err)

	assert.Equal(t, "$2a$10$new", changed.PasswordHash())
	assert.Equal(t, later, changed.UpdatedAt())
	assert.Equal(t, "$2a$10$old", user.PasswordHash(), "original permanece imutável")
}

func TestReconstituteUser_RoundTrip(t *testing.T) {
	original, err := entity.NewUser(mustEmail(t, "joao@example.com"), "$2a$10$hash", "João Pedro", entity.RoleNutritionist, userNow)
	require.NoError(t, err)

	rebuilt, err := entity.ReconstituteUser(original.ID(), original.Email(), original.PasswordHash(),
		original.Name(), original.Role(), original.CreatedAt(), original.UpdatedAt())
	require.NoError(t, err)

	assert.Equal(t, original.ID(), rebuilt.ID())
	assert.Equal(t, original.Email().String(), rebuilt.Email().String())
	assert.Equal(t, original.Role(), rebuilt.Role())

	_, err = entity.ReconstituteUser("", original.Email(), original.PasswordHash(),
		original.Name(), original.Role(), original.CreatedAt(), original.UpdatedAt())
	assert.Error(t, err, "reidratação exige identidade")
}
