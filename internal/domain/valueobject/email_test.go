package valueobject_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/valueobject"
)

func TestNewEmail_NormalizaMinusculasETrim(t *testing.T) {
	email, err := valueobject.NewEmail("  Maria.Silva@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "maria.silva@example.com", email.String())
}

func TestNewEmail_Invalidos(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"vazio", ""},
		{"somente espaços", "   "},
		{"sem arroba", "maria.example.com"},
		{"sem domínio", "maria@"},
		{"sem tld", "maria@example"},
		{"espaço no meio", "maria silva@example.com"},
		{"acima de 255", strings.Repeat("a", 250) + "@example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := valueobject.NewEmail(tc.raw)
			require.Error(t, err)
			assert.True(t, domain.IsDomainError(err), "violação estrutural deve ser DomainError")
		})
	}
}

func TestEmail_EqualsPorValorNormalizado(t *testing.T) {
	a, err := valueobject.NewEmail("MARIA@example.com")
	require.NoError(t, err)
	b, err := valueobject.NewEmail("maria@EXAMPLE.com")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
}
