package valueobject

import (
	"regexp"
	"strings"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
)

// emailRegex validação "RFC-lite": algo@algo.algo, sem espaços.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const emailMaxLength = 255

// Email value object imutável. Sempre normalizado (trim + minúsculas);
// a igualdade é por valor.
type Email struct {
	value string
}

// NewEmail valida e normaliza o email. Nunca coage silenciosamente:
// qualquer violação retorna DomainError.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Email{}, domain.NewDomainError("email é obrigatório")
	}
	if len(normalized) > emailMaxLength {
		return Email{}, domain.NewDomainError("email deve ter no máximo %d caracteres", emailMaxLength)
	}
	if !emailRegex.MatchString(normalized) {
		return Email{}, domain.NewDomainError("email inválido: %s", normalized)
	}
	return Email{value: normalized}, nil
}

// String devolve o valor normalizado.
func (e Email) String() string { return e.value }

// Equals compara pelos valores normalizados.
func (e Email) Equals(other Email) bool { return e.value == other.value }
