package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrUserNotFound         = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists   = errors.New("o email já está cadastrado")
	ErrProfileAlreadyExists = errors.New("o perfil já existe para este usuário")
	ErrLinkAlreadyExists    = errors.New("já existe um vínculo pendente ou ativo entre cliente e nutricionista")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("não autorizado")
	ErrForbidden            = errors.New("acesso negado")
	ErrConflict             = errors.New("conflito com o estado atual")
)

// DomainError indica violação de invariante estrutural na construção de uma
// entidade ou value object (faixa, campo obrigatório, formato). Uma entidade
// nunca existe em estado inválido: o erro é levantado na própria fábrica.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// NewDomainError cria um DomainError com mensagem formatada.
func NewDomainError(format string, args ...any) *DomainError {
	return &DomainError{Message: fmt.Sprintf(format, args...)}
}

// BusinessRuleError indica que o estado atual proíbe a transição solicitada
// (aceitar vínculo não pendente, exceder o teto de clientes, editar refeição
// fora da janela). Carrega a regra violada em linguagem humana.
type BusinessRuleError struct {
	Rule string
}

func (e *BusinessRuleError) Error() string { return e.Rule }

// NewBusinessRuleError cria um BusinessRuleError com mensagem formatada.
func NewBusinessRuleError(format string, args ...any) *BusinessRuleError {
	return &BusinessRuleError{Rule: fmt.Sprintf(format, args...)}
}

// IsDomainError informa se err é (ou envolve) um DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// IsBusinessRuleError informa se err é (ou envolve) um BusinessRuleError.
func IsBusinessRuleError(err error) bool {
	var be *BusinessRuleError
	return errors.As(err, &be)
}
