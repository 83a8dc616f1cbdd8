package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
)

// LinkStatus estado do vínculo cliente-nutricionista.
type LinkStatus string

// Estados válidos do vínculo.
const (
	LinkStatusPending                 LinkStatus = "pending"
	LinkStatusActive                  LinkStatus = "active"
	LinkStatusRejected                LinkStatus = "rejected"
	LinkStatusCancelledByClient       LinkStatus = "cancelled_by_client"
	LinkStatusCancelledByNutritionist LinkStatus = "cancelled_by_nutritionist"
)

// IsValid informa se o código é reconhecido.
func (s LinkStatus) IsValid() bool {
	switch s {
	case LinkStatusPending, LinkStatusActive, LinkStatusRejected,
		LinkStatusCancelledByClient, LinkStatusCancelledByNutritionist:
		return true
	}
	return false
}

// ClientNutritionistLink relação de consentimento que permite ao
// nutricionista ver e gerenciar os dados do cliente.
//
// Máquina de estados:
//
//	pending -> active | rejected | cancelled_by_client
//	active  -> cancelled_by_client | cancelled_by_nutritionist
//
// Qualquer outra transição falha com BusinessRuleError citando o estado de origem.
type ClientNutritionistLink struct {
	id             string
	clientID       string
	nutritionistID string
	status         LinkStatus
	requestedAt    time.Time
	respondedAt    *time.Time
	endedAt        *time.Time
	updatedAt      time.Time
}

// NewLinkRequest cria a solicitação de vínculo, sempre em pending.
func NewLinkRequest(clientID, nutritionistID string, now time.Time) (*ClientNutritionistLink, error) {
	l := &ClientNutritionistLink{
		id:             uuid.New().String(),
		clientID:       clientID,
		nutritionistID: nutritionistID,
		status:         LinkStatusPending,
		requestedAt:    now,
		updatedAt:      now,
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// ReconstituteLink reidrata o vínculo da persistência, revalidando.
func ReconstituteLink(id, clientID, nutritionistID string, status LinkStatus, requestedAt time.Time, respondedAt, endedAt *time.Time, updatedAt time.Time) (*ClientNutritionistLink, error) {
	if id == "" {
		return nil, domain.NewDomainError("id do vínculo é obrigatório")
	}
	if !status.IsValid() {
		return nil, domain.NewDomainError("status de vínculo inválido: %s", status)
	}
	l := &ClientNutritionistLink{
		id:             id,
		clientID:       clientID,
		nutritionistID: nutritionistID,
		status:         status,
		requestedAt:    requestedAt,
		respondedAt:    respondedAt,
		endedAt:        endedAt,
		updatedAt:      updatedAt,
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *ClientNutritionistLink) validate() error {
	if l.clientID == "" {
		return domain.NewDomainError("clientId é obrigatório")
	}
	if l.nutritionistID == "" {
		return domain.NewDomainError("nutritionistId é obrigatório")
	}
	if l.clientID == l.nutritionistID {
		return domain.NewDomainError("cliente e nutricionista não podem ser o mesmo usuário")
	}
	return nil
}

// Accept aceita a solicitação pendente. O incremento do contador de clientes
// do nutricionista é responsabilidade do orquestrador, não desta entidade.
func (l *ClientNutritionistLink) Accept(now time.Time) (*ClientNutritionistLink, error) {
	if l.status != LinkStatusPending {
		return nil, domain.NewBusinessRuleError("não é possível aceitar vínculo no estado %s", l.status)
	}
	clone := *l
	clone.status = LinkStatusActive
	clone.respondedAt = &now
	clone.updatedAt = now
	return &clone, nil
}

// Reject recusa a solicitação pendente.
func (l *ClientNutritionistLink) Reject(now time.Time) (*ClientNutritionistLink, error) {
	if l.status != LinkStatusPending {
		return nil, domain.NewBusinessRuleError("não é possível recusar vínculo no estado %s", l.status)
	}
	clone := *l
	clone.status = LinkStatusRejected
	clone.respondedAt = &now
	clone.endedAt = &now
	clone.updatedAt = now
	return &clone, nil
}

// CancelByClient encerra o vínculo pelo cliente. Vale tanto para vínculo
// ativo quanto para solicitação pendente ainda sem resposta.
func (l *ClientNutritionistLink) CancelByClient(now time.Time) (*ClientNutritionistLink, error) {
	if l.status != LinkStatusPending && l.status != LinkStatusActive {
		return nil, domain.NewBusinessRuleError("não é possível cancelar vínculo no estado %s", l.status)
	}
	clone := *l
	clone.status = LinkStatusCancelledByClient
	clone.endedAt = &now
	clone.updatedAt = now
	return &clone, nil
}

// CancelByNutritionist encerra o vínculo ativo pelo nutricionista.
func (l *ClientNutritionistLink) CancelByNutritionist(now time.Time) (*ClientNutritionistLink, error) {
	if l.status != LinkStatusActive {
		return nil, domain.NewBusinessRuleError("não é possível cancelar vínculo no estado %s", l.status)
	}
	clone := *l
	clone.status = LinkStatusCancelledByNutritionist
	clone.endedAt = &now
	clone.updatedAt = now
	return &clone, nil
}

// IsActive informa se o vínculo está ativo.
func (l *ClientNutritionistLink) IsActive() bool { return l.status == LinkStatusActive }

// IsPending informa se o vínculo aguarda resposta.
func (l *ClientNutritionistLink) IsPending() bool { return l.status == LinkStatusPending }

func (l *ClientNutritionistLink) ID() string             { return l.id }
func (l *ClientNutritionistLink) ClientID() string       { return l.clientID }
func (l *ClientNutritionistLink) NutritionistID() string { return l.nutritionistID }
func (l *ClientNutritionistLink) Status() LinkStatus     { return l.status }
func (l *ClientNutritionistLink) RequestedAt() time.Time { return l.requestedAt }
func (l *ClientNutritionistLink) RespondedAt() *time.Time { return l.respondedAt }
func (l *ClientNutritionistLink) EndedAt() *time.Time     { return l.endedAt }
func (l *ClientNutritionistLink) UpdatedAt() time.Time    { return l.updatedAt }
