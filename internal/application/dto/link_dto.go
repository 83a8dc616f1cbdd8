package dto

import "time"

// LinkRequestInput solicitação de vínculo do nutricionista para um cliente.
type LinkRequestInput struct {
	ClientID string `json:"client_id" validate:"required,uuid"`
}

// LinkResponse saída do vínculo cliente-nutricionista.
type LinkResponse struct {
	ID             string     `json:"id"`
	ClientID       string     `json:"client_id"`
	NutritionistID string     `json:"nutritionist_id"`
	Status         string     `json:"status"`
	RequestedAt    time.Time  `json:"requested_at"`
	RespondedAt    *time.Time `json:"responded_at,omitempty"`
	EndedAt        *time.Time `json:"ended_at,omitempty"`
}
