package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
)

// DrinkType tipo de bebida registrada.
type DrinkType string

// Tipos de bebida válidos.
const (
	DrinkWater  DrinkType = "water"
	DrinkTea    DrinkType = "tea"
	DrinkCoffee DrinkType = "coffee"
	DrinkJuice  DrinkType = "juice"
	DrinkOther  DrinkType = "other"
)

// drinkIcons ícone de exibição por tipo de bebida.
var drinkIcons = map[DrinkType]string{
	DrinkWater:  "💧",
	DrinkTea:    "🍵",
	DrinkCoffee: "☕",
	DrinkJuice:  "🧃",
	DrinkOther:  "🥤",
}

// IsValid informa se o tipo é reconhecido.
func (d DrinkType) IsValid() bool {
	_, ok := drinkIcons[d]
	return ok
}

// Icon ícone de exibição; função pura do tipo de bebida.
func (d DrinkType) Icon() string { return drinkIcons[d] }

const maxHydrationVolumeMl = 5000

// Hydration registro de uma bebida consumida.
type Hydration struct {
	id        string
	userID    string
	volumeMl  int
	drinkType DrinkType
	timestamp time.Time
	createdAt time.Time
}

// NewHydration cria o registro de hidratação.
func NewHydration(userID string, volumeMl int, drinkType DrinkType, timestamp, now time.Time) (*Hydration, error) {
	h := &Hydration{
		id:        uuid.New().String(),
		userID:    userID,
		volumeMl:  volumeMl,
		drinkType: drinkType,
		timestamp: timestamp,
		createdAt: now,
	}
	if err := h.validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// ReconstituteHydration reidrata o registro da persistência, revalidando.
func ReconstituteHydration(id, userID string, volumeMl int, drinkType DrinkType, timestamp, createdAt time.Time) (*Hydration, error) {
	if id == "" {
		return nil, domain.NewDomainError("id do registro de hidratação é obrigatório")
	}
	h := &Hydration{
		id:        id,
		userID:    userID,
		volumeMl:  volumeMl,
		drinkType: drinkType,
		timestamp: timestamp,
		createdAt: createdAt,
	}
	if err := h.validate(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Hydration) validate() error {
	if h.userID == "" {
		return domain.NewDomainError("userId é obrigatório")
	}
	if h.volumeMl <= 0 || h.volumeMl > maxHydrationVolumeMl {
		return domain.NewDomainError("volume deve ser maior que 0 e no máximo %d ml", maxHydrationVolumeMl)
	}
	if !h.drinkType.IsValid() {
		return domain.NewDomainError("tipo de bebida inválido: %s", h.drinkType)
	}
	if h.timestamp.IsZero() {
		return domain.NewDomainError("horário do consumo é obrigatório")
	}
	return nil
}

// Icon ícone de exibição do registro.
func (h *Hydration) Icon() string { return h.drinkType.Icon() }

func (h *Hydration) ID() string           { return h.id }
func (h *Hydration) UserID() string       { return h.userID }
func (h *Hydration) VolumeMl() int        { return h.volumeMl }
func (h *Hydration) DrinkType() DrinkType { return h.drinkType }
func (h *Hydration) Timestamp() time.Time { return h.timestamp }
func (h *Hydration) CreatedAt() time.Time { return h.createdAt }
