package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/valueobject"
)

const (
	mealMaxCalories   = 5000.0
	mealMaxConfidence = 100.0

	// mealEditWindowDays janela de edição após o registro.
	mealEditWindowDays = 7

	millisPerDay = 24 * 60 * 60 * 1000
)

// Meal refeição registrada pelo cliente, confirmada após análise de IA
// (foto, áudio ou texto) ou entrada manual.
type Meal struct {
	id         string
	userID     string
	name       string
	imageURL   string
	audioURL   string
	foods      []string
	calories   float64
	macros     valueobject.Macros
	mealTime   time.Time
	confidence float64
	createdAt  time.Time
	updatedAt  time.Time
}

// MealParams campos de construção da refeição.
type MealParams struct {
	UserID     string
	Name       string
	ImageURL   string
	AudioURL   string
	Foods      []string
	Calories   float64
	Macros     valueobject.Macros
	MealTime   time.Time
	Confidence float64
}

// NewMeal cria a refeição na confirmação.
func NewMeal(p MealParams, now time.Time) (*Meal, error) {
	m := &Meal{
		id:         uuid.New().String(),
		userID:     p.UserID,
		name:       strings.TrimSpace(p.Name),
		imageURL:   strings.TrimSpace(p.ImageURL),
		audioURL:   strings.TrimSpace(p.AudioURL),
		foods:      append([]string(nil), p.Foods...),
		calories:   p.Calories,
		macros:     p.Macros,
		mealTime:   p.MealTime,
		confidence: p.Confidence,
		createdAt:  now,
		updatedAt:  now,
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ReconstituteMeal reidrata a refeição da persistência, revalidando.
func ReconstituteMeal(id string, p MealParams, createdAt, updatedAt time.Time) (*Meal, error) {
	if id == "" {
		return nil, domain.NewDomainError("id da refeição é obrigatório")
	}
	m := &Meal{
		id:         id,
		userID:     p.UserID,
		name:       strings.TrimSpace(p.Name),
		imageURL:   strings.TrimSpace(p.ImageURL),
		audioURL:   strings.TrimSpace(p.AudioURL),
		foods:      append([]string(nil), p.Foods...),
		calories:   p.Calories,
		macros:     p.Macros,
		mealTime:   p.MealTime,
		confidence: p.Confidence,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Meal) validate() error {
	if m.userID == "" {
		return domain.NewDomainError("userId é obrigatório")
	}
	if m.name == "" {
		return domain.NewDomainError("nome da refeição é obrigatório")
	}
	if m.imageURL == "" && m.audioURL == "" {
		return domain.NewDomainError("refeição precisa de origem: imagem ou áudio")
	}
	if m.calories < 0 || m.calories > mealMaxCalories {
		return domain.NewDomainError("calorias devem estar entre 0 e %.0f", mealMaxCalories)
	}
	if m.confidence < 0 || m.confidence > mealMaxConfidence {
		return domain.NewDomainError("confiança deve estar entre 0 e %.0f", mealMaxConfidence)
	}
	if m.mealTime.IsZero() {
		return domain.NewDomainError("horário da refeição é obrigatório")
	}
	return nil
}

// AgeInDays dias completos desde o registro (piso da diferença em
// milissegundos). Recalculado a cada leitura, nunca cacheado.
func (m *Meal) AgeInDays(now time.Time) int {
	diff := now.Sub(m.createdAt).Milliseconds()
	if diff < 0 {
		return 0
	}
	return int(diff / millisPerDay)
}

// CanBeEdited informa se a refeição ainda está na janela de edição de 7 dias.
func (m *Meal) CanBeEdited(now time.Time) bool {
	return m.AgeInDays(now) <= mealEditWindowDays
}

// Update substitui os campos editáveis dentro da janela de edição.
func (m *Meal) Update(name string, foods []string, calories float64, macros valueobject.Macros, mealTime time.Time, now time.Time) (*Meal, error) {
	if !m.CanBeEdited(now) {
		return nil, domain.NewBusinessRuleError("refeição com mais de %d dias não pode ser editada", mealEditWindowDays)
	}
	clone := *m
	clone.name = strings.TrimSpace(name)
	clone.foods = append([]string(nil), foods...)
	clone.calories = calories
	clone.macros = macros
	clone.mealTime = mealTime
	clone.updatedAt = now
	if err := clone.validate(); err != nil {
		return nil, err
	}
	return &clone, nil
}

func (m *Meal) ID() string                  { return m.id }
func (m *Meal) UserID() string              { return m.userID }
func (m *Meal) Name() string                { return m.name }
func (m *Meal) ImageURL() string            { return m.imageURL }
func (m *Meal) AudioURL() string            { return m.audioURL }
func (m *Meal) Calories() float64           { return m.calories }
func (m *Meal) Macros() valueobject.Macros  { return m.macros }
func (m *Meal) MealTime() time.Time         { return m.mealTime }
func (m *Meal) Confidence() float64         { return m.confidence }
func (m *Meal) CreatedAt() time.Time        { return m.createdAt }
func (m *Meal) UpdatedAt() time.Time        { return m.updatedAt }

// Foods devolve cópia defensiva da lista de alimentos.
func (m *Meal) Foods() []string {
	return append([]string(nil), m.foods...)
}
