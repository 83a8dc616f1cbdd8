package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
)

const (
	planTitleMax       = 200
	planDescriptionMax = 1000
	planMinMeals       = 1
	planMaxMeals       = 10
	planMinDuration    = 1
	planMaxDuration    = 365
)

// PlannedMeal refeição-modelo dentro de um plano (distinta de Meal, que é
// uma refeição registrada): nome, horário, alimentos e porções pareadas.
type PlannedMeal struct {
	Name          string
	ScheduledTime string
	Foods         []string
	Portions      []string
}

func (pm PlannedMeal) validate() error {
	if strings.TrimSpace(pm.Name) == "" {
		return domain.NewDomainError("refeição do plano precisa de nome")
	}
	if len(pm.Foods) < 1 {
		return domain.NewDomainError("refeição do plano precisa de pelo menos um alimento")
	}
	if len(pm.Foods) != len(pm.Portions) {
		return domain.NewDomainError("refeição do plano precisa de uma porção por alimento (%d alimentos, %d porções)", len(pm.Foods), len(pm.Portions))
	}
	return nil
}

// NutritionPlan plano alimentar emitido pelo nutricionista para um cliente
// com vínculo ativo. No máximo um plano ativo por cliente; a troca é
// responsabilidade do orquestrador.
type NutritionPlan struct {
	id                string
	nutritionistID    string
	clientID          string
	title             string
	description       string
	plannedMeals      []PlannedMeal
	generalGuidelines string
	durationDays      *int
	startDate         time.Time
	endDate           *time.Time
	isActive          bool
	createdAt         time.Time
	updatedAt         time.Time
}

// NutritionPlanParams campos de construção do plano.
type NutritionPlanParams struct {
	NutritionistID    string
	ClientID          string
	Title             string
	Description       string
	PlannedMeals      []PlannedMeal
	GeneralGuidelines string
	DurationDays      *int
	StartDate         time.Time
}

// NewNutritionPlan cria o plano já ativo. EndDate deriva de StartDate +
// DurationDays quando a duração é informada.
func NewNutritionPlan(p NutritionPlanParams, now time.Time) (*NutritionPlan, error) {
	plan := &NutritionPlan{
		id:                uuid.New().String(),
		nutritionistID:    p.NutritionistID,
		clientID:          p.ClientID,
		title:             strings.TrimSpace(p.Title),
		description:       strings.TrimSpace(p.Description),
		plannedMeals:      clonePlannedMeals(p.PlannedMeals),
		generalGuidelines: strings.TrimSpace(p.GeneralGuidelines),
		durationDays:      p.DurationDays,
		startDate:         p.StartDate,
		isActive:          true,
		createdAt:         now,
		updatedAt:         now,
	}
	if p.DurationDays != nil {
		end := p.StartDate.AddDate(0, 0, *p.DurationDays)
		plan.endDate = &end
	}
	if err := plan.validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// ReconstituteNutritionPlan reidrata o plano da persistência, revalidando.
// EndDate vem do armazenamento, não é rederivado.
func ReconstituteNutritionPlan(id string, p NutritionPlanParams, endDate *time.Time, isActive bool, createdAt, updatedAt time.Time) (*NutritionPlan, error) {
	if id == "" {
		return nil, domain.NewDomainError("id do plano é obrigatório")
	}
	plan := &NutritionPlan{
		id:                id,
		nutritionistID:    p.NutritionistID,
		clientID:          p.ClientID,
		title:             strings.TrimSpace(p.Title),
		description:       strings.TrimSpace(p.Description),
		plannedMeals:      clonePlannedMeals(p.PlannedMeals),
		generalGuidelines: strings.TrimSpace(p.GeneralGuidelines),
		durationDays:      p.DurationDays,
		startDate:         p.StartDate,
		endDate:           endDate,
		isActive:          isActive,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
	if err := plan.validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

func clonePlannedMeals(meals []PlannedMeal) []PlannedMeal {
	out := make([]PlannedMeal, len(meals))
	for i, m := range meals {
		out[i] = PlannedMeal{
			Name:          m.Name,
			ScheduledTime: m.ScheduledTime,
			Foods:         append([]string(nil), m.Foods...),
			Portions:      append([]string(nil), m.Portions...),
		}
	}
	return out
}

func (p *NutritionPlan) validate() error {
	if p.nutritionistID == "" {
		return domain.NewDomainError("nutritionistId é obrigatório")
	}
	if p.clientID == "" {
		return domain.NewDomainError("clientId é obrigatório")
	}
	if p.title == "" || len(p.title) > planTitleMax {
		return domain.NewDomainError("título é obrigatório e deve ter no máximo %d caracteres", planTitleMax)
	}
	if len(p.description) > planDescriptionMax {
		return domain.NewDomainError("descrição deve ter no máximo %d caracteres", planDescriptionMax)
	}
	if len(p.plannedMeals) < planMinMeals || len(p.plannedMeals) > planMaxMeals {
		return domain.NewDomainError("plano deve ter entre %d e %d refeições", planMinMeals, planMaxMeals)
	}
	for _, pm := range p.plannedMeals {
		if err := pm.validate(); err != nil {
			return err
		}
	}
	if p.durationDays != nil && (*p.durationDays < planMinDuration || *p.durationDays > planMaxDuration) {
		return domain.NewDomainError("duração deve estar entre %d e %d dias", planMinDuration, planMaxDuration)
	}
	if p.startDate.IsZero() {
		return domain.NewDomainError("data de início é obrigatória")
	}
	return nil
}

// Deactivate desativa o plano.
func (p *NutritionPlan) Deactivate(now time.Time) (*NutritionPlan, error) {
	if !p.isActive {
		return nil, domain.NewBusinessRuleError("plano já está inativo")
	}
	clone := p.clone()
	clone.isActive = false
	clone.updatedAt = now
	return clone, nil
}

// Activate reativa o plano. A unicidade de plano ativo por cliente é
// garantida pelo orquestrador.
func (p *NutritionPlan) Activate(now time.Time) (*NutritionPlan, error) {
	if p.isActive {
		return nil, domain.NewBusinessRuleError("plano já está ativo")
	}
	clone := p.clone()
	clone.isActive = true
	clone.updatedAt = now
	return clone, nil
}

// DaysRemaining dias completos até o fim do plano (piso), nunca negativo.
// Nil quando o plano não tem duração definida.
func (p *NutritionPlan) DaysRemaining(now time.Time) *int {
	if p.endDate == nil {
		return nil
	}
	diff := p.endDate.Sub(now).Milliseconds()
	remaining := 0
	if diff > 0 {
		remaining = int(diff / millisPerDay)
	}
	return &remaining
}

func (p *NutritionPlan) clone() *NutritionPlan {
	c := *p
	c.plannedMeals = clonePlannedMeals(p.plannedMeals)
	return &c
}

func (p *NutritionPlan) ID() string                { return p.id }
func (p *NutritionPlan) NutritionistID() string    { return p.nutritionistID }
func (p *NutritionPlan) ClientID() string          { return p.clientID }
func (p *NutritionPlan) Title() string             { return p.title }
func (p *NutritionPlan) Description() string       { return p.description }
func (p *NutritionPlan) GeneralGuidelines() string { return p.generalGuidelines }
func (p *NutritionPlan) DurationDays() *int        { return p.durationDays }
func (p *NutritionPlan) StartDate() time.Time      { return p.startDate }
func (p *NutritionPlan) EndDate() *time.Time       { return p.endDate }
func (p *NutritionPlan) IsActive() bool            { return p.isActive }
func (p *NutritionPlan) CreatedAt() time.Time      { return p.createdAt }
func (p *NutritionPlan) UpdatedAt() time.Time      { return p.updatedAt }

// PlannedMeals devolve cópia defensiva das refeições do plano.
func (p *NutritionPlan) PlannedMeals() []PlannedMeal {
	return clonePlannedMeals(p.plannedMeals)
}
