package entity

import (
	"time"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/nutrition"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/valueobject"
)

// Faixas aceitas pelo perfil de cliente.
const (
	minHeightCm     = 100.0
	maxHeightCm     = 250.0
	minWeightKg     = 30.0
	maxWeightKg     = 300.0
	minDailyKcal    = 800
	maxDailyKcal    = 5000
	minClientAge    = 13
	maxClientAge    = 120
)

// ClientProfile perfil nutricional do cliente (1:1 com User). Imutável:
// edições e overrides de meta retornam nova instância revalidada.
type ClientProfile struct {
	userID            string
	dateOfBirth       time.Time
	gender            nutrition.Gender
	heightCm          float64
	weightKg          float64
	goal              nutrition.Goal
	activityLevel     nutrition.ActivityLevel
	dailyCaloriesGoal int
	dailyMacrosGoal   valueobject.Macros
	isGoalManuallySet bool
	createdAt         time.Time
	updatedAt         time.Time
}

// ClientProfileParams campos de construção do perfil.
type ClientProfileParams struct {
	UserID            string
	DateOfBirth       time.Time
	Gender            nutrition.Gender
	HeightCm          float64
	WeightKg          float64
	Goal              nutrition.Goal
	ActivityLevel     nutrition.ActivityLevel
	DailyCaloriesGoal int
	DailyMacrosGoal   valueobject.Macros
	IsGoalManuallySet bool
}

// NewClientProfile cria o perfil no onboarding. As faixas valem em toda
// construção, inclusive após qualquer mutação.
func NewClientProfile(p ClientProfileParams, now time.Time) (*ClientProfile, error) {
	cp := fromParams(p, now, now)
	if err := cp.validate(now); err != nil {
		return nil, err
	}
	return cp, nil
}

// ReconstituteClientProfile reidrata o perfil da persistência, revalidando
// os invariantes com os timestamps originais.
func ReconstituteClientProfile(p ClientProfileParams, createdAt, updatedAt time.Time, now time.Time) (*ClientProfile, error) {
	cp := fromParams(p, createdAt, updatedAt)
	if err := cp.validate(now); err != nil {
		return nil, err
	}
	return cp, nil
}

func fromParams(p ClientProfileParams, createdAt, updatedAt time.Time) *ClientProfile {
	return &ClientProfile{
		userID:            p.UserID,
		dateOfBirth:       p.DateOfBirth,
		gender:            p.Gender,
		heightCm:          p.HeightCm,
		weightKg:          p.WeightKg,
		goal:              p.Goal,
		activityLevel:     p.ActivityLevel,
		dailyCaloriesGoal: p.DailyCaloriesGoal,
		dailyMacrosGoal:   p.DailyMacrosGoal,
		isGoalManuallySet: p.IsGoalManuallySet,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (c *ClientProfile) validate(now time.Time) error {
	if c.userID == "" {
		return domain.NewDomainError("userId é obrigatório")
	}
	if c.dateOfBirth.IsZero() {
		return domain.NewDomainError("data de nascimento é obrigatória")
	}
	age := nutrition.AgeAt(c.dateOfBirth, now)
	if age < minClientAge || age > maxClientAge {
		return domain.NewDomainError("idade deve estar entre %d e %d anos, calculada %d", minClientAge, maxClientAge, age)
	}
	if !c.gender.IsValid() {
		return domain.NewDomainError("sexo inválido: %s", c.gender)
	}
	if c.heightCm < minHeightCm || c.heightCm > maxHeightCm {
		return domain.NewDomainError("altura deve estar entre %.0f e %.0f cm", minHeightCm, maxHeightCm)
	}
	if c.weightKg < minWeightKg || c.weightKg > maxWeightKg {
		return domain.NewDomainError("peso deve estar entre %.0f e %.0f kg", minWeightKg, maxWeightKg)
	}
	if !c.goal.IsValid() {
		return domain.NewDomainError("objetivo inválido: %s", c.goal)
	}
	if !c.activityLevel.IsValid() {
		return domain.NewDomainError("nível de atividade inválido: %s", c.activityLevel)
	}
	if c.dailyCaloriesGoal < minDailyKcal || c.dailyCaloriesGoal > maxDailyKcal {
		return domain.NewDomainError("meta calórica deve estar entre %d e %d kcal", minDailyKcal, maxDailyKcal)
	}
	return nil
}

// WithBody retorna uma cópia com os dados corporais substituídos. As metas
// não são tocadas aqui: o orquestrador recalcula (ou preserva) em seguida.
func (c *ClientProfile) WithBody(dateOfBirth time.Time, gender nutrition.Gender, heightCm, weightKg float64, goal nutrition.Goal, level nutrition.ActivityLevel, now time.Time) (*ClientProfile, error) {
	clone := *c
	clone.dateOfBirth = dateOfBirth
	clone.gender = gender
	clone.heightCm = heightCm
	clone.weightKg = weightKg
	clone.goal = goal
	clone.activityLevel = level
	clone.updatedAt = now
	if err := clone.validate(now); err != nil {
		return nil, err
	}
	return &clone, nil
}

// WithCalculatedGoals aplica metas vindas do motor de cálculo e limpa a
// marca de override manual.
func (c *ClientProfile) WithCalculatedGoals(dailyCalories int, macros valueobject.Macros, now time.Time) (*ClientProfile, error) {
	clone := *c
	clone.dailyCaloriesGoal = dailyCalories
	clone.dailyMacrosGoal = macros
	clone.isGoalManuallySet = false
	clone.updatedAt = now
	if err := clone.validate(now); err != nil {
		return nil, err
	}
	return &clone, nil
}

// WithManualGoals aplica metas definidas diretamente pelo cliente e marca
// o override manual.
func (c *ClientProfile) WithManualGoals(dailyCalories int, macros valueobject.Macros, now time.Time) (*ClientProfile, error) {
	clone := *c
	clone.dailyCaloriesGoal = dailyCalories
	clone.dailyMacrosGoal = macros
	clone.isGoalManuallySet = true
	clone.updatedAt = now
	if err := clone.validate(now); err != nil {
		return nil, err
	}
	return &clone, nil
}

// Age idade em anos completos na data informada.
func (c *ClientProfile) Age(now time.Time) int {
	return nutrition.AgeAt(c.dateOfBirth, now)
}

// BMI índice de massa corporal derivado de peso e altura correntes.
func (c *ClientProfile) BMI() float64 {
	return nutrition.BMI(c.weightKg, c.heightCm)
}

func (c *ClientProfile) UserID() string                          { return c.userID }
func (c *ClientProfile) DateOfBirth() time.Time                  { return c.dateOfBirth }
func (c *ClientProfile) Gender() nutrition.Gender                { return c.gender }
func (c *ClientProfile) HeightCm() float64                       { return c.heightCm }
func (c *ClientProfile) WeightKg() float64                       { return c.weightKg }
func (c *ClientProfile) Goal() nutrition.Goal                    { return c.goal }
func (c *ClientProfile) ActivityLevel() nutrition.ActivityLevel  { return c.activityLevel }
func (c *ClientProfile) DailyCaloriesGoal() int                  { return c.dailyCaloriesGoal }
func (c *ClientProfile) DailyMacrosGoal() valueobject.Macros     { return c.dailyMacrosGoal }
func (c *ClientProfile) IsGoalManuallySet() bool                 { return c.isGoalManuallySet }
func (c *ClientProfile) CreatedAt() time.Time                    { return c.createdAt }
func (c *ClientProfile) UpdatedAt() time.Time                    { return c.updatedAt }
