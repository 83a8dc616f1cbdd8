package nutrition

// Gender sexo biológico usado nas fórmulas de BMR.
type Gender string

// Valores válidos para Gender.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid informa se o código é reconhecido.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// ActivityLevel nível de atividade física usado no cálculo de TDEE.
type ActivityLevel string

// Valores válidos para ActivityLevel.
const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// ActivityLevelMultiplier multiplicadores de TDEE por nível de atividade.
// Tabela constante de processo, sem ciclo de vida.
var ActivityLevelMultiplier = map[ActivityLevel]float64{
	ActivitySedentary:        1.2,
	ActivityLightlyActive:    1.375,
	ActivityModeratelyActive: 1.55,
	ActivityVeryActive:       1.725,
	ActivityExtremelyActive:  1.9,
}

// IsValid informa se o código é reconhecido.
func (a ActivityLevel) IsValid() bool {
	_, ok := ActivityLevelMultiplier[a]
	return ok
}

// Goal objetivo do cliente, determina o ajuste calórico sobre o TDEE.
type Goal string

// Valores válidos para Goal.
const (
	GoalLoseWeight    Goal = "lose_weight"
	GoalGainMuscle    Goal = "gain_muscle"
	GoalMaintain      Goal = "maintain_weight"
	GoalImproveHealth Goal = "improve_health"
)

// GoalCalorieAdjustment ajuste em kcal sobre o TDEE por objetivo.
var GoalCalorieAdjustment = map[Goal]float64{
	GoalLoseWeight:    -500,
	GoalGainMuscle:    +300,
	GoalMaintain:      0,
	GoalImproveHealth: 0,
}

// IsValid informa se o código é reconhecido.
func (g Goal) IsValid() bool {
	_, ok := GoalCalorieAdjustment[g]
	return ok
}
