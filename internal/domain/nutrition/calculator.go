// Package nutrition implementa o motor de cálculo nutricional (serviço de
// domínio puro): idade, BMR, TDEE, meta calórica, divisão de macros e IMC.
//
// A fórmula de BMR é Harris-Benedict revisada, aplicada de forma consistente
// em onboarding e atualização de perfil. Mifflin-St Jeor fica como ponto de
// extensão futuro (seria um segundo Formula aqui), não implementada.
package nutrition

import (
	"math"
	"time"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/valueobject"
)

// Divisão fixa de macros sobre a meta calórica.
const (
	carbsPercentage   = 40.0
	proteinPercentage = 30.0
	fatPercentage     = 30.0
)

// AgeAt idade em anos completos na data ref, ciente de calendário:
// decrementa um ano se mês/dia de ref ainda não alcançou o aniversário.
func AgeAt(dateOfBirth, ref time.Time) int {
	age := ref.Year() - dateOfBirth.Year()
	if ref.Month() < dateOfBirth.Month() ||
		(ref.Month() == dateOfBirth.Month() && ref.Day() < dateOfBirth.Day()) {
		age--
	}
	return age
}

// BMR taxa metabólica basal (Harris-Benedict revisada), em kcal/dia.
//
//	homem:  88.362 + 13.397*peso + 4.799*altura - 5.677*idade
//	mulher: 447.593 + 9.247*peso + 3.098*altura - 4.330*idade
func BMR(gender Gender, weightKg, heightCm float64, age int) float64 {
	if gender == GenderMale {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
}

// TDEE gasto energético total diário: BMR x multiplicador de atividade.
func TDEE(bmr float64, level ActivityLevel) (float64, error) {
	mult, ok := ActivityLevelMultiplier[level]
	if !ok {
		return 0, domain.NewDomainError("nível de atividade inválido: %s", level)
	}
	return bmr * mult, nil
}

// CalorieGoal meta calórica diária: round(TDEE + ajuste do objetivo).
func CalorieGoal(tdee float64, goal Goal) (int, error) {
	adj, ok := GoalCalorieAdjustment[goal]
	if !ok {
		return 0, domain.NewDomainError("objetivo inválido: %s", goal)
	}
	return int(math.Round(tdee + adj)), nil
}

// MacroSplit converte a meta calórica na divisão fixa 40/30/30.
func MacroSplit(calorieGoal int) (valueobject.Macros, error) {
	return valueobject.MacrosFromCaloriesAndPercentages(
		float64(calorieGoal), carbsPercentage, proteinPercentage, fatPercentage,
	)
}

// BMI índice de massa corporal (peso / altura²), arredondado a uma casa
// decimal para exibição.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

// GoalInput entrada do cálculo completo de metas.
type GoalInput struct {
	DateOfBirth   time.Time
	Gender        Gender
	HeightCm      float64
	WeightKg      float64
	ActivityLevel ActivityLevel
	Goal          Goal
}

// GoalResult resultado do cálculo completo de metas.
type GoalResult struct {
	Age           int
	BMR           float64
	TDEE          float64
	DailyCalories int
	DailyMacros   valueobject.Macros
	BMI           float64
}

// CalculateGoals executa o pipeline completo: idade -> BMR -> TDEE -> meta
// calórica -> macros -> IMC. Invocado no onboarding e na atualização de perfil.
func CalculateGoals(in GoalInput, now time.Time) (*GoalResult, error) {
	if !in.Gender.IsValid() {
		return nil, domain.NewDomainError("sexo inválido: %s", in.Gender)
	}
	age := AgeAt(in.DateOfBirth, now)
	bmr := BMR(in.Gender, in.WeightKg, in.HeightCm, age)
	tdee, err := TDEE(bmr, in.ActivityLevel)
	if err != nil {
		return nil, err
	}
	calories, err := CalorieGoal(tdee, in.Goal)
	if err != nil {
		return nil, err
	}
	macros, err := MacroSplit(calories)
	if err != nil {
		return nil, err
	}
	return &GoalResult{
		Age:           age,
		BMR:           bmr,
		TDEE:          tdee,
		DailyCalories: calories,
		DailyMacros:   macros,
		BMI:           BMI(in.WeightKg, in.HeightCm),
	}, nil
}
