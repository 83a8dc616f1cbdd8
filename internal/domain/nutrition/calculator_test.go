package nutrition_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain/nutrition"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeAt_CienteDeCalendario(t *testing.T) {
	dob := date(1990, time.June, 15)

	assert.Equal(t, 29, nutrition.AgeAt(dob, date(2020, time.June, 14)), "véspera do aniversário ainda conta o ano anterior")
	assert.Equal(t, 30, nutrition.AgeAt(dob, date(2020, time.June, 15)), "no dia do aniversário o ano vira")
	assert.Equal(t, 30, nutrition.AgeAt(dob, date(2020, time.July, 1)))
	assert.Equal(t, 29, nutrition.AgeAt(dob, date(2020, time.May, 20)), "mês anterior ao aniversário")
}

func TestBMR_HarrisBenedict(t *testing.T) {
	// Homem: 88.362 + 13.397*80 + 4.799*180 - 5.677*30 = 1853.632
	assert.InDelta(t, 1853.632, nutrition.BMR(nutrition.GenderMale, 80, 180, 30), 0.001)
	// Mulher: 447.593 + 9.247*60 + 3.098*165 - 4.330*25 = 1405.333
	assert.InDelta(t, 1405.333, nutrition.BMR(nutrition.GenderFemale, 60, 165, 25), 0.001)
}

func TestTDEE_MultiplicadoresPorNivel(t *testing.T) {
	cases := []struct {
		level nutrition.ActivityLevel
		mult  float64
	}{
		{nutrition.ActivitySedentary, 1.2},
		{nutrition.ActivityLightlyActive, 1.375},
		{nutrition.ActivityModeratelyActive, 1.55},
		{nutrition.ActivityVeryActive, 1.725},
		{nutrition.ActivityExtremelyActive, 1.9},
	}
	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			tdee, err := nutrition.TDEE(1000, tc.level)
			require.NoError(t, err)
			assert.InDelta(t, 1000*tc.mult, tdee, 0.001)
		})
	}
}

func TestTDEE_NivelInvalido(t *testing.T) {
	_, err := nutrition.TDEE(1000, nutrition.ActivityLevel("couch"))
	assert.Error(t, err)
}

func TestCalorieGoal_AjustePorObjetivo(t *testing.T) {
	cases := []struct {
		goal nutrition.Goal
		want int
	}{
		{nutrition.GoalLoseWeight, 1500},
		{nutrition.GoalGainMuscle, 2300},
		{nutrition.GoalMaintain, 2000},
		{nutrition.GoalImproveHealth, 2000},
	}
	for _, tc := range cases {
		t.Run(string(tc.goal), func(t *testing.T) {
			got, err := nutrition.CalorieGoal(2000, tc.goal)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalorieGoal_Arredonda(t *testing.T) {
	got, err := nutrition.CalorieGoal(2000.6, nutrition.GoalMaintain)
	require.NoError(t, err)
	assert.Equal(t, 2001, got)
}

func TestBMI_UmaCasaDecimal(t *testing.T) {
	// 80 / 1.80² = 24.691... -> 24.7
	assert.Equal(t, 24.7, nutrition.BMI(80, 180))
	// 60 / 1.65² = 22.038... -> 22.0
	assert.Equal(t, 22.0, nutrition.BMI(60, 165))
}

func TestCalculateGoals_PipelineCompleto(t *testing.T) {
	now := date(2024, time.March, 10)
	res, err := nutrition.CalculateGoals(nutrition.GoalInput{
		DateOfBirth:   date(1994, time.March, 10),
		Gender:        nutrition.GenderMale,
		HeightCm:      180,
		WeightKg:      80,
		ActivityLevel: nutrition.ActivityModeratelyActive,
		Goal:          nutrition.GoalLoseWeight,
	}, now)
	require.NoError(t, err)

	assert.Equal(t, 30, res.Age)
	assert.InDelta(t, 1853.632, res.BMR, 0.001)
	assert.InDelta(t, 1853.632*1.55, res.TDEE, 0.001)
	// round(2873.1296 - 500) = 2373
	assert.Equal(t, 2373, res.DailyCalories)
	// 40/30/30 de 2373: carbs 237, proteína 178, gordura 79
	assert.Equal(t, 237.0, res.DailyMacros.Carbs())
	assert.Equal(t, 178.0, res.DailyMacros.Protein())
	assert.Equal(t, 79.0, res.DailyMacros.Fat())
	assert.Equal(t, 24.7, res.BMI)
}

func TestCalculateGoals_SexoInvalido(t *testing.T) {
	_, err := nutrition.CalculateGoals(nutrition.GoalInput{
		DateOfBirth:   date(1994, time.March, 10),
		Gender:        nutrition.Gender("unknown"),
		HeightCm:      180,
		WeightKg:      80,
		ActivityLevel: nutrition.ActivitySedentary,
		Goal:          nutrition.GoalMaintain,
	}, date(2024, time.March, 10))
	assert.Error(t, err)
}
