package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/usecase"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
)

func TestProfile_GetInexistenteFalha(t *testing.T) {
	uc := usecase.NewProfileUseCase(newFakeClientProfileRepo(), nowFn)

	_, err := uc.Get("client-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfile_UpdateRecalculaMetas(t *testing.T) {
	profiles := newFakeClientProfileRepo()
	seedClientProfile(t, profiles, "client-1")
	uc := usecase.NewProfileUseCase(profiles, nowFn)

	weight := 90.0
	resp, err := uc.Update("client-1", dto.UpdateProfileRequest{WeightKg: &weight})
	require.NoError(t, err)

	// BMR 1987.602 * 1.55 - 500 = 2580.7831
	assert.Equal(t, 90.0, resp.WeightKg)
	assert.Equal(t, 2581, resp.DailyCaloriesGoal, "metas recalculadas sobre o peso novo")
	assert.Equal(t, 180.0, resp.HeightCm, "campos não informados permanecem")
}

func TestProfile_UpdateSobrescreveMetasManuais(t *testing.T) {
	profiles := newFakeClientProfileRepo()
	seedClientProfile(t, profiles, "client-1")
	uc := usecase.NewProfileUseCase(profiles, nowFn)

	manual, err := uc.SetManualGoals("client-1", dto.ManualGoalsRequest{
		DailyCalories: 1800,
		Macros:        dto.MacrosInput{CarbsGrams: 180, ProteinGrams: 135, FatGrams: 60},
	})
	require.NoError(t, err)
	require.True(t, manual.IsGoalManuallySet)
	require.Equal(t, 1800, manual.DailyCaloriesGoal)

	// Qualquer atualização corporal recalcula e descarta o override manual.
	weight := 85.0
	resp, err := uc.Update("client-1", dto.UpdateProfileRequest{WeightKg: &weight})
	require.NoError(t, err)

	assert.False(t, resp.IsGoalManuallySet, "update corporal volta para metas calculadas")
	assert.NotEqual(t, 1800, resp.DailyCaloriesGoal)
}

func TestProfile_UpdateForaDaFaixaFalha(t *testing.T) {
	profiles := newFakeClientProfileRepo()
	seedClientProfile(t, profiles, "client-1")
	uc := usecase.NewProfileUseCase(profiles, nowFn)

	weight := 350.0
	_, err := uc.Update("client-1", dto.UpdateProfileRequest{WeightKg: &weight})
	assert.True(t, domain.IsDomainError(err))
}

func TestProfile_SetManualGoalsForaDaFaixaFalha(t *testing.T) {
	profiles := newFakeClientProfileRepo()
	seedClientProfile(t, profiles, "client-1")
	uc := usecase.NewProfileUseCase(profiles, nowFn)

	_, err := uc.SetManualGoals("client-1", dto.ManualGoalsRequest{
		DailyCalories: 500, // abaixo do mínimo de 800
		Macros:        dto.MacrosInput{CarbsGrams: 50, ProteinGrams: 30, FatGrams: 10},
	})
	assert.True(t, domain.IsDomainError(err))
}
