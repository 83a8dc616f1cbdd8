package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/usecase"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/valueobject"
)

type mealEnv struct {
	meals     *fakeMealRepo
	profiles  *fakeClientProfileRepo
	hydration *fakeHydrationRepo
	ai        *fakeAI
	uc        *usecase.MealUseCase
}

func newMealEnv(t *testing.T) *mealEnv {
	t.Helper()
	env := &mealEnv{
		meals:     newFakeMealRepo(),
		profiles:  newFakeClientProfileRepo(),
		hydration: newFakeHydrationRepo(),
		ai: &fakeAI{result: &dto.MealAnalysisDTO{
			MealName:   "Frango grelhado com arroz",
			Foods:      []string{"frango grelhado", "arroz branco"},
			Calories:   520,
			Macros:     dto.MacrosInput{CarbsGrams: 55, ProteinGrams: 42, FatGrams: 12},
			Confidence: 87,
		}},
	}
	env.uc = usecase.NewMealUseCase(env.meals, env.profiles, env.hydration, env.ai, nowFn)
	return env
}

func validConfirmRequest() dto.ConfirmMealRequest {
	return dto.ConfirmMealRequest{
		Name:       "Almoço",
		ImageURL:   "https://cdn.softfit.com/meals/abc.jpg",
		Foods:      []string{"frango grelhado", "arroz branco"},
		Calories:   520,
		Macros:     dto.MacrosInput{CarbsGrams: 55, ProteinGrams: 42, FatGrams: 12},
		MealTime:   fixedNow,
		Confidence: 87,
	}
}

func TestMealUseCase_AnalyzeExigeAlgumaEntrada(t *testing.T) {
	env := newMealEnv(t)

	_, err := env.uc.Analyze(context.Background(), dto.AnalyzeMealRequest{})
	assert.True(t, domain.IsDomainError(err))
	assert.Zero(t, env.ai.calls, "provedor não deve ser chamado sem entrada")
}

func TestMealUseCase_AnalyzeDelegaAoProvedor(t *testing.T) {
	env := newMealEnv(t)

	result, err := env.uc.Analyze(context.Background(), dto.AnalyzeMealRequest{
		Description: "frango grelhado com arroz",
	})
	require.NoError(t, err)
	assert.Equal(t, "Frango grelhado com arroz", result.MealName)
	assert.Equal(t, 1, env.ai.calls)
}

func TestMealUseCase_ConfirmDevolveCamposDerivados(t *testing.T) {
	env := newMealEnv(t)

	resp, err := env.uc.Confirm("client-1", validConfirmRequest())
	require.NoError(t, err)

	assert.True(t, resp.CanBeEdited, "refeição recém-criada está dentro da janela")
	assert.Zero(t, resp.AgeInDays)
	assert.Equal(t, 520.0, resp.Calories)

	stored, err := env.meals.FindByID(resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestMealUseCase_UpdateForaDaJanelaFalha(t *testing.T) {
	env := newMealEnv(t)
	macros, err := valueobject.NewMacros(55, 42, 12)
	require.NoError(t, err)
	old := fixedNow.Add(-8 * 24 * time.Hour)
	meal, err := entity.ReconstituteMeal("meal-old", entity.MealParams{
		UserID:     "client-1",
		Name:       "Jantar antigo",
		ImageURL:   "https://cdn.softfit.com/meals/old.jpg",
		Foods:      []string{"sopa"},
		Calories:   300,
		Macros:     macros,
		MealTime:   old,
		Confidence: 90,
	}, old, old)
	require.NoError(t, err)
	env.meals.meals[meal.ID()] = meal

	_, err = env.uc.Update("meal-old", "client-1", dto.UpdateMealRequest{
		Name:     "Jantar editado",
		Foods:    []string{"sopa"},
		Calories: 350,
		Macros:   dto.MacrosInput{CarbsGrams: 40, ProteinGrams: 20, FatGrams: 10},
		MealTime: old,
	})
	assert.True(t, domain.IsBusinessRuleError(err), "edição após 7 dias é recusada")
}

func TestMealUseCase_UpdateDeOutroUsuarioFalha(t *testing.T) {
	env := newMealEnv(t)
	resp, err := env.uc.Confirm("client-1", validConfirmRequest())
	require.NoError(t, err)

	_, err = env.uc.Update(resp.ID, "intruso", dto.UpdateMealRequest{
		Name:     "Hackeado",
		Calories: 1,
		Macros:   dto.MacrosInput{},
		MealTime: fixedNow,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMealUseCase_DeleteRemoveDefinitivo(t *testing.T) {
	env := newMealEnv(t)
	resp, err := env.uc.Confirm("client-1", validConfirmRequest())
	require.NoError(t, err)

	require.NoError(t, env.uc.Delete(resp.ID, "client-1"))

	stored, err := env.meals.FindByID(resp.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	err = env.uc.Delete(resp.ID, "client-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMealUseCase_DailySummary(t *testing.T) {
	env := newMealEnv(t)
	seedClientProfile(t, env.profiles, "client-1")

	_, err := env.uc.Confirm("client-1", validConfirmRequest())
	require.NoError(t, err)

	second := validConfirmRequest()
	second.Name = "Jantar"
	second.Calories = 480
	second.Macros = dto.MacrosInput{CarbsGrams: 45, ProteinGrams: 38, FatGrams: 14}
	_, err = env.uc.Confirm("client-1", second)
	require.NoError(t, err)

	water, err := entity.NewHydration("client-1", 500, entity.DrinkWater, fixedNow, fixedNow)
	require.NoError(t, err)
	require.NoError(t, env.hydration.Create(water))

	summary, err := env.uc.DailySummary("client-1", fixedNow.Format("2006-01-02"))
	require.NoError(t, err)

	assert.Equal(t, 1000.0, summary.TotalCalories)
	assert.Equal(t, 2373, summary.CaloriesGoal)
	assert.Equal(t, 1373.0, summary.RemainingCalories)
	assert.InDelta(t, 100.0, summary.TotalMacros.CarbsGrams, 0.001)
	assert.InDelta(t, 80.0, summary.TotalMacros.ProteinGrams, 0.001)
	assert.InDelta(t, 26.0, summary.TotalMacros.FatGrams, 0.001)
	assert.Equal(t, 500, summary.HydrationTotalMl)
	assert.Len(t, summary.Meals, 2)
}

func TestMealUseCase_DailySummarySemPerfilFalha(t *testing.T) {
	env := newMealEnv(t)

	_, err := env.uc.DailySummary("client-1", "2025-03-10")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
