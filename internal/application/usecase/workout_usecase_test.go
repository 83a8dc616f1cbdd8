package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/usecase"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
)

func validWorkoutRequest() dto.WorkoutRequest {
	return dto.WorkoutRequest{
		Name: "Treino A",
		Type: "strength",
		Exercises: []dto.ExerciseInput{
			{Name: "Supino reto", MuscleGroup: "chest", Sets: 4, Reps: 10, RestSeconds: 90, Order: 1},
			{Name: "Crucifixo", MuscleGroup: "chest", Sets: 3, Reps: 12, RestSeconds: 60, Order: 2},
		},
		Notes: "Aumentar carga na próxima semana",
	}
}

func TestWorkoutUseCase_CriaEListaPorUsuario(t *testing.T) {
	workouts := newFakeWorkoutRepo()
	uc := usecase.NewWorkoutUseCase(workouts, nowFn)

	created, err := uc.Create("client-1", validWorkoutRequest())
	require.NoError(t, err)
	assert.Equal(t, "Treino A", created.Name)
	assert.Len(t, created.Exercises, 2)
	assert.Equal(t, 1, created.Exercises[0].Order, "ordem vem do chamador")

	list, err := uc.List("client-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	other, err := uc.List("client-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestWorkoutUseCase_UpdateSubstituiExercicios(t *testing.T) {
	workouts := newFakeWorkoutRepo()
	uc := usecase.NewWorkoutUseCase(workouts, nowFn)
	created, err := uc.Create("client-1", validWorkoutRequest())
	require.NoError(t, err)

	in := validWorkoutRequest()
	in.Name = "Treino B"
	in.Exercises = in.Exercises[:1]
	updated, err := uc.Update(created.ID, "client-1", in)
	require.NoError(t, err)

	assert.Equal(t, "Treino B", updated.Name)
	assert.Len(t, updated.Exercises, 1)
}

func TestWorkoutUseCase_AcessoDeOutroUsuarioFalha(t *testing.T) {
	workouts := newFakeWorkoutRepo()
	uc := usecase.NewWorkoutUseCase(workouts, nowFn)
	created, err := uc.Create("client-1", validWorkoutRequest())
	require.NoError(t, err)

	_, err = uc.Get(created.ID, "intruso")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(created.ID, "intruso")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestWorkoutUseCase_ExercicioInvalidoFalha(t *testing.T) {
	uc := usecase.NewWorkoutUseCase(newFakeWorkoutRepo(), nowFn)

	in := validWorkoutRequest()
	in.Exercises[0].Sets = 25 // acima do máximo de 20
	_, err := uc.Create("client-1", in)
	assert.True(t, domain.IsDomainError(err))
}

func TestHydrationUseCase_RegistraESoma(t *testing.T) {
	hydration := newFakeHydrationRepo()
	uc := usecase.NewHydrationUseCase(hydration, nowFn)

	first, err := uc.Log("client-1", dto.LogHydrationRequest{VolumeMl: 500, DrinkType: "water", Timestamp: fixedNow})
	require.NoError(t, err)
	assert.Equal(t, "💧", first.Icon)

	_, err = uc.Log("client-1", dto.LogHydrationRequest{VolumeMl: 200, DrinkType: "coffee", Timestamp: fixedNow})
	require.NoError(t, err)

	total, err := uc.DailyTotal("client-1", fixedNow.Format("2006-01-02"))
	require.NoError(t, err)
	assert.Equal(t, 700, total.TotalMl)

	list, err := uc.ListByDate("client-1", fixedNow.Format("2006-01-02"))
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestHydrationUseCase_BebidaDesconhecidaFalha(t *testing.T) {
	uc := usecase.NewHydrationUseCase(newFakeHydrationRepo(), nowFn)

	_, err := uc.Log("client-1", dto.LogHydrationRequest{VolumeMl: 300, DrinkType: "refrigerante", Timestamp: fixedNow})
	assert.True(t, domain.IsDomainError(err))
}
