package usecase

import (
	"time"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
)

// WorkoutUseCase CRUD de treinos do cliente.
type WorkoutUseCase struct {
	workouts repository.WorkoutRepository
	now      func() time.Time
}

// NewWorkoutUseCase constrói o caso de uso de treinos.
func NewWorkoutUseCase(workouts repository.WorkoutRepository, now func() time.Time) *WorkoutUseCase {
	if now == nil {
		now = time.Now
	}
	return &WorkoutUseCase{workouts: workouts, now: now}
}

// Create registra um treino com os exercícios validados.
func (uc *WorkoutUseCase) Create(userID string, in dto.WorkoutRequest) (*dto.WorkoutResponse, error) {
	workout, err := entity.NewWorkout(userID, in.Name, entity.WorkoutType(in.Type), toExercises(in.Exercises), in.Notes, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.workouts.Create(workout); err != nil {
		return nil, err
	}
	return toWorkoutResponse(workout), nil
}

// Get devolve um treino do usuário autenticado.
func (uc *WorkoutUseCase) Get(workoutID, userID string) (*dto.WorkoutResponse, error) {
	workout, err := uc.findOwned(workoutID, userID)
	if err != nil {
		return nil, err
	}
	return toWorkoutResponse(workout), nil
}

// Update substitui nome, tipo, exercícios e notas.
func (uc *WorkoutUseCase) Update(workoutID, userID string, in dto.WorkoutRequest) (*dto.WorkoutResponse, error) {
	workout, err := uc.findOwned(workoutID, userID)
	if err != nil {
		return nil, err
	}
	updated, err := workout.Update(in.Name, entity.WorkoutType(in.Type), toExercises(in.Exercises), in.Notes, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.workouts.Update(updated); err != nil {
		return nil, err
	}
	return toWorkoutResponse(updated), nil
}

// Delete remove o treino.
func (uc *WorkoutUseCase) Delete(workoutID, userID string) error {
	workout, err := uc.findOwned(workoutID, userID)
	if err != nil {
		return err
	}
	return uc.workouts.Delete(workout.ID())
}

// List lista os treinos do usuário autenticado.
func (uc *WorkoutUseCase) List(userID string) ([]*dto.WorkoutResponse, error) {
	workouts, err := uc.workouts.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WorkoutResponse, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, toWorkoutResponse(w))
	}
	return out, nil
}

func (uc *WorkoutUseCase) findOwned(workoutID, userID string) (*entity.Workout, error) {
	workout, err := uc.workouts.FindByID(workoutID)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, domain.ErrNotFound
	}
	if workout.UserID() != userID {
		return nil, domain.ErrForbidden
	}
	return workout, nil
}

func toExercises(in []dto.ExerciseInput) []entity.Exercise {
	out := make([]entity.Exercise, 0, len(in))
	for _, e := range in {
		out = append(out, entity.Exercise{
			Name:        e.Name,
			MuscleGroup: entity.MuscleGroup(e.MuscleGroup),
			Sets:        e.Sets,
			Reps:        e.Reps,
			RestSeconds: e.RestSeconds,
			Order:       e.Order,
		})
	}
	return out
}
