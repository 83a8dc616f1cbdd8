package repository

import "github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"

// WorkoutRepository porta de persistência de treinos.
type WorkoutRepository interface {
	Create(workout *entity.Workout) error
	FindByID(id string) (*entity.Workout, error)
	Update(workout *entity.Workout) error
	Delete(id string) error
	ListByUser(userID string) ([]*entity.Workout, error)
}
