package repository

import (
	"time"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
)

// MealRepository porta de persistência de refeições registradas.
type MealRepository interface {
	Create(meal *entity.Meal) error
	FindByID(id string) (*entity.Meal, error)
	Update(meal *entity.Meal) error
	// Delete remove definitivamente; refeições não têm soft delete.
	Delete(id string) error
	ListByUserAndDate(userID string, date time.Time) ([]*entity.Meal, error)
	// GetTotalCaloriesByUserAndDate soma as calorias das refeições do dia.
	GetTotalCaloriesByUserAndDate(userID string, date time.Time) (float64, error)
}
