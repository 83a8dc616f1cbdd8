package repository

import "github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"

// NutritionPlanRepository porta de persistência de planos alimentares.
type NutritionPlanRepository interface {
	Create(plan *entity.NutritionPlan) error
	FindByID(id string) (*entity.NutritionPlan, error)
	Update(plan *entity.NutritionPlan) error
	// FindActiveByClientID retorna o plano ativo do cliente, se houver.
	FindActiveByClientID(clientID string) (*entity.NutritionPlan, error)
	ListByClient(clientID string) ([]*entity.NutritionPlan, error)
	ListByNutritionist(nutritionistID string) ([]*entity.NutritionPlan, error)
}
