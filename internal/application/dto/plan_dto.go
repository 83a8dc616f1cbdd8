package dto

import "time"

// PlannedMealInput refeição-modelo de um plano alimentar.
type PlannedMealInput struct {
	Name          string   `json:"name" validate:"required"`
	ScheduledTime string   `json:"scheduled_time,omitempty"`
	Foods         []string `json:"foods" validate:"required,min=1"`
	Portions      []string `json:"portions" validate:"required"`
}

// CreatePlanRequest criação de plano alimentar para um cliente vinculado.
type CreatePlanRequest struct {
	ClientID          string             `json:"client_id" validate:"required,uuid"`
	Title             string             `json:"title" validate:"required,max=200"`
	Description       string             `json:"description" validate:"max=1000"`
	PlannedMeals      []PlannedMealInput `json:"planned_meals" validate:"required,min=1,max=10"`
	GeneralGuidelines string             `json:"general_guidelines,omitempty"`
	DurationDays      *int               `json:"duration_days,omitempty" validate:"omitempty,min=1,max=365"`
	StartDate         time.Time          `json:"start_date" validate:"required"`
}

// PlanResponse saída de plano alimentar com os dias restantes derivados.
type PlanResponse struct {
	ID                string             `json:"id"`
	NutritionistID    string             `json:"nutritionist_id"`
	ClientID          string             `json:"client_id"`
	Title             string             `json:"title"`
	Description       string             `json:"description,omitempty"`
	PlannedMeals      []PlannedMealInput `json:"planned_meals"`
	GeneralGuidelines string             `json:"general_guidelines,omitempty"`
	DurationDays      *int               `json:"duration_days,omitempty"`
	StartDate         time.Time          `json:"start_date"`
	EndDate           *time.Time         `json:"end_date,omitempty"`
	DaysRemaining     *int               `json:"days_remaining,omitempty"`
	IsActive          bool               `json:"is_active"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
