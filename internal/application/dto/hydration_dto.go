package dto

import "time"

// LogHydrationRequest registro de uma bebida consumida.
type LogHydrationRequest struct {
	VolumeMl  int       `json:"volume_ml" validate:"required,min=1,max=5000"`
	DrinkType string    `json:"drink_type" validate:"required"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

// HydrationResponse saída de um registro de hidratação.
type HydrationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	VolumeMl  int       `json:"volume_ml"`
	DrinkType string    `json:"drink_type"`
	Icon      string    `json:"icon"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}

// HydrationDailyTotalResponse volume total consumido no dia.
type HydrationDailyTotalResponse struct {
	Date    string `json:"date"`
	TotalMl int    `json:"total_ml"`
}
