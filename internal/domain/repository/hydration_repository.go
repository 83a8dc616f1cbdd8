package repository

import (
	"time"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
)

// HydrationRepository porta de persistência de registros de hidratação.
type HydrationRepository interface {
	Create(hydration *entity.Hydration) error
	ListByUserAndDate(userID string, date time.Time) ([]*entity.Hydration, error)
	// GetTotalVolumeByUserAndDate soma o volume (ml) consumido no dia.
	GetTotalVolumeByUserAndDate(userID string, date time.Time) (int, error)
}
