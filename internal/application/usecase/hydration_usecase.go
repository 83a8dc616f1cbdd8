package usecase

import (
	"time"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
)

// HydrationUseCase registro e consulta de hidratação diária.
type HydrationUseCase struct {
	hydration repository.HydrationRepository
	now       func() time.Time
}

// NewHydrationUseCase constrói o caso de uso de hidratação.
func NewHydrationUseCase(hydration repository.HydrationRepository, now func() time.Time) *HydrationUseCase {
	if now == nil {
		now = time.Now
	}
	return &HydrationUseCase{hydration: hydration, now: now}
}

// Log registra uma bebida consumida.
func (uc *HydrationUseCase) Log(userID string, in dto.LogHydrationRequest) (*dto.HydrationResponse, error) {
	record, err := entity.NewHydration(userID, in.VolumeMl, entity.DrinkType(in.DrinkType), in.Timestamp, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.hydration.Create(record); err != nil {
		return nil, err
	}
	return toHydrationResponse(record), nil
}

// ListByDate lista os registros do dia (AAAA-MM-DD).
func (uc *HydrationUseCase) ListByDate(userID, date string) ([]*dto.HydrationResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	records, err := uc.hydration.ListByUserAndDate(userID, day)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.HydrationResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toHydrationResponse(r))
	}
	return out, nil
}

// DailyTotal devolve o volume total consumido no dia.
func (uc *HydrationUseCase) DailyTotal(userID, date string) (*dto.HydrationDailyTotalResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	total, err := uc.hydration.GetTotalVolumeByUserAndDate(userID, day)
	if err != nil {
		return nil, err
	}
	return &dto.HydrationDailyTotalResponse{
		Date:    day.Format(dateLayout),
		TotalMl: total,
	}, nil
}
