package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
)

var _ repository.HydrationRepository = (*HydrationRepo)(nil)

// HydrationRepo implementação de HydrationRepository sobre PostgreSQL.
type HydrationRepo struct {
	q Querier
}

// NewHydrationRepository constrói o adaptador de hidratação.
func NewHydrationRepository(q Querier) *HydrationRepo {
	return &HydrationRepo{q: q}
}

// Create persiste o registro de bebida.
func (r *HydrationRepo) Create(h *entity.Hydration) error {
	query := `
		INSERT INTO hydration_logs (id, user_id, volume_ml, drink_type, logged_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID(), h.UserID(), h.VolumeMl(), string(h.DrinkType()), h.Timestamp(), h.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert hydration: %w", err)
	}
	return nil
}

// ListByUserAndDate lista os registros do dia, em ordem de horário.
func (r *HydrationRepo) ListByUserAndDate(userID string, date time.Time) ([]*entity.Hydration, error) {
	query := `
		SELECT id, user_id, volume_ml, drink_type, logged_at, created_at
		FROM hydration_logs WHERE user_id = $1 AND logged_at::date = $2::date
		ORDER BY logged_at ASC`
	rows, err := r.q.Query(context.Background(), query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list hydration: %w", err)
	}
	defer rows.Close()

	var out []*entity.Hydration
	for rows.Next() {
		record, err := scanHydration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

// GetTotalVolumeByUserAndDate soma o volume (ml) consumido no dia.
func (r *HydrationRepo) GetTotalVolumeByUserAndDate(userID string, date time.Time) (int, error) {
	query := `
		SELECT COALESCE(SUM(volume_ml), 0)
		FROM hydration_logs WHERE user_id = $1 AND logged_at::date = $2::date`
	var total int
	err := r.q.QueryRow(context.Background(), query, userID, date).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum hydration volume: %w", err)
	}
	return total, nil
}

func scanHydration(row pgx.Row) (*entity.Hydration, error) {
	var (
		id, userID, drinkType string
		volumeMl              int
		loggedAt, createdAt   time.Time
	)
	err := row.Scan(&id, &userID, &volumeMl, &drinkType, &loggedAt, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan hydration: %w", err)
	}
	return entity.ReconstituteHydration(id, userID, volumeMl, entity.DrinkType(drinkType), loggedAt, createdAt)
}
