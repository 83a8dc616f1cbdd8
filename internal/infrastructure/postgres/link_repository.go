package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
)

var _ repository.LinkRepository = (*LinkRepo)(nil)

// LinkRepo implementação de LinkRepository sobre PostgreSQL.
type LinkRepo struct {
	q Querier
}

// NewLinkRepository constrói o adaptador de vínculos. Aceita pool ou tx.
func NewLinkRepository(q Querier) *LinkRepo {
	return &LinkRepo{q: q}
}

const linkColumns = `id, client_id, nutritionist_id, status, requested_at, responded_at, ended_at, updated_at`

// Create persiste a solicitação de vínculo.
func (r *LinkRepo) Create(l *entity.ClientNutritionistLink) error {
	query := `
		INSERT INTO client_nutritionist_links (` + linkColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID(), l.ClientID(), l.NutritionistID(), string(l.Status()),
		l.RequestedAt(), l.RespondedAt(), l.EndedAt(), l.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrLinkAlreadyExists
		}
		return fmt.Errorf("insert link: %w", err)
	}
	return nil
}

// FindByID busca o vínculo por ID. Retorna (nil, nil) se não existir.
func (r *LinkRepo) FindByID(id string) (*entity.ClientNutritionistLink, error) {
	query := `SELECT ` + linkColumns + ` FROM client_nutritionist_links WHERE id = $1`
	return scanLink(r.q.QueryRow(context.Background(), query, id))
}

// Update grava a transição de estado.
func (r *LinkRepo) Update(l *entity.ClientNutritionistLink) error {
	query := `
		UPDATE client_nutritionist_links SET
			status = $2, responded_at = $3, ended_at = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		l.ID(), string(l.Status()), l.RespondedAt(), l.EndedAt(), l.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("update link: %w", err)
	}
	return nil
}

// FindByClientAndNutritionist busca o vínculo mais recente do par nos status dados.
func (r *LinkRepo) FindByClientAndNutritionist(clientID, nutritionistID string, statuses []entity.LinkStatus) (*entity.ClientNutritionistLink, error) {
	raw := make([]string, 0, len(statuses))
	for _, s := range statuses {
		raw = append(raw, string(s))
	}
	query := `
		SELECT ` + linkColumns + `
		FROM client_nutritionist_links
		WHERE client_id = $1 AND nutritionist_id = $2 AND status = ANY($3)
		ORDER BY requested_at DESC LIMIT 1`
	return scanLink(r.q.QueryRow(context.Background(), query, clientID, nutritionistID, raw))
}

// ListByClient lista os vínculos do cliente, mais recentes primeiro.
func (r *LinkRepo) ListByClient(clientID string) ([]*entity.ClientNutritionistLink, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM client_nutritionist_links WHERE client_id = $1 ORDER BY requested_at DESC`
	return r.list(query, clientID)
}

// ListByNutritionist lista os vínculos do nutricionista, mais recentes primeiro.
func (r *LinkRepo) ListByNutritionist(nutritionistID string) ([]*entity.ClientNutritionistLink, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM client_nutritionist_links WHERE nutritionist_id = $1 ORDER BY requested_at DESC`
	return r.list(query, nutritionistID)
}

func (r *LinkRepo) list(query string, arg any) ([]*entity.ClientNutritionistLink, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()

	var out []*entity.ClientNutritionistLink
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, link)
	}
	return out, rows.Err()
}

func scanLink(row pgx.Row) (*entity.ClientNutritionistLink, error) {
	var (
		id, clientID, nutritionistID, status string
		requestedAt, updatedAt               time.Time
		respondedAt, endedAt                 *time.Time
	)
	err := row.Scan(&id, &clientID, &nutritionistID, &status, &requestedAt, &respondedAt, &endedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan link: %w", err)
	}
	return entity.ReconstituteLink(id, clientID, nutritionistID, entity.LinkStatus(status), requestedAt, respondedAt, endedAt, updatedAt)
}
