package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
)

var _ repository.NutritionPlanRepository = (*NutritionPlanRepo)(nil)

// NutritionPlanRepo implementação de NutritionPlanRepository sobre PostgreSQL.
// As refeições planejadas vão em JSONB; aceita pool ou tx para a troca atômica
// de plano ativo.
type NutritionPlanRepo struct {
	q Querier
}

// NewNutritionPlanRepository constrói o adaptador de planos.
func NewNutritionPlanRepository(q Querier) *NutritionPlanRepo {
	return &NutritionPlanRepo{q: q}
}

// plannedMealDoc forma persistida de uma refeição planejada.
type plannedMealDoc struct {
	Name          string   `json:"name"`
	ScheduledTime string   `json:"scheduled_time,omitempty"`
	Foods         []string `json:"foods"`
	Portions      []string `json:"portions"`
}

const planColumns = `id, nutritionist_id, client_id, title, description, planned_meals,
	general_guidelines, duration_days, start_date, end_date, is_active, created_at, updated_at`

// Create persiste o plano.
func (r *NutritionPlanRepo) Create(p *entity.NutritionPlan) error {
	meals, err := marshalPlannedMeals(p.PlannedMeals())
	if err != nil {
		return err
	}
	query := `
		INSERT INTO nutrition_plans (` + planColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(context.Background(), query,
		p.ID(), p.NutritionistID(), p.ClientID(), p.Title(), p.Description(), meals,
		p.GeneralGuidelines(), p.DurationDays(), p.StartDate(), p.EndDate(), p.IsActive(),
		p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert nutrition plan: %w", err)
	}
	return nil
}

// FindByID busca o plano por ID. Retorna (nil, nil) se não existir.
func (r *NutritionPlanRepo) FindByID(id string) (*entity.NutritionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM nutrition_plans WHERE id = $1`
	return scanPlan(r.q.QueryRow(context.Background(), query, id))
}

// Update grava o estado novo do plano.
func (r *NutritionPlanRepo) Update(p *entity.NutritionPlan) error {
	meals, err := marshalPlannedMeals(p.PlannedMeals())
	if err != nil {
		return err
	}
	query := `
		UPDATE nutrition_plans SET
			title = $2, description = $3, planned_meals = $4, general_guidelines = $5,
			duration_days = $6, start_date = $7, end_date = $8, is_active = $9, updated_at = $10
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		p.ID(), p.Title(), p.Description(), meals, p.GeneralGuidelines(),
		p.DurationDays(), p.StartDate(), p.EndDate(), p.IsActive(), p.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("update nutrition plan: %w", err)
	}
	return nil
}

// FindActiveByClientID retorna o plano ativo do cliente, se houver.
func (r *NutritionPlanRepo) FindActiveByClientID(clientID string) (*entity.NutritionPlan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM nutrition_plans WHERE client_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC LIMIT 1`
	return scanPlan(r.q.QueryRow(context.Background(), query, clientID))
}

// ListByClient lista os planos do cliente, mais recentes primeiro.
func (r *NutritionPlanRepo) ListByClient(clientID string) ([]*entity.NutritionPlan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM nutrition_plans WHERE client_id = $1 ORDER BY created_at DESC`
	return r.list(query, clientID)
}

// ListByNutritionist lista os planos emitidos pelo nutricionista.
func (r *NutritionPlanRepo) ListByNutritionist(nutritionistID string) ([]*entity.NutritionPlan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM nutrition_plans WHERE nutritionist_id = $1 ORDER BY created_at DESC`
	return r.list(query, nutritionistID)
}

func (r *NutritionPlanRepo) list(query string, arg any) ([]*entity.NutritionPlan, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list nutrition plans: %w", err)
	}
	defer rows.Close()

	var out []*entity.NutritionPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, plan)
	}
	return out, rows.Err()
}

func marshalPlannedMeals(meals []entity.PlannedMeal) ([]byte, error) {
	docs := make([]plannedMealDoc, 0, len(meals))
	for _, pm := range meals {
		docs = append(docs, plannedMealDoc{
			Name:          pm.Name,
			ScheduledTime: pm.ScheduledTime,
			Foods:         pm.Foods,
			Portions:      pm.Portions,
		})
	}
	raw, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("marshal planned meals: %w", err)
	}
	return raw, nil
}

func scanPlan(row pgx.Row) (*entity.NutritionPlan, error) {
	var (
		id, nutritionistID, clientID, title, description, guidelines string
		rawMeals                                                     []byte
		durationDays                                                 *int
		startDate, createdAt, updatedAt                              time.Time
		endDate                                                      *time.Time
		isActive                                                     bool
	)
	err := row.Scan(&id, &nutritionistID, &clientID, &title, &description, &rawMeals,
		&guidelines, &durationDays, &startDate, &endDate, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan nutrition plan: %w", err)
	}

	var docs []plannedMealDoc
	if len(rawMeals) > 0 {
		if err := json.Unmarshal(rawMeals, &docs); err != nil {
			return nil, fmt.Errorf("unmarshal planned meals: %w", err)
		}
	}
	meals := make([]entity.PlannedMeal, 0, len(docs))
	for _, d := range docs {
		meals = append(meals, entity.PlannedMeal{
			Name:          d.Name,
			ScheduledTime: d.ScheduledTime,
			Foods:         d.Foods,
			Portions:      d.Portions,
		})
	}
	return entity.ReconstituteNutritionPlan(id, entity.NutritionPlanParams{
		NutritionistID:    nutritionistID,
		ClientID:          clientID,
		Title:             title,
		Description:       description,
		PlannedMeals:      meals,
		GeneralGuidelines: guidelines,
		DurationDays:      durationDays,
		StartDate:         startDate,
	}, endDate, isActive, createdAt, updatedAt)
}
