package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/valueobject"
)

var _ repository.MealRepository = (*MealRepo)(nil)

// MealRepo implementação de MealRepository sobre PostgreSQL. Calorias e
// macros são NUMERIC, lidos via shopspring/decimal.
type MealRepo struct {
	q Querier
}

// NewMealRepository constrói o adaptador de refeições.
func NewMealRepository(q Querier) *MealRepo {
	return &MealRepo{q: q}
}

const mealColumns = `id, user_id, name, image_url, audio_url, foods, calories,
	carbs_grams, protein_grams, fat_grams, meal_time, confidence, created_at, updated_at`

// Create persiste a refeição confirmada.
func (r *MealRepo) Create(m *entity.Meal) error {
	foods, err := json.Marshal(m.Foods())
	if err != nil {
		return fmt.Errorf("marshal foods: %w", err)
	}
	macros := m.Macros()
	query := `
		INSERT INTO meals (` + mealColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(context.Background(), query,
		m.ID(), m.UserID(), m.Name(), nullable(m.ImageURL()), nullable(m.AudioURL()), foods,
		decimal.NewFromFloat(m.Calories()),
		decimal.NewFromFloat(macros.Carbs()), decimal.NewFromFloat(macros.Protein()), decimal.NewFromFloat(macros.Fat()),
		m.MealTime(), decimal.NewFromFloat(m.Confidence()), m.CreatedAt(), m.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert meal: %w", err)
	}
	return nil
}

// FindByID busca a refeição por ID. Retorna (nil, nil) se não existir.
func (r *MealRepo) FindByID(id string) (*entity.Meal, error) {
	query := `SELECT ` + mealColumns + ` FROM meals WHERE id = $1`
	return scanMeal(r.q.QueryRow(context.Background(), query, id))
}

// Update grava a edição da refeição.
func (r *MealRepo) Update(m *entity.Meal) error {
	foods, err := json.Marshal(m.Foods())
	if err != nil {
		return fmt.Errorf("marshal foods: %w", err)
	}
	macros := m.Macros()
	query := `
		UPDATE meals SET
			name = $2, foods = $3, calories = $4,
			carbs_grams = $5, protein_grams = $6, fat_grams = $7,
			meal_time = $8, updated_at = $9
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		m.ID(), m.Name(), foods, decimal.NewFromFloat(m.Calories()),
		decimal.NewFromFloat(macros.Carbs()), decimal.NewFromFloat(macros.Protein()), decimal.NewFromFloat(macros.Fat()),
		m.MealTime(), m.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("update meal: %w", err)
	}
	return nil
}

// Delete remove a refeição em definitivo.
func (r *MealRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM meals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	return nil
}

// ListByUserAndDate lista as refeições do dia, em ordem de horário.
func (r *MealRepo) ListByUserAndDate(userID string, date time.Time) ([]*entity.Meal, error) {
	query := `
		SELECT ` + mealColumns + `
		FROM meals WHERE user_id = $1 AND meal_time::date = $2::date
		ORDER BY meal_time ASC`
	rows, err := r.q.Query(context.Background(), query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	var out []*entity.Meal
	for rows.Next() {
		meal, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, meal)
	}
	return out, rows.Err()
}

// GetTotalCaloriesByUserAndDate soma as calorias das refeições do dia.
func (r *MealRepo) GetTotalCaloriesByUserAndDate(userID string, date time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(calories), 0)
		FROM meals WHERE user_id = $1 AND meal_time::date = $2::date`
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, userID, date).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum calories: %w", err)
	}
	return total.InexactFloat64(), nil
}

func scanMeal(row pgx.Row) (*entity.Meal, error) {
	var (
		id, userID, name                     string
		imageURL, audioURL                   *string
		rawFoods                             []byte
		calories, carbs, protein, fat, conf  decimal.Decimal
		mealTime, createdAt, updatedAt       time.Time
	)
	err := row.Scan(&id, &userID, &name, &imageURL, &audioURL, &rawFoods,
		&calories, &carbs, &protein, &fat, &mealTime, &conf, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan meal: %w", err)
	}

	var foods []string
	if len(rawFoods) > 0 {
		if err := json.Unmarshal(rawFoods, &foods); err != nil {
			return nil, fmt.Errorf("unmarshal foods: %w", err)
		}
	}
	macros, err := valueobject.NewMacros(carbs.InexactFloat64(), protein.InexactFloat64(), fat.InexactFloat64())
	if err != nil {
		return nil, fmt.Errorf("macros armazenados inválidos: %w", err)
	}
	return entity.ReconstituteMeal(id, entity.MealParams{
		UserID:     userID,
		Name:       name,
		ImageURL:   deref(imageURL),
		AudioURL:   deref(audioURL),
		Foods:      foods,
		Calories:   calories.InexactFloat64(),
		Macros:     macros,
		MealTime:   mealTime,
		Confidence: conf.InexactFloat64(),
	}, createdAt, updatedAt)
}

// nullable converte string vazia em NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
