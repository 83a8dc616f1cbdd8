package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/nutrition"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/valueobject"
)

var _ repository.ClientProfileRepository = (*ClientProfileRepo)(nil)

// ClientProfileRepo implementação de ClientProfileRepository sobre PostgreSQL.
// Medidas corporais e macros são NUMERIC, lidas via shopspring/decimal.
type ClientProfileRepo struct {
	q Querier
}

// NewClientProfileRepository constrói o adaptador do perfil de cliente.
func NewClientProfileRepository(q Querier) *ClientProfileRepo {
	return &ClientProfileRepo{q: q}
}

// Create persiste o perfil criado no onboarding.
func (r *ClientProfileRepo) Create(p *entity.ClientProfile) error {
	query := `
		INSERT INTO client_profiles (
			user_id, date_of_birth, gender, height_cm, weight_kg, goal, activity_level,
			daily_calories_goal, carbs_grams, protein_grams, fat_grams, is_goal_manually_set,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	macros := p.DailyMacrosGoal()
	_, err := r.q.Exec(context.Background(), query,
		p.UserID(), p.DateOfBirth(), string(p.Gender()),
		decimal.NewFromFloat(p.HeightCm()), decimal.NewFromFloat(p.WeightKg()),
		string(p.Goal()), string(p.ActivityLevel()),
		p.DailyCaloriesGoal(),
		decimal.NewFromFloat(macros.Carbs()), decimal.NewFromFloat(macros.Protein()), decimal.NewFromFloat(macros.Fat()),
		p.IsGoalManuallySet(), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProfileAlreadyExists
		}
		return fmt.Errorf("insert client profile: %w", err)
	}
	return nil
}

// FindByUserID busca o perfil pelo usuário dono. Retorna (nil, nil) se não existir.
func (r *ClientProfileRepo) FindByUserID(userID string) (*entity.ClientProfile, error) {
	query := `
		SELECT user_id, date_of_birth, gender, height_cm, weight_kg, goal, activity_level,
		       daily_calories_goal, carbs_grams, protein_grams, fat_grams, is_goal_manually_set,
		       created_at, updated_at
		FROM client_profiles WHERE user_id = $1`
	var (
		uid, gender, goal, level              string
		dob, createdAt, updatedAt             time.Time
		height, weight, carbs, protein, fat   decimal.Decimal
		dailyCalories                         int
		manual                                bool
	)
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&uid, &dob, &gender, &height, &weight, &goal, &level,
		&dailyCalories, &carbs, &protein, &fat, &manual,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client profile: %w", err)
	}

	macros, err := valueobject.NewMacros(carbs.InexactFloat64(), protein.InexactFloat64(), fat.InexactFloat64())
	if err != nil {
		return nil, fmt.Errorf("macros armazenados inválidos: %w", err)
	}
	return entity.ReconstituteClientProfile(entity.ClientProfileParams{
		UserID:            uid,
		DateOfBirth:       dob,
		Gender:            nutrition.Gender(gender),
		HeightCm:          height.InexactFloat64(),
		WeightKg:          weight.InexactFloat64(),
		Goal:              nutrition.Goal(goal),
		ActivityLevel:     nutrition.ActivityLevel(level),
		DailyCaloriesGoal: dailyCalories,
		DailyMacrosGoal:   macros,
		IsGoalManuallySet: manual,
	}, createdAt, updatedAt, time.Now())
}

// Update grava o estado novo do perfil (entidade imutável, substituição completa).
func (r *ClientProfileRepo) Update(p *entity.ClientProfile) error {
	query := `
		UPDATE client_profiles SET
			date_of_birth = $2, gender = $3, height_cm = $4, weight_kg = $5,
			goal = $6, activity_level = $7, daily_calories_goal = $8,
			carbs_grams = $9, protein_grams = $10, fat_grams = $11,
			is_goal_manually_set = $12, updated_at = $13
		WHERE user_id = $1`
	macros := p.DailyMacrosGoal()
	_, err := r.q.Exec(context.Background(), query,
		p.UserID(), p.DateOfBirth(), string(p.Gender()),
		decimal.NewFromFloat(p.HeightCm()), decimal.NewFromFloat(p.WeightKg()),
		string(p.Goal()), string(p.ActivityLevel()), p.DailyCaloriesGoal(),
		decimal.NewFromFloat(macros.Carbs()), decimal.NewFromFloat(macros.Protein()), decimal.NewFromFloat(macros.Fat()),
		p.IsGoalManuallySet(), p.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("update client profile: %w", err)
	}
	return nil
}
