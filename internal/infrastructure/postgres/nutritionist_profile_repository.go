package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
)

var _ repository.NutritionistProfileRepository = (*NutritionistProfileRepo)(nil)

// NutritionistProfileRepo implementação de NutritionistProfileRepository sobre PostgreSQL.
type NutritionistProfileRepo struct {
	q Querier
}

// NewNutritionistProfileRepository constrói o adaptador do perfil profissional.
func NewNutritionistProfileRepository(q Querier) *NutritionistProfileRepo {
	return &NutritionistProfileRepo{q: q}
}

// Create persiste o perfil profissional.
func (r *NutritionistProfileRepo) Create(p *entity.NutritionistProfile) error {
	specialties, err := json.Marshal(p.Specialties())
	if err != nil {
		return fmt.Errorf("marshal specialties: %w", err)
	}
	query := `
		INSERT INTO nutritionist_profiles (
			user_id, crn, crn_state, full_name, bio, specialties,
			is_verified, active_clients_count, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.q.Exec(context.Background(), query,
		p.UserID(), p.CRN(), p.CRNState(), p.FullName(), p.Bio(), specialties,
		p.IsVerified(), p.ActiveClientsCount(), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProfileAlreadyExists
		}
		return fmt.Errorf("insert nutritionist profile: %w", err)
	}
	return nil
}

// FindByUserID busca o perfil pelo usuário dono. Retorna (nil, nil) se não existir.
func (r *NutritionistProfileRepo) FindByUserID(userID string) (*entity.NutritionistProfile, error) {
	query := `
		SELECT user_id, crn, crn_state, full_name, bio, specialties,
		       is_verified, active_clients_count, created_at, updated_at
		FROM nutritionist_profiles WHERE user_id = $1`
	var (
		uid, crn, crnState, fullName, bio string
		rawSpecialties                    []byte
		isVerified                        bool
		activeClients                     int
		createdAt, updatedAt              time.Time
	)
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&uid, &crn, &crnState, &fullName, &bio, &rawSpecialties,
		&isVerified, &activeClients, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nutritionist profile: %w", err)
	}
	var specialties []string
	if len(rawSpecialties) > 0 {
		if err := json.Unmarshal(rawSpecialties, &specialties); err != nil {
			return nil, fmt.Errorf("unmarshal specialties: %w", err)
		}
	}
	return entity.ReconstituteNutritionistProfile(uid, crn, crnState, fullName, bio, specialties, isVerified, activeClients, createdAt, updatedAt)
}

// Update grava o estado novo do perfil.
func (r *NutritionistProfileRepo) Update(p *entity.NutritionistProfile) error {
	specialties, err := json.Marshal(p.Specialties())
	if err != nil {
		return fmt.Errorf("marshal specialties: %w", err)
	}
	query := `
		UPDATE nutritionist_profiles SET
			full_name = $2, bio = $3, specialties = $4,
			is_verified = $5, active_clients_count = $6, updated_at = $7
		WHERE user_id = $1`
	_, err = r.q.Exec(context.Background(), query,
		p.UserID(), p.FullName(), p.Bio(), specialties,
		p.IsVerified(), p.ActiveClientsCount(), p.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("update nutritionist profile: %w", err)
	}
	return nil
}
