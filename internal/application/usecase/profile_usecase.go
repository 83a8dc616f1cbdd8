package usecase

import (
	"time"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/nutrition"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/valueobject"
)

// ProfileUseCase leitura e atualização do perfil do cliente.
type ProfileUseCase struct {
	profiles repository.ClientProfileRepository
	now      func() time.Time
}

// NewProfileUseCase constrói o caso de uso de perfil.
func NewProfileUseCase(profiles repository.ClientProfileRepository, now func() time.Time) *ProfileUseCase {
	if now == nil {
		now = time.Now
	}
	return &ProfileUseCase{profiles: profiles, now: now}
}

// Get devolve o perfil do cliente com idade, IMC e metas derivadas.
func (uc *ProfileUseCase) Get(userID string) (*dto.ClientProfileResponse, error) {
	profile, err := uc.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return toClientProfileResponse(profile, uc.now()), nil
}

// Update mescla os campos informados sobre o perfil atual e recalcula as
// metas sobre o resultado. O recálculo sobrescreve qualquer override manual:
// o flag isGoalManuallySet volta a false em toda atualização corporal.
func (uc *ProfileUseCase) Update(userID string, in dto.UpdateProfileRequest) (*dto.ClientProfileResponse, error) {
	profile, err := uc.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}

	dob := profile.DateOfBirth()
	if in.DateOfBirth != nil {
		dob, err = parseDate(*in.DateOfBirth)
		if err != nil {
			return nil, err
		}
	}
	gender := profile.Gender()
	if in.Gender != nil {
		gender = nutrition.Gender(*in.Gender)
	}
	height := profile.HeightCm()
	if in.HeightCm != nil {
		height = *in.HeightCm
	}
	weight := profile.WeightKg()
	if in.WeightKg != nil {
		weight = *in.WeightKg
	}
	goal := profile.Goal()
	if in.Goal != nil {
		goal = nutrition.Goal(*in.Goal)
	}
	level := profile.ActivityLevel()
	if in.ActivityLevel != nil {
		level = nutrition.ActivityLevel(*in.ActivityLevel)
	}

	now := uc.now()
	updated, err := profile.WithBody(dob, gender, height, weight, goal, level, now)
	if err != nil {
		return nil, err
	}

	goals, err := nutrition.CalculateGoals(nutrition.GoalInput{
		DateOfBirth:   dob,
		Gender:        gender,
		HeightCm:      height,
		WeightKg:      weight,
		ActivityLevel: level,
		Goal:          goal,
	}, now)
	if err != nil {
		return nil, err
	}
	updated, err = updated.WithCalculatedGoals(goals.DailyCalories, goals.DailyMacros, now)
	if err != nil {
		return nil, err
	}

	if err := uc.profiles.Update(updated); err != nil {
		return nil, err
	}
	return toClientProfileResponse(updated, now), nil
}

// SetManualGoals aplica o override manual de metas diárias. O flag
// isGoalManuallySet marca que os valores não saíram do cálculo.
func (uc *ProfileUseCase) SetManualGoals(userID string, in dto.ManualGoalsRequest) (*dto.ClientProfileResponse, error) {
	profile, err := uc.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}

	macros, err := valueobject.NewMacros(in.Macros.CarbsGrams, in.Macros.ProteinGrams, in.Macros.FatGrams)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	updated, err := profile.WithManualGoals(in.DailyCalories, macros, now)
	if err != nil {
		return nil, err
	}

	if err := uc.profiles.Update(updated); err != nil {
		return nil, err
	}
	return toClientProfileResponse(updated, now), nil
}
