package usecase

import (
	"time"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/nutrition"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
)

// OnboardingUseCase completa o cadastro do cliente: valida os dados
// corporais, roda o cálculo de metas e cria o perfil com as metas derivadas.
type OnboardingUseCase struct {
	users    repository.UserRepository
	profiles repository.ClientProfileRepository
	now      func() time.Time
}

// NewOnboardingUseCase constrói o caso de uso de onboarding.
func NewOnboardingUseCase(users repository.UserRepository, profiles repository.ClientProfileRepository, now func() time.Time) *OnboardingUseCase {
	if now == nil {
		now = time.Now
	}
	return &OnboardingUseCase{users: users, profiles: profiles, now: now}
}

// Complete cria o perfil do cliente. Falha com ErrProfileAlreadyExists se o
// usuário já completou o onboarding; as metas saem sempre do cálculo, nunca
// da entrada.
func (uc *OnboardingUseCase) Complete(userID string, in dto.OnboardingRequest) (*dto.ClientProfileResponse, error) {
	user, err := uc.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role() != entity.RoleClient {
		return nil, domain.NewBusinessRuleError("onboarding nutricional é exclusivo de usuários com papel client")
	}

	existing, err := uc.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrProfileAlreadyExists
	}

	dob, err := parseDate(in.DateOfBirth)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	goals, err := nutrition.CalculateGoals(nutrition.GoalInput{
		DateOfBirth:   dob,
		Gender:        nutrition.Gender(in.Gender),
		HeightCm:      in.HeightCm,
		WeightKg:      in.WeightKg,
		ActivityLevel: nutrition.ActivityLevel(in.ActivityLevel),
		Goal:          nutrition.Goal(in.Goal),
	}, now)
	if err != nil {
		return nil, err
	}

	profile, err := entity.NewClientProfile(entity.ClientProfileParams{
		UserID:            userID,
		DateOfBirth:       dob,
		Gender:            nutrition.Gender(in.Gender),
		HeightCm:          in.HeightCm,
		WeightKg:          in.WeightKg,
		Goal:              nutrition.Goal(in.Goal),
		ActivityLevel:     nutrition.ActivityLevel(in.ActivityLevel),
		DailyCaloriesGoal: goals.DailyCalories,
		DailyMacrosGoal:   goals.DailyMacros,
		IsGoalManuallySet: false,
	}, now)
	if err != nil {
		return nil, err
	}

	if err := uc.profiles.Create(profile); err != nil {
		return nil, err
	}
	return toClientProfileResponse(profile, now), nil
}
