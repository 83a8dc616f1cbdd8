package usecase

import (
	"time"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
)

// NutritionistUseCase gestão do perfil profissional do nutricionista.
type NutritionistUseCase struct {
	users    repository.UserRepository
	profiles repository.NutritionistProfileRepository
	now      func() time.Time
}

// NewNutritionistUseCase constrói o caso de uso do perfil profissional.
func NewNutritionistUseCase(users repository.UserRepository, profiles repository.NutritionistProfileRepository, now func() time.Time) *NutritionistUseCase {
	if now == nil {
		now = time.Now
	}
	return &NutritionistUseCase{users: users, profiles: profiles, now: now}
}

// CreateProfile cria o perfil profissional com CRN e UF validados.
func (uc *NutritionistUseCase) CreateProfile(userID string, in dto.NutritionistProfileRequest) (*dto.NutritionistProfileResponse, error) {
	user, err := uc.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role() != entity.RoleNutritionist {
		return nil, domain.NewBusinessRuleError("perfil profissional é exclusivo de usuários com papel nutritionist")
	}

	existing, err := uc.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrProfileAlreadyExists
	}

	profile, err := entity.NewNutritionistProfile(userID, in.CRN, in.CRNState, in.FullName, in.Bio, in.Specialties, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.profiles.Create(profile); err != nil {
		return nil, err
	}
	return toNutritionistProfileResponse(profile), nil
}

// Get devolve o perfil profissional.
func (uc *NutritionistUseCase) Get(userID string) (*dto.NutritionistProfileResponse, error) {
	profile, err := uc.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return toNutritionistProfileResponse(profile), nil
}

// UpdateInfo atualiza nome, bio e especialidades. CRN e UF não mudam.
func (uc *NutritionistUseCase) UpdateInfo(userID string, in dto.UpdateNutritionistInfoRequest) (*dto.NutritionistProfileResponse, error) {
	profile, err := uc.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}

	updated, err := profile.UpdateInfo(in.FullName, in.Bio, in.Specialties, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.profiles.Update(updated); err != nil {
		return nil, err
	}
	return toNutritionistProfileResponse(updated), nil
}
