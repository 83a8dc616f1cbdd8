package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/usecase"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
)

func validOnboardingRequest() dto.OnboardingRequest {
	return dto.OnboardingRequest{
		DateOfBirth:   "1995-03-10", // 30 anos no relógio fixo
		Gender:        "male",
		HeightCm:      180,
		WeightKg:      80,
		Goal:          "lose_weight",
		ActivityLevel: "moderately_active",
	}
}

func TestOnboarding_CalculaMetasNoPerfil(t *testing.T) {
	users := newFakeUserRepo()
	profiles := newFakeClientProfileRepo()
	seedUser(t, users, "client-1", "cliente@softfit.com", entity.RoleClient)
	uc := usecase.NewOnboardingUseCase(users, profiles, nowFn)

	resp, err := uc.Complete("client-1", validOnboardingRequest())
	require.NoError(t, err)

	assert.Equal(t, 30, resp.Age, "idade derivada da data de nascimento")
	assert.Equal(t, 2373, resp.DailyCaloriesGoal, "TDEE 2873.1296 - 500 arredondado")
	assert.InDelta(t, 237.0, resp.DailyMacrosGoal.CarbsGrams, 0.001)
	assert.InDelta(t, 178.0, resp.DailyMacrosGoal.ProteinGrams, 0.001)
	assert.InDelta(t, 79.0, resp.DailyMacrosGoal.FatGrams, 0.001)
	assert.Equal(t, 24.7, resp.BMI)
	assert.False(t, resp.IsGoalManuallySet, "metas do onboarding são sempre calculadas")

	stored, err := profiles.FindByUserID("client-1")
	require.NoError(t, err)
	require.NotNil(t, stored, "perfil deve ter sido persistido")
}

func TestOnboarding_PerfilDuplicadoFalha(t *testing.T) {
	users := newFakeUserRepo()
	profiles := newFakeClientProfileRepo()
	seedUser(t, users, "client-1", "cliente@softfit.com", entity.RoleClient)
	uc := usecase.NewOnboardingUseCase(users, profiles, nowFn)

	_, err := uc.Complete("client-1", validOnboardingRequest())
	require.NoError(t, err)

	_, err = uc.Complete("client-1", validOnboardingRequest())
	assert.ErrorIs(t, err, domain.ErrProfileAlreadyExists)
}

func TestOnboarding_UsuarioInexistenteFalha(t *testing.T) {
	uc := usecase.NewOnboardingUseCase(newFakeUserRepo(), newFakeClientProfileRepo(), nowFn)

	_, err := uc.Complete("fantasma", validOnboardingRequest())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestOnboarding_NutricionistaNaoFazOnboarding(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "nutri-1", "nutri@softfit.com", entity.RoleNutritionist)
	uc := usecase.NewOnboardingUseCase(users, newFakeClientProfileRepo(), nowFn)

	_, err := uc.Complete("nutri-1", validOnboardingRequest())
	assert.True(t, domain.IsBusinessRuleError(err), "papel errado deve ser erro de regra de negócio")
}

func TestOnboarding_DataInvalidaFalha(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "client-1", "cliente@softfit.com", entity.RoleClient)
	uc := usecase.NewOnboardingUseCase(users, newFakeClientProfileRepo(), nowFn)

	in := validOnboardingRequest()
	in.DateOfBirth = "10/03/1995"
	_, err := uc.Complete("client-1", in)
	assert.True(t, domain.IsDomainError(err))
}
