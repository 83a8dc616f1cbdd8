package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/usecase"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
)

type linkEnv struct {
	users         *fakeUserRepo
	nutritionists *fakeNutritionistRepo
	links         *fakeLinkRepo
	uc            *usecase.LinkUseCase
}

func newLinkEnv(t *testing.T) *linkEnv {
	t.Helper()
	env := &linkEnv{
		users:         newFakeUserRepo(),
		nutritionists: newFakeNutritionistRepo(),
		links:         newFakeLinkRepo(),
	}
	seedUser(t, env.users, "nutri-1", "nutri@softfit.com", entity.RoleNutritionist)
	seedUser(t, env.users, "client-1", "cliente@softfit.com", entity.RoleClient)

	profile, err := entity.NewNutritionistProfile("nutri-1", "12345", "SP", "Maria Oliveira Santos", "", nil, fixedNow)
	require.NoError(t, err)
	env.nutritionists.profiles["nutri-1"] = profile

	tx := &fakeTx{links: env.links, nutritionists: env.nutritionists}
	env.uc = usecase.NewLinkUseCase(env.users, env.nutritionists, env.links, tx, nowFn)
	return env
}

func (e *linkEnv) request(t *testing.T) *dto.LinkResponse {
	t.Helper()
	resp, err := e.uc.Request("nutri-1", dto.LinkRequestInput{ClientID: "client-1"})
	require.NoError(t, err)
	return resp
}

func TestLinkUseCase_RequestCriaPendente(t *testing.T) {
	env := newLinkEnv(t)

	resp := env.request(t)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "client-1", resp.ClientID)
	assert.Equal(t, "nutri-1", resp.NutritionistID)
	assert.Equal(t, fixedNow, resp.RequestedAt)
	assert.Nil(t, resp.RespondedAt)
}

func TestLinkUseCase_RequestDuplicadoFalha(t *testing.T) {
	env := newLinkEnv(t)
	env.request(t)

	_, err := env.uc.Request("nutri-1", dto.LinkRequestInput{ClientID: "client-1"})
	assert.ErrorIs(t, err, domain.ErrLinkAlreadyExists)
}

func TestLinkUseCase_RequestSemPerfilProfissionalFalha(t *testing.T) {
	env := newLinkEnv(t)
	delete(env.nutritionists.profiles, "nutri-1")

	_, err := env.uc.Request("nutri-1", dto.LinkRequestInput{ClientID: "client-1"})
	assert.True(t, domain.IsBusinessRuleError(err))
}

func TestLinkUseCase_RequestParaNaoClienteFalha(t *testing.T) {
	env := newLinkEnv(t)
	seedUser(t, env.users, "nutri-2", "nutri2@softfit.com", entity.RoleNutritionist)

	_, err := env.uc.Request("nutri-1", dto.LinkRequestInput{ClientID: "nutri-2"})
	assert.True(t, domain.IsBusinessRuleError(err))
}

func TestLinkUseCase_RequestNoTetoDeClientesFalha(t *testing.T) {
	env := newLinkEnv(t)
	full, err := entity.ReconstituteNutritionistProfile("nutri-1", "12345", "SP", "Maria Oliveira Santos", "", nil, true, entity.MaxActiveClients, fixedNow, fixedNow)
	require.NoError(t, err)
	env.nutritionists.profiles["nutri-1"] = full

	_, err = env.uc.Request("nutri-1", dto.LinkRequestInput{ClientID: "client-1"})
	assert.True(t, domain.IsBusinessRuleError(err))
}

func TestLinkUseCase_AceiteAtivaEIncrementaContador(t *testing.T) {
	env := newLinkEnv(t)
	pending := env.request(t)

	resp, err := env.uc.Accept(context.Background(), pending.ID, "client-1")
	require.NoError(t, err)

	assert.Equal(t, "active", resp.Status)
	require.NotNil(t, resp.RespondedAt)
	assert.Equal(t, fixedNow, *resp.RespondedAt)

	profile, _ := env.nutritionists.FindByUserID("nutri-1")
	assert.Equal(t, 1, profile.ActiveClientsCount(), "aceite incrementa o contador na mesma transação")
}

func TestLinkUseCase_AceitePorOutroUsuarioFalha(t *testing.T) {
	env := newLinkEnv(t)
	pending := env.request(t)

	_, err := env.uc.Accept(context.Background(), pending.ID, "intruso")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLinkUseCase_RecusaNaoMexeNoContador(t *testing.T) {
	env := newLinkEnv(t)
	pending := env.request(t)

	resp, err := env.uc.Reject(pending.ID, "client-1")
	require.NoError(t, err)

	assert.Equal(t, "rejected", resp.Status)
	require.NotNil(t, resp.EndedAt)

	profile, _ := env.nutritionists.FindByUserID("nutri-1")
	assert.Equal(t, 0, profile.ActiveClientsCount())
}

func TestLinkUseCase_CancelamentoDeAtivoDecrementa(t *testing.T) {
	env := newLinkEnv(t)
	pending := env.request(t)
	_, err := env.uc.Accept(context.Background(), pending.ID, "client-1")
	require.NoError(t, err)

	resp, err := env.uc.CancelByClient(context.Background(), pending.ID, "client-1")
	require.NoError(t, err)

	assert.Equal(t, "cancelled_by_client", resp.Status)
	require.NotNil(t, resp.EndedAt)

	profile, _ := env.nutritionists.FindByUserID("nutri-1")
	assert.Equal(t, 0, profile.ActiveClientsCount(), "encerramento de vínculo ativo devolve a vaga")
}

func TestLinkUseCase_CancelamentoDePendenteNaoDecrementa(t *testing.T) {
	env := newLinkEnv(t)
	pending := env.request(t)

	resp, err := env.uc.CancelByClient(context.Background(), pending.ID, "client-1")
	require.NoError(t, err)

	assert.Equal(t, "cancelled_by_client", resp.Status)
	profile, _ := env.nutritionists.FindByUserID("nutri-1")
	assert.Equal(t, 0, profile.ActiveClientsCount())
}

func TestLinkUseCase_NutricionistaSoCancelaAtivo(t *testing.T) {
	env := newLinkEnv(t)
	pending := env.request(t)

	_, err := env.uc.CancelByNutritionist(context.Background(), pending.ID, "nutri-1")
	assert.True(t, domain.IsBusinessRuleError(err), "cancelamento pelo nutricionista exige vínculo ativo")

	_, err = env.uc.Accept(context.Background(), pending.ID, "client-1")
	require.NoError(t, err)

	resp, err := env.uc.CancelByNutritionist(context.Background(), pending.ID, "nutri-1")
	require.NoError(t, err)
	assert.Equal(t, "cancelled_by_nutritionist", resp.Status)

	profile, _ := env.nutritionists.FindByUserID("nutri-1")
	assert.Equal(t, 0, profile.ActiveClientsCount())
}

func TestLinkUseCase_NovoVinculoAposEncerramento(t *testing.T) {
	env := newLinkEnv(t)
	pending := env.request(t)
	_, err := env.uc.Reject(pending.ID, "client-1")
	require.NoError(t, err)

	// Vínculo encerrado não bloqueia uma nova solicitação do mesmo par.
	resp, err := env.uc.Request("nutri-1", dto.LinkRequestInput{ClientID: "client-1"})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.NotEqual(t, pending.ID, resp.ID)
}
