package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
)

var linkNow = time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

func newPendingLink(t *testing.T) *entity.ClientNutritionistLink {
	t.Helper()
	link, err := entity.NewLinkRequest("client-1", "nutri-1", linkNow)
	require.NoError(t, err)
	return link
}

func TestNewLinkRequest_ComecaPendente(t *testing.T) {
	link := newPendingLink(t)

	assert.Equal(t, entity.LinkStatusPending, link.Status())
	assert.Equal(t, linkNow, link.RequestedAt())
	assert.Nil(t, link.RespondedAt())
	assert.Nil(t, link.EndedAt())
}

func TestNewLinkRequest_ClienteIgualNutricionista(t *testing.T) {
	_, err := entity.NewLinkRequest("user-1", "user-1", linkNow)
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err))
}

func TestNewLinkRequest_CamposObrigatorios(t *testing.T) {
	_, err := entity.NewLinkRequest("", "nutri-1", linkNow)
	assert.Error(t, err)

	_, err = entity.NewLinkRequest("client-1", "", linkNow)
	assert.Error(t, err)
}

func TestLink_AceitarPendente(t *testing.T) {
	link := newPendingLink(t)
	later := linkNow.Add(time.Hour)

	accepted, err := link.Accept(later)
	require.NoError(t, err)

	assert.Equal(t, entity.LinkStatusActive, accepted.Status())
	require.NotNil(t, accepted.RespondedAt())
	assert.Equal(t, later, *accepted.RespondedAt())
	assert.Nil(t, accepted.EndedAt())
	// original intacto: transições retornam nova instância
	assert.Equal(t, entity.LinkStatusPending, link.Status())
}

func TestLink_AceitarJaAtivoFalha(t *testing.T) {
	link := newPendingLink(t)
	accepted, err := link.Accept(linkNow.Add(time.Hour))
	require.NoError(t, err)

	_, err = accepted.Accept(linkNow.Add(2 * time.Hour))
	require.Error(t, err)
	assert.True(t, domain.IsBusinessRuleError(err))
	assert.Contains(t, err.Error(), "active", "erro deve citar o estado de origem")
}

func TestLink_RecusarPendente(t *testing.T) {
	link := newPendingLink(t)
	later := linkNow.Add(time.Hour)

	rejected, err := link.Reject(later)
	require.NoError(t, err)

	assert.Equal(t, entity.LinkStatusRejected, rejected.Status())
	require.NotNil(t, rejected.RespondedAt())
	require.NotNil(t, rejected.EndedAt())
	assert.Equal(t, later, *rejected.EndedAt())
}

func TestLink_CancelarPeloClienteDePendenteEAtivo(t *testing.T) {
	// cliente pode retirar uma solicitação ainda sem resposta
	pending := newPendingLink(t)
	cancelled, err := pending.CancelByClient(linkNow.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, entity.LinkStatusCancelledByClient, cancelled.Status())
	require.NotNil(t, cancelled.EndedAt())

	// e também encerrar um vínculo já ativo
	active, err := newPendingLink(t).Accept(linkNow.Add(time.Hour))
	require.NoError(t, err)
	cancelled, err = active.CancelByClient(linkNow.Add(2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, entity.LinkStatusCancelledByClient, cancelled.Status())
}

func TestLink_CancelarPeloNutricionistaSomenteAtivo(t *testing.T) {
	pending := newPendingLink(t)
	_, err := pending.CancelByNutritionist(linkNow.Add(time.Hour))
	require.Error(t, err)
	assert.True(t, domain.IsBusinessRuleError(err))

	active, err := pending.Accept(linkNow.Add(time.Hour))
	require.NoError(t, err)
	cancelled, err := active.CancelByNutritionist(linkNow.Add(2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, entity.LinkStatusCancelledByNutritionist, cancelled.Status())
}

func TestLink_TransicoesDeEstadoTerminalFalham(t *testing.T) {
	rejected, err := newPendingLink(t).Reject(linkNow.Add(time.Hour))
	require.NoError(t, err)

	_, err = rejected.Accept(linkNow.Add(2 * time.Hour))
	assert.True(t, domain.IsBusinessRuleError(err))
	_, err = rejected.Reject(linkNow.Add(2 * time.Hour))
	assert.True(t, domain.IsBusinessRuleError(err))
	_, err = rejected.CancelByClient(linkNow.Add(2 * time.Hour))
	assert.True(t, domain.IsBusinessRuleError(err))
	_, err = rejected.CancelByNutritionist(linkNow.Add(2 * time.Hour))
	assert.True(t, domain.IsBusinessRuleError(err))
}

func TestReconstituteLink_RevalidaInvariantes(t *testing.T) {
	respondedAt := linkNow.Add(time.Hour)
	link, err := entity.ReconstituteLink("link-1", "client-1", "nutri-1",
		entity.LinkStatusActive, linkNow, &respondedAt, nil, respondedAt)
	require.NoError(t, err)
	assert.Equal(t, "link-1", link.ID())
	assert.True(t, link.IsActive())

	_, err = entity.ReconstituteLink("link-1", "user-1", "user-1",
		entity.LinkStatusActive, linkNow, nil, nil, linkNow)
	assert.Error(t, err, "reidratação repete a validação de invariantes")

	_, err = entity.ReconstituteLink("link-1", "client-1", "nutri-1",
		entity.LinkStatus("weird"), linkNow, nil, nil, linkNow)
	assert.Error(t, err)
}
