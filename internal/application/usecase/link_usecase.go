package usecase

import (
	"context"
	"time"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
)

// LinkUseCase orquestra o ciclo de vida do vínculo cliente-nutricionista.
// Aceite e cancelamento de vínculo ativo rodam em transação porque o
// contador de clientes ativos do nutricionista muda junto com o status.
type LinkUseCase struct {
	users         repository.UserRepository
	nutritionists repository.NutritionistProfileRepository
	links         repository.LinkRepository
	tx            LinkTxRunner
	now           func() time.Time
}

// NewLinkUseCase constrói o caso de uso de vínculos.
func NewLinkUseCase(
	users repository.UserRepository,
	nutritionists repository.NutritionistProfileRepository,
	links repository.LinkRepository,
	tx LinkTxRunner,
	now func() time.Time,
) *LinkUseCase {
	if now == nil {
		now = time.Now
	}
	return &LinkUseCase{users: users, nutritionists: nutritionists, links: links, tx: tx, now: now}
}

// Request cria a solicitação de vínculo partindo do nutricionista.
// Pré-condições: perfil profissional existente, alvo com papel client,
// nenhum vínculo pendente ou ativo entre o par e capacidade disponível.
func (uc *LinkUseCase) Request(nutritionistUserID string, in dto.LinkRequestInput) (*dto.LinkResponse, error) {
	profile, err := uc.nutritionists.FindByUserID(nutritionistUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.NewBusinessRuleError("solicitação de vínculo requer perfil profissional cadastrado")
	}
	if profile.ActiveClientsCount() >= entity.MaxActiveClients {
		return nil, domain.NewBusinessRuleError("limite de %d clientes ativos atingido", entity.MaxActiveClients)
	}

	target, err := uc.users.FindByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}
	if target.Role() != entity.RoleClient {
		return nil, domain.NewBusinessRuleError("vínculo só pode ser solicitado para usuários com papel client")
	}

	open := []entity.LinkStatus{entity.LinkStatusPending, entity.LinkStatusActive}
	existing, err := uc.links.FindByClientAndNutritionist(in.ClientID, nutritionistUserID, open)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrLinkAlreadyExists
	}

	link, err := entity.NewLinkRequest(in.ClientID, nutritionistUserID, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.links.Create(link); err != nil {
		return nil, err
	}
	return toLinkResponse(link), nil
}

// Accept transita o vínculo para ativo e incrementa o contador do
// nutricionista na mesma transação. Só o cliente do vínculo pode aceitar.
func (uc *LinkUseCase) Accept(ctx context.Context, linkID, clientUserID string) (*dto.LinkResponse, error) {
	link, err := uc.findOwnedByClient(linkID, clientUserID)
	if err != nil {
		return nil, err
	}
	accepted, err := link.Accept(uc.now())
	if err != nil {
		return nil, err
	}

	err = uc.tx.RunLink(ctx, func(links repository.LinkRepository, nutritionists repository.NutritionistProfileRepository) error {
		profile, err := nutritionists.FindByUserID(link.NutritionistID())
		if err != nil {
			return err
		}
		if profile == nil {
			return domain.ErrNotFound
		}
		incremented, err := profile.IncrementActiveClients(uc.now())
		if err != nil {
			return err
		}
		if err := links.Update(accepted); err != nil {
			return err
		}
		return nutritionists.Update(incremented)
	})
	if err != nil {
		return nil, err
	}
	return toLinkResponse(accepted), nil
}

// Reject recusa a solicitação pendente. Não mexe no contador.
func (uc *LinkUseCase) Reject(linkID, clientUserID string) (*dto.LinkResponse, error) {
	link, err := uc.findOwnedByClient(linkID, clientUserID)
	if err != nil {
		return nil, err
	}
	rejected, err := link.Reject(uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.links.Update(rejected); err != nil {
		return nil, err
	}
	return toLinkResponse(rejected), nil
}

// CancelByClient encerra o vínculo pelo lado do cliente. Se o vínculo
// estava ativo, o contador do nutricionista decrementa na mesma transação.
func (uc *LinkUseCase) CancelByClient(ctx context.Context, linkID, clientUserID string) (*dto.LinkResponse, error) {
	link, err := uc.findOwnedByClient(linkID, clientUserID)
	if err != nil {
		return nil, err
	}
	wasActive := link.IsActive()
	cancelled, err := link.CancelByClient(uc.now())
	if err != nil {
		return nil, err
	}
	if !wasActive {
		if err := uc.links.Update(cancelled); err != nil {
			return nil, err
		}
		return toLinkResponse(cancelled), nil
	}
	if err := uc.endActiveLink(ctx, cancelled); err != nil {
		return nil, err
	}
	return toLinkResponse(cancelled), nil
}

// CancelByNutritionist encerra o vínculo ativo pelo lado do nutricionista.
func (uc *LinkUseCase) CancelByNutritionist(ctx context.Context, linkID, nutritionistUserID string) (*dto.LinkResponse, error) {
	link, err := uc.links.FindByID(linkID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, domain.ErrNotFound
	}
	if link.NutritionistID() != nutritionistUserID {
		return nil, domain.ErrForbidden
	}
	cancelled, err := link.CancelByNutritionist(uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.endActiveLink(ctx, cancelled); err != nil {
		return nil, err
	}
	return toLinkResponse(cancelled), nil
}

// ListByClient lista os vínculos do cliente autenticado.
func (uc *LinkUseCase) ListByClient(clientUserID string) ([]*dto.LinkResponse, error) {
	links, err := uc.links.ListByClient(clientUserID)
	if err != nil {
		return nil, err
	}
	return toLinkResponses(links), nil
}

// ListByNutritionist lista os vínculos do nutricionista autenticado.
func (uc *LinkUseCase) ListByNutritionist(nutritionistUserID string) ([]*dto.LinkResponse, error) {
	links, err := uc.links.ListByNutritionist(nutritionistUserID)
	if err != nil {
		return nil, err
	}
	return toLinkResponses(links), nil
}

func (uc *LinkUseCase) findOwnedByClient(linkID, clientUserID string) (*entity.ClientNutritionistLink, error) {
	link, err := uc.links.FindByID(linkID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, domain.ErrNotFound
	}
	if link.ClientID() != clientUserID {
		return nil, domain.ErrForbidden
	}
	return link, nil
}

// endActiveLink grava o encerramento e decrementa o contador na mesma transação.
func (uc *LinkUseCase) endActiveLink(ctx context.Context, cancelled *entity.ClientNutritionistLink) error {
	return uc.tx.RunLink(ctx, func(links repository.LinkRepository, nutritionists repository.NutritionistProfileRepository) error {
		profile, err := nutritionists.FindByUserID(cancelled.NutritionistID())
		if err != nil {
			return err
		}
		if profile == nil {
			return domain.ErrNotFound
		}
		decremented, err := profile.DecrementActiveClients(uc.now())
		if err != nil {
			return err
		}
		if err := links.Update(cancelled); err != nil {
			return err
		}
		return nutritionists.Update(decremented)
	})
}

func toLinkResponses(links []*entity.ClientNutritionistLink) []*dto.LinkResponse {
	out := make([]*dto.LinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, toLinkResponse(l))
	}
	return out
}
