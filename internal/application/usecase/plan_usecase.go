package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/ports"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
)

// PlanUseCase orquestra planos alimentares. A troca de plano ativo roda em
// transação: no máximo um plano ativo por cliente, garantido aqui e não por
// constraint de banco.
type PlanUseCase struct {
	links         repository.LinkRepository
	plans         repository.NutritionPlanRepository
	users         repository.UserRepository
	nutritionists repository.NutritionistProfileRepository
	tx            PlanTxRunner
	pdf           ports.PlanPDFGenerator
	now           func() time.Time
}

// NewPlanUseCase constrói o caso de uso de planos.
func NewPlanUseCase(
	links repository.LinkRepository,
	plans repository.NutritionPlanRepository,
	users repository.UserRepository,
	nutritionists repository.NutritionistProfileRepository,
	tx PlanTxRunner,
	pdf ports.PlanPDFGenerator,
	now func() time.Time,
) *PlanUseCase {
	if now == nil {
		now = time.Now
	}
	return &PlanUseCase{links: links, plans: plans, users: users, nutritionists: nutritionists, tx: tx, pdf: pdf, now: now}
}

// Create emite um plano para um cliente com vínculo ativo. Qualquer plano
// ativo anterior do cliente é desativado na mesma transação.
func (uc *PlanUseCase) Create(ctx context.Context, nutritionistUserID string, in dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	active := []entity.LinkStatus{entity.LinkStatusActive}
	link, err := uc.links.FindByClientAndNutritionist(in.ClientID, nutritionistUserID, active)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, domain.NewBusinessRuleError("criação de plano requer vínculo ativo com o cliente")
	}

	meals := make([]entity.PlannedMeal, 0, len(in.PlannedMeals))
	for _, pm := range in.PlannedMeals {
		meals = append(meals, entity.PlannedMeal{
			Name:          pm.Name,
			ScheduledTime: pm.ScheduledTime,
			Foods:         pm.Foods,
			Portions:      pm.Portions,
		})
	}

	now := uc.now()
	plan, err := entity.NewNutritionPlan(entity.NutritionPlanParams{
		NutritionistID:    nutritionistUserID,
		ClientID:          in.ClientID,
		Title:             in.Title,
		Description:       in.Description,
		PlannedMeals:      meals,
		GeneralGuidelines: in.GeneralGuidelines,
		DurationDays:      in.DurationDays,
		StartDate:         in.StartDate,
	}, now)
	if err != nil {
		return nil, err
	}

	err = uc.tx.RunPlan(ctx, func(plans repository.NutritionPlanRepository) error {
		prior, err := plans.FindActiveByClientID(in.ClientID)
		if err != nil {
			return err
		}
		if prior != nil {
			deactivated, err := prior.Deactivate(now)
			if err != nil {
				return err
			}
			if err := plans.Update(deactivated); err != nil {
				return err
			}
		}
		return plans.Create(plan)
	})
	if err != nil {
		return nil, err
	}
	return toPlanResponse(plan, now), nil
}

// Get devolve o plano para o nutricionista emissor ou o cliente destinatário.
func (uc *PlanUseCase) Get(planID, requesterUserID string) (*dto.PlanResponse, error) {
	plan, err := uc.findAccessible(planID, requesterUserID)
	if err != nil {
		return nil, err
	}
	return toPlanResponse(plan, uc.now()), nil
}

// Deactivate desliga o plano. Somente o nutricionista emissor.
func (uc *PlanUseCase) Deactivate(planID, nutritionistUserID string) (*dto.PlanResponse, error) {
	plan, err := uc.plans.FindByID(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	if plan.NutritionistID() != nutritionistUserID {
		return nil, domain.ErrForbidden
	}
	now := uc.now()
	deactivated, err := plan.Deactivate(now)
	if err != nil {
		return nil, err
	}
	if err := uc.plans.Update(deactivated); err != nil {
		return nil, err
	}
	return toPlanResponse(deactivated, now), nil
}

// ListByClient lista os planos recebidos pelo cliente autenticado.
func (uc *PlanUseCase) ListByClient(clientUserID string) ([]*dto.PlanResponse, error) {
	plans, err := uc.plans.ListByClient(clientUserID)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(plans), nil
}

// ListByNutritionist lista os planos emitidos pelo nutricionista autenticado.
func (uc *PlanUseCase) ListByNutritionist(nutritionistUserID string) ([]*dto.PlanResponse, error) {
	plans, err := uc.plans.ListByNutritionist(nutritionistUserID)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(plans), nil
}

// ExportPDF gera o PDF do plano para download. Acesso restrito ao
// nutricionista emissor e ao cliente destinatário.
func (uc *PlanUseCase) ExportPDF(ctx context.Context, planID, requesterUserID string) ([]byte, string, error) {
	plan, err := uc.findAccessible(planID, requesterUserID)
	if err != nil {
		return nil, "", err
	}
	nutritionist, err := uc.nutritionists.FindByUserID(plan.NutritionistID())
	if err != nil {
		return nil, "", err
	}
	clientName := ""
	if client, err := uc.users.FindByID(plan.ClientID()); err == nil && client != nil {
		clientName = client.Name()
	}
	pdfBytes, err := uc.pdf.GeneratePlanPDF(ctx, plan, nutritionist, clientName)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("plano-alimentar-%s.pdf", plan.ID())
	return pdfBytes, filename, nil
}

func (uc *PlanUseCase) findAccessible(planID, requesterUserID string) (*entity.NutritionPlan, error) {
	plan, err := uc.plans.FindByID(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	if plan.NutritionistID() != requesterUserID && plan.ClientID() != requesterUserID {
		return nil, domain.ErrForbidden
	}
	return plan, nil
}

func (uc *PlanUseCase) toResponses(plans []*entity.NutritionPlan) []*dto.PlanResponse {
	now := uc.now()
	out := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPlanResponse(p, now))
	}
	return out
}
