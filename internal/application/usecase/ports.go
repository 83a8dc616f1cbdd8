package usecase

import (
	"context"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
)

// LinkTxRunner executa o aceite e os cancelamentos de vínculo numa transação:
// a mudança de status e o contador de clientes ativos mudam juntos ou nada muda.
type LinkTxRunner interface {
	RunLink(ctx context.Context, fn func(
		links repository.LinkRepository,
		nutritionists repository.NutritionistProfileRepository,
	) error) error
}

// PlanTxRunner executa a troca de plano ativo numa transação: desativar o
// plano anterior e criar o novo é atômico, preservando no máximo um ativo.
type PlanTxRunner interface {
	RunPlan(ctx context.Context, fn func(
		plans repository.NutritionPlanRepository,
	) error) error
}
