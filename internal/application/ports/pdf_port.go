package ports

import (
	"context"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
)

// PlanPDFGenerator porta de saída para exportar um plano alimentar em PDF.
type PlanPDFGenerator interface {
	GeneratePlanPDF(
		ctx context.Context,
		plan *entity.NutritionPlan,
		nutritionist *entity.NutritionistProfile,
		clientName string,
	) ([]byte, error)
}
