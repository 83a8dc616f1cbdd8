package ports

import (
	"context"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
)

// MealAnalysisService porta de saída para o provedor de IA que analisa
// refeições. Qualquer adaptador (Gemini, OpenAI, mock) implementa este
// contrato; a aplicação só conhece o formato do resultado.
type MealAnalysisService interface {
	// AnalyzeMeal recebe foto (base64), transcrição de áudio ou descrição
	// textual e devolve alimentos, calorias, macros e confiança estimados.
	// O contexto deve carregar timeout para não bloquear em chamadas externas.
	AnalyzeMeal(ctx context.Context, in dto.AnalyzeMealRequest) (*dto.MealAnalysisDTO, error)
}
