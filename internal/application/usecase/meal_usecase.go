package usecase

import (
	"context"
	"time"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/ports"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/valueobject"
)

// MealUseCase registro de refeições: análise por IA, confirmação, edição
// dentro da janela de 7 dias e resumo diário contra as metas.
type MealUseCase struct {
	meals     repository.MealRepository
	profiles  repository.ClientProfileRepository
	hydration repository.HydrationRepository
	ai        ports.MealAnalysisService
	now       func() time.Time
}

// NewMealUseCase constrói o caso de uso de refeições.
func NewMealUseCase(
	meals repository.MealRepository,
	profiles repository.ClientProfileRepository,
	hydration repository.HydrationRepository,
	ai ports.MealAnalysisService,
	now func() time.Time,
) *MealUseCase {
	if now == nil {
		now = time.Now
	}
	return &MealUseCase{meals: meals, profiles: profiles, hydration: hydration, ai: ai, now: now}
}

// Analyze delega a análise ao provedor de IA. Nada é persistido aqui; o
// resultado volta para o cliente revisar antes da confirmação.
func (uc *MealUseCase) Analyze(ctx context.Context, in dto.AnalyzeMealRequest) (*dto.MealAnalysisDTO, error) {
	if in.ImageBase64 == "" && in.AudioTranscript == "" && in.Description == "" {
		return nil, domain.NewDomainError("análise requer foto, transcrição de áudio ou descrição")
	}
	return uc.ai.AnalyzeMeal(ctx, in)
}

// Confirm persiste a refeição revisada e devolve os campos derivados de idade.
func (uc *MealUseCase) Confirm(userID string, in dto.ConfirmMealRequest) (*dto.MealResponse, error) {
	macros, err := valueobject.NewMacros(in.Macros.CarbsGrams, in.Macros.ProteinGrams, in.Macros.FatGrams)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	meal, err := entity.NewMeal(entity.MealParams{
		UserID:     userID,
		Name:       in.Name,
		ImageURL:   in.ImageURL,
		AudioURL:   in.AudioURL,
		Foods:      in.Foods,
		Calories:   in.Calories,
		Macros:     macros,
		MealTime:   in.MealTime,
		Confidence: in.Confidence,
	}, now)
	if err != nil {
		return nil, err
	}
	if err := uc.meals.Create(meal); err != nil {
		return nil, err
	}
	return toMealResponse(meal, now), nil
}

// Update edita a refeição dentro da janela de 7 dias. Fora da janela a
// entidade recusa com erro de regra de negócio.
func (uc *MealUseCase) Update(mealID, userID string, in dto.UpdateMealRequest) (*dto.MealResponse, error) {
	meal, err := uc.findOwned(mealID, userID)
	if err != nil {
		return nil, err
	}
	macros, err := valueobject.NewMacros(in.Macros.CarbsGrams, in.Macros.ProteinGrams, in.Macros.FatGrams)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	updated, err := meal.Update(in.Name, in.Foods, in.Calories, macros, in.MealTime, now)
	if err != nil {
		return nil, err
	}
	if err := uc.meals.Update(updated); err != nil {
		return nil, err
	}
	return toMealResponse(updated, now), nil
}

// Delete remove a refeição em definitivo. Refeições não têm soft delete.
func (uc *MealUseCase) Delete(mealID, userID string) error {
	meal, err := uc.findOwned(mealID, userID)
	if err != nil {
		return err
	}
	return uc.meals.Delete(meal.ID())
}

// ListByDate lista as refeições do dia (AAAA-MM-DD).
func (uc *MealUseCase) ListByDate(userID, date string) ([]*dto.MealResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	meals, err := uc.meals.ListByUserAndDate(userID, day)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	out := make([]*dto.MealResponse, 0, len(meals))
	for _, m := range meals {
		out = append(out, toMealResponse(m, now))
	}
	return out, nil
}

// DailySummary cruza o consumo do dia com as metas do perfil e o total de
// hidratação. Requer onboarding completo.
func (uc *MealUseCase) DailySummary(userID, date string) (*dto.DailySummaryResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	profile, err := uc.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}

	meals, err := uc.meals.ListByUserAndDate(userID, day)
	if err != nil {
		return nil, err
	}
	totalCalories, err := uc.meals.GetTotalCaloriesByUserAndDate(userID, day)
	if err != nil {
		return nil, err
	}
	totalMl, err := uc.hydration.GetTotalVolumeByUserAndDate(userID, day)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	var totals dto.MacrosResponse
	responses := make([]dto.MealResponse, 0, len(meals))
	for _, m := range meals {
		macros := m.Macros()
		totals.CarbsGrams += macros.Carbs()
		totals.ProteinGrams += macros.Protein()
		totals.FatGrams += macros.Fat()
		totals.TotalCalories += macros.TotalCalories()
		responses = append(responses, *toMealResponse(m, now))
	}

	return &dto.DailySummaryResponse{
		Date:              day.Format(dateLayout),
		TotalCalories:     totalCalories,
		TotalMacros:       totals,
		CaloriesGoal:      profile.DailyCaloriesGoal(),
		MacrosGoal:        toMacrosResponse(profile.DailyMacrosGoal()),
		RemainingCalories: float64(profile.DailyCaloriesGoal()) - totalCalories,
		HydrationTotalMl:  totalMl,
		Meals:             responses,
	}, nil
}

func (uc *MealUseCase) findOwned(mealID, userID string) (*entity.Meal, error) {
	meal, err := uc.meals.FindByID(mealID)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, domain.ErrNotFound
	}
	if meal.UserID() != userID {
		return nil, domain.ErrForbidden
	}
	return meal, nil
}
