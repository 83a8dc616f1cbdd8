package usecase

import (
	"time"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/valueobject"
)

const dateLayout = "2006-01-02"

// parseDate interpreta datas no formato AAAA-MM-DD vindas de query ou body.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, domain.NewDomainError("data inválida, use AAAA-MM-DD: %s", s)
	}
	return t, nil
}

func toMacrosResponse(m valueobject.Macros) dto.MacrosResponse {
	return dto.MacrosResponse{
		CarbsGrams:    m.Carbs(),
		ProteinGrams:  m.Protein(),
		FatGrams:      m.Fat(),
		TotalCalories: m.TotalCalories(),
	}
}

func toClientProfileResponse(p *entity.ClientProfile, now time.Time) *dto.ClientProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ClientProfileResponse{
		UserID:            p.UserID(),
		DateOfBirth:       p.DateOfBirth().Format(dateLayout),
		Gender:            string(p.Gender()),
		HeightCm:          p.HeightCm(),
		WeightKg:          p.WeightKg(),
		Goal:              string(p.Goal()),
		ActivityLevel:     string(p.ActivityLevel()),
		Age:               p.Age(now),
		BMI:               p.BMI(),
		DailyCaloriesGoal: p.DailyCaloriesGoal(),
		DailyMacrosGoal:   toMacrosResponse(p.DailyMacrosGoal()),
		IsGoalManuallySet: p.IsGoalManuallySet(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

func toNutritionistProfileResponse(p *entity.NutritionistProfile) *dto.NutritionistProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.NutritionistProfileResponse{
		UserID:             p.UserID(),
		CRN:                p.CRN(),
		CRNState:           p.CRNState(),
		FullName:           p.FullName(),
		Bio:                p.Bio(),
		Specialties:        p.Specialties(),
		IsVerified:         p.IsVerified(),
		ActiveClientsCount: p.ActiveClientsCount(),
		CreatedAt:          p.CreatedAt(),
		UpdatedAt:          p.UpdatedAt(),
	}
}

func toLinkResponse(l *entity.ClientNutritionistLink) *dto.LinkResponse {
	if l == nil {
		return nil
	}
	return &dto.LinkResponse{
		ID:             l.ID(),
		ClientID:       l.ClientID(),
		NutritionistID: l.NutritionistID(),
		Status:         string(l.Status()),
		RequestedAt:    l.RequestedAt(),
		RespondedAt:    l.RespondedAt(),
		EndedAt:        l.EndedAt(),
	}
}

func toMealResponse(m *entity.Meal, now time.Time) *dto.MealResponse {
	if m == nil {
		return nil
	}
	return &dto.MealResponse{
		ID:          m.ID(),
		UserID:      m.UserID(),
		Name:        m.Name(),
		ImageURL:    m.ImageURL(),
		AudioURL:    m.AudioURL(),
		Foods:       m.Foods(),
		Calories:    m.Calories(),
		Macros:      toMacrosResponse(m.Macros()),
		MealTime:    m.MealTime(),
		Confidence:  m.Confidence(),
		CanBeEdited: m.CanBeEdited(now),
		AgeInDays:   m.AgeInDays(now),
		CreatedAt:   m.CreatedAt(),
		UpdatedAt:   m.UpdatedAt(),
	}
}

func toPlannedMealInputs(meals []entity.PlannedMeal) []dto.PlannedMealInput {
	out := make([]dto.PlannedMealInput, 0, len(meals))
	for _, pm := range meals {
		out = append(out, dto.PlannedMealInput{
			Name:          pm.Name,
			ScheduledTime: pm.ScheduledTime,
			Foods:         pm.Foods,
			Portions:      pm.Portions,
		})
	}
	return out
}

func toPlanResponse(p *entity.NutritionPlan, now time.Time) *dto.PlanResponse {
	if p == nil {
		return nil
	}
	return &dto.PlanResponse{
		ID:                p.ID(),
		NutritionistID:    p.NutritionistID(),
		ClientID:          p.ClientID(),
		Title:             p.Title(),
		Description:       p.Description(),
		PlannedMeals:      toPlannedMealInputs(p.PlannedMeals()),
		GeneralGuidelines: p.GeneralGuidelines(),
		DurationDays:      p.DurationDays(),
		StartDate:         p.StartDate(),
		EndDate:           p.EndDate(),
		DaysRemaining:     p.DaysRemaining(now),
		IsActive:          p.IsActive(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

func toWorkoutResponse(w *entity.Workout) *dto.WorkoutResponse {
	if w == nil {
		return nil
	}
	exercises := make([]dto.ExerciseInput, 0, len(w.Exercises()))
	for _, e := range w.Exercises() {
		exercises = append(exercises, dto.ExerciseInput{
			Name:        e.Name,
			MuscleGroup: string(e.MuscleGroup),
			Sets:        e.Sets,
			Reps:        e.Reps,
			RestSeconds: e.RestSeconds,
			Order:       e.Order,
		})
	}
	return &dto.WorkoutResponse{
		ID:        w.ID(),
		UserID:    w.UserID(),
		Name:      w.Name(),
		Type:      string(w.Type()),
		Exercises: exercises,
		Notes:     w.Notes(),
		CreatedAt: w.CreatedAt(),
		UpdatedAt: w.UpdatedAt(),
	}
}

func toHydrationResponse(h *entity.Hydration) *dto.HydrationResponse {
	if h == nil {
		return nil
	}
	return &dto.HydrationResponse{
		ID:        h.ID(),
		UserID:    h.UserID(),
		VolumeMl:  h.VolumeMl(),
		DrinkType: string(h.DrinkType()),
		Icon:      h.Icon(),
		Timestamp: h.Timestamp(),
		CreatedAt: h.CreatedAt(),
	}
}
