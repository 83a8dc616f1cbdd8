package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/auth"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	OnboardingUC   *usecase.OnboardingUseCase
	ProfileUC      *usecase.ProfileUseCase
	NutritionistUC *usecase.NutritionistUseCase
	LinkUC         *usecase.LinkUseCase
	MealUC         *usecase.MealUseCase
	PlanUC         *usecase.PlanUseCase
	WorkoutUC      *usecase.WorkoutUseCase
	HydrationUC    *usecase.HydrationUseCase
	JWTSecret      string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Put("/auth/password", authHandler.ChangePassword)

	// Perfil do cliente (protegido)
	profileHandler := NewProfileHandler(deps.OnboardingUC, deps.ProfileUC)
	protected.Post("/onboarding", profileHandler.CompleteOnboarding)
	profile := protected.Group("/profile")
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Update)
	profile.Put("/goals", profileHandler.SetManualGoals)

	// Refeições e resumo diário (protegido)
	mealHandler := NewMealHandler(deps.MealUC)
	meals := protected.Group("/meals")
	meals.Post("/analyze", mealHandler.Analyze)
	meals.Post("/", mealHandler.Confirm)
	meals.Get("/", mealHandler.ListByDate)
	meals.Put("/:id", mealHandler.Update)
	meals.Delete("/:id", mealHandler.Delete)
	protected.Get("/summary", mealHandler.DailySummary)

	// Hidratação (protegido)
	hydrationHandler := NewHydrationHandler(deps.HydrationUC)
	hydration := protected.Group("/hydration")
	hydration.Post("/", hydrationHandler.Log)
	hydration.Get("/", hydrationHandler.ListByDate)
	hydration.Get("/total", hydrationHandler.DailyTotal)

	// Treinos (protegido)
	workoutHandler := NewWorkoutHandler(deps.WorkoutUC)
	workouts := protected.Group("/workouts")
	workouts.Post("/", workoutHandler.Create)
	workouts.Get("/", workoutHandler.List)
	workouts.Get("/:id", workoutHandler.Get)
	workouts.Put("/:id", workoutHandler.Update)
	workouts.Delete("/:id", workoutHandler.Delete)

	// Vínculos vistos pelo cliente (protegido)
	linkHandler := NewLinkHandler(deps.LinkUC)
	links := protected.Group("/links")
	links.Get("/", linkHandler.ListByClient)
	links.Post("/:id/accept", linkHandler.Accept)
	links.Post("/:id/reject", linkHandler.Reject)
	links.Delete("/:id", linkHandler.CancelByClient)

	// Planos vistos pelo cliente ou pelo emissor (protegido)
	planHandler := NewPlanHandler(deps.PlanUC)
	plans := protected.Group("/plans")
	plans.Get("/", planHandler.ListByClient)
	plans.Get("/:id", planHandler.Get)
	plans.Get("/:id/pdf", planHandler.ExportPDF)

	// Área do nutricionista (protegido + role)
	nutritionistHandler := NewNutritionistHandler(deps.NutritionistUC)
	nutri := protected.Group("/nutritionist", RequireNutritionist())
	nutri.Post("/profile", nutritionistHandler.CreateProfile)
	nutri.Get("/profile", nutritionistHandler.Get)
	nutri.Put("/profile", nutritionistHandler.UpdateInfo)
	nutri.Post("/links", linkHandler.Request)
	nutri.Get("/links", linkHandler.ListByNutritionist)
	nutri.Delete("/links/:id", linkHandler.CancelByNutritionist)
	nutri.Post("/plans", planHandler.Create)
	nutri.Get("/plans", planHandler.ListByNutritionist)
	nutri.Post("/plans/:id/deactivate", planHandler.Deactivate)
}
