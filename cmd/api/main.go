package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/auth"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/usecase"
	infraai "github.com/JanderLiborio20/softfit-sub000/internal/infrastructure/ai"
	infrapdf "github.com/JanderLiborio20/softfit-sub000/internal/infrastructure/pdf"
	"github.com/JanderLiborio20/softfit-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/JanderLiborio20/softfit-sub000/internal/interfaces/http"
	"github.com/JanderLiborio20/softfit-sub000/pkg/config"
	"github.com/JanderLiborio20/softfit-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientProfileRepo := postgres.NewClientProfileRepository(pool)
	nutritionistRepo := postgres.NewNutritionistProfileRepository(pool)
	linkRepo := postgres.NewLinkRepository(pool)
	mealRepo := postgres.NewMealRepository(pool)
	planRepo := postgres.NewNutritionPlanRepository(pool)
	workoutRepo := postgres.NewWorkoutRepository(pool)
	hydrationRepo := postgres.NewHydrationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, nil)
	onboardingUC := usecase.NewOnboardingUseCase(userRepo, clientProfileRepo, nil)
	profileUC := usecase.NewProfileUseCase(clientProfileRepo, nil)
	nutritionistUC := usecase.NewNutritionistUseCase(userRepo, nutritionistRepo, nil)
	linkUC := usecase.NewLinkUseCase(userRepo, nutritionistRepo, linkRepo, txRunner, nil)
	mealUC := usecase.NewMealUseCase(mealRepo, clientProfileRepo, hydrationRepo, geminiSvc, nil)
	planUC := usecase.NewPlanUseCase(linkRepo, planRepo, userRepo, nutritionistRepo, txRunner, pdfGenerator, nil)
	workoutUC := usecase.NewWorkoutUseCase(workoutRepo, nil)
	hydrationUC := usecase.NewHydrationUseCase(hydrationRepo, nil)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // export de PDF pode demorar mais
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024, // fotos de refeição em base64
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SoftFit API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		OnboardingUC:   onboardingUC,
		ProfileUC:      profileUC,
		NutritionistUC: nutritionistUC,
		LinkUC:         linkUC,
		MealUC:         mealUC,
		PlanUC:         planUC,
		WorkoutUC:      workoutUC,
		HydrationUC:    hydrationUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
