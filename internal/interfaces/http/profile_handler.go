package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/usecase"
)

// ProfileHandler trata onboarding e perfil do cliente (protegido).
type ProfileHandler struct {
	onboarding *usecase.OnboardingUseCase
	profile    *usecase.ProfileUseCase
}

// NewProfileHandler constrói o handler de perfil.
func NewProfileHandler(onboarding *usecase.OnboardingUseCase, profile *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{onboarding: onboarding, profile: profile}
}

// CompleteOnboarding godoc
// @Summary      Completar onboarding do cliente
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.OnboardingRequest  true  "dados corporais e objetivo"
// @Success      201   {object}  dto.ClientProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/onboarding [post]
func (h *ProfileHandler) CompleteOnboarding(c *fiber.Ctx) error {
	var in dto.OnboardingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	profile, err := h.onboarding.Complete(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// Get godoc
// @Summary      Obter perfil do cliente autenticado
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ClientProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.profile.Get(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// Update godoc
// @Summary      Atualizar dados corporais (recalcula metas)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateProfileRequest  true  "campos a atualizar"
// @Success      200   {object}  dto.ClientProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	profile, err := h.profile.Update(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// SetManualGoals godoc
// @Summary      Definir metas calóricas manualmente
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ManualGoalsRequest  true  "daily_calories, macros"
// @Success      200   {object}  dto.ClientProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/profile/goals [put]
func (h *ProfileHandler) SetManualGoals(c *fiber.Ctx) error {
	var in dto.ManualGoalsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	profile, err := h.profile.SetManualGoals(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}
