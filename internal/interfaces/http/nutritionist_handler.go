package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/usecase"
)

// NutritionistHandler trata o perfil profissional do nutricionista (protegido).
type NutritionistHandler struct {
	uc *usecase.NutritionistUseCase
}

// NewNutritionistHandler constrói o handler.
func NewNutritionistHandler(uc *usecase.NutritionistUseCase) *NutritionistHandler {
	return &NutritionistHandler{uc: uc}
}

// CreateProfile godoc
// @Summary      Criar perfil profissional
// @Tags         nutritionist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.NutritionistProfileRequest  true  "crn, crn_state, full_name, bio, specialties"
// @Success      201   {object}  dto.NutritionistProfileResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/nutritionist/profile [post]
func (h *NutritionistHandler) CreateProfile(c *fiber.Ctx) error {
	var in dto.NutritionistProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	profile, err := h.uc.CreateProfile(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// Get godoc
// @Summary      Obter perfil profissional do nutricionista autenticado
// @Tags         nutritionist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.NutritionistProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/nutritionist/profile [get]
func (h *NutritionistHandler) Get(c *fiber.Ctx) error {
	profile, err := h.uc.Get(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// UpdateInfo godoc
// @Summary      Atualizar dados do perfil (CRN e UF são imutáveis)
// @Tags         nutritionist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateNutritionistInfoRequest  true  "full_name, bio, specialties"
// @Success      200   {object}  dto.NutritionistProfileResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/nutritionist/profile [put]
func (h *NutritionistHandler) UpdateInfo(c *fiber.Ctx) error {
	var in dto.UpdateNutritionistInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	profile, err := h.uc.UpdateInfo(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}
