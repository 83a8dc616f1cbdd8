package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/usecase"
)

// HydrationHandler trata o registro de hidratação (protegido).
type HydrationHandler struct {
	uc *usecase.HydrationUseCase
}

// NewHydrationHandler constrói o handler de hidratação.
func NewHydrationHandler(uc *usecase.HydrationUseCase) *HydrationHandler {
	return &HydrationHandler{uc: uc}
}

// Log godoc
// @Summary      Registrar bebida consumida
// @Tags         hydration
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.LogHydrationRequest  true  "volume_ml, drink_type"
// @Success      201   {object}  dto.HydrationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/hydration [post]
func (h *HydrationHandler) Log(c *fiber.Ctx) error {
	var in dto.LogHydrationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	record, err := h.uc.Log(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// ListByDate godoc
// @Summary      Listar registros de hidratação de um dia
// @Tags         hydration
// @Produce      json
// @Security     BearerAuth
// @Param        date  query  string  false  "AAAA-MM-DD (default: hoje)"
// @Success      200   {array}  dto.HydrationResponse
// @Router       /api/hydration [get]
func (h *HydrationHandler) ListByDate(c *fiber.Ctx) error {
	records, err := h.uc.ListByDate(GetUserID(c), dateParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

// DailyTotal godoc
// @Summary      Total de líquidos (ml) consumidos no dia
// @Tags         hydration
// @Produce      json
// @Security     BearerAuth
// @Param        date  query  string  false  "AAAA-MM-DD (default: hoje)"
// @Success      200   {object}  dto.HydrationDailyTotalResponse
// @Router       /api/hydration/total [get]
func (h *HydrationHandler) DailyTotal(c *fiber.Ctx) error {
	total, err := h.uc.DailyTotal(GetUserID(c), dateParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(total)
}
