package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/usecase"
)

// MealHandler trata análise, confirmação e consulta de refeições (protegido).
type MealHandler struct {
	uc *usecase.MealUseCase
}

// NewMealHandler constrói o handler de refeições.
func NewMealHandler(uc *usecase.MealUseCase) *MealHandler {
	return &MealHandler{uc: uc}
}

// dateParam devolve ?date= ou a data de hoje (UTC) quando ausente.
func dateParam(c *fiber.Ctx) string {
	if d := c.Query("date"); d != "" {
		return d
	}
	return time.Now().UTC().Format("2006-01-02")
}

// Analyze godoc
// @Summary      Analisar refeição por foto, áudio ou texto (IA)
// @Tags         meals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AnalyzeMealRequest  true  "image_base64, audio_transcript ou description"
// @Success      200   {object}  dto.MealAnalysisDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/meals/analyze [post]
func (h *MealHandler) Analyze(c *fiber.Ctx) error {
	var in dto.AnalyzeMealRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	analysis, err := h.uc.Analyze(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(analysis)
}

// Confirm godoc
// @Summary      Confirmar e registrar refeição analisada
// @Tags         meals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ConfirmMealRequest  true  "refeição com valores finais"
// @Success      201   {object}  dto.MealResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/meals [post]
func (h *MealHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmMealRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	meal, err := h.uc.Confirm(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(meal)
}

// Update godoc
// @Summary      Editar refeição (janela de 7 dias)
// @Tags         meals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID da refeição"
// @Param        body  body  dto.UpdateMealRequest  true  "valores corrigidos"
// @Success      200   {object}  dto.MealResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/meals/{id} [put]
func (h *MealHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMealRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	meal, err := h.uc.Update(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(meal)
}

// Delete godoc
// @Summary      Excluir refeição em definitivo
// @Tags         meals
// @Security     BearerAuth
// @Param        id  path  string  true  "ID da refeição"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/meals/{id} [delete]
func (h *MealHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByDate godoc
// @Summary      Listar refeições de um dia
// @Tags         meals
// @Produce      json
// @Security     BearerAuth
// @Param        date  query  string  false  "AAAA-MM-DD (default: hoje)"
// @Success      200   {array}  dto.MealResponse
// @Router       /api/meals [get]
func (h *MealHandler) ListByDate(c *fiber.Ctx) error {
	meals, err := h.uc.ListByDate(GetUserID(c), dateParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(meals)
}

// DailySummary godoc
// @Summary      Resumo diário: consumido vs. meta, hidratação e refeições
// @Tags         meals
// @Produce      json
// @Security     BearerAuth
// @Param        date  query  string  false  "AAAA-MM-DD (default: hoje)"
// @Success      200   {object}  dto.DailySummaryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/summary [get]
func (h *MealHandler) DailySummary(c *fiber.Ctx) error {
	summary, err := h.uc.DailySummary(GetUserID(c), dateParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
