package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/usecase"
)

// PlanHandler trata planos alimentares (protegido). Nutricionista emite;
// cliente consulta e exporta.
type PlanHandler struct {
	uc *usecase.PlanUseCase
}

// NewPlanHandler constrói o handler de planos.
func NewPlanHandler(uc *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// Create godoc
// @Summary      Criar plano alimentar para um cliente vinculado (nutricionista)
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePlanRequest  true  "plano com refeições planejadas"
// @Success      201   {object}  dto.PlanResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/nutritionist/plans [post]
func (h *PlanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	plan, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

// Get godoc
// @Summary      Obter plano (nutricionista emissor ou cliente destinatário)
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do plano"
// @Success      200  {object}  dto.PlanResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id} [get]
func (h *PlanHandler) Get(c *fiber.Ctx) error {
	plan, err := h.uc.Get(c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plan)
}

// Deactivate godoc
// @Summary      Desativar plano (nutricionista emissor)
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do plano"
// @Success      200  {object}  dto.PlanResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/nutritionist/plans/{id}/deactivate [post]
func (h *PlanHandler) Deactivate(c *fiber.Ctx) error {
	plan, err := h.uc.Deactivate(c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plan)
}

// ListByClient godoc
// @Summary      Listar planos recebidos pelo cliente autenticado
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/plans [get]
func (h *PlanHandler) ListByClient(c *fiber.Ctx) error {
	plans, err := h.uc.ListByClient(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plans)
}

// ListByNutritionist godoc
// @Summary      Listar planos emitidos pelo nutricionista autenticado
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/nutritionist/plans [get]
func (h *PlanHandler) ListByNutritionist(c *fiber.Ctx) error {
	plans, err := h.uc.ListByNutritionist(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plans)
}

// ExportPDF godoc
// @Summary      Exportar plano em PDF
// @Tags         plans
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do plano"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/plans/{id}/pdf [get]
func (h *PlanHandler) ExportPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.ExportPDF(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
