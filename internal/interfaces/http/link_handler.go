package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/usecase"
)

// LinkHandler trata o ciclo de vida do vínculo cliente-nutricionista
// (protegido). O nutricionista solicita; o cliente aceita, recusa ou desfaz.
type LinkHandler struct {
	uc *usecase.LinkUseCase
}

// NewLinkHandler constrói o handler de vínculos.
func NewLinkHandler(uc *usecase.LinkUseCase) *LinkHandler {
	return &LinkHandler{uc: uc}
}

// Request godoc
// @Summary      Solicitar vínculo com um cliente (nutricionista)
// @Tags         links
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.LinkRequestInput  true  "client_id"
// @Success      201   {object}  dto.LinkResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/nutritionist/links [post]
func (h *LinkHandler) Request(c *fiber.Ctx) error {
	var in dto.LinkRequestInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	link, err := h.uc.Request(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// Accept godoc
// @Summary      Aceitar solicitação de vínculo (cliente)
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do vínculo"
// @Success      200  {object}  dto.LinkResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/links/{id}/accept [post]
func (h *LinkHandler) Accept(c *fiber.Ctx) error {
	link, err := h.uc.Accept(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(link)
}

// Reject godoc
// @Summary      Recusar solicitação de vínculo (cliente)
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do vínculo"
// @Success      200  {object}  dto.LinkResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/links/{id}/reject [post]
func (h *LinkHandler) Reject(c *fiber.Ctx) error {
	link, err := h.uc.Reject(c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(link)
}

// CancelByClient godoc
// @Summary      Desfazer vínculo pendente ou ativo (cliente)
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do vínculo"
// @Success      200  {object}  dto.LinkResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/links/{id} [delete]
func (h *LinkHandler) CancelByClient(c *fiber.Ctx) error {
	link, err := h.uc.CancelByClient(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(link)
}

// CancelByNutritionist godoc
// @Summary      Encerrar vínculo ativo (nutricionista)
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do vínculo"
// @Success      200  {object}  dto.LinkResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/nutritionist/links/{id} [delete]
func (h *LinkHandler) CancelByNutritionist(c *fiber.Ctx) error {
	link, err := h.uc.CancelByNutritionist(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(link)
}

// ListByClient godoc
// @Summary      Listar vínculos do cliente autenticado
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.LinkResponse
// @Router       /api/links [get]
func (h *LinkHandler) ListByClient(c *fiber.Ctx) error {
	links, err := h.uc.ListByClient(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(links)
}

// ListByNutritionist godoc
// @Summary      Listar vínculos do nutricionista autenticado
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.LinkResponse
// @Router       /api/nutritionist/links [get]
func (h *LinkHandler) ListByNutritionist(c *fiber.Ctx) error {
	links, err := h.uc.ListByNutritionist(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(links)
}
