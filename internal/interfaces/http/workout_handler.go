package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/usecase"
)

// WorkoutHandler trata os treinos do usuário (protegido).
type WorkoutHandler struct {
	uc *usecase.WorkoutUseCase
}

// NewWorkoutHandler constrói o handler de treinos.
func NewWorkoutHandler(uc *usecase.WorkoutUseCase) *WorkoutHandler {
	return &WorkoutHandler{uc: uc}
}

// Create godoc
// @Summary      Criar treino
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.WorkoutRequest  true  "treino com exercícios"
// @Success      201   {object}  dto.WorkoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/workouts [post]
func (h *WorkoutHandler) Create(c *fiber.Ctx) error {
	var in dto.WorkoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	workout, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

// Get godoc
// @Summary      Obter treino
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do treino"
// @Success      200  {object}  dto.WorkoutResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/workouts/{id} [get]
func (h *WorkoutHandler) Get(c *fiber.Ctx) error {
	workout, err := h.uc.Get(c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workout)
}

// Update godoc
// @Summary      Editar treino (substitui os exercícios)
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID do treino"
// @Param        body  body  dto.WorkoutRequest  true  "treino atualizado"
// @Success      200   {object}  dto.WorkoutResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/workouts/{id} [put]
func (h *WorkoutHandler) Update(c *fiber.Ctx) error {
	var in dto.WorkoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	workout, err := h.uc.Update(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workout)
}

// Delete godoc
// @Summary      Excluir treino
// @Tags         workouts
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do treino"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/workouts/{id} [delete]
func (h *WorkoutHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar treinos do usuário autenticado
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.WorkoutResponse
// @Router       /api/workouts [get]
func (h *WorkoutHandler) List(c *fiber.Ctx) error {
	workouts, err := h.uc.List(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workouts)
}
