package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jpfarias/assistec-api/internal/application/dto"
	"github.com/jpfarias/assistec-api/internal/application/usecase"
	"github.com/jpfarias/assistec-api/internal/domain"
)

// ChecklistHandler maneja os modelos de checklist usados nas ordens.
type ChecklistHandler struct {
	uc *usecase.ChecklistUseCase
}

// NewChecklistHandler constrói o handler.
func NewChecklistHandler(uc *usecase.ChecklistUseCase) *ChecklistHandler {
	return &ChecklistHandler{uc: uc}
}

// Create godoc
// @Summary      Criar modelo de checklist
// @Tags         checklists
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChecklistRequest  true  "Nome e itens"
// @Success      201   {object}  dto.ChecklistResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /orders/checklists [post]
func (h *ChecklistHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChecklistRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "corpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fail(c, fiber.StatusBadRequest, "name e items são obrigatórios")
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar modelos de checklist
// @Tags         checklists
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ChecklistResponse
// @Router       /orders/checklists [get]
func (h *ChecklistHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter modelo de checklist
// @Tags         checklists
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do checklist"
// @Success      200  {object}  dto.ChecklistResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/checklists/{id} [get]
func (h *ChecklistHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrChecklistNotFound) {
			return fail(c, fiber.StatusNotFound, err.Error())
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(out)
}
