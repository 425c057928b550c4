package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jpfarias/assistec-api/internal/application/dto"
	"github.com/jpfarias/assistec-api/internal/application/usecase"
	"github.com/jpfarias/assistec-api/internal/domain"
)

// EquipmentHandler maneja cadastro e listagem de equipamentos.
type EquipmentHandler struct {
	uc *usecase.EquipmentUseCase
}

// NewEquipmentHandler constrói o handler.
func NewEquipmentHandler(uc *usecase.EquipmentUseCase) *EquipmentHandler {
	return &EquipmentHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar equipamento
// @Tags         equipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEquipmentRequest  true  "Dados do equipamento"
// @Success      201   {object}  dto.EquipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /orders/equipments [post]
func (h *EquipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "corpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrClientNotFound):
			return fail(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrSerialNumberTaken):
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar equipamentos
// @Tags         equipments
// @Security     Bearer
// @Produce      json
// @Param        client_id  query  int  false  "Filtrar por cliente"
// @Success      200  {array}  dto.EquipmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /orders/equipments [get]
func (h *EquipmentHandler) List(c *fiber.Ctx) error {
	var clientID *int64
	if raw := c.Query("client_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "client_id inválido")
		}
		clientID = &id
	}
	out, err := h.uc.List(c.Context(), clientID)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(out)
}
