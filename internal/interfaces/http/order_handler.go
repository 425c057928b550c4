package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jpfarias/assistec-api/internal/application/dto"
	"github.com/jpfarias/assistec-api/internal/application/usecase"
	"github.com/jpfarias/assistec-api/internal/domain"
)

// OrderHandler maneja o ciclo de vida das ordens de serviço.
type OrderHandler struct {
	uc  *usecase.OrderUseCase
	pdf *usecase.OrderPDFUseCase
}

// NewOrderHandler constrói o handler.
func NewOrderHandler(uc *usecase.OrderUseCase, pdf *usecase.OrderPDFUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Abrir ordem de serviço
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Dados da ordem"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "corpo inválido")
	}
	if in.Title == "" {
		return fail(c, fiber.StatusBadRequest, "title é obrigatório")
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrClientNotFound), errors.Is(err, domain.ErrEquipmentNotFound):
			return fail(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrInvalidInput):
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ordens de serviço
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status   query  string  false  "open | in_progress | closed"
// @Param        user_id  query  int     false  "Filtrar por técnico responsável"
// @Param        skip     query  int     false  "Offset de paginação"
// @Param        limit    query  int     false  "Máximo de resultados (1-100)"
// @Success      200  {array}  dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var status *string
	if raw := c.Query("status"); raw != "" {
		status = &raw
	}
	var userID *int64
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "user_id inválido")
		}
		userID = &id
	}
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 0)

	out, err := h.uc.List(c.Context(), status, userID, skip, limit)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter ordem de serviço
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da ordem"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return fail(c, fiber.StatusNotFound, err.Error())
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar ordem de serviço (parcial)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID da ordem"
// @Param        body  body  dto.UpdateOrderRequest true  "Campos a atualizar"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "corpo inválido")
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return fail(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidStatus):
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(out)
}

// AssignTechnician godoc
// @Summary      Atribuir técnico à ordem
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id             path   int  true   "ID da ordem"
// @Param        technician_id  query  int  false  "ID do técnico (alternativa ao corpo)"
// @Param        body  body  dto.AssignTechnicianRequest  false  "technician_id"
// @Success      200   {object}  dto.AssignTechnicianResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /orders/{id}/assign-technician [put]
func (h *OrderHandler) AssignTechnician(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	technicianID, err := h.technicianIDFrom(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	out, err := h.uc.AssignTechnician(c.Context(), id, technicianID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound), errors.Is(err, domain.ErrTechnicianNotFound):
			return fail(c, fiber.StatusNotFound, err.Error())
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(out)
}

// technicianIDFrom aceita o técnico via query string ou corpo JSON; a
// query tem precedência quando ambos vierem.
func (h *OrderHandler) technicianIDFrom(c *fiber.Ctx) (int64, error) {
	if raw := c.Query("technician_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return 0, fmt.Errorf("technician_id inválido")
		}
		return id, nil
	}
	var in dto.AssignTechnicianRequest
	if err := c.BodyParser(&in); err != nil || in.TechnicianID <= 0 {
		return 0, fmt.Errorf("technician_id é obrigatório")
	}
	return in.TechnicianID, nil
}

// Delete godoc
// @Summary      Excluir ordem de serviço
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da ordem"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return fail(c, fiber.StatusNotFound, err.Error())
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.MessageResponse{Message: "Ordem de serviço excluída com sucesso"})
}

// PDF godoc
// @Summary      Folha da ordem de serviço em PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID da ordem"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id}/pdf [get]
func (h *OrderHandler) PDF(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	doc, err := h.pdf.Generate(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return fail(c, fiber.StatusNotFound, err.Error())
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="ordem_servico_%d.pdf"`, id))
	return c.Send(doc)
}
