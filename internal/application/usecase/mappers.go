package usecase

import (
	"github.com/jpfarias/assistec-api/internal/application/dto"
	"github.com/jpfarias/assistec-api/internal/domain/entity"
)

// Uma função de mapeamento por entidade: centraliza a montagem das
// respostas e o tratamento de linhas referenciadas ausentes (nil -> null
// no JSON).

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func toEquipmentResponse(e *entity.Equipment) *dto.EquipmentResponse {
	if e == nil {
		return nil
	}
	return &dto.EquipmentResponse{
		ID:           e.ID,
		Type:         e.Type,
		Brand:        e.Brand,
		Model:        e.Model,
		SerialNumber: e.SerialNumber,
		ClientID:     e.ClientID,
		CreatedAt:    e.CreatedAt,
	}
}

func toChecklistResponse(cl *entity.Checklist) *dto.ChecklistResponse {
	if cl == nil {
		return nil
	}
	items := make([]dto.ChecklistItemResponse, 0, len(cl.Items))
	for _, it := range cl.Items {
		items = append(items, dto.ChecklistItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Position:    it.Position,
		})
	}
	return &dto.ChecklistResponse{
		ID:          cl.ID,
		Name:        cl.Name,
		Description: cl.Description,
		CreatedAt:   cl.CreatedAt,
		Items:       items,
	}
}
