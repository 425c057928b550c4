package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpfarias/assistec-api/internal/application/dto"
	"github.com/jpfarias/assistec-api/internal/domain"
	"github.com/jpfarias/assistec-api/internal/domain/entity"
	"github.com/jpfarias/assistec-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase casos de uso de usuários: criação (admin), listagem e
// soft delete.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create cria um usuário: valida username/email, faz hash bcrypt da senha
// e persiste. Papel default é tecnico.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if len(in.Username) < 3 {
		return nil, fmt.Errorf("%w: username deve ter pelo menos 3 caracteres", domain.ErrInvalidInput)
	}
	if in.Email != nil && !strings.Contains(*in.Email, "@") {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	role := in.Role
	if role == "" {
		role = entity.RoleTecnico
	}
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: role desconhecido %q", domain.ErrInvalidInput, role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Name:         in.Name,
		Email:        in.Email,
		Role:         role,
		IsActive:     true,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List devolve todos os usuários, inclusive desativados.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// ListTechnicians devolve só os usuários ativos (candidatos a atribuição).
func (uc *UserUseCase) ListTechnicians(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// GetByID obtém um usuário por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Deactivate faz o soft delete (is_active = false). A operação é uma
// transição de estado sem volta por esta API: não existe endpoint de
// reativação.
func (uc *UserUseCase) Deactivate(ctx context.Context, id int64) error {
	ok, err := uc.repo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}
	return nil
}
