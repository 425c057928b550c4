package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpfarias/assistec-api/internal/application/dto"
	"github.com/jpfarias/assistec-api/internal/application/usecase"
	"github.com/jpfarias/assistec-api/internal/domain"
	"github.com/jpfarias/assistec-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestUserCreate_DefaultTecnicoESenhaComHash(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "maria",
		Password: "segredo123",
		Email:    strPtr("maria@oficina.com.br"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleTecnico, out.Role, "papel default é tecnico")
	assert.True(t, out.IsActive)

	stored, err := repo.GetByUsername(context.Background(), "maria")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "segredo123", stored.PasswordHash, "senha nunca é gravada em claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("segredo123")))
}

func TestUserCreate_Validacoes(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{Username: "ab", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "username com menos de 3 caracteres")

	_, err = uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "maria", Password: "x", Email: strPtr("sem-arroba"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "email sem @")

	_, err = uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "maria", Password: "x", Role: "gerente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "papel fora de admin/tecnico")
}

func TestUserCreate_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{Username: "maria", Password: "x"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateUserRequest{Username: "maria", Password: "y"})
	assert.ErrorIs(t, err, domain.ErrUsernameOrEmailTaken)
}

func TestUserDeactivate_SomeDaListaDeTecnicos(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	a, err := uc.Create(ctx, dto.CreateUserRequest{Username: "tecnico.a", Password: "x"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "tecnico.b", Password: "x"})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(ctx, a.ID))

	// Lista geral continua com os dois; a de técnicos só com o ativo.
	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	techs, err := uc.ListTechnicians(ctx)
	require.NoError(t, err)
	require.Len(t, techs, 1)
	assert.Equal(t, "tecnico.b", techs[0].Username)

	// Soft delete: a linha permanece, só desativada.
	got, err := uc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestUserDeactivate_Inexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	assert.ErrorIs(t, uc.Deactivate(context.Background(), 99), domain.ErrUserNotFound)
}

func TestUserGetByID_Inexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	_, err := uc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
