package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpfarias/assistec-api/internal/application/dto"
	"github.com/jpfarias/assistec-api/internal/application/usecase"
	"github.com/jpfarias/assistec-api/internal/domain"
)

func newChecklistUC() (*usecase.ChecklistUseCase, *fakeChecklistRepo) {
	repo := newFakeChecklistRepo()
	tx := &fakeTx{checklists: repo}
	return usecase.NewChecklistUseCase(tx, repo), repo
}

func TestChecklistCreate_PosicoesSeguemAOrdemDeChegada(t *testing.T) {
	uc, _ := newChecklistUC()

	out, err := uc.Create(context.Background(), dto.CreateChecklistRequest{
		Name: "Entrada de notebook",
		Items: []dto.ChecklistItemRequest{
			{Description: "Liga?"},
			{Description: "Tela íntegra?"},
			{Description: "Carregador acompanha?"},
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 3)
	for i, item := range out.Items {
		assert.Equal(t, i+1, item.Position)
	}
	assert.Equal(t, "Tela íntegra?", out.Items[1].Description)
}

func TestChecklistCreate_Validacoes(t *testing.T) {
	uc, _ := newChecklistUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateChecklistRequest{Name: "", Items: []dto.ChecklistItemRequest{{Description: "x"}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nome obrigatório")

	_, err = uc.Create(ctx, dto.CreateChecklistRequest{Name: "Vazio"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "pelo menos um item")

	_, err = uc.Create(ctx, dto.CreateChecklistRequest{
		Name:  "Item em branco",
		Items: []dto.ChecklistItemRequest{{Description: ""}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChecklistGetByID(t *testing.T) {
	uc, _ := newChecklistUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateChecklistRequest{
		Name:  "Entrada de impressora",
		Items: []dto.ChecklistItemRequest{{Description: "Imprime página de teste?"}},
	})
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Len(t, got.Items, 1)

	_, err = uc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrChecklistNotFound)
}
