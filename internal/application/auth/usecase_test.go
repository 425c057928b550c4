package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpfarias/assistec-api/internal/application/auth"
	"github.com/jpfarias/assistec-api/internal/application/dto"
	"github.com/jpfarias/assistec-api/internal/domain"
	"github.com/jpfarias/assistec-api/internal/domain/entity"
	pkgjwt "github.com/jpfarias/assistec-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "assistec-api-test"
)

// fakeUserRepo implementa só o que o AuthUseCase toca.
type fakeUserRepo struct {
	byUsername map[string]*entity.User
	byID       map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: map[string]*entity.User{},
		byID:       map[int64]*entity.User{},
	}
}

func (r *fakeUserRepo) add(u *entity.User) {
	r.byUsername[u.Username] = u
	r.byID[u.ID] = u
}

func (r *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.byUsername[username], nil
}

func (r *fakeUserRepo) GetActiveByID(_ context.Context, id int64) (*entity.User, error) {
	u := r.byID[id]
	if u == nil || !u.IsActive {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) List(context.Context) ([]*entity.User, error)       { return nil, nil }
func (r *fakeUserRepo) ListActive(context.Context) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Deactivate(context.Context, int64) (bool, error)    { return false, nil }

func seedUser(t *testing.T, repo *fakeUserRepo, id int64, username, password string, active bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.add(&entity.User{
		ID:           id,
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleTecnico,
		IsActive:     active,
	})
}

func newUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 30,
		Issuer:     testIssuer,
	})
}

func TestLogin_EmiteTokenComClaims(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, 7, "joao.tec", "segredo123", true)
	uc := newUC(repo)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "joao.tec", Password: "segredo123"})
	require.NoError(t, err)

	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, 30*60, out.ExpiresIn, "expires_in em segundos")
	assert.Equal(t, int64(7), out.User.ID)

	userID, username, role, err := pkgjwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, "joao.tec", username)
	assert.Equal(t, entity.RoleTecnico, role)
}

// Credencial errada, usuário inexistente e conta inativa respondem o
// mesmo erro: o login não revela quais usernames existem.
func TestLogin_FalhasRespondemIgual(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, 1, "joao.tec", "segredo123", true)
	seedUser(t, repo, 2, "antigo.tec", "segredo123", false)
	uc := newUC(repo)
	ctx := context.Background()

	cases := []dto.LoginRequest{
		{Username: "joao.tec", Password: "errada"},
		{Username: "nao.existe", Password: "segredo123"},
		{Username: "antigo.tec", Password: "segredo123"},
	}
	for _, in := range cases {
		_, err := uc.Login(ctx, in)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "login de %s", in.Username)
	}
}

func TestMe_UsuarioDesativadoAposEmissao(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, 7, "joao.tec", "segredo123", true)
	uc := newUC(repo)
	ctx := context.Background()

	me, err := uc.Me(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "joao.tec", me.Username)

	repo.byID[7].IsActive = false
	_, err = uc.Me(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
