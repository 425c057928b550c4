package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jpfarias/assistec-api/internal/application/auth"
	"github.com/jpfarias/assistec-api/internal/application/dto"
	"github.com/jpfarias/assistec-api/internal/domain"
)

// AuthHandler maneja login e identidade corrente.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Autenticar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "corpo inválido")
	}
	if in.Username == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "username e password são obrigatórios")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return fail(c, fiber.StatusUnauthorized, "credenciais inválidas")
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Usuário autenticado corrente
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.Context(), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fail(c, fiber.StatusNotFound, err.Error())
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(out)
}

// VerifyToken godoc
// @Summary      Verificar validade do token
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VerifyTokenResponse
// @Router       /auth/verify-token [post]
func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	// O AuthMiddleware já validou assinatura e expiração; aqui só
	// confirmamos que o usuário segue ativo.
	user, err := h.uc.Me(c.Context(), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fail(c, fiber.StatusUnauthorized, "token não corresponde a um usuário ativo")
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.VerifyTokenResponse{Valid: true, User: *user})
}

// Logout godoc
// @Summary      Encerrar sessão
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Não há estado de sessão no servidor: o token expira sozinho e o
	// cliente o descarta. O endpoint existe pelo contrato histórico.
	return c.JSON(dto.MessageResponse{Message: "Logout realizado com sucesso"})
}
