package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Litigios-api/internal/application/auth"
	"github.com/jhoicas/Litigios-api/internal/application/dto"
)

// AuthHandler selector de perfil y sesión.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// ListUsers godoc
// @Summary      Perfiles disponibles
// @Tags         auth
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/auth/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(users)
}

// Login godoc
// @Summary      Elegir perfil
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "user_id"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Me devuelve el perfil de la sesión.
// GET /api/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, err := requireUser(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(auth.ToUserResponse(u))
}
