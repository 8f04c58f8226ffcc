package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/usecase"
)

// UsuarioHandler administración de usuarios de planta.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Listar godoc
// @Summary      Lista todos los usuarios
// @Tags         usuarios
// @Produce      json
// @Success      200  {array}  dto.UsuarioPublico
// @Router       /usuarios [get]
func (h *UsuarioHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		return errorArea(c, err)
	}
	return c.JSON(out)
}

// Crear godoc
// @Summary      Alta de usuario con contraseña por defecto
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.UsuarioPublico
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /usuarios [post]
func (h *UsuarioHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return errorUsuario(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Actualizar godoc
// @Summary      Edita nombre, email, rol, estado o contraseña de un usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.UsuarioPublico
// @Router       /usuarios/{id} [put]
func (h *UsuarioHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.ActualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return errorUsuario(c, err)
	}
	return c.JSON(out)
}

// Borrar godoc
// @Summary      Elimina un usuario
// @Tags         usuarios
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /usuarios/{id} [delete]
func (h *UsuarioHandler) Borrar(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Borrar(c.Context(), id); err != nil {
		return errorUsuario(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "success"})
}

// ResetPassword godoc
// @Summary      Restablece la contraseña del usuario a la por defecto
// @Tags         usuarios
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /usuarios/{id}/reset-password [post]
func (h *UsuarioHandler) ResetPassword(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.ResetPassword(c.Context(), id); err != nil {
		return errorUsuario(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "success"})
}

// CambiarPassword godoc
// @Summary      Cambia la contraseña de un usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /usuarios/{id}/change-password [post]
func (h *UsuarioHandler) CambiarPassword(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.CambiarPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.CambiarPassword(c.Context(), id, in.Password); err != nil {
		return errorUsuario(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "success"})
}
