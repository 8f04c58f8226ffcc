package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/usecase"
)

// CatalogoHandler CRUD del catálogo de tareas por proceso.
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// Listar godoc
// @Summary      Lista el catálogo, opcionalmente por proceso y estado
// @Tags         catalogo
// @Produce      json
// @Param        proceso  query  string  false  "pintura|chasis|premontaje|montaje"
// @Param        activa   query  bool    false  "solo activas o solo inactivas"
// @Success      200  {array}  dto.CatalogoDTO
// @Router       /catalogo/tareas [get]
func (h *CatalogoHandler) Listar(c *fiber.Ctx) error {
	var activa *bool
	if q := c.Query("activa"); q != "" {
		v, err := strconv.ParseBool(q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "activa debe ser booleano"})
		}
		activa = &v
	}
	out, err := h.uc.Listar(c.Context(), c.Query("proceso"), activa)
	if err != nil {
		return errorArea(c, err)
	}
	return c.JSON(out)
}

// Crear godoc
// @Summary      Alta de una tarea de catálogo
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.CatalogoDTO
// @Router       /catalogo/tareas [post]
func (h *CatalogoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearCatalogoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return errorArea(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Actualizar godoc
// @Summary      Edita una tarea de catálogo
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /catalogo/tareas/{id} [put]
func (h *CatalogoHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.ActualizarCatalogoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	noop, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return errorArea(c, err)
	}
	if noop {
		return c.JSON(dto.StatusResponse{Status: "noop"})
	}
	return c.JSON(dto.StatusResponse{Status: "success"})
}

// Borrar godoc
// @Summary      Elimina una tarea de catálogo
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /catalogo/tareas/{id} [delete]
func (h *CatalogoHandler) Borrar(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Borrar(c.Context(), id); err != nil {
		return errorArea(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "success"})
}
