package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/tareas"
	"github.com/jhoicas/Planta-api/internal/domain"
)

// TareasHandler maneja las mutaciones del ciclo de vida de tareas de área.
type TareasHandler struct {
	uc *tareas.LifecycleUseCase
}

// NewTareasHandler construye el handler.
func NewTareasHandler(uc *tareas.LifecycleUseCase) *TareasHandler {
	return &TareasHandler{uc: uc}
}

// Iniciar godoc
// @Summary      Iniciar o reanudar una tarea por VIN
// @Tags         tareas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IniciarRequest  true  "usuario_id, area, bastidor?, color?, RAL?, checks?"
// @Success      200  {object}  dto.IniciarResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      423  {object}  dto.BloqueadaResponse
// @Router       /tareas/iniciar [post]
func (h *TareasHandler) Iniciar(c *fiber.Ctx) error {
	var in dto.IniciarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Iniciar(c.Context(), in)
	if err != nil {
		var bloqueada *domain.ErrBloqueada
		if errors.As(err, &bloqueada) {
			return c.Status(fiber.StatusLocked).JSON(dto.BloqueadaResponse{
				Status:  "locked_by_other",
				Area:    in.Area,
				IDArea:  bloqueada.IDArea,
				OwnerID: bloqueada.PropietarioID,
			})
		}
		if errors.Is(err, domain.ErrUsuarioNoEncontrado) || errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "usuario_id inválido o inexistente"})
		}
		return errorArea(c, err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Update parcial de una tarea por id
// @Tags         tareas
// @Accept       json
// @Produce      json
// @Param        area  path  string  true  "pintura|chasis|premontaje|montaje"
// @Param        id    path  int     true  "id del registro de área"
// @Success      200  {object}  dto.StatusResponse
// @Router       /tareas/{area}/{id} [put]
func (h *TareasHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.ActualizarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	noop, err := h.uc.Actualizar(c.Context(), c.Params("area"), id, in)
	if err != nil {
		return errorArea(c, err)
	}
	if noop {
		return c.JSON(dto.StatusResponse{Status: "noop"})
	}
	return c.JSON(dto.StatusResponse{Status: "success"})
}

// Finalizar godoc
// @Summary      Finalizar una tarea (estado finalizada, fecha_fin ahora)
// @Tags         tareas
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /tareas/{area}/{id}/finalizar [post]
func (h *TareasHandler) Finalizar(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Finalizar(c.Context(), c.Params("area"), id); err != nil {
		return errorArea(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "success"})
}

// Reabrir godoc
// @Summary      Reabrir una tarea (estado pendiente, fecha_fin NULL)
// @Tags         tareas
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /tareas/{area}/{id}/pendiente [post]
func (h *TareasHandler) Reabrir(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Reabrir(c.Context(), c.Params("area"), id); err != nil {
		return errorArea(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "success"})
}

// paramID parsea el parámetro :id de la ruta.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// errorArea mapeo común de errores de dominio en rutas de tareas.
func errorArea(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrAreaInvalida) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AREA", Message: "área no válida"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	if errors.Is(err, domain.ErrEntradaInvalida) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// errorUsuario mapeo común de errores de dominio en rutas de usuarios.
func errorUsuario(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrEmailDuplicado) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_TAKEN", Message: "el email ya está registrado"})
	}
	if errors.Is(err, domain.ErrUsuarioNoEncontrado) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
	}
	if errors.Is(err, domain.ErrEntradaInvalida) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return errorArea(c, err)
}
