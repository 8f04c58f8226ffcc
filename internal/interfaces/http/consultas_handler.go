package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/tareas"
)

// ConsultasHandler maneja las lecturas: reanudación, estados de VIN, listas
// para selectores y pendientes por usuario. Todas las rutas llevan NoCache.
type ConsultasHandler struct {
	uc *tareas.ConsultasUseCase
}

// NewConsultasHandler construye el handler.
func NewConsultasHandler(uc *tareas.ConsultasUseCase) *ConsultasHandler {
	return &ConsultasHandler{uc: uc}
}

// PendientePorVIN godoc
// @Summary      Pendiente de un VIN en un área (con ?user_id= solo si es suya)
// @Tags         consultas
// @Produce      json
// @Success      200  {object}  dto.PendientePorVINResponse
// @Router       /tareas/{area}/pendiente/{vin} [get]
func (h *ConsultasHandler) PendientePorVIN(c *fiber.Ctx) error {
	usuarioID, _ := strconv.ParseInt(c.Query("user_id", "0"), 10, 64)
	out, err := h.uc.PendientePorVIN(c.Context(), c.Params("area"), c.Params("vin"), usuarioID)
	if err != nil {
		return errorArea(c, err)
	}
	return c.JSON(out)
}

// Snapshot godoc
// @Summary      Snapshot completo de una tarea por id (para autorreanudación)
// @Tags         consultas
// @Produce      json
// @Success      200  {object}  dto.SnapshotResponse
// @Failure      404  {object}  dto.SnapshotResponse
// @Router       /tareas/{area}/{id}/snapshot [get]
func (h *ConsultasHandler) Snapshot(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.Snapshot(c.Context(), c.Params("area"), id)
	if err != nil {
		return errorArea(c, err)
	}
	if !out.Exists {
		return c.Status(fiber.StatusNotFound).JSON(out)
	}
	return c.JSON(out)
}

// Finalizado godoc
// @Summary      True si existe algún registro finalizado del VIN en el área
// @Tags         consultas
// @Produce      json
// @Success      200  {object}  dto.FinalizadoResponse
// @Router       /tareas/{area}/finalizado/{vin} [get]
func (h *ConsultasHandler) Finalizado(c *fiber.Ctx) error {
	fin, err := h.uc.FinalizadaPorVIN(c.Context(), c.Params("area"), c.Params("vin"))
	if err != nil {
		return errorArea(c, err)
	}
	return c.JSON(dto.FinalizadoResponse{Finalized: fin})
}

// PendientesUsuario godoc
// @Summary      Pendientes del usuario en todas las áreas con resumen de checks
// @Tags         consultas
// @Produce      json
// @Success      200  {array}  dto.PendienteUsuario
// @Router       /pendientes/{usuarioId} [get]
func (h *ConsultasHandler) PendientesUsuario(c *fiber.Ctx) error {
	usuarioID, err := strconv.ParseInt(c.Params("usuarioId"), 10, 64)
	if err != nil || usuarioID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "usuario inválido"})
	}
	out, err := h.uc.PendientesUsuario(c.Context(), usuarioID)
	if err != nil {
		return errorArea(c, err)
	}
	return c.JSON(out)
}

// EstadoVIN godoc
// @Summary      Estado de un VIN en chasis: free | finalized | pending
// @Tags         consultas
// @Produce      json
// @Success      200  {object}  dto.EstadoVINResponse
// @Router       /chasis/vin-estado/{vin} [get]
func (h *ConsultasHandler) EstadoVIN(c *fiber.Ctx) error {
	out, err := h.uc.EstadoVIN(c.Context(), c.Params("vin"))
	if err != nil {
		return errorArea(c, err)
	}
	return c.JSON(out)
}

// Bastidores godoc
// @Summary      VIN válidos recientes de chasis (únicos, normalizados)
// @Tags         consultas
// @Produce      json
// @Success      200  {array}  string
// @Router       /chasis/bastidores [get]
func (h *ConsultasHandler) Bastidores(c *fiber.Ctx) error {
	out, err := h.uc.BastidoresChasis(c.Context())
	if err != nil {
		return errorArea(c, err)
	}
	return c.JSON(out)
}

// Colores godoc
// @Summary      Colores recientes de pintura (únicos, sin vacíos)
// @Tags         consultas
// @Produce      json
// @Success      200  {array}  string
// @Router       /pintura/colores [get]
func (h *ConsultasHandler) Colores(c *fiber.Ctx) error {
	out, err := h.uc.ColoresPintura(c.Context())
	if err != nil {
		return errorArea(c, err)
	}
	return c.JSON(out)
}

// ColorPorVIN godoc
// @Summary      Último color (y RAL) usado para un VIN en pintura
// @Tags         consultas
// @Produce      json
// @Success      200  {object}  dto.ColorPorVINResponse
// @Router       /pintura/color-por-vin/{vin} [get]
func (h *ConsultasHandler) ColorPorVIN(c *fiber.Ctx) error {
	out, err := h.uc.ColorPorVIN(c.Context(), c.Params("vin"))
	if err != nil {
		return errorArea(c, err)
	}
	return c.JSON(out)
}

// DisponibleMontaje godoc
// @Summary      Disponibilidad de un VIN en montaje (sin finalizadas previas)
// @Tags         consultas
// @Produce      json
// @Success      200  {object}  dto.DisponibleResponse
// @Router       /montaje/vin-disponible/{vin} [get]
func (h *ConsultasHandler) DisponibleMontaje(c *fiber.Ctx) error {
	disponible, err := h.uc.DisponibleMontaje(c.Context(), c.Params("vin"))
	if err != nil {
		return errorArea(c, err)
	}
	return c.JSON(dto.DisponibleResponse{Available: disponible})
}
