package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planta-api/internal/application/busquedas"
)

// BusquedasHandler expone el buscador global de tareas y su export a PDF.
type BusquedasHandler struct {
	uc *busquedas.LogUseCase
}

// NewBusquedasHandler construye el handler.
func NewBusquedasHandler(uc *busquedas.LogUseCase) *BusquedasHandler {
	return &BusquedasHandler{uc: uc}
}

func filtroDesdeQuery(c *fiber.Ctx) busquedas.Filtro {
	return busquedas.Filtro{
		Desde:      c.Query("from"),
		Hasta:      c.Query("to"),
		Trabajador: c.Query("trabajador"),
		Area:       c.Query("area"),
	}
}

// Log godoc
// @Summary      Buscador global de tareas con filtros por fecha, trabajador y área
// @Tags         busquedas
// @Produce      json
// @Param        from        query  string  false  "YYYY-MM-DD inclusive"
// @Param        to          query  string  false  "YYYY-MM-DD inclusive"
// @Param        trabajador  query  string  false  "subcadena del nombre"
// @Param        area        query  string  false  "pintura|chasis|premontaje|montaje"
// @Success      200  {array}  dto.EntradaLogDTO
// @Router       /busquedas/tareas [get]
func (h *BusquedasHandler) Log(c *fiber.Ctx) error {
	out, err := h.uc.Listado(c.Context(), filtroDesdeQuery(c))
	if err != nil {
		return errorArea(c, err)
	}
	return c.JSON(out)
}

// LogPDF godoc
// @Summary      Export del buscador global como PDF apaisado
// @Tags         busquedas
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /busquedas/tareas/pdf [get]
func (h *BusquedasHandler) LogPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.ListadoPDF(c.Context(), filtroDesdeQuery(c))
	if err != nil {
		return errorArea(c, err)
	}
	nombre := fmt.Sprintf("registro-tareas-%s.pdf", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", nombre))
	return c.Send(pdf)
}
