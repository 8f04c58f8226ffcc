package busquedas

import (
	"context"
	"strings"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain/area"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

const maxFilasLog = 1000

// Filtro criterios del buscador global de tareas.
type Filtro struct {
	Desde      string // YYYY-MM-DD inclusive
	Hasta      string // YYYY-MM-DD inclusive
	Trabajador string // subcadena del nombre, insensible a mayúsculas
	Area       string // clave de área; vacío = todas
}

// GeneradorPDF renderiza el listado como documento PDF.
type GeneradorPDF interface {
	GenerarLogPDF(entradas []dto.EntradaLogDTO) ([]byte, error)
}

// LogUseCase arma el listado global de tareas: libro de vínculos unido a
// nombres de usuario, con la fecha_fin resuelta contra la tabla de área real.
type LogUseCase struct {
	vinculoRepo repository.TareaVinculoRepository
	areaRepo    repository.TareaAreaRepository
	pdf         GeneradorPDF
	log         *logger.Logger
}

// NewLogUseCase construye el caso de uso del buscador.
func NewLogUseCase(vinculoRepo repository.TareaVinculoRepository, areaRepo repository.TareaAreaRepository, pdf GeneradorPDF, log *logger.Logger) *LogUseCase {
	return &LogUseCase{vinculoRepo: vinculoRepo, areaRepo: areaRepo, pdf: pdf, log: log}
}

// Listado devuelve hasta 1000 filas, más recientes primero. La fecha_fin se
// busca con una consulta secundaria por fila; si esa búsqueda falla se deja
// null y el listado continúa (el fallo de enriquecimiento nunca aborta el log).
func (uc *LogUseCase) Listado(ctx context.Context, f Filtro) ([]dto.EntradaLogDTO, error) {
	filtro := repository.FiltroLog{
		Desde:      strings.TrimSpace(f.Desde),
		Hasta:      strings.TrimSpace(f.Hasta),
		Trabajador: strings.TrimSpace(f.Trabajador),
		Limite:     maxFilasLog,
	}
	if a, err := area.Resolver(f.Area); err == nil {
		filtro.Tabla = a.Tabla
	}

	filas, err := uc.vinculoRepo.Log(ctx, filtro)
	if err != nil {
		return nil, err
	}

	out := make([]dto.EntradaLogDTO, 0, len(filas))
	for _, fila := range filas {
		var fin *string
		if fecha, err := uc.areaRepo.FechaFinPorTabla(ctx, fila.TablaArea, fila.IDTareaArea); err != nil {
			uc.log.Warn().Err(err).
				Str("tabla", fila.TablaArea).
				Int64("id_tarea", fila.IDTareaArea).
				Msg("fecha_fin no resuelta en el log")
		} else if fecha != nil {
			s := fecha.Format("2006-01-02 15:04:05")
			fin = &s
		}

		titulo := "—"
		if a, ok := area.PorTabla(fila.TablaArea); ok {
			titulo = a.Titulo
		}

		out = append(out, dto.EntradaLogDTO{
			ID:         fila.ID,
			Fecha:      fila.FechaCreacion.Format("2006-01-02"),
			FechaFin:   fin,
			Trabajador: fila.Trabajador,
			Area:       titulo,
			Accion:     "Registro",
			Resultado:  "OK",
		})
	}
	return out, nil
}

// ListadoPDF devuelve el mismo listado renderizado como PDF.
func (uc *LogUseCase) ListadoPDF(ctx context.Context, f Filtro) ([]byte, error) {
	entradas, err := uc.Listado(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerarLogPDF(entradas)
}
