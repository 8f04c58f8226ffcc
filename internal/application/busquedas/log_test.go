package busquedas_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/application/busquedas"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain/area"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles
// ──────────────────────────────────────────────────────────────────────────────

// fakeVinculoLog sirve filas fijas y captura el filtro con el que se le llamó.
type fakeVinculoLog struct {
	filas  []repository.EntradaLog
	ultimo repository.FiltroLog
}

func (f *fakeVinculoLog) Existe(context.Context, int64, string, int64) (bool, error) {
	return false, nil
}
func (f *fakeVinculoLog) InsertarSiFalta(context.Context, *entity.TareaVinculo) error { return nil }
func (f *fakeVinculoLog) PropietarioDe(context.Context, string, int64) (*int64, error) {
	return nil, nil
}
func (f *fakeVinculoLog) PorUsuario(context.Context, int64, int) ([]entity.TareaVinculo, error) {
	return nil, nil
}
func (f *fakeVinculoLog) Log(_ context.Context, filtro repository.FiltroLog) ([]repository.EntradaLog, error) {
	f.ultimo = filtro
	return f.filas, nil
}

// fakeFechas resuelve fecha_fin por (tabla, id); los ids en fallos simulan un
// registro cuya tabla de área no se puede consultar.
type fakeFechas struct {
	fechas map[int64]*time.Time
	fallos map[int64]bool
}

func (f *fakeFechas) FechaFinPorTabla(_ context.Context, _ string, id int64) (*time.Time, error) {
	if f.fallos[id] {
		return nil, errors.New("tabla inaccesible")
	}
	return f.fechas[id], nil
}

func (f *fakeFechas) PendientePorVIN(context.Context, *area.Area, string) (*entity.TareaArea, error) {
	return nil, nil
}
func (f *fakeFechas) UltimaPorVIN(context.Context, *area.Area, string) (*entity.TareaArea, error) {
	return nil, nil
}
func (f *fakeFechas) PorID(context.Context, *area.Area, int64) (*entity.TareaArea, error) {
	return nil, nil
}
func (f *fakeFechas) Insertar(context.Context, *area.Area, time.Time, *entity.CambiosTarea) (int64, error) {
	return 0, nil
}
func (f *fakeFechas) Actualizar(context.Context, *area.Area, int64, *entity.CambiosTarea) error {
	return nil
}
func (f *fakeFechas) ExisteFinalizadaPorVIN(context.Context, *area.Area, string) (bool, error) {
	return false, nil
}
func (f *fakeFechas) ValoresColumna(context.Context, *area.Area, string, int) ([]string, error) {
	return nil, nil
}
func (f *fakeFechas) UltimoColorPorVIN(context.Context, string) (*string, *string, error) {
	return nil, nil, nil
}

type fakePDF struct {
	recibidas []dto.EntradaLogDTO
}

func (f *fakePDF) GenerarLogPDF(entradas []dto.EntradaLogDTO) ([]byte, error) {
	f.recibidas = entradas
	return []byte("%PDF-fake"), nil
}

func logPrueba() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado
// ──────────────────────────────────────────────────────────────────────────────

func TestListado_TraduceAreaYResuelveFechas(t *testing.T) {
	fin := time.Date(2026, 2, 10, 14, 30, 0, 0, time.UTC)
	vinculos := &fakeVinculoLog{filas: []repository.EntradaLog{
		{ID: 3, FechaCreacion: time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC), Trabajador: "Ana Ruiz", TablaArea: "tareas_pintura", IDTareaArea: 31},
		{ID: 2, FechaCreacion: time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC), Trabajador: "Luis Mora", TablaArea: "tareas_chasis", IDTareaArea: 22},
	}}
	fechas := &fakeFechas{fechas: map[int64]*time.Time{31: &fin}}

	uc := busquedas.NewLogUseCase(vinculos, fechas, &fakePDF{}, logPrueba())
	out, err := uc.Listado(context.Background(), busquedas.Filtro{Area: "PINTURA"})
	require.NoError(t, err)
	require.Len(t, out, 2)

	// La clave de área del filtro se traduce a tabla antes de consultar.
	assert.Equal(t, "tareas_pintura", vinculos.ultimo.Tabla)
	assert.Equal(t, 1000, vinculos.ultimo.Limite)

	assert.Equal(t, "2026-02-10", out[0].Fecha)
	require.NotNil(t, out[0].FechaFin)
	assert.Equal(t, "2026-02-10 14:30:00", *out[0].FechaFin)
	assert.Equal(t, "Pintura", out[0].Area)
	assert.Equal(t, "Ana Ruiz", out[0].Trabajador)

	// Sin fecha_fin resuelta queda null, no cero.
	assert.Nil(t, out[1].FechaFin)
}

// Un área desconocida en el filtro no restringe por tabla.
func TestListado_AreaInvalidaNoFiltra(t *testing.T) {
	vinculos := &fakeVinculoLog{}
	uc := busquedas.NewLogUseCase(vinculos, &fakeFechas{}, &fakePDF{}, logPrueba())

	_, err := uc.Listado(context.Background(), busquedas.Filtro{Area: "motor", Trabajador: " ana "})
	require.NoError(t, err)
	assert.Empty(t, vinculos.ultimo.Tabla)
	assert.Equal(t, "ana", vinculos.ultimo.Trabajador, "los filtros de texto llegan recortados")
}

// El fallo al resolver la fecha_fin de una fila no aborta el listado: esa fila
// sale con fecha_fin null y el resto intacto.
func TestListado_FalloDeEnriquecimientoDegradaANull(t *testing.T) {
	fin := time.Date(2026, 2, 10, 14, 30, 0, 0, time.UTC)
	vinculos := &fakeVinculoLog{filas: []repository.EntradaLog{
		{ID: 2, FechaCreacion: time.Now(), Trabajador: "Ana", TablaArea: "tareas_chasis", IDTareaArea: 20},
		{ID: 1, FechaCreacion: time.Now(), Trabajador: "Luis", TablaArea: "tareas_chasis", IDTareaArea: 10},
	}}
	fechas := &fakeFechas{
		fechas: map[int64]*time.Time{10: &fin},
		fallos: map[int64]bool{20: true},
	}

	uc := busquedas.NewLogUseCase(vinculos, fechas, &fakePDF{}, logPrueba())
	out, err := uc.Listado(context.Background(), busquedas.Filtro{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Nil(t, out[0].FechaFin)
	require.NotNil(t, out[1].FechaFin)
}

// Una tabla que ya no corresponde a ningún área se lista con el título neutro.
func TestListado_TablaDesconocida(t *testing.T) {
	vinculos := &fakeVinculoLog{filas: []repository.EntradaLog{
		{ID: 1, FechaCreacion: time.Now(), Trabajador: "Ana", TablaArea: "tareas_vieja", IDTareaArea: 5},
	}}
	uc := busquedas.NewLogUseCase(vinculos, &fakeFechas{}, &fakePDF{}, logPrueba())

	out, err := uc.Listado(context.Background(), busquedas.Filtro{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "—", out[0].Area)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListadoPDF
// ──────────────────────────────────────────────────────────────────────────────

func TestListadoPDF_RenderizaElMismoListado(t *testing.T) {
	vinculos := &fakeVinculoLog{filas: []repository.EntradaLog{
		{ID: 1, FechaCreacion: time.Now(), Trabajador: "Ana", TablaArea: "tareas_montaje", IDTareaArea: 5},
	}}
	pdf := &fakePDF{}
	uc := busquedas.NewLogUseCase(vinculos, &fakeFechas{}, pdf, logPrueba())

	doc, err := uc.ListadoPDF(context.Background(), busquedas.Filtro{})
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
	require.Len(t, pdf.recibidas, 1)
	assert.Equal(t, "Montaje", pdf.recibidas[0].Area)
}
