// Package pdf genera el informe en PDF del buscador de tareas.
//
// Layout de la página A4 apaisada:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Registro de tareas de planta + fecha de emisión     │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: Id | Fecha | Fin | Trabajador | Área | Resultado     │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Planta-api/internal/application/busquedas"
	"github.com/jhoicas/Planta-api/internal/application/dto"
)

var (
	colorCabecera = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// anchos de columna (suman 12, la rejilla de maroto).
const (
	anchoID         = 1
	anchoFecha      = 2
	anchoFin        = 2
	anchoTrabajador = 4
	anchoArea       = 2
	anchoResultado  = 1
)

var _ busquedas.GeneradorPDF = (*MarotoLogGenerator)(nil)

// MarotoLogGenerator implementa busquedas.GeneradorPDF usando Maroto v2.
type MarotoLogGenerator struct{}

// NewMarotoLogGenerator construye el generador.
func NewMarotoLogGenerator() *MarotoLogGenerator { return &MarotoLogGenerator{} }

// GenerarLogPDF genera el informe y devuelve sus bytes.
func (g *MarotoLogGenerator) GenerarLogPDF(entradas []dto.EntradaLogDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Registro de tareas de planta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(10).Add(
		text.NewCol(8, "Registro de tareas de planta", props.Text{
			Size: 14, Style: fontstyle.Bold, Color: colorCabecera,
		}),
		text.NewCol(4, "Emitido: "+time.Now().Format("2006-01-02 15:04"), props.Text{
			Size: 9, Align: align.Right, Color: colorGris,
		}),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: colorCabecera, Thickness: 0.5}))

	m.AddRows(cabeceraTabla())
	for _, e := range entradas {
		m.AddRows(filaTabla(e))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe: %w", err)
	}
	return doc.GetBytes(), nil
}

func cabeceraTabla() core.Row {
	estilo := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorCabecera}
	return row.New(7).Add(
		text.NewCol(anchoID, "Id", estilo),
		text.NewCol(anchoFecha, "Fecha", estilo),
		text.NewCol(anchoFin, "Fin", estilo),
		text.NewCol(anchoTrabajador, "Trabajador", estilo),
		text.NewCol(anchoArea, "Área", estilo),
		text.NewCol(anchoResultado, "Res.", estilo),
	)
}

func filaTabla(e dto.EntradaLogDTO) core.Row {
	fin := "—"
	if e.FechaFin != nil {
		fin = *e.FechaFin
	}
	estilo := props.Text{Size: 8}
	return row.New(6).Add(
		text.NewCol(anchoID, fmt.Sprintf("%d", e.ID), estilo),
		text.NewCol(anchoFecha, e.Fecha, estilo),
		text.NewCol(anchoFin, fin, estilo),
		text.NewCol(anchoTrabajador, e.Trabajador, estilo),
		text.NewCol(anchoArea, e.Area, estilo),
		text.NewCol(anchoResultado, e.Resultado, estilo),
	)
}
