// Package area define las cuatro áreas de producción y el mapeo de labels de
// checklist a columnas de sus tablas. Es código puro, sin I/O: los esquemas se
// cargan una vez al arrancar en lugar de introspeccionar la tabla por petición.
package area

import (
	"strings"

	"github.com/jhoicas/Planta-api/internal/domain"
)

// Claves de área aceptadas en la API (tokens en castellano, tal como los envía el front).
const (
	ClavePintura    = "pintura"
	ClaveChasis     = "chasis"
	ClavePremontaje = "premontaje"
	ClaveMontaje    = "montaje"
)

// Campo es un item del checklist de un área: columna física y label visible.
type Campo struct {
	Columna string
	Label   string
}

// Area describe una estación de producción: su tabla física y su esquema.
// El checklist es la lista explícita de columnas booleanas permitidas;
// cualquier label que no normalice a una de ellas se descarta en escritura.
type Area struct {
	Clave      string
	Tabla      string
	Titulo     string
	TieneColor bool
	TieneRAL   bool
	Checklist  []Campo
}

// columnas reservadas que nunca son checks (coinciden con el esquema físico).
var reservadas = map[string]struct{}{
	"id":           {},
	"color":        {},
	"ral":          {},
	"bastidor":     {},
	"fecha_inicio": {},
	"fecha_fin":    {},
	"estado":       {},
}

// EsReservada indica si una columna pertenece al conjunto reservado
// (comparación exacta, sensible a mayúsculas).
func EsReservada(col string) bool {
	_, ok := reservadas[col]
	return ok
}

// ColumnasCheck devuelve, de un esquema completo de columnas, las que son
// checks: todas las que no están en el conjunto reservado.
func ColumnasCheck(esquema []string) []string {
	var out []string
	for _, c := range esquema {
		if !EsReservada(c) {
			out = append(out, c)
		}
	}
	return out
}

var areas = []*Area{
	{
		Clave:      ClavePintura,
		Tabla:      "tareas_pintura",
		Titulo:     "Pintura",
		TieneColor: true,
		TieneRAL:   true,
		Checklist: []Campo{
			{Columna: "imprimacion_aplicada", Label: "Imprimación aplicada"},
			{Columna: "lijado_completado", Label: "Lijado completado"},
			{Columna: "capa_base", Label: "Capa base"},
			{Columna: "capa_color", Label: "Capa color"},
			{Columna: "barniz_aplicado", Label: "Barniz aplicado"},
			{Columna: "pulido_final", Label: "Pulido final"},
			{Columna: "inspeccion_cabina", Label: "Inspección cabina"},
		},
	},
	{
		Clave:      ClaveChasis,
		Tabla:      "tareas_chasis",
		Titulo:     "Chasis",
		TieneColor: false,
		TieneRAL:   false,
		Checklist: []Campo{
			{Columna: "primer_aplicado", Label: "Primer aplicado"},
			{Columna: "soldaduras_revisadas", Label: "Soldaduras revisadas"},
			{Columna: "ejes_montados", Label: "Ejes montados"},
			{Columna: "frenos_instalados", Label: "Frenos instalados"},
			{Columna: "cableado_chasis", Label: "Cableado chasis"},
			{Columna: "numero_grabado", Label: "Número grabado"},
		},
	},
	{
		Clave:      ClavePremontaje,
		Tabla:      "tareas_premontaje",
		Titulo:     "Premontaje",
		TieneColor: true,
		TieneRAL:   false,
		Checklist: []Campo{
			{Columna: "cableado_preparado", Label: "Cableado preparado"},
			{Columna: "salpicadero_montado", Label: "Salpicadero montado"},
			{Columna: "asientos_preparados", Label: "Asientos preparados"},
			{Columna: "cristales_preparados", Label: "Cristales preparados"},
			{Columna: "deposito_instalado", Label: "Depósito instalado"},
		},
	},
	{
		Clave:      ClaveMontaje,
		Tabla:      "tareas_montaje",
		Titulo:     "Montaje",
		TieneColor: false,
		TieneRAL:   false,
		Checklist: []Campo{
			{Columna: "motor_montado", Label: "Motor montado"},
			{Columna: "transmision_acoplada", Label: "Transmisión acoplada"},
			{Columna: "ruedas_montadas", Label: "Ruedas montadas"},
			{Columna: "interior_completo", Label: "Interior completo"},
			{Columna: "prueba_rodillos", Label: "Prueba de rodillos"},
			{Columna: "revision_final", Label: "Revisión final"},
		},
	},
}

var porClave = func() map[string]*Area {
	m := make(map[string]*Area, len(areas))
	for _, a := range areas {
		m[a.Clave] = a
	}
	return m
}()

var porTabla = func() map[string]*Area {
	m := make(map[string]*Area, len(areas))
	for _, a := range areas {
		m[a.Tabla] = a
	}
	return m
}()

// Resolver mapea una clave de área (insensible a mayúsculas) a su descriptor.
// Devuelve domain.ErrAreaInvalida para cualquier otro valor.
func Resolver(clave string) (*Area, error) {
	a, ok := porClave[strings.ToLower(strings.TrimSpace(clave))]
	if !ok {
		return nil, domain.ErrAreaInvalida
	}
	return a, nil
}

// PorTabla mapea un nombre de tabla física a su descriptor (para el log).
func PorTabla(tabla string) (*Area, bool) {
	a, ok := porTabla[tabla]
	return a, ok
}

// Todas devuelve los descriptores de las cuatro áreas en orden estable.
func Todas() []*Area {
	return areas
}

// EsCheck indica si la columna pertenece al checklist del área.
func (a *Area) EsCheck(col string) bool {
	for _, c := range a.Checklist {
		if c.Columna == col {
			return true
		}
	}
	return false
}

// Columnas devuelve los nombres de columna del checklist en orden.
func (a *Area) Columnas() []string {
	out := make([]string, len(a.Checklist))
	for i, c := range a.Checklist {
		out[i] = c.Columna
	}
	return out
}

// ChecksDesdeLabels filtra un mapa label -> valor contra el checklist del área:
// normaliza cada label, descarta en silencio los que no son columnas del área
// y coerciona el valor a booleano.
func (a *Area) ChecksDesdeLabels(labels map[string]any) map[string]bool {
	if len(labels) == 0 {
		return nil
	}
	out := make(map[string]bool)
	for label, v := range labels {
		col := NormalizarLabel(label)
		if !a.EsCheck(col) {
			continue
		}
		out[col] = CoerceBool(v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
