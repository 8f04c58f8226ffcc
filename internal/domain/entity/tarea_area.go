package entity

import "time"

// Estados del ciclo de vida de una tarea de área.
// Ambas transiciones (pendiente -> finalizada y vuelta) están siempre permitidas.
const (
	EstadoPendiente  = "pendiente"
	EstadoFinalizada = "finalizada"
)

// TareaArea es una fila de una tabla de área (tareas_pintura, tareas_chasis,
// tareas_premontaje o tareas_montaje). Los checks son las columnas booleanas
// del checklist del área, indexadas por nombre de columna.
//
// Invariante: Estado == pendiente implica FechaFin == nil;
// Estado == finalizada implica FechaFin != nil.
type TareaArea struct {
	ID          int64
	Bastidor    *string // VIN, en mayúsculas y sin espacios
	Color       *string
	RAL         *string
	Estado      string
	FechaInicio time.Time
	FechaFin    *time.Time
	Checks      map[string]bool
}

// TotalChecks devuelve cuántos items tiene el checklist y cuántos están hechos.
func (t *TareaArea) TotalChecks() (total, hechos int) {
	for _, v := range t.Checks {
		total++
		if v {
			hechos++
		}
	}
	return total, hechos
}

// CambiosTarea es el conjunto tipado de campos a escribir en una tarea de área.
// Sustituye a los mapas sueltos: cada campo reservado es opcional (nil = no tocar)
// y los checks llegan ya normalizados a nombre de columna válido del área.
type CambiosTarea struct {
	Bastidor *string
	Color    *string
	RAL      *string
	Estado   *string
	// FechaFin se escribe solo si FechaFinSet es true; con FechaFin nil se
	// escribe NULL (reapertura). Así el par estado/fecha_fin viaja siempre junto.
	FechaFin    *time.Time
	FechaFinSet bool
	Checks      map[string]bool
}

// Vacio indica que no hay nada que escribir.
func (c *CambiosTarea) Vacio() bool {
	return c.Bastidor == nil && c.Color == nil && c.RAL == nil &&
		c.Estado == nil && !c.FechaFinSet && len(c.Checks) == 0
}
