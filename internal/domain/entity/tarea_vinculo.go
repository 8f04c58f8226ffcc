package entity

import "time"

// TareaVinculo es una entrada del libro de vínculos (tabla global "tareas"):
// qué usuario reclamó qué registro de área y cuándo. Solo se inserta, nunca se
// actualiza ni borra; el vínculo más antiguo de un registro define al propietario.
type TareaVinculo struct {
	ID            int64
	UsuarioID     int64
	TablaArea     string // tareas_pintura, tareas_chasis, ...
	IDTareaArea   int64
	FechaCreacion time.Time // solo fecha, sin hora
}
