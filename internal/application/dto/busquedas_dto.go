package dto

// EntradaLogDTO una fila del buscador global de tareas. FechaFin es null cuando
// el registro de área no se pudo resolver (tolerancia de fallo parcial del log).
type EntradaLogDTO struct {
	ID         int64   `json:"id"`
	Fecha      string  `json:"fecha"`
	FechaFin   *string `json:"fecha_fin"`
	Trabajador string  `json:"trabajador"`
	Area       string  `json:"area"`
	Accion     string  `json:"accion"`
	Resultado  string  `json:"resultado"`
}
