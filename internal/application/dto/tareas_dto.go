package dto

// IniciarRequest cuerpo de POST /tareas/iniciar. Checks mapea labels legibles
// ("Primer aplicado") a cualquier representación de booleano; los labels que no
// correspondan a columnas del área se descartan en silencio.
type IniciarRequest struct {
	UsuarioID int64          `json:"usuario_id"`
	Area      string         `json:"area"`
	Color     *string        `json:"color"`
	RAL       *string        `json:"RAL"`
	Bastidor  *string        `json:"bastidor"`
	Checks    map[string]any `json:"checks"`
}

// IniciarResponse respuesta de éxito de POST /tareas/iniciar.
type IniciarResponse struct {
	Status string `json:"status"`
	Area   string `json:"area"`
	IDArea int64  `json:"id_area"`
}

// BloqueadaResponse respuesta 423 cuando la pendiente del VIN es de otro usuario.
type BloqueadaResponse struct {
	Status  string `json:"status"` // siempre "locked_by_other"
	Area    string `json:"area"`
	IDArea  int64  `json:"id_area"`
	OwnerID int64  `json:"owner_id"`
}

// ActualizarRequest cuerpo de PUT /tareas/{area}/{id}: update parcial con
// campos reservados opcionales más checks por label.
type ActualizarRequest struct {
	Color    *string        `json:"color"`
	RAL      *string        `json:"RAL"`
	Bastidor *string        `json:"bastidor"`
	Checks   map[string]any `json:"checks"`
}

// SnapshotResponse reconstrucción completa de una tarea para reanudación.
type SnapshotResponse struct {
	Exists      bool            `json:"exists"`
	ID          int64           `json:"id,omitempty"`
	Estado      *string         `json:"estado,omitempty"`
	Bastidor    *string         `json:"bastidor"`
	Color       *string         `json:"color"`
	RAL         *string         `json:"RAL"`
	FechaInicio *string         `json:"fecha_inicio,omitempty"`
	Checks      map[string]bool `json:"checks,omitempty"`
}

// PendientePorVINResponse respuesta de GET /tareas/{area}/pendiente/{vin}.
type PendientePorVINResponse struct {
	Exists   bool            `json:"exists"`
	ID       int64           `json:"id,omitempty"`
	Bastidor *string         `json:"bastidor,omitempty"`
	Color    *string         `json:"color,omitempty"`
	RAL      *string         `json:"RAL,omitempty"`
	Checks   map[string]bool `json:"checks,omitempty"`
}

// EstadoVINResponse respuesta de GET /chasis/vin-estado/{vin}:
// free | finalized | pending (con checks).
type EstadoVINResponse struct {
	Status string          `json:"status"`
	ID     int64           `json:"id,omitempty"`
	Checks map[string]bool `json:"checks,omitempty"`
}

// PendienteUsuario una tarea pendiente del usuario con el resumen de checks.
type PendienteUsuario struct {
	Area        string  `json:"area"`
	AreaKey     string  `json:"area_key"`
	ID          int64   `json:"id"`
	Bastidor    *string `json:"bastidor"`
	Color       *string `json:"color"`
	RAL         *string `json:"RAL"`
	FechaInicio string  `json:"fecha_inicio"`
	TotalChecks int     `json:"total_checks"`
	DoneChecks  int     `json:"done_checks"`
}

// ColorPorVINResponse último color (y RAL) usado para un VIN en pintura.
type ColorPorVINResponse struct {
	Color *string `json:"color"`
	RAL   *string `json:"RAL"`
}

// DisponibleResponse respuesta de GET /montaje/vin-disponible/{vin}.
type DisponibleResponse struct {
	Available bool `json:"available"`
}

// FinalizadoResponse respuesta de GET /tareas/{area}/finalizado/{vin}.
type FinalizadoResponse struct {
	Finalized bool `json:"finalized"`
}
