package dto

// CrearCatalogoRequest alta de una entrada del catálogo de tareas.
type CrearCatalogoRequest struct {
	Proceso string  `json:"proceso"`
	Seccion *string `json:"seccion"`
	Label   string  `json:"label"`
	Activa  *bool   `json:"activa"`
}

// ActualizarCatalogoRequest update parcial del catálogo (todos opcionales).
type ActualizarCatalogoRequest struct {
	Proceso *string `json:"proceso"`
	Seccion *string `json:"seccion"`
	Label   *string `json:"label"`
	Activa  *bool   `json:"activa"`
}

// CatalogoDTO una entrada del catálogo en respuestas.
type CatalogoDTO struct {
	ID      int64   `json:"id"`
	Proceso string  `json:"proceso"`
	Seccion *string `json:"seccion"`
	Label   string  `json:"label"`
	Activa  bool    `json:"activa"`
}
