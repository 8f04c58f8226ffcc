package entity

// TareaCatalogo es la definición estática de un item de checklist
// (catálogo administrado aparte; el motor de tareas no depende de él en runtime).
type TareaCatalogo struct {
	ID      int64
	Proceso string // pintura, chasis, premontaje, montaje
	Seccion *string
	Label   string
	Activa  bool
}
