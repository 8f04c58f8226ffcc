package repository

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// FiltroCatalogo filtros opcionales del listado del catálogo.
type FiltroCatalogo struct {
	Proceso string // vacío = todos
	Activa  *bool  // nil = todas
}

// CambiosCatalogo update parcial de una entrada del catálogo (nil = no tocar).
type CambiosCatalogo struct {
	Proceso *string
	Seccion *string
	Label   *string
	Activa  *bool
}

// Vacio indica que no hay nada que escribir.
func (c *CambiosCatalogo) Vacio() bool {
	return c.Proceso == nil && c.Seccion == nil && c.Label == nil && c.Activa == nil
}

// CatalogoRepository define el puerto de persistencia para el catálogo de tareas.
type CatalogoRepository interface {
	Listar(ctx context.Context, f FiltroCatalogo) ([]*entity.TareaCatalogo, error)
	Crear(ctx context.Context, t *entity.TareaCatalogo) (int64, error)
	// Actualizar aplica un update parcial; devuelve false si el id no existe.
	Actualizar(ctx context.Context, id int64, c *CambiosCatalogo) (bool, error)
	// Borrar devuelve false si el id no existe.
	Borrar(ctx context.Context, id int64) (bool, error)
}
