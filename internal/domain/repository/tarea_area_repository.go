package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Planta-api/internal/domain/area"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// TareaAreaRepository define el puerto de persistencia para las tablas de área.
// Todas las operaciones reciben el descriptor del área destino; las columnas de
// checks que acepta cada escritura son exactamente las del checklist del área.
type TareaAreaRepository interface {
	// PendientePorVIN devuelve la tarea pendiente más reciente (id más alto)
	// con ese bastidor, o nil si no hay ninguna.
	PendientePorVIN(ctx context.Context, a *area.Area, vin string) (*entity.TareaArea, error)
	// UltimaPorVIN devuelve la tarea más reciente con ese bastidor sin filtrar
	// por estado, o nil si no hay ninguna.
	UltimaPorVIN(ctx context.Context, a *area.Area, vin string) (*entity.TareaArea, error)
	// PorID devuelve la tarea por id, o nil si no existe.
	PorID(ctx context.Context, a *area.Area, id int64) (*entity.TareaArea, error)
	// Insertar crea una tarea nueva con fecha_inicio = inicio más los cambios
	// indicados y devuelve el id generado.
	Insertar(ctx context.Context, a *area.Area, inicio time.Time, c *entity.CambiosTarea) (int64, error)
	// Actualizar aplica un update parcial por id. No comprueba existencia:
	// cero filas afectadas no es error.
	Actualizar(ctx context.Context, a *area.Area, id int64, c *entity.CambiosTarea) error
	// ExisteFinalizadaPorVIN indica si hay alguna tarea finalizada con ese bastidor.
	ExisteFinalizadaPorVIN(ctx context.Context, a *area.Area, vin string) (bool, error)
	// ValoresColumna devuelve los valores crudos de una columna reservada
	// (bastidor o color) de las últimas n filas, de más reciente a más antigua.
	ValoresColumna(ctx context.Context, a *area.Area, columna string, n int) ([]string, error)
	// UltimoColorPorVIN devuelve color y RAL de la fila más reciente de pintura
	// para ese bastidor (nil, nil si no hay filas).
	UltimoColorPorVIN(ctx context.Context, vin string) (color, ral *string, err error)
	// FechaFinPorTabla busca la fecha_fin de un registro identificado por nombre
	// de tabla, para el enriquecimiento del log. El fallo se trata en el caller.
	FechaFinPorTabla(ctx context.Context, tabla string, id int64) (*time.Time, error)
}
