package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// FiltroLog criterios opcionales del listado global de tareas.
type FiltroLog struct {
	Desde      string // YYYY-MM-DD inclusive; vacío = sin límite
	Hasta      string // YYYY-MM-DD inclusive; vacío = sin límite
	Trabajador string // subcadena del nombre, insensible a mayúsculas
	Tabla      string // tabla de área exacta; vacío = todas
	Limite     int
}

// EntradaLog una fila del listado global con el nombre del trabajador resuelto.
type EntradaLog struct {
	ID            int64
	FechaCreacion time.Time
	Trabajador    string
	TablaArea     string
	IDTareaArea   int64
}

// TareaVinculoRepository define el puerto del libro de vínculos (tabla global
// "tareas"). Solo inserciones; el vínculo más antiguo de un registro es el
// propietario.
type TareaVinculoRepository interface {
	// Existe indica si ya hay un vínculo con esa tripleta exacta.
	Existe(ctx context.Context, usuarioID int64, tabla string, idTareaArea int64) (bool, error)
	// InsertarSiFalta crea el vínculo si la tripleta no existe; si ya existe no
	// duplica (inserción idempotente).
	InsertarSiFalta(ctx context.Context, v *entity.TareaVinculo) error
	// PropietarioDe devuelve el usuario del vínculo más antiguo para ese
	// registro, o nil si nadie lo ha reclamado.
	PropietarioDe(ctx context.Context, tabla string, idTareaArea int64) (*int64, error)
	// PorUsuario devuelve los vínculos del usuario, de más reciente a más
	// antiguo, hasta n filas.
	PorUsuario(ctx context.Context, usuarioID int64, n int) ([]entity.TareaVinculo, error)
	// Log devuelve el listado global unido a nombres de usuario, más reciente
	// primero, según el filtro.
	Log(ctx context.Context, f FiltroLog) ([]EntradaLog, error)
}
