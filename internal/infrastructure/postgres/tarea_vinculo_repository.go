package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.TareaVinculoRepository = (*TareaVinculoRepo)(nil)

// TareaVinculoRepo implementación del libro de vínculos (tabla global "tareas")
// sobre PostgreSQL (usable con pool o tx).
type TareaVinculoRepo struct {
	q Querier
}

// NewTareaVinculoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTareaVinculoRepository(q Querier) *TareaVinculoRepo {
	return &TareaVinculoRepo{q: q}
}

// Existe indica si ya hay un vínculo con esa tripleta exacta.
func (r *TareaVinculoRepo) Existe(ctx context.Context, usuarioID int64, tabla string, idTareaArea int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM tareas
			WHERE id_usuario = $1 AND tabla_area = $2 AND id_tarea_area = $3
		)`
	var existe bool
	if err := r.q.QueryRow(ctx, query, usuarioID, tabla, idTareaArea).Scan(&existe); err != nil {
		return false, fmt.Errorf("existe vínculo: %w", err)
	}
	return existe, nil
}

// InsertarSiFalta crea el vínculo si la tripleta no existe. El índice único de
// la tabla hace el insert idempotente también bajo concurrencia.
func (r *TareaVinculoRepo) InsertarSiFalta(ctx context.Context, v *entity.TareaVinculo) error {
	query := `
		INSERT INTO tareas (id_usuario, tabla_area, id_tarea_area, fecha_creacion)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id_usuario, tabla_area, id_tarea_area) DO NOTHING`
	_, err := r.q.Exec(ctx, query, v.UsuarioID, v.TablaArea, v.IDTareaArea, v.FechaCreacion)
	if err != nil {
		return fmt.Errorf("insertar vínculo: %w", err)
	}
	return nil
}

// PropietarioDe devuelve el usuario del vínculo más antiguo (primer reclamante), o nil.
func (r *TareaVinculoRepo) PropietarioDe(ctx context.Context, tabla string, idTareaArea int64) (*int64, error) {
	query := `
		SELECT id_usuario FROM tareas
		WHERE tabla_area = $1 AND id_tarea_area = $2
		ORDER BY id ASC LIMIT 1`
	rows, err := r.q.Query(ctx, query, tabla, idTareaArea)
	if err != nil {
		return nil, fmt.Errorf("propietario de %s/%d: %w", tabla, idTareaArea, err)
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	var id int64
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("scan propietario: %w", err)
	}
	return &id, nil
}

// PorUsuario devuelve los vínculos del usuario, más recientes primero.
func (r *TareaVinculoRepo) PorUsuario(ctx context.Context, usuarioID int64, n int) ([]entity.TareaVinculo, error) {
	query := `
		SELECT id, id_usuario, tabla_area, id_tarea_area, fecha_creacion
		FROM tareas
		WHERE id_usuario = $1
		ORDER BY id DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, usuarioID, n)
	if err != nil {
		return nil, fmt.Errorf("vínculos de usuario %d: %w", usuarioID, err)
	}
	defer rows.Close()
	var out []entity.TareaVinculo
	for rows.Next() {
		var v entity.TareaVinculo
		if err := rows.Scan(&v.ID, &v.UsuarioID, &v.TablaArea, &v.IDTareaArea, &v.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan vínculo: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Log devuelve el listado global unido a usuarios, más reciente primero.
func (r *TareaVinculoRepo) Log(ctx context.Context, f repository.FiltroLog) ([]repository.EntradaLog, error) {
	query := `
		SELECT t.id, t.fecha_creacion, u.full_name, t.tabla_area, t.id_tarea_area
		FROM tareas t
		JOIN usuarios u ON u.id = t.id_usuario
		WHERE ($1 = '' OR t.fecha_creacion::date >= $1::date)
		  AND ($2 = '' OR t.fecha_creacion::date <= $2::date)
		  AND ($3 = '' OR u.full_name ILIKE '%' || $3 || '%')
		  AND ($4 = '' OR t.tabla_area = $4)
		ORDER BY t.id DESC
		LIMIT $5`
	rows, err := r.q.Query(ctx, query, f.Desde, f.Hasta, f.Trabajador, f.Tabla, f.Limite)
	if err != nil {
		return nil, fmt.Errorf("log de tareas: %w", err)
	}
	defer rows.Close()
	var out []repository.EntradaLog
	for rows.Next() {
		var e repository.EntradaLog
		if err := rows.Scan(&e.ID, &e.FechaCreacion, &e.Trabajador, &e.TablaArea, &e.IDTareaArea); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
