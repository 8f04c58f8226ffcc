package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// CatalogoRepo implementación del catálogo de tareas sobre PostgreSQL.
type CatalogoRepo struct {
	q Querier
}

// NewCatalogoRepository construye el adaptador del catálogo.
func NewCatalogoRepository(q Querier) *CatalogoRepo {
	return &CatalogoRepo{q: q}
}

// Listar devuelve el catálogo filtrado, ordenado por proceso, sección y label.
func (r *CatalogoRepo) Listar(ctx context.Context, f repository.FiltroCatalogo) ([]*entity.TareaCatalogo, error) {
	query := `
		SELECT id, proceso, seccion, label, activa
		FROM tareas_catalogo
		WHERE ($1 = '' OR proceso = $1)
		  AND ($2::boolean IS NULL OR activa = $2)
		ORDER BY proceso, seccion NULLS FIRST, label`
	rows, err := r.q.Query(ctx, query, f.Proceso, f.Activa)
	if err != nil {
		return nil, fmt.Errorf("listar catálogo: %w", err)
	}
	defer rows.Close()
	var out []*entity.TareaCatalogo
	for rows.Next() {
		var t entity.TareaCatalogo
		if err := rows.Scan(&t.ID, &t.Proceso, &t.Seccion, &t.Label, &t.Activa); err != nil {
			return nil, fmt.Errorf("scan catálogo: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// Crear inserta una entrada y devuelve su id.
func (r *CatalogoRepo) Crear(ctx context.Context, t *entity.TareaCatalogo) (int64, error) {
	query := `
		INSERT INTO tareas_catalogo (proceso, seccion, label, activa)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	if err := r.q.QueryRow(ctx, query, t.Proceso, t.Seccion, t.Label, t.Activa).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert catálogo: %w", err)
	}
	return id, nil
}

// Actualizar aplica un update parcial; false si el id no existe.
func (r *CatalogoRepo) Actualizar(ctx context.Context, id int64, c *repository.CambiosCatalogo) (bool, error) {
	var sets []string
	var vals []any
	add := func(col string, v any) {
		vals = append(vals, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(vals)))
	}
	if c.Proceso != nil {
		add("proceso", *c.Proceso)
	}
	if c.Seccion != nil {
		add("seccion", *c.Seccion)
	}
	if c.Label != nil {
		add("label", *c.Label)
	}
	if c.Activa != nil {
		add("activa", *c.Activa)
	}
	if len(sets) == 0 {
		return true, nil
	}
	vals = append(vals, id)
	query := fmt.Sprintf(`UPDATE tareas_catalogo SET %s WHERE id = $%d`,
		strings.Join(sets, ", "), len(vals))
	tag, err := r.q.Exec(ctx, query, vals...)
	if err != nil {
		return false, fmt.Errorf("update catálogo %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Borrar elimina una entrada; false si el id no existe.
func (r *CatalogoRepo) Borrar(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM tareas_catalogo WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete catálogo %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
