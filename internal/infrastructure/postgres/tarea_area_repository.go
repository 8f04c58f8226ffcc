package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Planta-api/internal/domain/area"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.TareaAreaRepository = (*TareaAreaRepo)(nil)

// TareaAreaRepo implementación del puerto TareaAreaRepository sobre PostgreSQL
// (usable con pool o tx). El SQL se arma a partir del descriptor del área:
// los nombres de columna salen siempre del esquema explícito, nunca del cliente.
type TareaAreaRepo struct {
	q Querier
}

// NewTareaAreaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTareaAreaRepository(q Querier) *TareaAreaRepo {
	return &TareaAreaRepo{q: q}
}

// columnasSelect lista de columnas del SELECT en orden estable:
// reservadas presentes en el área y después el checklist.
func columnasSelect(a *area.Area) []string {
	cols := []string{"id", "bastidor"}
	if a.TieneColor {
		cols = append(cols, "color")
	}
	if a.TieneRAL {
		cols = append(cols, "ral")
	}
	cols = append(cols, "estado", "fecha_inicio", "fecha_fin")
	return append(cols, a.Columnas()...)
}

// escanear mapea una fila al entity, con los checks indexados por columna.
func escanear(a *area.Area, row pgx.Row) (*entity.TareaArea, error) {
	t := &entity.TareaArea{Checks: make(map[string]bool, len(a.Checklist))}
	dests := []any{&t.ID, &t.Bastidor}
	if a.TieneColor {
		dests = append(dests, &t.Color)
	}
	if a.TieneRAL {
		dests = append(dests, &t.RAL)
	}
	dests = append(dests, &t.Estado, &t.FechaInicio, &t.FechaFin)
	checks := make([]bool, len(a.Checklist))
	for i := range checks {
		dests = append(dests, &checks[i])
	}
	if err := row.Scan(dests...); err != nil {
		return nil, err
	}
	for i, c := range a.Checklist {
		t.Checks[c.Columna] = checks[i]
	}
	return t, nil
}

// camposEscritura convierte CambiosTarea en pares columna/valor en orden
// estable (reservadas primero, checks ordenados alfabéticamente).
func camposEscritura(c *entity.CambiosTarea) (cols []string, vals []any) {
	if c.Bastidor != nil {
		cols = append(cols, "bastidor")
		vals = append(vals, *c.Bastidor)
	}
	if c.Color != nil {
		cols = append(cols, "color")
		vals = append(vals, *c.Color)
	}
	if c.RAL != nil {
		cols = append(cols, "ral")
		vals = append(vals, *c.RAL)
	}
	if c.Estado != nil {
		cols = append(cols, "estado")
		vals = append(vals, *c.Estado)
	}
	if c.FechaFinSet {
		cols = append(cols, "fecha_fin")
		vals = append(vals, c.FechaFin) // nil = NULL
	}
	checks := make([]string, 0, len(c.Checks))
	for col := range c.Checks {
		checks = append(checks, col)
	}
	sort.Strings(checks)
	for _, col := range checks {
		cols = append(cols, col)
		vals = append(vals, c.Checks[col])
	}
	return cols, vals
}

// PendientePorVIN devuelve la pendiente más reciente del bastidor (id más alto), o nil.
func (r *TareaAreaRepo) PendientePorVIN(ctx context.Context, a *area.Area, vin string) (*entity.TareaArea, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE estado = $1 AND bastidor = $2
		ORDER BY id DESC LIMIT 1`,
		strings.Join(columnasSelect(a), ", "), a.Tabla)
	t, err := escanear(a, r.q.QueryRow(ctx, query, entity.EstadoPendiente, vin))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("pendiente por vin en %s: %w", a.Tabla, err)
	}
	return t, nil
}

// UltimaPorVIN devuelve la fila más reciente del bastidor sin filtrar estado, o nil.
func (r *TareaAreaRepo) UltimaPorVIN(ctx context.Context, a *area.Area, vin string) (*entity.TareaArea, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE bastidor = $1
		ORDER BY id DESC LIMIT 1`,
		strings.Join(columnasSelect(a), ", "), a.Tabla)
	t, err := escanear(a, r.q.QueryRow(ctx, query, vin))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("última por vin en %s: %w", a.Tabla, err)
	}
	return t, nil
}

// PorID devuelve la fila por id, o nil si no existe.
func (r *TareaAreaRepo) PorID(ctx context.Context, a *area.Area, id int64) (*entity.TareaArea, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`,
		strings.Join(columnasSelect(a), ", "), a.Tabla)
	t, err := escanear(a, r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("tarea por id en %s: %w", a.Tabla, err)
	}
	return t, nil
}

// Insertar crea una fila nueva con fecha_inicio más los cambios y devuelve el id.
func (r *TareaAreaRepo) Insertar(ctx context.Context, a *area.Area, inicio time.Time, c *entity.CambiosTarea) (int64, error) {
	cols, vals := camposEscritura(c)
	cols = append([]string{"fecha_inicio"}, cols...)
	vals = append([]any{inicio}, vals...)

	marcas := make([]string, len(cols))
	for i := range cols {
		marcas[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
		a.Tabla, strings.Join(cols, ", "), strings.Join(marcas, ", "))

	var id int64
	if err := r.q.QueryRow(ctx, query, vals...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insertar en %s: %w", a.Tabla, err)
	}
	return id, nil
}

// Actualizar aplica un update parcial por id. Cero filas afectadas no es error.
func (r *TareaAreaRepo) Actualizar(ctx context.Context, a *area.Area, id int64, c *entity.CambiosTarea) error {
	cols, vals := camposEscritura(c)
	if len(cols) == 0 {
		return nil
	}
	sets := make([]string, len(cols))
	for i, col := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	vals = append(vals, id)
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`,
		a.Tabla, strings.Join(sets, ", "), len(vals))
	if _, err := r.q.Exec(ctx, query, vals...); err != nil {
		return fmt.Errorf("actualizar %s id %d: %w", a.Tabla, id, err)
	}
	return nil
}

// ExisteFinalizadaPorVIN indica si hay alguna finalizada con ese bastidor.
func (r *TareaAreaRepo) ExisteFinalizadaPorVIN(ctx context.Context, a *area.Area, vin string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE bastidor = $1 AND estado = $2)`, a.Tabla)
	var existe bool
	if err := r.q.QueryRow(ctx, query, vin, entity.EstadoFinalizada).Scan(&existe); err != nil {
		return false, fmt.Errorf("finalizada por vin en %s: %w", a.Tabla, err)
	}
	return existe, nil
}

// ValoresColumna devuelve los valores no vacíos de una columna reservada de las
// últimas n filas, de más reciente a más antigua. Solo admite bastidor o color.
func (r *TareaAreaRepo) ValoresColumna(ctx context.Context, a *area.Area, columna string, n int) ([]string, error) {
	if columna != "bastidor" && columna != "color" {
		return nil, fmt.Errorf("columna %q no listable", columna)
	}
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s IS NOT NULL AND %s <> ''
		ORDER BY id DESC LIMIT $1`, columna, a.Tabla, columna, columna)
	rows, err := r.q.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("valores de %s en %s: %w", columna, a.Tabla, err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan de %s: %w", columna, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// UltimoColorPorVIN devuelve color y RAL de la fila más reciente de pintura
// para ese bastidor; nil, nil si no hay filas.
func (r *TareaAreaRepo) UltimoColorPorVIN(ctx context.Context, vin string) (color, ral *string, err error) {
	query := `
		SELECT color, ral FROM tareas_pintura
		WHERE bastidor = $1
		ORDER BY id DESC LIMIT 1`
	err = r.q.QueryRow(ctx, query, vin).Scan(&color, &ral)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("color por vin: %w", err)
	}
	return color, ral, nil
}

// FechaFinPorTabla busca la fecha_fin por nombre de tabla (enriquecimiento del
// log). La tabla debe ser una de las cuatro de área; si no, es error y el
// caller decide (el log lo degrada a null).
func (r *TareaAreaRepo) FechaFinPorTabla(ctx context.Context, tabla string, id int64) (*time.Time, error) {
	if _, ok := area.PorTabla(tabla); !ok {
		return nil, fmt.Errorf("tabla %q desconocida", tabla)
	}
	query := fmt.Sprintf(`SELECT fecha_fin FROM %s WHERE id = $1`, tabla)
	var fin *time.Time
	if err := r.q.QueryRow(ctx, query, id).Scan(&fin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fecha_fin en %s: %w", tabla, err)
	}
	return fin, nil
}
