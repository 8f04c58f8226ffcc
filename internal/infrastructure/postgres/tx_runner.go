package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Planta-api/internal/application/tareas"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// Ensure TxRunner implements tareas.TxRunner.
var _ tareas.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// La sección crítica de Iniciar (buscar candidata, comprobar propietario,
// escribir, vincular) corre completa aquí dentro.
func (r *TxRunner) Run(ctx context.Context, fn func(
	areaRepo repository.TareaAreaRepository,
	vinculoRepo repository.TareaVinculoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	areaRepo := NewTareaAreaRepository(tx)
	vinculoRepo := NewTareaVinculoRepository(tx)

	if err := fn(areaRepo, vinculoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
