package tareas

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La secuencia buscar-candidata / comprobar
// propietario / escribir de Iniciar corre completa dentro de una transacción
// para que dos peticiones concurrentes del mismo VIN no inserten duplicados.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		areaRepo repository.TareaAreaRepository,
		vinculoRepo repository.TareaVinculoRepository,
	) error) error
}
