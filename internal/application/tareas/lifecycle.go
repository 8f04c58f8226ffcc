package tareas

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/area"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// LifecycleUseCase es el motor del ciclo de vida de tareas de área:
// iniciar/reanudar por VIN, update parcial, finalizar y reabrir.
type LifecycleUseCase struct {
	tx          TxRunner
	usuarioRepo repository.UsuarioRepository
	areaRepo    repository.TareaAreaRepository
	cerrojos    *cerrojoVIN
	ahora       func() time.Time
}

// NewLifecycleUseCase construye el motor. areaRepo se usa para las mutaciones
// simples de una fila; tx para la sección crítica de Iniciar.
func NewLifecycleUseCase(tx TxRunner, usuarioRepo repository.UsuarioRepository, areaRepo repository.TareaAreaRepository) *LifecycleUseCase {
	return &LifecycleUseCase{
		tx:          tx,
		usuarioRepo: usuarioRepo,
		areaRepo:    areaRepo,
		cerrojos:    nuevoCerrojoVIN(),
		ahora:       time.Now,
	}
}

// Iniciar crea o reanuda la tarea pendiente de un VIN en un área.
//
// Si llega bastidor y existe una pendiente con ese VIN (la de id más alto),
// se reanuda: se comprueba que el propietario (vínculo más antiguo del libro)
// sea el solicitante y se actualiza esa misma fila. Si el propietario es otro,
// devuelve *domain.ErrBloqueada sin mutar nada. Si no hay pendiente se inserta
// una fila nueva. En ambos casos se asegura el vínculo (usuario, tabla, id) en
// el libro, sin duplicar.
//
// Toda la secuencia corre bajo el cerrojo del (área, VIN) y dentro de una
// transacción, para mantener una sola pendiente por VIN y área.
func (uc *LifecycleUseCase) Iniciar(ctx context.Context, in dto.IniciarRequest) (*dto.IniciarResponse, error) {
	if in.UsuarioID <= 0 {
		return nil, domain.ErrEntradaInvalida
	}
	u, err := uc.usuarioRepo.PorID(ctx, in.UsuarioID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	a, err := area.Resolver(in.Area)
	if err != nil {
		return nil, err
	}

	var vin string
	if in.Bastidor != nil {
		vin = area.NormalizarVIN(*in.Bastidor)
	}

	if vin != "" {
		libera := uc.cerrojos.Bloquear(a.Clave + "|" + vin)
		defer libera()
	}

	cambios := uc.construirCambios(a, in, vin)

	var idArea int64
	err = uc.tx.Run(ctx, func(areaRepo repository.TareaAreaRepository, vinculoRepo repository.TareaVinculoRepository) error {
		var previa *entity.TareaArea
		if vin != "" {
			p, err := areaRepo.PendientePorVIN(ctx, a, vin)
			if err != nil {
				return err
			}
			previa = p
		}

		if previa != nil {
			propietario, err := vinculoRepo.PropietarioDe(ctx, a.Tabla, previa.ID)
			if err != nil {
				return err
			}
			if propietario != nil && *propietario != in.UsuarioID {
				return &domain.ErrBloqueada{IDArea: previa.ID, PropietarioID: *propietario}
			}
			if err := areaRepo.Actualizar(ctx, a, previa.ID, cambios); err != nil {
				return err
			}
			idArea = previa.ID
		} else {
			id, err := areaRepo.Insertar(ctx, a, uc.ahora(), cambios)
			if err != nil {
				return err
			}
			idArea = id
		}

		return vinculoRepo.InsertarSiFalta(ctx, &entity.TareaVinculo{
			UsuarioID:     in.UsuarioID,
			TablaArea:     a.Tabla,
			IDTareaArea:   idArea,
			FechaCreacion: uc.ahora(),
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.IniciarResponse{Status: "success", Area: a.Clave, IDArea: idArea}, nil
}

// construirCambios arma el conjunto de campos a escribir: siempre estado
// pendiente con fecha_fin NULL, más bastidor/color/RAL si llegan (y el área
// tiene la columna) y los checks cuyos labels normalicen a columnas del área.
func (uc *LifecycleUseCase) construirCambios(a *area.Area, in dto.IniciarRequest, vin string) *entity.CambiosTarea {
	estado := entity.EstadoPendiente
	c := &entity.CambiosTarea{
		Estado:      &estado,
		FechaFinSet: true, // fecha_fin = NULL mientras está pendiente
		Checks:      a.ChecksDesdeLabels(in.Checks),
	}
	if vin != "" {
		c.Bastidor = &vin
	}
	if in.Color != nil && a.TieneColor {
		if v := strings.TrimSpace(*in.Color); v != "" {
			c.Color = &v
		}
	}
	if in.RAL != nil && a.TieneRAL {
		if v := strings.TrimSpace(*in.RAL); v != "" {
			c.RAL = &v
		}
	}
	return c
}

// Actualizar aplica un update parcial por id. Devuelve noop=true con el cuerpo
// vacío (nada que escribir) sin tocar la BD. No comprueba que el id exista:
// cero filas afectadas también es success.
func (uc *LifecycleUseCase) Actualizar(ctx context.Context, claveArea string, id int64, in dto.ActualizarRequest) (noop bool, err error) {
	a, err := area.Resolver(claveArea)
	if err != nil {
		return false, err
	}

	c := &entity.CambiosTarea{Checks: a.ChecksDesdeLabels(in.Checks)}
	if in.Bastidor != nil {
		if v := area.NormalizarVIN(*in.Bastidor); v != "" {
			c.Bastidor = &v
		}
	}
	if in.Color != nil && a.TieneColor {
		if v := strings.TrimSpace(*in.Color); v != "" {
			c.Color = &v
		}
	}
	if in.RAL != nil && a.TieneRAL {
		if v := strings.TrimSpace(*in.RAL); v != "" {
			c.RAL = &v
		}
	}

	if c.Vacio() {
		return true, nil
	}
	return false, uc.areaRepo.Actualizar(ctx, a, id, c)
}

// Finalizar marca la tarea como finalizada con fecha_fin = ahora. Sin guarda
// de estado: finalizar una finalizada vuelve a escribir la fecha.
func (uc *LifecycleUseCase) Finalizar(ctx context.Context, claveArea string, id int64) error {
	a, err := area.Resolver(claveArea)
	if err != nil {
		return err
	}
	estado := entity.EstadoFinalizada
	fin := uc.ahora()
	return uc.areaRepo.Actualizar(ctx, a, id, &entity.CambiosTarea{
		Estado:      &estado,
		FechaFin:    &fin,
		FechaFinSet: true,
	})
}

// Reabrir devuelve la tarea a pendiente y limpia fecha_fin.
func (uc *LifecycleUseCase) Reabrir(ctx context.Context, claveArea string, id int64) error {
	a, err := area.Resolver(claveArea)
	if err != nil {
		return err
	}
	estado := entity.EstadoPendiente
	return uc.areaRepo.Actualizar(ctx, a, id, &entity.CambiosTarea{
		Estado:      &estado,
		FechaFinSet: true, // fecha_fin = NULL
	})
}
