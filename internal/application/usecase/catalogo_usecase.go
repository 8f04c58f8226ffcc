package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/area"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// CatalogoUseCase CRUD del catálogo estático de tareas (colaborador fino).
type CatalogoUseCase struct {
	repo repository.CatalogoRepository
}

// NewCatalogoUseCase construye el caso de uso del catálogo.
func NewCatalogoUseCase(repo repository.CatalogoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{repo: repo}
}

// Listar devuelve el catálogo con filtros opcionales por proceso y activa,
// ordenado por proceso, sección y label.
func (uc *CatalogoUseCase) Listar(ctx context.Context, proceso string, activa *bool) ([]dto.CatalogoDTO, error) {
	if proceso != "" {
		if _, err := area.Resolver(proceso); err != nil {
			return nil, err
		}
	}
	entradas, err := uc.repo.Listar(ctx, repository.FiltroCatalogo{Proceso: proceso, Activa: activa})
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogoDTO, 0, len(entradas))
	for _, t := range entradas {
		out = append(out, dto.CatalogoDTO{
			ID: t.ID, Proceso: t.Proceso, Seccion: t.Seccion, Label: t.Label, Activa: t.Activa,
		})
	}
	return out, nil
}

// Crear da de alta una entrada del catálogo.
func (uc *CatalogoUseCase) Crear(ctx context.Context, in dto.CrearCatalogoRequest) (*dto.CatalogoDTO, error) {
	if _, err := area.Resolver(in.Proceso); err != nil {
		return nil, err
	}
	label := strings.TrimSpace(in.Label)
	if label == "" || len(label) > 255 || in.Activa == nil {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Seccion != nil && len(*in.Seccion) > 100 {
		return nil, domain.ErrEntradaInvalida
	}
	t := &entity.TareaCatalogo{
		Proceso: strings.ToLower(in.Proceso),
		Seccion: in.Seccion,
		Label:   label,
		Activa:  *in.Activa,
	}
	id, err := uc.repo.Crear(ctx, t)
	if err != nil {
		return nil, err
	}
	return &dto.CatalogoDTO{ID: id, Proceso: t.Proceso, Seccion: t.Seccion, Label: t.Label, Activa: t.Activa}, nil
}

// Actualizar aplica un update parcial. Devuelve noop=true con cuerpo vacío;
// domain.ErrNotFound si el id no existe.
func (uc *CatalogoUseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarCatalogoRequest) (noop bool, err error) {
	c := &repository.CambiosCatalogo{Seccion: in.Seccion, Activa: in.Activa}
	if in.Proceso != nil {
		if _, err := area.Resolver(*in.Proceso); err != nil {
			return false, err
		}
		p := strings.ToLower(*in.Proceso)
		c.Proceso = &p
	}
	if in.Label != nil {
		l := strings.TrimSpace(*in.Label)
		if l == "" || len(l) > 255 {
			return false, domain.ErrEntradaInvalida
		}
		c.Label = &l
	}
	if c.Vacio() {
		return true, nil
	}
	ok, err := uc.repo.Actualizar(ctx, id, c)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, domain.ErrNotFound
	}
	return false, nil
}

// Borrar elimina una entrada; domain.ErrNotFound si el id no existe.
func (uc *CatalogoUseCase) Borrar(ctx context.Context, id int64) error {
	ok, err := uc.repo.Borrar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
