package tareas

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain/area"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

const (
	maxBastidores      = 1000
	maxColores         = 500
	maxVinculosUsuario = 1000
	formatoFechaHora   = "2006-01-02 15:04:05"
)

// ConsultasUseCase proyecciones de solo lectura sobre las tablas de área y el
// libro de vínculos. Ninguna operación muta estado.
type ConsultasUseCase struct {
	areaRepo    repository.TareaAreaRepository
	vinculoRepo repository.TareaVinculoRepository
}

// NewConsultasUseCase construye el caso de uso de consultas.
func NewConsultasUseCase(areaRepo repository.TareaAreaRepository, vinculoRepo repository.TareaVinculoRepository) *ConsultasUseCase {
	return &ConsultasUseCase{areaRepo: areaRepo, vinculoRepo: vinculoRepo}
}

// EstadoVIN devuelve el estado de un bastidor en chasis:
// free (sin registros), finalized (el último está finalizado, bloquear en el
// front) o pending (con el snapshot de checks para reanudar).
func (uc *ConsultasUseCase) EstadoVIN(ctx context.Context, vin string) (*dto.EstadoVINResponse, error) {
	a, err := area.Resolver(area.ClaveChasis)
	if err != nil {
		return nil, err
	}
	t, err := uc.areaRepo.UltimaPorVIN(ctx, a, area.NormalizarVIN(vin))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return &dto.EstadoVINResponse{Status: "free"}, nil
	}
	switch t.Estado {
	case entity.EstadoFinalizada:
		return &dto.EstadoVINResponse{Status: "finalized"}, nil
	case entity.EstadoPendiente:
		return &dto.EstadoVINResponse{Status: "pending", ID: t.ID, Checks: checksCompletos(a, t)}, nil
	default:
		return &dto.EstadoVINResponse{Status: "free"}, nil
	}
}

// PendientePorVIN devuelve la pendiente más reciente de un VIN en el área.
// Con usuarioID > 0, solo si el libro de vínculos confirma que es suya;
// en caso contrario responde como si no existiera.
func (uc *ConsultasUseCase) PendientePorVIN(ctx context.Context, claveArea, vin string, usuarioID int64) (*dto.PendientePorVINResponse, error) {
	a, err := area.Resolver(claveArea)
	if err != nil {
		return nil, err
	}
	t, err := uc.areaRepo.PendientePorVIN(ctx, a, area.NormalizarVIN(vin))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return &dto.PendientePorVINResponse{Exists: false}, nil
	}
	if usuarioID > 0 {
		suya, err := uc.vinculoRepo.Existe(ctx, usuarioID, a.Tabla, t.ID)
		if err != nil {
			return nil, err
		}
		if !suya {
			return &dto.PendientePorVINResponse{Exists: false}, nil
		}
	}
	return &dto.PendientePorVINResponse{
		Exists:   true,
		ID:       t.ID,
		Bastidor: t.Bastidor,
		Color:    t.Color,
		RAL:      t.RAL,
		Checks:   checksCompletos(a, t),
	}, nil
}

// Snapshot devuelve la fila completa por id, sin filtrar por estado ni
// propietario, con los checks expandidos a todas las columnas del área.
func (uc *ConsultasUseCase) Snapshot(ctx context.Context, claveArea string, id int64) (*dto.SnapshotResponse, error) {
	a, err := area.Resolver(claveArea)
	if err != nil {
		return nil, err
	}
	t, err := uc.areaRepo.PorID(ctx, a, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return &dto.SnapshotResponse{Exists: false}, nil
	}
	inicio := t.FechaInicio.Format(formatoFechaHora)
	return &dto.SnapshotResponse{
		Exists:      true,
		ID:          t.ID,
		Estado:      &t.Estado,
		Bastidor:    t.Bastidor,
		Color:       t.Color,
		RAL:         t.RAL,
		FechaInicio: &inicio,
		Checks:      checksCompletos(a, t),
	}, nil
}

// FinalizadaPorVIN indica si existe algún registro finalizado del VIN en el área.
func (uc *ConsultasUseCase) FinalizadaPorVIN(ctx context.Context, claveArea, vin string) (bool, error) {
	a, err := area.Resolver(claveArea)
	if err != nil {
		return false, err
	}
	return uc.areaRepo.ExisteFinalizadaPorVIN(ctx, a, area.NormalizarVIN(vin))
}

// DisponibleMontaje indica si el VIN sigue libre en montaje (sin finalizadas).
func (uc *ConsultasUseCase) DisponibleMontaje(ctx context.Context, vin string) (bool, error) {
	usado, err := uc.FinalizadaPorVIN(ctx, area.ClaveMontaje, vin)
	if err != nil {
		return false, err
	}
	return !usado, nil
}

// PendientesUsuario recorre los vínculos del usuario, carga cada registro de
// área, filtra a pendientes y resume los checks. Deduplica por (área, id) y
// ordena por fecha_inicio descendente.
func (uc *ConsultasUseCase) PendientesUsuario(ctx context.Context, usuarioID int64) ([]dto.PendienteUsuario, error) {
	vinculos, err := uc.vinculoRepo.PorUsuario(ctx, usuarioID, maxVinculosUsuario)
	if err != nil {
		return nil, err
	}

	vistos := make(map[string]struct{})
	out := []dto.PendienteUsuario{}
	for _, v := range vinculos {
		a, ok := area.PorTabla(v.TablaArea)
		if !ok {
			continue
		}
		t, err := uc.areaRepo.PorID(ctx, a, v.IDTareaArea)
		if err != nil {
			return nil, err
		}
		if t == nil || t.Estado != entity.EstadoPendiente {
			continue
		}
		clave := a.Clave + "#" + itoa(t.ID)
		if _, dup := vistos[clave]; dup {
			continue
		}
		vistos[clave] = struct{}{}

		total, hechos := resumenChecks(a, t)
		out = append(out, dto.PendienteUsuario{
			Area:        a.Titulo,
			AreaKey:     a.Clave,
			ID:          t.ID,
			Bastidor:    t.Bastidor,
			Color:       t.Color,
			RAL:         t.RAL,
			FechaInicio: t.FechaInicio.Format(formatoFechaHora),
			TotalChecks: total,
			DoneChecks:  hechos,
		})
	}

	// Orden por fecha_inicio desc; el orden de recorrido desempata.
	ordenarPendientes(out)
	return out, nil
}

// BastidoresChasis devuelve los VIN válidos (17 alfanuméricos) de las últimas
// 1000 filas de chasis, normalizados y sin duplicados, en orden de aparición.
func (uc *ConsultasUseCase) BastidoresChasis(ctx context.Context) ([]string, error) {
	a, err := area.Resolver(area.ClaveChasis)
	if err != nil {
		return nil, err
	}
	crudos, err := uc.areaRepo.ValoresColumna(ctx, a, "bastidor", maxBastidores)
	if err != nil {
		return nil, err
	}
	vistos := make(map[string]struct{})
	out := []string{}
	for _, v := range crudos {
		vin := area.NormalizarVIN(v)
		if !area.VINValido(vin) {
			continue
		}
		if _, dup := vistos[vin]; dup {
			continue
		}
		vistos[vin] = struct{}{}
		out = append(out, vin)
	}
	return out, nil
}

// ColoresPintura devuelve los colores no vacíos de las últimas 500 filas de
// pintura, recortados y sin duplicados.
func (uc *ConsultasUseCase) ColoresPintura(ctx context.Context) ([]string, error) {
	a, err := area.Resolver(area.ClavePintura)
	if err != nil {
		return nil, err
	}
	crudos, err := uc.areaRepo.ValoresColumna(ctx, a, "color", maxColores)
	if err != nil {
		return nil, err
	}
	vistos := make(map[string]struct{})
	out := []string{}
	for _, v := range crudos {
		c := strings.TrimSpace(v)
		if c == "" {
			continue
		}
		if _, dup := vistos[c]; dup {
			continue
		}
		vistos[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

// ColorPorVIN devuelve el último color (y RAL) usado para ese VIN en pintura.
func (uc *ConsultasUseCase) ColorPorVIN(ctx context.Context, vin string) (*dto.ColorPorVINResponse, error) {
	color, ral, err := uc.areaRepo.UltimoColorPorVIN(ctx, area.NormalizarVIN(vin))
	if err != nil {
		return nil, err
	}
	return &dto.ColorPorVINResponse{Color: color, RAL: ral}, nil
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

// ordenarPendientes ordena por fecha_inicio descendente. La comparación es
// lexicográfica sobre el formato YYYY-MM-DD HH:MM:SS, que coincide con el
// orden cronológico; el orden estable conserva el de recorrido en empates.
func ordenarPendientes(xs []dto.PendienteUsuario) {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].FechaInicio > xs[j].FechaInicio
	})
}

// checksCompletos expande los checks de la fila a todas las columnas del
// checklist del área: las no marcadas salen en false.
func checksCompletos(a *area.Area, t *entity.TareaArea) map[string]bool {
	out := make(map[string]bool, len(a.Checklist))
	for _, c := range a.Checklist {
		out[c.Columna] = t.Checks[c.Columna]
	}
	return out
}

// resumenChecks cuenta total y hechos sobre el checklist completo del área.
func resumenChecks(a *area.Area, t *entity.TareaArea) (total, hechos int) {
	for _, c := range a.Checklist {
		total++
		if t.Checks[c.Columna] {
			hechos++
		}
	}
	return total, hechos
}
