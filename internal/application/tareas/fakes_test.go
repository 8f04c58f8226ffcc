package tareas_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Planta-api/internal/application/tareas"
	"github.com/jhoicas/Planta-api/internal/domain/area"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los repositorios. Reproducen la semántica de órdenes de
// la capa postgres: candidata = pendiente de id más alto, propietario = vínculo
// de id más bajo.
// ──────────────────────────────────────────────────────────────────────────────

type fakeAreaRepo struct {
	mu    sync.Mutex
	seq   int64
	filas map[string][]*entity.TareaArea // por tabla, en orden de inserción
}

func nuevoFakeAreaRepo() *fakeAreaRepo {
	return &fakeAreaRepo{filas: make(map[string][]*entity.TareaArea)}
}

func (r *fakeAreaRepo) aplicar(t *entity.TareaArea, c *entity.CambiosTarea) {
	if c.Bastidor != nil {
		t.Bastidor = c.Bastidor
	}
	if c.Color != nil {
		t.Color = c.Color
	}
	if c.RAL != nil {
		t.RAL = c.RAL
	}
	if c.Estado != nil {
		t.Estado = *c.Estado
	}
	if c.FechaFinSet {
		t.FechaFin = c.FechaFin
	}
	if len(c.Checks) > 0 {
		if t.Checks == nil {
			t.Checks = make(map[string]bool)
		}
		for col, v := range c.Checks {
			t.Checks[col] = v
		}
	}
}

func (r *fakeAreaRepo) PendientePorVIN(_ context.Context, a *area.Area, vin string) (*entity.TareaArea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	filas := r.filas[a.Tabla]
	for i := len(filas) - 1; i >= 0; i-- {
		t := filas[i]
		if t.Estado == entity.EstadoPendiente && t.Bastidor != nil && *t.Bastidor == vin {
			copia := *t
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeAreaRepo) UltimaPorVIN(_ context.Context, a *area.Area, vin string) (*entity.TareaArea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	filas := r.filas[a.Tabla]
	for i := len(filas) - 1; i >= 0; i-- {
		t := filas[i]
		if t.Bastidor != nil && *t.Bastidor == vin {
			copia := *t
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeAreaRepo) PorID(_ context.Context, a *area.Area, id int64) (*entity.TareaArea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.filas[a.Tabla] {
		if t.ID == id {
			copia := *t
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeAreaRepo) Insertar(_ context.Context, a *area.Area, inicio time.Time, c *entity.CambiosTarea) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	t := &entity.TareaArea{ID: r.seq, Estado: entity.EstadoPendiente, FechaInicio: inicio}
	r.aplicar(t, c)
	r.filas[a.Tabla] = append(r.filas[a.Tabla], t)
	return t.ID, nil
}

func (r *fakeAreaRepo) Actualizar(_ context.Context, a *area.Area, id int64, c *entity.CambiosTarea) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.filas[a.Tabla] {
		if t.ID == id {
			r.aplicar(t, c)
			return nil
		}
	}
	return nil // cero filas afectadas no es error
}

func (r *fakeAreaRepo) ExisteFinalizadaPorVIN(_ context.Context, a *area.Area, vin string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.filas[a.Tabla] {
		if t.Estado == entity.EstadoFinalizada && t.Bastidor != nil && *t.Bastidor == vin {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAreaRepo) ValoresColumna(_ context.Context, a *area.Area, columna string, n int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []string{}
	filas := r.filas[a.Tabla]
	for i := len(filas) - 1; i >= 0 && len(out) < n; i-- {
		var v *string
		switch columna {
		case "bastidor":
			v = filas[i].Bastidor
		case "color":
			v = filas[i].Color
		}
		if v != nil && *v != "" {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *fakeAreaRepo) UltimoColorPorVIN(ctx context.Context, vin string) (color, ral *string, err error) {
	pintura, _ := area.Resolver(area.ClavePintura)
	t, err := r.UltimaPorVIN(ctx, pintura, vin)
	if err != nil || t == nil {
		return nil, nil, err
	}
	return t.Color, t.RAL, nil
}

func (r *fakeAreaRepo) FechaFinPorTabla(_ context.Context, tabla string, id int64) (*time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.filas[tabla] {
		if t.ID == id {
			return t.FechaFin, nil
		}
	}
	return nil, nil
}

type fakeVinculoRepo struct {
	mu       sync.Mutex
	seq      int64
	vinculos []entity.TareaVinculo
}

func (r *fakeVinculoRepo) Existe(_ context.Context, usuarioID int64, tabla string, idTareaArea int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.vinculos {
		if v.UsuarioID == usuarioID && v.TablaArea == tabla && v.IDTareaArea == idTareaArea {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeVinculoRepo) InsertarSiFalta(ctx context.Context, v *entity.TareaVinculo) error {
	if ya, _ := r.Existe(ctx, v.UsuarioID, v.TablaArea, v.IDTareaArea); ya {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	nuevo := *v
	nuevo.ID = r.seq
	r.vinculos = append(r.vinculos, nuevo)
	return nil
}

func (r *fakeVinculoRepo) PropietarioDe(_ context.Context, tabla string, idTareaArea int64) (*int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// El slice está en orden de inserción: el primero que coincide es el más antiguo.
	for _, v := range r.vinculos {
		if v.TablaArea == tabla && v.IDTareaArea == idTareaArea {
			id := v.UsuarioID
			return &id, nil
		}
	}
	return nil, nil
}

func (r *fakeVinculoRepo) PorUsuario(_ context.Context, usuarioID int64, n int) ([]entity.TareaVinculo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.TareaVinculo{}
	for i := len(r.vinculos) - 1; i >= 0 && len(out) < n; i-- {
		if r.vinculos[i].UsuarioID == usuarioID {
			out = append(out, r.vinculos[i])
		}
	}
	return out, nil
}

func (r *fakeVinculoRepo) Log(_ context.Context, _ repository.FiltroLog) ([]repository.EntradaLog, error) {
	return nil, nil
}

type fakeUsuarioRepo struct {
	usuarios map[int64]*entity.Usuario
}

func (r *fakeUsuarioRepo) Crear(_ context.Context, _ *entity.Usuario) (int64, error) { return 0, nil }

func (r *fakeUsuarioRepo) PorID(_ context.Context, id int64) (*entity.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (r *fakeUsuarioRepo) PorEmail(_ context.Context, _ string) (*entity.Usuario, error) {
	return nil, nil
}
func (r *fakeUsuarioRepo) Listar(_ context.Context) ([]*entity.Usuario, error) { return nil, nil }
func (r *fakeUsuarioRepo) Actualizar(_ context.Context, _ *entity.Usuario) error     { return nil }
func (r *fakeUsuarioRepo) ActualizarHash(_ context.Context, _ int64, _ string) error { return nil }
func (r *fakeUsuarioRepo) Borrar(_ context.Context, _ int64) error                   { return nil }

// fakeTx ejecuta el cierre directamente sobre los dobles, sin transacción real.
type fakeTx struct {
	areaRepo    *fakeAreaRepo
	vinculoRepo *fakeVinculoRepo
}

func (tx *fakeTx) Run(_ context.Context, fn func(repository.TareaAreaRepository, repository.TareaVinculoRepository) error) error {
	return fn(tx.areaRepo, tx.vinculoRepo)
}

var _ tareas.TxRunner = (*fakeTx)(nil)

// entorno agrupa los dobles y los casos de uso ya cableados.
type entorno struct {
	areaRepo    *fakeAreaRepo
	vinculoRepo *fakeVinculoRepo
	usuarioRepo *fakeUsuarioRepo
	lifecycle   *tareas.LifecycleUseCase
	consultas   *tareas.ConsultasUseCase
}

func nuevoEntorno(usuarios ...int64) *entorno {
	ur := &fakeUsuarioRepo{usuarios: make(map[int64]*entity.Usuario)}
	for _, id := range usuarios {
		ur.usuarios[id] = &entity.Usuario{ID: id, FullName: "Operario", Rol: entity.RolUser, Activo: true}
	}
	ar := nuevoFakeAreaRepo()
	vr := &fakeVinculoRepo{}
	return &entorno{
		areaRepo:    ar,
		vinculoRepo: vr,
		usuarioRepo: ur,
		lifecycle:   tareas.NewLifecycleUseCase(&fakeTx{areaRepo: ar, vinculoRepo: vr}, ur, ar),
		consultas:   tareas.NewConsultasUseCase(ar, vr),
	}
}

func ptr(s string) *string { return &s }
