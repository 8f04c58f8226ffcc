package tareas

import "sync"

// cerrojoVIN serializa las peticiones que compiten por el mismo (área, VIN)
// dentro del proceso. Complementa a la transacción de BD: sin él, dos Iniciar
// simultáneos del mismo bastidor podrían no ver la pendiente del otro e
// insertar dos registros.
type cerrojoVIN struct {
	mu      sync.Mutex
	entrada map[string]*entradaCerrojo
}

type entradaCerrojo struct {
	mu   sync.Mutex
	refs int
}

func nuevoCerrojoVIN() *cerrojoVIN {
	return &cerrojoVIN{entrada: make(map[string]*entradaCerrojo)}
}

// Bloquear toma el cerrojo de la clave y devuelve la función que lo libera.
// Las entradas se eliminan del mapa cuando nadie las espera.
func (c *cerrojoVIN) Bloquear(clave string) func() {
	c.mu.Lock()
	e, ok := c.entrada[clave]
	if !ok {
		e = &entradaCerrojo{}
		c.entrada[clave] = e
	}
	e.refs++
	c.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()
		c.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(c.entrada, clave)
		}
		c.mu.Unlock()
	}
}
