package tareas

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCerrojoVIN_SerializaPorClave(t *testing.T) {
	c := nuevoCerrojoVIN()

	const goroutines = 50
	contador := 0

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			liberar := c.Bloquear("pintura:VF1RFB00X66123456")
			contador++
			liberar()
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, contador)
}

func TestCerrojoVIN_ClavesDistintasNoSeBloquean(t *testing.T) {
	c := nuevoCerrojoVIN()

	liberarA := c.Bloquear("pintura:AAA")
	liberarB := c.Bloquear("chasis:AAA")

	liberarB()
	liberarA()
}

func TestCerrojoVIN_LiberaEntradasSinEsperas(t *testing.T) {
	c := nuevoCerrojoVIN()

	liberar := c.Bloquear("montaje:BBB")

	c.mu.Lock()
	require.Len(t, c.entrada, 1)
	c.mu.Unlock()

	liberar()

	c.mu.Lock()
	assert.Empty(t, c.entrada)
	c.mu.Unlock()
}
