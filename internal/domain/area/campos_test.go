package area_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Planta-api/internal/domain/area"
)

func TestNormalizarLabel(t *testing.T) {
	casos := []struct {
		in   string
		want string
	}{
		{"Primer aplicado", "primer_aplicado"},
		{"Inspección cabina", "inspeccion_cabina"},
		{"Número grabado", "numero_grabado"},
		{"  Barniz   aplicado  ", "barniz_aplicado"},
		{"Prueba de rodillos", "prueba_de_rodillos"},
		{"Capa-color (2a mano)", "capa_color_2a_mano"},
		{"ya_normalizado", "ya_normalizado"},
		{"___", ""},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, area.NormalizarLabel(c.in), "entrada %q", c.in)
	}
}

// Normalizar dos veces da lo mismo que una: el resultado ya es estable.
func TestNormalizarLabel_Idempotente(t *testing.T) {
	entradas := []string{"Inspección cabina", "Depósito instalado", "Transmisión acoplada", "RAL 9010"}
	for _, in := range entradas {
		una := area.NormalizarLabel(in)
		assert.Equal(t, una, area.NormalizarLabel(una), "entrada %q", in)
	}
}

func TestNormalizarVIN(t *testing.T) {
	assert.Equal(t, "VF1RFB00X66123456", area.NormalizarVIN("  vf1rfb00x66123456 "))
	assert.Equal(t, "", area.NormalizarVIN("   "))
}

func TestVINValido(t *testing.T) {
	assert.True(t, area.VINValido("VF1RFB00X66123456"))

	for _, vin := range []string{
		"",
		"VF1RFB00X6612345",   // 16
		"VF1RFB00X661234567", // 18
		"vf1rfb00x66123456",  // minúsculas, sin normalizar
		"VF1RFB00X6612345-",  // carácter no alfanumérico
		"VF1RFB00X66 123456", // espacio interior
	} {
		assert.False(t, area.VINValido(vin), "VIN %q no debe ser válido", vin)
	}
}

func TestCoerceBool(t *testing.T) {
	verdaderos := []any{true, 1, int64(2), 3.5, "true", "1", "on", "YES", "si", "Sí", " TRUE "}
	for _, v := range verdaderos {
		assert.True(t, area.CoerceBool(v), "valor %v (%T)", v, v)
	}
	falsos := []any{false, 0, int64(0), 0.0, "", "false", "0", "off", "no", "cualquiercosa", nil, []string{"true"}}
	for _, v := range falsos {
		assert.False(t, area.CoerceBool(v), "valor %v (%T)", v, v)
	}
}
