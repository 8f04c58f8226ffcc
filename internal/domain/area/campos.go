package area

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	noAlfanum = regexp.MustCompile(`[^a-z0-9]+`)
	vinValido = regexp.MustCompile(`^[A-Z0-9]{17}$`)

	// Descompone, elimina marcas diacríticas y recompone: "Inspección" -> "Inspeccion".
	quitaDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// NormalizarLabel convierte un label legible en nombre de columna estable:
// quita tildes, pasa a minúsculas, colapsa cada racha de caracteres no
// alfanuméricos en un único "_" y recorta separadores en los extremos.
// Es idempotente: normalizar dos veces da el mismo resultado.
func NormalizarLabel(label string) string {
	s, _, err := transform.String(quitaDiacriticos, label)
	if err != nil {
		s = label
	}
	s = strings.ToLower(s)
	s = noAlfanum.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// NormalizarVIN normaliza un bastidor: mayúsculas y sin espacios en los extremos.
func NormalizarVIN(vin string) string {
	return strings.ToUpper(strings.TrimSpace(vin))
}

// VINValido indica si el valor tiene el formato de bastidor: 17 caracteres
// alfanuméricos en mayúsculas.
func VINValido(vin string) bool {
	return vinValido.MatchString(vin)
}

// CoerceBool convierte cualquier representación razonable de booleano
// (bool, número, "true"/"1"/"on"/"yes") a bool; el resto es false.
func CoerceBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "1", "on", "yes", "si", "sí":
			return true
		}
		if b, err := strconv.ParseBool(x); err == nil {
			return b
		}
		return false
	default:
		return false
	}
}
