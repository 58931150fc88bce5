package assets

import (
	"fmt"
	"regexp"
	"strings"
)

// ScanEnvelopePrefix es el sobre literal del payload de escaneo:
// "ACTIVOS:ASSET:<code>". Los lectores emiten el sobre completo o el code pelado;
// el teclado emite tags.
const ScanEnvelopePrefix = "ACTIVOS:ASSET:"

var uuidRE = regexp.MustCompile(
	`^[0-9a-fA-F]{8}-?[0-9a-fA-F]{4}-?[0-9a-fA-F]{4}-?[0-9a-fA-F]{4}-?[0-9a-fA-F]{12}$`,
)

// ParseScanPayload normaliza una entrada escaneada/tecleada: recorta espacios
// y, si trae el sobre conocido, devuelve el code pelado y enveloped=true.
func ParseScanPayload(raw string) (value string, enveloped bool) {
	value = strings.TrimSpace(raw)
	if strings.HasPrefix(value, ScanEnvelopePrefix) {
		return strings.TrimSpace(strings.TrimPrefix(value, ScanEnvelopePrefix)), true
	}
	return value, false
}

// LooksLikeCode indica si value tiene la forma canónica del code opaco (UUID,
// guiones opcionales).
func LooksLikeCode(value string) bool {
	return uuidRE.MatchString(strings.TrimSpace(value))
}

// ScanPayload arma el payload completo que se imprime en la etiqueta QR.
func ScanPayload(code string) string {
	return ScanEnvelopePrefix + code
}

// FormatTag arma el tag a partir del prefijo, el ancho de relleno y el valor
// del contador. Si el prefijo es vacío se omite el separador.
func FormatTag(prefix string, width int, value int64) string {
	num := fmt.Sprintf("%0*d", width, value)
	if prefix == "" {
		return num
	}
	return prefix + "-" + num
}
