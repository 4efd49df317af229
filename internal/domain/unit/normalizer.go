package unit

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Normalización de descriptores de contenido ("1 KG", "500 ML", "24 PCS").
// Todo el sistema depende de este paquete para convertir entre paquetes y
// unidad base; ningún otro componente parsea descriptores por su cuenta.

// Factor de conversión a unidad base: KG -> gramos, L -> mililitros.
// Cualquier otra unidad (G, ML, PCS, SACKS, ROLL, ...) ya es unidad base.
var thousand = decimal.NewFromInt(1000)

// ParseContent extrae el literal numérico inicial y el token de unidad final
// de un descriptor. Sin literal numérico el valor es cero.
func ParseContent(descriptor string) (decimal.Decimal, string) {
	s := strings.TrimSpace(descriptor)
	if s == "" {
		return decimal.Zero, ""
	}

	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	numPart := s[:i]
	unitPart := strings.ToUpper(strings.TrimSpace(s[i:]))

	value, err := decimal.NewFromString(numPart)
	if err != nil {
		return decimal.Zero, unitPart
	}
	return value, unitPart
}

// ToBaseUnits convierte un valor a la unidad base del sistema.
func ToBaseUnits(value decimal.Decimal, unitToken string) decimal.Decimal {
	switch strings.ToUpper(strings.TrimSpace(unitToken)) {
	case "KG", "L":
		return value.Mul(thousand)
	default:
		return value
	}
}

// ContentPerPackage devuelve el contenido de un paquete en unidad base.
// Descriptor vacío o sin número -> cero (el stock por paquete no es derivable).
func ContentPerPackage(descriptor string) decimal.Decimal {
	value, unitToken := ParseContent(descriptor)
	return ToBaseUnits(value, unitToken)
}
