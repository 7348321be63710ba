package parsing

import "strings"

// lineLabels mark whole lines that are never product entries. Matching is
// case-insensitive substring, applied before item scanning.
var lineLabels = []string{
	"TARJETA BANCARIA",
	"TOTAL",
	"SUBTOTAL",
	"CREDITO",
}

// noiseTokens identify candidate descriptions that are payment metadata, tax
// summaries, or boilerplate rather than products. Multi-word tokens match as
// substrings; single tokens only match whole fields, so product names that
// merely contain them (e.g. the lone "G") survive.
var noiseTokens = []string{
	"TOTAL",
	"TARJETA",
	"MASTERCARD",
	"IVA",
	"G",
	"OP",
	"OP:",
	"FACTURA",
	"BANCARIA",
	"AID",
	"AID:",
	"ARC",
	"ARC:",
	"IMPORT",
	"Importe:",
	"N.C",
	"N.C:",
	"AUT",
	"AUT:",
	"SE ADMITEN DEVOLUCIONES",
	"SE ADMITEN DEVOLUCIONES CON TICKET",
	"CUOTA",
	"BASE IMPONIBLE",
	"€",
	"TELÉFONO",
	"AVDA.",
	"****",
	"FACTURA SIMPLIFICADA:",
	"UDS",
}

func isNoiseLine(line string) bool {
	upper := strings.ToUpper(line)
	for _, label := range lineLabels {
		if strings.Contains(upper, label) {
			return true
		}
	}
	return false
}

// IsNoise reports whether a trimmed candidate description matches the noise
// token set.
func IsNoise(description string) bool {
	fields := strings.Fields(description)
	for _, token := range noiseTokens {
		if strings.ContainsRune(token, ' ') {
			if strings.Contains(description, token) {
				return true
			}
			continue
		}
		for _, field := range fields {
			if field == token {
				return true
			}
		}
	}
	return false
}
