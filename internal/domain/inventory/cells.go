package inventory

import (
	"regexp"
	"strings"
	"time"
)

// numericPattern entero o decimal, tras quitar símbolos de moneda y separadores de miles.
var numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// Layouts aceptados para last_updated; primero los de año de 4 dígitos.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"1/2/2006",
	"01/02/2006",
	"02.01.2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"20060102",
}

// cleanCell quita espacios, comillas y el prefijo de fórmula de Excel (="...").
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}
	return strings.TrimSpace(strings.Trim(s, `"'`))
}

// cleanNumeric normaliza un número escrito a mano: "$1,234.50" → "1234.50", "(12)" → "-12".
// Devuelve ok=false si el resultado no es numérico.
func cleanNumeric(s string) (string, bool) {
	s = cleanCell(s)
	if s == "" {
		return "", false
	}
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	s = strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "").Replace(s)
	if negative {
		s = "-" + s
	}
	if !numericPattern.MatchString(s) {
		return "", false
	}
	return s, true
}

// parseDate intenta los layouts conocidos; ok=false si ninguno aplica.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
