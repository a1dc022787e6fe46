package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDNameResponse par id/nombre para combos del cliente.
type IDNameResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DisplayCode genera el código visible de propuestas y ventas a partir del id
// (cinco dígitos con ceros a la izquierda).
func DisplayCode(id int64) string {
	return fmt.Sprintf("%05d", id)
}

// SafeText evita valores vacíos en tablas: "-" si el texto está en blanco.
func SafeText(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// FormatPrice formatea un precio para tablas, sin ceros decimales sobrantes.
func FormatPrice(price decimal.Decimal) string {
	s := price.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
