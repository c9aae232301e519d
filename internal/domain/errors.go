package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidRecord  = errors.New("registro inválido")
	ErrConfiguration  = errors.New("configuración inválida")
	ErrMissingColumns = errors.New("faltan columnas obligatorias")
)

// InvalidRecordError indica que una fila no tiene un campo obligatorio.
// La fila se excluye del análisis; no detiene la ejecución.
type InvalidRecordError struct {
	Row   int    // número de fila de datos (1 = primera fila tras el encabezado)
	Field string // columna normalizada, ej. product_name
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("fila %d: campo obligatorio %q vacío", e.Row, e.Field)
}

func (e *InvalidRecordError) Unwrap() error { return ErrInvalidRecord }

// ConfigurationError indica parámetros de análisis inválidos (umbral, ratio, objetivo).
// Es fatal: se devuelve antes de calcular nada.
type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s=%s: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }
