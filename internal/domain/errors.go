package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrItemNotFound      = errors.New("artículo no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidAmount     = errors.New("la cantidad debe ser mayor que cero")
	ErrInvalidInput      = errors.New("entrada inválida")
	// ErrFormat indica que la hoja importada no tiene columnas reconocibles de nombre/cantidad.
	ErrFormat            = errors.New("formato de hoja no reconocido")
	ErrUnsupportedFile   = errors.New("tipo de archivo no soportado")
	ErrSheetsUnavailable = errors.New("integración con Google Sheets no configurada")
)
