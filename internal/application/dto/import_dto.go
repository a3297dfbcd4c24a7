package dto

// ImportRowsRequest body para POST /api/import/rows: encabezados más filas de valores.
// Cada fila se empareja por posición con Headers; las celdas sobrantes se ignoran.
type ImportRowsRequest struct {
	Headers []string `json:"headers"`
	Rows    [][]any  `json:"rows"`
}

// GoogleSheetImportRequest body para POST /api/import/google-sheet.
// URL acepta el enlace completo de docs.google.com o solo el ID de la hoja.
type GoogleSheetImportRequest struct {
	URL   string `json:"url"`
	Range string `json:"range,omitempty"`
}

// ImportResultDTO resumen de una importación aceptada.
type ImportResultDTO struct {
	Imported  int            `json:"imported"`
	Discarded int            `json:"discarded"`
	Items     []StockItemDTO `json:"items"`
}
