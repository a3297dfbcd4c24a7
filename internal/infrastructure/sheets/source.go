// Package sheets importa rangos de Google Sheets con la API oficial (sheets/v4).
package sheets

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/jhoicas/kitchen-stores/internal/domain"
	"github.com/jhoicas/kitchen-stores/internal/domain/importer"
)

var (
	urlIDRe  = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)
	bareIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{10,}$`)
)

// ParseSpreadsheetID extrae el ID de una URL de docs.google.com o acepta el ID directo.
func ParseSpreadsheetID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if m := urlIDRe.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	if bareIDRe.MatchString(ref) {
		return ref, nil
	}
	return "", fmt.Errorf("referencia de hoja %q: %w", ref, domain.ErrInvalidInput)
}

// Source lee rangos de hojas compartidas con la cuenta de servicio.
type Source struct {
	service *sheetsapi.Service
	log     zerolog.Logger
}

// NewSource inicializa el cliente con el archivo de credenciales de la cuenta de servicio.
func NewSource(ctx context.Context, credentialsPath string, log zerolog.Logger) (*Source, error) {
	return NewSourceWithOptions(ctx, log,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope),
	)
}

// NewSourceWithOptions permite opciones de cliente arbitrarias (endpoint, HTTP client).
func NewSourceWithOptions(ctx context.Context, log zerolog.Logger, opts ...option.ClientOption) (*Source, error) {
	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("inicializar cliente de sheets: %w", err)
	}
	return &Source{service: service, log: log}, nil
}

// ReadRange lee el rango y toma la primera fila como encabezado.
func (s *Source) ReadRange(ctx context.Context, ref, readRange string) ([]importer.Row, error) {
	id, err := ParseSpreadsheetID(ref)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(readRange) == "" {
		return nil, fmt.Errorf("readRange vacío: %w", domain.ErrInvalidInput)
	}

	resp, err := s.service.Spreadsheets.Values.Get(id, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("leer rango %s: %w", readRange, err)
	}
	s.log.Debug().Str("spreadsheet_id", id).Str("range", readRange).Int("rows", len(resp.Values)).Msg("rango leído")

	return toRows(resp.Values), nil
}

func toRows(values [][]interface{}) []importer.Row {
	if len(values) == 0 {
		return []importer.Row{}
	}
	headers := make([]string, len(values[0]))
	for i, h := range values[0] {
		headers[i] = strings.TrimSpace(cast.ToString(h))
	}
	rows := make([]importer.Row, 0, len(values)-1)
	for _, v := range values[1:] {
		if len(v) == 0 {
			continue
		}
		rows = append(rows, importer.NewRow(headers, v))
	}
	return rows
}
