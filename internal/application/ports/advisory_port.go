package ports

import (
	"context"

	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
)

// AdvisoryService define el puerto de salida hacia el asesor de IA.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato.
type AdvisoryService interface {
	// SummarizeStock genera recomendaciones a partir de un subconjunto del catálogo.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	SummarizeStock(ctx context.Context, items []*entity.StockItem) ([]entity.IntelligenceTip, error)

	// AnswerQuery responde una consulta libre con el subconjunto relevante y la actividad reciente.
	// Una respuesta vacía es válida: el caso de uso la reemplaza por un mensaje fijo.
	AnswerQuery(ctx context.Context, query string, items []*entity.StockItem, recent []*entity.Transaction) (string, error)
}
