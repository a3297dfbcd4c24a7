// Package metrics expone los contadores de negocio en Prometheus con un registro propio.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
)

// Metrics implementa inventory.Metrics y advisory.FallbackRecorder.
type Metrics struct {
	registry     *prometheus.Registry
	transactions *prometheus.CounterVec
	rejected     *prometheus.CounterVec
	imports      *prometheus.CounterVec
	lowStock     prometheus.Gauge
	fallbacks    *prometheus.CounterVec
}

// New registra los colectores (incluidos los de proceso y runtime de Go) en un registro nuevo.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kitchen_transactions_total",
			Help: "Movimientos aceptados en el libro mayor, por tipo.",
		}, []string{"type"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kitchen_transactions_rejected_total",
			Help: "Movimientos rechazados, por motivo.",
		}, []string{"reason"}),
		imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kitchen_imports_total",
			Help: "Importaciones de hojas de cálculo, por resultado.",
		}, []string{"result"}),
		lowStock: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kitchen_low_stock_items",
			Help: "Artículos en o bajo su umbral mínimo.",
		}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kitchen_advisory_fallbacks_total",
			Help: "Respuestas de respaldo del asesor de IA, por operación.",
		}, []string{"operation"}),
	}
	m.registry.MustRegister(
		m.transactions, m.rejected, m.imports, m.lowStock, m.fallbacks,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) TransactionApplied(t entity.TransactionType) {
	m.transactions.WithLabelValues(string(t)).Inc()
}

func (m *Metrics) TransactionRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) ImportFinished(result string) {
	m.imports.WithLabelValues(result).Inc()
}

func (m *Metrics) LowStockItems(n int) {
	m.lowStock.Set(float64(n))
}

func (m *Metrics) AdvisoryFallback(operation string) {
	m.fallbacks.WithLabelValues(operation).Inc()
}

// Registry registro subyacente (pruebas).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposición en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
