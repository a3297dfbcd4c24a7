// Package advisory orquesta el asesor de IA: recomendaciones sobre el stock y
// el asistente de consultas. Las fallas del proveedor nunca se propagan: se
// reemplazan por respuestas fijas y se registran en métricas.
package advisory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/kitchen-stores/internal/application/ports"
	"github.com/jhoicas/kitchen-stores/internal/domain"
	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
	"github.com/jhoicas/kitchen-stores/internal/domain/inventory"
)

// Operaciones reportadas a FallbackRecorder.
const (
	OpTips = "tips"
	OpChat = "chat"
)

// Valores por defecto de Config.
const (
	DefaultTimeout      = 20 * time.Second
	DefaultRefreshEvery = 5
)

// Respuestas fijas cuando el proveedor falla o no responde.
const (
	ChatUnavailableMessage = "सिस्टम वर्तमान में AI प्रश्नों को प्रोसेस करने में असमर्थ है।"
	ChatNoDataMessage      = "क्षमा करें, इस प्रश्न के लिए कोई डेटा नहीं मिला।"
)

var errNotConfigured = errors.New("asesor de IA no configurado")

// FallbackTips recomendaciones fijas usadas cuando el proveedor falla.
func FallbackTips() []entity.IntelligenceTip {
	return []entity.IntelligenceTip{
		{Title: "नियमित ऑडिट आवश्यक", Description: "स्टॉक स्तरों की मैन्युअल जांच सुनिश्चित करें।", Type: entity.TipInfo},
		{Title: "आपूर्ति की निगरानी", Description: "मुख्य वस्तुओं की आगामी मांग पर ध्यान दें।", Type: entity.TipInfo},
	}
}

// StateReader instantáneas del estado de inventario.
type StateReader interface {
	Catalog() []*entity.StockItem
	Transactions(limit int) []*entity.Transaction
}

// FallbackRecorder cuenta las respuestas de respaldo por operación.
type FallbackRecorder interface {
	AdvisoryFallback(operation string)
}

// Config parámetros del asesor. Valores cero usan los defaults.
type Config struct {
	Timeout      time.Duration
	RefreshEvery int // refrescar cada N movimientos; < 0 deshabilita
}

// UseCase recomendaciones en caché y asistente de consultas.
type UseCase struct {
	svc     ports.AdvisoryService
	state   StateReader
	metrics FallbackRecorder
	cfg     Config
	log     zerolog.Logger
	now     func() time.Time

	group singleflight.Group
	wg    sync.WaitGroup

	mu          sync.RWMutex
	tips        []entity.IntelligenceTip
	refreshedAt time.Time
}

// NewUseCase construye el caso de uso. svc nil deja el asesor en modo respaldo.
func NewUseCase(svc ports.AdvisoryService, state StateReader, metrics FallbackRecorder, cfg Config, log zerolog.Logger) *UseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RefreshEvery == 0 {
		cfg.RefreshEvery = DefaultRefreshEvery
	}
	return &UseCase{
		svc:     svc,
		state:   state,
		metrics: metrics,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
		tips:    []entity.IntelligenceTip{},
	}
}

// Tips recomendaciones en caché y el momento del último refresco (cero si nunca se refrescó).
func (uc *UseCase) Tips() ([]entity.IntelligenceTip, time.Time) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]entity.IntelligenceTip, len(uc.tips))
	copy(out, uc.tips)
	return out, uc.refreshedAt
}

// RefreshTips consulta al proveedor y actualiza la caché. Los refrescos concurrentes
// comparten una sola llamada, que no hereda la cancelación del primer llamador y queda
// limitada por Config.Timeout. Nunca devuelve error: ante falla usa FallbackTips.
func (uc *UseCase) RefreshTips(ctx context.Context) []entity.IntelligenceTip {
	shared := context.WithoutCancel(ctx)
	v, _, _ := uc.group.Do("tips", func() (interface{}, error) {
		subset := inventory.AdvisorySubset(uc.state.Catalog())
		tips, err := uc.summarize(shared, subset)
		if err != nil {
			uc.fallback(OpTips, err)
			tips = FallbackTips()
		}
		uc.mu.Lock()
		uc.tips = tips
		uc.refreshedAt = uc.now()
		uc.mu.Unlock()
		uc.log.Debug().Int("items", len(subset)).Int("tips", len(tips)).Msg("recomendaciones actualizadas")
		return tips, nil
	})
	tips := v.([]entity.IntelligenceTip)
	out := make([]entity.IntelligenceTip, len(tips))
	copy(out, tips)
	return out
}

func (uc *UseCase) summarize(ctx context.Context, subset []*entity.StockItem) ([]entity.IntelligenceTip, error) {
	if uc.svc == nil {
		return nil, errNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	tips, err := uc.svc.SummarizeStock(ctx, subset)
	if err != nil {
		return nil, fmt.Errorf("recomendaciones IA: %w", err)
	}
	if tips == nil {
		tips = []entity.IntelligenceTip{}
	}
	return tips, nil
}

// Chat responde una consulta libre. Solo devuelve error si la consulta está vacía;
// las fallas del proveedor se convierten en ChatUnavailableMessage.
func (uc *UseCase) Chat(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("query es obligatorio: %w", domain.ErrInvalidInput)
	}
	if uc.svc == nil {
		uc.fallback(OpChat, errNotConfigured)
		return ChatUnavailableMessage, nil
	}

	subset := inventory.ChatSubset(query, uc.state.Catalog())
	recent := uc.state.Transactions(inventory.RecentActivityCap)

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	answer, err := uc.svc.AnswerQuery(ctx, query, subset, recent)
	if err != nil {
		uc.fallback(OpChat, err)
		return ChatUnavailableMessage, nil
	}
	if strings.TrimSpace(answer) == "" {
		return ChatNoDataMessage, nil
	}
	return answer, nil
}

// ObserveTransaction refresca en segundo plano cuando la longitud previa del libro
// mayor es múltiplo de RefreshEvery. No bloquea.
func (uc *UseCase) ObserveTransaction(priorLedgerLen int) {
	if uc.cfg.RefreshEvery <= 0 || priorLedgerLen%uc.cfg.RefreshEvery != 0 {
		return
	}
	uc.refreshAsync("movimientos")
}

// ObserveImport refresca en segundo plano después de reemplazar el catálogo.
func (uc *UseCase) ObserveImport() {
	uc.refreshAsync("importación")
}

func (uc *UseCase) refreshAsync(trigger string) {
	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		uc.log.Debug().Str("trigger", trigger).Msg("refresco de recomendaciones")
		uc.RefreshTips(context.Background())
	}()
}

// Wait espera los refrescos en segundo plano pendientes (apagado y pruebas).
func (uc *UseCase) Wait() {
	uc.wg.Wait()
}

func (uc *UseCase) fallback(op string, err error) {
	if uc.metrics != nil {
		uc.metrics.AdvisoryFallback(op)
	}
	uc.log.Warn().Err(err).Str("operation", op).Msg("asesor IA no disponible, usando respuesta de respaldo")
}
