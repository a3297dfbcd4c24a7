package inventory

import (
	"sync"

	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
	domaininv "github.com/jhoicas/kitchen-stores/internal/domain/inventory"
	"github.com/jhoicas/kitchen-stores/internal/domain/ledger"
)

// DefaultHistoryLimit movimientos mostrados en el detalle de un artículo.
const DefaultHistoryLimit = 5

// Applied resultado de Store.Apply.
// PriorLedgerLen es la longitud del libro mayor antes de agregar el movimiento.
type Applied struct {
	Item           *entity.StockItem
	Transaction    *entity.Transaction
	PriorLedgerLen int
}

// Stats contadores del tablero.
type Stats struct {
	TotalItems       int
	LowStockCount    int
	TransactionCount int
}

// Store dueño del estado en memoria: catálogo y libro mayor.
// Un solo escritor (Apply, ReplaceCatalog) y múltiples lectores con instantáneas.
// Los artículos guardados nunca se modifican en sitio: el motor reemplaza el puntero.
type Store struct {
	mu      sync.RWMutex
	engine  *ledger.Engine
	catalog []*entity.StockItem
	ledger  []*entity.Transaction
}

// NewStore construye el store con el estado inicial dado.
func NewStore(engine *ledger.Engine, catalog []*entity.StockItem, txs []*entity.Transaction) *Store {
	s := &Store{engine: engine}
	s.catalog = append(s.catalog, catalog...)
	s.ledger = append(s.ledger, txs...)
	return s
}

// Apply aplica el movimiento. El lock de escritura cubre lectura, cálculo y escritura,
// por lo que dos movimientos concurrentes sobre el mismo artículo no se pierden.
func (s *Store) Apply(req ledger.Request) (*Applied, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.engine.Apply(s.catalog, req)
	if err != nil {
		return nil, err
	}
	prior := len(s.ledger)
	s.catalog = res.Catalog
	s.ledger = append(s.ledger, res.Transaction)

	var item *entity.StockItem
	for _, it := range res.Catalog {
		if it.ID == req.ItemID {
			item = it.Clone()
			break
		}
	}
	return &Applied{Item: item, Transaction: res.Transaction.Clone(), PriorLedgerLen: prior}, nil
}

// ReplaceCatalog reemplaza el catálogo completo (importación). El libro mayor se conserva.
func (s *Store) ReplaceCatalog(items []*entity.StockItem) {
	next := make([]*entity.StockItem, 0, len(items))
	for _, it := range items {
		next = append(next, it.Clone())
	}
	s.mu.Lock()
	s.catalog = next
	s.mu.Unlock()
}

// Catalog devuelve una copia del catálogo en orden de inserción.
func (s *Store) Catalog() []*entity.StockItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.catalog)
}

// Item devuelve una copia del artículo o false si no existe.
func (s *Store) Item(id string) (*entity.StockItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.catalog {
		if it.ID == id {
			return it.Clone(), true
		}
	}
	return nil, false
}

// ItemHistory últimos movimientos del artículo, del más reciente al más antiguo.
// limit <= 0 usa DefaultHistoryLimit.
func (s *Store) ItemHistory(id string, limit int) []*entity.Transaction {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	s.mu.RLock()
	matches := make([]*entity.Transaction, 0)
	for _, tx := range s.ledger {
		if tx.ItemID == id {
			matches = append(matches, tx)
		}
	}
	s.mu.RUnlock()
	return cloneTransactions(domaininv.RecentFirst(matches, limit))
}

// Transactions copia del libro mayor del más reciente al más antiguo. limit <= 0 devuelve todo.
func (s *Store) Transactions(limit int) []*entity.Transaction {
	s.mu.RLock()
	snapshot := make([]*entity.Transaction, len(s.ledger))
	copy(snapshot, s.ledger)
	s.mu.RUnlock()
	return cloneTransactions(domaininv.RecentFirst(snapshot, limit))
}

// Search filtra por nombre o categoría; los críticos primero y luego por nombre.
func (s *Store) Search(query string) []*entity.StockItem {
	return domaininv.Search(query, s.Catalog())
}

// Stats contadores para el tablero.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	low := 0
	for _, it := range s.catalog {
		if it.IsCritical() {
			low++
		}
	}
	return Stats{TotalItems: len(s.catalog), LowStockCount: low, TransactionCount: len(s.ledger)}
}

func cloneItems(items []*entity.StockItem) []*entity.StockItem {
	out := make([]*entity.StockItem, 0, len(items))
	for _, it := range items {
		out = append(out, it.Clone())
	}
	return out
}

func cloneTransactions(txs []*entity.Transaction) []*entity.Transaction {
	for i, tx := range txs {
		txs[i] = tx.Clone()
	}
	return txs
}
