package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kitchen-stores/internal/application/inventory"
	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
	"github.com/jhoicas/kitchen-stores/internal/domain/ledger"
)

func newStore() *inventory.Store {
	now := func() time.Time { return fixedNow }
	newID := func() string { return "tx" }
	return inventory.NewStore(ledger.NewEngine(now, newID), inventory.SeedCatalog(fixedNow), inventory.SeedLedger(fixedNow))
}

func TestStore_InstantaneasIndependientes(t *testing.T) {
	s := newStore()

	snap := s.Catalog()
	snap[0].Quantity = dec("1")
	snap[0].Name = "alterado"

	item, ok := s.Item(snap[0].ID)
	require.True(t, ok)
	assert.Equal(t, "Premium Basmati Rice", item.Name)
	assert.True(t, item.Quantity.Equal(dec("200")))
}

func TestStore_ApplyDevuelveLongitudPrevia(t *testing.T) {
	s := newStore()

	applied, err := s.Apply(ledger.Request{ItemID: "6", Amount: dec("5"), Type: entity.TransactionWithdraw})
	require.NoError(t, err)
	assert.Equal(t, 3, applied.PriorLedgerLen)
	assert.True(t, applied.Item.Quantity.Equal(dec("30")))

	applied, err = s.Apply(ledger.Request{ItemID: "6", Amount: dec("5"), Type: entity.TransactionAdd})
	require.NoError(t, err)
	assert.Equal(t, 4, applied.PriorLedgerLen)
}

func TestStore_ReplaceCatalogConservaLibroMayor(t *testing.T) {
	s := newStore()
	items := []*entity.StockItem{{ID: "x", Name: "Saffron", Category: entity.CategorySpices, Quantity: dec("0.1"), MinThreshold: dec("0.2")}}

	s.ReplaceCatalog(items)
	items[0].Name = "cambiado"

	stats := s.Stats()
	assert.Equal(t, 1, stats.TotalItems)
	assert.Equal(t, 1, stats.LowStockCount)
	assert.Equal(t, 3, stats.TransactionCount)

	got, ok := s.Item("x")
	require.True(t, ok)
	assert.Equal(t, "Saffron", got.Name)
	_, ok = s.Item("1")
	assert.False(t, ok)
}

func TestStore_TransactionsLimite(t *testing.T) {
	s := newStore()
	assert.Len(t, s.Transactions(2), 2)
	assert.Len(t, s.Transactions(0), 3)
	assert.Empty(t, s.ItemHistory("40", 0))
}

func TestStore_LibroMayorNoSeAlteraDesdeLectores(t *testing.T) {
	s := newStore()

	txs := s.Transactions(1)
	require.Len(t, txs, 1)
	txs[0].Amount = dec("999")

	history := s.ItemHistory("1", 0)
	require.NotEmpty(t, history)
	history[0].Reason = "alterado"

	applied, err := s.Apply(ledger.Request{ItemID: "6", Amount: dec("1"), Type: entity.TransactionAdd})
	require.NoError(t, err)
	applied.Transaction.Amount = dec("777")

	all := s.Transactions(0)
	for _, tx := range all {
		assert.False(t, tx.Amount.Equal(dec("999")), "movimiento %s alterado", tx.ID)
		assert.False(t, tx.Amount.Equal(dec("777")), "movimiento %s alterado", tx.ID)
		assert.NotEqual(t, "alterado", tx.Reason)
	}
	assert.True(t, all[0].Amount.Equal(dec("1")))
}
