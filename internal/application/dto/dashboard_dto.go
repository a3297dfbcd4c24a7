package dto

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	TotalItems         int              `json:"total_items"`
	LowStockCount      int              `json:"low_stock_count"`
	TransactionCount   int              `json:"transaction_count"`
	CriticalItems      []StockItemDTO   `json:"critical_items"`
	RecentTransactions []TransactionDTO `json:"recent_transactions"` // los 10 más recientes
}
