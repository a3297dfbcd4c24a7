package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
)

type seedItem struct {
	id, name string
	category entity.Category
	qty      string
	unit     string
	min      string
}

// SeedCatalog catálogo inicial del almacén. LastUpdated = now.
func SeedCatalog(now time.Time) []*entity.StockItem {
	rows := []seedItem{
		{"1", "Premium Basmati Rice", entity.CategoryGrains, "200", "kg", "50"},
		{"2", "Whole Wheat Atta (Chakki)", entity.CategoryGrains, "250", "kg", "60"},
		{"14", "Sona Masuri Rice", entity.CategoryGrains, "150", "kg", "40"},
		{"15", "Maida (Refined Flour)", entity.CategoryGrains, "45", "kg", "15"},
		{"16", "Besan (Gram Flour)", entity.CategoryGrains, "30", "kg", "10"},
		{"17", "Suji (Semolina)", entity.CategoryGrains, "25", "kg", "8"},
		{"4", "Tur Dal (Arhar)", entity.CategoryGrains, "40", "kg", "15"},
		{"5", "Moong Dal (Yellow)", entity.CategoryGrains, "30", "kg", "10"},
		{"18", "Urad Dal (White)", entity.CategoryGrains, "20", "kg", "8"},
		{"19", "Chana Dal", entity.CategoryGrains, "35", "kg", "12"},
		{"20", "Masoor Dal (Red)", entity.CategoryGrains, "15", "kg", "5"},
		{"21", "Kabuli Chana", entity.CategoryGrains, "25", "kg", "10"},
		{"22", "Rajma (Chitra)", entity.CategoryGrains, "18", "kg", "5"},
		{"6", "Pure Desi Ghee", entity.CategoryOilGhee, "35", "Liters", "12"},
		{"7", "Refined Sunflower Oil", entity.CategoryOilGhee, "50", "Liters", "15"},
		{"23", "Mustard Oil (Kacchi Ghani)", entity.CategoryOilGhee, "20", "Liters", "8"},
		{"24", "Groundnut Oil", entity.CategoryOilGhee, "15", "Liters", "5"},
		{"11", "Turmeric Powder", entity.CategorySpices, "8", "kg", "3"},
		{"12", "Kashmiri Red Chili Powder", entity.CategorySpices, "10", "kg", "3"},
		{"13", "Cumin Seeds (Jeera)", entity.CategorySpices, "4", "kg", "1.5"},
		{"8", "Common Iodized Salt", entity.CategorySpices, "15", "kg", "5"},
		{"25", "Coriander Powder (Dhania)", entity.CategorySpices, "6", "kg", "2"},
		{"26", "Black Pepper Whole", entity.CategorySpices, "2", "kg", "0.5"},
		{"27", "Cardamom (Green)", entity.CategorySpices, "1", "kg", "0.2"},
		{"28", "Cinnamon Sticks", entity.CategorySpices, "1.5", "kg", "0.3"},
		{"29", "Cloves (Laung)", entity.CategorySpices, "0.8", "kg", "0.2"},
		{"30", "Garam Masala (Special)", entity.CategorySpices, "3", "kg", "1"},
		{"3", "Refined White Sugar", entity.CategoryMiscellaneous, "100", "kg", "30"},
		{"9", "Premium Tea Leaves", entity.CategoryMiscellaneous, "12", "kg", "4"},
		{"10", "Instant Coffee Powder", entity.CategoryMiscellaneous, "5", "kg", "2"},
		{"31", "Jaggery Powder", entity.CategoryMiscellaneous, "10", "kg", "3"},
		{"32", "Green Tea Bags", entity.CategoryMiscellaneous, "500", "units", "100"},
		{"33", "Cashew Nuts (W240)", entity.CategoryFruits, "10", "kg", "3"},
		{"34", "Almonds (California)", entity.CategoryFruits, "8", "kg", "2"},
		{"35", "Raisins (Kishmish)", entity.CategoryFruits, "5", "kg", "1"},
		{"36", "Walnuts (Shelled)", entity.CategoryFruits, "4", "kg", "1"},
		{"37", "Dishwash Liquid", entity.CategoryMiscellaneous, "25", "Liters", "10"},
		{"38", "Floor Cleaner (Phenyl)", entity.CategoryMiscellaneous, "40", "Liters", "10"},
		{"39", "Kitchen Napkins", entity.CategoryMiscellaneous, "100", "units", "20"},
		{"40", "Liquid Handwash", entity.CategoryMiscellaneous, "15", "Liters", "5"},
	}
	out := make([]*entity.StockItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, &entity.StockItem{
			ID:           r.id,
			Name:         r.name,
			Category:     r.category,
			Quantity:     decimal.RequireFromString(r.qty),
			Unit:         r.unit,
			MinThreshold: decimal.RequireFromString(r.min),
			LastUpdated:  now,
		})
	}
	return out
}

// SeedLedger movimientos iniciales, con fechas relativas a now.
func SeedLedger(now time.Time) []*entity.Transaction {
	day := 24 * time.Hour
	return []*entity.Transaction{
		{ID: "t1", ItemID: "1", ItemName: "Premium Basmati Rice", Type: entity.TransactionAdd, Amount: decimal.NewFromInt(50), Timestamp: now.Add(-2 * day), Reason: "Quarterly Procurement"},
		{ID: "t2", ItemID: "1", ItemName: "Premium Basmati Rice", Type: entity.TransactionWithdraw, Amount: decimal.NewFromInt(15), Timestamp: now.Add(-day), Reason: "State Guest Luncheon"},
		{ID: "t3", ItemID: "6", ItemName: "Pure Desi Ghee", Type: entity.TransactionAdd, Amount: decimal.NewFromInt(10), Timestamp: now.Add(-5 * day), Reason: "Regular Restock"},
	}
}
