package entity

// Category clasificación fija de los artículos del almacén de cocina.
type Category string

const (
	CategoryGrains        Category = "Grains"
	CategorySpices        Category = "Spices"
	CategoryVegetables    Category = "Vegetables"
	CategoryDairy         Category = "Dairy"
	CategoryMeat          Category = "Meat"
	CategoryOilGhee       Category = "Oil & Ghee"
	CategoryFruits        Category = "Fruits"
	CategoryMiscellaneous Category = "Miscellaneous"
)

// Categories enumera las categorías en el orden canónico.
// El importador recorre esta lista en orden: la primera etiqueta contenida en la celda gana.
var Categories = []Category{
	CategoryGrains,
	CategorySpices,
	CategoryVegetables,
	CategoryDairy,
	CategoryMeat,
	CategoryOilGhee,
	CategoryFruits,
	CategoryMiscellaneous,
}

// Valid indica si c pertenece a la enumeración.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
