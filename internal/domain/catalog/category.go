package catalog

import "sort"

// Category is the fixed set of retail categories used by the store.
// The value is the display label, which is also what gets persisted and
// what appears in backup documents.
type Category string

const (
	CategoryAccesorios     Category = "Accesorios"
	CategoryAccesoriosTlf  Category = "Accesorios para Teléfonos"
	CategoryBolsosCarteras Category = "Bolsos y Carteras"
	CategoryBrochasBorlas  Category = "Brochas y Borlas"
	CategoryCabello        Category = "Cabello"
	CategoryCalzado        Category = "Calzado"
	CategoryFajas          Category = "Fajas"
	CategoryHogar          Category = "Hogar"
	CategoryJuguetesAdulto Category = "Juguetes para Adultos"
	CategoryLenceria       Category = "Lencería y Ropa Interior"
	CategoryMaquillaje     Category = "Maquillaje"
	CategoryOtros          Category = "Otros"
	CategoryProtectorSolar Category = "Protector Solar"
	CategoryRopa           Category = "Ropa"
	CategorySkincare       Category = "Skincare"
	CategoryTecnologia     Category = "Tecnología"
	CategoryTrajesBano     Category = "Trajes de Baño"
)

// AllCategories returns every known category, sorted by label
func AllCategories() []Category {
	return []Category{
		CategoryAccesorios,
		CategoryAccesoriosTlf,
		CategoryBolsosCarteras,
		CategoryBrochasBorlas,
		CategoryCabello,
		CategoryCalzado,
		CategoryFajas,
		CategoryHogar,
		CategoryJuguetesAdulto,
		CategoryLenceria,
		CategoryMaquillaje,
		CategoryOtros,
		CategoryProtectorSolar,
		CategoryRopa,
		CategorySkincare,
		CategoryTecnologia,
		CategoryTrajesBano,
	}
}

// IsValid reports whether the category is one of the known values
func (c Category) IsValid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the display label
func (c Category) String() string {
	return string(c)
}

// subcategories lists the allowed subcategory labels per category.
// Categories without an entry have no subcategories.
var subcategories = map[Category][]string{
	CategoryRopa:       {"Dama", "Caballero", "Niño"},
	CategoryCalzado:    {"Dama", "Caballero", "Niño"},
	CategoryLenceria:   {"Dama", "Caballero", "Niño"},
	CategoryTrajesBano: {"Dama", "Caballero", "Niño"},
	CategoryAccesorios: {"Pulseras", "Collares", "Zarcillos", "Anillos"},
}

// variantCategories is the subset of categories where products carry a
// size/variant field (clothing-like goods).
var variantCategories = map[Category]bool{
	CategoryRopa:       true,
	CategoryCalzado:    true,
	CategoryLenceria:   true,
	CategoryTrajesBano: true,
}

// Subcategories returns the allowed subcategory labels for a category,
// or an empty slice when the category has none.
func Subcategories(c Category) []string {
	subs, ok := subcategories[c]
	if !ok {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// RequiresVariant reports whether products in this category carry a
// size/variant field.
func RequiresVariant(c Category) bool {
	return variantCategories[c]
}

// GroupByCategory partitions products into a category-keyed map. Products
// within each group are ordered by name; use the returned key slice for
// alphabetical iteration over groups.
func GroupByCategory(products []Product) (map[Category][]Product, []Category) {
	groups := make(map[Category][]Product)
	for _, p := range products {
		groups[p.Category] = append(groups[p.Category], p)
	}

	keys := make([]Category, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
		sort.Slice(groups[key], func(i, j int) bool {
			return groups[key][i].Name < groups[key][j].Name
		})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return groups, keys
}
