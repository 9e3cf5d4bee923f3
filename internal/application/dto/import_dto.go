package dto

// CatalogRow fila del CSV de catálogo. Line es la línea del archivo (para mensajes de error).
type CatalogRow struct {
	Line        int
	Category    string
	Name        string
	ShortDesc   string
	Description string
	Price       string
}

// ImportResult totales de una importación.
type ImportResult struct {
	CategoriesCreated int
	ProductsCreated   int
}
