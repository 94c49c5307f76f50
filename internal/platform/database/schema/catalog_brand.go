package schema

// CatalogBrandTable represents the 'catalog.brand' table
type CatalogBrandTable struct {
	Table string
	ID    string
	Name  string
	Slug  string
	Est   string
}

// CatalogBrand is the schema definition for catalog.brand
var CatalogBrand = CatalogBrandTable{
	Table: "catalog.brand",
	ID:    "id",
	Name:  "name",
	Slug:  "slug",
	Est:   "est",
}

func (t CatalogBrandTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.Est}
}
