package schema

// CatalogGiftTable represents the 'catalog.gift' table
type CatalogGiftTable struct {
	Table       string
	ID          string
	Name        string
	BrandID     string
	Description string
	Ref         string
	MadeInID    string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogGift is the schema definition for catalog.gift
var CatalogGift = CatalogGiftTable{
	Table:       "catalog.gift",
	ID:          "id",
	Name:        "name",
	BrandID:     "brandid",
	Description: "description",
	Ref:         "ref",
	MadeInID:    "madeinid",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CatalogGiftTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.BrandID, t.Description, t.Ref, t.MadeInID,
		t.CreatedAt, t.UpdatedAt,
	}
}
