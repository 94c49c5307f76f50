package schema

// CatalogGiftCategoryTable represents the 'catalog.gift_category' junction table
type CatalogGiftCategoryTable struct {
	Table      string
	GiftID     string
	CategoryID string
}

// CatalogGiftCategory is the schema definition for catalog.gift_category
var CatalogGiftCategory = CatalogGiftCategoryTable{
	Table:      "catalog.gift_category",
	GiftID:     "giftid",
	CategoryID: "categoryid",
}

func (t CatalogGiftCategoryTable) Columns() []string {
	return []string{t.GiftID, t.CategoryID}
}
