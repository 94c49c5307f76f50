package schema

// CatalogGiftInstanceTable represents the 'catalog.giftinstance' table
type CatalogGiftInstanceTable struct {
	Table       string
	ID          string
	GiftID      string
	EventDate   string
	Size        string
	Colour      string
	Price       string
	URL         string
	RequesterID string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogGiftInstance is the schema definition for catalog.giftinstance
var CatalogGiftInstance = CatalogGiftInstanceTable{
	Table:       "catalog.giftinstance",
	ID:          "id",
	GiftID:      "giftid",
	EventDate:   "eventdate",
	Size:        "size",
	Colour:      "colour",
	Price:       "price",
	URL:         "url",
	RequesterID: "requesterid",
	Status:      "status",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CatalogGiftInstanceTable) Columns() []string {
	return []string{
		t.ID, t.GiftID, t.EventDate, t.Size, t.Colour, t.Price, t.URL,
		t.RequesterID, t.Status, t.CreatedAt, t.UpdatedAt,
	}
}
