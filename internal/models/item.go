package models

// Item is a sellable product (drinks, snacks, accessories).
type Item struct {
	ID    uint    `gorm:"primarykey" json:"id"`
	Name  string  `gorm:"not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
}

// ItemSale is one recorded sale of an item. Rows are append-only; the total
// keeps the price that was current at sale time, so later item edits or
// deletions never rewrite history.
type ItemSale struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	Timestamp string  `gorm:"column:ts;not null;index" json:"ts"`
	ItemID    uint    `gorm:"not null" json:"item_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Total     float64 `gorm:"not null" json:"total"`
}
