package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"spacevenue/internal/models"
)

// CreateItem adds a sellable item and returns it with its new id.
func CreateItem(name string, price float64) (*models.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: item name must not be empty", ErrValidation)
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: item price must be greater than zero", ErrValidation)
	}

	item := models.Item{Name: name, Price: price}
	if err := DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem replaces an item's name and price.
func UpdateItem(id uint, name string, price float64) (*models.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: item name must not be empty", ErrValidation)
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: item price must be greater than zero", ErrValidation)
	}

	item, err := GetItemByID(id)
	if err != nil {
		return nil, err
	}

	item.Name = name
	item.Price = price
	if err := DB.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an item. Historical sales keep their rows and totals;
// there is deliberately no cascade and no guard on referenced items.
func DeleteItem(id uint) error {
	if _, err := GetItemByID(id); err != nil {
		return err
	}
	return DB.Delete(&models.Item{}, id).Error
}

// GetItemByID retrieves an item by id.
func GetItemByID(id uint) (*models.Item, error) {
	var item models.Item
	err := DB.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: item #%d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems returns items ordered by name. A non-empty filter keeps only
// names containing it, case-insensitively.
func ListItems(filter string) ([]models.Item, error) {
	var items []models.Item

	query := DB.Order("name COLLATE NOCASE ASC")
	filter = strings.TrimSpace(filter)
	if filter != "" {
		query = query.Where("lower(name) LIKE ?", "%"+strings.ToLower(filter)+"%")
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// RecordSale appends a sale of qty units of an item at its current price.
// The computed total is what history keeps; later price edits don't touch it.
func RecordSale(itemID uint, qty int) (*models.ItemSale, error) {
	if qty < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	item, err := GetItemByID(itemID)
	if err != nil {
		return nil, err
	}

	sale := models.ItemSale{
		Timestamp: models.FormatTime(now()),
		ItemID:    item.ID,
		Quantity:  qty,
		Total:     item.Price * float64(qty),
	}
	if err := DB.Create(&sale).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}
