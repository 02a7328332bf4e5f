package db

import (
	"errors"
	"testing"
	"time"

	"spacevenue/internal/models"
)

func TestCreateItemValidation(t *testing.T) {
	setupTestDB(t)

	if _, err := CreateItem("", 10); !errors.Is(err, ErrValidation) {
		t.Errorf("empty name: got %v, want ErrValidation", err)
	}
	if _, err := CreateItem("   ", 10); !errors.Is(err, ErrValidation) {
		t.Errorf("blank name: got %v, want ErrValidation", err)
	}
	if _, err := CreateItem("Cola", 0); !errors.Is(err, ErrValidation) {
		t.Errorf("zero price: got %v, want ErrValidation", err)
	}
	if _, err := CreateItem("Cola", -3); !errors.Is(err, ErrValidation) {
		t.Errorf("negative price: got %v, want ErrValidation", err)
	}

	item, err := CreateItem("Cola", 15.0)
	if err != nil {
		t.Fatalf("valid item rejected: %v", err)
	}
	if item.ID == 0 {
		t.Error("created item has no id")
	}
}

func TestUpdateAndDeleteMissingItem(t *testing.T) {
	setupTestDB(t)

	if _, err := UpdateItem(99, "Chips", 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing: got %v, want ErrNotFound", err)
	}
	if err := DeleteItem(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete missing: got %v, want ErrNotFound", err)
	}
}

func TestListItemsOrderAndFilter(t *testing.T) {
	setupTestDB(t)

	for _, name := range []string{"Water", "cola", "Chips", "Coffee"} {
		if _, err := CreateItem(name, 10); err != nil {
			t.Fatalf("seed item %q: %v", name, err)
		}
	}

	items, err := ListItems("")
	if err != nil {
		t.Fatal(err)
	}
	got := make([]string, 0, len(items))
	for _, it := range items {
		got = append(got, it.Name)
	}
	want := []string{"Chips", "Coffee", "cola", "Water"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	// Case-insensitive substring filter.
	filtered, err := ListItems("CO")
	if err != nil {
		t.Fatal(err)
	}
	if len(filtered) != 2 {
		t.Fatalf("filter 'CO' matched %d items, want 2 (Coffee, cola)", len(filtered))
	}
}

func TestRecordSaleComputesTotal(t *testing.T) {
	setupTestDB(t)
	pinClock(t, time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local))

	item, err := CreateItem("Energy Drink", 25.0)
	if err != nil {
		t.Fatal(err)
	}

	sale, err := RecordSale(item.ID, 3)
	if err != nil {
		t.Fatalf("sale rejected: %v", err)
	}
	if sale.Total != 75.0 {
		t.Errorf("total = %v, want 75.00", sale.Total)
	}
	if sale.Quantity != 3 {
		t.Errorf("quantity = %d, want 3", sale.Quantity)
	}
	if sale.Timestamp != "2025-06-15T14:30:00" {
		t.Errorf("timestamp = %q", sale.Timestamp)
	}

	var count int64
	DB.Model(&models.ItemSale{}).Count(&count)
	if count != 1 {
		t.Fatalf("sale rows = %d, want 1", count)
	}
}

func TestRecordSaleRejectsBadInput(t *testing.T) {
	setupTestDB(t)

	item, err := CreateItem("Water", 5.0)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := RecordSale(item.ID, 0); !errors.Is(err, ErrValidation) {
		t.Errorf("qty 0: got %v, want ErrValidation", err)
	}
	if _, err := RecordSale(item.ID, -2); !errors.Is(err, ErrValidation) {
		t.Errorf("negative qty: got %v, want ErrValidation", err)
	}
	if _, err := RecordSale(9999, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing item: got %v, want ErrNotFound", err)
	}

	// Failed sales leave no rows behind.
	var count int64
	DB.Model(&models.ItemSale{}).Count(&count)
	if count != 0 {
		t.Fatalf("sale rows = %d, want 0", count)
	}
}

func TestDeleteItemKeepsHistoricalSales(t *testing.T) {
	setupTestDB(t)

	item, err := CreateItem("Snack Box", 40.0)
	if err != nil {
		t.Fatal(err)
	}
	sale, err := RecordSale(item.ID, 2)
	if err != nil {
		t.Fatal(err)
	}

	if err := DeleteItem(item.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var kept models.ItemSale
	if err := DB.First(&kept, sale.ID).Error; err != nil {
		t.Fatalf("historical sale row gone after item delete: %v", err)
	}
	if kept.Total != 80.0 || kept.ItemID != item.ID {
		t.Errorf("sale row altered: %+v", kept)
	}
}
