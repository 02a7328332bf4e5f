package db

import (
	"fmt"
	"strings"

	"spacevenue/internal/models"
)

// RecordCashTransaction appends a register deposit or withdrawal.
func RecordCashTransaction(kind string, amount float64, notes string) (*models.CashTransaction, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind != models.CashDeposit && kind != models.CashWithdrawal {
		return nil, fmt.Errorf("%w: kind must be deposit or withdrawal", ErrValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}

	tx := models.CashTransaction{
		Timestamp: models.FormatTime(now()),
		Kind:      kind,
		Amount:    amount,
		Notes:     strings.TrimSpace(notes),
	}
	if err := DB.Create(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

// ListCashTransactions returns transactions newest first. A non-empty filter
// keeps rows whose kind, notes, or timestamp text contains it,
// case-insensitively.
func ListCashTransactions(filter string) ([]models.CashTransaction, error) {
	var rows []models.CashTransaction

	query := DB.Order("ts DESC")
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter != "" {
		pattern := "%" + filter + "%"
		query = query.Where(
			"lower(type) LIKE ? OR lower(notes) LIKE ? OR ts LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
