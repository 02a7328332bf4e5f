package models

// Cash transaction kinds.
const (
	CashDeposit    = "deposit"
	CashWithdrawal = "withdrawal"
)

// CashTransaction is a register deposit or withdrawal. Append-only.
type CashTransaction struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	Timestamp string  `gorm:"column:ts;not null;index" json:"ts"`
	Kind      string  `gorm:"column:type;not null" json:"kind"`
	Amount    float64 `gorm:"not null" json:"amount"`
	Notes     string  `json:"notes"`
}

// Signed returns the amount with withdrawals negated, for net-cash sums.
func (c CashTransaction) Signed() float64 {
	if c.Kind == CashWithdrawal {
		return -c.Amount
	}
	return c.Amount
}
