package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for transactions
type Transaction struct {
	TxID      string          `gorm:"column:tx_id;primaryKey;type:uuid"`
	UserID    string          `gorm:"not null;size:255;index:idx_transactions_user_created,priority:1"`
	Amount    decimal.Decimal `gorm:"not null;type:numeric(10,2)"`
	Currency  string          `gorm:"not null;size:10"`
	CreatedAt time.Time       `gorm:"not null;index:idx_transactions_user_created,priority:2"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
