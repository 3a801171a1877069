package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense 支出记录模型
// 创建时从 AccountID 对应账户扣减 Amount，删除时原额退回
type Expense struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(14,2);not null"`
	CategoryID  *uint           `json:"category_id" gorm:"index"`
	AccountID   uint            `json:"account_id" gorm:"index;not null"`
	Description string          `json:"description" gorm:"size:255"`
	SpentAt     time.Time       `json:"spent_at" gorm:"not null;index"`
	Category    *Category       `json:"category" gorm:"foreignKey:CategoryID"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}
