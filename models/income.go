package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income 收入记录模型
// 创建时向 AccountID 对应账户入账 Amount，删除时原额扣回
type Income struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(14,2);not null"`
	CategoryID  *uint           `json:"category_id" gorm:"index"`
	AccountID   uint            `json:"account_id" gorm:"index;not null"`
	Description string          `json:"description" gorm:"size:255"`
	ReceivedAt  time.Time       `json:"received_at" gorm:"not null;index"`
	Category    *Category       `json:"category" gorm:"foreignKey:CategoryID"`
}

// TableName 设置表名
func (Income) TableName() string {
	return "incomes"
}
