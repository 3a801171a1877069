package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer 账户间转账记录模型
// 创建时从转出账户扣减、向转入账户入账，两笔变更在同一事务内提交；
// 转账一经创建不可删除
type Transfer struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	FromAccountID uint            `json:"from_account_id" gorm:"index;not null"`
	ToAccountID   uint            `json:"to_account_id" gorm:"index;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(14,2);not null"`
	Description   string          `json:"description" gorm:"size:255"`
	TransferredAt time.Time       `json:"transferred_at" gorm:"not null;index"`
}

// TableName 设置表名
func (Transfer) TableName() string {
	return "transfers"
}
