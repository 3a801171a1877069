package models

import (
	"github.com/shopspring/decimal"
)

// Account 账户模型（现金、银行卡、电子钱包等）
// Balance 是冗余存储的派生值：由账务操作（支出、收入、转账）增量维护，
// 借记操作不允许把余额扣为负数
type Account struct {
	ID      uint            `json:"id" gorm:"primaryKey"`
	Name    string          `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Balance decimal.Decimal `json:"balance" gorm:"type:decimal(14,2);not null;default:0"`
}

// TableName 设置表名
func (Account) TableName() string {
	return "accounts"
}
