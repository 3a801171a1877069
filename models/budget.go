package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget 预算模型：某类别在某个自然月的计划金额
// 同一类别同一月份允许存在多条预算，不做唯一约束
type Budget struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	CategoryID uint            `json:"category_id" gorm:"index;not null"`
	Month      time.Time       `json:"month" gorm:"type:date;not null;index"`
	Planned    decimal.Decimal `json:"planned" gorm:"type:decimal(14,2);not null"`
	Category   *Category       `json:"category" gorm:"foreignKey:CategoryID"`
}

// TableName 设置表名
func (Budget) TableName() string {
	return "budgets"
}
