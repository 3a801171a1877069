package models

// Category 收支类别模型
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`
}

// TableName 设置表名
func (Category) TableName() string {
	return "categories"
}
