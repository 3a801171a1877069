package service

import (
	"errors"
	"fmt"
	"strings"

	"familybudget/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 账户与类别是账务操作依赖的基础实体，名称大小写敏感且唯一。
// 删除不做引用完整性检查：历史支出/收入/预算中的悬空引用按产品决策容忍。

// CreateAccount 创建账户，名称唯一，初始余额默认为 0
func (l *Ledger) CreateAccount(name string, balance decimal.Decimal) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: 账户名称不能为空", ErrInvalidOperation)
	}

	var existing models.Account
	err := l.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: 账户 %s", ErrAlreadyExists, name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account := &models.Account{Name: name, Balance: balance}
	if err := l.db.Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount 按 ID 获取账户
func (l *Ledger) GetAccount(id uint) (*models.Account, error) {
	var account models.Account
	if err := l.db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 账户 %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &account, nil
}

// ListAccounts 获取所有账户
func (l *Ledger) ListAccounts() ([]models.Account, error) {
	var accounts []models.Account
	if err := l.db.Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// DeleteAccount 删除账户，返回删除前的记录作为确认
func (l *Ledger) DeleteAccount(id uint) (*models.Account, error) {
	var account models.Account
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&account, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: 账户 %d", ErrNotFound, id)
			}
			return err
		}
		return tx.Delete(&models.Account{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateCategory 创建类别，名称唯一
func (l *Ledger) CreateCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: 类别名称不能为空", ErrInvalidOperation)
	}

	var existing models.Category
	err := l.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: 类别 %s", ErrAlreadyExists, name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &models.Category{Name: name}
	if err := l.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory 按 ID 获取类别
func (l *Ledger) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := l.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 类别 %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &category, nil
}

// ListCategories 获取所有类别
func (l *Ledger) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := l.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// DeleteCategory 删除类别，返回删除前的记录作为确认
func (l *Ledger) DeleteCategory(id uint) (*models.Category, error) {
	var category models.Category
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: 类别 %d", ErrNotFound, id)
			}
			return err
		}
		return tx.Delete(&models.Category{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateBudget 创建预算：month 为 YYYY-MM 月份串，存储为该月第一天；
// 同一类别同一月份允许多条预算并存
func (l *Ledger) CreateBudget(categoryID uint, month string, planned decimal.Decimal) (*models.Budget, error) {
	start, err := ParseMonth(month)
	if err != nil {
		return nil, err
	}

	budget := &models.Budget{
		CategoryID: categoryID,
		Month:      start,
		Planned:    planned,
	}

	err = l.db.Transaction(func(tx *gorm.DB) error {
		if err := checkCategory(tx, categoryID); err != nil {
			return err
		}
		return tx.Create(budget).Error
	})
	if err != nil {
		return nil, err
	}

	if err := l.db.Preload("Category").First(budget, budget.ID).Error; err != nil {
		return nil, err
	}
	return budget, nil
}

// ListBudgets 获取所有预算，按月份倒序，内联类别
func (l *Ledger) ListBudgets() ([]models.Budget, error) {
	var budgets []models.Budget
	if err := l.db.Preload("Category").Order("month DESC").Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}
