package service

import (
	"errors"
	"fmt"
	"time"

	"familybudget/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ledger 账务引擎：支出、收入、转账的创建/删除与账户余额变更
// 在同一事务内提交，保证全部成功或全部回滚
type Ledger struct {
	db *gorm.DB
}

// NewLedger 创建账务引擎
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// lockAccount 行锁读取账户，同一账户的并发余额变更在数据库层串行化
func lockAccount(tx *gorm.DB, id uint) (*models.Account, error) {
	var account models.Account
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 账户 %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &account, nil
}

// checkCategory 校验类别引用是否存在
func checkCategory(tx *gorm.DB, id uint) error {
	var category models.Category
	if err := tx.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: 类别 %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}

// applyDelta 把增量叠加到账户余额并写回，必须在持有行锁的事务内调用
func applyDelta(tx *gorm.DB, account *models.Account, delta decimal.Decimal) error {
	account.Balance = account.Balance.Add(delta)
	return tx.Model(&models.Account{}).
		Where("id = ?", account.ID).
		Update("balance", account.Balance).Error
}

// debit 受余额保护的借记：余额不足则整个事务失败
func debit(tx *gorm.DB, account *models.Account, amount decimal.Decimal) error {
	if account.Balance.LessThan(amount) {
		return fmt.Errorf("%w: 账户 %s", ErrInsufficientFunds, account.Name)
	}
	return applyDelta(tx, account, amount.Neg())
}

// ParseMonth 解析 YYYY-MM 月份串，返回该月第一天零点
func ParseMonth(month string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: 月份格式错误，应为 2006-01", ErrInvalidOperation)
	}
	return t, nil
}

// CreateExpenseParams 创建支出参数
type CreateExpenseParams struct {
	Amount      decimal.Decimal
	AccountID   uint
	CategoryID  *uint
	Description string
	SpentAt     time.Time
}

// CreateExpense 创建支出：校验账户与类别引用，扣减账户余额并写入支出记录，
// 返回内联了类别的完整记录
func (l *Ledger) CreateExpense(p CreateExpenseParams) (*models.Expense, error) {
	if !p.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: 金额必须大于 0", ErrInvalidOperation)
	}
	spentAt := p.SpentAt
	if spentAt.IsZero() {
		spentAt = time.Now()
	}

	expense := &models.Expense{
		Amount:      p.Amount,
		AccountID:   p.AccountID,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		SpentAt:     spentAt,
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, p.AccountID)
		if err != nil {
			return err
		}
		if p.CategoryID != nil {
			if err := checkCategory(tx, *p.CategoryID); err != nil {
				return err
			}
		}
		if err := debit(tx, account, p.Amount); err != nil {
			return err
		}
		return tx.Create(expense).Error
	})
	if err != nil {
		return nil, err
	}

	// 事务外重新加载，内联类别
	if err := l.db.Preload("Category").First(expense, expense.ID).Error; err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense 删除支出并把金额退回账户，返回删除前的记录作为确认
// 账户已被删除时仅移除记录，不再退款（孤儿引用按产品决策容忍）
func (l *Ledger) DeleteExpense(id uint) (*models.Expense, error) {
	var expense models.Expense
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Category").First(&expense, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: 支出 %d", ErrNotFound, id)
			}
			return err
		}
		account, err := lockAccount(tx, expense.AccountID)
		if err == nil {
			if err := applyDelta(tx, account, expense.Amount); err != nil {
				return err
			}
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}
		return tx.Delete(&models.Expense{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// GetExpense 按 ID 获取支出，内联类别
func (l *Ledger) GetExpense(id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := l.db.Preload("Category").First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 支出 %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &expense, nil
}

// ListExpenses 获取所有支出，按发生时间倒序，内联类别
func (l *Ledger) ListExpenses() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := l.db.Preload("Category").Order("spent_at DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// CategorySummary 按类别汇总结果
type CategorySummary struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// SummaryByCategory 按类别汇总支出总额
// month 为空串时统计全部时间，否则限定为该自然月 [月初, 下月初)；
// 内连接语义：只返回至少有一笔匹配支出的类别
func (l *Ledger) SummaryByCategory(month string) ([]CategorySummary, error) {
	query := l.db.Model(&models.Expense{}).
		Select("categories.name AS category, SUM(expenses.amount) AS total").
		Joins("JOIN categories ON categories.id = expenses.category_id").
		Group("categories.name")

	if month != "" {
		start, err := ParseMonth(month)
		if err != nil {
			return nil, err
		}
		end := start.AddDate(0, 1, 0)
		query = query.Where("expenses.spent_at >= ? AND expenses.spent_at < ?", start, end)
	}

	var summary []CategorySummary
	if err := query.Scan(&summary).Error; err != nil {
		return nil, err
	}
	return summary, nil
}

// CreateIncomeParams 创建收入参数
type CreateIncomeParams struct {
	Amount      decimal.Decimal
	AccountID   uint
	CategoryID  *uint
	Description string
	ReceivedAt  time.Time
}

// CreateIncome 创建收入：向账户入账并写入收入记录，入账不做余额上限校验
func (l *Ledger) CreateIncome(p CreateIncomeParams) (*models.Income, error) {
	if !p.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: 金额必须大于 0", ErrInvalidOperation)
	}
	receivedAt := p.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	income := &models.Income{
		Amount:      p.Amount,
		AccountID:   p.AccountID,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		ReceivedAt:  receivedAt,
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, p.AccountID)
		if err != nil {
			return err
		}
		if p.CategoryID != nil {
			if err := checkCategory(tx, *p.CategoryID); err != nil {
				return err
			}
		}
		if err := applyDelta(tx, account, p.Amount); err != nil {
			return err
		}
		return tx.Create(income).Error
	})
	if err != nil {
		return nil, err
	}

	if err := l.db.Preload("Category").First(income, income.ID).Error; err != nil {
		return nil, err
	}
	return income, nil
}

// DeleteIncome 删除收入并从账户扣回金额
// 扣回不做余额校验：收入入账后账户可能已被花掉，允许余额变负作为对账痕迹
func (l *Ledger) DeleteIncome(id uint) (*models.Income, error) {
	var income models.Income
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Category").First(&income, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: 收入 %d", ErrNotFound, id)
			}
			return err
		}
		account, err := lockAccount(tx, income.AccountID)
		if err == nil {
			if err := applyDelta(tx, account, income.Amount.Neg()); err != nil {
				return err
			}
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}
		return tx.Delete(&models.Income{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &income, nil
}

// GetIncome 按 ID 获取收入，内联类别
func (l *Ledger) GetIncome(id uint) (*models.Income, error) {
	var income models.Income
	if err := l.db.Preload("Category").First(&income, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 收入 %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &income, nil
}

// ListIncomes 获取所有收入，按入账时间倒序，内联类别
func (l *Ledger) ListIncomes() ([]models.Income, error) {
	var incomes []models.Income
	if err := l.db.Preload("Category").Order("received_at DESC").Find(&incomes).Error; err != nil {
		return nil, err
	}
	return incomes, nil
}

// CreateTransferParams 创建转账参数
type CreateTransferParams struct {
	FromAccountID uint
	ToAccountID   uint
	Amount        decimal.Decimal
	Description   string
	TransferredAt time.Time
}

// CreateTransfer 账户间转账：扣减转出账户、入账转入账户并写入转账记录，
// 三笔变更同一事务提交
func (l *Ledger) CreateTransfer(p CreateTransferParams) (*models.Transfer, error) {
	if p.FromAccountID == p.ToAccountID {
		return nil, fmt.Errorf("%w: 转出和转入账户必须不同", ErrInvalidOperation)
	}
	if !p.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: 金额必须大于 0", ErrInvalidOperation)
	}
	transferredAt := p.TransferredAt
	if transferredAt.IsZero() {
		transferredAt = time.Now()
	}

	transfer := &models.Transfer{
		FromAccountID: p.FromAccountID,
		ToAccountID:   p.ToAccountID,
		Amount:        p.Amount,
		Description:   p.Description,
		TransferredAt: transferredAt,
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		// 按 ID 升序加锁，避免两笔反向转账互相等待死锁
		firstID, secondID := p.FromAccountID, p.ToAccountID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}
		first, err := lockAccount(tx, firstID)
		if err != nil {
			return err
		}
		second, err := lockAccount(tx, secondID)
		if err != nil {
			return err
		}
		from, to := first, second
		if from.ID != p.FromAccountID {
			from, to = second, first
		}

		if err := debit(tx, from, p.Amount); err != nil {
			return err
		}
		if err := applyDelta(tx, to, p.Amount); err != nil {
			return err
		}
		return tx.Create(transfer).Error
	})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

// ListTransfers 获取所有转账，按转账时间倒序
func (l *Ledger) ListTransfers() ([]models.Transfer, error) {
	var transfers []models.Transfer
	if err := l.db.Order("transferred_at DESC").Find(&transfers).Error; err != nil {
		return nil, err
	}
	return transfers, nil
}
