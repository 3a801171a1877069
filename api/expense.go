package api

import (
	"strconv"
	"time"

	"familybudget/database"
	"familybudget/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseHandler 支出记录处理器
type ExpenseHandler struct {
	ledger *service.Ledger
}

// NewExpenseHandler 创建支出记录处理器
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{ledger: service.NewLedger(database.DB)}
}

// CreateExpenseRequest 创建支出请求
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required" example:"99.99"`
	AccountID   uint            `json:"account_id" binding:"required" example:"1"`
	CategoryID  *uint           `json:"category_id" example:"2"`
	Description string          `json:"description" example:"午餐"`
	SpentAt     string          `json:"spent_at" example:"2024-01-15 12:30:00"`
}

// Create 创建支出记录
// @Summary 创建支出记录
// @Description 创建一条支出记录并从指定账户扣减余额（余额不足则整体失败）
// @Tags 支出
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "支出信息"
// @Success 200 {object} Response{data=models.Expense} "创建成功"
// @Failure 400 {object} Response "参数错误或余额不足"
// @Failure 404 {object} Response "账户或类别不存在"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	var spentAt time.Time
	if req.SpentAt != "" {
		var err error
		spentAt, err = time.ParseInLocation("2006-01-02 15:04:05", req.SpentAt, time.Local)
		if err != nil {
			BadRequest(c, "时间格式错误，应为: 2006-01-02 15:04:05")
			return
		}
	}

	expense, err := h.ledger.CreateExpense(service.CreateExpenseParams{
		Amount:      req.Amount,
		AccountID:   req.AccountID,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		SpentAt:     spentAt,
	})
	if err != nil {
		ServiceError(c, err, "创建支出记录失败")
		return
	}

	SuccessWithMessage(c, "创建成功", expense)
}

// List 获取支出记录列表
// @Summary 获取支出记录列表
// @Description 获取所有支出记录，按发生时间倒序，内联类别信息
// @Tags 支出
// @Produce json
// @Success 200 {object} Response{data=[]models.Expense} "获取成功"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.ledger.ListExpenses()
	if err != nil {
		ServiceError(c, err, "查询失败")
		return
	}
	Success(c, expenses)
}

// Get 获取单条支出记录
// @Summary 获取单条支出记录
// @Description 根据 ID 获取支出记录详情
// @Tags 支出
// @Produce json
// @Param id path int true "支出记录ID"
// @Success 200 {object} Response{data=models.Expense} "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	expense, err := h.ledger.GetExpense(uint(id))
	if err != nil {
		ServiceError(c, err, "查询失败")
		return
	}
	Success(c, expense)
}

// Delete 删除支出记录
// @Summary 删除支出记录
// @Description 删除支出记录并把金额退回账户，返回删除前的记录
// @Tags 支出
// @Produce json
// @Param id path int true "支出记录ID"
// @Success 200 {object} Response{data=models.Expense} "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	expense, err := h.ledger.DeleteExpense(uint(id))
	if err != nil {
		ServiceError(c, err, "删除失败")
		return
	}
	SuccessWithMessage(c, "删除成功", expense)
}

// Summary 按类别汇总支出
// @Summary 按类别汇总支出
// @Description 按类别分组统计支出总额。传 month（格式 2024-01）则只统计该自然月，
// @Description 不传则统计全部时间；只返回至少有一笔匹配支出的类别
// @Tags 支出
// @Produce json
// @Param month query string false "月份（格式：2024-01）"
// @Success 200 {object} Response{data=[]service.CategorySummary} "获取成功"
// @Failure 400 {object} Response "月份格式错误"
// @Router /api/v1/expenses/summary [get]
func (h *ExpenseHandler) Summary(c *gin.Context) {
	summary, err := h.ledger.SummaryByCategory(c.Query("month"))
	if err != nil {
		ServiceError(c, err, "统计失败")
		return
	}
	Success(c, summary)
}
