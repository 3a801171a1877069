package api

import (
	"familybudget/database"
	"familybudget/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetHandler 预算管理处理器
type BudgetHandler struct {
	ledger *service.Ledger
}

// NewBudgetHandler 创建预算管理处理器
func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{ledger: service.NewLedger(database.DB)}
}

// CreateBudgetRequest 创建预算请求
type CreateBudgetRequest struct {
	CategoryID uint            `json:"category_id" binding:"required" example:"1"`
	Month      string          `json:"month" binding:"required" example:"2024-01"`
	Planned    decimal.Decimal `json:"planned" binding:"required" example:"3000.00"`
}

// Create 创建预算
// @Summary 创建预算
// @Description 为某类别在某自然月设置计划金额，同一类别同一月份允许多条并存
// @Tags 预算
// @Accept json
// @Produce json
// @Param request body CreateBudgetRequest true "预算信息"
// @Success 200 {object} Response{data=models.Budget} "创建成功"
// @Failure 400 {object} Response "参数错误或月份格式错误"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/budgets [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	budget, err := h.ledger.CreateBudget(req.CategoryID, req.Month, req.Planned)
	if err != nil {
		ServiceError(c, err, "创建预算失败")
		return
	}
	SuccessWithMessage(c, "创建成功", budget)
}

// List 获取预算列表
// @Summary 获取预算列表
// @Description 获取所有预算，按月份倒序，内联类别信息
// @Tags 预算
// @Produce json
// @Success 200 {object} Response{data=[]models.Budget} "获取成功"
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	budgets, err := h.ledger.ListBudgets()
	if err != nil {
		ServiceError(c, err, "查询失败")
		return
	}
	Success(c, budgets)
}
