package api

import (
	"strconv"
	"time"

	"familybudget/database"
	"familybudget/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// IncomeHandler 收入记录处理器
type IncomeHandler struct {
	ledger *service.Ledger
}

// NewIncomeHandler 创建收入记录处理器
func NewIncomeHandler() *IncomeHandler {
	return &IncomeHandler{ledger: service.NewLedger(database.DB)}
}

// CreateIncomeRequest 创建收入请求
type CreateIncomeRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required" example:"5000.00"`
	AccountID   uint            `json:"account_id" binding:"required" example:"1"`
	CategoryID  *uint           `json:"category_id" example:"3"`
	Description string          `json:"description" example:"工资"`
	ReceivedAt  string          `json:"received_at" example:"2024-01-10 09:00:00"`
}

// Create 创建收入记录
// @Summary 创建收入记录
// @Description 创建一条收入记录并向指定账户入账
// @Tags 收入
// @Accept json
// @Produce json
// @Param request body CreateIncomeRequest true "收入信息"
// @Success 200 {object} Response{data=models.Income} "创建成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 404 {object} Response "账户或类别不存在"
// @Router /api/v1/incomes [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	var receivedAt time.Time
	if req.ReceivedAt != "" {
		var err error
		receivedAt, err = time.ParseInLocation("2006-01-02 15:04:05", req.ReceivedAt, time.Local)
		if err != nil {
			BadRequest(c, "时间格式错误，应为: 2006-01-02 15:04:05")
			return
		}
	}

	income, err := h.ledger.CreateIncome(service.CreateIncomeParams{
		Amount:      req.Amount,
		AccountID:   req.AccountID,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		ReceivedAt:  receivedAt,
	})
	if err != nil {
		ServiceError(c, err, "创建收入记录失败")
		return
	}

	SuccessWithMessage(c, "创建成功", income)
}

// List 获取收入记录列表
// @Summary 获取收入记录列表
// @Description 获取所有收入记录，按入账时间倒序，内联类别信息
// @Tags 收入
// @Produce json
// @Success 200 {object} Response{data=[]models.Income} "获取成功"
// @Router /api/v1/incomes [get]
func (h *IncomeHandler) List(c *gin.Context) {
	incomes, err := h.ledger.ListIncomes()
	if err != nil {
		ServiceError(c, err, "查询失败")
		return
	}
	Success(c, incomes)
}

// Get 获取单条收入记录
// @Summary 获取单条收入记录
// @Description 根据 ID 获取收入记录详情
// @Tags 收入
// @Produce json
// @Param id path int true "收入记录ID"
// @Success 200 {object} Response{data=models.Income} "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/incomes/{id} [get]
func (h *IncomeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	income, err := h.ledger.GetIncome(uint(id))
	if err != nil {
		ServiceError(c, err, "查询失败")
		return
	}
	Success(c, income)
}

// Delete 删除收入记录
// @Summary 删除收入记录
// @Description 删除收入记录并从账户扣回金额（不做余额校验，余额可能变负）
// @Tags 收入
// @Produce json
// @Param id path int true "收入记录ID"
// @Success 200 {object} Response{data=models.Income} "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/incomes/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	income, err := h.ledger.DeleteIncome(uint(id))
	if err != nil {
		ServiceError(c, err, "删除失败")
		return
	}
	SuccessWithMessage(c, "删除成功", income)
}
