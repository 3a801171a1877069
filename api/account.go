package api

import (
	"strconv"

	"familybudget/database"
	"familybudget/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AccountHandler 账户管理处理器
type AccountHandler struct {
	ledger *service.Ledger
}

// NewAccountHandler 创建账户管理处理器
func NewAccountHandler() *AccountHandler {
	return &AccountHandler{ledger: service.NewLedger(database.DB)}
}

// CreateAccountRequest 创建账户请求
type CreateAccountRequest struct {
	Name    string          `json:"name" binding:"required,min=1,max=100" example:"现金"`
	Balance decimal.Decimal `json:"balance" example:"15000.00"`
}

// Create 创建账户
// @Summary 创建账户
// @Description 创建新账户，名称唯一（大小写敏感），初始余额默认为 0
// @Tags 账户
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "账户信息"
// @Success 200 {object} Response{data=models.Account} "创建成功"
// @Failure 400 {object} Response "参数错误或账户名称已存在"
// @Router /api/v1/accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	account, err := h.ledger.CreateAccount(req.Name, req.Balance)
	if err != nil {
		ServiceError(c, err, "创建账户失败")
		return
	}
	SuccessWithMessage(c, "创建成功", account)
}

// List 获取账户列表
// @Summary 获取账户列表
// @Description 获取所有账户及当前余额
// @Tags 账户
// @Produce json
// @Success 200 {object} Response{data=[]models.Account} "获取成功"
// @Router /api/v1/accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.ledger.ListAccounts()
	if err != nil {
		ServiceError(c, err, "查询失败")
		return
	}
	Success(c, accounts)
}

// Get 获取单个账户
// @Summary 获取单个账户
// @Description 根据 ID 获取账户详情
// @Tags 账户
// @Produce json
// @Param id path int true "账户ID"
// @Success 200 {object} Response{data=models.Account} "获取成功"
// @Failure 404 {object} Response "账户不存在"
// @Router /api/v1/accounts/{id} [get]
func (h *AccountHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	account, err := h.ledger.GetAccount(uint(id))
	if err != nil {
		ServiceError(c, err, "查询失败")
		return
	}
	Success(c, account)
}

// Delete 删除账户
// @Summary 删除账户
// @Description 无条件删除账户，不检查关联的支出/收入/转账记录
// @Tags 账户
// @Produce json
// @Param id path int true "账户ID"
// @Success 200 {object} Response{data=models.Account} "删除成功"
// @Failure 404 {object} Response "账户不存在"
// @Router /api/v1/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	account, err := h.ledger.DeleteAccount(uint(id))
	if err != nil {
		ServiceError(c, err, "删除失败")
		return
	}
	SuccessWithMessage(c, "删除成功", account)
}
