package api

import (
	"time"

	"familybudget/database"
	"familybudget/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransferHandler 转账记录处理器
type TransferHandler struct {
	ledger *service.Ledger
}

// NewTransferHandler 创建转账记录处理器
func NewTransferHandler() *TransferHandler {
	return &TransferHandler{ledger: service.NewLedger(database.DB)}
}

// CreateTransferRequest 创建转账请求
type CreateTransferRequest struct {
	FromAccountID uint            `json:"from_account_id" binding:"required" example:"1"`
	ToAccountID   uint            `json:"to_account_id" binding:"required" example:"2"`
	Amount        decimal.Decimal `json:"amount" binding:"required" example:"1000.00"`
	Description   string          `json:"description" example:"换卡"`
	TransferredAt string          `json:"transferred_at" example:"2024-01-20 10:00:00"`
}

// Create 创建转账
// @Summary 创建转账
// @Description 账户间转账：扣减转出账户并向转入账户入账，转出余额不足则整体失败。
// @Description 转账一经创建不可删除
// @Tags 转账
// @Accept json
// @Produce json
// @Param request body CreateTransferRequest true "转账信息"
// @Success 200 {object} Response{data=models.Transfer} "创建成功"
// @Failure 400 {object} Response "参数错误、同账户转账或余额不足"
// @Failure 404 {object} Response "账户不存在"
// @Router /api/v1/transfers [post]
func (h *TransferHandler) Create(c *gin.Context) {
	var req CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	var transferredAt time.Time
	if req.TransferredAt != "" {
		var err error
		transferredAt, err = time.ParseInLocation("2006-01-02 15:04:05", req.TransferredAt, time.Local)
		if err != nil {
			BadRequest(c, "时间格式错误，应为: 2006-01-02 15:04:05")
			return
		}
	}

	transfer, err := h.ledger.CreateTransfer(service.CreateTransferParams{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		Description:   req.Description,
		TransferredAt: transferredAt,
	})
	if err != nil {
		ServiceError(c, err, "创建转账失败")
		return
	}

	SuccessWithMessage(c, "创建成功", transfer)
}

// List 获取转账记录列表
// @Summary 获取转账记录列表
// @Description 获取所有转账记录，按转账时间倒序
// @Tags 转账
// @Produce json
// @Success 200 {object} Response{data=[]models.Transfer} "获取成功"
// @Router /api/v1/transfers [get]
func (h *TransferHandler) List(c *gin.Context) {
	transfers, err := h.ledger.ListTransfers()
	if err != nil {
		ServiceError(c, err, "查询失败")
		return
	}
	Success(c, transfers)
}
