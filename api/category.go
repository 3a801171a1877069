package api

import (
	"strconv"

	"familybudget/database"
	"familybudget/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 收支类别管理处理器
type CategoryHandler struct {
	ledger *service.Ledger
}

// NewCategoryHandler 创建类别管理处理器
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{ledger: service.NewLedger(database.DB)}
}

// CreateCategoryRequest 创建类别请求
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100" example:"餐饮"`
}

// Create 创建类别
// @Summary 创建收支类别
// @Description 创建新类别，名称唯一（大小写敏感）
// @Tags 类别
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "类别信息"
// @Success 200 {object} Response{data=models.Category} "创建成功"
// @Failure 400 {object} Response "参数错误或类别名称已存在"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	category, err := h.ledger.CreateCategory(req.Name)
	if err != nil {
		ServiceError(c, err, "创建类别失败")
		return
	}
	SuccessWithMessage(c, "创建成功", category)
}

// List 获取类别列表
// @Summary 获取类别列表
// @Description 获取所有收支类别
// @Tags 类别
// @Produce json
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.ledger.ListCategories()
	if err != nil {
		ServiceError(c, err, "查询失败")
		return
	}
	Success(c, categories)
}

// Get 获取单个类别
// @Summary 获取单个类别
// @Description 根据 ID 获取类别详情
// @Tags 类别
// @Produce json
// @Param id path int true "类别ID"
// @Success 200 {object} Response{data=models.Category} "获取成功"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	category, err := h.ledger.GetCategory(uint(id))
	if err != nil {
		ServiceError(c, err, "查询失败")
		return
	}
	Success(c, category)
}

// Delete 删除类别
// @Summary 删除类别
// @Description 无条件删除类别，不检查关联的支出/收入/预算记录；
// @Description 引用该类别的历史记录读出时类别为 null
// @Tags 类别
// @Produce json
// @Param id path int true "类别ID"
// @Success 200 {object} Response{data=models.Category} "删除成功"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	category, err := h.ledger.DeleteCategory(uint(id))
	if err != nil {
		ServiceError(c, err, "删除失败")
		return
	}
	SuccessWithMessage(c, "删除成功", category)
}
