package api

import (
	"fmt"
	"net/url"
	"time"

	"familybudget/database"
	"familybudget/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 数据导出处理器
type ExportHandler struct{}

// NewExportHandler 创建数据导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// ExportExcel 导出 Excel
// @Summary 导出支出和收入明细为 Excel
// @Description 按时间范围导出支出和收入记录到一个工作簿（两个工作表）
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "参数错误"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	startTimeStr := c.Query("start_time")
	endTimeStr := c.Query("end_time")
	if startTimeStr == "" || endTimeStr == "" {
		BadRequest(c, "请提供开始时间和结束时间")
		return
	}

	start, err := time.ParseInLocation("2006-01-02", startTimeStr, time.Local)
	if err != nil {
		BadRequest(c, "开始时间格式错误")
		return
	}
	end, err := time.ParseInLocation("2006-01-02", endTimeStr, time.Local)
	if err != nil {
		BadRequest(c, "结束时间格式错误")
		return
	}
	// 包含结束日期当天
	end = end.Add(24*time.Hour - time.Second)

	var expenses []models.Expense
	if err := database.DB.Preload("Category").
		Where("spent_at >= ? AND spent_at <= ?", start, end).
		Order("spent_at DESC").Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询支出失败"))
		return
	}

	var incomes []models.Income
	if err := database.DB.Preload("Category").
		Where("received_at >= ? AND received_at <= ?", start, end).
		Order("received_at DESC").Find(&incomes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询收入失败"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	expenseSheet := "支出明细"
	f.SetSheetName("Sheet1", expenseSheet)
	expenseHeaders := []string{"ID", "金额", "账户ID", "类别", "描述", "发生时间"}
	for i, title := range expenseHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(expenseSheet, cell, title)
	}
	f.SetRowStyle(expenseSheet, 1, 1, headerStyle)
	for i, e := range expenses {
		row := i + 2
		categoryName := ""
		if e.Category != nil {
			categoryName = e.Category.Name
		}
		f.SetCellValue(expenseSheet, fmt.Sprintf("A%d", row), e.ID)
		f.SetCellValue(expenseSheet, fmt.Sprintf("B%d", row), e.Amount.InexactFloat64())
		f.SetCellValue(expenseSheet, fmt.Sprintf("C%d", row), e.AccountID)
		f.SetCellValue(expenseSheet, fmt.Sprintf("D%d", row), categoryName)
		f.SetCellValue(expenseSheet, fmt.Sprintf("E%d", row), e.Description)
		f.SetCellValue(expenseSheet, fmt.Sprintf("F%d", row), e.SpentAt.Format("2006-01-02 15:04:05"))
	}
	f.SetColWidth(expenseSheet, "A", "F", 18)

	incomeSheet := "收入明细"
	f.NewSheet(incomeSheet)
	incomeHeaders := []string{"ID", "金额", "账户ID", "类别", "描述", "入账时间"}
	for i, title := range incomeHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(incomeSheet, cell, title)
	}
	f.SetRowStyle(incomeSheet, 1, 1, headerStyle)
	for i, in := range incomes {
		row := i + 2
		categoryName := ""
		if in.Category != nil {
			categoryName = in.Category.Name
		}
		f.SetCellValue(incomeSheet, fmt.Sprintf("A%d", row), in.ID)
		f.SetCellValue(incomeSheet, fmt.Sprintf("B%d", row), in.Amount.InexactFloat64())
		f.SetCellValue(incomeSheet, fmt.Sprintf("C%d", row), in.AccountID)
		f.SetCellValue(incomeSheet, fmt.Sprintf("D%d", row), categoryName)
		f.SetCellValue(incomeSheet, fmt.Sprintf("E%d", row), in.Description)
		f.SetCellValue(incomeSheet, fmt.Sprintf("F%d", row), in.ReceivedAt.Format("2006-01-02 15:04:05"))
	}
	f.SetColWidth(incomeSheet, "A", "F", 18)

	filename := fmt.Sprintf("家庭账本_%s_%s.xlsx", startTimeStr, endTimeStr)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, SafeErrorMessage(err, "导出失败"))
		return
	}
}
