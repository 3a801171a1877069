package router

import (
	"familybudget/api"
	"familybudget/config"
	_ "familybudget/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件，开发前端需要跨域访问
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Cache-Control", "X-Requested-With"},
		AllowCredentials: false,
	}))

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		// 账户
		accountHandler := api.NewAccountHandler()
		accounts := v1.Group("/accounts")
		{
			accounts.POST("", accountHandler.Create)
			accounts.GET("", accountHandler.List)
			accounts.GET("/:id", accountHandler.Get)
			accounts.DELETE("/:id", accountHandler.Delete)
		}

		// 类别
		categoryHandler := api.NewCategoryHandler()
		categories := v1.Group("/categories")
		{
			categories.POST("", categoryHandler.Create)
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		// 支出
		expenseHandler := api.NewExpenseHandler()
		expenses := v1.Group("/expenses")
		{
			expenses.POST("", expenseHandler.Create)
			expenses.GET("", expenseHandler.List)
			expenses.GET("/summary", expenseHandler.Summary)
			expenses.GET("/:id", expenseHandler.Get)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}

		// 收入
		incomeHandler := api.NewIncomeHandler()
		incomes := v1.Group("/incomes")
		{
			incomes.POST("", incomeHandler.Create)
			incomes.GET("", incomeHandler.List)
			incomes.GET("/:id", incomeHandler.Get)
			incomes.DELETE("/:id", incomeHandler.Delete)
		}

		// 转账（不可删除）
		transferHandler := api.NewTransferHandler()
		transfers := v1.Group("/transfers")
		{
			transfers.POST("", transferHandler.Create)
			transfers.GET("", transferHandler.List)
		}

		// 预算
		budgetHandler := api.NewBudgetHandler()
		budgets := v1.Group("/budgets")
		{
			budgets.POST("", budgetHandler.Create)
			budgets.GET("", budgetHandler.List)
		}

		// 导出
		exportHandler := api.NewExportHandler()
		v1.GET("/export/excel", exportHandler.ExportExcel)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}
