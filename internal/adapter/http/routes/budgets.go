package routes

import (
	"orcafacil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets   = "/budgets"
	PathFiles     = "/files"
	PathDashboard = "/dashboard"
)

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler, dashboardHandler *handlers.DashboardHandler, fileHandler *handlers.FileHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.PUT("/:id", budgetHandler.UpdateBudget)
		budgets.DELETE("/:id", budgetHandler.DeleteBudget)
		budgets.POST("/:id/pdf", budgetHandler.AttachPDF)
		budgets.GET("/:id/pdf", budgetHandler.DownloadPDF)
		budgets.GET("/:id/preview", budgetHandler.Preview)
	}

	files := rg.Group(PathFiles)
	{
		files.POST("/upload-url", fileHandler.UploadURL)
		files.GET("/:id/url", fileHandler.FileURL)
		files.DELETE("/:id", fileHandler.DeleteFile)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/summary", dashboardHandler.Summary)
	}
}
