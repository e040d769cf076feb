package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/splitbook/splitbook-backend/handlers"
	"github.com/splitbook/splitbook-backend/models"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, groups []models.Group) {
	handlers.InitHandlers(groups)

	v1 := router.Group("/api/v1")
	{
		// Group registry
		v1.GET("/groups", handlers.ListGroups)

		// Expense endpoints
		v1.POST("/expenses", handlers.CreateExpense)
		v1.DELETE("/expenses/:expenseId", handlers.RemoveExpense)
		v1.PUT("/expenses/:expenseId/participants/:userId/paid", handlers.MarkParticipantPaid)
		v1.GET("/groups/:groupId/expenses", handlers.ListGroupExpenses)
		v1.GET("/users/:userId/expenses", handlers.ListUserExpenses)

		// Derived views
		v1.GET("/groups/:groupId/balance/:userId", handlers.GetBalance)
		v1.GET("/groups/:groupId/settlements", handlers.GetSettlementPlan)
		v1.GET("/groups/:groupId/export", handlers.ExportGroup)
	}
}
