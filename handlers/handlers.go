package handlers

import (
	"github.com/splitbook/splitbook-backend/models"
	"github.com/splitbook/splitbook-backend/repository"
	"github.com/splitbook/splitbook-backend/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	GroupService      *services.GroupService
	ExpenseService    *services.ExpenseService
	BalanceService    *services.BalanceService
	SettlementService *services.SettlementService
	ExportService     *services.ExportService
}

// NewHandlerServices wires the service graph over the given group registry
func NewHandlerServices(groups []models.Group) *HandlerServices {
	groupService := services.NewGroupService(groups)
	expenseService := services.NewExpenseService(repository.NewExpenseRepository(), services.NewSplitService())
	balanceService := services.NewBalanceService(expenseService)
	settlementService := services.NewSettlementService(expenseService)

	return &HandlerServices{
		GroupService:      groupService,
		ExpenseService:    expenseService,
		BalanceService:    balanceService,
		SettlementService: settlementService,
		ExportService:     services.NewExportService(groupService, expenseService, balanceService, settlementService),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers(groups []models.Group) {
	handlerServices = NewHandlerServices(groups)
}
