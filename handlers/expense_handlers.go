package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/splitbook/splitbook-backend/models"
	"github.com/splitbook/splitbook-backend/utils"
)

// CreateExpense handles creation of a new shared expense
func CreateExpense(c *gin.Context) {
	var request models.CreateExpenseRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	expense, err := handlerServices.ExpenseService.CreateExpense(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, expense)
}

// ListGroupExpenses returns all expenses for a group, most recent first
func ListGroupExpenses(c *gin.Context) {
	groupID := c.Param("groupId")

	expenses, err := handlerServices.ExpenseService.GetExpensesByGroup(groupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if expenses == nil {
		expenses = []*models.Expense{}
	}

	utils.HandleSuccess(c, expenses)
}

// ListUserExpenses returns all expenses a user is involved in
func ListUserExpenses(c *gin.Context) {
	userID := c.Param("userId")

	expenses, err := handlerServices.ExpenseService.GetExpensesByUser(userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if expenses == nil {
		expenses = []*models.Expense{}
	}

	utils.HandleSuccess(c, expenses)
}

// MarkParticipantPaid flags one participant's share of an expense as paid
func MarkParticipantPaid(c *gin.Context) {
	expenseID := c.Param("expenseId")
	userID := c.Param("userId")

	expense, err := handlerServices.ExpenseService.MarkParticipantPaid(expenseID, userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, expense)
}

// RemoveExpense deletes an expense entirely
func RemoveExpense(c *gin.Context) {
	expenseID := c.Param("expenseId")

	if err := handlerServices.ExpenseService.RemoveExpense(expenseID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"removed": true})
}
