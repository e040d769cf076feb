package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/splitbook/splitbook-backend/utils"
)

// GetBalance returns a user's aggregate position within a group
func GetBalance(c *gin.Context) {
	groupID := c.Param("groupId")
	userID := c.Param("userId")

	balance, err := handlerServices.BalanceService.ComputeBalance(groupID, userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, balance)
}

// GetSettlementPlan returns the simplified settlement plan for a group
func GetSettlementPlan(c *gin.Context) {
	groupID := c.Param("groupId")

	plan, err := handlerServices.SettlementService.Simplify(groupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, plan)
}
