package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitbook/splitbook-backend/utils"
)

// ListGroups returns the configured group registry
func ListGroups(c *gin.Context) {
	utils.HandleSuccess(c, handlerServices.GroupService.ListGroups())
}

// ExportGroup streams an Excel export of a group's ledger
func ExportGroup(c *gin.Context) {
	groupID := c.Param("groupId")

	file, filename, err := handlerServices.ExportService.ExportGroupToExcel(groupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := file.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
