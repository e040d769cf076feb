package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/splitbook/splitbook-backend/models"
)

// ExportService generates Excel workbooks for a group's ledger
type ExportService struct {
	groupService      *GroupService
	expenseService    *ExpenseService
	balanceService    *BalanceService
	settlementService *SettlementService
}

// NewExportService creates a new export service
func NewExportService(groupService *GroupService, expenseService *ExpenseService, balanceService *BalanceService, settlementService *SettlementService) *ExportService {
	return &ExportService{
		groupService:      groupService,
		expenseService:    expenseService,
		balanceService:    balanceService,
		settlementService: settlementService,
	}
}

// ExportGroupToExcel generates a workbook with a balance summary, the expense
// ledger, and the current settlement plan for one group
func (s *ExportService) ExportGroupToExcel(groupID string) (*excelize.File, string, error) {
	group, err := s.groupService.GetGroup(groupID)
	if err != nil {
		return nil, "", err
	}

	expenses, err := s.expenseService.GetExpensesByGroup(groupID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get expenses: %v", err)
	}

	plan, err := s.settlementService.Simplify(groupID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to calculate settlements: %v", err)
	}

	f := excelize.NewFile()

	if err := s.createSummarySheet(f, groupID, expenses, plan); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}

	if err := s.createExpenseSheet(f, expenses); err != nil {
		return nil, "", fmt.Errorf("failed to create expense sheet: %v", err)
	}

	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Export_%s.xlsx",
		group.Name,
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createSummarySheet writes per-user balances and the settlement plan
func (s *ExportService) createSummarySheet(f *excelize.File, groupID string, expenses []*models.Expense, plan *models.SettlementPlan) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	users := collectUsers(expenses)

	// Set headers
	headers := []string{"Person", "Owes", "Is Owed", "Net Balance"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)

	for i, user := range users {
		balance, err := s.balanceService.ComputeBalance(groupID, user.id)
		if err != nil {
			return err
		}

		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), user.name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), balance.TotalOwed)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), balance.TotalOwedToUser)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), balance.NetBalance)
	}

	// Settlement plan section
	startRow := len(users) + 4
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", startRow), "Settlement Plan:")

	planHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", startRow), fmt.Sprintf("A%d", startRow), planHeaderStyle)

	for i, transfer := range plan.Transfers {
		row := startRow + 1 + i
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), transfer.From)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), "pays")
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), transfer.To)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), transfer.Amount)
	}

	return nil
}

// createExpenseSheet writes the raw expense ledger, one row per obligation
func (s *ExportService) createExpenseSheet(f *excelize.File, expenses []*models.Expense) error {
	sheetName := "Expenses"
	f.NewSheet(sheetName)

	headers := []string{"Date", "Description", "Paid By", "Total", "Split Type", "Participant", "Amount Owed", "Settled"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)

	row := 2
	for _, expense := range expenses {
		for _, participant := range expense.Participants {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.Date.Format("2006-01-02"))
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Description)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.PaidBy)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.TotalAmount)
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.SplitType)
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), participant.UserName)
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), participant.AmountOwed)
			f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), participant.HasPaid)
			row++
		}
	}

	return nil
}

type exportUser struct {
	id   string
	name string
}

// collectUsers gathers every user appearing in the group's expenses
func collectUsers(expenses []*models.Expense) []exportUser {
	seen := make(map[string]string)
	for _, expense := range expenses {
		if _, exists := seen[expense.PaidBy]; !exists {
			seen[expense.PaidBy] = expense.PaidBy
		}
		for _, participant := range expense.Participants {
			name := participant.UserName
			if name == "" {
				name = participant.UserID
			}
			seen[participant.UserID] = name
		}
	}

	users := make([]exportUser, 0, len(seen))
	for id, name := range seen {
		users = append(users, exportUser{id: id, name: name})
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].name < users[j].name
	})

	return users
}
