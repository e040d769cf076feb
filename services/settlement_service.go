package services

import (
	"sort"

	"github.com/splitbook/splitbook-backend/models"
	"github.com/splitbook/splitbook-backend/utils"
)

// SettlementService reduces a group's outstanding obligations to a minimal
// set of net transfers
type SettlementService struct {
	expenses ExpenseSource
}

// NewSettlementService creates a new settlement service
func NewSettlementService(expenses ExpenseSource) *SettlementService {
	return &SettlementService{
		expenses: expenses,
	}
}

// Simplify builds the directed debt graph of unpaid obligations for a group
// and nets reciprocal debts between each pair. Netting is strictly pairwise:
// chains through a third party are never collapsed. Computed on demand from
// whatever payment-flag state is durable at read time; an empty group yields
// an empty plan.
func (s *SettlementService) Simplify(groupID string) (*models.SettlementPlan, error) {
	groupExpenses, err := s.expenses.GetExpensesByGroup(groupID)
	if err != nil {
		return nil, err
	}

	owed := s.buildDebtGraph(groupExpenses)
	transfers := s.netPairwise(owed)

	return &models.SettlementPlan{
		GroupID:   groupID,
		Transfers: transfers,
	}, nil
}

// buildDebtGraph accumulates owed[debtor][creditor] for every unpaid,
// non-self obligation. The payer of each expense is the creditor.
func (s *SettlementService) buildDebtGraph(expenses []*models.Expense) map[string]map[string]float64 {
	owed := make(map[string]map[string]float64)

	for _, expense := range expenses {
		for _, participant := range expense.Participants {
			if participant.HasPaid || participant.UserID == expense.PaidBy {
				continue
			}

			if _, exists := owed[participant.UserID]; !exists {
				owed[participant.UserID] = make(map[string]float64)
			}
			owed[participant.UserID][expense.PaidBy] += participant.AmountOwed
		}
	}

	return owed
}

// netPairwise nets reciprocal debts between each unordered pair. The party
// owing more becomes the sole debtor for the difference; pairs that cancel
// within a cent are dropped entirely.
func (s *SettlementService) netPairwise(owed map[string]map[string]float64) []models.Transfer {
	transfers := []models.Transfer{}
	settled := make(map[string]map[string]bool)

	for debtor, creditors := range owed {
		for creditor, amount := range creditors {
			if settled[debtor][creditor] {
				continue
			}

			// Mark both directions handled
			if _, exists := settled[debtor]; !exists {
				settled[debtor] = make(map[string]bool)
			}
			if _, exists := settled[creditor]; !exists {
				settled[creditor] = make(map[string]bool)
			}
			settled[debtor][creditor] = true
			settled[creditor][debtor] = true

			reverse := owed[creditor][debtor]
			net := utils.Round(amount - reverse)

			switch {
			case net > utils.SplitTolerance:
				transfers = append(transfers, models.Transfer{
					From:   debtor,
					To:     creditor,
					Amount: net,
				})
			case net < -utils.SplitTolerance:
				transfers = append(transfers, models.Transfer{
					From:   creditor,
					To:     debtor,
					Amount: -net,
				})
			}
			// Amounts equal within tolerance cancel out entirely
		}
	}

	sort.Slice(transfers, func(i, j int) bool {
		if transfers[i].From != transfers[j].From {
			return transfers[i].From < transfers[j].From
		}
		return transfers[i].To < transfers[j].To
	})

	return transfers
}
