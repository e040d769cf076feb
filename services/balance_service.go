package services

import (
	"github.com/splitbook/splitbook-backend/models"
	"github.com/splitbook/splitbook-backend/utils"
)

// ExpenseSource supplies the expense records a derived view is computed from.
// Balance and settlement views never mutate records.
type ExpenseSource interface {
	GetExpensesByGroup(groupID string) ([]*models.Expense, error)
}

// BalanceService computes a user's aggregate position within a group
type BalanceService struct {
	expenses ExpenseSource
}

// NewBalanceService creates a new balance service
func NewBalanceService(expenses ExpenseSource) *BalanceService {
	return &BalanceService{
		expenses: expenses,
	}
}

// ComputeBalance folds over every expense in the group. Recomputed on every
// call; nothing is cached or persisted. An empty group yields zero balances.
func (s *BalanceService) ComputeBalance(groupID, userID string) (*models.Balance, error) {
	groupExpenses, err := s.expenses.GetExpensesByGroup(groupID)
	if err != nil {
		return nil, err
	}

	balance := &models.Balance{}

	for _, expense := range groupExpenses {
		if expense.PaidBy == userID {
			// Others' unpaid shares of an expense this user paid for
			for _, participant := range expense.Participants {
				if participant.UserID != userID && !participant.HasPaid {
					balance.TotalOwedToUser += participant.AmountOwed
				}
			}
		} else {
			// This user's unpaid share of an expense someone else paid for
			for _, participant := range expense.Participants {
				if participant.UserID == userID && !participant.HasPaid {
					balance.TotalOwed += participant.AmountOwed
				}
			}
		}
	}

	balance.TotalOwed = utils.Round(balance.TotalOwed)
	balance.TotalOwedToUser = utils.Round(balance.TotalOwedToUser)
	balance.NetBalance = utils.Round(balance.TotalOwedToUser - balance.TotalOwed)

	return balance, nil
}
