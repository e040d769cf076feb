package services

import (
	"sort"

	"github.com/splitbook/splitbook-backend/models"
)

// fakeExpenseStore is an in-memory ExpenseStore for service tests
type fakeExpenseStore struct {
	expenses map[string]*models.Expense
	failWith error
}

func newFakeExpenseStore() *fakeExpenseStore {
	return &fakeExpenseStore{
		expenses: make(map[string]*models.Expense),
	}
}

func (f *fakeExpenseStore) StoreExpense(expense *models.Expense) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.expenses[expense.ID] = expense
	return nil
}

func (f *fakeExpenseStore) GetExpensesByGroup(groupID string) ([]*models.Expense, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var result []*models.Expense
	for _, expense := range f.expenses {
		if expense.GroupID == groupID {
			result = append(result, expense)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (f *fakeExpenseStore) GetExpensesByUser(userID string) ([]*models.Expense, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var result []*models.Expense
	for _, expense := range f.expenses {
		if f.involves(expense, userID) {
			result = append(result, expense)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (f *fakeExpenseStore) involves(expense *models.Expense, userID string) bool {
	if expense.CreatedBy == userID || expense.PaidBy == userID {
		return true
	}
	for _, participant := range expense.Participants {
		if participant.UserID == userID {
			return true
		}
	}
	return false
}

func (f *fakeExpenseStore) GetExpenseByID(expenseID string) (*models.Expense, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.expenses[expenseID], nil
}

func (f *fakeExpenseStore) MarkParticipantPaid(expenseID, userID string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	expense, exists := f.expenses[expenseID]
	if !exists {
		return false, nil
	}
	for i, participant := range expense.Participants {
		if participant.UserID == userID {
			expense.Participants[i].HasPaid = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeExpenseStore) RemoveExpense(expenseID string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	if _, exists := f.expenses[expenseID]; !exists {
		return false, nil
	}
	delete(f.expenses, expenseID)
	return true, nil
}
