package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/splitbook/splitbook-backend/models"
	"github.com/splitbook/splitbook-backend/utils"
)

func newTestExpenseService() (*ExpenseService, *fakeExpenseStore) {
	store := newFakeExpenseStore()
	return NewExpenseService(store, NewSplitService()), store
}

func TestExpenseService_CreateExpense_EqualSplit(t *testing.T) {
	service, store := newTestExpenseService()

	expense, err := service.CreateExpense(&models.CreateExpenseRequest{
		GroupID:     "friends",
		Description: "Dinner",
		TotalAmount: 300,
		SplitType:   utils.SplitTypeEqual,
		PaidBy:      "alice",
		Participants: []models.SplitInput{
			{UserID: "alice", UserName: "Alice"},
			{UserID: "bob", UserName: "Bob"},
			{UserID: "carol", UserName: "Carol"},
		},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, expense.ID)
	assert.Equal(t, "alice", expense.CreatedBy, "createdBy defaults to the payer")
	assert.Len(t, expense.Participants, 3)
	assert.Contains(t, store.expenses, expense.ID)

	var sum float64
	for _, p := range expense.Participants {
		sum += p.AmountOwed
	}
	assert.InDelta(t, 300, sum, utils.SplitTolerance)
}

func TestExpenseService_CreateExpense_UnbalancedPercentagesRejected(t *testing.T) {
	service, store := newTestExpenseService()

	_, err := service.CreateExpense(&models.CreateExpenseRequest{
		GroupID:     "friends",
		Description: "Dinner",
		TotalAmount: 500,
		SplitType:   utils.SplitTypePercentage,
		PaidBy:      "alice",
		Participants: []models.SplitInput{
			{UserID: "alice", Percentage: 60},
			{UserID: "bob", Percentage: 30},
		},
	})

	assert.Error(t, err)
	assert.Empty(t, store.expenses, "nothing is persisted when validation fails")
}

func TestExpenseService_CreateExpense_UnbalancedCustomAmountsRejected(t *testing.T) {
	service, store := newTestExpenseService()

	_, err := service.CreateExpense(&models.CreateExpenseRequest{
		GroupID:     "friends",
		Description: "Groceries",
		TotalAmount: 100,
		SplitType:   utils.SplitTypeCustom,
		PaidBy:      "alice",
		Participants: []models.SplitInput{
			{UserID: "alice", CustomAmount: 70},
			{UserID: "bob", CustomAmount: 20},
		},
	})

	assert.Error(t, err)
	assert.Empty(t, store.expenses)
}

func TestExpenseService_CreateExpense_MissingFields(t *testing.T) {
	service, _ := newTestExpenseService()

	cases := []struct {
		name    string
		request models.CreateExpenseRequest
	}{
		{"missing group", models.CreateExpenseRequest{
			Description: "x", TotalAmount: 10, SplitType: utils.SplitTypeEqual,
			PaidBy: "a", Participants: []models.SplitInput{{UserID: "a"}},
		}},
		{"missing payer", models.CreateExpenseRequest{
			GroupID: "g", Description: "x", TotalAmount: 10, SplitType: utils.SplitTypeEqual,
			Participants: []models.SplitInput{{UserID: "a"}},
		}},
		{"no participants", models.CreateExpenseRequest{
			GroupID: "g", Description: "x", TotalAmount: 10, SplitType: utils.SplitTypeEqual,
			PaidBy: "a",
		}},
		{"non-positive total", models.CreateExpenseRequest{
			GroupID: "g", Description: "x", TotalAmount: 0, SplitType: utils.SplitTypeEqual,
			PaidBy: "a", Participants: []models.SplitInput{{UserID: "a"}},
		}},
		{"participant without id", models.CreateExpenseRequest{
			GroupID: "g", Description: "x", TotalAmount: 10, SplitType: utils.SplitTypeEqual,
			PaidBy: "a", Participants: []models.SplitInput{{UserName: "Anon"}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateExpense(&tc.request)
			assert.Error(t, err)
		})
	}
}

func TestExpenseService_CreateExpense_StoreFailure(t *testing.T) {
	service, store := newTestExpenseService()
	store.failWith = errors.New("connection refused")

	_, err := service.CreateExpense(&models.CreateExpenseRequest{
		GroupID:     "friends",
		Description: "Dinner",
		TotalAmount: 100,
		SplitType:   utils.SplitTypeEqual,
		PaidBy:      "alice",
		Participants: []models.SplitInput{
			{UserID: "alice"},
			{UserID: "bob"},
		},
	})

	assert.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	}
}

func TestExpenseService_MarkParticipantPaid_Idempotent(t *testing.T) {
	service, store := newTestExpenseService()

	seedExpense(store, "e1", "friends", "alice", 200, []models.Participant{
		{UserID: "alice", AmountOwed: 100, HasPaid: true},
		{UserID: "bob", AmountOwed: 100},
	})

	first, err := service.MarkParticipantPaid("e1", "bob")
	assert.NoError(t, err)
	assert.True(t, first.Participants[1].HasPaid)

	// Repeat call is a no-op, not an error
	second, err := service.MarkParticipantPaid("e1", "bob")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExpenseService_MarkParticipantPaid_NotFound(t *testing.T) {
	service, store := newTestExpenseService()

	seedExpense(store, "e1", "friends", "alice", 200, []models.Participant{
		{UserID: "alice", AmountOwed: 100, HasPaid: true},
		{UserID: "bob", AmountOwed: 100},
	})

	_, err := service.MarkParticipantPaid("missing", "bob")
	assertNotFound(t, err)

	_, err = service.MarkParticipantPaid("e1", "stranger")
	assertNotFound(t, err)
}

func TestExpenseService_RemoveExpense(t *testing.T) {
	service, store := newTestExpenseService()

	seedExpense(store, "e1", "friends", "alice", 200, []models.Participant{
		{UserID: "alice", AmountOwed: 100, HasPaid: true},
		{UserID: "bob", AmountOwed: 100},
	})

	assert.NoError(t, service.RemoveExpense("e1"))
	assert.Empty(t, store.expenses)

	assertNotFound(t, service.RemoveExpense("e1"))
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	assert.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	if assert.True(t, ok, "expected AppError, got %T", err) {
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	}
}
