// models/models.go
package models

import "time"

// Group represents a named context whose members pool expenses together
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Participant represents one person's computed share of one expense
type Participant struct {
	UserID     string  `json:"userId"`
	UserName   string  `json:"userName"`
	AmountOwed float64 `json:"amountOwed"`
	Percentage float64 `json:"percentage,omitempty"`
	HasPaid    bool    `json:"hasPaid"`
}

// Expense represents a shared expense with its computed obligations
type Expense struct {
	ID           string        `json:"_id"`
	GroupID      string        `json:"groupId"`
	Description  string        `json:"description"`
	TotalAmount  float64       `json:"totalAmount"`
	SplitType    string        `json:"splitType"`
	CreatedBy    string        `json:"createdBy"`
	PaidBy       string        `json:"paidBy"`
	Participants []Participant `json:"participants"`
	Date         time.Time     `json:"date"`
}

// SplitInput describes one participant in a create-expense request,
// before obligations are computed
type SplitInput struct {
	UserID       string  `json:"userId" binding:"required"`
	UserName     string  `json:"userName"`
	Percentage   float64 `json:"percentage"`
	CustomAmount float64 `json:"customAmount"`
}

// Transfer represents a single directed payment in a settlement plan
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// Balance represents one user's aggregate position within a group
type Balance struct {
	TotalOwed       float64 `json:"totalOwed"`
	TotalOwedToUser float64 `json:"totalOwedToUser"`
	NetBalance      float64 `json:"netBalance"`
}

// SettlementPlan represents the result of simplifying a group's debt graph
type SettlementPlan struct {
	GroupID   string     `json:"groupId"`
	Transfers []Transfer `json:"transfers"`
}

// CreateExpenseRequest request model
type CreateExpenseRequest struct {
	GroupID      string       `json:"groupId" binding:"required"`
	Description  string       `json:"description" binding:"required"`
	TotalAmount  float64      `json:"totalAmount" binding:"required"`
	SplitType    string       `json:"splitType" binding:"required"`
	CreatedBy    string       `json:"createdBy"`
	PaidBy       string       `json:"paidBy" binding:"required"`
	Participants []SplitInput `json:"participants" binding:"required,min=1"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewExpense creates a fully-formed expense from computed obligations.
// Obligations are fixed after this point; only HasPaid flags mutate.
func NewExpense(id, groupID, description string, totalAmount float64, splitType, createdBy, paidBy string, participants []Participant) *Expense {
	if createdBy == "" {
		createdBy = paidBy
	}

	return &Expense{
		ID:           id,
		GroupID:      groupID,
		Description:  description,
		TotalAmount:  totalAmount,
		SplitType:    splitType,
		CreatedBy:    createdBy,
		PaidBy:       paidBy,
		Participants: participants,
		Date:         time.Now(),
	}
}
