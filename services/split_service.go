package services

import (
	"github.com/splitbook/splitbook-backend/models"
	"github.com/splitbook/splitbook-backend/utils"
)

// SplitService turns a total amount and a split policy into per-participant
// obligations. Pure calculation, no side effects.
type SplitService struct{}

// NewSplitService creates a new split service
func NewSplitService() *SplitService {
	return &SplitService{}
}

// ComputeObligations computes each participant's owed amount for an expense.
// The payer's own entry is seeded as already paid. Percentage and custom
// preconditions (sums balancing) are the entry point's responsibility and are
// not re-checked here.
func (s *SplitService) ComputeObligations(totalAmount float64, splitType, paidBy string, inputs []models.SplitInput) ([]models.Participant, error) {
	if len(inputs) == 0 {
		return nil, utils.NewInvalidSplitError("participants cannot be empty")
	}
	if totalAmount <= 0 {
		return nil, utils.NewInvalidSplitError("total amount must be positive")
	}

	participants := make([]models.Participant, len(inputs))
	for i, input := range inputs {
		participants[i] = models.Participant{
			UserID:   input.UserID,
			UserName: input.UserName,
			HasPaid:  input.UserID == paidBy,
		}

		switch splitType {
		case utils.SplitTypeEqual:
			participants[i].AmountOwed = utils.Round(totalAmount / float64(len(inputs)))
		case utils.SplitTypePercentage:
			participants[i].Percentage = input.Percentage
			participants[i].AmountOwed = utils.Round(totalAmount * input.Percentage / 100)
		case utils.SplitTypeCustom:
			participants[i].AmountOwed = input.CustomAmount
		default:
			return nil, utils.NewInvalidSplitError("unknown split type")
		}
	}

	return participants, nil
}

// ValidateSplitPreconditions checks the caller-supplied sums that must balance
// before obligations are computed: percentages must sum to 100 and custom
// amounts must sum to the total, each within a one-cent tolerance.
func (s *SplitService) ValidateSplitPreconditions(totalAmount float64, splitType string, inputs []models.SplitInput) error {
	switch splitType {
	case utils.SplitTypePercentage:
		var percentageSum float64
		for _, input := range inputs {
			if input.Percentage < 0 {
				return utils.NewInvalidSplitError("percentage cannot be negative")
			}
			percentageSum += input.Percentage
		}
		if !utils.WithinTolerance(percentageSum, 100) {
			return utils.NewInvalidSplitError("percentages must sum to 100")
		}
	case utils.SplitTypeCustom:
		var amountSum float64
		for _, input := range inputs {
			if input.CustomAmount < 0 {
				return utils.NewInvalidSplitError("custom amount cannot be negative")
			}
			amountSum += input.CustomAmount
		}
		if !utils.WithinTolerance(amountSum, totalAmount) {
			return utils.NewInvalidSplitError("custom amounts must sum to the total")
		}
	}

	return nil
}
