package services

import (
	"log"

	"github.com/google/uuid"

	"github.com/splitbook/splitbook-backend/models"
	"github.com/splitbook/splitbook-backend/utils"
)

// ExpenseStore is the persistence surface the expense service depends on
type ExpenseStore interface {
	StoreExpense(expense *models.Expense) error
	GetExpensesByGroup(groupID string) ([]*models.Expense, error)
	GetExpensesByUser(userID string) ([]*models.Expense, error)
	GetExpenseByID(expenseID string) (*models.Expense, error)
	MarkParticipantPaid(expenseID, userID string) (bool, error)
	RemoveExpense(expenseID string) (bool, error)
}

// ExpenseService owns the expense record lifecycle: validation at the ledger
// entry point, obligation computation, and persistence
type ExpenseService struct {
	store        ExpenseStore
	splitService *SplitService
}

// NewExpenseService creates a new expense service
func NewExpenseService(store ExpenseStore, splitService *SplitService) *ExpenseService {
	return &ExpenseService{
		store:        store,
		splitService: splitService,
	}
}

// CreateExpense validates a create request, computes obligations, and persists
// the record. Validation happens here, before the pure calculator runs and
// before anything is stored.
func (s *ExpenseService) CreateExpense(request *models.CreateExpenseRequest) (*models.Expense, error) {
	if err := s.validateCreateRequest(request); err != nil {
		return nil, err
	}

	if err := s.splitService.ValidateSplitPreconditions(request.TotalAmount, request.SplitType, request.Participants); err != nil {
		return nil, err
	}

	participants, err := s.splitService.ComputeObligations(
		request.TotalAmount,
		request.SplitType,
		request.PaidBy,
		request.Participants,
	)
	if err != nil {
		return nil, err
	}

	expense := models.NewExpense(
		uuid.New().String(),
		request.GroupID,
		request.Description,
		request.TotalAmount,
		request.SplitType,
		request.CreatedBy,
		request.PaidBy,
		participants,
	)

	if err := s.store.StoreExpense(expense); err != nil {
		log.Printf("Failed to store expense: %v", err)
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	return expense, nil
}

// GetExpensesByGroup returns all expenses for a group, most recent first
func (s *ExpenseService) GetExpensesByGroup(groupID string) ([]*models.Expense, error) {
	expenses, err := s.store.GetExpensesByGroup(groupID)
	if err != nil {
		log.Printf("Failed to get expenses for group %s: %v", groupID, err)
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return expenses, nil
}

// GetExpensesByUser returns all expenses where the user is creator, payer, or participant
func (s *ExpenseService) GetExpensesByUser(userID string) ([]*models.Expense, error) {
	expenses, err := s.store.GetExpensesByUser(userID)
	if err != nil {
		log.Printf("Failed to get expenses for user %s: %v", userID, err)
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return expenses, nil
}

// MarkParticipantPaid flags one participant's obligation as paid and returns
// the updated record. Idempotent: re-marking an already-paid participant is a
// no-op, not an error.
func (s *ExpenseService) MarkParticipantPaid(expenseID, userID string) (*models.Expense, error) {
	found, err := s.store.MarkParticipantPaid(expenseID, userID)
	if err != nil {
		log.Printf("Failed to mark participant %s paid on expense %s: %v", userID, expenseID, err)
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !found {
		return nil, utils.NewNotFoundError("Expense participant")
	}

	expense, err := s.store.GetExpenseByID(expenseID)
	if err != nil {
		log.Printf("Failed to reload expense %s: %v", expenseID, err)
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if expense == nil {
		return nil, utils.NewNotFoundError("Expense")
	}

	return expense, nil
}

// RemoveExpense deletes an expense and all its obligations
func (s *ExpenseService) RemoveExpense(expenseID string) error {
	found, err := s.store.RemoveExpense(expenseID)
	if err != nil {
		log.Printf("Failed to remove expense %s: %v", expenseID, err)
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !found {
		return utils.NewNotFoundError("Expense")
	}
	return nil
}

// validateCreateRequest checks structural completeness of a create request
func (s *ExpenseService) validateCreateRequest(request *models.CreateExpenseRequest) error {
	if err := utils.ValidateRequired(request.GroupID, "groupId"); err != nil {
		return err
	}
	if err := utils.ValidateRequired(request.Description, "description"); err != nil {
		return err
	}
	if err := utils.ValidateRequired(request.PaidBy, "paidBy"); err != nil {
		return err
	}
	if err := utils.ValidateSplitType(request.SplitType); err != nil {
		return err
	}
	if err := utils.ValidateNotEmpty(request.Participants, "participants"); err != nil {
		return err
	}
	if err := utils.ValidatePositive(request.TotalAmount, "totalAmount"); err != nil {
		return err
	}

	for _, participant := range request.Participants {
		if err := utils.ValidateRequired(participant.UserID, "participant userId"); err != nil {
			return err
		}
	}

	return nil
}
