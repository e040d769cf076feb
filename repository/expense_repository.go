// repository/expense_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/splitbook/splitbook-backend/models"
)

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	DB *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{
		DB: GetDB(),
	}
}

// StoreExpense saves an expense and its participant obligations in one transaction
func (r *ExpenseRepository) StoreExpense(expense *models.Expense) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	// Insert expense
	_, err = tx.Exec(
		`INSERT INTO expenses
         (id, group_id, description, total_amount, split_type, created_by, paid_by, date)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		expense.ID, expense.GroupID, expense.Description, expense.TotalAmount,
		expense.SplitType, expense.CreatedBy, expense.PaidBy, expense.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %v", err)
	}

	// Insert participant obligations
	for i, participant := range expense.Participants {
		_, err = tx.Exec(
			`INSERT INTO expense_participants
             (expense_id, position, user_id, user_name, amount_owed, percentage, has_paid)
             VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			expense.ID, i, participant.UserID, participant.UserName,
			participant.AmountOwed, participant.Percentage, participant.HasPaid,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense participant: %v", err)
		}
	}

	return tx.Commit()
}

// GetExpensesByGroup retrieves all expenses for a group, most recent first
func (r *ExpenseRepository) GetExpensesByGroup(groupID string) ([]*models.Expense, error) {
	return r.queryExpenses(
		`SELECT id, group_id, description, total_amount, split_type, created_by, paid_by, date
         FROM expenses WHERE group_id = $1 ORDER BY date DESC`,
		groupID,
	)
}

// GetExpensesByUser retrieves all expenses where the user is creator, payer, or participant
func (r *ExpenseRepository) GetExpensesByUser(userID string) ([]*models.Expense, error) {
	return r.queryExpenses(
		`SELECT DISTINCT e.id, e.group_id, e.description, e.total_amount, e.split_type,
                e.created_by, e.paid_by, e.date
         FROM expenses e
         LEFT JOIN expense_participants p ON p.expense_id = e.id
         WHERE e.created_by = $1 OR e.paid_by = $1 OR p.user_id = $1
         ORDER BY e.date DESC`,
		userID,
	)
}

// GetExpenseByID retrieves a single expense, or nil when absent
func (r *ExpenseRepository) GetExpenseByID(expenseID string) (*models.Expense, error) {
	expenses, err := r.queryExpenses(
		`SELECT id, group_id, description, total_amount, split_type, created_by, paid_by, date
         FROM expenses WHERE id = $1`,
		expenseID,
	)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, nil
	}
	return expenses[0], nil
}

// MarkParticipantPaid flags a participant's obligation as paid. Returns false
// when the expense or the participant within it does not exist. Re-marking an
// already-paid participant still matches the row, so repeat calls are no-ops.
func (r *ExpenseRepository) MarkParticipantPaid(expenseID, userID string) (bool, error) {
	result, err := r.DB.Exec(
		"UPDATE expense_participants SET has_paid = TRUE WHERE expense_id = $1 AND user_id = $2",
		expenseID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark participant paid: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check update result: %v", err)
	}

	return affected > 0, nil
}

// RemoveExpense removes an expense and its obligations entirely
func (r *ExpenseRepository) RemoveExpense(expenseID string) (bool, error) {
	// First check if expense exists
	var count int
	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM expenses WHERE id = $1",
		expenseID,
	).Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to check expense: %v", err)
	}

	if count == 0 {
		return false, nil
	}

	// Delete expense (cascade will delete participants)
	_, err = r.DB.Exec("DELETE FROM expenses WHERE id = $1", expenseID)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %v", err)
	}

	return true, nil
}

// queryExpenses runs an expense query and loads participants for each row
func (r *ExpenseRepository) queryExpenses(query string, arg string) ([]*models.Expense, error) {
	rows, err := r.DB.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %v", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		var expense models.Expense

		err = rows.Scan(
			&expense.ID, &expense.GroupID, &expense.Description, &expense.TotalAmount,
			&expense.SplitType, &expense.CreatedBy, &expense.PaidBy, &expense.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %v", err)
		}

		expenses = append(expenses, &expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expenses: %v", err)
	}

	for _, expense := range expenses {
		if err := r.loadParticipants(expense); err != nil {
			return nil, err
		}
	}

	return expenses, nil
}

// loadParticipants loads the ordered obligation list for one expense
func (r *ExpenseRepository) loadParticipants(expense *models.Expense) error {
	rows, err := r.DB.Query(
		`SELECT user_id, user_name, amount_owed, percentage, has_paid
         FROM expense_participants WHERE expense_id = $1 ORDER BY position`,
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get expense participants: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var participant models.Participant
		if err := rows.Scan(&participant.UserID, &participant.UserName,
			&participant.AmountOwed, &participant.Percentage, &participant.HasPaid); err != nil {
			return fmt.Errorf("failed to scan participant: %v", err)
		}
		expense.Participants = append(expense.Participants, participant)
	}

	return rows.Err()
}
