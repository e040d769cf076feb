package utils

const (
	// Split types
	SplitTypeEqual      = "equal"
	SplitTypePercentage = "percentage"
	SplitTypeCustom     = "custom"

	// HTTP status messages
	ErrInvalidRequest   = "Invalid request"
	ErrFailedToStore    = "Failed to store data"
	ErrFailedToRetrieve = "Failed to retrieve data"

	// Precision for monetary calculations
	MoneyPrecision = 100.0

	// Tolerance for split precondition checks (one cent)
	SplitTolerance = 0.01
)
