package ledger

import (
	"errors"
	"fmt"
)

// Sentinel errors for missing entities.
var (
	ErrIngredientNotFound = errors.New("ledger: ingredient not found")
	ErrProductNotFound    = errors.New("ledger: product not found")
	ErrRecipeNotFound     = errors.New("ledger: recipe not found")
)

// ValidationError reports an out-of-range or non-finite input value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("ledger: validation failed for %s: %s", e.Field, e.Message)
}

// InsufficientStockError reports a sale line requesting more units than the
// current inventory can make. Product carries the offending product name.
type InsufficientStockError struct {
	Product string
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("ledger: insufficient stock for %s", e.Product)
}

// IsNotFound returns true if the error is any of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrIngredientNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrRecipeNotFound)
}
