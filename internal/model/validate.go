package model

import (
	"fmt"
)

// ValidationError describes a single invariant violation on a transaction.
type ValidationError struct {
	Invariant   int
	Seq         int64
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [seq %d]: %s", e.Invariant, e.Seq, e.Description)
}

// Validate enforces the record invariants on a single transaction.
func Validate(t Transaction) []ValidationError {
	var errs []ValidationError

	// Invariant 1: Amounts are non-negative.
	if t.Income.IsNegative() || t.Loss.IsNegative() {
		errs = append(errs, ValidationError{
			Invariant:   1,
			Seq:         t.Seq,
			Description: fmt.Sprintf("negative amount (income %s, loss %s)", t.Income, t.Loss),
		})
	}

	// Invariant 2: Never both income and loss.
	if t.Income.IsPositive() && t.Loss.IsPositive() {
		errs = append(errs, ValidationError{
			Invariant:   2,
			Seq:         t.Seq,
			Description: fmt.Sprintf("both income (%s) and loss (%s) are positive", t.Income, t.Loss),
		})
	}

	// Invariant 3: A decoded channel.
	if t.Channel == "" {
		errs = append(errs, ValidationError{
			Invariant:   3,
			Seq:         t.Seq,
			Description: "missing channel",
		})
	}

	return errs
}

// ValidateAll validates every transaction and additionally requires unique
// sequence numbers.
func ValidateAll(txns []Transaction) []ValidationError {
	var errs []ValidationError
	seen := make(map[int64]bool, len(txns))
	for _, t := range txns {
		errs = append(errs, Validate(t)...)

		// Invariant 4: Unique sequence numbers.
		if seen[t.Seq] {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Seq:         t.Seq,
				Description: "duplicate sequence number",
			})
		}
		seen[t.Seq] = true
	}
	return errs
}
