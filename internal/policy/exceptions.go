package policy

import (
	"fmt"
	"time"

	"github.com/paycycle-dev/paycycle/internal/model"
)

// Exceptions maps an exact transaction timestamp (model.TimestampFormat) to
// the category label it must be filed under, regardless of any policy.
type Exceptions map[string]string

// NewExceptions validates every key as a timestamp and every label as
// non-empty.
func NewExceptions(m map[string]string) (Exceptions, error) {
	ex := make(Exceptions, len(m))
	for ts, label := range m {
		if _, err := time.Parse(model.TimestampFormat, ts); err != nil {
			return nil, fmt.Errorf("%w: exception key %q: %w", ErrInvalidPolicy, ts, err)
		}
		if label == "" {
			return nil, fmt.Errorf("%w: exception %q has empty label", ErrInvalidPolicy, ts)
		}
		ex[ts] = label
	}
	return ex, nil
}

// Lookup returns the override label for a transaction, if any.
func (e Exceptions) Lookup(t model.Transaction) (string, bool) {
	label, ok := e[t.Timestamp()]
	return label, ok
}
