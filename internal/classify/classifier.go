// Package classify assigns transactions to categories and groups them into
// buckets.
//
// Precedence for every transaction:
//  1. the timestamp exception table,
//  2. the first matching policy of the transaction's direction (income and
//     loss only; neutral rows skip this step),
//  3. "<tag>-ATM" for cash machine channels, otherwise "<tag>-other", which is
//     also reported to the Sink.
package classify

import (
	"strings"

	"github.com/paycycle-dev/paycycle/internal/model"
	"github.com/paycycle-dev/paycycle/internal/policy"
)

// Sink receives transactions that fell through to the "-other" fallback.
type Sink interface {
	Unclassified(t model.Transaction)
}

// Classifier applies a policy set and exception table to transactions.
type Classifier struct {
	policies   *policy.Set
	exceptions policy.Exceptions
	sink       Sink
}

// New creates a Classifier. sink may be nil.
func New(policies *policy.Set, exceptions policy.Exceptions, sink Sink) *Classifier {
	if policies == nil {
		policies = &policy.Set{}
	}
	return &Classifier{policies: policies, exceptions: exceptions, sink: sink}
}

// Classify returns the category of a single transaction. It depends only on
// the transaction and the static configuration.
func (c *Classifier) Classify(t model.Transaction) Category {
	cat, _ := c.classify(t)
	return cat
}

// classify also reports whether the exception table decided the category.
func (c *Classifier) classify(t model.Transaction) (Category, bool) {
	dir := t.Direction()

	if label, ok := c.exceptions.Lookup(t); ok {
		return c.labelCategory(label, dir), true
	}

	if dir != model.DirectionNeutral {
		if p, ok := c.policies.Match(dir, t.Note); ok {
			return Category{Label: p.Label(), Kind: KindPolicy, Direction: dir}, false
		}
	}

	if t.Channel.IsATM() {
		return Category{Label: dir.Tag() + atmSuffix, Kind: KindATM, Direction: dir}, false
	}
	return Category{Label: dir.Tag() + otherSuffix, Kind: KindOther, Direction: dir}, false
}

const (
	atmSuffix   = "-ATM"
	otherSuffix = "-other"
)

// labelCategory returns the category an exception label files a row under.
// Kind and direction depend on the label alone.
func (c *Classifier) labelCategory(label string, rowDir model.Direction) Category {
	cat := Category{Label: label, Kind: KindException, Direction: labelDirection(label, rowDir)}
	switch {
	case strings.HasSuffix(label, atmSuffix) && len(label) == 1+len(atmSuffix):
		cat.Kind = KindATM
	case strings.HasSuffix(label, otherSuffix) && len(label) == 1+len(otherSuffix):
		cat.Kind = KindOther
	default:
		if p, ok := c.policies.ByLabel(label); ok {
			cat.Kind = KindPolicy
			cat.Direction = p.Direction
		}
	}
	return cat
}

// labelDirection reads the direction from the I/L/N prefix of a label, or
// falls back to dir for labels without one.
func labelDirection(label string, dir model.Direction) model.Direction {
	for _, d := range []model.Direction{model.DirectionIncome, model.DirectionLoss, model.DirectionNeutral} {
		if strings.HasPrefix(label, d.Tag()) {
			return d
		}
	}
	return dir
}

// Breakdown classifies every transaction and returns processed buckets.
// Rows the exception table files under "-other" are not reported to the sink.
func (c *Classifier) Breakdown(txns []model.Transaction) *Breakdown {
	bd := newBreakdown()
	for _, t := range txns {
		cat, excepted := c.classify(t)
		if cat.Kind == KindOther && !excepted && c.sink != nil {
			c.sink.Unclassified(t)
		}
		bd.add(cat, t)
	}
	for _, b := range bd.buckets {
		b.process()
	}
	return bd
}
