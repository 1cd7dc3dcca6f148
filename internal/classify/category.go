package classify

import (
	"github.com/shopspring/decimal"

	"github.com/paycycle-dev/paycycle/internal/model"
)

// Kind tags how a category was reached.
type Kind string

const (
	KindPolicy    Kind = "policy"
	KindException Kind = "exception"
	KindATM       Kind = "atm"
	KindOther     Kind = "other"
)

// Category is the outcome of classifying one transaction.
type Category struct {
	Label     string
	Kind      Kind
	Direction model.Direction
}

// Bucket accumulates the transactions of one category within a period.
type Bucket struct {
	Category     Category
	Transactions []model.Transaction
	Income       decimal.Decimal
	Loss         decimal.Decimal
	Balance      decimal.Decimal // Income - Loss
}

func (b *Bucket) add(t model.Transaction) {
	b.Transactions = append(b.Transactions, t)
}

// process computes the totals in a single pass over the transactions.
func (b *Bucket) process() {
	income, loss := decimal.Zero, decimal.Zero
	for _, t := range b.Transactions {
		income = income.Add(t.Income)
		loss = loss.Add(t.Loss)
	}
	b.Income = income
	b.Loss = loss
	b.Balance = income.Sub(loss)
}

// Breakdown maps category labels to buckets, keeping first-appearance order.
type Breakdown struct {
	order   []string
	buckets map[string]*Bucket
}

func newBreakdown() *Breakdown {
	return &Breakdown{buckets: make(map[string]*Bucket)}
}

func (bd *Breakdown) add(c Category, t model.Transaction) {
	b, ok := bd.buckets[c.Label]
	if !ok {
		b = &Bucket{Category: c}
		bd.buckets[c.Label] = b
		bd.order = append(bd.order, c.Label)
	}
	b.add(t)
}

// Labels returns the category labels in first-appearance order.
func (bd *Breakdown) Labels() []string {
	return append([]string(nil), bd.order...)
}

// Get returns the bucket for a label.
func (bd *Breakdown) Get(label string) (*Bucket, bool) {
	b, ok := bd.buckets[label]
	return b, ok
}

// Buckets returns all buckets in first-appearance order.
func (bd *Breakdown) Buckets() []*Bucket {
	out := make([]*Bucket, len(bd.order))
	for i, label := range bd.order {
		out[i] = bd.buckets[label]
	}
	return out
}

// Len returns the number of buckets.
func (bd *Breakdown) Len() int {
	return len(bd.order)
}

// Balance returns the sum of all bucket balances.
func (bd *Breakdown) Balance() decimal.Decimal {
	sum := decimal.Zero
	for _, b := range bd.buckets {
		sum = sum.Add(b.Balance)
	}
	return sum
}
