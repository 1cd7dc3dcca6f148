// Package stats computes the financial summary of one pay-cycle period.
package stats

import (
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paycycle-dev/paycycle/internal/classify"
	"github.com/paycycle-dev/paycycle/internal/model"
	"github.com/paycycle-dev/paycycle/internal/period"
)

var hundred = decimal.NewFromInt(100)

// Period is the summary of one window. When Empty is true only Window and
// Transactions are set.
type Period struct {
	Window       period.Window
	Transactions []model.Transaction // sorted by Seq
	Empty        bool

	StartBalance decimal.Decimal
	EndBalance   decimal.Decimal
	IncreaseRate decimal.NullDecimal // percent; invalid when StartBalance <= 0

	TotalIncome decimal.Decimal
	TotalLoss   decimal.Decimal // negative or zero
	TotalDelta  decimal.Decimal

	DayCount          int
	ElapsedDayCount   int
	RemainingDayCount int

	IncomeByDay decimal.Decimal
	LossByDay   decimal.Decimal
	DeltaByDay  decimal.Decimal

	LossPerElapsedDay      decimal.NullDecimal
	BalancePerRemainingDay decimal.NullDecimal

	Breakdown *classify.Breakdown
}

// Compute summarizes txns, which must already lie inside w. now only splits
// the window into elapsed and remaining days.
func Compute(w period.Window, txns []model.Transaction, now time.Time, c *classify.Classifier) *Period {
	sorted := slices.Clone(txns)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Seq < sorted[j].Seq })

	p := &Period{Window: w, Transactions: sorted}
	if len(sorted) == 0 {
		p.Empty = true
		return p
	}

	first, last := sorted[0], sorted[len(sorted)-1]
	p.StartBalance = first.BalanceBefore()
	p.EndBalance = last.Balance
	if p.StartBalance.IsPositive() {
		rate := p.EndBalance.Sub(p.StartBalance).Div(p.StartBalance).Mul(hundred)
		p.IncreaseRate = decimal.NewNullDecimal(rate)
	}

	income, loss := decimal.Zero, decimal.Zero
	for _, t := range sorted {
		income = income.Add(t.Income)
		loss = loss.Add(t.Loss)
	}
	p.TotalIncome = income
	p.TotalLoss = loss.Neg()
	p.TotalDelta = p.TotalIncome.Add(p.TotalLoss)

	p.DayCount = w.Days()
	p.RemainingDayCount = w.DaysFrom(now)
	p.ElapsedDayCount = p.DayCount - p.RemainingDayCount

	p.IncomeByDay = FloorDiv(p.TotalIncome, p.DayCount)
	p.LossByDay = FloorDiv(p.TotalLoss, p.DayCount)
	p.DeltaByDay = FloorDiv(p.TotalDelta, p.DayCount)

	if p.ElapsedDayCount > 0 {
		p.LossPerElapsedDay = decimal.NewNullDecimal(FloorDiv(p.TotalLoss, p.ElapsedDayCount))
	}
	if p.RemainingDayCount > 0 {
		p.BalancePerRemainingDay = decimal.NewNullDecimal(FloorDiv(p.EndBalance, p.RemainingDayCount))
	}

	p.Breakdown = c.Breakdown(sorted)
	return p
}

// FloorDiv divides and rounds toward negative infinity.
func FloorDiv(d decimal.Decimal, n int) decimal.Decimal {
	q, _ := d.QuoRem(decimal.NewFromInt(int64(n)), 0)
	if q.Mul(decimal.NewFromInt(int64(n))).GreaterThan(d) {
		q = q.Sub(decimal.NewFromInt(1))
	}
	return q
}
