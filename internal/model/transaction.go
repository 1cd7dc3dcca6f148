package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimestampFormat is the canonical string form of a transaction timestamp.
// Exception tables are keyed by it.
const TimestampFormat = "2006-01-02 15:04:05"

// Direction classifies the money flow of a transaction.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionLoss    Direction = "loss"
	DirectionNeutral Direction = "neutral"
)

// Tag returns the one-letter prefix used in category labels.
func (d Direction) Tag() string {
	switch d {
	case DirectionIncome:
		return "I"
	case DirectionLoss:
		return "L"
	default:
		return "N"
	}
}

// Transaction is one row of a bank account export. Income and Loss are both
// non-negative; at most one of them is positive.
type Transaction struct {
	Seq     int64 // export sequence number, unique and increasing
	Time    time.Time
	Channel Channel
	Income  decimal.Decimal
	Loss    decimal.Decimal
	Balance decimal.Decimal // running balance after this row
	Note    string          // payee / description, used for matching
	Memo    string
	Branch  string
}

// Direction derives the money flow from the income and loss amounts.
func (t Transaction) Direction() Direction {
	switch {
	case t.Income.IsPositive() && t.Loss.IsZero():
		return DirectionIncome
	case t.Loss.IsPositive() && t.Income.IsZero():
		return DirectionLoss
	default:
		return DirectionNeutral
	}
}

// Delta returns Income - Loss.
func (t Transaction) Delta() decimal.Decimal {
	return t.Income.Sub(t.Loss)
}

// BalanceBefore returns the balance just before this row was applied.
func (t Transaction) BalanceBefore() decimal.Decimal {
	return t.Balance.Sub(t.Income).Add(t.Loss)
}

// Timestamp formats Time with TimestampFormat.
func (t Transaction) Timestamp() string {
	return t.Time.Format(TimestampFormat)
}

// Date returns the calendar date of the transaction at midnight UTC.
func (t Transaction) Date() time.Time {
	return time.Date(t.Time.Year(), t.Time.Month(), t.Time.Day(), 0, 0, 0, 0, time.UTC)
}
