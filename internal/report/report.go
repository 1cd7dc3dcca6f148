// Package report renders an analysis run as a text summary or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/paycycle-dev/paycycle/internal/analysis"
	"github.com/paycycle-dev/paycycle/internal/model"
	"github.com/paycycle-dev/paycycle/internal/stats"
)

// Won formats an amount with thousands separators and the currency suffix.
func Won(d decimal.Decimal) string {
	return humanize.BigComma(d.Round(0).BigInt()) + "원"
}

// SignedWon is Won with an explicit plus sign for non-negative amounts.
func SignedWon(d decimal.Decimal) string {
	if d.Sign() >= 0 {
		return "+" + Won(d)
	}
	return Won(d)
}

// Rate formats a percent change, or "n/a" when undefined.
func Rate(r decimal.NullDecimal) string {
	if !r.Valid {
		return "n/a"
	}
	s := r.Decimal.StringFixed(2)
	if r.Decimal.Sign() >= 0 {
		s = "+" + s
	}
	return s + "%"
}

// Text writes one block per period followed by the unclassified notes.
func Text(w io.Writer, run *analysis.Run) error {
	var b strings.Builder

	fmt.Fprintf(&b, "analysis %s .. %s\n",
		run.Start.Format(model.TimestampFormat), run.End.Format(model.TimestampFormat))
	if run.Dropped > 0 {
		fmt.Fprintf(&b, "dropped %d transaction(s) outside the analysis periods\n", run.Dropped)
	}

	for _, p := range run.Periods {
		b.WriteString("\n")
		writePeriod(&b, p)
	}

	if notes := run.Unclassified.Notes(); len(notes) > 0 {
		fmt.Fprintf(&b, "\nunclassified (%d):\n", len(notes))
		for _, n := range notes {
			fmt.Fprintf(&b, "  %s\n", n)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writePeriod(b *strings.Builder, p *stats.Period) {
	w := p.Window
	header := fmt.Sprintf("%s (%s .. %s)", w.Label, w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
	if p.Empty {
		fmt.Fprintf(b, "%s empty\n", header)
		return
	}

	fmt.Fprintf(b, "%s\n", header)
	fmt.Fprintf(b, "  %-16s %s -> %s (%s)\n", "start-end", Won(p.StartBalance), Won(p.EndBalance), Rate(p.IncreaseRate))
	fmt.Fprintf(b, "  %-16s %s (%s / %s)\n", "total", SignedWon(p.TotalDelta), SignedWon(p.TotalIncome), SignedWon(p.TotalLoss))
	fmt.Fprintf(b, "  %-16s %s (%s / %s)\n", fmt.Sprintf("DoD(days=%d)", p.DayCount),
		SignedWon(p.DeltaByDay), SignedWon(p.IncomeByDay), SignedWon(p.LossByDay))
	if p.RemainingDayCount > 0 && p.BalancePerRemainingDay.Valid {
		fmt.Fprintf(b, "  %-16s %s/day\n", fmt.Sprintf("left(days=%d)", p.RemainingDayCount), Won(p.BalancePerRemainingDay.Decimal))
	}

	for _, bucket := range p.Breakdown.Buckets() {
		if bucket.Balance.IsZero() {
			continue
		}
		fmt.Fprintf(b, "    %-24s %s\n", bucket.Category.Label, SignedWon(bucket.Balance))
	}
}

// runJSON is the serialized form of a run.
type runJSON struct {
	Start        string       `json:"start"`
	End          string       `json:"end"`
	Dropped      int          `json:"dropped"`
	Periods      []periodJSON `json:"periods"`
	Timeline     []pointJSON  `json:"timeline"`
	Unclassified []string     `json:"unclassified"`
}

type periodJSON struct {
	Label                  string               `json:"label"`
	Start                  string               `json:"start"`
	End                    string               `json:"end"`
	Empty                  bool                 `json:"empty"`
	Transactions           int                  `json:"transactions"`
	StartBalance           *decimal.Decimal     `json:"start_balance,omitempty"`
	EndBalance             *decimal.Decimal     `json:"end_balance,omitempty"`
	IncreaseRate           *decimal.NullDecimal `json:"increase_rate,omitempty"`
	TotalIncome            *decimal.Decimal     `json:"total_income,omitempty"`
	TotalLoss              *decimal.Decimal     `json:"total_loss,omitempty"`
	TotalDelta             *decimal.Decimal     `json:"total_delta,omitempty"`
	DayCount               int                  `json:"day_count,omitempty"`
	RemainingDayCount      int                  `json:"remaining_day_count,omitempty"`
	IncomeByDay            *decimal.Decimal     `json:"income_by_day,omitempty"`
	LossByDay              *decimal.Decimal     `json:"loss_by_day,omitempty"`
	DeltaByDay             *decimal.Decimal     `json:"delta_by_day,omitempty"`
	LossPerElapsedDay      *decimal.NullDecimal `json:"loss_per_elapsed_day,omitempty"`
	BalancePerRemainingDay *decimal.NullDecimal `json:"balance_per_remaining_day,omitempty"`
	Categories             []bucketJSON         `json:"categories,omitempty"`
}

type bucketJSON struct {
	Label        string          `json:"label"`
	Kind         string          `json:"kind"`
	Transactions int             `json:"transactions"`
	Income       decimal.Decimal `json:"income"`
	Loss         decimal.Decimal `json:"loss"`
	Balance      decimal.Decimal `json:"balance"`
}

type pointJSON struct {
	X       float64         `json:"x"`
	Balance decimal.Decimal `json:"balance"`
}

// JSON writes the run as an indented JSON document.
func JSON(w io.Writer, run *analysis.Run) error {
	out := runJSON{
		Start:        run.Start.Format(model.TimestampFormat),
		End:          run.End.Format(model.TimestampFormat),
		Dropped:      run.Dropped,
		Periods:      make([]periodJSON, 0, len(run.Periods)),
		Timeline:     make([]pointJSON, 0, len(run.Timeline)),
		Unclassified: run.Unclassified.Notes(),
	}
	if out.Unclassified == nil {
		out.Unclassified = []string{}
	}

	for _, p := range run.Periods {
		out.Periods = append(out.Periods, toPeriodJSON(p))
	}
	for _, pt := range run.Timeline {
		out.Timeline = append(out.Timeline, pointJSON(pt))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

func toPeriodJSON(p *stats.Period) periodJSON {
	pj := periodJSON{
		Label:        p.Window.Label,
		Start:        p.Window.Start.Format("2006-01-02"),
		End:          p.Window.End.Format("2006-01-02"),
		Empty:        p.Empty,
		Transactions: len(p.Transactions),
	}
	if p.Empty {
		return pj
	}

	pj.StartBalance = &p.StartBalance
	pj.EndBalance = &p.EndBalance
	pj.IncreaseRate = &p.IncreaseRate
	pj.TotalIncome = &p.TotalIncome
	pj.TotalLoss = &p.TotalLoss
	pj.TotalDelta = &p.TotalDelta
	pj.DayCount = p.DayCount
	pj.RemainingDayCount = p.RemainingDayCount
	pj.IncomeByDay = &p.IncomeByDay
	pj.LossByDay = &p.LossByDay
	pj.DeltaByDay = &p.DeltaByDay
	pj.LossPerElapsedDay = &p.LossPerElapsedDay
	pj.BalancePerRemainingDay = &p.BalancePerRemainingDay

	for _, b := range p.Breakdown.Buckets() {
		pj.Categories = append(pj.Categories, bucketJSON{
			Label:        b.Category.Label,
			Kind:         string(b.Category.Kind),
			Transactions: len(b.Transactions),
			Income:       b.Income,
			Loss:         b.Loss,
			Balance:      b.Balance,
		})
	}
	return pj
}
