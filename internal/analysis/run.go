// Package analysis drives a full run: it windows the transactions into pay
// cycles, summarizes every period, and builds the balance timeline.
package analysis

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/paycycle-dev/paycycle/internal/classify"
	"github.com/paycycle-dev/paycycle/internal/model"
	"github.com/paycycle-dev/paycycle/internal/period"
	"github.com/paycycle-dev/paycycle/internal/policy"
	"github.com/paycycle-dev/paycycle/internal/stats"
)

// ErrNoTransactions is returned for an empty input.
var ErrNoTransactions = errors.New("no transactions to analyze")

// Params holds the static configuration of a run.
type Params struct {
	Windows    []period.Window
	Policies   *policy.Set
	Exceptions policy.Exceptions
	Now        time.Time
	Logger     *zerolog.Logger // optional
}

// Point is one sample of the balance timeline. X is the position between the
// first and last transaction, from 0 to 1.
type Point struct {
	X       float64
	Balance decimal.Decimal
}

// Run is the result of analyzing one export.
type Run struct {
	Periods      []*stats.Period
	Start        time.Time
	End          time.Time
	Timeline     []Point
	Dropped      int
	Unclassified *classify.Diagnostics
}

// New analyzes txns. Any record invariant violation aborts the run.
func New(txns []model.Transaction, params Params) (*Run, error) {
	if len(txns) == 0 {
		return nil, ErrNoTransactions
	}
	if verrs := model.ValidateAll(txns); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}
	if len(params.Windows) == 0 {
		return nil, errors.New("no analysis periods configured")
	}

	log := zerolog.Nop()
	if params.Logger != nil {
		log = *params.Logger
	}
	sorted := slices.Clone(txns)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Seq < sorted[j].Seq })

	run := &Run{
		Start:        sorted[0].Time,
		End:          sorted[0].Time,
		Unclassified: classify.NewDiagnostics(),
	}
	for _, t := range sorted {
		if t.Time.Before(run.Start) {
			run.Start = t.Time
		}
		if t.Time.After(run.End) {
			run.End = t.Time
		}
	}
	span := run.End.Sub(run.Start).Seconds()

	groups := make([][]model.Transaction, len(params.Windows))
	for _, t := range sorted {
		i, ok := period.Find(params.Windows, t.Time)
		if !ok {
			run.Dropped++
			log.Debug().Int64("seq", t.Seq).Str("time", t.Timestamp()).Msg("transaction outside analysis periods")
			continue
		}
		groups[i] = append(groups[i], t)

		x := 0.0
		if span > 0 {
			x = t.Time.Sub(run.Start).Seconds() / span
		}
		run.Timeline = append(run.Timeline, Point{X: x, Balance: t.Balance})
	}

	c := classify.New(params.Policies, params.Exceptions, run.Unclassified)
	run.Periods = make([]*stats.Period, len(params.Windows))
	for i, w := range params.Windows {
		run.Periods[i] = stats.Compute(w, groups[i], params.Now, c)
	}

	log.Info().
		Int("transactions", len(sorted)).
		Int("periods", len(run.Periods)).
		Int("dropped", run.Dropped).
		Int("unclassified", run.Unclassified.Len()).
		Msg("analysis complete")

	return run, nil
}

// Period returns the period with the given label.
func (r *Run) Period(label string) (*stats.Period, bool) {
	for _, p := range r.Periods {
		if p.Window.Label == label {
			return p, true
		}
	}
	return nil, false
}
