package classify

import (
	"slices"
	"sort"

	"github.com/paycycle-dev/paycycle/internal/model"
)

// Diagnostics collects unclassified transactions for rule-set maintenance.
// Each sequence number is recorded once.
type Diagnostics struct {
	seen  map[int64]bool
	items []model.Transaction
}

// NewDiagnostics creates an empty collector.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{seen: make(map[int64]bool)}
}

// Unclassified implements Sink.
func (d *Diagnostics) Unclassified(t model.Transaction) {
	if d.seen[t.Seq] {
		return
	}
	d.seen[t.Seq] = true
	d.items = append(d.items, t)
}

// Transactions returns the collected transactions ordered by sequence number.
func (d *Diagnostics) Transactions() []model.Transaction {
	out := slices.Clone(d.items)
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

// Notes returns the distinct notes, sorted.
func (d *Diagnostics) Notes() []string {
	set := make(map[string]bool, len(d.items))
	var notes []string
	for _, t := range d.items {
		if !set[t.Note] {
			set[t.Note] = true
			notes = append(notes, t.Note)
		}
	}
	sort.Strings(notes)
	return notes
}

// Len returns the number of collected transactions.
func (d *Diagnostics) Len() int {
	return len(d.items)
}
