// Package advisory writes the list of transactions no policy matched, so the
// rule set can be extended.
package advisory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paycycle-dev/paycycle/internal/model"
)

// Entry is one row in the advisory file.
type Entry struct {
	Seq       int64
	Timestamp time.Time
	Direction model.Direction
	Amount    decimal.Decimal // signed: income positive, loss negative
	Channel   model.Channel
	Note      string
}

// Header is the CSV header for unclassified.csv.
const Header = "seq,timestamp,direction,amount,channel,note"

// DefaultPath is the advisory file location relative to a project root.
const DefaultPath = "logs/unclassified.csv"

const (
	numFields    = 6
	colSeq       = 0
	colTimestamp = 1
	colDirection = 2
	colAmount    = 3
	colChannel   = 4
	colNote      = 5
)

// FromTransactions converts unclassified transactions to entries.
func FromTransactions(txns []model.Transaction) []Entry {
	entries := make([]Entry, len(txns))
	for i, t := range txns {
		entries[i] = Entry{
			Seq:       t.Seq,
			Timestamp: t.Time,
			Direction: t.Direction(),
			Amount:    t.Delta(),
			Channel:   t.Channel,
			Note:      t.Note,
		}
	}
	return entries
}

// Since returns the entries of current whose sequence number is not in prev.
func Since(prev, current []Entry) []Entry {
	seen := make(map[int64]bool, len(prev))
	for _, e := range prev {
		seen[e.Seq] = true
	}
	var fresh []Entry
	for _, e := range current {
		if !seen[e.Seq] {
			fresh = append(fresh, e)
		}
	}
	return fresh
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colSeq] = strconv.FormatInt(e.Seq, 10)
	row[colTimestamp] = e.Timestamp.Format(model.TimestampFormat)
	row[colDirection] = string(e.Direction)
	row[colAmount] = e.Amount.String()
	row[colChannel] = string(e.Channel)
	row[colNote] = e.Note
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	seq, err := strconv.ParseInt(record[colSeq], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing seq %q: %w", record[colSeq], err)
	}

	ts, err := time.Parse(model.TimestampFormat, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return Entry{
		Seq:       seq,
		Timestamp: ts,
		Direction: model.Direction(record[colDirection]),
		Amount:    amount,
		Channel:   model.Channel(record[colChannel]),
		Note:      record[colNote],
	}, nil
}

// Write replaces the advisory file at path with entries, creating its
// directory if needed.
func Write(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating advisory dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating advisory file: %w", err)
	}
	defer f.Close()

	return writeEntries(f, entries)
}

func writeEntries(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all entries from the advisory file at path.
// Returns an empty slice if the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening advisory file: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading advisory CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
