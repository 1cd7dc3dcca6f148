package importer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paycycle-dev/paycycle/internal/model"
)

// MyDataParser parses the pipe-delimited account history export:
//
//	seq|2021-01-19 [11:58:01]|channel|withdrawal|deposit|balance|note|memo|branch
//
// The first line is a header and parsing stops at the totals row.
type MyDataParser struct{}

const (
	myDataDateFormat = "2006-01-02 [15:04:05]"
	myDataNumFields  = 9
	myDataTotalRow   = "합계"
	myDataColSeq     = 0
	myDataColTime    = 1
	myDataColChannel = 2
	myDataColLoss    = 3
	myDataColIncome  = 4
	myDataColBalance = 5
	myDataColNote    = 6
	myDataColMemo    = 7
	myDataColBranch  = 8
)

// Format returns the parser name.
func (p *MyDataParser) Format() string { return "mydata" }

// Parse reads the export and returns its transactions in file order. Fields
// are split on '|' with no quoting, so notes keep any quote characters.
func (p *MyDataParser) Parse(r io.Reader) ([]model.Transaction, error) {
	sc := bufio.NewScanner(r)

	var txns []model.Transaction
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if lineNo == 1 || line == "" {
			continue
		}
		rec := strings.Split(line, "|")
		if rec[0] == myDataTotalRow {
			break
		}
		txn, err := parseMyDataRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", lineNo, err)
		}
		txns = append(txns, txn)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading mydata export: %w", err)
	}
	return txns, nil
}

func parseMyDataRow(rec []string) (model.Transaction, error) {
	if len(rec) != myDataNumFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", myDataNumFields, len(rec))
	}

	seq, err := strconv.ParseInt(strings.TrimSpace(rec[myDataColSeq]), 10, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing sequence %q: %w", rec[myDataColSeq], err)
	}

	ts, err := time.Parse(myDataDateFormat, rec[myDataColTime])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing timestamp %q: %w", rec[myDataColTime], err)
	}

	channel, err := model.ParseChannel(rec[myDataColChannel])
	if err != nil {
		return model.Transaction{}, err
	}

	loss, err := parseAmount(rec[myDataColLoss])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing withdrawal %q: %w", rec[myDataColLoss], err)
	}
	income, err := parseAmount(rec[myDataColIncome])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing deposit %q: %w", rec[myDataColIncome], err)
	}
	balance, err := parseAmount(rec[myDataColBalance])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing balance %q: %w", rec[myDataColBalance], err)
	}

	txn := model.Transaction{
		Seq:     seq,
		Time:    ts,
		Channel: channel,
		Income:  income,
		Loss:    loss,
		Balance: balance,
		Note:    rec[myDataColNote],
		Memo:    rec[myDataColMemo],
		Branch:  rec[myDataColBranch],
	}
	if verrs := model.Validate(txn); len(verrs) > 0 {
		return model.Transaction{}, verrs[0]
	}
	return txn, nil
}

// parseAmount strips thousands separators. An empty cell is zero.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
