package advisory

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paycycle-dev/paycycle/internal/model"
)

var testTime = time.Date(2020, 12, 2, 13, 45, 10, 0, time.UTC)

func testTxn() model.Transaction {
	return model.Transaction{
		Seq:     8,
		Time:    testTime,
		Channel: model.ChannelInternet,
		Income:  decimal.Zero,
		Loss:    decimal.NewFromInt(12000),
		Balance: decimal.NewFromInt(5776840),
		Note:    "알수없는상점, 대구",
	}
}

func TestFromTransactions(t *testing.T) {
	entries := FromTransactions([]model.Transaction{testTxn()})
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, int64(8), e.Seq)
	assert.Equal(t, model.DirectionLoss, e.Direction)
	assert.Equal(t, "-12000", e.Amount.String())
	assert.Equal(t, model.ChannelInternet, e.Channel)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "unclassified.csv")
	original := FromTransactions([]model.Transaction{testTxn()})[0]
	require.NoError(t, Write(path, []Entry{original}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, original.Seq, got.Seq)
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, original.Direction, got.Direction)
	assert.True(t, original.Amount.Equal(got.Amount))
	assert.Equal(t, original.Channel, got.Channel)
	assert.Equal(t, "알수없는상점, 대구", got.Note, "commas in notes survive quoting")
}

func TestWrite_Replaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unclassified.csv")
	e := FromTransactions([]model.Transaction{testTxn()})[0]
	require.NoError(t, Write(path, []Entry{e, e}))
	require.NoError(t, Write(path, []Entry{e}))

	entries, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWrite_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unclassified.csv")
	require.NoError(t, Write(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", string(data))

	entries, err := Read(path)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_NotExist(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "missing.csv"))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"1"})
	assert.Error(t, err)

	_, err = UnmarshalEntry([]string{"x", "2020-12-02 13:45:10", "loss", "-1", "card", "n"})
	assert.ErrorContains(t, err, "parsing seq")

	_, err = UnmarshalEntry([]string{"1", "2020-12-02", "loss", "-1", "card", "n"})
	assert.ErrorContains(t, err, "parsing timestamp")

	_, err = UnmarshalEntry([]string{"1", "2020-12-02 13:45:10", "loss", "abc", "card", "n"})
	assert.ErrorContains(t, err, "parsing amount")
}

func TestSince(t *testing.T) {
	a := Entry{Seq: 8}
	b := Entry{Seq: 9}
	c := Entry{Seq: 10}

	fresh := Since([]Entry{a, b}, []Entry{a, b, c})
	require.Len(t, fresh, 1)
	assert.Equal(t, int64(10), fresh[0].Seq)

	assert.Len(t, Since(nil, []Entry{a, b}), 2)
	assert.Nil(t, Since([]Entry{a, b, c}, []Entry{b}))
}
