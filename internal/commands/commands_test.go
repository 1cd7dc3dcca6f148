package commands_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paycycle-dev/paycycle/internal/advisory"
	"github.com/paycycle-dev/paycycle/internal/commands"
	"github.com/paycycle-dev/paycycle/internal/period"
)

const fixture = "../../testdata/mydata.txt"

func runPaycycle(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

// runPaycycleStderr is runPaycycle that also returns what was written to
// the command's error stream.
func runPaycycleStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// initProject creates a project in a temp dir and returns its config path.
func initProject(t *testing.T) (dir, cfgPath string) {
	t.Helper()
	dir = t.TempDir()
	_, err := runPaycycle(t, "init", dir)
	require.NoError(t, err)
	return dir, filepath.Join(dir, "paycycle.yaml")
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	out, err := runPaycycle(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized paycycle project")

	for _, d := range []string{"import", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}

	data, err := os.ReadFile(filepath.Join(dir, "paycycle.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "format: mydata")
	assert.Contains(t, string(data), "name: 급여")

	data, err = os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "import/")
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir, _ := initProject(t)

	_, err := runPaycycle(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runPaycycle(t, "init", dir, "--force")
	require.NoError(t, err)
}

func TestInit_Alternate(t *testing.T) {
	dir := t.TempDir()
	_, err := runPaycycle(t, "init", dir, "--alternate")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "paycycle.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: convenience")
	assert.NotContains(t, string(data), "exceptions:")
}

func TestPeriods(t *testing.T) {
	_, cfgPath := initProject(t)

	out, err := runPaycycle(t, "periods", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "2020-10  2020-10-21 .. 2020-11-19  30 days\n")
	assert.Contains(t, out, "2020-11  2020-11-20 .. 2020-12-20  31 days\n")
	assert.Contains(t, out, "2021-02  2021-02-19 .. 2021-03-18  28 days\n")
	assert.Equal(t, 5, bytes.Count([]byte(out), []byte("\n")))
}

func TestPeriods_Override(t *testing.T) {
	out, err := runPaycycle(t, "periods", "--config", "missing.yaml", "--start", "2021-08", "--end", "2021-08")
	require.NoError(t, err)
	assert.Equal(t, "2021-08  2021-08-20 .. 2021-09-20  32 days\n", out)

	_, err = runPaycycle(t, "periods", "--config", "missing.yaml", "--start", "2021-02", "--end", "2020-10")
	require.Error(t, err)
	assert.ErrorIs(t, err, period.ErrInvertedRange)
}

func TestReport_Text(t *testing.T) {
	_, cfgPath := initProject(t)

	out, err := runPaycycle(t, "report", fixture, "--config", cfgPath, "--now", "2021-02-10")
	require.NoError(t, err)

	assert.Contains(t, out, "dropped 1 transaction(s)")
	assert.Contains(t, out, "2020-10 (2020-10-21 .. 2020-11-19)\n")
	assert.Contains(t, out, "200,000원 -> 2,898,840원 (+1349.42%)")
	assert.Contains(t, out, "I급여")
	assert.Contains(t, out, "I사적금전인수")
	assert.Contains(t, out, "L놀이")
	assert.Contains(t, out, "2021-02 (2021-02-19 .. 2021-03-18) empty")
	assert.Contains(t, out, "unclassified (3):")
	assert.Contains(t, out, "  알수없는상점\n")
}

func TestReport_JSON(t *testing.T) {
	_, cfgPath := initProject(t)

	out, err := runPaycycle(t, "report", fixture, "--config", cfgPath, "--now", "2021-02-10", "--json")
	require.NoError(t, err)

	var doc struct {
		Dropped int `json:"dropped"`
		Periods []struct {
			Label string `json:"label"`
			Empty bool   `json:"empty"`
		} `json:"periods"`
		Timeline     []json.RawMessage `json:"timeline"`
		Unclassified []string          `json:"unclassified"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, 1, doc.Dropped)
	require.Len(t, doc.Periods, 5)
	assert.Equal(t, "2020-10", doc.Periods[0].Label)
	assert.True(t, doc.Periods[4].Empty)
	assert.Len(t, doc.Timeline, 13)
	assert.Equal(t, []string{"알수없는상점", "예금이자", "잔액확인"}, doc.Unclassified)
}

func TestReport_Advisory(t *testing.T) {
	dir, cfgPath := initProject(t)
	advisoryPath := filepath.Join(dir, advisory.DefaultPath)

	_, err := runPaycycle(t, "report", fixture, "--config", cfgPath, "--now", "2021-02-10", "--advisory", advisoryPath)
	require.NoError(t, err)

	entries, err := advisory.Read(advisoryPath)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(8), entries[0].Seq)
	assert.Equal(t, "-12000", entries[0].Amount.String())
	assert.Equal(t, int64(10), entries[2].Seq)
}

func TestReport_AdvisoryCountsNewEntries(t *testing.T) {
	dir, cfgPath := initProject(t)
	advisoryPath := filepath.Join(dir, advisory.DefaultPath)
	args := []string{"report", fixture, "--config", cfgPath, "--now", "2021-02-10", "--advisory", advisoryPath}

	_, stderr, err := runPaycycleStderr(t, args...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "3 unclassified transaction(s), 3 new since last run")

	// Drop one entry so the next run sees it as new again.
	entries, err := advisory.Read(advisoryPath)
	require.NoError(t, err)
	require.NoError(t, advisory.Write(advisoryPath, entries[:2]))

	_, stderr, err = runPaycycleStderr(t, args...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "3 unclassified transaction(s), 1 new since last run")

	_, stderr, err = runPaycycleStderr(t, args...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "0 new since last run")
}

func TestReport_ScansImportDir(t *testing.T) {
	dir, cfgPath := initProject(t)
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "mydata.txt"), data, 0o644))

	out, err := runPaycycle(t, "report", "--config", cfgPath, "--now", "2021-02-10")
	require.NoError(t, err)
	assert.Contains(t, out, "I급여")
}

func TestReport_NoExport(t *testing.T) {
	_, cfgPath := initProject(t)

	_, err := runPaycycle(t, "report", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no export given")
}

func TestReport_BadNow(t *testing.T) {
	_, cfgPath := initProject(t)

	_, err := runPaycycle(t, "report", fixture, "--config", cfgPath, "--now", "10/02/2021")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing --now")
}

func TestReport_MissingConfig(t *testing.T) {
	_, err := runPaycycle(t, "report", fixture, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
