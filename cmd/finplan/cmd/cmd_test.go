package cmd

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachacalipel7-cmyk/FinAdvisor/advisor"
	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
	"github.com/sachacalipel7-cmyk/FinAdvisor/planner"
)

// run executes the root command in-process. Flag variables are package
// globals, so tests pass every flag they rely on explicitly.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "finplan version "+version)
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finplan.yaml")

	out, err := run(t, "config", "init", "--output", path, "--for", "camille")
	require.NoError(t, err)
	assert.Contains(t, out, "Created default configuration")

	out, err = run(t, "config", "validate", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "User: camille")
	assert.Contains(t, out, "History limit: 5")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("log:\n  format: xml\n"), 0644))
	_, err = run(t, "config", "validate", "--file", bad)
	assert.ErrorContains(t, err, "validation failed")
}

func TestWorkflow(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "finplan.yaml")
	_, err := run(t, "config", "init", "--output", cfgPath, "--for", "camille")
	require.NoError(t, err)

	base := []string{"--config", cfgPath, "--db", filepath.Join(dir, "finplan.sqlite"), "--log-level", "error"}
	do := func(args ...string) (string, error) {
		return run(t, append(append([]string{}, base...), args...)...)
	}

	out, err := do("account", "add", "--type", "savings", "--name", "Livret A", "--balance", "1 000,00")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Account")

	_, err = do("income", "add", "--source", "Salaire", "--amount", "2000", "--frequency", "monthly")
	require.NoError(t, err)
	_, err = do("income", "add", "--source", "Prime", "--amount", "1200", "--frequency", "annual")
	require.NoError(t, err)
	_, err = do("expense", "add", "--category", "Loyer", "--amount", "1500", "--frequency", "monthly")
	require.NoError(t, err)

	out, err = do("metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "Savings rate")
	assert.Contains(t, out, "25.0 %")
	assert.Contains(t, out, "Loyer")

	out, err = do("account", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Livret A")

	_, err = do("recommend", "--save=false", "--json=false")
	assert.ErrorIs(t, err, advisor.ErrIncompleteProfile)

	out, err = do("profile", "set", "--name", "Camille", "--risk", "conservative", "--horizon", "short")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Profile saved")
	assert.NotContains(t, out, "Profile incomplete")

	out, err = do("recommend", "--save=true", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Risk profile: "+advisor.ConservativeProfile.Label())
	assert.Contains(t, out, "6 months of expenses")
	assert.Contains(t, out, "Saved to history as")

	out, err = do("recommend", "--save=false", "--json=true")
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "conservative", rec["riskProfile"])
	assert.EqualValues(t, 9000, rec["emergencyFund"])

	out, err = do("history", "--csv=true", "--org=false", "--limit", "0")
	require.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "conservative", rows[1][2])

	out, err = do("history", "--csv=false", "--org=true", "--limit", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, ":PROPERTIES:"))

	_, err = do("expense", "add", "--category", "Voyages", "--amount", "10", "--frequency", "monthly")
	assert.ErrorIs(t, err, finance.ErrInvalidEnum)

	_, err = do("account", "add", "--type", "current", "--name", "Découvert", "--balance", "-5")
	assert.ErrorIs(t, err, planner.ErrNegativeAmount)

	for _, bad := range []string{"abc", "1.2.3", ""} {
		_, err = do("income", "add", "--source", "Typo", "--amount", bad, "--frequency", "monthly")
		assert.ErrorIs(t, err, finance.ErrInvalidAmount, bad)
	}
	_, err = do("income", "add", "--source", "Loyer perçu", "--amount", "1.234,56", "--frequency", "annual")
	require.NoError(t, err)
	out, err = do("income", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Typo")
	assert.Contains(t, out, "Loyer perçu")

	out, err = do("recommend", "--save=true", "--json=true")
	require.NoError(t, err)
	var saved map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &saved))
	out, err = do("history", "--csv=true", "--org=false", "--limit", "1")
	require.NoError(t, err)
	rows, err = csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, saved["riskProfile"], rows[1][2])
	assert.Equal(t, "9000.00", rows[1][3])
	assert.EqualValues(t, 9000, saved["emergencyFund"])

	out, err = do("--user", "dominique", "metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "0.0 %")
	userID = ""
}

func TestRecommendFromSnapshot(t *testing.T) {
	dir := t.TempDir()
	snap := filepath.Join(dir, "household.yaml")
	require.NoError(t, os.WriteFile(snap, []byte(`
income:
  - source: Salaire
    amount: 4000
    frequency: monthly
expenses:
  - category: Loyer
    amount: 1000
    frequency: monthly
profile:
  risk_tolerance: aggressive
  investment_horizon: long
`), 0644))

	out, err := run(t, "--config", "", "--db", filepath.Join(dir, "unused.sqlite"), "--log-level", "error",
		"recommend", "--save=false", "--json=true", "--from", snap)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "aggressive", rec["riskProfile"])
	recommendFrom = ""
}
