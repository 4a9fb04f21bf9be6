//go:build blackbox

package blackbox

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
)

func TestDiagnosisSession(t *testing.T) {
	s := session(t, "camille")

	run(t, with(s, "account", "add", "--type", "current", "--name", "Courant", "--balance", "1000")...)
	run(t, with(s, "income", "add", "--source", "Salaire", "--amount", "2000")...)
	run(t, with(s, "expense", "add", "--category", "Loyer", "--amount", "1500")...)

	out := run(t, with(s, "metrics")...)
	if !contains(out, "25.0 %") {
		t.Fatalf("expected savings rate 25.0 %%, got:\n%s", out)
	}

	stderr := runFail(t, with(s, "recommend")...)
	if !contains(stderr, "profile is incomplete") {
		t.Fatalf("expected incomplete profile error, got:\n%s", stderr)
	}

	run(t, with(s, "profile", "set", "--risk", "conservative", "--horizon", "short")...)

	out = run(t, with(s, "recommend", "--json")...)
	var rec struct {
		RiskProfile     string         `json:"riskProfile"`
		EmergencyMonths int            `json:"emergencyMonths"`
		Allocation      map[string]int `json:"allocation"`
		Advice          []string       `json:"advice"`
	}
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("decode recommendation: %v\n%s", err, out)
	}
	if rec.RiskProfile != "conservative" || rec.EmergencyMonths != 6 {
		t.Fatalf("unexpected recommendation: %+v", rec)
	}
	total := 0
	for _, pct := range rec.Allocation {
		total += pct
	}
	if total != 100 {
		t.Fatalf("allocation adds up to %d: %v", total, rec.Allocation)
	}
	if len(rec.Advice) == 0 {
		t.Fatal("expected advice")
	}

	run(t, with(s, "recommend", "--save")...)
	run(t, with(s, "recommend", "--save")...)

	out = run(t, with(s, "history", "--csv", "--limit", "0")...)
	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(rows))
	}
	if rows[1][0] <= rows[2][0] {
		t.Fatalf("history not most recent first: %s then %s", rows[1][0], rows[2][0])
	}
}

func TestUsersAreIsolated(t *testing.T) {
	a := session(t, "a")
	b := append(append([]string{}, a[:2]...), "--user", "b", "--log-level", "error")

	run(t, with(a, "account", "add", "--name", "Livret", "--type", "savings", "--balance", "5000")...)

	out := run(t, with(b, "account", "list")...)
	if contains(out, "Livret") {
		t.Fatalf("user b sees user a's account:\n%s", out)
	}
}

func TestRejectsBadInput(t *testing.T) {
	s := session(t, "camille")

	stderr := runFail(t, with(s, "income", "add", "--source", "Salaire", "--amount", "100", "--frequency", "weekly")...)
	if !contains(stderr, `frequency "weekly"`) {
		t.Fatalf("expected frequency rejection, got:\n%s", stderr)
	}

	stderr = runFail(t, with(s, "expense", "add", "--category", "Loyer", "--amount", "-20")...)
	if !contains(stderr, "must not be negative") {
		t.Fatalf("expected negative amount rejection, got:\n%s", stderr)
	}
}

func TestRecommendFromSnapshotFile(t *testing.T) {
	snap := writeFile(t, "household.yaml", `
income:
  - source: Salaire
    amount: 3000
    frequency: monthly
expenses:
  - category: Loyer
    amount: 3500
    frequency: monthly
profile:
  risk_tolerance: moderate
  investment_horizon: medium
`)
	s := session(t, "camille")

	out := run(t, with(s, "recommend", "--from", snap)...)
	if !contains(out, "Risk profile: Équilibré") {
		t.Fatalf("expected balanced profile, got:\n%s", out)
	}
}
