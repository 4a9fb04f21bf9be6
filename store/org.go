package store

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// FormatHistoryOrg renders a history entry as an Org-mode block: facts in
// a PROPERTIES drawer, allocation and advice as lists.
func FormatHistoryOrg(e HistoryEntry) string {
	rec := e.Recommendation

	var b strings.Builder
	fmt.Fprintf(&b, "** Recommandation du %s (%s)\n", e.CreatedAt.UTC().Format("2006-01-02"), shortID(e.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", e.ID)
	fmt.Fprintf(&b, ":CREATED: %s\n", e.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":RISK_PROFILE: %s\n", e.RiskProfile)
	fmt.Fprintf(&b, ":RISK_TOLERANCE: %s\n", rec.RiskTolerance)
	fmt.Fprintf(&b, ":HORIZON: %s\n", rec.InvestmentHorizon)
	fmt.Fprintf(&b, ":EMERGENCY_FUND: %s\n", rec.EmergencyFund)
	b.WriteString(":END:\n\n")

	b.WriteString("*** Allocation\n")
	labels := make([]string, 0, len(e.Allocation))
	for l := range e.Allocation {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		if e.Allocation[labels[i]] != e.Allocation[labels[j]] {
			return e.Allocation[labels[i]] > e.Allocation[labels[j]]
		}
		return labels[i] < labels[j]
	})
	for _, l := range labels {
		fmt.Fprintf(&b, "- %s :: %d %%\n", l, e.Allocation[l])
	}

	b.WriteString("\n*** Conseils\n")
	for _, line := range strings.Split(e.Text, "\n") {
		if line != "" {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	return b.String()
}

// FormatHistoryOrgList renders entries separated by blank lines.
func FormatHistoryOrgList(entries []HistoryEntry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatHistoryOrg(e))
	}
	return b.String()
}

// shortID keeps the random tail of a ULID; the head is the timestamp and
// repeats across entries of the same day.
func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[len(full)-8:]
}
