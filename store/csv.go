package store

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
)

var historyHeader = []string{"id", "created_at", "risk_profile", "emergency_fund", "allocation", "advice"}

// WriteHistoryCSV exports history entries, one row per entry. The
// allocation column is "label=percent" pairs sorted by label and the
// advice column keeps its newlines.
func WriteHistoryCSV(w io.Writer, entries []HistoryEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(historyHeader); err != nil {
		return err
	}

	for _, e := range entries {
		if err := cw.Write([]string{
			e.ID,
			e.CreatedAt.UTC().Format(time.RFC3339),
			e.RiskProfile,
			e.Recommendation.EmergencyFund.String(),
			allocationPairs(e.Allocation),
			e.Text,
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func allocationPairs(a map[string]int) string {
	labels := make([]string, 0, len(a))
	for l := range a {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = l + "=" + strconv.Itoa(a[l])
	}
	return strings.Join(parts, ";")
}
