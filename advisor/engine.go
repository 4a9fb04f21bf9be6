// Package advisor turns a profile and its metrics into a recommendation.
//
// Everything here is table driven and free of clocks or randomness: the
// same inputs always produce the same Recommendation.
package advisor

import (
	"errors"
	"fmt"

	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
)

// ErrIncompleteProfile is returned when Recommend is called for a profile
// whose risk tolerance or horizon is unset. Callers are expected to check
// Profile.Complete first, so seeing it means a caller bug.
var ErrIncompleteProfile = errors.New("profile is incomplete: risk tolerance and investment horizon are required")

// Recommendation is an immutable engine output.
type Recommendation struct {
	RiskTolerance     finance.RiskTolerance `json:"riskTolerance"`
	InvestmentHorizon finance.Horizon       `json:"investmentHorizon"`
	RiskProfile       RiskProfile           `json:"riskProfile"`
	EmergencyFund     finance.Money         `json:"emergencyFund"`
	EmergencyMonths   int                   `json:"emergencyMonths"`
	Allocation        Allocation            `json:"allocation"`
	Investments       []Investment          `json:"investments"`
	Advice            []string              `json:"advice"`
}

// horizonMonths is the cash buffer, in months of expenses, per horizon.
var horizonMonths = map[finance.Horizon]int{
	finance.Short:  3,
	finance.Medium: 6,
	finance.Long:   6,
}

// extraMonths adds to the buffer for cautious profiles.
var extraMonths = [numRiskProfiles]int{
	ConservativeProfile: 3,
}

// EmergencyFund is monthlyExpenses times the number of months for the
// pair. It is zero when expenses are not positive.
func EmergencyFund(monthlyExpenses finance.Money, h finance.Horizon, p RiskProfile) (finance.Money, int) {
	months := horizonMonths[h] + extraMonths[p]
	if !monthlyExpenses.IsPositive() {
		return finance.Money{}, months
	}
	return monthlyExpenses.Times(int64(months)), months
}

// AllocationFor returns the normalized target allocation of p.
func AllocationFor(p RiskProfile) Allocation {
	return normalize(allocationTemplates[p])
}

// Recommend derives a recommendation from a complete profile and the
// metrics of the same snapshot.
func Recommend(p finance.Profile, m finance.Metrics) (Recommendation, error) {
	if !p.Complete() {
		return Recommendation{}, ErrIncompleteProfile
	}
	risk, err := ResolveRiskProfile(p.RiskTolerance, p.InvestmentHorizon)
	if err != nil {
		return Recommendation{}, fmt.Errorf("resolve risk profile: %w", err)
	}

	fund, months := EmergencyFund(m.MonthlyExpenses, p.InvestmentHorizon, risk)
	alloc := AllocationFor(risk)

	f := facts{
		profile:         p,
		metrics:         m,
		risk:            risk,
		emergencyFund:   fund,
		emergencyMonths: months,
		allocation:      alloc,
	}
	notes := evaluate(f)
	advice := make([]string, len(notes))
	for i, n := range notes {
		advice[i] = n.Text
	}

	return Recommendation{
		RiskTolerance:     p.RiskTolerance,
		InvestmentHorizon: p.InvestmentHorizon,
		RiskProfile:       risk,
		EmergencyFund:     fund,
		EmergencyMonths:   months,
		Allocation:        alloc,
		Investments:       Shortlist(risk),
		Advice:            advice,
	}, nil
}
