package advisor

import (
	"fmt"

	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
)

// RiskProfile is the bucket a (tolerance, horizon) pair resolves to. It
// indexes every table of the engine.
type RiskProfile int

const (
	ConservativeProfile RiskProfile = iota
	BalancedProfile
	GrowthProfile
	AggressiveProfile

	numRiskProfiles
)

var riskProfileNames = [numRiskProfiles]string{
	ConservativeProfile: "conservative",
	BalancedProfile:     "balanced",
	GrowthProfile:       "growth",
	AggressiveProfile:   "aggressive",
}

var riskProfileLabels = [numRiskProfiles]string{
	ConservativeProfile: "Prudent",
	BalancedProfile:     "Équilibré",
	GrowthProfile:       "Croissance",
	AggressiveProfile:   "Dynamique",
}

func (p RiskProfile) String() string {
	if p < 0 || p >= numRiskProfiles {
		return fmt.Sprintf("RiskProfile(%d)", int(p))
	}
	return riskProfileNames[p]
}

func (p RiskProfile) Label() string {
	if p < 0 || p >= numRiskProfiles {
		return p.String()
	}
	return riskProfileLabels[p]
}

func (p RiskProfile) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *RiskProfile) UnmarshalText(b []byte) error {
	for i, name := range riskProfileNames {
		if name == string(b) {
			*p = RiskProfile(i)
			return nil
		}
	}
	return fmt.Errorf("%w: risk profile %q", finance.ErrInvalidEnum, string(b))
}

// riskTable maps [tolerance][horizon] to a profile. Rows follow
// finance.RiskTolerances, columns finance.Horizons. A longer horizon moves
// one bucket toward growth, a short one holds the investor back.
var riskTable = [3][3]RiskProfile{
	//            short                medium               long
	/* conservative */ {ConservativeProfile, ConservativeProfile, BalancedProfile},
	/* moderate     */ {ConservativeProfile, BalancedProfile, GrowthProfile},
	/* aggressive   */ {BalancedProfile, GrowthProfile, AggressiveProfile},
}

// ResolveRiskProfile looks the pair up in the risk table. Values outside
// the closed sets, including unset ones, are rejected.
func ResolveRiskProfile(r finance.RiskTolerance, h finance.Horizon) (RiskProfile, error) {
	ri, hi := r.Index(), h.Index()
	if ri < 0 {
		return 0, fmt.Errorf("%w: risk tolerance %q", finance.ErrInvalidEnum, string(r))
	}
	if hi < 0 {
		return 0, fmt.Errorf("%w: investment horizon %q", finance.ErrInvalidEnum, string(h))
	}
	return riskTable[ri][hi], nil
}
