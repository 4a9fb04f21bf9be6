package advisor

import (
	"fmt"

	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
)

// RiskLevel is the qualitative risk of a single instrument. Its label
// drives the colour tier in the UI.
type RiskLevel int

const (
	LowRisk RiskLevel = iota
	ModerateRisk
	HighRisk

	numRiskLevels
)

var riskLevelNames = [numRiskLevels]string{
	LowRisk:      "low",
	ModerateRisk: "moderate",
	HighRisk:     "high",
}

var riskLevelLabels = [numRiskLevels]string{
	LowRisk:      "Risque faible",
	ModerateRisk: "Modéré",
	HighRisk:     "Élevé",
}

func (l RiskLevel) String() string {
	if l < 0 || l >= numRiskLevels {
		return fmt.Sprintf("RiskLevel(%d)", int(l))
	}
	return riskLevelNames[l]
}

func (l RiskLevel) Label() string {
	if l < 0 || l >= numRiskLevels {
		return l.String()
	}
	return riskLevelLabels[l]
}

func (l RiskLevel) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *RiskLevel) UnmarshalText(b []byte) error {
	for i, name := range riskLevelNames {
		if name == string(b) {
			*l = RiskLevel(i)
			return nil
		}
	}
	return fmt.Errorf("%w: risk level %q", finance.ErrInvalidEnum, string(b))
}

// Investment is a candidate instrument. ExpectedRate is an indicative
// range for display, not a forecast.
type Investment struct {
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	ExpectedRate string    `json:"expectedRate"`
	Risk         RiskLevel `json:"risk"`
}

var (
	livretA       = Investment{"Livret A / LDDS", "Épargne réglementée", "1,5 - 3 %", LowRisk}
	fondsEuros    = Investment{"Fonds euros (assurance vie)", "Assurance vie", "2 - 3,5 %", LowRisk}
	bondFund      = Investment{"Fonds obligataires", "Obligations", "3 - 4 %", LowRisk}
	scpi          = Investment{"SCPI de rendement", "Immobilier", "4 - 5 %", ModerateRisk}
	worldETF      = Investment{"ETF MSCI World (PEA)", "Actions", "6 - 8 %", ModerateRisk}
	unitsOfAcct   = Investment{"Unités de compte diversifiées", "Assurance vie", "4 - 6 %", ModerateRisk}
	emergingETF   = Investment{"ETF marchés émergents", "Actions", "7 - 10 %", HighRisk}
	smallCapStock = Investment{"Actions small caps européennes", "Actions", "8 - 12 %", HighRisk}
	crypto        = Investment{"Crypto-actifs (poche limitée)", "Alternatifs", "Très variable", HighRisk}
)

// shortlists is static data keyed by risk profile, from the safest
// instrument to the riskiest.
var shortlists = [numRiskProfiles][]Investment{
	ConservativeProfile: {livretA, fondsEuros, bondFund, scpi},
	BalancedProfile:     {livretA, fondsEuros, worldETF, scpi},
	GrowthProfile:       {fondsEuros, worldETF, unitsOfAcct, scpi, emergingETF},
	AggressiveProfile:   {worldETF, emergingETF, smallCapStock, scpi, crypto},
}

// Shortlist returns a copy of the instruments suggested for p.
func Shortlist(p RiskProfile) []Investment {
	return append([]Investment(nil), shortlists[p]...)
}
