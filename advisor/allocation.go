package advisor

import (
	"encoding/json"
	"fmt"

	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
)

// AssetClass is an allocation bucket. Classes are ordered from the least
// to the most risky; the first one absorbs rounding remainders.
type AssetClass int

const (
	Cash AssetClass = iota
	Bonds
	Equities
	RealEstate
	Alternatives

	numAssetClasses
)

var assetClassNames = [numAssetClasses]string{
	Cash:         "cash",
	Bonds:        "bonds",
	Equities:     "equities",
	RealEstate:   "real_estate",
	Alternatives: "alternatives",
}

var assetClassLabels = [numAssetClasses]string{
	Cash:         "Liquidités",
	Bonds:        "Obligations",
	Equities:     "Actions",
	RealEstate:   "Immobilier (SCPI)",
	Alternatives: "Alternatifs",
}

func (c AssetClass) String() string {
	if c < 0 || c >= numAssetClasses {
		return fmt.Sprintf("AssetClass(%d)", int(c))
	}
	return assetClassNames[c]
}

func (c AssetClass) Label() string {
	if c < 0 || c >= numAssetClasses {
		return c.String()
	}
	return assetClassLabels[c]
}

func (c AssetClass) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *AssetClass) UnmarshalText(b []byte) error {
	for i, name := range assetClassNames {
		if name == string(b) {
			*c = AssetClass(i)
			return nil
		}
	}
	return fmt.Errorf("%w: asset class %q", finance.ErrInvalidEnum, string(b))
}

// weights are relative shares; they need not add up to 100.
type weights [numAssetClasses]int

// allocationTemplates holds one template per risk profile.
var allocationTemplates = [numRiskProfiles]weights{
	ConservativeProfile: {Cash: 30, Bonds: 50, Equities: 15, RealEstate: 5},
	BalancedProfile:     {Cash: 2, Bonds: 3, Equities: 3, RealEstate: 1},
	GrowthProfile:       {Cash: 10, Bonds: 20, Equities: 55, RealEstate: 10, Alternatives: 5},
	AggressiveProfile:   {Cash: 1, Bonds: 1, Equities: 8, RealEstate: 1, Alternatives: 1},
}

// Share is one line of an allocation.
type Share struct {
	Class   AssetClass `json:"class"`
	Percent int        `json:"percent"`
}

// Allocation lists integer percentages per asset class, in AssetClass
// order. Percentages always add up to exactly 100.
type Allocation []Share

// Total is 100 for every allocation built by the engine.
func (a Allocation) Total() int {
	total := 0
	for _, s := range a {
		total += s.Percent
	}
	return total
}

// Percent returns the share of class c, 0 when absent.
func (a Allocation) Percent(c AssetClass) int {
	for _, s := range a {
		if s.Class == c {
			return s.Percent
		}
	}
	return 0
}

// Labels maps display labels to percentages, the form kept in history.
func (a Allocation) Labels() map[string]int {
	out := make(map[string]int, len(a))
	for _, s := range a {
		out[s.Class.Label()] = s.Percent
	}
	return out
}

// MarshalJSON writes the allocation as an object keyed by class name.
// encoding/json sorts map keys, so the output is stable.
func (a Allocation) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, len(a))
	for _, s := range a {
		m[s.Class.String()] = s.Percent
	}
	return json.Marshal(m)
}

func (a *Allocation) UnmarshalJSON(b []byte) error {
	var m map[string]int
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	out := Allocation{}
	for c := AssetClass(0); c < numAssetClasses; c++ {
		if p, ok := m[c.String()]; ok {
			out = append(out, Share{Class: c, Percent: p})
			delete(m, c.String())
		}
	}
	for name := range m {
		return fmt.Errorf("%w: asset class %q", finance.ErrInvalidEnum, name)
	}
	*a = out
	return nil
}

// normalize scales w to integer percentages. Each class gets the floor of
// its exact share and the lowest risk class with a non-zero weight takes
// whatever is left, so the result always totals 100. Zero weights are
// dropped.
func normalize(w weights) Allocation {
	sum := 0
	for _, v := range w {
		if v > 0 {
			sum += v
		}
	}
	if sum == 0 {
		return Allocation{{Class: Cash, Percent: 100}}
	}

	var pct weights
	assigned := 0
	for c, v := range w {
		if v > 0 {
			pct[c] = v * 100 / sum
			assigned += pct[c]
		}
	}
	for c, v := range w {
		if v > 0 {
			pct[c] += 100 - assigned
			break
		}
	}

	out := Allocation{}
	for c, v := range w {
		if v > 0 {
			out = append(out, Share{Class: AssetClass(c), Percent: pct[c]})
		}
	}
	return out
}
