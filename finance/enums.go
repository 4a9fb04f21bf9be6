package finance

import (
	"errors"
	"fmt"
)

// ErrInvalidEnum reports a value outside one of the closed sets below.
// Such values are never coerced to a default.
var ErrInvalidEnum = errors.New("invalid enum value")

func invalid(kind, v string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidEnum, kind, v)
}

// Frequency is how often an income or expense recurs.
type Frequency string

const (
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Annual    Frequency = "annual"
	OneTime   Frequency = "one_time"
)

var Frequencies = []Frequency{Monthly, Quarterly, Annual, OneTime}

var frequencyLabels = map[Frequency]string{
	Monthly:   "Mensuel",
	Quarterly: "Trimestriel",
	Annual:    "Annuel",
	OneTime:   "Ponctuel",
}

func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if _, ok := frequencyLabels[f]; !ok {
		return "", invalid("frequency", s)
	}
	return f, nil
}

func (f Frequency) Label() string { return frequencyLabels[f] }

func (f *Frequency) UnmarshalText(b []byte) error {
	v, err := ParseFrequency(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// AccountType is the kind of account a balance is held in.
type AccountType string

const (
	CurrentAccount AccountType = "current"
	SavingsAccount AccountType = "savings"
	PEA            AccountType = "pea"
	LifeInsurance  AccountType = "life_insurance"
	CryptoAccount  AccountType = "crypto"
	OtherAccount   AccountType = "other"
)

var AccountTypes = []AccountType{CurrentAccount, SavingsAccount, PEA, LifeInsurance, CryptoAccount, OtherAccount}

var accountTypeLabels = map[AccountType]string{
	CurrentAccount: "Compte courant",
	SavingsAccount: "Livret A",
	PEA:            "PEA",
	LifeInsurance:  "Assurance vie",
	CryptoAccount:  "Crypto",
	OtherAccount:   "Autre",
}

func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(s)
	if _, ok := accountTypeLabels[t]; !ok {
		return "", invalid("account type", s)
	}
	return t, nil
}

func (t AccountType) Label() string { return accountTypeLabels[t] }

func (t *AccountType) UnmarshalText(b []byte) error {
	v, err := ParseAccountType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ExpenseCategory groups expenses on the dashboard breakdown.
type ExpenseCategory string

const (
	Rent          ExpenseCategory = "Loyer"
	Food          ExpenseCategory = "Alimentation"
	Transport     ExpenseCategory = "Transport"
	Insurance     ExpenseCategory = "Assurances"
	Subscriptions ExpenseCategory = "Abonnements"
	Leisure       ExpenseCategory = "Loisirs"
	Health        ExpenseCategory = "Santé"
	Education     ExpenseCategory = "Éducation"
	OtherExpense  ExpenseCategory = "Autre"
)

// ExpenseCategories is in display order.
var ExpenseCategories = []ExpenseCategory{Rent, Food, Transport, Insurance, Subscriptions, Leisure, Health, Education, OtherExpense}

func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	for _, c := range ExpenseCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", invalid("expense category", s)
}

func (c *ExpenseCategory) UnmarshalText(b []byte) error {
	v, err := ParseExpenseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// RiskTolerance is the self declared appetite for risk. The empty value
// means the question was not answered yet.
type RiskTolerance string

const (
	Conservative RiskTolerance = "conservative"
	Moderate     RiskTolerance = "moderate"
	Aggressive   RiskTolerance = "aggressive"
)

var RiskTolerances = []RiskTolerance{Conservative, Moderate, Aggressive}

var riskToleranceLabels = map[RiskTolerance]string{
	Conservative: "Prudent",
	Moderate:     "Modéré",
	Aggressive:   "Dynamique",
}

// ParseRiskTolerance accepts the empty string as "unset".
func ParseRiskTolerance(s string) (RiskTolerance, error) {
	r := RiskTolerance(s)
	if s == "" {
		return r, nil
	}
	if _, ok := riskToleranceLabels[r]; !ok {
		return "", invalid("risk tolerance", s)
	}
	return r, nil
}

func (r RiskTolerance) Label() string { return riskToleranceLabels[r] }

// Index returns the position of r in RiskTolerances, or -1.
func (r RiskTolerance) Index() int {
	for i, v := range RiskTolerances {
		if v == r {
			return i
		}
	}
	return -1
}

func (r *RiskTolerance) UnmarshalText(b []byte) error {
	v, err := ParseRiskTolerance(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Horizon is the investment horizon. The empty value means unset.
type Horizon string

const (
	Short  Horizon = "short"
	Medium Horizon = "medium"
	Long   Horizon = "long"
)

var Horizons = []Horizon{Short, Medium, Long}

var horizonLabels = map[Horizon]string{
	Short:  "Court terme",
	Medium: "Moyen terme",
	Long:   "Long terme",
}

// ParseHorizon accepts the empty string as "unset".
func ParseHorizon(s string) (Horizon, error) {
	h := Horizon(s)
	if s == "" {
		return h, nil
	}
	if _, ok := horizonLabels[h]; !ok {
		return "", invalid("investment horizon", s)
	}
	return h, nil
}

func (h Horizon) Label() string { return horizonLabels[h] }

// Index returns the position of h in Horizons, or -1.
func (h Horizon) Index() int {
	for i, v := range Horizons {
		if v == h {
			return i
		}
	}
	return -1
}

func (h *Horizon) UnmarshalText(b []byte) error {
	v, err := ParseHorizon(string(b))
	if err != nil {
		return err
	}
	*h = v
	return nil
}
