package finance

import "time"

// Account is a balance held by a user. Records are never edited: an
// update is a delete followed by a create.
type Account struct {
	ID        string      `json:"id,omitempty" yaml:"id,omitempty"`
	UserID    string      `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	Type      AccountType `json:"account_type" yaml:"account_type"`
	Name      string      `json:"account_name" yaml:"account_name"`
	Balance   Money       `json:"balance" yaml:"balance"`
	CreatedAt time.Time   `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

type IncomeEntry struct {
	ID        string    `json:"id,omitempty" yaml:"id,omitempty"`
	UserID    string    `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	Source    string    `json:"source" yaml:"source"`
	Amount    Money     `json:"amount" yaml:"amount"`
	Frequency Frequency `json:"frequency" yaml:"frequency"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

type ExpenseEntry struct {
	ID          string          `json:"id,omitempty" yaml:"id,omitempty"`
	UserID      string          `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	Category    ExpenseCategory `json:"category" yaml:"category"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Amount      Money           `json:"amount" yaml:"amount"`
	Frequency   Frequency       `json:"frequency" yaml:"frequency"`
	CreatedAt   time.Time       `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Validate rejects a type outside the closed set, including a missing one.
// Records built in code or decoded with the key absent never go through
// UnmarshalText.
func (a Account) Validate() error {
	_, err := ParseAccountType(string(a.Type))
	return err
}

func (in IncomeEntry) Validate() error {
	_, err := ParseFrequency(string(in.Frequency))
	return err
}

func (e ExpenseEntry) Validate() error {
	if _, err := ParseExpenseCategory(string(e.Category)); err != nil {
		return err
	}
	_, err := ParseFrequency(string(e.Frequency))
	return err
}

// Profile is the per user questionnaire. Age and MonthlyIncome are
// optional; zero means not provided. MonthlyIncome is self reported and
// distinct from the aggregated income.
type Profile struct {
	UserID            string        `json:"id,omitempty" yaml:"id,omitempty"`
	FullName          string        `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	Age               int           `json:"age,omitempty" yaml:"age,omitempty"`
	MonthlyIncome     Money         `json:"monthly_income" yaml:"monthly_income"`
	RiskTolerance     RiskTolerance `json:"risk_tolerance,omitempty" yaml:"risk_tolerance,omitempty"`
	InvestmentHorizon Horizon       `json:"investment_horizon,omitempty" yaml:"investment_horizon,omitempty"`
	LifeGoals         string        `json:"life_goals,omitempty" yaml:"life_goals,omitempty"`
	UpdatedAt         time.Time     `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Complete reports whether a recommendation can be computed.
func (p Profile) Complete() bool {
	return p.RiskTolerance != "" && p.InvestmentHorizon != ""
}

// Validate rejects enum values outside their closed set. Profiles built
// in code bypass UnmarshalText, so callers validate before persisting.
func (p Profile) Validate() error {
	if _, err := ParseRiskTolerance(string(p.RiskTolerance)); err != nil {
		return err
	}
	if _, err := ParseHorizon(string(p.InvestmentHorizon)); err != nil {
		return err
	}
	return nil
}
