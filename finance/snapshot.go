package finance

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Snapshot is a consistent view of one user's records. Metrics and
// recommendations must be computed from a single snapshot.
type Snapshot struct {
	Accounts []Account      `json:"accounts" yaml:"accounts"`
	Income   []IncomeEntry  `json:"income" yaml:"income"`
	Expenses []ExpenseEntry `json:"expenses" yaml:"expenses"`
	Profile  *Profile       `json:"profile,omitempty" yaml:"profile,omitempty"`
}

// Metrics aggregates the snapshot's records.
func (s Snapshot) Metrics() Metrics {
	return Aggregate(s.Accounts, s.Income, s.Expenses)
}

// LoadSnapshot reads a snapshot file, YAML first with a JSON fallback.
// Unknown or missing enum values fail the load.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	s := &Snapshot{}
	if yerr := yaml.Unmarshal(data, s); yerr != nil {
		*s = Snapshot{}
		if jerr := json.Unmarshal(data, s); jerr != nil {
			return nil, fmt.Errorf("parse snapshot (tried YAML and JSON): %w", yerr)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every record's enums. A record whose frequency,
// category or account type is missing fails like an unknown one.
func (s Snapshot) Validate() error {
	for i, a := range s.Accounts {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("accounts[%d]: %w", i, err)
		}
	}
	for i, in := range s.Income {
		if err := in.Validate(); err != nil {
			return fmt.Errorf("income[%d]: %w", i, err)
		}
	}
	for i, e := range s.Expenses {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("expenses[%d]: %w", i, err)
		}
	}
	if s.Profile != nil {
		if err := s.Profile.Validate(); err != nil {
			return fmt.Errorf("invalid profile: %w", err)
		}
	}
	return nil
}
