package finance

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DisplayCurrency is only used to format amounts. Amounts themselves are
// currency agnostic.
const DisplayCurrency = money.EUR

// Money is an exact, currency agnostic amount.
//
// Decoding is lenient: absent, empty or non-numeric input decodes as zero
// instead of failing, so a single malformed record never breaks a summary.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from a numeric value. NaN and infinities become zero.
func M[T int | int64 | float64 | decimal.Decimal](v T) Money {
	switch x := any(v).(type) {
	case int:
		return Money{value: decimal.NewFromInt(int64(x))}
	case int64:
		return Money{value: decimal.NewFromInt(x)}
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Money{}
		}
		return Money{value: decimal.NewFromFloat(x)}
	case decimal.Decimal:
		return Money{value: x}
	}
	return Money{}
}

// ErrInvalidAmount is returned by ParseAmount for unreadable input.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseMoney reads a user supplied amount such as "1500", "1 500,50",
// "1.234,56" or "12.3 €". Anything it cannot read is zero.
func ParseMoney(s string) Money {
	m, err := ParseAmount(s)
	if err != nil {
		return Money{}
	}
	return m
}

// ParseAmount is the strict form of ParseMoney, for input that is about to
// be stored. Spaces group thousands. With both '.' and ',' present the
// last one is the decimal separator. A lone separator followed by exactly
// three digits groups thousands ("1,234" and "1.234" are both 1234), any
// other lone separator is decimal.
func ParseAmount(s string) (Money, error) {
	raw := s
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "€"))
	s = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "").Replace(s)
	s = normalizeSeparators(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return Money{value: d}, nil
}

// normalizeSeparators rewrites s with '.' as the only decimal separator and
// no grouping. Ambiguous input is returned in a form decimal rejects.
func normalizeSeparators(s string) string {
	dot, comma := strings.LastIndex(s, "."), strings.LastIndex(s, ",")
	switch {
	case dot >= 0 && comma >= 0:
		dec, group := ",", "."
		if dot > comma {
			dec, group = ".", ","
		}
		i := strings.LastIndex(s, dec)
		intPart := s[:i]
		if strings.Contains(intPart, dec) || !grouped(strings.Split(intPart, group)) {
			return "?"
		}
		return strings.ReplaceAll(intPart, group, "") + "." + s[i+1:]
	case comma >= 0:
		return splitSeparator(s, ",")
	case dot >= 0:
		return splitSeparator(s, ".")
	}
	return s
}

func splitSeparator(s, sep string) string {
	parts := strings.Split(s, sep)
	if len(parts) > 2 || len(parts[1]) == 3 && groupHead(parts[0]) {
		if !grouped(parts) {
			return "?"
		}
		return strings.Join(parts, "")
	}
	return parts[0] + "." + parts[1]
}

// grouped reports whether parts read as thousands groups: a short head
// followed by groups of exactly three digits.
func grouped(parts []string) bool {
	if !groupHead(parts[0]) {
		return false
	}
	for _, p := range parts[1:] {
		if len(p) != 3 {
			return false
		}
	}
	return true
}

func groupHead(h string) bool {
	h = strings.TrimLeft(h, "+-")
	return len(h) >= 1 && len(h) <= 3 && h[0] != '0'
}

// exact reads the canonical decimal form written by Value, MarshalJSON and
// MarshalYAML. Unreadable input is zero.
func exact(s string) Money {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}
	}
	return Money{value: d}
}

func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }
func (m Money) Times(n int64) Money      { return Money{value: m.value.Mul(decimal.NewFromInt(n))} }

// String returns the amount with two decimals, e.g. "1500.00".
func (m Money) String() string { return m.value.StringFixed(2) }

// Short returns the amount rounded to the unit followed by the euro sign,
// the way advice lines quote amounts: "9000 €".
func (m Money) Short() string { return m.value.StringFixed(0) + " €" }

// Display formats the amount in euros for tables, rounded to the cent.
func (m Money) Display() string {
	cents := m.value.Shift(2).Round(0).IntPart()
	return money.New(cents, DisplayCurrency).Display()
}

// Float64 is for presentation only; never compute with it.
func (m Money) Float64() float64 { return m.value.InexactFloat64() }

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*m = Money{}
		return nil
	}
	var quoted string
	if err := json.Unmarshal(b, &quoted); err == nil {
		*m = ParseMoney(quoted)
		return nil
	}
	*m = exact(s)
	return nil
}

func (m Money) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: m.value.String()}, nil
}

func (m *Money) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*m = Money{}
		return nil
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		*m = exact(node.Value)
	default:
		*m = ParseMoney(node.Value)
	}
	return nil
}

// Value stores the exact decimal representation.
func (m Money) Value() (driver.Value, error) {
	return m.value.String(), nil
}

// Scan accepts whatever the column holds and falls back to zero.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*m = exact(v)
	case []byte:
		*m = exact(string(v))
	case int64:
		*m = M(v)
	case float64:
		*m = M(v)
	default:
		*m = Money{}
	}
	return nil
}
