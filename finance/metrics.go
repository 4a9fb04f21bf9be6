package finance

import "github.com/shopspring/decimal"

// Metrics is derived from a user's records on every read and never stored.
type Metrics struct {
	TotalBalance    Money `json:"totalBalance" yaml:"total_balance"`
	MonthlyIncome   Money `json:"monthlyIncome" yaml:"monthly_income"`
	MonthlyExpenses Money `json:"monthlyExpenses" yaml:"monthly_expenses"`
	MonthlySavings  Money `json:"monthlySavings" yaml:"monthly_savings"`
}

// Aggregate reduces records into Metrics.
//
// Only monthly income and expenses count toward the monthly figures; the
// balance total has no frequency filter. Negative amounts are invalid
// input and, like unreadable ones, contribute nothing.
func Aggregate(accounts []Account, incomes []IncomeEntry, expenses []ExpenseEntry) Metrics {
	var m Metrics
	for _, a := range accounts {
		m.TotalBalance = m.TotalBalance.Add(contribution(a.Balance))
	}
	for _, in := range incomes {
		if in.Frequency == Monthly {
			m.MonthlyIncome = m.MonthlyIncome.Add(contribution(in.Amount))
		}
	}
	for _, e := range expenses {
		if e.Frequency == Monthly {
			m.MonthlyExpenses = m.MonthlyExpenses.Add(contribution(e.Amount))
		}
	}
	m.MonthlySavings = m.MonthlyIncome.Sub(m.MonthlyExpenses)
	return m
}

func contribution(v Money) Money {
	if v.IsNegative() {
		return Money{}
	}
	return v
}

// SavingsRate is the share of monthly income that is saved, in percent
// rounded to one decimal. It is 0 when there is no monthly income.
func (m Metrics) SavingsRate() float64 {
	if !m.MonthlyIncome.IsPositive() {
		return 0
	}
	rate := m.MonthlySavings.Decimal().
		Div(m.MonthlyIncome.Decimal()).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	return rate.InexactFloat64()
}

// CategoryTotal is one slice of the monthly expense breakdown.
type CategoryTotal struct {
	Category ExpenseCategory `json:"category"`
	Total    Money           `json:"total"`
}

// ExpensesByCategory sums monthly expenses per category, in category
// display order. Categories without expenses are omitted.
func ExpensesByCategory(expenses []ExpenseEntry) []CategoryTotal {
	totals := map[ExpenseCategory]Money{}
	for _, e := range expenses {
		if e.Frequency != Monthly {
			continue
		}
		totals[e.Category] = totals[e.Category].Add(contribution(e.Amount))
	}

	var out []CategoryTotal
	for _, c := range ExpenseCategories {
		if t, ok := totals[c]; ok {
			out = append(out, CategoryTotal{Category: c, Total: t})
			delete(totals, c)
		}
	}
	// Expenses built in code may carry a category outside the known set.
	if len(totals) > 0 {
		other := CategoryTotal{Category: OtherExpense}
		for i := range out {
			if out[i].Category == OtherExpense {
				other = out[i]
				out = append(out[:i], out[i+1:]...)
				break
			}
		}
		for _, t := range totals {
			other.Total = other.Total.Add(t)
		}
		out = append(out, other)
	}
	return out
}
