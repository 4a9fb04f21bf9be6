package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
	"github.com/sachacalipel7-cmyk/FinAdvisor/pkg/id"
)

// stamp fills in the ID and creation time of a new record.
func stamp(recID *string, createdAt *time.Time) {
	if createdAt.IsZero() {
		*createdAt = time.Now()
	}
	*createdAt = createdAt.UTC()
	if *recID == "" {
		*recID = id.NewAt(*createdAt)
	}
}

func (s *SQLite) CreateAccount(ctx context.Context, a finance.Account) (finance.Account, error) {
	if err := a.Validate(); err != nil {
		return finance.Account{}, err
	}
	stamp(&a.ID, &a.CreatedAt)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (id, user_id, account_type, account_name, balance, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, string(a.Type), a.Name, a.Balance, a.CreatedAt,
	)
	if err != nil {
		return finance.Account{}, fmt.Errorf("insert account: %w", err)
	}
	return a, nil
}

func (s *SQLite) DeleteAccount(ctx context.Context, userID, accountID string) error {
	return s.deleteOwned(ctx, "accounts", userID, accountID)
}

// ListAccounts returns the user's accounts, most recent first.
func (s *SQLite) ListAccounts(ctx context.Context, userID string) ([]finance.Account, error) {
	return queryAll(ctx, s.db, scanAccount, `
		SELECT id, user_id, account_type, account_name, balance, created_at
		FROM accounts
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`, userID)
}

func scanAccount(rows *sql.Rows) (finance.Account, error) {
	var (
		a   finance.Account
		typ string
	)
	if err := rows.Scan(&a.ID, &a.UserID, &typ, &a.Name, &a.Balance, &a.CreatedAt); err != nil {
		return finance.Account{}, err
	}
	t, err := finance.ParseAccountType(typ)
	if err != nil {
		return finance.Account{}, fmt.Errorf("account %s: %w", a.ID, err)
	}
	a.Type = t
	return a, nil
}

func (s *SQLite) CreateIncome(ctx context.Context, in finance.IncomeEntry) (finance.IncomeEntry, error) {
	if err := in.Validate(); err != nil {
		return finance.IncomeEntry{}, err
	}
	stamp(&in.ID, &in.CreatedAt)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO income (id, user_id, source, amount, frequency, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		in.ID, in.UserID, in.Source, in.Amount, string(in.Frequency), in.CreatedAt,
	)
	if err != nil {
		return finance.IncomeEntry{}, fmt.Errorf("insert income: %w", err)
	}
	return in, nil
}

func (s *SQLite) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	return s.deleteOwned(ctx, "income", userID, incomeID)
}

// ListIncome returns the user's income entries, most recent first.
func (s *SQLite) ListIncome(ctx context.Context, userID string) ([]finance.IncomeEntry, error) {
	return queryAll(ctx, s.db, scanIncome, `
		SELECT id, user_id, source, amount, frequency, created_at
		FROM income
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`, userID)
}

func scanIncome(rows *sql.Rows) (finance.IncomeEntry, error) {
	var (
		in   finance.IncomeEntry
		freq string
	)
	if err := rows.Scan(&in.ID, &in.UserID, &in.Source, &in.Amount, &freq, &in.CreatedAt); err != nil {
		return finance.IncomeEntry{}, err
	}
	f, err := finance.ParseFrequency(freq)
	if err != nil {
		return finance.IncomeEntry{}, fmt.Errorf("income %s: %w", in.ID, err)
	}
	in.Frequency = f
	return in, nil
}

func (s *SQLite) CreateExpense(ctx context.Context, e finance.ExpenseEntry) (finance.ExpenseEntry, error) {
	if err := e.Validate(); err != nil {
		return finance.ExpenseEntry{}, err
	}
	stamp(&e.ID, &e.CreatedAt)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, user_id, category, description, amount, frequency, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, string(e.Category), e.Description, e.Amount, string(e.Frequency), e.CreatedAt,
	)
	if err != nil {
		return finance.ExpenseEntry{}, fmt.Errorf("insert expense: %w", err)
	}
	return e, nil
}

func (s *SQLite) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	return s.deleteOwned(ctx, "expenses", userID, expenseID)
}

// ListExpenses returns the user's expenses, most recent first.
func (s *SQLite) ListExpenses(ctx context.Context, userID string) ([]finance.ExpenseEntry, error) {
	return queryAll(ctx, s.db, scanExpense, `
		SELECT id, user_id, category, description, amount, frequency, created_at
		FROM expenses
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`, userID)
}

func scanExpense(rows *sql.Rows) (finance.ExpenseEntry, error) {
	var (
		e         finance.ExpenseEntry
		cat, freq string
	)
	if err := rows.Scan(&e.ID, &e.UserID, &cat, &e.Description, &e.Amount, &freq, &e.CreatedAt); err != nil {
		return finance.ExpenseEntry{}, err
	}
	c, err := finance.ParseExpenseCategory(cat)
	if err != nil {
		return finance.ExpenseEntry{}, fmt.Errorf("expense %s: %w", e.ID, err)
	}
	f, err := finance.ParseFrequency(freq)
	if err != nil {
		return finance.ExpenseEntry{}, fmt.Errorf("expense %s: %w", e.ID, err)
	}
	e.Category, e.Frequency = c, f
	return e, nil
}
