package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
)

// GetProfile returns the user's profile or ErrNotFound.
func (s *SQLite) GetProfile(ctx context.Context, userID string) (finance.Profile, error) {
	var (
		p         finance.Profile
		risk, hor string
	)

	row := s.db.QueryRowContext(ctx, `
		SELECT id, full_name, age, monthly_income, risk_tolerance, investment_horizon, life_goals, updated_at
		FROM profiles
		WHERE id = ?`, userID)

	err := row.Scan(&p.UserID, &p.FullName, &p.Age, &p.MonthlyIncome, &risk, &hor, &p.LifeGoals, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return finance.Profile{}, fmt.Errorf("profile %q: %w", userID, ErrNotFound)
		}
		return finance.Profile{}, err
	}

	p.RiskTolerance = finance.RiskTolerance(risk)
	p.InvestmentHorizon = finance.Horizon(hor)
	if err := p.Validate(); err != nil {
		return finance.Profile{}, fmt.Errorf("profile %q: %w", userID, err)
	}
	return p, nil
}

// SaveProfile inserts or replaces the user's profile. It stamps
// UpdatedAt when the caller left it empty.
func (s *SQLite) SaveProfile(ctx context.Context, p finance.Profile) (finance.Profile, error) {
	if err := p.Validate(); err != nil {
		return finance.Profile{}, err
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now()
	}
	p.UpdatedAt = p.UpdatedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (id, full_name, age, monthly_income, risk_tolerance, investment_horizon, life_goals, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			full_name = excluded.full_name,
			age = excluded.age,
			monthly_income = excluded.monthly_income,
			risk_tolerance = excluded.risk_tolerance,
			investment_horizon = excluded.investment_horizon,
			life_goals = excluded.life_goals,
			updated_at = excluded.updated_at`,
		p.UserID, p.FullName, p.Age, p.MonthlyIncome, string(p.RiskTolerance), string(p.InvestmentHorizon), p.LifeGoals, p.UpdatedAt,
	)
	if err != nil {
		return finance.Profile{}, fmt.Errorf("upsert profile: %w", err)
	}
	return p, nil
}
