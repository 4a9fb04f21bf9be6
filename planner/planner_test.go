package planner

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachacalipel7-cmyk/FinAdvisor/advisor"
	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
	"github.com/sachacalipel7-cmyk/FinAdvisor/store"
)

func newService(t *testing.T) (*Service, *test.Hook) {
	t.Helper()

	db, err := store.NewSQLite(filepath.Join(t.TempDir(), "planner.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return New(db, log), hook
}

func seed(t *testing.T, svc *Service, user string) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.AddAccount(ctx, finance.Account{UserID: user, Type: finance.CurrentAccount, Name: "Courant", Balance: finance.M(1000)})
	require.NoError(t, err)
	_, err = svc.AddIncome(ctx, finance.IncomeEntry{UserID: user, Source: "Salaire", Amount: finance.M(2000), Frequency: finance.Monthly})
	require.NoError(t, err)
	_, err = svc.AddExpense(ctx, finance.ExpenseEntry{UserID: user, Category: finance.Rent, Amount: finance.M(1500), Frequency: finance.Monthly})
	require.NoError(t, err)
}

func TestMetricsRecomputedOnRead(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	seed(t, svc, "u1")

	r, err := svc.Metrics(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "1000.00", r.Metrics.TotalBalance.String())
	assert.Equal(t, "500.00", r.Metrics.MonthlySavings.String())
	require.Len(t, r.ByCategory, 1)
	assert.Equal(t, finance.Rent, r.ByCategory[0].Category)

	_, err = svc.AddExpense(ctx, finance.ExpenseEntry{UserID: "u1", Category: finance.Food, Amount: finance.M(300), Frequency: finance.Monthly})
	require.NoError(t, err)

	r, err = svc.Metrics(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "200.00", r.Metrics.MonthlySavings.String())
}

func TestNegativeAmountsRejected(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.AddAccount(ctx, finance.Account{UserID: "u1", Type: finance.SavingsAccount, Balance: finance.M(-1)})
	assert.ErrorIs(t, err, ErrNegativeAmount)
	_, err = svc.AddIncome(ctx, finance.IncomeEntry{UserID: "u1", Amount: finance.M(-1), Frequency: finance.Monthly})
	assert.ErrorIs(t, err, ErrNegativeAmount)
	_, err = svc.AddExpense(ctx, finance.ExpenseEntry{UserID: "u1", Category: finance.Food, Amount: finance.M(-1), Frequency: finance.Monthly})
	assert.ErrorIs(t, err, ErrNegativeAmount)
	_, err = svc.UpdateProfile(ctx, finance.Profile{UserID: "u1", MonthlyIncome: finance.M(-1)})
	assert.ErrorIs(t, err, ErrNegativeAmount)

	r, err := svc.Metrics(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, r.Snapshot.Accounts)
	assert.Empty(t, r.Snapshot.Income)
	assert.Empty(t, r.Snapshot.Expenses)
	assert.Nil(t, r.Snapshot.Profile)
}

func TestRecommendRequiresCompleteProfile(t *testing.T) {
	svc, hook := newService(t)
	ctx := context.Background()
	seed(t, svc, "u1")

	_, _, err := svc.Recommend(ctx, "u1")
	assert.ErrorIs(t, err, advisor.ErrIncompleteProfile)

	_, err = svc.UpdateProfile(ctx, finance.Profile{UserID: "u1", FullName: "Camille", RiskTolerance: finance.Moderate})
	require.NoError(t, err)

	_, m, err := svc.Recommend(ctx, "u1")
	assert.ErrorIs(t, err, advisor.ErrIncompleteProfile)
	assert.Equal(t, "500.00", m.MonthlySavings.String())
	assert.Equal(t, "profile incomplete, no recommendation", hook.LastEntry().Message)

	_, _, err = svc.SaveRecommendation(ctx, "u1", time.Now())
	assert.ErrorIs(t, err, advisor.ErrIncompleteProfile)

	h, err := svc.History(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Empty(t, h)
}

func TestRecommendAndSave(t *testing.T) {
	svc, hook := newService(t)
	ctx := context.Background()
	seed(t, svc, "u1")

	_, err := svc.UpdateProfile(ctx, finance.Profile{
		UserID:            "u1",
		RiskTolerance:     finance.Conservative,
		InvestmentHorizon: finance.Short,
	})
	require.NoError(t, err)

	rec, m, err := svc.Recommend(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, advisor.ConservativeProfile, rec.RiskProfile)
	assert.Equal(t, "9000.00", rec.EmergencyFund.String())
	assert.Equal(t, "1500.00", m.MonthlyExpenses.String())

	base := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	first, fm, err := svc.SaveRecommendation(ctx, "u1", base)
	require.NoError(t, err)
	assert.Equal(t, "1500.00", fm.MonthlyExpenses.String())
	assert.Equal(t, "recommendation saved", hook.LastEntry().Message)
	assert.Equal(t, first.ID, hook.LastEntry().Data["id"])

	second, _, err := svc.SaveRecommendation(ctx, "u1", base.Add(time.Hour))
	require.NoError(t, err)

	h, err := svc.History(ctx, "u1", 5)
	require.NoError(t, err)
	require.Len(t, h, 2)
	assert.Equal(t, second.ID, h[0].ID)
	assert.Equal(t, first.ID, h[1].ID)
	assert.Equal(t, rec.Advice, h[0].Recommendation.Advice)
	assert.True(t, rec.EmergencyFund.Equal(h[0].Recommendation.EmergencyFund))

	other, err := svc.History(ctx, "u2", 5)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRecommendSnapshot(t *testing.T) {
	svc, _ := newService(t)

	snap := finance.Snapshot{
		Income:   []finance.IncomeEntry{{Amount: finance.M(3000), Frequency: finance.Monthly}},
		Expenses: []finance.ExpenseEntry{{Category: finance.Rent, Amount: finance.M(1000), Frequency: finance.Monthly}},
		Profile:  &finance.Profile{RiskTolerance: finance.Aggressive, InvestmentHorizon: finance.Long},
	}
	rec, m, err := svc.RecommendSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, advisor.AggressiveProfile, rec.RiskProfile)
	assert.Equal(t, "2000.00", m.MonthlySavings.String())

	snap.Profile = nil
	_, _, err = svc.RecommendSnapshot(snap)
	assert.ErrorIs(t, err, advisor.ErrIncompleteProfile)
}

func TestSaveRecommendationUsesOneSnapshot(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	seed(t, svc, "u1")
	_, err := svc.UpdateProfile(ctx, finance.Profile{UserID: "u1", RiskTolerance: finance.Moderate, InvestmentHorizon: finance.Medium})
	require.NoError(t, err)

	e, m, err := svc.SaveRecommendation(ctx, "u1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "1500.00", m.MonthlyExpenses.String())
	assert.True(t, m.MonthlyExpenses.Times(int64(e.Recommendation.EmergencyMonths)).Equal(e.Recommendation.EmergencyFund))

	h, err := svc.History(ctx, "u1", 1)
	require.NoError(t, err)
	require.Len(t, h, 1)
	assert.Equal(t, e.ID, h[0].ID)
	assert.True(t, e.Recommendation.EmergencyFund.Equal(h[0].Recommendation.EmergencyFund))
}

func TestRecommendSnapshotRejectsMissingEnums(t *testing.T) {
	svc, _ := newService(t)

	snap := finance.Snapshot{
		Income:  []finance.IncomeEntry{{Amount: finance.M(3000)}},
		Profile: &finance.Profile{RiskTolerance: finance.Aggressive, InvestmentHorizon: finance.Long},
	}
	_, _, err := svc.RecommendSnapshot(snap)
	assert.ErrorIs(t, err, finance.ErrInvalidEnum)
}

func TestDeleteRecords(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	a, err := svc.AddAccount(ctx, finance.Account{UserID: "u1", Type: finance.PEA, Name: "PEA", Balance: finance.M(500)})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteAccount(ctx, "u2", a.ID), store.ErrNotFound)
	require.NoError(t, svc.DeleteAccount(ctx, "u1", a.ID))
	assert.ErrorIs(t, svc.DeleteAccount(ctx, "u1", a.ID), store.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteIncome(ctx, "u1", "missing"), store.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteExpense(ctx, "u1", "missing"), store.ErrNotFound)
}
