// Package planner is the boundary between persisted records and the
// engine. Metrics are recomputed from a fresh snapshot on every call.
package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sachacalipel7-cmyk/FinAdvisor/advisor"
	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
	"github.com/sachacalipel7-cmyk/FinAdvisor/store"
)

// ErrNegativeAmount rejects a record before it reaches the store.
var ErrNegativeAmount = errors.New("amount must not be negative")

// Store is the persistence collaborator.
type Store interface {
	CreateAccount(ctx context.Context, a finance.Account) (finance.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID string) error
	CreateIncome(ctx context.Context, in finance.IncomeEntry) (finance.IncomeEntry, error)
	DeleteIncome(ctx context.Context, userID, incomeID string) error
	CreateExpense(ctx context.Context, e finance.ExpenseEntry) (finance.ExpenseEntry, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error
	SaveProfile(ctx context.Context, p finance.Profile) (finance.Profile, error)
	LoadSnapshot(ctx context.Context, userID string) (finance.Snapshot, error)
	SaveRecommendation(ctx context.Context, userID string, rec advisor.Recommendation, at time.Time) (store.HistoryEntry, error)
	ListRecommendations(ctx context.Context, userID string, limit int) ([]store.HistoryEntry, error)
}

// Service handles one user's planning operations
type Service struct {
	store Store
	log   *logrus.Logger
}

// New initializes a new service
func New(s Store, log *logrus.Logger) *Service {
	return &Service{store: s, log: log}
}

// Report is what the dashboard shows: a snapshot and its metrics.
type Report struct {
	Snapshot   finance.Snapshot
	Metrics    finance.Metrics
	ByCategory []finance.CategoryTotal
}

// Metrics loads the user's records and aggregates them.
func (s *Service) Metrics(ctx context.Context, userID string) (Report, error) {
	snap, err := s.store.LoadSnapshot(ctx, userID)
	if err != nil {
		return Report{}, err
	}
	r := Report{
		Snapshot:   snap,
		Metrics:    snap.Metrics(),
		ByCategory: finance.ExpensesByCategory(snap.Expenses),
	}
	s.log.WithFields(logrus.Fields{
		"user":     userID,
		"accounts": len(snap.Accounts),
		"income":   len(snap.Income),
		"expenses": len(snap.Expenses),
	}).Debug("metrics computed")
	return r, nil
}

// Recommend computes a recommendation from the user's current records.
// It returns advisor.ErrIncompleteProfile without running the engine when
// the profile is missing or incomplete.
func (s *Service) Recommend(ctx context.Context, userID string) (advisor.Recommendation, finance.Metrics, error) {
	snap, err := s.store.LoadSnapshot(ctx, userID)
	if err != nil {
		return advisor.Recommendation{}, finance.Metrics{}, err
	}
	return s.recommend(userID, snap)
}

// RecommendSnapshot runs the engine on records that were not loaded from
// the store, e.g. a snapshot file.
func (s *Service) RecommendSnapshot(snap finance.Snapshot) (advisor.Recommendation, finance.Metrics, error) {
	if err := snap.Validate(); err != nil {
		return advisor.Recommendation{}, finance.Metrics{}, err
	}
	return s.recommend("", snap)
}

func (s *Service) recommend(userID string, snap finance.Snapshot) (advisor.Recommendation, finance.Metrics, error) {
	m := snap.Metrics()
	if snap.Profile == nil || !snap.Profile.Complete() {
		s.log.WithField("user", userID).Info("profile incomplete, no recommendation")
		return advisor.Recommendation{}, m, advisor.ErrIncompleteProfile
	}

	rec, err := advisor.Recommend(*snap.Profile, m)
	if err != nil {
		return advisor.Recommendation{}, m, fmt.Errorf("recommend: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"user":         userID,
		"risk_profile": rec.RiskProfile.String(),
		"advice":       len(rec.Advice),
	}).Debug("recommendation computed")
	return rec, m, nil
}

// SaveRecommendation computes the recommendation and appends it to the
// user's history at time now. The returned metrics come from the same
// snapshot as the saved entry.
func (s *Service) SaveRecommendation(ctx context.Context, userID string, now time.Time) (store.HistoryEntry, finance.Metrics, error) {
	rec, m, err := s.Recommend(ctx, userID)
	if err != nil {
		return store.HistoryEntry{}, m, err
	}
	e, err := s.store.SaveRecommendation(ctx, userID, rec, now)
	if err != nil {
		return store.HistoryEntry{}, m, err
	}
	s.log.WithFields(logrus.Fields{"user": userID, "id": e.ID}).Info("recommendation saved")
	return e, m, nil
}

// History returns up to limit saved recommendations, most recent first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]store.HistoryEntry, error) {
	return s.store.ListRecommendations(ctx, userID, limit)
}

func (s *Service) AddAccount(ctx context.Context, a finance.Account) (finance.Account, error) {
	if a.Balance.IsNegative() {
		return finance.Account{}, fmt.Errorf("account %q: %w", a.Name, ErrNegativeAmount)
	}
	a, err := s.store.CreateAccount(ctx, a)
	if err != nil {
		return finance.Account{}, err
	}
	s.log.WithFields(logrus.Fields{"user": a.UserID, "id": a.ID}).Info("account created")
	return a, nil
}

func (s *Service) AddIncome(ctx context.Context, in finance.IncomeEntry) (finance.IncomeEntry, error) {
	if in.Amount.IsNegative() {
		return finance.IncomeEntry{}, fmt.Errorf("income %q: %w", in.Source, ErrNegativeAmount)
	}
	in, err := s.store.CreateIncome(ctx, in)
	if err != nil {
		return finance.IncomeEntry{}, err
	}
	s.log.WithFields(logrus.Fields{"user": in.UserID, "id": in.ID}).Info("income created")
	return in, nil
}

func (s *Service) AddExpense(ctx context.Context, e finance.ExpenseEntry) (finance.ExpenseEntry, error) {
	if e.Amount.IsNegative() {
		return finance.ExpenseEntry{}, fmt.Errorf("expense %q: %w", e.Category, ErrNegativeAmount)
	}
	e, err := s.store.CreateExpense(ctx, e)
	if err != nil {
		return finance.ExpenseEntry{}, err
	}
	s.log.WithFields(logrus.Fields{"user": e.UserID, "id": e.ID}).Info("expense created")
	return e, nil
}

func (s *Service) DeleteAccount(ctx context.Context, userID, id string) error {
	return s.deleted(userID, id, "account", s.store.DeleteAccount(ctx, userID, id))
}

func (s *Service) DeleteIncome(ctx context.Context, userID, id string) error {
	return s.deleted(userID, id, "income", s.store.DeleteIncome(ctx, userID, id))
}

func (s *Service) DeleteExpense(ctx context.Context, userID, id string) error {
	return s.deleted(userID, id, "expense", s.store.DeleteExpense(ctx, userID, id))
}

func (s *Service) deleted(userID, id, kind string, err error) error {
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"user": userID, "id": id}).Infof("%s deleted", kind)
	return nil
}

// UpdateProfile saves the profile, rejecting out-of-domain answers and a
// negative self reported income.
func (s *Service) UpdateProfile(ctx context.Context, p finance.Profile) (finance.Profile, error) {
	if p.MonthlyIncome.IsNegative() {
		return finance.Profile{}, fmt.Errorf("monthly income: %w", ErrNegativeAmount)
	}
	p, err := s.store.SaveProfile(ctx, p)
	if err != nil {
		return finance.Profile{}, err
	}
	s.log.WithFields(logrus.Fields{"user": p.UserID, "complete": p.Complete()}).Info("profile saved")
	return p, nil
}
