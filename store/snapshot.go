package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
)

// LoadSnapshot fetches the user's accounts, income, expenses and profile
// concurrently. Each fetch is independent; any failure fails the whole
// snapshot so callers never aggregate a partial view. A missing profile
// is not an error and leaves Snapshot.Profile nil.
func (s *SQLite) LoadSnapshot(ctx context.Context, userID string) (finance.Snapshot, error) {
	var (
		snap finance.Snapshot
		wg   sync.WaitGroup
		errs [4]error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		snap.Accounts, errs[0] = s.ListAccounts(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		snap.Income, errs[1] = s.ListIncome(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		snap.Expenses, errs[2] = s.ListExpenses(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		p, err := s.GetProfile(ctx, userID)
		switch {
		case errors.Is(err, ErrNotFound):
		case err != nil:
			errs[3] = err
		default:
			snap.Profile = &p
		}
	}()
	wg.Wait()

	if err := errors.Join(errs[:]...); err != nil {
		return finance.Snapshot{}, fmt.Errorf("load snapshot for %q: %w", userID, err)
	}
	return snap, nil
}
