package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sachacalipel7-cmyk/FinAdvisor/advisor"
)

// HistoryEntry is a persisted recommendation. History is append-only.
type HistoryEntry struct {
	ID             string
	UserID         string
	CreatedAt      time.Time
	RiskProfile    string
	Text           string         // advice lines joined by newlines
	Allocation     map[string]int // display label -> percent
	Recommendation advisor.Recommendation
}

// SaveRecommendation appends rec to the user's history. The timestamp is
// the caller's; the engine output carries none.
func (s *SQLite) SaveRecommendation(ctx context.Context, userID string, rec advisor.Recommendation, at time.Time) (HistoryEntry, error) {
	e := HistoryEntry{
		UserID:         userID,
		CreatedAt:      at,
		RiskProfile:    rec.RiskProfile.String(),
		Text:           strings.Join(rec.Advice, "\n"),
		Allocation:     rec.Allocation.Labels(),
		Recommendation: rec,
	}
	stamp(&e.ID, &e.CreatedAt)

	alloc, err := json.Marshal(e.Allocation)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("encode allocation: %w", err)
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("encode recommendation: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO recommendations (id, user_id, risk_profile, recommendation_text, allocation_suggestion, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.RiskProfile, e.Text, string(alloc), string(payload), e.CreatedAt,
	)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("insert recommendation: %w", err)
	}
	return e, nil
}

// ListRecommendations returns the user's history, most recent first.
// A limit <= 0 returns everything.
func (s *SQLite) ListRecommendations(ctx context.Context, userID string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	return queryAll(ctx, s.db, scanHistory, `
		SELECT id, user_id, risk_profile, recommendation_text, allocation_suggestion, payload, created_at
		FROM recommendations
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, userID, limit)
}

func scanHistory(rows *sql.Rows) (HistoryEntry, error) {
	var (
		e              HistoryEntry
		alloc, payload string
	)
	if err := rows.Scan(&e.ID, &e.UserID, &e.RiskProfile, &e.Text, &alloc, &payload, &e.CreatedAt); err != nil {
		return HistoryEntry{}, err
	}
	if err := json.Unmarshal([]byte(alloc), &e.Allocation); err != nil {
		return HistoryEntry{}, fmt.Errorf("recommendation %s allocation: %w", e.ID, err)
	}
	if err := json.Unmarshal([]byte(payload), &e.Recommendation); err != nil {
		return HistoryEntry{}, fmt.Errorf("recommendation %s payload: %w", e.ID, err)
	}
	return e, nil
}
