package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsSortable(t *testing.T) {
	t.Parallel()

	prev := New()
	for i := 0; i < 100; i++ {
		next := New()
		assert.Less(t, prev, next)
		prev = next
	}
}

func TestNewAtRoundTripsTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	s := NewAt(at)

	assert.True(t, Valid(s))
	got, err := Time(s)
	require.NoError(t, err)
	assert.True(t, got.Equal(at))
}

func TestValidRejectsGarbage(t *testing.T) {
	t.Parallel()

	assert.False(t, Valid(""))
	assert.False(t, Valid("not-an-id"))
	_, err := Time("not-an-id")
	assert.Error(t, err)
}
