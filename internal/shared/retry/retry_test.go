package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RetrySuite struct {
	suite.Suite
}

func (s *RetrySuite) TestSucceedsFirstAttempt() {
	attempts := 0
	err := Do(context.Background(), Config{MaxRetries: 3, BaseDelay: time.Millisecond}, func(context.Context) error {
		attempts++
		return nil
	})

	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, attempts)
}

func (s *RetrySuite) TestRetriesUntilSuccess() {
	transient := errors.New("connection reset")
	attempts := 0
	err := Do(context.Background(), Config{MaxRetries: 3, BaseDelay: time.Millisecond}, func(context.Context) error {
		attempts++
		if attempts < 3 {
			return transient
		}
		return nil
	})

	require.NoError(s.T(), err)
	assert.Equal(s.T(), 3, attempts)
}

func (s *RetrySuite) TestNonRetryableAbortsAfterOneAttempt() {
	fatal := errors.New("invalid credentials")
	attempts := 0
	err := Do(context.Background(), Config{
		MaxRetries: 5,
		BaseDelay:  time.Millisecond,
		RetryIf: func(err error) bool {
			return !errors.Is(err, fatal)
		},
	}, func(context.Context) error {
		attempts++
		return fatal
	})

	require.ErrorIs(s.T(), err, fatal)
	assert.NotErrorIs(s.T(), err, ErrExhausted)
	assert.Equal(s.T(), 1, attempts)
}

func (s *RetrySuite) TestExhaustedBudgetWrapsLastError() {
	transient := errors.New("dial timeout")
	attempts := 0
	err := Do(context.Background(), Config{MaxRetries: 2, BaseDelay: time.Millisecond}, func(context.Context) error {
		attempts++
		return transient
	})

	require.Error(s.T(), err)
	assert.Equal(s.T(), 3, attempts)
	assert.ErrorIs(s.T(), err, ErrExhausted)
	assert.ErrorIs(s.T(), err, transient)
	assert.ErrorContains(s.T(), err, "after 3 attempts")
}

func (s *RetrySuite) TestContextCancelDuringBackoffStopsRetrying() {
	ctx, cancel := context.WithCancel(context.Background())
	transient := errors.New("unreachable")
	attempts := 0

	err := Do(ctx, Config{
		MaxRetries: 5,
		BaseDelay:  time.Minute,
		OnRetry: func(int, time.Duration, error) {
			cancel()
		},
	}, func(context.Context) error {
		attempts++
		return transient
	})

	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, context.Canceled)
	assert.Equal(s.T(), 1, attempts)
}

func (s *RetrySuite) TestContextAlreadyEndedSkipsAttempt() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := Do(ctx, Config{MaxRetries: 2, BaseDelay: time.Millisecond}, func(context.Context) error {
		attempts++
		return nil
	})

	require.ErrorIs(s.T(), err, context.Canceled)
	assert.Zero(s.T(), attempts)
}

func (s *RetrySuite) TestOnRetryReportsAttemptAndDelay() {
	transient := errors.New("transient")
	type observed struct {
		attempt int
		delay   time.Duration
	}
	var calls []observed

	err := Do(context.Background(), Config{
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
		DelayCap:   time.Second,
		OnRetry: func(attempt int, delay time.Duration, err error) {
			calls = append(calls, observed{attempt: attempt, delay: delay})
		},
	}, func(context.Context) error {
		return transient
	})

	require.ErrorIs(s.T(), err, ErrExhausted)
	require.Len(s.T(), calls, 2)
	assert.Equal(s.T(), 1, calls[0].attempt)
	assert.Equal(s.T(), 2, calls[1].attempt)
	assert.GreaterOrEqual(s.T(), calls[1].delay, calls[0].delay)
}

func TestRetrySuite(t *testing.T) {
	suite.Run(t, new(RetrySuite))
}

func TestBackoffDelay_TableDriven(t *testing.T) {
	cfg := Config{BaseDelay: 100 * time.Millisecond, DelayCap: time.Second}

	tests := []struct {
		name    string
		attempt int
		min     time.Duration
		max     time.Duration
	}{
		{name: "first retry", attempt: 0, min: 100 * time.Millisecond, max: 110 * time.Millisecond},
		{name: "second retry", attempt: 1, min: 200 * time.Millisecond, max: 220 * time.Millisecond},
		{name: "third retry", attempt: 2, min: 400 * time.Millisecond, max: 440 * time.Millisecond},
		{name: "capped", attempt: 10, min: time.Second, max: time.Second},
		{name: "overflow clamps to cap", attempt: 1 << 12, min: time.Second, max: time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				delay := backoffDelay(tc.attempt, cfg)
				assert.GreaterOrEqual(t, delay, tc.min)
				assert.LessOrEqual(t, delay, tc.max)
			}
		})
	}
}
