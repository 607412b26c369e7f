package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryableError(t *testing.T) {
	retryable := []error{
		&pgconn.PgError{Code: "40001"}, // serialization_failure
		&pgconn.PgError{Code: "40P01"}, // deadlock_detected
		&pgconn.PgError{Code: "08006"}, // connection_failure
		&pgconn.PgError{Code: "53300"}, // too_many_connections
		&pgconn.PgError{Code: "57P03"}, // cannot_connect_now
		errors.New("dial tcp: connection refused"),
		errors.New("write: broken pipe"),
		errors.New("unexpected EOF"),
		errors.New("pq: sorry, too many clients already"),
	}
	for _, err := range retryable {
		assert.True(t, isRetryableError(err), "expected retryable: %v", err)
	}

	notRetryable := []error{
		nil,
		context.Canceled,
		context.DeadlineExceeded,
		sql.ErrNoRows,
		&pgconn.PgError{Code: "23505"}, // unique_violation
		&pgconn.PgError{Code: "23503"}, // foreign_key_violation
		&pgconn.PgError{Code: "42601"}, // syntax_error
		errors.New("some application error"),
	}
	for _, err := range notRetryable {
		assert.False(t, isRetryableError(err), "expected not retryable: %v", err)
	}
}

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
		EnableRetry:  true,
	}
}

func TestRetryWithBackoffEventualSuccess(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), fastRetryConfig(), func() error {
		attempts++
		if attempts < 3 {
			return &pgconn.PgError{Code: "40001"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryWithBackoffStopsOnNonRetryable(t *testing.T) {
	attempts := 0
	wantErr := &pgconn.PgError{Code: "23505"}
	err := RetryWithBackoff(context.Background(), fastRetryConfig(), func() error {
		attempts++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, attempts)
}

func TestRetryWithBackoffExhaustsAttempts(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), fastRetryConfig(), func() error {
		attempts++
		return &pgconn.PgError{Code: "40P01"}
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryWithBackoffDisabled(t *testing.T) {
	config := fastRetryConfig()
	config.EnableRetry = false

	attempts := 0
	err := RetryWithBackoff(context.Background(), config, func() error {
		attempts++
		return &pgconn.PgError{Code: "40001"}
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetryWithBackoffContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	config := fastRetryConfig()
	config.InitialDelay = time.Second

	err := RetryWithBackoff(ctx, config, func() error {
		return &pgconn.PgError{Code: "40001"}
	})

	assert.ErrorIs(t, err, context.Canceled)
}
