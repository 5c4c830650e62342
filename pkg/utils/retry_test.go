package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fee-payment-service/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errFatal := errors.New("fatal")
	errLast := errors.New("last")

	testCases := []struct {
		name      string
		cfg       utils.RetryConfig
		results   []error
		stopOn    []error
		wantCalls int
		wantErr   error
	}{
		{
			name:      "first attempt succeeds",
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "succeeds after failures",
			cfg:       utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond},
			results:   []error{errTemporary, errTemporary, nil},
			wantCalls: 3,
		},
		{
			name:      "gives up after max attempts",
			cfg:       utils.RetryConfig{MaxAttempts: 2, InitialDelay: time.Millisecond},
			results:   []error{errTemporary, errTemporary, nil},
			wantCalls: 2,
			wantErr:   errTemporary,
		},
		{
			name:      "last error is returned",
			cfg:       utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond},
			results:   []error{errTemporary, errTemporary, errLast},
			wantCalls: 3,
			wantErr:   errLast,
		},
		{
			name:      "stop error is not retried",
			cfg:       utils.RetryConfig{MaxAttempts: 5, InitialDelay: time.Millisecond},
			results:   []error{errFatal, nil},
			stopOn:    []error{errFatal},
			wantCalls: 1,
			wantErr:   errFatal,
		},
		{
			name: "predicate rejects retry",
			cfg: utils.RetryConfig{
				MaxAttempts:  5,
				InitialDelay: time.Millisecond,
				ShouldRetry:  func(err error) bool { return !errors.Is(err, errFatal) },
			},
			results:   []error{errTemporary, errFatal, nil},
			wantCalls: 2,
			wantErr:   errFatal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := utils.Retry(context.Background(), tc.cfg, func() error {
				res := tc.results[calls]
				calls++
				return res
			}, tc.stopOn...)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	errTemporary := errors.New("temporary")
	calls := 0
	err := utils.Retry(ctx, utils.RetryConfig{MaxAttempts: 5, InitialDelay: time.Second}, func() error {
		calls++
		return errTemporary
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, errTemporary)
	assert.ErrorIs(t, err, context.Canceled)
}
