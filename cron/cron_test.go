package cron

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestAddDBHealthCheck_RejectsBadSchedule(t *testing.T) {
	s := NewScheduler(zerolog.Nop())
	err := s.AddDBHealthCheck("not a schedule", pingerFunc(func(context.Context) error { return nil }))
	assert.Error(t, err)
}

func TestCheckDB_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	s := NewScheduler(zerolog.New(&buf))

	s.checkDB(pingerFunc(func(context.Context) error { return errors.New("connection refused") }))

	assert.Contains(t, buf.String(), "database health check failed")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestScheduler_RunsJob(t *testing.T) {
	s := NewScheduler(zerolog.Nop())
	pinged := make(chan struct{}, 1)

	require.NoError(t, s.AddDBHealthCheck("@every 1s", pingerFunc(func(context.Context) error {
		select {
		case pinged <- struct{}{}:
		default:
		}
		return nil
	})))
	s.Start()
	defer s.Stop(context.Background())

	select {
	case <-pinged:
	case <-time.After(3 * time.Second):
		t.Fatal("health check did not run")
	}
}
