package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsJobAtStartupAndStops(t *testing.T) {
	t.Parallel()

	ran := make(chan struct{})
	var once bool

	s := NewScheduler()
	s.AddJob("first-run", time.Hour, func(ctx context.Context) error {
		if !once {
			once = true
			close(ran)
		}
		return nil
	})
	s.Start()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run at startup")
	}

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}

	assert.True(t, once)
}
