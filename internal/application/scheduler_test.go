package application

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/davarch/homework-watcher/internal/domain"
	"go.uber.org/zap"
)

func TestScheduler_RunsImmediateTick(t *testing.T) {
	client := &domain.MockStatusClient{Responses: []domain.RawResponse{page(1000)}}
	uc := newUC(client, &domain.MockNotifier{}, &domain.MockCache{}, 500)
	sched := NewScheduler(zap.NewNop(), uc, time.Hour, "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sched.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for client.Called == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	cancel()
	<-done

	if client.Called == 0 {
		t.Error("expected at least one poll before the first tick interval")
	}
}

func TestScheduler_PauseFileSkipsTicks(t *testing.T) {
	pause := filepath.Join(t.TempDir(), "paused")
	if err := os.WriteFile(pause, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	client := &domain.MockStatusClient{Responses: []domain.RawResponse{page(1000)}}
	uc := newUC(client, &domain.MockNotifier{}, &domain.MockCache{}, 500)
	sched := NewScheduler(zap.NewNop(), uc, 10*time.Millisecond, pause)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	sched.Run(ctx)

	if client.Called != 0 {
		t.Errorf("expected no polls while paused, got %d", client.Called)
	}
}

func TestScheduler_SetIntervalIgnoresNonPositive(t *testing.T) {
	uc := newUC(&domain.MockStatusClient{}, &domain.MockNotifier{}, &domain.MockCache{}, 0)
	sched := NewScheduler(zap.NewNop(), uc, time.Minute, "")

	sched.SetInterval(0)
	if got := sched.interval(); got != time.Minute {
		t.Errorf("interval changed to %v", got)
	}

	sched.SetInterval(time.Second)
	if got := sched.interval(); got != time.Second {
		t.Errorf("expected 1s, got %v", got)
	}
}
