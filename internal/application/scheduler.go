package application

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler drives the polling loop at a fixed period. The wait is
// unconditional and outcome-independent: failed, empty and successful
// cycles all sleep the same interval.
type Scheduler struct {
	log       *zap.Logger
	use       *PollUseCase
	pauseFile string

	mu    sync.RWMutex
	every time.Duration
}

func NewScheduler(l *zap.Logger, u *PollUseCase, every time.Duration, pauseFile string) *Scheduler {
	return &Scheduler{log: l, use: u, every: every, pauseFile: pauseFile}
}

// SetInterval swaps the polling period; picked up after the current tick.
func (s *Scheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.every = d
	s.mu.Unlock()
	s.log.Info("poll interval updated", zap.Duration("every", d))
}

func (s *Scheduler) interval() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.every
}

func (s *Scheduler) Run(ctx context.Context) {
	cur := s.interval()
	t := time.NewTicker(cur)
	defer t.Stop()

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.tick(ctx)
			if d := s.interval(); d != cur {
				cur = d
				t.Reset(d)
			}
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if s.isPaused() {
		s.log.Debug("paused: skipping poll")
		return
	}
	if err := s.use.PollOnce(ctx); err != nil {
		s.log.Warn("poll failed", zap.Error(err))
	}
}

func (s *Scheduler) isPaused() bool {
	if s.pauseFile == "" {
		return false
	}
	_, err := os.Stat(s.pauseFile)
	return err == nil
}
