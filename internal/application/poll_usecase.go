package application

import (
	"context"
	"time"

	"github.com/davarch/homework-watcher/internal/domain"
	"go.uber.org/zap"
)

const failurePrefix = "Сбой в работе программы: "

// LoopState is the whole memory of the polling loop: the fetch cursor
// and the two dedup slots. None of it survives a restart.
type LoopState struct {
	Cursor     int64
	LastStatus string
	LastError  string
}

type PollUseCase struct {
	client domain.StatusClient
	note   domain.Notifier
	cache  domain.SnapshotCache
	log    *zap.Logger

	state LoopState
}

func NewPollUseCase(client domain.StatusClient, note domain.Notifier, cache domain.SnapshotCache, log *zap.Logger, startCursor int64) *PollUseCase {
	return &PollUseCase{
		client: client, note: note, cache: cache, log: log,
		state: LoopState{Cursor: startCursor},
	}
}

// State returns a copy of the loop state.
func (uc *PollUseCase) State() LoopState { return uc.state }

// PollOnce runs one full cycle. A cycle error is forwarded through the
// deduplicated error notification and returned for the scheduler's log;
// it never terminates the loop.
func (uc *PollUseCase) PollOnce(ctx context.Context) error {
	err := uc.cycle(ctx)
	if err != nil {
		uc.reportFailure(ctx, err)
	}
	return err
}

func (uc *PollUseCase) cycle(ctx context.Context) error {
	raw, err := uc.client.Statuses(ctx, uc.state.Cursor)
	if err != nil {
		return err
	}

	page, err := domain.Validate(raw)
	if err != nil {
		return err
	}

	if len(page.Homeworks) == 0 {
		// Cursor stays put so the same window is re-covered next cycle;
		// a redundant fetch beats missing a late-arriving update.
		uc.log.Debug("no new statuses", zap.Int64("cursor", uc.state.Cursor))
		return nil
	}

	// Only the newest item is consulted per cycle.
	msg, err := domain.StatusMessage(page.Homeworks[0])
	if err != nil {
		return err
	}

	if msg == uc.state.LastStatus {
		uc.log.Debug("status unchanged, not resending")
		return nil
	}

	if err := uc.note.Send(ctx, msg); err != nil {
		// Unconfirmed change: cursor untouched, retried next cycle.
		uc.log.Error("status delivery failed", zap.Error(err))
		return nil
	}

	uc.state.LastStatus = msg
	uc.state.Cursor = page.CurrentDate
	uc.log.Debug("status delivered", zap.Int64("cursor", uc.state.Cursor))

	if uc.cache != nil {
		if err := uc.cache.Write(ctx, snapshotFor(page.Homeworks[0], msg)); err != nil {
			uc.log.Warn("snapshot write failed", zap.Error(err))
		}
	}

	return nil
}

// reportFailure forwards a cycle error to the chat, once per distinct
// error text. The slot updates only on confirmed delivery, so a failed
// report is attempted again when the same error recurs.
func (uc *PollUseCase) reportFailure(ctx context.Context, cause error) {
	msg := failurePrefix + cause.Error()
	if msg == uc.state.LastError {
		uc.log.Debug("error unchanged, not resending")
		return
	}
	if err := uc.note.Send(ctx, msg); err != nil {
		uc.log.Error("error delivery failed", zap.Error(err))
		return
	}
	uc.state.LastError = msg
}

func snapshotFor(item any, msg string) domain.Snapshot {
	s := domain.Snapshot{Message: msg, Retrieved: time.Now().Unix()}
	if m, ok := item.(map[string]any); ok {
		s.Homework, _ = m["homework_name"].(string)
		s.Status, _ = m["status"].(string)
	}
	return s
}
