package domain

import "context"

type StatusClient interface {
	Statuses(ctx context.Context, fromDate int64) (RawResponse, error)
}

type Notifier interface {
	Send(ctx context.Context, text string) error
}

type SnapshotCache interface {
	Write(ctx context.Context, s Snapshot) error
}
