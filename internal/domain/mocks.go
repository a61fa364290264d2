package domain

import (
	"context"
)

// MockStatusClient serves scripted responses and errors, one per call.
// When the script runs out, the last response repeats.
type MockStatusClient struct {
	Responses []RawResponse
	Errs      []error
	Called    int
}

func (m *MockStatusClient) Statuses(ctx context.Context, fromDate int64) (RawResponse, error) {
	i := m.Called
	m.Called++
	if i < len(m.Errs) && m.Errs[i] != nil {
		return nil, m.Errs[i]
	}
	if i < len(m.Responses) {
		return m.Responses[i], nil
	}
	if n := len(m.Responses); n > 0 {
		return m.Responses[n-1], nil
	}
	return nil, nil
}

// MockNotifier records delivered messages. Errs scripts per-attempt
// failures; a nil entry (or running past the end) means success.
type MockNotifier struct {
	Messages []string
	Errs     []error
	Attempts int
}

func (n *MockNotifier) Send(ctx context.Context, text string) error {
	i := n.Attempts
	n.Attempts++
	if i < len(n.Errs) && n.Errs[i] != nil {
		return n.Errs[i]
	}
	n.Messages = append(n.Messages, text)
	return nil
}

type MockCache struct {
	Snapshots []Snapshot
	Err       error
}

func (c *MockCache) Write(ctx context.Context, s Snapshot) error {
	if c.Err != nil {
		return c.Err
	}
	c.Snapshots = append(c.Snapshots, s)
	return nil
}
