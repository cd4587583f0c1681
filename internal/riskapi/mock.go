package riskapi

import (
	"context"
	"sync"
)

// MockResult is a canned Analyze result for the Mock client.
type MockResult struct {
	Verdict *Verdict
	Err     error
}

// Mock is a deterministic Client for testing. It returns canned results
// in FIFO order and records every submission it receives.
type Mock struct {
	mu        sync.Mutex
	results   []MockResult
	HealthErr error

	Calls []Submission
}

var _ Client = (*Mock)(nil)

// NewMock creates a Mock with the given canned results.
func NewMock(results ...MockResult) *Mock {
	return &Mock{results: results}
}

// Analyze returns the next canned result, or ErrUnavailable when the
// queue is empty.
func (m *Mock) Analyze(_ context.Context, sub Submission) (*Verdict, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, sub)

	if len(m.results) == 0 {
		return nil, &ErrUnavailable{}
	}
	res := m.results[0]
	m.results = m.results[1:]

	if res.Err != nil {
		return nil, res.Err
	}
	return res.Verdict, nil
}

// Health returns the configured health error, if any.
func (m *Mock) Health(_ context.Context) error {
	return m.HealthErr
}

// AddResult appends a canned result to the queue.
func (m *Mock) AddResult(res MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
}

// CallCount reports how many Analyze calls were made.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
