package riskapi

import (
	"context"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func okVerdict() *Verdict {
	return &Verdict{
		Success:       true,
		RiskScore:     30,
		RiskCategory:  "Moderate Risk",
		CognitiveRisk: 30,
	}
}

func TestRetry_SucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMock(
		MockResult{Err: &ErrUnavailable{Status: 503}},
		MockResult{Verdict: okVerdict()},
	)
	client := WithRetry(mock, fastRetry(3))

	v, err := client.Analyze(context.Background(), Submission{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if v.RiskCategory != "Moderate Risk" {
		t.Errorf("RiskCategory = %q", v.RiskCategory)
	}
	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", mock.CallCount())
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMock(
		MockResult{Err: &ErrUnavailable{Status: 503}},
		MockResult{Err: &ErrUnavailable{Status: 503}},
		MockResult{Err: &ErrUnavailable{Status: 503}},
	)
	client := WithRetry(mock, fastRetry(3))

	_, err := client.Analyze(context.Background(), Submission{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", mock.CallCount())
	}
}

func TestRetry_RejectedNotRetried(t *testing.T) {
	mock := NewMock(
		MockResult{Err: &ErrRejected{Status: 400, Detail: "bad"}},
		MockResult{Verdict: okVerdict()},
	)
	client := WithRetry(mock, fastRetry(3))

	_, err := client.Analyze(context.Background(), Submission{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1 (rejected submissions must not be resent)", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMock(
		MockResult{Err: &ErrInvalidResponse{}},
		MockResult{Err: &ErrInvalidResponse{}},
		MockResult{Verdict: okVerdict()},
	)
	client := WithRetry(mock, fastRetry(5))

	_, err := client.Analyze(context.Background(), Submission{})
	if err == nil {
		t.Fatal("expected error after second invalid response")
	}
	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", mock.CallCount())
	}
}

func TestRetry_ContextCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMock(MockResult{Err: &ErrUnavailable{Status: 503}})
	client := WithRetry(mock, fastRetry(3))

	_, err := client.Analyze(ctx, Submission{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() > 1 {
		t.Errorf("CallCount = %d, want at most 1", mock.CallCount())
	}
}
