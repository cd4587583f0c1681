package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	repo, err := openTestStore(t).EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestAppendScreeningAndTask(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	err := repo.AppendScreening(ctx, ScreeningEventData{
		ScreeningID: "run-1",
		Action:      "start",
	})
	if err != nil {
		t.Fatalf("append screening: %v", err)
	}

	err = repo.AppendTask(ctx, TaskEventData{
		ScreeningID: "run-1",
		Task:        "word",
		Score:       85,
		DurationMs:  12000,
	})
	if err != nil {
		t.Fatalf("append task: %v", err)
	}
}

func TestRecentSubmissions_NewestFirst(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i, id := range []string{"run-1", "run-2", "run-3"} {
		err := repo.AppendSubmission(ctx, SubmissionEventData{
			ScreeningID:  id,
			WordScore:    80 + i,
			MemoryScore:  5,
			ReactionMs:   340,
			Success:      true,
			RiskScore:    25.5,
			RiskCategory: "Low Risk",
		})
		if err != nil {
			t.Fatalf("append submission %s: %v", id, err)
		}
	}

	records, err := repo.RecentSubmissions(ctx, 2)
	if err != nil {
		t.Fatalf("recent submissions: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].ScreeningID != "run-3" {
		t.Errorf("records[0] = %s, want run-3 (newest first)", records[0].ScreeningID)
	}
	if records[1].ScreeningID != "run-2" {
		t.Errorf("records[1] = %s, want run-2", records[1].ScreeningID)
	}
}

func TestRecentSubmissions_Empty(t *testing.T) {
	repo := testRepo(t)

	records, err := repo.RecentSubmissions(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent submissions: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}
