package sqlite

import (
	"testing"
	"time"

	"shelf/internal/domain"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h := NewHistory()
	if err := h.Open(t.TempDir()); err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}

func TestRecordAndRecent(t *testing.T) {
	h := openTestHistory(t)

	base := time.Unix(1700000000, 0)
	ops := []domain.Operation{
		{Kind: domain.OpMove, Source: "a.md", Destination: "inbox/a.md", MappingID: "m1", At: base},
		{Kind: domain.OpCopy, Source: "b.md", Destination: "archive/b.md", MappingID: "m2", At: base.Add(time.Second)},
		{Kind: domain.OpPrefix, Source: "c.md", Destination: "x_c.md", At: base.Add(2 * time.Second)},
	}
	for _, op := range ops {
		if err := h.Record(op); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := h.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d operations, want 3", len(got))
	}

	// Newest first.
	if got[0].Kind != domain.OpPrefix || got[2].Kind != domain.OpMove {
		t.Errorf("order wrong: %+v", got)
	}
	if got[2].MappingID != "m1" || !got[2].At.Equal(base) {
		t.Errorf("fields lost: %+v", got[2])
	}
}

func TestRecentLimit(t *testing.T) {
	h := openTestHistory(t)

	base := time.Unix(1700000000, 0)
	for i := 0; i < 5; i++ {
		op := domain.Operation{
			Kind:        domain.OpMove,
			Source:      "a.md",
			Destination: "inbox/a.md",
			At:          base.Add(time.Duration(i) * time.Second),
		}
		if err := h.Record(op); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := h.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d operations, want 2", len(got))
	}
	if !got[0].At.After(got[1].At) {
		t.Error("operations should be newest first")
	}
}

func TestRecentEmpty(t *testing.T) {
	h := openTestHistory(t)

	got, err := h.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d operations, want 0", len(got))
	}
}
