package usecase

import (
	"context"
	"testing"

	"github.com/eslsoft/lingobot/internal/entity"
)

func TestRecord_CanonicalizesPairOrder(t *testing.T) {
	repo := newMockConfusionRepo()
	uc := NewConfusionUsecase(repo)
	ctx := context.Background()

	if err := uc.Record(ctx, 5, 2); err != nil {
		t.Fatalf("record (5,2): %v", err)
	}
	if err := uc.Record(ctx, 2, 5); err != nil {
		t.Fatalf("record (2,5): %v", err)
	}

	if len(repo.rows) != 1 {
		t.Fatalf("expected a single canonical row, got %d", len(repo.rows))
	}
	row, ok := repo.rows[[2]int64{2, 5}]
	if !ok {
		t.Fatalf("row not stored low-id-first: %v", repo.rows)
	}
	if want := 2 * entity.ConfusionIncrement; row.Weight != want {
		t.Fatalf("expected weight %v, got %v", want, row.Weight)
	}
}

func TestRecord_IgnoresDegeneratePairs(t *testing.T) {
	repo := newMockConfusionRepo()
	uc := NewConfusionUsecase(repo)
	ctx := context.Background()

	if err := uc.Record(ctx, 3, 3); err != nil {
		t.Fatalf("record same id: %v", err)
	}
	if err := uc.Record(ctx, 0, 3); err != nil {
		t.Fatalf("record zero id: %v", err)
	}
	if err := uc.Record(ctx, 3, -1); err != nil {
		t.Fatalf("record negative id: %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("degenerate pairs must not be stored: %v", repo.rows)
	}
}

func TestRecord_WeightStaysClamped(t *testing.T) {
	repo := newMockConfusionRepo()
	uc := NewConfusionUsecase(repo)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		if err := uc.Record(ctx, 1, 2); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	row := repo.rows[[2]int64{1, 2}]
	if row == nil {
		t.Fatalf("row missing")
	}
	if row.Weight != entity.ConfusionMaxWeight {
		t.Fatalf("expected weight capped at %v, got %v", entity.ConfusionMaxWeight, row.Weight)
	}
}

func TestFor_KeysByOppositeWord(t *testing.T) {
	repo := newMockConfusionRepo()
	uc := NewConfusionUsecase(repo)
	ctx := context.Background()

	if err := uc.Record(ctx, 2, 7); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := uc.Record(ctx, 9, 2); err != nil {
		t.Fatalf("record: %v", err)
	}

	weights, err := uc.For(ctx, 2)
	if err != nil {
		t.Fatalf("for: %v", err)
	}
	if len(weights) != 2 {
		t.Fatalf("expected 2 entries, got %v", weights)
	}
	if weights[7] != entity.ConfusionIncrement || weights[9] != entity.ConfusionIncrement {
		t.Fatalf("unexpected weights %v", weights)
	}

	weights, err = uc.For(ctx, 0)
	if err != nil || weights != nil {
		t.Fatalf("non-positive word id must yield nothing, got %v err=%v", weights, err)
	}
}

func TestSweep_RemovesLowWeightRows(t *testing.T) {
	repo := newMockConfusionRepo()
	uc := NewConfusionUsecase(repo)
	ctx := context.Background()

	if err := uc.Record(ctx, 1, 2); err != nil { // 0.05
		t.Fatalf("record: %v", err)
	}
	for i := 0; i < 3; i++ { // 0.15
		if err := uc.Record(ctx, 3, 4); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	n, err := uc.Sweep(ctx, 0.10)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row swept, got %d", n)
	}
	if _, ok := repo.rows[[2]int64{3, 4}]; !ok {
		t.Fatalf("heavy row must survive the sweep")
	}
}
