package repository

import (
	"context"

	"github.com/eslsoft/lingobot/internal/entity"
)

// ConfusionRepository persists pairwise confusion scores. Implementations
// must make Upsert an atomic read-modify-write: concurrent learners may
// confuse the same pair simultaneously and exactly one clamped row has to
// survive. Callers pass the pair pre-canonicalized (low id first).
type ConfusionRepository interface {
	Upsert(ctx context.Context, lowID, highID int64, increment float64) (*entity.ConfusionScore, error)
	ListForWord(ctx context.Context, wordID int64) ([]*entity.ConfusionScore, error)
	DeleteBelow(ctx context.Context, threshold float64) (int, error)
}
