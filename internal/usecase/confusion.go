package usecase

import (
	"context"
	"fmt"

	"github.com/eslsoft/lingobot/internal/entity"
	"github.com/eslsoft/lingobot/internal/repository"
)

// ConfusionUsecase maintains the pairwise word-confusion metric that biases
// distractor selection. Pairs are canonicalized (lower id first) before they
// reach the repository, so (A,B) and (B,A) always land on the same row.
type ConfusionUsecase interface {
	// Record bumps the confusion weight between the word the learner should
	// have chosen and the word they chose instead.
	Record(ctx context.Context, correctID, chosenID int64) error
	// For returns confusion weights keyed by the opposite word id.
	For(ctx context.Context, wordID int64) (map[int64]float64, error)
	// Sweep removes entries at or below the threshold. Maintenance only;
	// never called from the live quiz loop.
	Sweep(ctx context.Context, threshold float64) (int, error)
}

type confusionUsecase struct {
	repo repository.ConfusionRepository
}

func NewConfusionUsecase(repo repository.ConfusionRepository) ConfusionUsecase {
	return &confusionUsecase{repo: repo}
}

func (u *confusionUsecase) Record(ctx context.Context, correctID, chosenID int64) error {
	if correctID <= 0 || chosenID <= 0 || correctID == chosenID {
		return nil
	}
	low, high := entity.CanonicalPair(correctID, chosenID)
	if _, err := u.repo.Upsert(ctx, low, high, entity.ConfusionIncrement); err != nil {
		return fmt.Errorf("record confusion (%d,%d): %w", low, high, err)
	}
	return nil
}

func (u *confusionUsecase) For(ctx context.Context, wordID int64) (map[int64]float64, error) {
	if wordID <= 0 {
		return nil, nil
	}
	scores, err := u.repo.ListForWord(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("list confusions for %d: %w", wordID, err)
	}
	out := make(map[int64]float64, len(scores))
	for _, sc := range scores {
		out[sc.Other(wordID)] = sc.Weight
	}
	return out, nil
}

func (u *confusionUsecase) Sweep(ctx context.Context, threshold float64) (int, error) {
	n, err := u.repo.DeleteBelow(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("sweep confusions: %w", err)
	}
	return n, nil
}
