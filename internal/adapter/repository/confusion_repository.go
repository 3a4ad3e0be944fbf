package repository

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/eslsoft/lingobot/internal/entity"
	entdb "github.com/eslsoft/lingobot/internal/infrastructure/database/ent"
	entconfusion "github.com/eslsoft/lingobot/internal/infrastructure/database/ent/confusionscore"
	"github.com/eslsoft/lingobot/internal/repository"
)

type ConfusionRepository struct {
	client *entdb.Client
}

// NewConfusionRepository constructs an ent-backed confusion score repository.
func NewConfusionRepository(client *entdb.Client) repository.ConfusionRepository {
	return &ConfusionRepository{client: client}
}

// Upsert bumps the pair's weight inside a transaction. Two learners confusing
// the same fresh pair can race on the insert; the loser hits the unique index
// and the operation is retried once as an update.
func (r *ConfusionRepository) Upsert(ctx context.Context, lowID, highID int64, increment float64) (*entity.ConfusionScore, error) {
	score, err := r.upsertTx(ctx, lowID, highID, increment)
	if err != nil && isUniqueViolation(err) {
		score, err = r.upsertTx(ctx, lowID, highID, increment)
	}
	if err != nil {
		return nil, fmt.Errorf("upsert confusion (%d,%d): %w", lowID, highID, err)
	}
	return score, nil
}

func (r *ConfusionRepository) upsertTx(ctx context.Context, lowID, highID int64, increment float64) (*entity.ConfusionScore, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rec, err := tx.ConfusionScore.Query().
		Where(entconfusion.WordLowIDEQ(lowID), entconfusion.WordHighIDEQ(highID)).
		Only(ctx)
	switch {
	case err == nil:
		rec, err = tx.ConfusionScore.UpdateOne(rec).
			SetWeight(entity.ClampConfusionWeight(rec.Weight + increment)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update weight: %w", err)
		}
	case entdb.IsNotFound(err):
		rec, err = tx.ConfusionScore.Create().
			SetWordLowID(lowID).
			SetWordHighID(highID).
			SetWeight(entity.ClampConfusionWeight(increment)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create score: %w", err)
		}
	default:
		return nil, fmt.Errorf("query score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return mapEntConfusionScore(rec), nil
}

func (r *ConfusionRepository) ListForWord(ctx context.Context, wordID int64) ([]*entity.ConfusionScore, error) {
	recs, err := r.client.ConfusionScore.Query().
		Where(entconfusion.Or(
			entconfusion.WordLowIDEQ(wordID),
			entconfusion.WordHighIDEQ(wordID),
		)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list confusion scores for %d: %w", wordID, err)
	}
	return lo.Map(recs, func(rec *entdb.ConfusionScore, _ int) *entity.ConfusionScore {
		return mapEntConfusionScore(rec)
	}), nil
}

func (r *ConfusionRepository) DeleteBelow(ctx context.Context, threshold float64) (int, error) {
	n, err := r.client.ConfusionScore.Delete().
		Where(entconfusion.WeightLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete confusion scores below %v: %w", threshold, err)
	}
	return n, nil
}

func mapEntConfusionScore(rec *entdb.ConfusionScore) *entity.ConfusionScore {
	return &entity.ConfusionScore{
		ID:         int64(rec.ID),
		WordLowID:  rec.WordLowID,
		WordHighID: rec.WordHighID,
		Weight:     rec.Weight,
	}
}
