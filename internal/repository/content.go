package repository

import (
	"context"

	"github.com/eslsoft/lingobot/internal/entity"
)

// ContentRepository defines read access to the study corpus: words,
// sentences, word relations and lesson pages. Random selectors return
// (nil, nil) when the scope holds no rows; callers translate that into
// entity.ErrNoContent at the usecase boundary.
//
// A lesson scope of 0 means "no scope" (draw from the whole corpus).
type ContentRepository interface {
	RandomWord(ctx context.Context, lesson int32) (*entity.Word, error)
	RandomWords(ctx context.Context, excludeIDs []int64, lesson int32, count int) ([]*entity.Word, error)
	FindWordByText(ctx context.Context, text string) (*entity.Word, error)

	RandomSentence(ctx context.Context, lesson int32) (*entity.Sentence, error)
	RandomRelationPair(ctx context.Context) (*entity.RelationPair, error)

	Lessons(ctx context.Context) ([]int32, error)
	Pages(ctx context.Context, lesson int32) ([]*entity.Page, error)
	PageByID(ctx context.Context, id int64) (*entity.Page, error)
}

// ContentWriter covers the seeding path used by the import command. The quiz
// engine itself never writes study content.
type ContentWriter interface {
	CreateWords(ctx context.Context, words []*entity.Word) (int, error)
	CreateSentences(ctx context.Context, sentences []*entity.Sentence) (int, error)
	CreatePages(ctx context.Context, pages []*entity.Page) (int, error)
	CreateRelations(ctx context.Context, relations []*entity.RelationPair) (int, error)
}
