package repository

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/eslsoft/lingobot/internal/entity"
	entdb "github.com/eslsoft/lingobot/internal/infrastructure/database/ent"
	entpage "github.com/eslsoft/lingobot/internal/infrastructure/database/ent/page"
	entsentence "github.com/eslsoft/lingobot/internal/infrastructure/database/ent/sentence"
	entword "github.com/eslsoft/lingobot/internal/infrastructure/database/ent/word"
	"github.com/eslsoft/lingobot/internal/repository"
)

type ContentRepository struct {
	client *entdb.Client
}

// NewContentRepository constructs an ent-backed content repository.
func NewContentRepository(client *entdb.Client) repository.ContentRepository {
	return &ContentRepository{client: client}
}

func (r *ContentRepository) RandomWord(ctx context.Context, lesson int32) (*entity.Word, error) {
	q := r.client.Word.Query()
	if lesson != 0 {
		q = q.Where(entword.LessonEQ(lesson))
	}
	rec, err := q.Order(randomOrder).First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query random word: %w", err)
	}
	return mapEntWord(rec), nil
}

func (r *ContentRepository) RandomWords(ctx context.Context, excludeIDs []int64, lesson int32, count int) ([]*entity.Word, error) {
	if count <= 0 {
		return nil, nil
	}
	q := r.client.Word.Query()
	if len(excludeIDs) > 0 {
		ids := lo.Map(excludeIDs, func(id int64, _ int) int { return int(id) })
		q = q.Where(entword.IDNotIn(ids...))
	}
	if lesson != 0 {
		q = q.Where(entword.LessonEQ(lesson))
	}
	recs, err := q.Order(randomOrder).Limit(count).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query random words: %w", err)
	}
	return lo.Map(recs, func(rec *entdb.Word, _ int) *entity.Word { return mapEntWord(rec) }), nil
}

func (r *ContentRepository) FindWordByText(ctx context.Context, text string) (*entity.Word, error) {
	rec, err := r.client.Word.Query().
		Where(entword.Or(entword.EnglishEqualFold(text), entword.RussianEqualFold(text))).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find word by text: %w", err)
	}
	return mapEntWord(rec), nil
}

func (r *ContentRepository) RandomSentence(ctx context.Context, lesson int32) (*entity.Sentence, error) {
	q := r.client.Sentence.Query()
	if lesson != 0 {
		q = q.Where(entsentence.LessonEQ(lesson))
	}
	rec, err := q.Order(randomOrder).First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query random sentence: %w", err)
	}
	return &entity.Sentence{
		ID:          int64(rec.ID),
		Text:        rec.Text,
		Translation: rec.Translation,
		Lesson:      rec.Lesson,
	}, nil
}

func (r *ContentRepository) RandomRelationPair(ctx context.Context) (*entity.RelationPair, error) {
	rel, err := r.client.Relation.Query().Order(randomOrder).First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query random relation: %w", err)
	}
	relType, ok := entity.ParseRelationType(rel.RelationType)
	if !ok {
		return nil, fmt.Errorf("relation %d: unsupported relation type %q", rel.ID, rel.RelationType)
	}

	words, err := r.client.Word.Query().
		Where(entword.IDIn(int(rel.SourceWordID), int(rel.TargetWordID))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load relation endpoints: %w", err)
	}
	source, sok := lo.Find(words, func(w *entdb.Word) bool { return int64(w.ID) == rel.SourceWordID })
	target, tok := lo.Find(words, func(w *entdb.Word) bool { return int64(w.ID) == rel.TargetWordID })
	if !sok || !tok {
		return nil, fmt.Errorf("relation %d references missing words", rel.ID)
	}
	return &entity.RelationPair{
		Word:    *mapEntWord(source),
		Type:    relType,
		Related: *mapEntWord(target),
	}, nil
}

func (r *ContentRepository) Lessons(ctx context.Context) ([]int32, error) {
	recs, err := r.client.Page.Query().Order(entdb.Asc(entpage.FieldLesson)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}
	return lo.Uniq(lo.Map(recs, func(p *entdb.Page, _ int) int32 { return p.Lesson })), nil
}

func (r *ContentRepository) Pages(ctx context.Context, lesson int32) ([]*entity.Page, error) {
	recs, err := r.client.Page.Query().
		Where(entpage.LessonEQ(lesson)).
		Order(entdb.Asc(entpage.FieldNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pages of lesson %d: %w", lesson, err)
	}
	return lo.Map(recs, func(rec *entdb.Page, _ int) *entity.Page { return mapEntPage(rec) }), nil
}

func (r *ContentRepository) PageByID(ctx context.Context, id int64) (*entity.Page, error) {
	rec, err := r.client.Page.Get(ctx, int(id))
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get page %d: %w", id, err)
	}
	return mapEntPage(rec), nil
}

func mapEntWord(rec *entdb.Word) *entity.Word {
	return &entity.Word{
		ID:         int64(rec.ID),
		English:    rec.English,
		Russian:    rec.Russian,
		Alternates: rec.Alternates,
		Lesson:     rec.Lesson,
	}
}

func mapEntPage(rec *entdb.Page) *entity.Page {
	return &entity.Page{
		ID:         int64(rec.ID),
		Lesson:     rec.Lesson,
		Number:     rec.Number,
		MessageRef: rec.MessageRef,
		Name:       rec.Name,
	}
}
