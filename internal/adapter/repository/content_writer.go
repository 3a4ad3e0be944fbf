package repository

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/eslsoft/lingobot/internal/entity"
	entdb "github.com/eslsoft/lingobot/internal/infrastructure/database/ent"
	"github.com/eslsoft/lingobot/internal/repository"
)

type ContentWriter struct {
	client *entdb.Client
}

// NewContentWriter constructs the seeding-side writer used by the import
// command.
func NewContentWriter(client *entdb.Client) repository.ContentWriter {
	return &ContentWriter{client: client}
}

func (w *ContentWriter) CreateWords(ctx context.Context, words []*entity.Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}
	builders := lo.Map(words, func(word *entity.Word, _ int) *entdb.WordCreate {
		alternates := word.Alternates
		if alternates == nil {
			alternates = []string{}
		}
		return w.client.Word.Create().
			SetEnglish(word.English).
			SetRussian(word.Russian).
			SetAlternates(alternates).
			SetLesson(word.Lesson)
	})
	created, err := w.client.Word.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk create words: %w", err)
	}
	return len(created), nil
}

func (w *ContentWriter) CreateSentences(ctx context.Context, sentences []*entity.Sentence) (int, error) {
	if len(sentences) == 0 {
		return 0, nil
	}
	builders := lo.Map(sentences, func(s *entity.Sentence, _ int) *entdb.SentenceCreate {
		return w.client.Sentence.Create().
			SetText(s.Text).
			SetTranslation(s.Translation).
			SetLesson(s.Lesson)
	})
	created, err := w.client.Sentence.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk create sentences: %w", err)
	}
	return len(created), nil
}

func (w *ContentWriter) CreatePages(ctx context.Context, pages []*entity.Page) (int, error) {
	if len(pages) == 0 {
		return 0, nil
	}
	builders := lo.Map(pages, func(p *entity.Page, _ int) *entdb.PageCreate {
		return w.client.Page.Create().
			SetLesson(p.Lesson).
			SetNumber(p.Number).
			SetMessageRef(p.MessageRef).
			SetName(p.Name)
	})
	created, err := w.client.Page.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk create pages: %w", err)
	}
	return len(created), nil
}

func (w *ContentWriter) CreateRelations(ctx context.Context, relations []*entity.RelationPair) (int, error) {
	if len(relations) == 0 {
		return 0, nil
	}
	builders := lo.Map(relations, func(p *entity.RelationPair, _ int) *entdb.RelationCreate {
		return w.client.Relation.Create().
			SetSourceWordID(p.Word.ID).
			SetTargetWordID(p.Related.ID).
			SetRelationType(string(p.Type))
	})
	created, err := w.client.Relation.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk create relations: %w", err)
	}
	return len(created), nil
}
