package usecase

import (
	"context"
	"fmt"

	"github.com/eslsoft/lingobot/internal/entity"
)

// relationsDrill shows a word and asks for its synonym or antonym. The
// displayed word's language is picked at random; the answer is always on the
// opposite language side.
type relationsDrill struct {
	u *quizUsecase
}

func (d *relationsDrill) draw(ctx context.Context, s *entity.QuizSession) (bool, error) {
	pair, err := d.u.content.RandomRelationPair(ctx)
	if err != nil {
		return false, fmt.Errorf("random relation pair: %w", err)
	}
	if pair == nil {
		return false, nil
	}
	s.Pair = pair
	s.ShowRussian = d.u.gen.Intn(2) == 0
	return true, nil
}

func (d *relationsDrill) question(ctx context.Context, s *entity.QuizSession) (*Question, error) {
	answerRussian := !s.ShowRussian
	correct := Candidate{Text: s.Pair.Related.Side(answerRussian), WordID: s.Pair.Related.ID}

	words, err := d.u.content.RandomWords(ctx, []int64{s.Pair.Word.ID, s.Pair.Related.ID}, 0, d.u.cfg.Distractors*3)
	if err != nil {
		return nil, fmt.Errorf("random distractor words: %w", err)
	}
	pool := make([]Candidate, 0, len(words))
	for _, w := range words {
		pool = append(pool, Candidate{Text: w.Side(answerRussian), WordID: w.ID})
	}

	bias, err := d.u.confusion.For(ctx, s.Pair.Related.ID)
	if err != nil {
		d.u.logger.WithError(err).Warn("confusion lookup failed, sampling uniformly")
		bias = nil
	}

	options, correctIdx := d.u.gen.Generate(correct, pool, d.u.cfg.Distractors, bias)
	setOptions(s, options, correctIdx)

	prompt := fmt.Sprintf("%s\nТип связи: %s\nВыберите правильное слово:",
		s.Pair.Word.Side(s.ShowRussian), relationLabel(s.Pair.Type))
	return &Question{Drill: s.Drill, Prompt: prompt, Options: s.Options}, nil
}

func (d *relationsDrill) submit(ctx context.Context, learner int64, s *entity.QuizSession, selected int) (*Outcome, error) {
	return d.u.advanceChoice(ctx, d, learner, s, selected, s.Pair.Related.ID)
}

func relationLabel(t entity.RelationType) string {
	switch t {
	case entity.RelationAntonym:
		return "антоним"
	default:
		return "синоним"
	}
}
