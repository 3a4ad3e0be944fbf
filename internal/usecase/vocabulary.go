package usecase

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/eslsoft/lingobot/internal/entity"
)

// vocabularyDrill asks word translations in a random direction. Distractors
// come from the rest of the corpus, biased towards words the learner has
// confused with the current one before.
type vocabularyDrill struct {
	u *quizUsecase
}

func (d *vocabularyDrill) draw(ctx context.Context, s *entity.QuizSession) (bool, error) {
	w, err := d.u.content.RandomWord(ctx, lessonScope(s.Mode))
	if err != nil {
		return false, fmt.Errorf("random word: %w", err)
	}
	if w == nil {
		return false, nil
	}
	s.Word = w
	s.Direction = entity.Direction(d.u.gen.Intn(2))
	return true, nil
}

func (d *vocabularyDrill) question(ctx context.Context, s *entity.QuizSession) (*Question, error) {
	answerRussian := s.Direction == entity.DirectionEnToRu
	correct := Candidate{Text: s.Word.Side(answerRussian), WordID: s.Word.ID}

	words, err := d.u.content.RandomWords(ctx, []int64{s.Word.ID}, 0, d.u.cfg.Distractors*3)
	if err != nil {
		return nil, fmt.Errorf("random distractor words: %w", err)
	}

	// Alternate translations of the current word are acceptable answers,
	// never distractors.
	accepted := append([]string{correct.Text}, s.Word.Alternates...)
	pool := make([]Candidate, 0, len(words))
	for _, w := range words {
		text := w.Side(answerRussian)
		clash := lo.SomeBy(accepted, func(a string) bool { return entity.AnswersEqual(a, text) })
		if clash {
			continue
		}
		pool = append(pool, Candidate{Text: text, WordID: w.ID})
	}

	bias, err := d.u.confusion.For(ctx, s.Word.ID)
	if err != nil {
		d.u.logger.WithError(err).Warn("confusion lookup failed, sampling uniformly")
		bias = nil
	}

	options, correctIdx := d.u.gen.Generate(correct, pool, d.u.cfg.Distractors, bias)
	setOptions(s, options, correctIdx)

	var prompt string
	if s.Direction == entity.DirectionEnToRu {
		prompt = fmt.Sprintf("Слово: %s\nКакой перевод?", s.Word.English)
	} else {
		prompt = fmt.Sprintf("Перевод: %s\nАнглийское слово?", s.Word.Russian)
	}
	return &Question{Drill: s.Drill, Prompt: prompt, Options: s.Options}, nil
}

func (d *vocabularyDrill) submit(ctx context.Context, learner int64, s *entity.QuizSession, selected int) (*Outcome, error) {
	return d.u.advanceChoice(ctx, d, learner, s, selected, s.Word.ID)
}
