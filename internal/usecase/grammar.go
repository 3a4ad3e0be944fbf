package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/eslsoft/lingobot/internal/entity"
)

// grammarDrill assembles a sentence translation token by token. Every submit
// places the chosen token, right or wrong; the sentence has a natural end
// when all reference tokens are placed, at which point a position-aligned
// diff against the reference translation is reported.
type grammarDrill struct {
	u *quizUsecase
}

func (d *grammarDrill) draw(ctx context.Context, s *entity.QuizSession) (bool, error) {
	sent, err := d.u.content.RandomSentence(ctx, lessonScope(s.Mode))
	if err != nil {
		return false, fmt.Errorf("random sentence: %w", err)
	}
	if sent == nil || len(sent.TranslationTokens()) == 0 {
		return false, nil
	}
	s.Sentence = sent
	s.Cursor = 0
	s.PickedTokens = nil
	return true, nil
}

func (d *grammarDrill) question(ctx context.Context, s *entity.QuizSession) (*Question, error) {
	tokens := s.Sentence.TranslationTokens()
	correct := Candidate{Text: tokens[s.Cursor]}

	words, err := d.u.content.RandomWords(ctx, nil, 0, d.u.cfg.Distractors*3)
	if err != nil {
		return nil, fmt.Errorf("random distractor words: %w", err)
	}
	// Token options are plain text; WordID stays 0 on purpose so wrong picks
	// here never pollute the word-confusion metric.
	pool := make([]Candidate, 0, len(words))
	for _, w := range words {
		pool = append(pool, Candidate{Text: entity.NormalizeAnswer(w.English)})
	}

	options, correctIdx := d.u.gen.Generate(correct, pool, d.u.cfg.Distractors, nil)
	setOptions(s, options, correctIdx)

	var prompt string
	if s.Cursor == 0 {
		prompt = fmt.Sprintf("Переведите предложение:\n%s", s.Sentence.Text)
	} else {
		prompt = fmt.Sprintf("Ваш перевод: %s\nПереводите фразу «%s»",
			strings.Join(s.PickedTokens, " "), s.Sentence.Text)
	}
	return &Question{Drill: s.Drill, Prompt: prompt, Options: s.Options}, nil
}

func (d *grammarDrill) submit(ctx context.Context, learner int64, s *entity.QuizSession, selected int) (*Outcome, error) {
	tokens := s.Sentence.TranslationTokens()
	target := tokens[s.Cursor]
	chosen := s.Options[selected]
	correct := entity.AnswersEqual(chosen, target)

	s.Asked++
	if correct {
		s.CorrectCount++
	}
	s.PickedTokens = append(s.PickedTokens, entity.NormalizeAnswer(chosen))
	s.Cursor++

	out := &Outcome{Correct: correct, CorrectAnswer: target}
	if s.Cursor < len(tokens) {
		q, err := d.question(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("build next token question: %w", err)
		}
		out.Next = q
		return out, nil
	}

	// Sentence finished: report the diff, then either stop or move on.
	s.Rounds++
	out.Sentence = &SentenceResult{
		Source:    s.Sentence.Text,
		Reference: s.Sentence.Translation,
		Assembled: strings.Join(s.PickedTokens, " "),
		Diffs:     entity.DiffTokens(s.PickedTokens, tokens),
	}
	if d.u.runFinished(s) {
		return d.u.finish(learner, s, out), nil
	}

	found, err := d.draw(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("draw next sentence: %w", err)
	}
	if !found {
		return d.u.finish(learner, s, out), nil
	}
	q, err := d.question(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("build next question: %w", err)
	}
	out.Next = q
	return out, nil
}
