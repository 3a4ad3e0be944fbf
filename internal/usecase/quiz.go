package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingobot/internal/entity"
	"github.com/eslsoft/lingobot/internal/repository"
)

// QuizConfig tunes the generic quiz engine.
type QuizConfig struct {
	// Distractors is the number of wrong options offered next to the
	// correct answer.
	Distractors int
	// LessonLength is how many items a lesson-scoped run asks before it
	// completes. Endless runs ignore it.
	LessonLength int
}

// Question is one rendered ask cycle: a prompt plus the shuffled options the
// chat adapter turns into a keyboard.
type Question struct {
	Drill   entity.DrillKind
	Prompt  string
	Options []string
}

// SentenceResult reports one assembled sentence of the grammar drill.
type SentenceResult struct {
	Source    string
	Reference string
	Assembled string
	Diffs     []entity.TokenDiff
}

// Summary closes a completed run.
type Summary struct {
	Asked   int
	Correct int
}

// Outcome is the engine's reply to a submitted answer.
type Outcome struct {
	Correct       bool
	CorrectAnswer string
	Done          bool
	Next          *Question       // next ask, nil when Done
	Sentence      *SentenceResult // grammar: set whenever a sentence was just finished
	Summary       *Summary        // set when Done
}

// QuizUsecase drives the ask/answer/score/advance cycle for all three drills.
// One engine, one small policy object per drill.
type QuizUsecase interface {
	// Start resets the learner's state and opens a new run. Returns
	// entity.ErrNoContent when the requested scope holds nothing to study.
	Start(ctx context.Context, learner int64, drill entity.DrillKind, mode entity.QuizMode) (*Question, error)
	// Submit scores the selected option. Out-of-range selections fail with
	// entity.ErrInvalidSelection and leave the session unchanged; submitting
	// without an open run fails with entity.ErrNoActiveSession.
	Submit(ctx context.Context, learner int64, selected int) (*Outcome, error)
	// Abandon drops the learner's state without error, used when the
	// learner switches to a different flow mid-run.
	Abandon(learner int64)
}

// drill is the per-mode policy plugged into the engine: how to fetch the
// next item, how to phrase it, and how to score a pick.
type drill interface {
	draw(ctx context.Context, s *entity.QuizSession) (bool, error)
	question(ctx context.Context, s *entity.QuizSession) (*Question, error)
	submit(ctx context.Context, learner int64, s *entity.QuizSession, selected int) (*Outcome, error)
}

type quizUsecase struct {
	content   repository.ContentRepository
	confusion ConfusionUsecase
	sessions  *SessionStore
	gen       *OptionGenerator
	cfg       QuizConfig
	logger    *logrus.Logger

	drills map[entity.DrillKind]drill
}

func NewQuizUsecase(
	content repository.ContentRepository,
	confusion ConfusionUsecase,
	sessions *SessionStore,
	gen *OptionGenerator,
	cfg QuizConfig,
	logger *logrus.Logger,
) QuizUsecase {
	if cfg.Distractors <= 0 {
		cfg.Distractors = 3
	}
	if cfg.LessonLength <= 0 {
		cfg.LessonLength = 10
	}
	u := &quizUsecase{
		content:   content,
		confusion: confusion,
		sessions:  sessions,
		gen:       gen,
		cfg:       cfg,
		logger:    logger,
	}
	u.drills = map[entity.DrillKind]drill{
		entity.DrillVocabulary: &vocabularyDrill{u},
		entity.DrillRelations:  &relationsDrill{u},
		entity.DrillGrammar:    &grammarDrill{u},
	}
	return u
}

func (u *quizUsecase) Start(ctx context.Context, learner int64, kind entity.DrillKind, mode entity.QuizMode) (*Question, error) {
	d, ok := u.drills[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown drill %q", entity.ErrInvalidSelection, kind)
	}

	s := &entity.QuizSession{Drill: kind, Mode: mode}
	found, err := d.draw(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("draw first item: %w", err)
	}
	if !found {
		return nil, entity.ErrNoContent
	}

	q, err := d.question(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("build question: %w", err)
	}
	s.State = entity.StateAwaitingAnswer
	u.sessions.StartQuiz(learner, s)
	return q, nil
}

func (u *quizUsecase) Submit(ctx context.Context, learner int64, selected int) (*Outcome, error) {
	s, ok := u.sessions.Quiz(learner)
	if !ok || s.State != entity.StateAwaitingAnswer {
		return nil, entity.ErrNoActiveSession
	}
	if selected < 0 || selected >= len(s.Options) {
		return nil, entity.ErrInvalidSelection
	}
	return u.drills[s.Drill].submit(ctx, learner, s, selected)
}

func (u *quizUsecase) Abandon(learner int64) {
	u.sessions.Clear(learner)
}

// advanceChoice is the shared scoring/advancement path of the single-answer
// drills (vocabulary, relations). correctWordID feeds the confusion metric
// when the learner picks a word-backed wrong option.
func (u *quizUsecase) advanceChoice(ctx context.Context, d drill, learner int64, s *entity.QuizSession, selected int, correctWordID int64) (*Outcome, error) {
	chosen := s.Options[selected]
	correctAnswer := s.Options[s.CorrectIdx]
	correct := entity.AnswersEqual(chosen, correctAnswer)

	s.Asked++
	s.Rounds++
	if correct {
		s.CorrectCount++
	} else if chosenID := s.OptionWordIDs[selected]; chosenID != 0 {
		if err := u.confusion.Record(ctx, correctWordID, chosenID); err != nil {
			u.logger.WithError(err).Warn("confusion metric update failed")
		}
	}

	out := &Outcome{Correct: correct, CorrectAnswer: correctAnswer}
	if u.runFinished(s) {
		return u.finish(learner, s, out), nil
	}

	found, err := d.draw(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("draw next item: %w", err)
	}
	if !found {
		return u.finish(learner, s, out), nil
	}
	q, err := d.question(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("build next question: %w", err)
	}
	out.Next = q
	return out, nil
}

// runFinished applies the advancement policy after a completed round.
func (u *quizUsecase) runFinished(s *entity.QuizSession) bool {
	switch s.Mode.Kind {
	case entity.ModeExam:
		return true
	case entity.ModeLesson:
		return s.Rounds >= u.cfg.LessonLength
	default:
		return false
	}
}

func (u *quizUsecase) finish(learner int64, s *entity.QuizSession, out *Outcome) *Outcome {
	s.State = entity.StateComplete
	u.sessions.Clear(learner)
	out.Done = true
	out.Summary = &Summary{Asked: s.Asked, Correct: s.CorrectCount}
	return out
}

// lessonScope maps a quiz mode to the content scope passed to the repository.
func lessonScope(mode entity.QuizMode) int32 {
	if mode.Kind == entity.ModeLesson {
		return mode.Lesson
	}
	return 0
}

func setOptions(s *entity.QuizSession, options []Candidate, correctIdx int) {
	s.Options = make([]string, len(options))
	s.OptionWordIDs = make([]int64, len(options))
	for i, opt := range options {
		s.Options[i] = opt.Text
		s.OptionWordIDs[i] = opt.WordID
	}
	s.CorrectIdx = correctIdx
}
