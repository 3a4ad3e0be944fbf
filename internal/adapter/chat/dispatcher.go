package chat

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingobot/internal/entity"
	"github.com/eslsoft/lingobot/internal/usecase"
)

// Dispatcher routes inbound chat events to the quiz engine and lesson
// navigator and turns their results into render instructions. Domain errors
// are converted to friendly replies here; a returned error always means the
// surface itself failed to deliver, never that a learner did something wrong.
type Dispatcher struct {
	quiz    usecase.QuizUsecase
	lessons usecase.LessonUsecase
	surface Surface
	logger  *logrus.Logger
}

func NewDispatcher(quiz usecase.QuizUsecase, lessons usecase.LessonUsecase, surface Surface, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{quiz: quiz, lessons: lessons, surface: surface, logger: logger}
}

func (d *Dispatcher) Dispatch(ctx context.Context, ev entity.Event) error {
	switch ev.Kind {
	case entity.EventCommand:
		return d.handleCommand(ctx, ev.Learner, ev.Payload)
	case entity.EventCallback:
		return d.handleCallback(ctx, ev.Learner, ev.Payload)
	default:
		return d.surface.Toast(ctx, ev.Learner, msgTryAgain, false)
	}
}

func (d *Dispatcher) handleCommand(ctx context.Context, learner int64, command string) error {
	// Any command abandons whatever run the learner had open.
	d.quiz.Abandon(learner)

	switch command {
	case "/start", "/menu":
		return d.surface.Render(ctx, learner, msgMenu, menuKeyboard())
	case "/learn_words":
		return d.surface.Render(ctx, learner, msgModeMenu, modeMenuKeyboard(entity.DrillVocabulary))
	case "/grammar_game":
		return d.surface.Render(ctx, learner, msgModeMenu, modeMenuKeyboard(entity.DrillGrammar))
	case "/play_synonyms":
		return d.surface.Render(ctx, learner, msgModeMenu, modeMenuKeyboard(entity.DrillRelations))
	case "/lessons":
		return d.showLessonList(ctx, learner)
	default:
		return d.surface.Toast(ctx, learner, msgTryAgain, false)
	}
}

func (d *Dispatcher) handleCallback(ctx context.Context, learner int64, payload string) error {
	cb := parseCallback(payload)
	switch cb.kind {
	case cbStartEndless:
		return d.startQuiz(ctx, learner, cb.drill, entity.QuizMode{Kind: entity.ModeEndless})
	case cbStartLesson:
		return d.startQuiz(ctx, learner, cb.drill, entity.QuizMode{Kind: entity.ModeLesson, Lesson: cb.lesson})
	case cbStartExam:
		return d.startQuiz(ctx, learner, cb.drill, entity.QuizMode{Kind: entity.ModeExam, Level: cb.level})
	case cbLessonPicker:
		return d.showLessonPicker(ctx, learner, cb.drill)
	case cbAnswer:
		return d.submitAnswer(ctx, learner, cb.option)
	case cbLessonList:
		return d.showLessonList(ctx, learner)
	case cbOpenLesson:
		v, err := d.lessons.Open(ctx, learner, cb.lesson)
		return d.renderPage(ctx, learner, v, err)
	case cbOpenPage:
		v, err := d.lessons.OpenPage(ctx, learner, cb.page)
		return d.renderPage(ctx, learner, v, err)
	case cbPageNext:
		v, err := d.lessons.Next(ctx, learner)
		return d.renderPage(ctx, learner, v, err)
	case cbPagePrev:
		v, err := d.lessons.Prev(ctx, learner)
		return d.renderPage(ctx, learner, v, err)
	default:
		d.logger.WithField("payload", payload).Debug("unknown callback payload")
		return d.surface.Toast(ctx, learner, msgTryAgain, false)
	}
}

func (d *Dispatcher) startQuiz(ctx context.Context, learner int64, drill entity.DrillKind, mode entity.QuizMode) error {
	q, err := d.quiz.Start(ctx, learner, drill, mode)
	if err != nil {
		return d.replyError(ctx, learner, err)
	}
	return d.surface.Render(ctx, learner, q.Prompt, questionKeyboard(q))
}

func (d *Dispatcher) submitAnswer(ctx context.Context, learner int64, option int) error {
	out, err := d.quiz.Submit(ctx, learner, option)
	if err != nil {
		return d.replyError(ctx, learner, err)
	}

	if out.Correct {
		if err := d.surface.Toast(ctx, learner, msgCorrect, false); err != nil {
			return err
		}
	} else {
		if err := d.surface.Toast(ctx, learner, wrongAnswerText(out.CorrectAnswer), true); err != nil {
			return err
		}
	}

	if out.Sentence != nil {
		if err := d.surface.Render(ctx, learner, sentenceResultText(out.Sentence), nil); err != nil {
			return err
		}
	}
	if out.Done {
		return d.surface.Render(ctx, learner, summaryText(out.Summary), menuKeyboard())
	}
	return d.surface.Render(ctx, learner, out.Next.Prompt, questionKeyboard(out.Next))
}

func (d *Dispatcher) showLessonPicker(ctx context.Context, learner int64, drill entity.DrillKind) error {
	lessons, err := d.lessons.Lessons(ctx)
	if err != nil {
		return d.replyError(ctx, learner, err)
	}
	return d.surface.Render(ctx, learner, msgPickLesson, lessonPickerKeyboard(drill, lessons))
}

func (d *Dispatcher) showLessonList(ctx context.Context, learner int64) error {
	lessons, err := d.lessons.Lessons(ctx)
	if err != nil {
		return d.replyError(ctx, learner, err)
	}
	return d.surface.Render(ctx, learner, msgLessonList, lessonListKeyboard(lessons))
}

func (d *Dispatcher) renderPage(ctx context.Context, learner int64, v *usecase.PageView, err error) error {
	if err != nil {
		return d.replyError(ctx, learner, err)
	}
	return d.surface.Render(ctx, learner, pageText(v), pageKeyboard(v))
}

// replyError converts a domain error into a learner-visible reply. Unexpected
// errors are logged and answered with a generic retry toast so no storage
// detail ever reaches the chat.
func (d *Dispatcher) replyError(ctx context.Context, learner int64, err error) error {
	switch {
	case errors.Is(err, entity.ErrNoContent):
		return d.surface.Render(ctx, learner, msgNoContent, menuKeyboard())
	case errors.Is(err, entity.ErrNoActiveSession):
		return d.surface.Toast(ctx, learner, msgNoSession, false)
	case errors.Is(err, entity.ErrInvalidSelection):
		return d.surface.Toast(ctx, learner, msgTryAgain, false)
	case errors.Is(err, entity.ErrLessonNotFound):
		return d.surface.Toast(ctx, learner, msgNoLesson, false)
	case errors.Is(err, entity.ErrPageNotFound):
		return d.surface.Toast(ctx, learner, msgNoPage, false)
	default:
		d.logger.WithField("learner", learner).WithError(err).Error("event handling failed")
		return d.surface.Toast(ctx, learner, msgTryAgain, false)
	}
}
