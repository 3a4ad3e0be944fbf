package chat

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingobot/internal/entity"
	"github.com/eslsoft/lingobot/internal/usecase"
)

type surfaceCall struct {
	method    string // "render" or "toast"
	learner   int64
	text      string
	grid      [][]Button
	emphasize bool
}

type mockSurface struct {
	calls []surfaceCall
}

func (m *mockSurface) Render(ctx context.Context, learner int64, text string, grid [][]Button) error {
	m.calls = append(m.calls, surfaceCall{method: "render", learner: learner, text: text, grid: grid})
	return nil
}

func (m *mockSurface) Toast(ctx context.Context, learner int64, text string, emphasize bool) error {
	m.calls = append(m.calls, surfaceCall{method: "toast", learner: learner, text: text, emphasize: emphasize})
	return nil
}

func (m *mockSurface) last(t *testing.T) surfaceCall {
	t.Helper()
	if len(m.calls) == 0 {
		t.Fatalf("no surface calls recorded")
	}
	return m.calls[len(m.calls)-1]
}

type mockQuizUC struct {
	started   map[int64]entity.DrillKind
	abandoned []int64
	startErr  error
	question  *usecase.Question
	outcome   *usecase.Outcome
	submitErr error
}

func newMockQuizUC() *mockQuizUC {
	return &mockQuizUC{started: make(map[int64]entity.DrillKind)}
}

func (m *mockQuizUC) Start(ctx context.Context, learner int64, drill entity.DrillKind, mode entity.QuizMode) (*usecase.Question, error) {
	if m.startErr != nil {
		return nil, m.startErr
	}
	m.started[learner] = drill
	if m.question != nil {
		return m.question, nil
	}
	return &usecase.Question{Drill: drill, Prompt: "?", Options: []string{"a", "b"}}, nil
}

func (m *mockQuizUC) Submit(ctx context.Context, learner int64, selected int) (*usecase.Outcome, error) {
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	return m.outcome, nil
}

func (m *mockQuizUC) Abandon(learner int64) {
	m.abandoned = append(m.abandoned, learner)
	delete(m.started, learner)
}

type mockLessonUC struct {
	lessons    []int32
	lessonsErr error
	view       *usecase.PageView
	viewErr    error
}

func (m *mockLessonUC) Lessons(ctx context.Context) ([]int32, error) {
	if m.lessonsErr != nil {
		return nil, m.lessonsErr
	}
	return m.lessons, nil
}

func (m *mockLessonUC) Open(ctx context.Context, learner int64, lesson int32) (*usecase.PageView, error) {
	return m.view, m.viewErr
}

func (m *mockLessonUC) OpenPage(ctx context.Context, learner int64, pageID int64) (*usecase.PageView, error) {
	return m.view, m.viewErr
}

func (m *mockLessonUC) Next(ctx context.Context, learner int64) (*usecase.PageView, error) {
	return m.view, m.viewErr
}

func (m *mockLessonUC) Prev(ctx context.Context, learner int64) (*usecase.PageView, error) {
	return m.view, m.viewErr
}

func newTestDispatcher(quiz *mockQuizUC, lessons *mockLessonUC) (*Dispatcher, *mockSurface) {
	surface := &mockSurface{}
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewDispatcher(quiz, lessons, surface, logger), surface
}

func TestDispatch_MenuCommand(t *testing.T) {
	quiz := newMockQuizUC()
	d, surface := newTestDispatcher(quiz, &mockLessonUC{})

	err := d.Dispatch(context.Background(), entity.Event{Learner: 1, Kind: entity.EventCommand, Payload: "/menu"})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	call := surface.last(t)
	if call.method != "render" || call.text != msgMenu {
		t.Fatalf("unexpected reply %+v", call)
	}
	if len(quiz.abandoned) != 1 || quiz.abandoned[0] != 1 {
		t.Fatalf("command must abandon the learner's run, got %v", quiz.abandoned)
	}
}

func TestDispatch_StartCallbackRendersQuestion(t *testing.T) {
	quiz := newMockQuizUC()
	d, surface := newTestDispatcher(quiz, &mockLessonUC{})

	err := d.Dispatch(context.Background(), entity.Event{Learner: 1, Kind: entity.EventCallback, Payload: "wl_st_3"})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if quiz.started[1] != entity.DrillVocabulary {
		t.Fatalf("expected a vocabulary run, got %v", quiz.started)
	}
	call := surface.last(t)
	if call.method != "render" || call.text != "?" {
		t.Fatalf("unexpected reply %+v", call)
	}
	if len(call.grid) != 1 || len(call.grid[0]) != 2 {
		t.Fatalf("expected a 2-wide option row, got %v", call.grid)
	}
	if call.grid[0][0].Payload != "wl_ans_0" || call.grid[0][1].Payload != "wl_ans_1" {
		t.Fatalf("unexpected option payloads %v", call.grid)
	}
}

func TestDispatch_StartWithoutContent(t *testing.T) {
	quiz := newMockQuizUC()
	quiz.startErr = entity.ErrNoContent
	d, surface := newTestDispatcher(quiz, &mockLessonUC{})

	if err := d.Dispatch(context.Background(), entity.Event{Learner: 1, Kind: entity.EventCallback, Payload: "gw_sd"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	call := surface.last(t)
	if call.method != "render" || call.text != msgNoContent {
		t.Fatalf("expected graceful no-content reply, got %+v", call)
	}
}

func TestDispatch_AnswerOutcomes(t *testing.T) {
	quiz := newMockQuizUC()
	quiz.outcome = &usecase.Outcome{
		Correct: true,
		Next:    &usecase.Question{Drill: entity.DrillVocabulary, Prompt: "next?", Options: []string{"x"}},
	}
	d, surface := newTestDispatcher(quiz, &mockLessonUC{})

	if err := d.Dispatch(context.Background(), entity.Event{Learner: 1, Kind: entity.EventCallback, Payload: "wl_ans_0"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(surface.calls) != 2 {
		t.Fatalf("expected toast + render, got %v", surface.calls)
	}
	if surface.calls[0].method != "toast" || surface.calls[0].text != msgCorrect {
		t.Fatalf("unexpected toast %+v", surface.calls[0])
	}
	if surface.calls[1].text != "next?" {
		t.Fatalf("unexpected render %+v", surface.calls[1])
	}
}

func TestDispatch_AnswerCompletedRun(t *testing.T) {
	quiz := newMockQuizUC()
	quiz.outcome = &usecase.Outcome{
		Correct:       false,
		CorrectAnswer: "dog",
		Done:          true,
		Summary:       &usecase.Summary{Asked: 3, Correct: 2},
	}
	d, surface := newTestDispatcher(quiz, &mockLessonUC{})

	if err := d.Dispatch(context.Background(), entity.Event{Learner: 1, Kind: entity.EventCallback, Payload: "wl_ans_1"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if surface.calls[0].method != "toast" || !surface.calls[0].emphasize {
		t.Fatalf("wrong answer toast must emphasize, got %+v", surface.calls[0])
	}
	last := surface.last(t)
	if last.method != "render" || last.text != summaryText(quiz.outcome.Summary) {
		t.Fatalf("expected summary render, got %+v", last)
	}
}

func TestDispatch_AnswerWithoutSession(t *testing.T) {
	quiz := newMockQuizUC()
	quiz.submitErr = entity.ErrNoActiveSession
	d, surface := newTestDispatcher(quiz, &mockLessonUC{})

	if err := d.Dispatch(context.Background(), entity.Event{Learner: 1, Kind: entity.EventCallback, Payload: "wl_ans_0"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	call := surface.last(t)
	if call.method != "toast" || call.text != msgNoSession {
		t.Fatalf("unexpected reply %+v", call)
	}
}

func TestDispatch_UnknownPayload(t *testing.T) {
	d, surface := newTestDispatcher(newMockQuizUC(), &mockLessonUC{})

	if err := d.Dispatch(context.Background(), entity.Event{Learner: 1, Kind: entity.EventCallback, Payload: "bogus_stuff"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	call := surface.last(t)
	if call.method != "toast" || call.text != msgTryAgain {
		t.Fatalf("unknown payload must answer with a retry toast, got %+v", call)
	}
}

func TestDispatch_LessonPage(t *testing.T) {
	lessons := &mockLessonUC{view: &usecase.PageView{
		Page:      &entity.Page{ID: 3, Lesson: 2, Number: 1, Name: "Грамматика", MessageRef: 17},
		PageCount: 2,
		HasNext:   true,
	}}
	d, surface := newTestDispatcher(newMockQuizUC(), lessons)

	if err := d.Dispatch(context.Background(), entity.Event{Learner: 1, Kind: entity.EventCallback, Payload: "lesson_2"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	call := surface.last(t)
	if call.method != "render" {
		t.Fatalf("expected render, got %+v", call)
	}
	if call.grid[0][0].Payload != "page_next" {
		t.Fatalf("expected next-page navigation, got %v", call.grid)
	}
}

func TestDispatch_LearnersAreIsolated(t *testing.T) {
	quiz := newMockQuizUC()
	d, _ := newTestDispatcher(quiz, &mockLessonUC{})
	ctx := context.Background()

	if err := d.Dispatch(ctx, entity.Event{Learner: 1, Kind: entity.EventCallback, Payload: "wl_sd"}); err != nil {
		t.Fatalf("dispatch learner 1: %v", err)
	}
	if err := d.Dispatch(ctx, entity.Event{Learner: 2, Kind: entity.EventCallback, Payload: "sa_sd"}); err != nil {
		t.Fatalf("dispatch learner 2: %v", err)
	}
	if quiz.started[1] != entity.DrillVocabulary || quiz.started[2] != entity.DrillRelations {
		t.Fatalf("per-learner runs mixed up: %v", quiz.started)
	}
}
