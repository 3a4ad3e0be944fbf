package usecase

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingobot/internal/entity"
)

// in-memory content repository with deterministic selection order
type mockContentRepo struct {
	words     []*entity.Word
	sentences []*entity.Sentence
	pairs     []*entity.RelationPair
	pages     []*entity.Page
}

func (m *mockContentRepo) RandomWord(ctx context.Context, lesson int32) (*entity.Word, error) {
	for _, w := range m.words {
		if lesson == 0 || w.Lesson == lesson {
			return w, nil
		}
	}
	return nil, nil
}

func (m *mockContentRepo) RandomWords(ctx context.Context, excludeIDs []int64, lesson int32, count int) ([]*entity.Word, error) {
	excluded := make(map[int64]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	var out []*entity.Word
	for _, w := range m.words {
		if excluded[w.ID] || (lesson != 0 && w.Lesson != lesson) {
			continue
		}
		out = append(out, w)
		if len(out) == count {
			break
		}
	}
	return out, nil
}

func (m *mockContentRepo) FindWordByText(ctx context.Context, text string) (*entity.Word, error) {
	for _, w := range m.words {
		if entity.AnswersEqual(w.English, text) || entity.AnswersEqual(w.Russian, text) {
			return w, nil
		}
	}
	return nil, nil
}

func (m *mockContentRepo) RandomSentence(ctx context.Context, lesson int32) (*entity.Sentence, error) {
	for _, s := range m.sentences {
		if lesson == 0 || s.Lesson == lesson {
			return s, nil
		}
	}
	return nil, nil
}

func (m *mockContentRepo) RandomRelationPair(ctx context.Context) (*entity.RelationPair, error) {
	if len(m.pairs) == 0 {
		return nil, nil
	}
	return m.pairs[0], nil
}

func (m *mockContentRepo) Lessons(ctx context.Context) ([]int32, error) {
	seen := make(map[int32]bool)
	var out []int32
	for _, p := range m.pages {
		if !seen[p.Lesson] {
			seen[p.Lesson] = true
			out = append(out, p.Lesson)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (m *mockContentRepo) Pages(ctx context.Context, lesson int32) ([]*entity.Page, error) {
	var out []*entity.Page
	for _, p := range m.pages {
		if p.Lesson == lesson {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (m *mockContentRepo) PageByID(ctx context.Context, id int64) (*entity.Page, error) {
	for _, p := range m.pages {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// in-memory confusion repository, clamping like the real one
type mockConfusionRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[[2]int64]*entity.ConfusionScore
}

func newMockConfusionRepo() *mockConfusionRepo {
	return &mockConfusionRepo{rows: make(map[[2]int64]*entity.ConfusionScore)}
}

func (m *mockConfusionRepo) Upsert(ctx context.Context, lowID, highID int64, increment float64) (*entity.ConfusionScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]int64{lowID, highID}
	row, ok := m.rows[key]
	if !ok {
		m.nextID++
		row = &entity.ConfusionScore{ID: m.nextID, WordLowID: lowID, WordHighID: highID}
		m.rows[key] = row
	}
	row.Weight = entity.ClampConfusionWeight(row.Weight + increment)
	return row, nil
}

func (m *mockConfusionRepo) ListForWord(ctx context.Context, wordID int64) ([]*entity.ConfusionScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.ConfusionScore
	for _, row := range m.rows {
		if row.Touches(wordID) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockConfusionRepo) DeleteBelow(ctx context.Context, threshold float64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for key, row := range m.rows {
		if row.Weight <= threshold {
			delete(m.rows, key)
			n++
		}
	}
	return n, nil
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testWords() []*entity.Word {
	return []*entity.Word{
		{ID: 1, English: "cat", Russian: "кошка", Lesson: 1},
		{ID: 2, English: "dog", Russian: "собака", Lesson: 1, Alternates: []string{"пёс"}},
		{ID: 3, English: "house", Russian: "дом", Lesson: 2},
		{ID: 4, English: "water", Russian: "вода", Lesson: 2},
		{ID: 5, English: "bread", Russian: "хлеб", Lesson: 3},
	}
}

func newTestQuiz(t *testing.T, content *mockContentRepo, confusion *mockConfusionRepo, cfg QuizConfig) (QuizUsecase, *SessionStore) {
	t.Helper()
	sessions := NewSessionStore()
	gen := NewOptionGenerator(rand.New(rand.NewSource(1)))
	uc := NewQuizUsecase(content, NewConfusionUsecase(confusion), sessions, gen, cfg, testLogger())
	return uc, sessions
}

func TestStart_EmptyCorpus(t *testing.T) {
	uc, _ := newTestQuiz(t, &mockContentRepo{}, newMockConfusionRepo(), QuizConfig{})
	if _, err := uc.Start(context.Background(), 7, entity.DrillVocabulary, entity.QuizMode{}); !errors.Is(err, entity.ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestSubmit_WithoutSession(t *testing.T) {
	uc, _ := newTestQuiz(t, &mockContentRepo{words: testWords()}, newMockConfusionRepo(), QuizConfig{})
	if _, err := uc.Submit(context.Background(), 7, 0); !errors.Is(err, entity.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestSubmit_OutOfRangeLeavesSessionOpen(t *testing.T) {
	uc, sessions := newTestQuiz(t, &mockContentRepo{words: testWords()}, newMockConfusionRepo(), QuizConfig{})
	ctx := context.Background()

	q, err := uc.Start(ctx, 7, entity.DrillVocabulary, entity.QuizMode{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := uc.Submit(ctx, 7, len(q.Options)); !errors.Is(err, entity.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}
	if _, err := uc.Submit(ctx, 7, -1); !errors.Is(err, entity.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}

	s, ok := sessions.Quiz(7)
	if !ok || s.State != entity.StateAwaitingAnswer {
		t.Fatalf("session should still await an answer, got %+v ok=%v", s, ok)
	}
	out, err := uc.Submit(ctx, 7, s.CorrectIdx)
	if err != nil {
		t.Fatalf("submit after rejected inputs: %v", err)
	}
	if !out.Correct {
		t.Fatalf("expected the correct option to score")
	}
}

func TestVocabulary_ExamCompletesAfterOneAnswer(t *testing.T) {
	uc, sessions := newTestQuiz(t, &mockContentRepo{words: testWords()}, newMockConfusionRepo(), QuizConfig{})
	ctx := context.Background()

	if _, err := uc.Start(ctx, 7, entity.DrillVocabulary, entity.QuizMode{Kind: entity.ModeExam, Level: 1}); err != nil {
		t.Fatalf("start: %v", err)
	}
	s, _ := sessions.Quiz(7)
	out, err := uc.Submit(ctx, 7, s.CorrectIdx)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Done || out.Next != nil {
		t.Fatalf("exam must complete after one answer, got done=%v next=%v", out.Done, out.Next)
	}
	if out.Summary == nil || out.Summary.Asked != 1 || out.Summary.Correct != 1 {
		t.Fatalf("unexpected summary: %+v", out.Summary)
	}
	if _, ok := sessions.Quiz(7); ok {
		t.Fatalf("completed session must be evicted")
	}
}

func TestVocabulary_LessonCompletesAtConfiguredLength(t *testing.T) {
	uc, sessions := newTestQuiz(t, &mockContentRepo{words: testWords()}, newMockConfusionRepo(), QuizConfig{LessonLength: 3})
	ctx := context.Background()

	if _, err := uc.Start(ctx, 7, entity.DrillVocabulary, entity.QuizMode{Kind: entity.ModeLesson, Lesson: 1}); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 2; i++ {
		s, _ := sessions.Quiz(7)
		out, err := uc.Submit(ctx, 7, s.CorrectIdx)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if out.Done {
			t.Fatalf("run finished early at round %d", i+1)
		}
		if out.Next == nil {
			t.Fatalf("expected a follow-up question at round %d", i+1)
		}
	}
	s, _ := sessions.Quiz(7)
	out, err := uc.Submit(ctx, 7, s.CorrectIdx)
	if err != nil {
		t.Fatalf("final submit: %v", err)
	}
	if !out.Done {
		t.Fatalf("lesson run must complete after 3 rounds")
	}
	if out.Summary.Asked != 3 || out.Summary.Correct != 3 {
		t.Fatalf("unexpected summary: %+v", out.Summary)
	}
}

func TestVocabulary_LessonScopeRestrictsWords(t *testing.T) {
	uc, sessions := newTestQuiz(t, &mockContentRepo{words: testWords()}, newMockConfusionRepo(), QuizConfig{LessonLength: 2})
	ctx := context.Background()

	if _, err := uc.Start(ctx, 7, entity.DrillVocabulary, entity.QuizMode{Kind: entity.ModeLesson, Lesson: 2}); err != nil {
		t.Fatalf("start: %v", err)
	}
	s, _ := sessions.Quiz(7)
	if s.Word.Lesson != 2 {
		t.Fatalf("lesson run drew word from lesson %d", s.Word.Lesson)
	}
}

func TestVocabulary_EndlessKeepsServing(t *testing.T) {
	uc, sessions := newTestQuiz(t, &mockContentRepo{words: testWords()}, newMockConfusionRepo(), QuizConfig{LessonLength: 2})
	ctx := context.Background()

	if _, err := uc.Start(ctx, 7, entity.DrillVocabulary, entity.QuizMode{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 10; i++ {
		s, _ := sessions.Quiz(7)
		out, err := uc.Submit(ctx, 7, s.CorrectIdx)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if out.Done {
			t.Fatalf("endless run must not complete on its own")
		}
		if out.Next == nil {
			t.Fatalf("expected a follow-up question")
		}
	}
}

func TestVocabulary_WrongAnswerRecordsConfusion(t *testing.T) {
	confusion := newMockConfusionRepo()
	uc, sessions := newTestQuiz(t, &mockContentRepo{words: testWords()}, confusion, QuizConfig{})
	ctx := context.Background()

	if _, err := uc.Start(ctx, 7, entity.DrillVocabulary, entity.QuizMode{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	s, _ := sessions.Quiz(7)
	wrong := -1
	for i := range s.Options {
		if i != s.CorrectIdx && s.OptionWordIDs[i] != 0 {
			wrong = i
			break
		}
	}
	if wrong < 0 {
		t.Fatalf("no word-backed distractor among options %v", s.Options)
	}
	correctID, chosenID := s.Word.ID, s.OptionWordIDs[wrong]

	out, err := uc.Submit(ctx, 7, wrong)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Correct {
		t.Fatalf("wrong pick scored as correct")
	}

	low, high := entity.CanonicalPair(correctID, chosenID)
	row, ok := confusion.rows[[2]int64{low, high}]
	if !ok {
		t.Fatalf("expected confusion row for pair (%d,%d)", low, high)
	}
	if row.Weight != entity.ConfusionIncrement {
		t.Fatalf("expected weight %v, got %v", entity.ConfusionIncrement, row.Weight)
	}
}

func TestVocabulary_AlternatesNeverAppearAsDistractors(t *testing.T) {
	words := testWords()
	// Another word whose Russian text equals an accepted alternate of "dog".
	words = append(words, &entity.Word{ID: 6, English: "hound", Russian: "пёс"})
	content := &mockContentRepo{words: words}
	uc, _ := newTestQuiz(t, content, newMockConfusionRepo(), QuizConfig{})
	ctx := context.Background()

	d := &vocabularyDrill{u: uc.(*quizUsecase)}
	s := &entity.QuizSession{Drill: entity.DrillVocabulary, Word: words[1], Direction: entity.DirectionEnToRu}
	q, err := d.question(ctx, s)
	if err != nil {
		t.Fatalf("question: %v", err)
	}
	for _, opt := range q.Options {
		if entity.AnswersEqual(opt, "пёс") {
			t.Fatalf("alternate translation offered as distractor: %v", q.Options)
		}
	}
}

func TestRelations_AnswerOnOppositeSide(t *testing.T) {
	words := testWords()
	pair := &entity.RelationPair{Word: *words[0], Type: entity.RelationSynonym, Related: *words[1]}
	uc, sessions := newTestQuiz(t, &mockContentRepo{words: words, pairs: []*entity.RelationPair{pair}}, newMockConfusionRepo(), QuizConfig{})
	ctx := context.Background()

	q, err := uc.Start(ctx, 7, entity.DrillRelations, entity.QuizMode{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	s, _ := sessions.Quiz(7)
	want := pair.Related.Side(!s.ShowRussian)
	if got := q.Options[s.CorrectIdx]; !entity.AnswersEqual(got, want) {
		t.Fatalf("correct option %q, want %q", got, want)
	}

	out, err := uc.Submit(ctx, 7, s.CorrectIdx)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Correct {
		t.Fatalf("expected correct outcome")
	}
}

func TestGrammar_ExamAssemblesOneSentence(t *testing.T) {
	content := &mockContentRepo{
		words: testWords(),
		sentences: []*entity.Sentence{
			{ID: 1, Text: "Я вижу кошку", Translation: "i see a cat"},
		},
	}
	uc, sessions := newTestQuiz(t, content, newMockConfusionRepo(), QuizConfig{})
	ctx := context.Background()

	if _, err := uc.Start(ctx, 7, entity.DrillGrammar, entity.QuizMode{Kind: entity.ModeExam}); err != nil {
		t.Fatalf("start: %v", err)
	}

	var out *Outcome
	for i := 0; i < 4; i++ {
		s, ok := sessions.Quiz(7)
		if !ok {
			t.Fatalf("session gone before sentence finished (token %d)", i)
		}
		var err error
		out, err = uc.Submit(ctx, 7, s.CorrectIdx)
		if err != nil {
			t.Fatalf("submit token %d: %v", i, err)
		}
	}
	if !out.Done {
		t.Fatalf("exam must complete after one assembled sentence")
	}
	if out.Sentence == nil {
		t.Fatalf("expected a sentence result")
	}
	if len(out.Sentence.Diffs) != 0 {
		t.Fatalf("all-correct assembly must diff clean, got %v", out.Sentence.Diffs)
	}
	if out.Sentence.Assembled != "i see a cat" {
		t.Fatalf("unexpected assembly %q", out.Sentence.Assembled)
	}
	if out.Summary.Asked != 4 || out.Summary.Correct != 4 {
		t.Fatalf("unexpected summary: %+v", out.Summary)
	}
}

func TestGrammar_WrongTokenStillPlacedAndDiffed(t *testing.T) {
	content := &mockContentRepo{
		words: testWords(),
		sentences: []*entity.Sentence{
			{ID: 1, Text: "Это дом", Translation: "this house"},
		},
	}
	uc, sessions := newTestQuiz(t, content, newMockConfusionRepo(), QuizConfig{})
	ctx := context.Background()

	if _, err := uc.Start(ctx, 7, entity.DrillGrammar, entity.QuizMode{Kind: entity.ModeExam}); err != nil {
		t.Fatalf("start: %v", err)
	}

	// First token wrong on purpose, second correct.
	s, _ := sessions.Quiz(7)
	wrong := (s.CorrectIdx + 1) % len(s.Options)
	wrongText := entity.NormalizeAnswer(s.Options[wrong])
	out, err := uc.Submit(ctx, 7, wrong)
	if err != nil {
		t.Fatalf("submit wrong token: %v", err)
	}
	if out.Correct || out.Done {
		t.Fatalf("wrong token mid-sentence: correct=%v done=%v", out.Correct, out.Done)
	}

	s, _ = sessions.Quiz(7)
	out, err = uc.Submit(ctx, 7, s.CorrectIdx)
	if err != nil {
		t.Fatalf("submit second token: %v", err)
	}
	if !out.Done || out.Sentence == nil {
		t.Fatalf("expected completed sentence result")
	}
	if len(out.Sentence.Diffs) != 1 {
		t.Fatalf("expected exactly one diff, got %v", out.Sentence.Diffs)
	}
	d := out.Sentence.Diffs[0]
	if d.Position != 1 || d.Got != wrongText || d.Expected != "this" {
		t.Fatalf("unexpected diff %+v", d)
	}
}

func TestAbandon_DropsSession(t *testing.T) {
	uc, _ := newTestQuiz(t, &mockContentRepo{words: testWords()}, newMockConfusionRepo(), QuizConfig{})
	ctx := context.Background()

	if _, err := uc.Start(ctx, 7, entity.DrillVocabulary, entity.QuizMode{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	uc.Abandon(7)
	if _, err := uc.Submit(ctx, 7, 0); !errors.Is(err, entity.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession after abandon, got %v", err)
	}
}

func TestQuiz_LearnersAreIsolated(t *testing.T) {
	uc, sessions := newTestQuiz(t, &mockContentRepo{words: testWords()}, newMockConfusionRepo(), QuizConfig{})
	ctx := context.Background()

	if _, err := uc.Start(ctx, 1, entity.DrillVocabulary, entity.QuizMode{}); err != nil {
		t.Fatalf("start learner 1: %v", err)
	}
	if _, err := uc.Start(ctx, 2, entity.DrillVocabulary, entity.QuizMode{}); err != nil {
		t.Fatalf("start learner 2: %v", err)
	}

	uc.Abandon(2)
	s1, ok := sessions.Quiz(1)
	if !ok {
		t.Fatalf("learner 1 session dropped by learner 2 abandon")
	}
	if _, err := uc.Submit(ctx, 1, s1.CorrectIdx); err != nil {
		t.Fatalf("submit learner 1: %v", err)
	}
	if _, err := uc.Submit(ctx, 2, 0); !errors.Is(err, entity.ErrNoActiveSession) {
		t.Fatalf("expected learner 2 to have no session, got %v", err)
	}
}
