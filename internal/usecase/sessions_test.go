package usecase

import (
	"testing"

	"github.com/eslsoft/lingobot/internal/entity"
)

func TestSessionStore_FlowsAreExclusive(t *testing.T) {
	store := NewSessionStore()

	store.StartQuiz(1, &entity.QuizSession{Drill: entity.DrillVocabulary})
	if _, ok := store.Quiz(1); !ok {
		t.Fatalf("quiz session missing after StartQuiz")
	}

	store.StartLesson(1, &entity.LessonCursor{Lesson: 2})
	if _, ok := store.Quiz(1); ok {
		t.Fatalf("starting a lesson must discard the quiz session")
	}
	cur, ok := store.LessonCursor(1)
	if !ok || cur.Lesson != 2 {
		t.Fatalf("lesson cursor missing after StartLesson")
	}

	store.StartQuiz(1, &entity.QuizSession{Drill: entity.DrillGrammar})
	if _, ok := store.LessonCursor(1); ok {
		t.Fatalf("starting a quiz must discard the lesson cursor")
	}
}

func TestSessionStore_LearnersAreIsolated(t *testing.T) {
	store := NewSessionStore()

	store.StartQuiz(1, &entity.QuizSession{Drill: entity.DrillVocabulary})
	store.StartQuiz(2, &entity.QuizSession{Drill: entity.DrillRelations})
	store.Clear(2)

	s, ok := store.Quiz(1)
	if !ok || s.Drill != entity.DrillVocabulary {
		t.Fatalf("learner 1 state affected by learner 2: %+v ok=%v", s, ok)
	}
	if _, ok := store.Quiz(2); ok {
		t.Fatalf("learner 2 state must be gone after Clear")
	}
}
