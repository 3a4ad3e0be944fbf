package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/eslsoft/lingobot/internal/entity"
)

func testPages() []*entity.Page {
	return []*entity.Page{
		{ID: 1, Lesson: 1, Number: 1, Name: "Intro"},
		{ID: 2, Lesson: 1, Number: 2, Name: "Vocabulary"},
		{ID: 3, Lesson: 2, Number: 1, Name: "Grammar"},
		{ID: 4, Lesson: 3, Number: 1, Name: "Review"},
		{ID: 5, Lesson: 3, Number: 2, Name: "Test"},
	}
}

func newTestLessons(pages []*entity.Page) (LessonUsecase, *SessionStore) {
	sessions := NewSessionStore()
	return NewLessonUsecase(&mockContentRepo{pages: pages}, sessions), sessions
}

func TestLessons_EmptyCorpus(t *testing.T) {
	uc, _ := newTestLessons(nil)
	if _, err := uc.Lessons(context.Background()); !errors.Is(err, entity.ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestLessons_OrderedDistinct(t *testing.T) {
	uc, _ := newTestLessons(testPages())
	lessons, err := uc.Lessons(context.Background())
	if err != nil {
		t.Fatalf("lessons: %v", err)
	}
	want := []int32{1, 2, 3}
	if len(lessons) != len(want) {
		t.Fatalf("expected %v, got %v", want, lessons)
	}
	for i := range want {
		if lessons[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, lessons)
		}
	}
}

func TestOpen_UnknownLesson(t *testing.T) {
	uc, _ := newTestLessons(testPages())
	if _, err := uc.Open(context.Background(), 7, 99); !errors.Is(err, entity.ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
}

func TestOpen_FirstPage(t *testing.T) {
	uc, _ := newTestLessons(testPages())
	v, err := uc.Open(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if v.Page.ID != 1 || v.PageCount != 2 {
		t.Fatalf("unexpected view %+v", v)
	}
	if v.HasPrev {
		t.Fatalf("first page of first lesson must not offer prev")
	}
	if !v.HasNext {
		t.Fatalf("expected a next page")
	}
}

func TestNavigation_CrossesLessonBoundaries(t *testing.T) {
	uc, _ := newTestLessons(testPages())
	ctx := context.Background()

	if _, err := uc.Open(ctx, 7, 1); err != nil {
		t.Fatalf("open: %v", err)
	}

	v, err := uc.Next(ctx, 7)
	if err != nil || v.Page.ID != 2 {
		t.Fatalf("expected page 2, got %+v err=%v", v, err)
	}
	v, err = uc.Next(ctx, 7)
	if err != nil || v.Page.ID != 3 {
		t.Fatalf("expected jump to lesson 2 page, got %+v err=%v", v, err)
	}
	v, err = uc.Prev(ctx, 7)
	if err != nil || v.Page.ID != 2 {
		t.Fatalf("expected jump back to last page of lesson 1, got %+v err=%v", v, err)
	}
}

func TestNavigation_TerminalPagesAreNoOps(t *testing.T) {
	uc, _ := newTestLessons(testPages())
	ctx := context.Background()

	if _, err := uc.Open(ctx, 7, 1); err != nil {
		t.Fatalf("open: %v", err)
	}
	v, err := uc.Prev(ctx, 7)
	if err != nil || v.Page.ID != 1 {
		t.Fatalf("prev at the very beginning must re-render page 1, got %+v err=%v", v, err)
	}

	if _, err := uc.Open(ctx, 7, 3); err != nil {
		t.Fatalf("open lesson 3: %v", err)
	}
	if _, err := uc.Next(ctx, 7); err != nil {
		t.Fatalf("next: %v", err)
	}
	v, err = uc.Next(ctx, 7)
	if err != nil || v.Page.ID != 5 {
		t.Fatalf("next at the very end must re-render page 5, got %+v err=%v", v, err)
	}
	if v.HasNext {
		t.Fatalf("last page of last lesson must not offer next")
	}
}

func TestOpenPage_RestoresPosition(t *testing.T) {
	uc, sessions := newTestLessons(testPages())
	ctx := context.Background()

	v, err := uc.OpenPage(ctx, 7, 5)
	if err != nil {
		t.Fatalf("open page: %v", err)
	}
	if v.Page.ID != 5 || v.PageCount != 2 {
		t.Fatalf("unexpected view %+v", v)
	}
	cur, ok := sessions.LessonCursor(7)
	if !ok || cur.Lesson != 3 || cur.PageIdx != 1 {
		t.Fatalf("cursor not positioned on opened page: %+v", cur)
	}

	if _, err := uc.OpenPage(ctx, 7, 99); !errors.Is(err, entity.ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}

func TestNavigation_WithoutCursor(t *testing.T) {
	uc, _ := newTestLessons(testPages())
	if _, err := uc.Next(context.Background(), 7); !errors.Is(err, entity.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}
