package usecase

import (
	"context"
	"fmt"

	"github.com/eslsoft/lingobot/internal/entity"
	"github.com/eslsoft/lingobot/internal/repository"
)

// PageView is a resolved navigation target. The navigator only computes
// where the learner stands; resolving Page.MessageRef into actual content is
// the chat surface's job.
type PageView struct {
	Page      *entity.Page
	PageCount int // pages in the current lesson
	HasPrev   bool
	HasNext   bool
}

// LessonUsecase pages through lesson content ordered by (lesson, page).
// Forward and backward movement crosses lesson boundaries; the first page of
// the first lesson and the last page of the last lesson are terminal.
type LessonUsecase interface {
	Lessons(ctx context.Context) ([]int32, error)
	Open(ctx context.Context, learner int64, lesson int32) (*PageView, error)
	OpenPage(ctx context.Context, learner int64, pageID int64) (*PageView, error)
	Next(ctx context.Context, learner int64) (*PageView, error)
	Prev(ctx context.Context, learner int64) (*PageView, error)
}

type lessonUsecase struct {
	content  repository.ContentRepository
	sessions *SessionStore
}

func NewLessonUsecase(content repository.ContentRepository, sessions *SessionStore) LessonUsecase {
	return &lessonUsecase{content: content, sessions: sessions}
}

func (u *lessonUsecase) Lessons(ctx context.Context) ([]int32, error) {
	lessons, err := u.content.Lessons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	if len(lessons) == 0 {
		return nil, entity.ErrNoContent
	}
	return lessons, nil
}

func (u *lessonUsecase) Open(ctx context.Context, learner int64, lesson int32) (*PageView, error) {
	pages, err := u.content.Pages(ctx, lesson)
	if err != nil {
		return nil, fmt.Errorf("pages of lesson %d: %w", lesson, err)
	}
	if len(pages) == 0 {
		return nil, entity.ErrLessonNotFound
	}
	u.sessions.StartLesson(learner, &entity.LessonCursor{Lesson: lesson, PageIdx: 0})
	return u.view(ctx, lesson, 0, pages)
}

func (u *lessonUsecase) OpenPage(ctx context.Context, learner int64, pageID int64) (*PageView, error) {
	page, err := u.content.PageByID(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", pageID, err)
	}
	if page == nil {
		return nil, entity.ErrPageNotFound
	}
	pages, err := u.content.Pages(ctx, page.Lesson)
	if err != nil {
		return nil, fmt.Errorf("pages of lesson %d: %w", page.Lesson, err)
	}
	idx := 0
	for i, p := range pages {
		if p.ID == page.ID {
			idx = i
			break
		}
	}
	u.sessions.StartLesson(learner, &entity.LessonCursor{Lesson: page.Lesson, PageIdx: idx})
	return u.view(ctx, page.Lesson, idx, pages)
}

func (u *lessonUsecase) Next(ctx context.Context, learner int64) (*PageView, error) {
	return u.move(ctx, learner, +1)
}

func (u *lessonUsecase) Prev(ctx context.Context, learner int64) (*PageView, error) {
	return u.move(ctx, learner, -1)
}

func (u *lessonUsecase) move(ctx context.Context, learner int64, dir int) (*PageView, error) {
	cur, ok := u.sessions.LessonCursor(learner)
	if !ok {
		return nil, entity.ErrNoActiveSession
	}
	pages, err := u.content.Pages(ctx, cur.Lesson)
	if err != nil {
		return nil, fmt.Errorf("pages of lesson %d: %w", cur.Lesson, err)
	}
	if len(pages) == 0 {
		return nil, entity.ErrLessonNotFound
	}

	next := cur.PageIdx + dir
	if next >= 0 && next < len(pages) {
		cur.PageIdx = next
		return u.view(ctx, cur.Lesson, next, pages)
	}

	// Crossing a lesson boundary: jump to the first page of the following
	// lesson (or the last page of the preceding one). At the corpus edge the
	// move is a no-op and the current page is re-rendered.
	adj, adjPages, err := u.adjacentLesson(ctx, cur.Lesson, dir)
	if err != nil {
		return nil, err
	}
	if adjPages == nil {
		return u.view(ctx, cur.Lesson, cur.PageIdx, pages)
	}
	idx := 0
	if dir < 0 {
		idx = len(adjPages) - 1
	}
	cur.Lesson = adj
	cur.PageIdx = idx
	return u.view(ctx, adj, idx, adjPages)
}

// adjacentLesson finds the nearest lesson in the given direction that has at
// least one page. Returns nil pages when no such lesson exists.
func (u *lessonUsecase) adjacentLesson(ctx context.Context, lesson int32, dir int) (int32, []*entity.Page, error) {
	lessons, err := u.content.Lessons(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("list lessons: %w", err)
	}
	pos := -1
	for i, l := range lessons {
		if l == lesson {
			pos = i
			break
		}
	}
	if pos < 0 {
		return 0, nil, entity.ErrLessonNotFound
	}
	for i := pos + dir; i >= 0 && i < len(lessons); i += dir {
		pages, err := u.content.Pages(ctx, lessons[i])
		if err != nil {
			return 0, nil, fmt.Errorf("pages of lesson %d: %w", lessons[i], err)
		}
		if len(pages) > 0 {
			return lessons[i], pages, nil
		}
	}
	return 0, nil, nil
}

func (u *lessonUsecase) view(ctx context.Context, lesson int32, idx int, pages []*entity.Page) (*PageView, error) {
	hasPrev := idx > 0
	hasNext := idx < len(pages)-1
	if !hasPrev || !hasNext {
		lessons, err := u.content.Lessons(ctx)
		if err != nil {
			return nil, fmt.Errorf("list lessons: %w", err)
		}
		pos := -1
		for i, l := range lessons {
			if l == lesson {
				pos = i
				break
			}
		}
		if pos >= 0 {
			hasPrev = hasPrev || pos > 0
			hasNext = hasNext || pos < len(lessons)-1
		}
	}
	return &PageView{Page: pages[idx], PageCount: len(pages), HasPrev: hasPrev, HasNext: hasNext}, nil
}
