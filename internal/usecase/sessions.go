package usecase

import (
	"sync"

	"github.com/eslsoft/lingobot/internal/entity"
)

// SessionStore keeps transient per-learner state, created lazily and evicted
// on completion. Each learner owns at most one flow at a time: starting a
// quiz discards a lesson cursor and vice versa, which is how implicit
// abandonment works. Events for one learner are handled in receipt order, so
// the store only guards the map itself; the state objects it hands out are
// never shared between learners.
type SessionStore struct {
	mu sync.Mutex
	m  map[int64]*learnerState
}

type learnerState struct {
	quiz   *entity.QuizSession
	lesson *entity.LessonCursor
}

func NewSessionStore() *SessionStore {
	return &SessionStore{m: make(map[int64]*learnerState)}
}

// StartQuiz installs a fresh quiz session for the learner, discarding any
// prior quiz or lesson state.
func (s *SessionStore) StartQuiz(learner int64, sess *entity.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[learner] = &learnerState{quiz: sess}
}

// Quiz returns the learner's active quiz session, if any.
func (s *SessionStore) Quiz(learner int64) (*entity.QuizSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.m[learner]
	if !ok || st.quiz == nil {
		return nil, false
	}
	return st.quiz, true
}

// StartLesson installs a lesson cursor for the learner, discarding any prior
// quiz or lesson state.
func (s *SessionStore) StartLesson(learner int64, cur *entity.LessonCursor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[learner] = &learnerState{lesson: cur}
}

// LessonCursor returns the learner's lesson cursor, if any.
func (s *SessionStore) LessonCursor(learner int64) (*entity.LessonCursor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.m[learner]
	if !ok || st.lesson == nil {
		return nil, false
	}
	return st.lesson, true
}

// Clear drops all state for the learner.
func (s *SessionStore) Clear(learner int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, learner)
}
