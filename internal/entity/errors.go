package entity

import "errors"

// Domain errors. Adapters convert these into user-visible chat replies;
// nothing below this layer ever reaches the chat surface unformatted.
var (
	ErrNoContent        = errors.New("no content available")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrNoActiveSession  = errors.New("no active session")
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrPageNotFound     = errors.New("page not found")
)
