package entity

// Page is one page of lesson content. The page itself carries no text: the
// MessageRef points into an external content channel that the chat surface
// resolves when rendering.
type Page struct {
	ID         int64  `json:"id"`
	Lesson     int32  `json:"lesson"`
	Number     int32  `json:"number"` // ordering within the lesson, 1-based
	MessageRef int64  `json:"message_ref"`
	Name       string `json:"name,omitempty"`
}
