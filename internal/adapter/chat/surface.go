package chat

import "context"

// Button is one keyboard cell: a visible label and the opaque payload the
// surface echoes back when the learner presses it.
type Button struct {
	Label   string `json:"label"`
	Payload string `json:"payload"`
}

// Surface is the outbound port to the chat transport. The bridge process
// behind it owns message delivery, edits and content-reference resolution;
// this side only emits render instructions.
type Surface interface {
	// Render replaces the learner's current view with text and a button grid.
	Render(ctx context.Context, learner int64, text string, grid [][]Button) error
	// Toast shows an ephemeral acknowledgement without replacing the view.
	Toast(ctx context.Context, learner int64, text string, emphasize bool) error
}
