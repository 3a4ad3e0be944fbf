package entity

// Confusion weight bounds. A score never leaves this range no matter how
// many times a pair is confused.
const (
	ConfusionMinWeight = 0.01
	ConfusionMaxWeight = 0.99

	// ConfusionIncrement is the default weight bump per recorded confusion.
	ConfusionIncrement = 0.05
)

// ConfusionScore is an undirected pairwise score between two words a learner
// has mistaken for each other. The pair is stored canonically with the lower
// word id first so that (A,B) and (B,A) resolve to the same row.
type ConfusionScore struct {
	ID         int64   `json:"id"`
	WordLowID  int64   `json:"word_low_id"`
	WordHighID int64   `json:"word_high_id"`
	Weight     float64 `json:"weight"`
}

// Touches reports whether the score involves the given word on either side.
func (c *ConfusionScore) Touches(wordID int64) bool {
	return c.WordLowID == wordID || c.WordHighID == wordID
}

// Other returns the opposite endpoint of the pair relative to wordID.
func (c *ConfusionScore) Other(wordID int64) int64 {
	if c.WordLowID == wordID {
		return c.WordHighID
	}
	return c.WordLowID
}

// CanonicalPair orders two word ids lower-first.
func CanonicalPair(a, b int64) (low, high int64) {
	if a > b {
		return b, a
	}
	return a, b
}

// ClampConfusionWeight bounds a weight into the allowed range.
func ClampConfusionWeight(w float64) float64 {
	if w < ConfusionMinWeight {
		return ConfusionMinWeight
	}
	if w > ConfusionMaxWeight {
		return ConfusionMaxWeight
	}
	return w
}
