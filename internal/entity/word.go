package entity

// Word is a single vocabulary entry. Word rows are reference data seeded by
// the import command and are read-only to the quiz engine.
type Word struct {
	ID         int64    `json:"id"`
	English    string   `json:"english"`
	Russian    string   `json:"russian"`
	Alternates []string `json:"alternates,omitempty"` // accepted alternate Russian translations
	Lesson     int32    `json:"lesson,omitempty"`     // 0 means the word belongs to no lesson
}

// Side returns the word text for the requested language side.
func (w *Word) Side(russian bool) string {
	if russian {
		return w.Russian
	}
	return w.English
}

// RelationType classifies an edge between two words.
type RelationType string

const (
	RelationSynonym RelationType = "synonym"
	RelationAntonym RelationType = "antonym"
)

// ParseRelationType converts an arbitrary string into a supported relation type.
func ParseRelationType(s string) (RelationType, bool) {
	switch RelationType(s) {
	case RelationSynonym:
		return RelationSynonym, true
	case RelationAntonym:
		return RelationAntonym, true
	default:
		return "", false
	}
}

// RelationPair is a directed word relation with both endpoints resolved.
type RelationPair struct {
	Word    Word         `json:"word"`
	Type    RelationType `json:"type"`
	Related Word         `json:"related"`
}
