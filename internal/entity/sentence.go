package entity

// Sentence is a source-language sentence with its reference translation,
// used by the grammar word-ordering drill.
type Sentence struct {
	ID          int64  `json:"id"`
	Text        string `json:"text"`        // source language (Russian)
	Translation string `json:"translation"` // reference translation (English)
	Lesson      int32  `json:"lesson,omitempty"`
}

// TranslationTokens returns the normalized tokens of the reference
// translation in order. The grammar drill walks these one by one.
func (s *Sentence) TranslationTokens() []string {
	return TokenizeAnswer(s.Translation)
}
