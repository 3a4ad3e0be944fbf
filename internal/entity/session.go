package entity

// DrillKind selects one of the three learning drills.
type DrillKind string

const (
	DrillVocabulary DrillKind = "wl" // word translation
	DrillGrammar    DrillKind = "gw" // sentence word-ordering
	DrillRelations  DrillKind = "sa" // synonym / antonym matching
)

// ModeKind is the advancement policy of a quiz session.
type ModeKind int

const (
	// ModeEndless streams random items until the learner leaves.
	ModeEndless ModeKind = iota
	// ModeLesson restricts items to one lesson and completes after a fixed
	// question count.
	ModeLesson
	// ModeExam asks exactly one scored unit, then completes.
	ModeExam
)

// QuizMode pairs an advancement policy with its argument.
type QuizMode struct {
	Kind   ModeKind
	Lesson int32 // ModeLesson only
	Level  int32 // ModeExam only
}

// SessionState tracks where a quiz session is in its ask/answer cycle.
type SessionState int

const (
	StateIdle SessionState = iota
	StateAwaitingAnswer
	StateComplete
)

// Direction is the translation direction of a vocabulary question.
type Direction int

const (
	DirectionEnToRu Direction = iota // shown English, answer Russian
	DirectionRuToEn                  // shown Russian, answer English
)

// QuizSession is the transient per-learner state of one drill run. It lives
// in process memory only and is discarded on completion or when the learner
// starts a different flow.
type QuizSession struct {
	Drill DrillKind
	Mode  QuizMode
	State SessionState

	// Current item; exactly one of these is set depending on the drill.
	Word     *Word
	Pair     *RelationPair
	Sentence *Sentence

	Direction   Direction // vocabulary
	ShowRussian bool      // relations: language of the displayed word

	Options       []string
	OptionWordIDs []int64 // parallel to Options; 0 for options not backed by a word
	CorrectIdx    int

	Asked        int      // answered questions (tokens, for grammar)
	CorrectCount int
	Rounds       int      // completed items: words answered, sentences assembled
	Cursor       int      // grammar: index of the token being placed
	PickedTokens []string // grammar: tokens placed so far
}

// TokenDiff is one position-aligned mismatch between an assembled
// translation and the reference translation.
type TokenDiff struct {
	Position int    `json:"position"` // 1-based
	Got      string `json:"got"`
	Expected string `json:"expected"`
}

// DiffTokens compares two token sequences position by position and returns a
// mismatch triple for every position where they differ. Missing positions
// compare against the empty string.
func DiffTokens(got, expected []string) []TokenDiff {
	n := len(got)
	if len(expected) > n {
		n = len(expected)
	}
	var diffs []TokenDiff
	for i := 0; i < n; i++ {
		var g, e string
		if i < len(got) {
			g = got[i]
		}
		if i < len(expected) {
			e = expected[i]
		}
		if g != e {
			diffs = append(diffs, TokenDiff{Position: i + 1, Got: g, Expected: e})
		}
	}
	return diffs
}

// LessonCursor is the transient per-learner position inside the lesson
// browsing flow.
type LessonCursor struct {
	Lesson  int32
	PageIdx int // index into the lesson's ordered pages
}
