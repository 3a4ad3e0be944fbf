package chat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eslsoft/lingobot/internal/entity"
)

// Callback payloads follow the "<domain>_<mode>_<args...>" convention and are
// routed on the first segment. Domains are the three drill tags plus lesson
// and page navigation:
//
//	wl_sd            start endless vocabulary run
//	wl_st            show the lesson picker for vocabulary
//	wl_st_3          start vocabulary run scoped to lesson 3
//	wl_se_1          start level-1 vocabulary exam
//	wl_ans_2         answer: option index 2
//	lesson_list      show the lesson list
//	lesson_3         open lesson 3
//	page_12          open page 12
//	page_next        advance to the next page
//	page_prev        retreat to the previous page
//
// gw and sa payloads mirror wl. Everything else is unknown and answered with
// a generic retry toast.
type callbackKind int

const (
	cbUnknown callbackKind = iota
	cbStartEndless
	cbLessonPicker
	cbStartLesson
	cbStartExam
	cbAnswer
	cbLessonList
	cbOpenLesson
	cbOpenPage
	cbPageNext
	cbPagePrev
)

// callback is the parsed form of an inbound payload. Parsing happens exactly
// once at the dispatch boundary; handlers never look at raw strings.
type callback struct {
	kind   callbackKind
	drill  entity.DrillKind
	lesson int32
	level  int32
	option int
	page   int64
}

func parseCallback(payload string) callback {
	parts := strings.Split(payload, "_")
	switch parts[0] {
	case string(entity.DrillVocabulary), string(entity.DrillGrammar), string(entity.DrillRelations):
		return parseDrillCallback(entity.DrillKind(parts[0]), parts[1:])
	case "lesson":
		if len(parts) == 2 {
			if parts[1] == "list" {
				return callback{kind: cbLessonList}
			}
			if n, err := strconv.ParseInt(parts[1], 10, 32); err == nil {
				return callback{kind: cbOpenLesson, lesson: int32(n)}
			}
		}
	case "page":
		if len(parts) == 2 {
			switch parts[1] {
			case "next":
				return callback{kind: cbPageNext}
			case "prev":
				return callback{kind: cbPagePrev}
			}
			if id, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
				return callback{kind: cbOpenPage, page: id}
			}
		}
	}
	return callback{kind: cbUnknown}
}

func parseDrillCallback(drill entity.DrillKind, args []string) callback {
	if len(args) == 0 {
		return callback{kind: cbUnknown}
	}
	switch args[0] {
	case "sd":
		if len(args) == 1 {
			return callback{kind: cbStartEndless, drill: drill}
		}
	case "st":
		if len(args) == 1 {
			return callback{kind: cbLessonPicker, drill: drill}
		}
		if len(args) == 2 {
			if n, err := strconv.ParseInt(args[1], 10, 32); err == nil {
				return callback{kind: cbStartLesson, drill: drill, lesson: int32(n)}
			}
		}
	case "se":
		if len(args) == 2 {
			if n, err := strconv.ParseInt(args[1], 10, 32); err == nil {
				return callback{kind: cbStartExam, drill: drill, level: int32(n)}
			}
		}
	case "ans":
		if len(args) == 2 {
			if n, err := strconv.Atoi(args[1]); err == nil && n >= 0 {
				return callback{kind: cbAnswer, drill: drill, option: n}
			}
		}
	}
	return callback{kind: cbUnknown}
}

func answerPayload(drill entity.DrillKind, idx int) string {
	return fmt.Sprintf("%s_ans_%d", drill, idx)
}

func startLessonPayload(drill entity.DrillKind, lesson int32) string {
	return fmt.Sprintf("%s_st_%d", drill, lesson)
}

func openLessonPayload(lesson int32) string {
	return fmt.Sprintf("lesson_%d", lesson)
}
