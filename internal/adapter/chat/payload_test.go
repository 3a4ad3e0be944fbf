package chat

import (
	"testing"

	"github.com/eslsoft/lingobot/internal/entity"
)

func TestParseCallback(t *testing.T) {
	cases := []struct {
		payload string
		want    callback
	}{
		{"wl_sd", callback{kind: cbStartEndless, drill: entity.DrillVocabulary}},
		{"gw_sd", callback{kind: cbStartEndless, drill: entity.DrillGrammar}},
		{"sa_sd", callback{kind: cbStartEndless, drill: entity.DrillRelations}},
		{"wl_st", callback{kind: cbLessonPicker, drill: entity.DrillVocabulary}},
		{"wl_st_3", callback{kind: cbStartLesson, drill: entity.DrillVocabulary, lesson: 3}},
		{"gw_se_1", callback{kind: cbStartExam, drill: entity.DrillGrammar, level: 1}},
		{"sa_ans_2", callback{kind: cbAnswer, drill: entity.DrillRelations, option: 2}},
		{"lesson_list", callback{kind: cbLessonList}},
		{"lesson_7", callback{kind: cbOpenLesson, lesson: 7}},
		{"page_12", callback{kind: cbOpenPage, page: 12}},
		{"page_next", callback{kind: cbPageNext}},
		{"page_prev", callback{kind: cbPagePrev}},
	}
	for _, c := range cases {
		if got := parseCallback(c.payload); got != c.want {
			t.Fatalf("parse %q: got %+v, want %+v", c.payload, got, c.want)
		}
	}
}

func TestParseCallback_Unknown(t *testing.T) {
	for _, payload := range []string{
		"", "wl", "wl_", "wl_xx", "wl_st_abc", "wl_ans", "wl_ans_-1", "wl_ans_x",
		"zz_sd", "lesson", "lesson_abc", "page", "page_abc_1", "wl_sd_extra",
	} {
		if got := parseCallback(payload); got.kind != cbUnknown {
			t.Fatalf("parse %q: expected unknown, got %+v", payload, got)
		}
	}
}
