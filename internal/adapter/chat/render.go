package chat

import (
	"fmt"
	"strings"

	"github.com/eslsoft/lingobot/internal/entity"
	"github.com/eslsoft/lingobot/internal/usecase"
)

// User-facing strings. The learner-visible language of the product is Russian.
const (
	msgMenu       = "Привет! Выберите режим тренировки:"
	msgModeMenu   = "Выберите режим:"
	msgPickLesson = "Выберите урок:"
	msgLessonList = "Доступные уроки:"
	msgNoContent  = "Пока нет материалов для этого режима. Загляните позже!"
	msgNoSession  = "Активной тренировки нет. Начните новую через /menu."
	msgNoLesson   = "Такой урок не найден."
	msgNoPage     = "Такая страница не найдена."
	msgTryAgain   = "Не получилось обработать нажатие. Попробуйте ещё раз."
	msgCorrect    = "Верно!"
)

const keyboardWidth = 2

// grid lays buttons out in rows of keyboardWidth, the layout the original
// keyboards used.
func grid(buttons []Button) [][]Button {
	var rows [][]Button
	for len(buttons) > 0 {
		n := keyboardWidth
		if len(buttons) < n {
			n = len(buttons)
		}
		rows = append(rows, buttons[:n])
		buttons = buttons[n:]
	}
	return rows
}

func menuKeyboard() [][]Button {
	return [][]Button{
		{{Label: "Учить слова", Payload: "wl_sd"}, {Label: "Игра с грамматикой", Payload: "gw_sd"}},
		{{Label: "Синонимы и антонимы", Payload: "sa_sd"}, {Label: "Уроки", Payload: "lesson_list"}},
	}
}

func modeMenuKeyboard(drill entity.DrillKind) [][]Button {
	return [][]Button{
		{{Label: "Обычный режим", Payload: fmt.Sprintf("%s_sd", drill)}},
		{{Label: "По уроку", Payload: fmt.Sprintf("%s_st", drill)}},
		{{Label: "Экзамен", Payload: fmt.Sprintf("%s_se_1", drill)}},
	}
}

func lessonPickerKeyboard(drill entity.DrillKind, lessons []int32) [][]Button {
	buttons := make([]Button, 0, len(lessons))
	for _, n := range lessons {
		buttons = append(buttons, Button{Label: fmt.Sprintf("Урок %d", n), Payload: startLessonPayload(drill, n)})
	}
	return grid(buttons)
}

func lessonListKeyboard(lessons []int32) [][]Button {
	buttons := make([]Button, 0, len(lessons))
	for _, n := range lessons {
		buttons = append(buttons, Button{Label: fmt.Sprintf("Урок %d", n), Payload: openLessonPayload(n)})
	}
	return grid(buttons)
}

func questionKeyboard(q *usecase.Question) [][]Button {
	buttons := make([]Button, 0, len(q.Options))
	for i, opt := range q.Options {
		buttons = append(buttons, Button{Label: opt, Payload: answerPayload(q.Drill, i)})
	}
	return grid(buttons)
}

// pageText renders a lesson page. The [content:N] marker carries the page's
// message reference; the bridge substitutes it with the referenced content.
func pageText(v *usecase.PageView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Урок %d. %s\n", v.Page.Lesson, v.Page.Name)
	fmt.Fprintf(&b, "Страница %d из %d", v.Page.Number, v.PageCount)
	if v.Page.MessageRef != 0 {
		fmt.Fprintf(&b, "\n\n[content:%d]", v.Page.MessageRef)
	}
	return b.String()
}

func pageKeyboard(v *usecase.PageView) [][]Button {
	var nav []Button
	if v.HasPrev {
		nav = append(nav, Button{Label: "<< Назад", Payload: "page_prev"})
	}
	if v.HasNext {
		nav = append(nav, Button{Label: "Вперед >>", Payload: "page_next"})
	}
	rows := [][]Button{}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows,
		[]Button{{Label: "Тренировка лексики", Payload: startLessonPayload(entity.DrillVocabulary, v.Page.Lesson)}},
		[]Button{{Label: "Тренировка грамматики", Payload: startLessonPayload(entity.DrillGrammar, v.Page.Lesson)}},
	)
	return rows
}

func sentenceResultText(r *usecase.SentenceResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Предложение: %s\n", r.Source)
	fmt.Fprintf(&b, "Ваш перевод: %s\n", r.Assembled)
	if len(r.Diffs) == 0 {
		b.WriteString("Всё верно!")
		return b.String()
	}
	fmt.Fprintf(&b, "Правильный перевод: %s\n", r.Reference)
	b.WriteString("Ошибки:\n")
	for _, d := range r.Diffs {
		fmt.Fprintf(&b, "  %d: «%s» вместо «%s»\n", d.Position, d.Got, d.Expected)
	}
	return strings.TrimRight(b.String(), "\n")
}

func summaryText(s *usecase.Summary) string {
	return fmt.Sprintf("Тренировка завершена!\nПравильных ответов: %d из %d", s.Correct, s.Asked)
}

func wrongAnswerText(correct string) string {
	return fmt.Sprintf("Неверно. Правильный ответ: %s", correct)
}
