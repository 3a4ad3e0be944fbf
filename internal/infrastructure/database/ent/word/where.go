// Code generated by ent, DO NOT EDIT.

package word

import (
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldID, id))
}

// English applies equality check predicate on the "english" field. It's identical to EnglishEQ.
func English(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldEnglish, v))
}

// Russian applies equality check predicate on the "russian" field. It's identical to RussianEQ.
func Russian(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldRussian, v))
}

// Lesson applies equality check predicate on the "lesson" field. It's identical to LessonEQ.
func Lesson(v int32) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldLesson, v))
}

// EnglishEQ applies the EQ predicate on the "english" field.
func EnglishEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldEnglish, v))
}

// EnglishNEQ applies the NEQ predicate on the "english" field.
func EnglishNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldEnglish, v))
}

// EnglishIn applies the In predicate on the "english" field.
func EnglishIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldEnglish, vs...))
}

// EnglishNotIn applies the NotIn predicate on the "english" field.
func EnglishNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldEnglish, vs...))
}

// EnglishGT applies the GT predicate on the "english" field.
func EnglishGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldEnglish, v))
}

// EnglishGTE applies the GTE predicate on the "english" field.
func EnglishGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldEnglish, v))
}

// EnglishLT applies the LT predicate on the "english" field.
func EnglishLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldEnglish, v))
}

// EnglishLTE applies the LTE predicate on the "english" field.
func EnglishLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldEnglish, v))
}

// EnglishContains applies the Contains predicate on the "english" field.
func EnglishContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldEnglish, v))
}

// EnglishHasPrefix applies the HasPrefix predicate on the "english" field.
func EnglishHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldEnglish, v))
}

// EnglishHasSuffix applies the HasSuffix predicate on the "english" field.
func EnglishHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldEnglish, v))
}

// EnglishEqualFold applies the EqualFold predicate on the "english" field.
func EnglishEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldEnglish, v))
}

// EnglishContainsFold applies the ContainsFold predicate on the "english" field.
func EnglishContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldEnglish, v))
}

// RussianEQ applies the EQ predicate on the "russian" field.
func RussianEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldRussian, v))
}

// RussianNEQ applies the NEQ predicate on the "russian" field.
func RussianNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldRussian, v))
}

// RussianIn applies the In predicate on the "russian" field.
func RussianIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldRussian, vs...))
}

// RussianNotIn applies the NotIn predicate on the "russian" field.
func RussianNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldRussian, vs...))
}

// RussianGT applies the GT predicate on the "russian" field.
func RussianGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldRussian, v))
}

// RussianGTE applies the GTE predicate on the "russian" field.
func RussianGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldRussian, v))
}

// RussianLT applies the LT predicate on the "russian" field.
func RussianLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldRussian, v))
}

// RussianLTE applies the LTE predicate on the "russian" field.
func RussianLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldRussian, v))
}

// RussianContains applies the Contains predicate on the "russian" field.
func RussianContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldRussian, v))
}

// RussianHasPrefix applies the HasPrefix predicate on the "russian" field.
func RussianHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldRussian, v))
}

// RussianHasSuffix applies the HasSuffix predicate on the "russian" field.
func RussianHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldRussian, v))
}

// RussianEqualFold applies the EqualFold predicate on the "russian" field.
func RussianEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldRussian, v))
}

// RussianContainsFold applies the ContainsFold predicate on the "russian" field.
func RussianContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldRussian, v))
}

// LessonEQ applies the EQ predicate on the "lesson" field.
func LessonEQ(v int32) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldLesson, v))
}

// LessonNEQ applies the NEQ predicate on the "lesson" field.
func LessonNEQ(v int32) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldLesson, v))
}

// LessonIn applies the In predicate on the "lesson" field.
func LessonIn(vs ...int32) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldLesson, vs...))
}

// LessonNotIn applies the NotIn predicate on the "lesson" field.
func LessonNotIn(vs ...int32) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldLesson, vs...))
}

// LessonGT applies the GT predicate on the "lesson" field.
func LessonGT(v int32) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldLesson, v))
}

// LessonGTE applies the GTE predicate on the "lesson" field.
func LessonGTE(v int32) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldLesson, v))
}

// LessonLT applies the LT predicate on the "lesson" field.
func LessonLT(v int32) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldLesson, v))
}

// LessonLTE applies the LTE predicate on the "lesson" field.
func LessonLTE(v int32) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldLesson, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Word) predicate.Word {
	return predicate.Word(sql.NotPredicates(p))
}
