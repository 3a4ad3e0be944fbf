// Code generated by ent, DO NOT EDIT.

package sentence

import (
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Sentence {
	return predicate.Sentence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Sentence {
	return predicate.Sentence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Sentence {
	return predicate.Sentence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Sentence {
	return predicate.Sentence(sql.FieldLTE(FieldID, id))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldText, v))
}

// Translation applies equality check predicate on the "translation" field. It's identical to TranslationEQ.
func Translation(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldTranslation, v))
}

// Lesson applies equality check predicate on the "lesson" field. It's identical to LessonEQ.
func Lesson(v int32) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldLesson, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldContainsFold(FieldText, v))
}

// TranslationEQ applies the EQ predicate on the "translation" field.
func TranslationEQ(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldTranslation, v))
}

// TranslationNEQ applies the NEQ predicate on the "translation" field.
func TranslationNEQ(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldTranslation, v))
}

// TranslationIn applies the In predicate on the "translation" field.
func TranslationIn(vs ...string) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldTranslation, vs...))
}

// TranslationNotIn applies the NotIn predicate on the "translation" field.
func TranslationNotIn(vs ...string) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldTranslation, vs...))
}

// TranslationGT applies the GT predicate on the "translation" field.
func TranslationGT(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldGT(FieldTranslation, v))
}

// TranslationGTE applies the GTE predicate on the "translation" field.
func TranslationGTE(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldGTE(FieldTranslation, v))
}

// TranslationLT applies the LT predicate on the "translation" field.
func TranslationLT(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldLT(FieldTranslation, v))
}

// TranslationLTE applies the LTE predicate on the "translation" field.
func TranslationLTE(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldLTE(FieldTranslation, v))
}

// TranslationContains applies the Contains predicate on the "translation" field.
func TranslationContains(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldContains(FieldTranslation, v))
}

// TranslationHasPrefix applies the HasPrefix predicate on the "translation" field.
func TranslationHasPrefix(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldHasPrefix(FieldTranslation, v))
}

// TranslationHasSuffix applies the HasSuffix predicate on the "translation" field.
func TranslationHasSuffix(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldHasSuffix(FieldTranslation, v))
}

// TranslationEqualFold applies the EqualFold predicate on the "translation" field.
func TranslationEqualFold(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEqualFold(FieldTranslation, v))
}

// TranslationContainsFold applies the ContainsFold predicate on the "translation" field.
func TranslationContainsFold(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldContainsFold(FieldTranslation, v))
}

// LessonEQ applies the EQ predicate on the "lesson" field.
func LessonEQ(v int32) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldLesson, v))
}

// LessonNEQ applies the NEQ predicate on the "lesson" field.
func LessonNEQ(v int32) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldLesson, v))
}

// LessonIn applies the In predicate on the "lesson" field.
func LessonIn(vs ...int32) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldLesson, vs...))
}

// LessonNotIn applies the NotIn predicate on the "lesson" field.
func LessonNotIn(vs ...int32) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldLesson, vs...))
}

// LessonGT applies the GT predicate on the "lesson" field.
func LessonGT(v int32) predicate.Sentence {
	return predicate.Sentence(sql.FieldGT(FieldLesson, v))
}

// LessonGTE applies the GTE predicate on the "lesson" field.
func LessonGTE(v int32) predicate.Sentence {
	return predicate.Sentence(sql.FieldGTE(FieldLesson, v))
}

// LessonLT applies the LT predicate on the "lesson" field.
func LessonLT(v int32) predicate.Sentence {
	return predicate.Sentence(sql.FieldLT(FieldLesson, v))
}

// LessonLTE applies the LTE predicate on the "lesson" field.
func LessonLTE(v int32) predicate.Sentence {
	return predicate.Sentence(sql.FieldLTE(FieldLesson, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Sentence) predicate.Sentence {
	return predicate.Sentence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Sentence) predicate.Sentence {
	return predicate.Sentence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Sentence) predicate.Sentence {
	return predicate.Sentence(sql.NotPredicates(p))
}
