// Code generated by ent, DO NOT EDIT.

package page

import (
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldID, id))
}

// Lesson applies equality check predicate on the "lesson" field. It's identical to LessonEQ.
func Lesson(v int32) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLesson, v))
}

// Number applies equality check predicate on the "number" field. It's identical to NumberEQ.
func Number(v int32) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldNumber, v))
}

// MessageRef applies equality check predicate on the "message_ref" field. It's identical to MessageRefEQ.
func MessageRef(v int64) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldMessageRef, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldName, v))
}

// LessonEQ applies the EQ predicate on the "lesson" field.
func LessonEQ(v int32) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLesson, v))
}

// LessonNEQ applies the NEQ predicate on the "lesson" field.
func LessonNEQ(v int32) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldLesson, v))
}

// LessonIn applies the In predicate on the "lesson" field.
func LessonIn(vs ...int32) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldLesson, vs...))
}

// LessonNotIn applies the NotIn predicate on the "lesson" field.
func LessonNotIn(vs ...int32) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldLesson, vs...))
}

// LessonGT applies the GT predicate on the "lesson" field.
func LessonGT(v int32) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldLesson, v))
}

// LessonGTE applies the GTE predicate on the "lesson" field.
func LessonGTE(v int32) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldLesson, v))
}

// LessonLT applies the LT predicate on the "lesson" field.
func LessonLT(v int32) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldLesson, v))
}

// LessonLTE applies the LTE predicate on the "lesson" field.
func LessonLTE(v int32) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldLesson, v))
}

// NumberEQ applies the EQ predicate on the "number" field.
func NumberEQ(v int32) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldNumber, v))
}

// NumberNEQ applies the NEQ predicate on the "number" field.
func NumberNEQ(v int32) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldNumber, v))
}

// NumberIn applies the In predicate on the "number" field.
func NumberIn(vs ...int32) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldNumber, vs...))
}

// NumberNotIn applies the NotIn predicate on the "number" field.
func NumberNotIn(vs ...int32) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldNumber, vs...))
}

// NumberGT applies the GT predicate on the "number" field.
func NumberGT(v int32) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldNumber, v))
}

// NumberGTE applies the GTE predicate on the "number" field.
func NumberGTE(v int32) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldNumber, v))
}

// NumberLT applies the LT predicate on the "number" field.
func NumberLT(v int32) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldNumber, v))
}

// NumberLTE applies the LTE predicate on the "number" field.
func NumberLTE(v int32) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldNumber, v))
}

// MessageRefEQ applies the EQ predicate on the "message_ref" field.
func MessageRefEQ(v int64) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldMessageRef, v))
}

// MessageRefNEQ applies the NEQ predicate on the "message_ref" field.
func MessageRefNEQ(v int64) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldMessageRef, v))
}

// MessageRefIn applies the In predicate on the "message_ref" field.
func MessageRefIn(vs ...int64) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldMessageRef, vs...))
}

// MessageRefNotIn applies the NotIn predicate on the "message_ref" field.
func MessageRefNotIn(vs ...int64) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldMessageRef, vs...))
}

// MessageRefGT applies the GT predicate on the "message_ref" field.
func MessageRefGT(v int64) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldMessageRef, v))
}

// MessageRefGTE applies the GTE predicate on the "message_ref" field.
func MessageRefGTE(v int64) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldMessageRef, v))
}

// MessageRefLT applies the LT predicate on the "message_ref" field.
func MessageRefLT(v int64) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldMessageRef, v))
}

// MessageRefLTE applies the LTE predicate on the "message_ref" field.
func MessageRefLTE(v int64) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldMessageRef, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldName, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Page) predicate.Page {
	return predicate.Page(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Page) predicate.Page {
	return predicate.Page(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Page) predicate.Page {
	return predicate.Page(sql.NotPredicates(p))
}
