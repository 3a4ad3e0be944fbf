// Code generated by ent, DO NOT EDIT.

package relation

import (
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Relation {
	return predicate.Relation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Relation {
	return predicate.Relation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Relation {
	return predicate.Relation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Relation {
	return predicate.Relation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Relation {
	return predicate.Relation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Relation {
	return predicate.Relation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Relation {
	return predicate.Relation(sql.FieldLTE(FieldID, id))
}

// SourceWordID applies equality check predicate on the "source_word_id" field. It's identical to SourceWordIDEQ.
func SourceWordID(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldSourceWordID, v))
}

// TargetWordID applies equality check predicate on the "target_word_id" field. It's identical to TargetWordIDEQ.
func TargetWordID(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldTargetWordID, v))
}

// RelationType applies equality check predicate on the "relation_type" field. It's identical to RelationTypeEQ.
func RelationType(v string) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldRelationType, v))
}

// SourceWordIDEQ applies the EQ predicate on the "source_word_id" field.
func SourceWordIDEQ(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldSourceWordID, v))
}

// SourceWordIDNEQ applies the NEQ predicate on the "source_word_id" field.
func SourceWordIDNEQ(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldNEQ(FieldSourceWordID, v))
}

// SourceWordIDIn applies the In predicate on the "source_word_id" field.
func SourceWordIDIn(vs ...int64) predicate.Relation {
	return predicate.Relation(sql.FieldIn(FieldSourceWordID, vs...))
}

// SourceWordIDNotIn applies the NotIn predicate on the "source_word_id" field.
func SourceWordIDNotIn(vs ...int64) predicate.Relation {
	return predicate.Relation(sql.FieldNotIn(FieldSourceWordID, vs...))
}

// SourceWordIDGT applies the GT predicate on the "source_word_id" field.
func SourceWordIDGT(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldGT(FieldSourceWordID, v))
}

// SourceWordIDGTE applies the GTE predicate on the "source_word_id" field.
func SourceWordIDGTE(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldGTE(FieldSourceWordID, v))
}

// SourceWordIDLT applies the LT predicate on the "source_word_id" field.
func SourceWordIDLT(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldLT(FieldSourceWordID, v))
}

// SourceWordIDLTE applies the LTE predicate on the "source_word_id" field.
func SourceWordIDLTE(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldLTE(FieldSourceWordID, v))
}

// TargetWordIDEQ applies the EQ predicate on the "target_word_id" field.
func TargetWordIDEQ(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldTargetWordID, v))
}

// TargetWordIDNEQ applies the NEQ predicate on the "target_word_id" field.
func TargetWordIDNEQ(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldNEQ(FieldTargetWordID, v))
}

// TargetWordIDIn applies the In predicate on the "target_word_id" field.
func TargetWordIDIn(vs ...int64) predicate.Relation {
	return predicate.Relation(sql.FieldIn(FieldTargetWordID, vs...))
}

// TargetWordIDNotIn applies the NotIn predicate on the "target_word_id" field.
func TargetWordIDNotIn(vs ...int64) predicate.Relation {
	return predicate.Relation(sql.FieldNotIn(FieldTargetWordID, vs...))
}

// TargetWordIDGT applies the GT predicate on the "target_word_id" field.
func TargetWordIDGT(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldGT(FieldTargetWordID, v))
}

// TargetWordIDGTE applies the GTE predicate on the "target_word_id" field.
func TargetWordIDGTE(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldGTE(FieldTargetWordID, v))
}

// TargetWordIDLT applies the LT predicate on the "target_word_id" field.
func TargetWordIDLT(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldLT(FieldTargetWordID, v))
}

// TargetWordIDLTE applies the LTE predicate on the "target_word_id" field.
func TargetWordIDLTE(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldLTE(FieldTargetWordID, v))
}

// RelationTypeEQ applies the EQ predicate on the "relation_type" field.
func RelationTypeEQ(v string) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldRelationType, v))
}

// RelationTypeNEQ applies the NEQ predicate on the "relation_type" field.
func RelationTypeNEQ(v string) predicate.Relation {
	return predicate.Relation(sql.FieldNEQ(FieldRelationType, v))
}

// RelationTypeIn applies the In predicate on the "relation_type" field.
func RelationTypeIn(vs ...string) predicate.Relation {
	return predicate.Relation(sql.FieldIn(FieldRelationType, vs...))
}

// RelationTypeNotIn applies the NotIn predicate on the "relation_type" field.
func RelationTypeNotIn(vs ...string) predicate.Relation {
	return predicate.Relation(sql.FieldNotIn(FieldRelationType, vs...))
}

// RelationTypeGT applies the GT predicate on the "relation_type" field.
func RelationTypeGT(v string) predicate.Relation {
	return predicate.Relation(sql.FieldGT(FieldRelationType, v))
}

// RelationTypeGTE applies the GTE predicate on the "relation_type" field.
func RelationTypeGTE(v string) predicate.Relation {
	return predicate.Relation(sql.FieldGTE(FieldRelationType, v))
}

// RelationTypeLT applies the LT predicate on the "relation_type" field.
func RelationTypeLT(v string) predicate.Relation {
	return predicate.Relation(sql.FieldLT(FieldRelationType, v))
}

// RelationTypeLTE applies the LTE predicate on the "relation_type" field.
func RelationTypeLTE(v string) predicate.Relation {
	return predicate.Relation(sql.FieldLTE(FieldRelationType, v))
}

// RelationTypeContains applies the Contains predicate on the "relation_type" field.
func RelationTypeContains(v string) predicate.Relation {
	return predicate.Relation(sql.FieldContains(FieldRelationType, v))
}

// RelationTypeHasPrefix applies the HasPrefix predicate on the "relation_type" field.
func RelationTypeHasPrefix(v string) predicate.Relation {
	return predicate.Relation(sql.FieldHasPrefix(FieldRelationType, v))
}

// RelationTypeHasSuffix applies the HasSuffix predicate on the "relation_type" field.
func RelationTypeHasSuffix(v string) predicate.Relation {
	return predicate.Relation(sql.FieldHasSuffix(FieldRelationType, v))
}

// RelationTypeEqualFold applies the EqualFold predicate on the "relation_type" field.
func RelationTypeEqualFold(v string) predicate.Relation {
	return predicate.Relation(sql.FieldEqualFold(FieldRelationType, v))
}

// RelationTypeContainsFold applies the ContainsFold predicate on the "relation_type" field.
func RelationTypeContainsFold(v string) predicate.Relation {
	return predicate.Relation(sql.FieldContainsFold(FieldRelationType, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Relation) predicate.Relation {
	return predicate.Relation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Relation) predicate.Relation {
	return predicate.Relation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Relation) predicate.Relation {
	return predicate.Relation(sql.NotPredicates(p))
}
