// Code generated by ent, DO NOT EDIT.

package confusionscore

import (
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldLTE(FieldID, id))
}

// WordLowID applies equality check predicate on the "word_low_id" field. It's identical to WordLowIDEQ.
func WordLowID(v int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldEQ(FieldWordLowID, v))
}

// WordHighID applies equality check predicate on the "word_high_id" field. It's identical to WordHighIDEQ.
func WordHighID(v int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldEQ(FieldWordHighID, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v float64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldEQ(FieldWeight, v))
}

// WordLowIDEQ applies the EQ predicate on the "word_low_id" field.
func WordLowIDEQ(v int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldEQ(FieldWordLowID, v))
}

// WordLowIDNEQ applies the NEQ predicate on the "word_low_id" field.
func WordLowIDNEQ(v int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldNEQ(FieldWordLowID, v))
}

// WordLowIDIn applies the In predicate on the "word_low_id" field.
func WordLowIDIn(vs ...int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldIn(FieldWordLowID, vs...))
}

// WordLowIDNotIn applies the NotIn predicate on the "word_low_id" field.
func WordLowIDNotIn(vs ...int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldNotIn(FieldWordLowID, vs...))
}

// WordLowIDGT applies the GT predicate on the "word_low_id" field.
func WordLowIDGT(v int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldGT(FieldWordLowID, v))
}

// WordLowIDGTE applies the GTE predicate on the "word_low_id" field.
func WordLowIDGTE(v int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldGTE(FieldWordLowID, v))
}

// WordLowIDLT applies the LT predicate on the "word_low_id" field.
func WordLowIDLT(v int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldLT(FieldWordLowID, v))
}

// WordLowIDLTE applies the LTE predicate on the "word_low_id" field.
func WordLowIDLTE(v int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldLTE(FieldWordLowID, v))
}

// WordHighIDEQ applies the EQ predicate on the "word_high_id" field.
func WordHighIDEQ(v int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldEQ(FieldWordHighID, v))
}

// WordHighIDNEQ applies the NEQ predicate on the "word_high_id" field.
func WordHighIDNEQ(v int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldNEQ(FieldWordHighID, v))
}

// WordHighIDIn applies the In predicate on the "word_high_id" field.
func WordHighIDIn(vs ...int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldIn(FieldWordHighID, vs...))
}

// WordHighIDNotIn applies the NotIn predicate on the "word_high_id" field.
func WordHighIDNotIn(vs ...int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldNotIn(FieldWordHighID, vs...))
}

// WordHighIDGT applies the GT predicate on the "word_high_id" field.
func WordHighIDGT(v int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldGT(FieldWordHighID, v))
}

// WordHighIDGTE applies the GTE predicate on the "word_high_id" field.
func WordHighIDGTE(v int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldGTE(FieldWordHighID, v))
}

// WordHighIDLT applies the LT predicate on the "word_high_id" field.
func WordHighIDLT(v int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldLT(FieldWordHighID, v))
}

// WordHighIDLTE applies the LTE predicate on the "word_high_id" field.
func WordHighIDLTE(v int64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldLTE(FieldWordHighID, v))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v float64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v float64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...float64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...float64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v float64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v float64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v float64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v float64) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.FieldLTE(FieldWeight, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConfusionScore) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConfusionScore) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConfusionScore) predicate.ConfusionScore {
	return predicate.ConfusionScore(sql.NotPredicates(p))
}
