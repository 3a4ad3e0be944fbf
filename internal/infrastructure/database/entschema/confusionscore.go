package entschema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConfusionScore holds the schema definition for the confusion_scores table.
// One row per unordered word pair, stored with the lower id first.
type ConfusionScore struct {
	ent.Schema
}

// Fields of the ConfusionScore.
func (ConfusionScore) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("word_low_id"),
		field.Int64("word_high_id"),
		field.Float("weight"),
	}
}

// Indexes of the ConfusionScore.
func (ConfusionScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("word_low_id", "word_high_id").Unique(),
		index.Fields("word_high_id"),
	}
}

// Annotations of the ConfusionScore.
func (ConfusionScore) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "confusion_scores",
			Checks: map[string]string{
				"chk_confusion_pair_order": "(word_low_id < word_high_id)",
			},
		},
	}
}
