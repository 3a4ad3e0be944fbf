package entschema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Relation holds the schema definition for the relations table: directed
// synonym/antonym edges between words.
type Relation struct {
	ent.Schema
}

// Fields of the Relation.
func (Relation) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("source_word_id"),
		field.Int64("target_word_id"),
		field.String("relation_type"),
	}
}

// Indexes of the Relation.
func (Relation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_word_id", "target_word_id", "relation_type").Unique(),
	}
}

// Annotations of the Relation.
func (Relation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "relations"},
	}
}
