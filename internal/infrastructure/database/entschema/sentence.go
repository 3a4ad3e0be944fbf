package entschema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Sentence holds the schema definition for the sentences table.
type Sentence struct {
	ent.Schema
}

// Fields of the Sentence.
func (Sentence) Fields() []ent.Field {
	return []ent.Field{
		field.String("text").NotEmpty(),
		field.String("translation").NotEmpty(),
		field.Int32("lesson").Default(0),
	}
}

// Indexes of the Sentence.
func (Sentence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson"),
	}
}

// Annotations of the Sentence.
func (Sentence) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sentences"},
	}
}
