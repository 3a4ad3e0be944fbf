package entschema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Word holds the schema definition for the words table.
type Word struct {
	ent.Schema
}

// Fields of the Word.
func (Word) Fields() []ent.Field {
	return []ent.Field{
		field.String("english").NotEmpty(),
		field.String("russian").NotEmpty(),
		field.JSON("alternates", []string{}).
			Default([]string{}).
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Int32("lesson").Default(0),
	}
}

// Indexes of the Word.
func (Word) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("english", "russian").Unique(),
		index.Fields("lesson"),
	}
}

// Annotations of the Word.
func (Word) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "words"},
	}
}
