// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConfusionScoresColumns holds the columns for the "confusion_scores" table.
	ConfusionScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "word_low_id", Type: field.TypeInt64},
		{Name: "word_high_id", Type: field.TypeInt64},
		{Name: "weight", Type: field.TypeFloat64},
	}
	// ConfusionScoresTable holds the schema information for the "confusion_scores" table.
	ConfusionScoresTable = &schema.Table{
		Name:       "confusion_scores",
		Columns:    ConfusionScoresColumns,
		PrimaryKey: []*schema.Column{ConfusionScoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "confusionscore_word_low_id_word_high_id",
				Unique:  true,
				Columns: []*schema.Column{ConfusionScoresColumns[1], ConfusionScoresColumns[2]},
			},
			{
				Name:    "confusionscore_word_high_id",
				Unique:  false,
				Columns: []*schema.Column{ConfusionScoresColumns[2]},
			},
		},
	}
	// PagesColumns holds the columns for the "pages" table.
	PagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lesson", Type: field.TypeInt32},
		{Name: "number", Type: field.TypeInt32},
		{Name: "message_ref", Type: field.TypeInt64, Default: 0},
		{Name: "name", Type: field.TypeString, Default: ""},
	}
	// PagesTable holds the schema information for the "pages" table.
	PagesTable = &schema.Table{
		Name:       "pages",
		Columns:    PagesColumns,
		PrimaryKey: []*schema.Column{PagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "page_lesson_number",
				Unique:  true,
				Columns: []*schema.Column{PagesColumns[1], PagesColumns[2]},
			},
		},
	}
	// RelationsColumns holds the columns for the "relations" table.
	RelationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_word_id", Type: field.TypeInt64},
		{Name: "target_word_id", Type: field.TypeInt64},
		{Name: "relation_type", Type: field.TypeString},
	}
	// RelationsTable holds the schema information for the "relations" table.
	RelationsTable = &schema.Table{
		Name:       "relations",
		Columns:    RelationsColumns,
		PrimaryKey: []*schema.Column{RelationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "relation_source_word_id_target_word_id_relation_type",
				Unique:  true,
				Columns: []*schema.Column{RelationsColumns[1], RelationsColumns[2], RelationsColumns[3]},
			},
		},
	}
	// SentencesColumns holds the columns for the "sentences" table.
	SentencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "text", Type: field.TypeString},
		{Name: "translation", Type: field.TypeString},
		{Name: "lesson", Type: field.TypeInt32, Default: 0},
	}
	// SentencesTable holds the schema information for the "sentences" table.
	SentencesTable = &schema.Table{
		Name:       "sentences",
		Columns:    SentencesColumns,
		PrimaryKey: []*schema.Column{SentencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sentence_lesson",
				Unique:  false,
				Columns: []*schema.Column{SentencesColumns[3]},
			},
		},
	}
	// WordsColumns holds the columns for the "words" table.
	WordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "english", Type: field.TypeString},
		{Name: "russian", Type: field.TypeString},
		{Name: "alternates", Type: field.TypeJSON, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "lesson", Type: field.TypeInt32, Default: 0},
	}
	// WordsTable holds the schema information for the "words" table.
	WordsTable = &schema.Table{
		Name:       "words",
		Columns:    WordsColumns,
		PrimaryKey: []*schema.Column{WordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "word_english_russian",
				Unique:  true,
				Columns: []*schema.Column{WordsColumns[1], WordsColumns[2]},
			},
			{
				Name:    "word_lesson",
				Unique:  false,
				Columns: []*schema.Column{WordsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConfusionScoresTable,
		PagesTable,
		RelationsTable,
		SentencesTable,
		WordsTable,
	}
)

func init() {
	ConfusionScoresTable.Annotation = &entsql.Annotation{
		Table: "confusion_scores",
	}
	ConfusionScoresTable.Annotation.Checks = map[string]string{
		"chk_confusion_pair_order": "(word_low_id < word_high_id)",
	}
	PagesTable.Annotation = &entsql.Annotation{
		Table: "pages",
	}
	RelationsTable.Annotation = &entsql.Annotation{
		Table: "relations",
	}
	SentencesTable.Annotation = &entsql.Annotation{
		Table: "sentences",
	}
	WordsTable.Annotation = &entsql.Annotation{
		Table: "words",
	}
}
