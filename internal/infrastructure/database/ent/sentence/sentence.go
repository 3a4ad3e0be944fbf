// Code generated by ent, DO NOT EDIT.

package sentence

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sentence type in the database.
	Label = "sentence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldTranslation holds the string denoting the translation field in the database.
	FieldTranslation = "translation"
	// FieldLesson holds the string denoting the lesson field in the database.
	FieldLesson = "lesson"
	// Table holds the table name of the sentence in the database.
	Table = "sentences"
)

// Columns holds all SQL columns for sentence fields.
var Columns = []string{
	FieldID,
	FieldText,
	FieldTranslation,
	FieldLesson,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// TranslationValidator is a validator for the "translation" field. It is called by the builders before save.
	TranslationValidator func(string) error
	// DefaultLesson holds the default value on creation for the "lesson" field.
	DefaultLesson int32
)

// OrderOption defines the ordering options for the Sentence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByTranslation orders the results by the translation field.
func ByTranslation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslation, opts...).ToFunc()
}

// ByLesson orders the results by the lesson field.
func ByLesson(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLesson, opts...).ToFunc()
}
