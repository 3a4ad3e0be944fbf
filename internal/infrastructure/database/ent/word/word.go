// Code generated by ent, DO NOT EDIT.

package word

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the word type in the database.
	Label = "word"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEnglish holds the string denoting the english field in the database.
	FieldEnglish = "english"
	// FieldRussian holds the string denoting the russian field in the database.
	FieldRussian = "russian"
	// FieldAlternates holds the string denoting the alternates field in the database.
	FieldAlternates = "alternates"
	// FieldLesson holds the string denoting the lesson field in the database.
	FieldLesson = "lesson"
	// Table holds the table name of the word in the database.
	Table = "words"
)

// Columns holds all SQL columns for word fields.
var Columns = []string{
	FieldID,
	FieldEnglish,
	FieldRussian,
	FieldAlternates,
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
	// EnglishValidator is a validator for the "english" field. It is called by the builders before save.
	EnglishValidator func(string) error
	// RussianValidator is a validator for the "russian" field. It is called by the builders before save.
	RussianValidator func(string) error
	// DefaultAlternates holds the default value on creation for the "alternates" field.
	DefaultAlternates []string
	// DefaultLesson holds the default value on creation for the "lesson" field.
	DefaultLesson int32
)

// OrderOption defines the ordering options for the Word queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEnglish orders the results by the english field.
func ByEnglish(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnglish, opts...).ToFunc()
}

// ByRussian orders the results by the russian field.
func ByRussian(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRussian, opts...).ToFunc()
}

// ByLesson orders the results by the lesson field.
func ByLesson(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLesson, opts...).ToFunc()
}
