// Code generated by ent, DO NOT EDIT.

package page

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the page type in the database.
	Label = "page"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLesson holds the string denoting the lesson field in the database.
	FieldLesson = "lesson"
	// FieldNumber holds the string denoting the number field in the database.
	FieldNumber = "number"
	// FieldMessageRef holds the string denoting the message_ref field in the database.
	FieldMessageRef = "message_ref"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// Table holds the table name of the page in the database.
	Table = "pages"
)

// Columns holds all SQL columns for page fields.
var Columns = []string{
	FieldID,
	FieldLesson,
	FieldNumber,
	FieldMessageRef,
	FieldName,
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
	// DefaultMessageRef holds the default value on creation for the "message_ref" field.
	DefaultMessageRef int64
	// DefaultName holds the default value on creation for the "name" field.
	DefaultName string
)

// OrderOption defines the ordering options for the Page queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLesson orders the results by the lesson field.
func ByLesson(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLesson, opts...).ToFunc()
}

// ByNumber orders the results by the number field.
func ByNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumber, opts...).ToFunc()
}

// ByMessageRef orders the results by the message_ref field.
func ByMessageRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageRef, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}
