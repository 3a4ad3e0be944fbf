// Code generated by ent, DO NOT EDIT.

package confusionscore

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the confusionscore type in the database.
	Label = "confusion_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWordLowID holds the string denoting the word_low_id field in the database.
	FieldWordLowID = "word_low_id"
	// FieldWordHighID holds the string denoting the word_high_id field in the database.
	FieldWordHighID = "word_high_id"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// Table holds the table name of the confusionscore in the database.
	Table = "confusion_scores"
)

// Columns holds all SQL columns for confusionscore fields.
var Columns = []string{
	FieldID,
	FieldWordLowID,
	FieldWordHighID,
	FieldWeight,
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

// OrderOption defines the ordering options for the ConfusionScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWordLowID orders the results by the word_low_id field.
func ByWordLowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordLowID, opts...).ToFunc()
}

// ByWordHighID orders the results by the word_high_id field.
func ByWordHighID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordHighID, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}
