// Code generated by ent, DO NOT EDIT.

package relation

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the relation type in the database.
	Label = "relation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceWordID holds the string denoting the source_word_id field in the database.
	FieldSourceWordID = "source_word_id"
	// FieldTargetWordID holds the string denoting the target_word_id field in the database.
	FieldTargetWordID = "target_word_id"
	// FieldRelationType holds the string denoting the relation_type field in the database.
	FieldRelationType = "relation_type"
	// Table holds the table name of the relation in the database.
	Table = "relations"
)

// Columns holds all SQL columns for relation fields.
var Columns = []string{
	FieldID,
	FieldSourceWordID,
	FieldTargetWordID,
	FieldRelationType,
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

// OrderOption defines the ordering options for the Relation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceWordID orders the results by the source_word_id field.
func BySourceWordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceWordID, opts...).ToFunc()
}

// ByTargetWordID orders the results by the target_word_id field.
func ByTargetWordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetWordID, opts...).ToFunc()
}

// ByRelationType orders the results by the relation_type field.
func ByRelationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationType, opts...).ToFunc()
}
