// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ConfusionScore is the predicate function for confusionscore builders.
type ConfusionScore func(*sql.Selector)

// Page is the predicate function for page builders.
type Page func(*sql.Selector)

// Relation is the predicate function for relation builders.
type Relation func(*sql.Selector)

// Sentence is the predicate function for sentence builders.
type Sentence func(*sql.Selector)

// Word is the predicate function for word builders.
type Word func(*sql.Selector)
