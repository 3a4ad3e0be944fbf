// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/confusionscore"
)

// ConfusionScore is the model entity for the ConfusionScore schema.
type ConfusionScore struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WordLowID holds the value of the "word_low_id" field.
	WordLowID int64 `json:"word_low_id,omitempty"`
	// WordHighID holds the value of the "word_high_id" field.
	WordHighID int64 `json:"word_high_id,omitempty"`
	// Weight holds the value of the "weight" field.
	Weight       float64 `json:"weight,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConfusionScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case confusionscore.FieldWeight:
			values[i] = new(sql.NullFloat64)
		case confusionscore.FieldID, confusionscore.FieldWordLowID, confusionscore.FieldWordHighID:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConfusionScore fields.
func (cs *ConfusionScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case confusionscore.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			cs.ID = int(value.Int64)
		case confusionscore.FieldWordLowID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_low_id", values[i])
			} else if value.Valid {
				cs.WordLowID = value.Int64
			}
		case confusionscore.FieldWordHighID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_high_id", values[i])
			} else if value.Valid {
				cs.WordHighID = value.Int64
			}
		case confusionscore.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				cs.Weight = value.Float64
			}
		default:
			cs.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConfusionScore.
// This includes values selected through modifiers, order, etc.
func (cs *ConfusionScore) Value(name string) (ent.Value, error) {
	return cs.selectValues.Get(name)
}

// Update returns a builder for updating this ConfusionScore.
// Note that you need to call ConfusionScore.Unwrap() before calling this method if this ConfusionScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (cs *ConfusionScore) Update() *ConfusionScoreUpdateOne {
	return NewConfusionScoreClient(cs.config).UpdateOne(cs)
}

// Unwrap unwraps the ConfusionScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cs *ConfusionScore) Unwrap() *ConfusionScore {
	_tx, ok := cs.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConfusionScore is not a transactional entity")
	}
	cs.config.driver = _tx.drv
	return cs
}

// String implements the fmt.Stringer.
func (cs *ConfusionScore) String() string {
	var builder strings.Builder
	builder.WriteString("ConfusionScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cs.ID))
	builder.WriteString("word_low_id=")
	builder.WriteString(fmt.Sprintf("%v", cs.WordLowID))
	builder.WriteString(", ")
	builder.WriteString("word_high_id=")
	builder.WriteString(fmt.Sprintf("%v", cs.WordHighID))
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", cs.Weight))
	builder.WriteByte(')')
	return builder.String()
}

// ConfusionScores is a parsable slice of ConfusionScore.
type ConfusionScores []*ConfusionScore
