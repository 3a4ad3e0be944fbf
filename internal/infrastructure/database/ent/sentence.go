// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/sentence"
)

// Sentence is the model entity for the Sentence schema.
type Sentence struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Translation holds the value of the "translation" field.
	Translation string `json:"translation,omitempty"`
	// Lesson holds the value of the "lesson" field.
	Lesson       int32 `json:"lesson,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Sentence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sentence.FieldID, sentence.FieldLesson:
			values[i] = new(sql.NullInt64)
		case sentence.FieldText, sentence.FieldTranslation:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Sentence fields.
func (s *Sentence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sentence.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			s.ID = int(value.Int64)
		case sentence.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				s.Text = value.String
			}
		case sentence.FieldTranslation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field translation", values[i])
			} else if value.Valid {
				s.Translation = value.String
			}
		case sentence.FieldLesson:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lesson", values[i])
			} else if value.Valid {
				s.Lesson = int32(value.Int64)
			}
		default:
			s.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Sentence.
// This includes values selected through modifiers, order, etc.
func (s *Sentence) Value(name string) (ent.Value, error) {
	return s.selectValues.Get(name)
}

// Update returns a builder for updating this Sentence.
// Note that you need to call Sentence.Unwrap() before calling this method if this Sentence
// was returned from a transaction, and the transaction was committed or rolled back.
func (s *Sentence) Update() *SentenceUpdateOne {
	return NewSentenceClient(s.config).UpdateOne(s)
}

// Unwrap unwraps the Sentence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (s *Sentence) Unwrap() *Sentence {
	_tx, ok := s.config.driver.(*txDriver)
	if !ok {
		panic("ent: Sentence is not a transactional entity")
	}
	s.config.driver = _tx.drv
	return s
}

// String implements the fmt.Stringer.
func (s *Sentence) String() string {
	var builder strings.Builder
	builder.WriteString("Sentence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", s.ID))
	builder.WriteString("text=")
	builder.WriteString(s.Text)
	builder.WriteString(", ")
	builder.WriteString("translation=")
	builder.WriteString(s.Translation)
	builder.WriteString(", ")
	builder.WriteString("lesson=")
	builder.WriteString(fmt.Sprintf("%v", s.Lesson))
	builder.WriteByte(')')
	return builder.String()
}

// Sentences is a parsable slice of Sentence.
type Sentences []*Sentence
