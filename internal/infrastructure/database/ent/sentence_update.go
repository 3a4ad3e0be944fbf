// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/sentence"
)

// SentenceUpdate is the builder for updating Sentence entities.
type SentenceUpdate struct {
	config
	hooks    []Hook
	mutation *SentenceMutation
}

// Where appends a list predicates to the SentenceUpdate builder.
func (su *SentenceUpdate) Where(ps ...predicate.Sentence) *SentenceUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetText sets the "text" field.
func (su *SentenceUpdate) SetText(s string) *SentenceUpdate {
	su.mutation.SetText(s)
	return su
}

// SetNillableText sets the "text" field if the given value is not nil.
func (su *SentenceUpdate) SetNillableText(s *string) *SentenceUpdate {
	if s != nil {
		su.SetText(*s)
	}
	return su
}

// SetTranslation sets the "translation" field.
func (su *SentenceUpdate) SetTranslation(s string) *SentenceUpdate {
	su.mutation.SetTranslation(s)
	return su
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (su *SentenceUpdate) SetNillableTranslation(s *string) *SentenceUpdate {
	if s != nil {
		su.SetTranslation(*s)
	}
	return su
}

// SetLesson sets the "lesson" field.
func (su *SentenceUpdate) SetLesson(i int32) *SentenceUpdate {
	su.mutation.ResetLesson()
	su.mutation.SetLesson(i)
	return su
}

// SetNillableLesson sets the "lesson" field if the given value is not nil.
func (su *SentenceUpdate) SetNillableLesson(i *int32) *SentenceUpdate {
	if i != nil {
		su.SetLesson(*i)
	}
	return su
}

// AddLesson adds i to the "lesson" field.
func (su *SentenceUpdate) AddLesson(i int32) *SentenceUpdate {
	su.mutation.AddLesson(i)
	return su
}

// Mutation returns the SentenceMutation object of the builder.
func (su *SentenceUpdate) Mutation() *SentenceMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *SentenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *SentenceUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *SentenceUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *SentenceUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (su *SentenceUpdate) check() error {
	if v, ok := su.mutation.Text(); ok {
		if err := sentence.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Sentence.text": %w`, err)}
		}
	}
	if v, ok := su.mutation.Translation(); ok {
		if err := sentence.TranslationValidator(v); err != nil {
			return &ValidationError{Name: "translation", err: fmt.Errorf(`ent: validator failed for field "Sentence.translation": %w`, err)}
		}
	}
	return nil
}

func (su *SentenceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := su.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(sentence.Table, sentence.Columns, sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.Text(); ok {
		_spec.SetField(sentence.FieldText, field.TypeString, value)
	}
	if value, ok := su.mutation.Translation(); ok {
		_spec.SetField(sentence.FieldTranslation, field.TypeString, value)
	}
	if value, ok := su.mutation.Lesson(); ok {
		_spec.SetField(sentence.FieldLesson, field.TypeInt32, value)
	}
	if value, ok := su.mutation.AddedLesson(); ok {
		_spec.AddField(sentence.FieldLesson, field.TypeInt32, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sentence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// SentenceUpdateOne is the builder for updating a single Sentence entity.
type SentenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SentenceMutation
}

// SetText sets the "text" field.
func (suo *SentenceUpdateOne) SetText(s string) *SentenceUpdateOne {
	suo.mutation.SetText(s)
	return suo
}

// SetNillableText sets the "text" field if the given value is not nil.
func (suo *SentenceUpdateOne) SetNillableText(s *string) *SentenceUpdateOne {
	if s != nil {
		suo.SetText(*s)
	}
	return suo
}

// SetTranslation sets the "translation" field.
func (suo *SentenceUpdateOne) SetTranslation(s string) *SentenceUpdateOne {
	suo.mutation.SetTranslation(s)
	return suo
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (suo *SentenceUpdateOne) SetNillableTranslation(s *string) *SentenceUpdateOne {
	if s != nil {
		suo.SetTranslation(*s)
	}
	return suo
}

// SetLesson sets the "lesson" field.
func (suo *SentenceUpdateOne) SetLesson(i int32) *SentenceUpdateOne {
	suo.mutation.ResetLesson()
	suo.mutation.SetLesson(i)
	return suo
}

// SetNillableLesson sets the "lesson" field if the given value is not nil.
func (suo *SentenceUpdateOne) SetNillableLesson(i *int32) *SentenceUpdateOne {
	if i != nil {
		suo.SetLesson(*i)
	}
	return suo
}

// AddLesson adds i to the "lesson" field.
func (suo *SentenceUpdateOne) AddLesson(i int32) *SentenceUpdateOne {
	suo.mutation.AddLesson(i)
	return suo
}

// Mutation returns the SentenceMutation object of the builder.
func (suo *SentenceUpdateOne) Mutation() *SentenceMutation {
	return suo.mutation
}

// Where appends a list predicates to the SentenceUpdate builder.
func (suo *SentenceUpdateOne) Where(ps ...predicate.Sentence) *SentenceUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *SentenceUpdateOne) Select(field string, fields ...string) *SentenceUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Sentence entity.
func (suo *SentenceUpdateOne) Save(ctx context.Context) (*Sentence, error) {
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *SentenceUpdateOne) SaveX(ctx context.Context) *Sentence {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *SentenceUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *SentenceUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suo *SentenceUpdateOne) check() error {
	if v, ok := suo.mutation.Text(); ok {
		if err := sentence.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Sentence.text": %w`, err)}
		}
	}
	if v, ok := suo.mutation.Translation(); ok {
		if err := sentence.TranslationValidator(v); err != nil {
			return &ValidationError{Name: "translation", err: fmt.Errorf(`ent: validator failed for field "Sentence.translation": %w`, err)}
		}
	}
	return nil
}

func (suo *SentenceUpdateOne) sqlSave(ctx context.Context) (_node *Sentence, err error) {
	if err := suo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sentence.Table, sentence.Columns, sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Sentence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sentence.FieldID)
		for _, f := range fields {
			if !sentence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sentence.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.Text(); ok {
		_spec.SetField(sentence.FieldText, field.TypeString, value)
	}
	if value, ok := suo.mutation.Translation(); ok {
		_spec.SetField(sentence.FieldTranslation, field.TypeString, value)
	}
	if value, ok := suo.mutation.Lesson(); ok {
		_spec.SetField(sentence.FieldLesson, field.TypeInt32, value)
	}
	if value, ok := suo.mutation.AddedLesson(); ok {
		_spec.AddField(sentence.FieldLesson, field.TypeInt32, value)
	}
	_node = &Sentence{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sentence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
