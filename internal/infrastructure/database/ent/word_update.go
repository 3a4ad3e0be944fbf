// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/word"
)

// WordUpdate is the builder for updating Word entities.
type WordUpdate struct {
	config
	hooks    []Hook
	mutation *WordMutation
}

// Where appends a list predicates to the WordUpdate builder.
func (wu *WordUpdate) Where(ps ...predicate.Word) *WordUpdate {
	wu.mutation.Where(ps...)
	return wu
}

// SetEnglish sets the "english" field.
func (wu *WordUpdate) SetEnglish(s string) *WordUpdate {
	wu.mutation.SetEnglish(s)
	return wu
}

// SetNillableEnglish sets the "english" field if the given value is not nil.
func (wu *WordUpdate) SetNillableEnglish(s *string) *WordUpdate {
	if s != nil {
		wu.SetEnglish(*s)
	}
	return wu
}

// SetRussian sets the "russian" field.
func (wu *WordUpdate) SetRussian(s string) *WordUpdate {
	wu.mutation.SetRussian(s)
	return wu
}

// SetNillableRussian sets the "russian" field if the given value is not nil.
func (wu *WordUpdate) SetNillableRussian(s *string) *WordUpdate {
	if s != nil {
		wu.SetRussian(*s)
	}
	return wu
}

// SetAlternates sets the "alternates" field.
func (wu *WordUpdate) SetAlternates(s []string) *WordUpdate {
	wu.mutation.SetAlternates(s)
	return wu
}

// AppendAlternates appends s to the "alternates" field.
func (wu *WordUpdate) AppendAlternates(s []string) *WordUpdate {
	wu.mutation.AppendAlternates(s)
	return wu
}

// SetLesson sets the "lesson" field.
func (wu *WordUpdate) SetLesson(i int32) *WordUpdate {
	wu.mutation.ResetLesson()
	wu.mutation.SetLesson(i)
	return wu
}

// SetNillableLesson sets the "lesson" field if the given value is not nil.
func (wu *WordUpdate) SetNillableLesson(i *int32) *WordUpdate {
	if i != nil {
		wu.SetLesson(*i)
	}
	return wu
}

// AddLesson adds i to the "lesson" field.
func (wu *WordUpdate) AddLesson(i int32) *WordUpdate {
	wu.mutation.AddLesson(i)
	return wu
}

// Mutation returns the WordMutation object of the builder.
func (wu *WordUpdate) Mutation() *WordMutation {
	return wu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wu *WordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, wu.sqlSave, wu.mutation, wu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wu *WordUpdate) SaveX(ctx context.Context) int {
	affected, err := wu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wu *WordUpdate) Exec(ctx context.Context) error {
	_, err := wu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wu *WordUpdate) ExecX(ctx context.Context) {
	if err := wu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wu *WordUpdate) check() error {
	if v, ok := wu.mutation.English(); ok {
		if err := word.EnglishValidator(v); err != nil {
			return &ValidationError{Name: "english", err: fmt.Errorf(`ent: validator failed for field "Word.english": %w`, err)}
		}
	}
	if v, ok := wu.mutation.Russian(); ok {
		if err := word.RussianValidator(v); err != nil {
			return &ValidationError{Name: "russian", err: fmt.Errorf(`ent: validator failed for field "Word.russian": %w`, err)}
		}
	}
	return nil
}

func (wu *WordUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt))
	if ps := wu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wu.mutation.English(); ok {
		_spec.SetField(word.FieldEnglish, field.TypeString, value)
	}
	if value, ok := wu.mutation.Russian(); ok {
		_spec.SetField(word.FieldRussian, field.TypeString, value)
	}
	if value, ok := wu.mutation.Alternates(); ok {
		_spec.SetField(word.FieldAlternates, field.TypeJSON, value)
	}
	if value, ok := wu.mutation.AppendedAlternates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, word.FieldAlternates, value)
		})
	}
	if value, ok := wu.mutation.Lesson(); ok {
		_spec.SetField(word.FieldLesson, field.TypeInt32, value)
	}
	if value, ok := wu.mutation.AddedLesson(); ok {
		_spec.AddField(word.FieldLesson, field.TypeInt32, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, wu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wu.mutation.done = true
	return n, nil
}

// WordUpdateOne is the builder for updating a single Word entity.
type WordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WordMutation
}

// SetEnglish sets the "english" field.
func (wuo *WordUpdateOne) SetEnglish(s string) *WordUpdateOne {
	wuo.mutation.SetEnglish(s)
	return wuo
}

// SetNillableEnglish sets the "english" field if the given value is not nil.
func (wuo *WordUpdateOne) SetNillableEnglish(s *string) *WordUpdateOne {
	if s != nil {
		wuo.SetEnglish(*s)
	}
	return wuo
}

// SetRussian sets the "russian" field.
func (wuo *WordUpdateOne) SetRussian(s string) *WordUpdateOne {
	wuo.mutation.SetRussian(s)
	return wuo
}

// SetNillableRussian sets the "russian" field if the given value is not nil.
func (wuo *WordUpdateOne) SetNillableRussian(s *string) *WordUpdateOne {
	if s != nil {
		wuo.SetRussian(*s)
	}
	return wuo
}

// SetAlternates sets the "alternates" field.
func (wuo *WordUpdateOne) SetAlternates(s []string) *WordUpdateOne {
	wuo.mutation.SetAlternates(s)
	return wuo
}

// AppendAlternates appends s to the "alternates" field.
func (wuo *WordUpdateOne) AppendAlternates(s []string) *WordUpdateOne {
	wuo.mutation.AppendAlternates(s)
	return wuo
}

// SetLesson sets the "lesson" field.
func (wuo *WordUpdateOne) SetLesson(i int32) *WordUpdateOne {
	wuo.mutation.ResetLesson()
	wuo.mutation.SetLesson(i)
	return wuo
}

// SetNillableLesson sets the "lesson" field if the given value is not nil.
func (wuo *WordUpdateOne) SetNillableLesson(i *int32) *WordUpdateOne {
	if i != nil {
		wuo.SetLesson(*i)
	}
	return wuo
}

// AddLesson adds i to the "lesson" field.
func (wuo *WordUpdateOne) AddLesson(i int32) *WordUpdateOne {
	wuo.mutation.AddLesson(i)
	return wuo
}

// Mutation returns the WordMutation object of the builder.
func (wuo *WordUpdateOne) Mutation() *WordMutation {
	return wuo.mutation
}

// Where appends a list predicates to the WordUpdate builder.
func (wuo *WordUpdateOne) Where(ps ...predicate.Word) *WordUpdateOne {
	wuo.mutation.Where(ps...)
	return wuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wuo *WordUpdateOne) Select(field string, fields ...string) *WordUpdateOne {
	wuo.fields = append([]string{field}, fields...)
	return wuo
}

// Save executes the query and returns the updated Word entity.
func (wuo *WordUpdateOne) Save(ctx context.Context) (*Word, error) {
	return withHooks(ctx, wuo.sqlSave, wuo.mutation, wuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wuo *WordUpdateOne) SaveX(ctx context.Context) *Word {
	node, err := wuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wuo *WordUpdateOne) Exec(ctx context.Context) error {
	_, err := wuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wuo *WordUpdateOne) ExecX(ctx context.Context) {
	if err := wuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wuo *WordUpdateOne) check() error {
	if v, ok := wuo.mutation.English(); ok {
		if err := word.EnglishValidator(v); err != nil {
			return &ValidationError{Name: "english", err: fmt.Errorf(`ent: validator failed for field "Word.english": %w`, err)}
		}
	}
	if v, ok := wuo.mutation.Russian(); ok {
		if err := word.RussianValidator(v); err != nil {
			return &ValidationError{Name: "russian", err: fmt.Errorf(`ent: validator failed for field "Word.russian": %w`, err)}
		}
	}
	return nil
}

func (wuo *WordUpdateOne) sqlSave(ctx context.Context) (_node *Word, err error) {
	if err := wuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt))
	id, ok := wuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Word.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, word.FieldID)
		for _, f := range fields {
			if !word.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != word.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wuo.mutation.English(); ok {
		_spec.SetField(word.FieldEnglish, field.TypeString, value)
	}
	if value, ok := wuo.mutation.Russian(); ok {
		_spec.SetField(word.FieldRussian, field.TypeString, value)
	}
	if value, ok := wuo.mutation.Alternates(); ok {
		_spec.SetField(word.FieldAlternates, field.TypeJSON, value)
	}
	if value, ok := wuo.mutation.AppendedAlternates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, word.FieldAlternates, value)
		})
	}
	if value, ok := wuo.mutation.Lesson(); ok {
		_spec.SetField(word.FieldLesson, field.TypeInt32, value)
	}
	if value, ok := wuo.mutation.AddedLesson(); ok {
		_spec.AddField(word.FieldLesson, field.TypeInt32, value)
	}
	_node = &Word{config: wuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wuo.mutation.done = true
	return _node, nil
}
