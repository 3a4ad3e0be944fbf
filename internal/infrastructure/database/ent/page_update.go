// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/page"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/predicate"
)

// PageUpdate is the builder for updating Page entities.
type PageUpdate struct {
	config
	hooks    []Hook
	mutation *PageMutation
}

// Where appends a list predicates to the PageUpdate builder.
func (pu *PageUpdate) Where(ps ...predicate.Page) *PageUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetLesson sets the "lesson" field.
func (pu *PageUpdate) SetLesson(i int32) *PageUpdate {
	pu.mutation.ResetLesson()
	pu.mutation.SetLesson(i)
	return pu
}

// SetNillableLesson sets the "lesson" field if the given value is not nil.
func (pu *PageUpdate) SetNillableLesson(i *int32) *PageUpdate {
	if i != nil {
		pu.SetLesson(*i)
	}
	return pu
}

// AddLesson adds i to the "lesson" field.
func (pu *PageUpdate) AddLesson(i int32) *PageUpdate {
	pu.mutation.AddLesson(i)
	return pu
}

// SetNumber sets the "number" field.
func (pu *PageUpdate) SetNumber(i int32) *PageUpdate {
	pu.mutation.ResetNumber()
	pu.mutation.SetNumber(i)
	return pu
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (pu *PageUpdate) SetNillableNumber(i *int32) *PageUpdate {
	if i != nil {
		pu.SetNumber(*i)
	}
	return pu
}

// AddNumber adds i to the "number" field.
func (pu *PageUpdate) AddNumber(i int32) *PageUpdate {
	pu.mutation.AddNumber(i)
	return pu
}

// SetMessageRef sets the "message_ref" field.
func (pu *PageUpdate) SetMessageRef(i int64) *PageUpdate {
	pu.mutation.ResetMessageRef()
	pu.mutation.SetMessageRef(i)
	return pu
}

// SetNillableMessageRef sets the "message_ref" field if the given value is not nil.
func (pu *PageUpdate) SetNillableMessageRef(i *int64) *PageUpdate {
	if i != nil {
		pu.SetMessageRef(*i)
	}
	return pu
}

// AddMessageRef adds i to the "message_ref" field.
func (pu *PageUpdate) AddMessageRef(i int64) *PageUpdate {
	pu.mutation.AddMessageRef(i)
	return pu
}

// SetName sets the "name" field.
func (pu *PageUpdate) SetName(s string) *PageUpdate {
	pu.mutation.SetName(s)
	return pu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (pu *PageUpdate) SetNillableName(s *string) *PageUpdate {
	if s != nil {
		pu.SetName(*s)
	}
	return pu
}

// Mutation returns the PageMutation object of the builder.
func (pu *PageUpdate) Mutation() *PageMutation {
	return pu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *PageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *PageUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *PageUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *PageUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (pu *PageUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(page.Table, page.Columns, sqlgraph.NewFieldSpec(page.FieldID, field.TypeInt))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.Lesson(); ok {
		_spec.SetField(page.FieldLesson, field.TypeInt32, value)
	}
	if value, ok := pu.mutation.AddedLesson(); ok {
		_spec.AddField(page.FieldLesson, field.TypeInt32, value)
	}
	if value, ok := pu.mutation.Number(); ok {
		_spec.SetField(page.FieldNumber, field.TypeInt32, value)
	}
	if value, ok := pu.mutation.AddedNumber(); ok {
		_spec.AddField(page.FieldNumber, field.TypeInt32, value)
	}
	if value, ok := pu.mutation.MessageRef(); ok {
		_spec.SetField(page.FieldMessageRef, field.TypeInt64, value)
	}
	if value, ok := pu.mutation.AddedMessageRef(); ok {
		_spec.AddField(page.FieldMessageRef, field.TypeInt64, value)
	}
	if value, ok := pu.mutation.Name(); ok {
		_spec.SetField(page.FieldName, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{page.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// PageUpdateOne is the builder for updating a single Page entity.
type PageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PageMutation
}

// SetLesson sets the "lesson" field.
func (puo *PageUpdateOne) SetLesson(i int32) *PageUpdateOne {
	puo.mutation.ResetLesson()
	puo.mutation.SetLesson(i)
	return puo
}

// SetNillableLesson sets the "lesson" field if the given value is not nil.
func (puo *PageUpdateOne) SetNillableLesson(i *int32) *PageUpdateOne {
	if i != nil {
		puo.SetLesson(*i)
	}
	return puo
}

// AddLesson adds i to the "lesson" field.
func (puo *PageUpdateOne) AddLesson(i int32) *PageUpdateOne {
	puo.mutation.AddLesson(i)
	return puo
}

// SetNumber sets the "number" field.
func (puo *PageUpdateOne) SetNumber(i int32) *PageUpdateOne {
	puo.mutation.ResetNumber()
	puo.mutation.SetNumber(i)
	return puo
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (puo *PageUpdateOne) SetNillableNumber(i *int32) *PageUpdateOne {
	if i != nil {
		puo.SetNumber(*i)
	}
	return puo
}

// AddNumber adds i to the "number" field.
func (puo *PageUpdateOne) AddNumber(i int32) *PageUpdateOne {
	puo.mutation.AddNumber(i)
	return puo
}

// SetMessageRef sets the "message_ref" field.
func (puo *PageUpdateOne) SetMessageRef(i int64) *PageUpdateOne {
	puo.mutation.ResetMessageRef()
	puo.mutation.SetMessageRef(i)
	return puo
}

// SetNillableMessageRef sets the "message_ref" field if the given value is not nil.
func (puo *PageUpdateOne) SetNillableMessageRef(i *int64) *PageUpdateOne {
	if i != nil {
		puo.SetMessageRef(*i)
	}
	return puo
}

// AddMessageRef adds i to the "message_ref" field.
func (puo *PageUpdateOne) AddMessageRef(i int64) *PageUpdateOne {
	puo.mutation.AddMessageRef(i)
	return puo
}

// SetName sets the "name" field.
func (puo *PageUpdateOne) SetName(s string) *PageUpdateOne {
	puo.mutation.SetName(s)
	return puo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (puo *PageUpdateOne) SetNillableName(s *string) *PageUpdateOne {
	if s != nil {
		puo.SetName(*s)
	}
	return puo
}

// Mutation returns the PageMutation object of the builder.
func (puo *PageUpdateOne) Mutation() *PageMutation {
	return puo.mutation
}

// Where appends a list predicates to the PageUpdate builder.
func (puo *PageUpdateOne) Where(ps ...predicate.Page) *PageUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *PageUpdateOne) Select(field string, fields ...string) *PageUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Page entity.
func (puo *PageUpdateOne) Save(ctx context.Context) (*Page, error) {
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *PageUpdateOne) SaveX(ctx context.Context) *Page {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *PageUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *PageUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (puo *PageUpdateOne) sqlSave(ctx context.Context) (_node *Page, err error) {
	_spec := sqlgraph.NewUpdateSpec(page.Table, page.Columns, sqlgraph.NewFieldSpec(page.FieldID, field.TypeInt))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Page.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, page.FieldID)
		for _, f := range fields {
			if !page.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != page.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := puo.mutation.Lesson(); ok {
		_spec.SetField(page.FieldLesson, field.TypeInt32, value)
	}
	if value, ok := puo.mutation.AddedLesson(); ok {
		_spec.AddField(page.FieldLesson, field.TypeInt32, value)
	}
	if value, ok := puo.mutation.Number(); ok {
		_spec.SetField(page.FieldNumber, field.TypeInt32, value)
	}
	if value, ok := puo.mutation.AddedNumber(); ok {
		_spec.AddField(page.FieldNumber, field.TypeInt32, value)
	}
	if value, ok := puo.mutation.MessageRef(); ok {
		_spec.SetField(page.FieldMessageRef, field.TypeInt64, value)
	}
	if value, ok := puo.mutation.AddedMessageRef(); ok {
		_spec.AddField(page.FieldMessageRef, field.TypeInt64, value)
	}
	if value, ok := puo.mutation.Name(); ok {
		_spec.SetField(page.FieldName, field.TypeString, value)
	}
	_node = &Page{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{page.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
