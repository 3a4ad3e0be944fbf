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
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/relation"
)

// RelationUpdate is the builder for updating Relation entities.
type RelationUpdate struct {
	config
	hooks    []Hook
	mutation *RelationMutation
}

// Where appends a list predicates to the RelationUpdate builder.
func (ru *RelationUpdate) Where(ps ...predicate.Relation) *RelationUpdate {
	ru.mutation.Where(ps...)
	return ru
}

// SetSourceWordID sets the "source_word_id" field.
func (ru *RelationUpdate) SetSourceWordID(i int64) *RelationUpdate {
	ru.mutation.ResetSourceWordID()
	ru.mutation.SetSourceWordID(i)
	return ru
}

// SetNillableSourceWordID sets the "source_word_id" field if the given value is not nil.
func (ru *RelationUpdate) SetNillableSourceWordID(i *int64) *RelationUpdate {
	if i != nil {
		ru.SetSourceWordID(*i)
	}
	return ru
}

// AddSourceWordID adds i to the "source_word_id" field.
func (ru *RelationUpdate) AddSourceWordID(i int64) *RelationUpdate {
	ru.mutation.AddSourceWordID(i)
	return ru
}

// SetTargetWordID sets the "target_word_id" field.
func (ru *RelationUpdate) SetTargetWordID(i int64) *RelationUpdate {
	ru.mutation.ResetTargetWordID()
	ru.mutation.SetTargetWordID(i)
	return ru
}

// SetNillableTargetWordID sets the "target_word_id" field if the given value is not nil.
func (ru *RelationUpdate) SetNillableTargetWordID(i *int64) *RelationUpdate {
	if i != nil {
		ru.SetTargetWordID(*i)
	}
	return ru
}

// AddTargetWordID adds i to the "target_word_id" field.
func (ru *RelationUpdate) AddTargetWordID(i int64) *RelationUpdate {
	ru.mutation.AddTargetWordID(i)
	return ru
}

// SetRelationType sets the "relation_type" field.
func (ru *RelationUpdate) SetRelationType(s string) *RelationUpdate {
	ru.mutation.SetRelationType(s)
	return ru
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (ru *RelationUpdate) SetNillableRelationType(s *string) *RelationUpdate {
	if s != nil {
		ru.SetRelationType(*s)
	}
	return ru
}

// Mutation returns the RelationMutation object of the builder.
func (ru *RelationUpdate) Mutation() *RelationMutation {
	return ru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ru *RelationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ru.sqlSave, ru.mutation, ru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ru *RelationUpdate) SaveX(ctx context.Context) int {
	affected, err := ru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ru *RelationUpdate) Exec(ctx context.Context) error {
	_, err := ru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ru *RelationUpdate) ExecX(ctx context.Context) {
	if err := ru.Exec(ctx); err != nil {
		panic(err)
	}
}

func (ru *RelationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(relation.Table, relation.Columns, sqlgraph.NewFieldSpec(relation.FieldID, field.TypeInt))
	if ps := ru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ru.mutation.SourceWordID(); ok {
		_spec.SetField(relation.FieldSourceWordID, field.TypeInt64, value)
	}
	if value, ok := ru.mutation.AddedSourceWordID(); ok {
		_spec.AddField(relation.FieldSourceWordID, field.TypeInt64, value)
	}
	if value, ok := ru.mutation.TargetWordID(); ok {
		_spec.SetField(relation.FieldTargetWordID, field.TypeInt64, value)
	}
	if value, ok := ru.mutation.AddedTargetWordID(); ok {
		_spec.AddField(relation.FieldTargetWordID, field.TypeInt64, value)
	}
	if value, ok := ru.mutation.RelationType(); ok {
		_spec.SetField(relation.FieldRelationType, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{relation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ru.mutation.done = true
	return n, nil
}

// RelationUpdateOne is the builder for updating a single Relation entity.
type RelationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RelationMutation
}

// SetSourceWordID sets the "source_word_id" field.
func (ruo *RelationUpdateOne) SetSourceWordID(i int64) *RelationUpdateOne {
	ruo.mutation.ResetSourceWordID()
	ruo.mutation.SetSourceWordID(i)
	return ruo
}

// SetNillableSourceWordID sets the "source_word_id" field if the given value is not nil.
func (ruo *RelationUpdateOne) SetNillableSourceWordID(i *int64) *RelationUpdateOne {
	if i != nil {
		ruo.SetSourceWordID(*i)
	}
	return ruo
}

// AddSourceWordID adds i to the "source_word_id" field.
func (ruo *RelationUpdateOne) AddSourceWordID(i int64) *RelationUpdateOne {
	ruo.mutation.AddSourceWordID(i)
	return ruo
}

// SetTargetWordID sets the "target_word_id" field.
func (ruo *RelationUpdateOne) SetTargetWordID(i int64) *RelationUpdateOne {
	ruo.mutation.ResetTargetWordID()
	ruo.mutation.SetTargetWordID(i)
	return ruo
}

// SetNillableTargetWordID sets the "target_word_id" field if the given value is not nil.
func (ruo *RelationUpdateOne) SetNillableTargetWordID(i *int64) *RelationUpdateOne {
	if i != nil {
		ruo.SetTargetWordID(*i)
	}
	return ruo
}

// AddTargetWordID adds i to the "target_word_id" field.
func (ruo *RelationUpdateOne) AddTargetWordID(i int64) *RelationUpdateOne {
	ruo.mutation.AddTargetWordID(i)
	return ruo
}

// SetRelationType sets the "relation_type" field.
func (ruo *RelationUpdateOne) SetRelationType(s string) *RelationUpdateOne {
	ruo.mutation.SetRelationType(s)
	return ruo
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (ruo *RelationUpdateOne) SetNillableRelationType(s *string) *RelationUpdateOne {
	if s != nil {
		ruo.SetRelationType(*s)
	}
	return ruo
}

// Mutation returns the RelationMutation object of the builder.
func (ruo *RelationUpdateOne) Mutation() *RelationMutation {
	return ruo.mutation
}

// Where appends a list predicates to the RelationUpdate builder.
func (ruo *RelationUpdateOne) Where(ps ...predicate.Relation) *RelationUpdateOne {
	ruo.mutation.Where(ps...)
	return ruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ruo *RelationUpdateOne) Select(field string, fields ...string) *RelationUpdateOne {
	ruo.fields = append([]string{field}, fields...)
	return ruo
}

// Save executes the query and returns the updated Relation entity.
func (ruo *RelationUpdateOne) Save(ctx context.Context) (*Relation, error) {
	return withHooks(ctx, ruo.sqlSave, ruo.mutation, ruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ruo *RelationUpdateOne) SaveX(ctx context.Context) *Relation {
	node, err := ruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ruo *RelationUpdateOne) Exec(ctx context.Context) error {
	_, err := ruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ruo *RelationUpdateOne) ExecX(ctx context.Context) {
	if err := ruo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (ruo *RelationUpdateOne) sqlSave(ctx context.Context) (_node *Relation, err error) {
	_spec := sqlgraph.NewUpdateSpec(relation.Table, relation.Columns, sqlgraph.NewFieldSpec(relation.FieldID, field.TypeInt))
	id, ok := ruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Relation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, relation.FieldID)
		for _, f := range fields {
			if !relation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != relation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ruo.mutation.SourceWordID(); ok {
		_spec.SetField(relation.FieldSourceWordID, field.TypeInt64, value)
	}
	if value, ok := ruo.mutation.AddedSourceWordID(); ok {
		_spec.AddField(relation.FieldSourceWordID, field.TypeInt64, value)
	}
	if value, ok := ruo.mutation.TargetWordID(); ok {
		_spec.SetField(relation.FieldTargetWordID, field.TypeInt64, value)
	}
	if value, ok := ruo.mutation.AddedTargetWordID(); ok {
		_spec.AddField(relation.FieldTargetWordID, field.TypeInt64, value)
	}
	if value, ok := ruo.mutation.RelationType(); ok {
		_spec.SetField(relation.FieldRelationType, field.TypeString, value)
	}
	_node = &Relation{config: ruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{relation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ruo.mutation.done = true
	return _node, nil
}
