// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/confusionscore"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/predicate"
)

// ConfusionScoreUpdate is the builder for updating ConfusionScore entities.
type ConfusionScoreUpdate struct {
	config
	hooks    []Hook
	mutation *ConfusionScoreMutation
}

// Where appends a list predicates to the ConfusionScoreUpdate builder.
func (csu *ConfusionScoreUpdate) Where(ps ...predicate.ConfusionScore) *ConfusionScoreUpdate {
	csu.mutation.Where(ps...)
	return csu
}

// SetWordLowID sets the "word_low_id" field.
func (csu *ConfusionScoreUpdate) SetWordLowID(i int64) *ConfusionScoreUpdate {
	csu.mutation.ResetWordLowID()
	csu.mutation.SetWordLowID(i)
	return csu
}

// SetNillableWordLowID sets the "word_low_id" field if the given value is not nil.
func (csu *ConfusionScoreUpdate) SetNillableWordLowID(i *int64) *ConfusionScoreUpdate {
	if i != nil {
		csu.SetWordLowID(*i)
	}
	return csu
}

// AddWordLowID adds i to the "word_low_id" field.
func (csu *ConfusionScoreUpdate) AddWordLowID(i int64) *ConfusionScoreUpdate {
	csu.mutation.AddWordLowID(i)
	return csu
}

// SetWordHighID sets the "word_high_id" field.
func (csu *ConfusionScoreUpdate) SetWordHighID(i int64) *ConfusionScoreUpdate {
	csu.mutation.ResetWordHighID()
	csu.mutation.SetWordHighID(i)
	return csu
}

// SetNillableWordHighID sets the "word_high_id" field if the given value is not nil.
func (csu *ConfusionScoreUpdate) SetNillableWordHighID(i *int64) *ConfusionScoreUpdate {
	if i != nil {
		csu.SetWordHighID(*i)
	}
	return csu
}

// AddWordHighID adds i to the "word_high_id" field.
func (csu *ConfusionScoreUpdate) AddWordHighID(i int64) *ConfusionScoreUpdate {
	csu.mutation.AddWordHighID(i)
	return csu
}

// SetWeight sets the "weight" field.
func (csu *ConfusionScoreUpdate) SetWeight(f float64) *ConfusionScoreUpdate {
	csu.mutation.ResetWeight()
	csu.mutation.SetWeight(f)
	return csu
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (csu *ConfusionScoreUpdate) SetNillableWeight(f *float64) *ConfusionScoreUpdate {
	if f != nil {
		csu.SetWeight(*f)
	}
	return csu
}

// AddWeight adds f to the "weight" field.
func (csu *ConfusionScoreUpdate) AddWeight(f float64) *ConfusionScoreUpdate {
	csu.mutation.AddWeight(f)
	return csu
}

// Mutation returns the ConfusionScoreMutation object of the builder.
func (csu *ConfusionScoreUpdate) Mutation() *ConfusionScoreMutation {
	return csu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (csu *ConfusionScoreUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, csu.sqlSave, csu.mutation, csu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (csu *ConfusionScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := csu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (csu *ConfusionScoreUpdate) Exec(ctx context.Context) error {
	_, err := csu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (csu *ConfusionScoreUpdate) ExecX(ctx context.Context) {
	if err := csu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (csu *ConfusionScoreUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(confusionscore.Table, confusionscore.Columns, sqlgraph.NewFieldSpec(confusionscore.FieldID, field.TypeInt))
	if ps := csu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := csu.mutation.WordLowID(); ok {
		_spec.SetField(confusionscore.FieldWordLowID, field.TypeInt64, value)
	}
	if value, ok := csu.mutation.AddedWordLowID(); ok {
		_spec.AddField(confusionscore.FieldWordLowID, field.TypeInt64, value)
	}
	if value, ok := csu.mutation.WordHighID(); ok {
		_spec.SetField(confusionscore.FieldWordHighID, field.TypeInt64, value)
	}
	if value, ok := csu.mutation.AddedWordHighID(); ok {
		_spec.AddField(confusionscore.FieldWordHighID, field.TypeInt64, value)
	}
	if value, ok := csu.mutation.Weight(); ok {
		_spec.SetField(confusionscore.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := csu.mutation.AddedWeight(); ok {
		_spec.AddField(confusionscore.FieldWeight, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, csu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{confusionscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	csu.mutation.done = true
	return n, nil
}

// ConfusionScoreUpdateOne is the builder for updating a single ConfusionScore entity.
type ConfusionScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConfusionScoreMutation
}

// SetWordLowID sets the "word_low_id" field.
func (csuo *ConfusionScoreUpdateOne) SetWordLowID(i int64) *ConfusionScoreUpdateOne {
	csuo.mutation.ResetWordLowID()
	csuo.mutation.SetWordLowID(i)
	return csuo
}

// SetNillableWordLowID sets the "word_low_id" field if the given value is not nil.
func (csuo *ConfusionScoreUpdateOne) SetNillableWordLowID(i *int64) *ConfusionScoreUpdateOne {
	if i != nil {
		csuo.SetWordLowID(*i)
	}
	return csuo
}

// AddWordLowID adds i to the "word_low_id" field.
func (csuo *ConfusionScoreUpdateOne) AddWordLowID(i int64) *ConfusionScoreUpdateOne {
	csuo.mutation.AddWordLowID(i)
	return csuo
}

// SetWordHighID sets the "word_high_id" field.
func (csuo *ConfusionScoreUpdateOne) SetWordHighID(i int64) *ConfusionScoreUpdateOne {
	csuo.mutation.ResetWordHighID()
	csuo.mutation.SetWordHighID(i)
	return csuo
}

// SetNillableWordHighID sets the "word_high_id" field if the given value is not nil.
func (csuo *ConfusionScoreUpdateOne) SetNillableWordHighID(i *int64) *ConfusionScoreUpdateOne {
	if i != nil {
		csuo.SetWordHighID(*i)
	}
	return csuo
}

// AddWordHighID adds i to the "word_high_id" field.
func (csuo *ConfusionScoreUpdateOne) AddWordHighID(i int64) *ConfusionScoreUpdateOne {
	csuo.mutation.AddWordHighID(i)
	return csuo
}

// SetWeight sets the "weight" field.
func (csuo *ConfusionScoreUpdateOne) SetWeight(f float64) *ConfusionScoreUpdateOne {
	csuo.mutation.ResetWeight()
	csuo.mutation.SetWeight(f)
	return csuo
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (csuo *ConfusionScoreUpdateOne) SetNillableWeight(f *float64) *ConfusionScoreUpdateOne {
	if f != nil {
		csuo.SetWeight(*f)
	}
	return csuo
}

// AddWeight adds f to the "weight" field.
func (csuo *ConfusionScoreUpdateOne) AddWeight(f float64) *ConfusionScoreUpdateOne {
	csuo.mutation.AddWeight(f)
	return csuo
}

// Mutation returns the ConfusionScoreMutation object of the builder.
func (csuo *ConfusionScoreUpdateOne) Mutation() *ConfusionScoreMutation {
	return csuo.mutation
}

// Where appends a list predicates to the ConfusionScoreUpdate builder.
func (csuo *ConfusionScoreUpdateOne) Where(ps ...predicate.ConfusionScore) *ConfusionScoreUpdateOne {
	csuo.mutation.Where(ps...)
	return csuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (csuo *ConfusionScoreUpdateOne) Select(field string, fields ...string) *ConfusionScoreUpdateOne {
	csuo.fields = append([]string{field}, fields...)
	return csuo
}

// Save executes the query and returns the updated ConfusionScore entity.
func (csuo *ConfusionScoreUpdateOne) Save(ctx context.Context) (*ConfusionScore, error) {
	return withHooks(ctx, csuo.sqlSave, csuo.mutation, csuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (csuo *ConfusionScoreUpdateOne) SaveX(ctx context.Context) *ConfusionScore {
	node, err := csuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (csuo *ConfusionScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := csuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (csuo *ConfusionScoreUpdateOne) ExecX(ctx context.Context) {
	if err := csuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (csuo *ConfusionScoreUpdateOne) sqlSave(ctx context.Context) (_node *ConfusionScore, err error) {
	_spec := sqlgraph.NewUpdateSpec(confusionscore.Table, confusionscore.Columns, sqlgraph.NewFieldSpec(confusionscore.FieldID, field.TypeInt))
	id, ok := csuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConfusionScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := csuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, confusionscore.FieldID)
		for _, f := range fields {
			if !confusionscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != confusionscore.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := csuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := csuo.mutation.WordLowID(); ok {
		_spec.SetField(confusionscore.FieldWordLowID, field.TypeInt64, value)
	}
	if value, ok := csuo.mutation.AddedWordLowID(); ok {
		_spec.AddField(confusionscore.FieldWordLowID, field.TypeInt64, value)
	}
	if value, ok := csuo.mutation.WordHighID(); ok {
		_spec.SetField(confusionscore.FieldWordHighID, field.TypeInt64, value)
	}
	if value, ok := csuo.mutation.AddedWordHighID(); ok {
		_spec.AddField(confusionscore.FieldWordHighID, field.TypeInt64, value)
	}
	if value, ok := csuo.mutation.Weight(); ok {
		_spec.SetField(confusionscore.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := csuo.mutation.AddedWeight(); ok {
		_spec.AddField(confusionscore.FieldWeight, field.TypeFloat64, value)
	}
	_node = &ConfusionScore{config: csuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, csuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{confusionscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	csuo.mutation.done = true
	return _node, nil
}
