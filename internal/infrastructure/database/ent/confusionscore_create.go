// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/confusionscore"
)

// ConfusionScoreCreate is the builder for creating a ConfusionScore entity.
type ConfusionScoreCreate struct {
	config
	mutation *ConfusionScoreMutation
	hooks    []Hook
}

// SetWordLowID sets the "word_low_id" field.
func (csc *ConfusionScoreCreate) SetWordLowID(i int64) *ConfusionScoreCreate {
	csc.mutation.SetWordLowID(i)
	return csc
}

// SetWordHighID sets the "word_high_id" field.
func (csc *ConfusionScoreCreate) SetWordHighID(i int64) *ConfusionScoreCreate {
	csc.mutation.SetWordHighID(i)
	return csc
}

// SetWeight sets the "weight" field.
func (csc *ConfusionScoreCreate) SetWeight(f float64) *ConfusionScoreCreate {
	csc.mutation.SetWeight(f)
	return csc
}

// Mutation returns the ConfusionScoreMutation object of the builder.
func (csc *ConfusionScoreCreate) Mutation() *ConfusionScoreMutation {
	return csc.mutation
}

// Save creates the ConfusionScore in the database.
func (csc *ConfusionScoreCreate) Save(ctx context.Context) (*ConfusionScore, error) {
	return withHooks(ctx, csc.sqlSave, csc.mutation, csc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (csc *ConfusionScoreCreate) SaveX(ctx context.Context) *ConfusionScore {
	v, err := csc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (csc *ConfusionScoreCreate) Exec(ctx context.Context) error {
	_, err := csc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (csc *ConfusionScoreCreate) ExecX(ctx context.Context) {
	if err := csc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (csc *ConfusionScoreCreate) check() error {
	if _, ok := csc.mutation.WordLowID(); !ok {
		return &ValidationError{Name: "word_low_id", err: errors.New(`ent: missing required field "ConfusionScore.word_low_id"`)}
	}
	if _, ok := csc.mutation.WordHighID(); !ok {
		return &ValidationError{Name: "word_high_id", err: errors.New(`ent: missing required field "ConfusionScore.word_high_id"`)}
	}
	if _, ok := csc.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "ConfusionScore.weight"`)}
	}
	return nil
}

func (csc *ConfusionScoreCreate) sqlSave(ctx context.Context) (*ConfusionScore, error) {
	if err := csc.check(); err != nil {
		return nil, err
	}
	_node, _spec := csc.createSpec()
	if err := sqlgraph.CreateNode(ctx, csc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	csc.mutation.id = &_node.ID
	csc.mutation.done = true
	return _node, nil
}

func (csc *ConfusionScoreCreate) createSpec() (*ConfusionScore, *sqlgraph.CreateSpec) {
	var (
		_node = &ConfusionScore{config: csc.config}
		_spec = sqlgraph.NewCreateSpec(confusionscore.Table, sqlgraph.NewFieldSpec(confusionscore.FieldID, field.TypeInt))
	)
	if value, ok := csc.mutation.WordLowID(); ok {
		_spec.SetField(confusionscore.FieldWordLowID, field.TypeInt64, value)
		_node.WordLowID = value
	}
	if value, ok := csc.mutation.WordHighID(); ok {
		_spec.SetField(confusionscore.FieldWordHighID, field.TypeInt64, value)
		_node.WordHighID = value
	}
	if value, ok := csc.mutation.Weight(); ok {
		_spec.SetField(confusionscore.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	return _node, _spec
}

// ConfusionScoreCreateBulk is the builder for creating many ConfusionScore entities in bulk.
type ConfusionScoreCreateBulk struct {
	config
	err      error
	builders []*ConfusionScoreCreate
}

// Save creates the ConfusionScore entities in the database.
func (cscb *ConfusionScoreCreateBulk) Save(ctx context.Context) ([]*ConfusionScore, error) {
	if cscb.err != nil {
		return nil, cscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cscb.builders))
	nodes := make([]*ConfusionScore, len(cscb.builders))
	mutators := make([]Mutator, len(cscb.builders))
	for i := range cscb.builders {
		func(i int, root context.Context) {
			builder := cscb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConfusionScoreMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, cscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cscb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, cscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cscb *ConfusionScoreCreateBulk) SaveX(ctx context.Context) []*ConfusionScore {
	v, err := cscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cscb *ConfusionScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := cscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cscb *ConfusionScoreCreateBulk) ExecX(ctx context.Context) {
	if err := cscb.Exec(ctx); err != nil {
		panic(err)
	}
}
