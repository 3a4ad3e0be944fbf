// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/relation"
)

// RelationCreate is the builder for creating a Relation entity.
type RelationCreate struct {
	config
	mutation *RelationMutation
	hooks    []Hook
}

// SetSourceWordID sets the "source_word_id" field.
func (rc *RelationCreate) SetSourceWordID(i int64) *RelationCreate {
	rc.mutation.SetSourceWordID(i)
	return rc
}

// SetTargetWordID sets the "target_word_id" field.
func (rc *RelationCreate) SetTargetWordID(i int64) *RelationCreate {
	rc.mutation.SetTargetWordID(i)
	return rc
}

// SetRelationType sets the "relation_type" field.
func (rc *RelationCreate) SetRelationType(s string) *RelationCreate {
	rc.mutation.SetRelationType(s)
	return rc
}

// Mutation returns the RelationMutation object of the builder.
func (rc *RelationCreate) Mutation() *RelationMutation {
	return rc.mutation
}

// Save creates the Relation in the database.
func (rc *RelationCreate) Save(ctx context.Context) (*Relation, error) {
	return withHooks(ctx, rc.sqlSave, rc.mutation, rc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rc *RelationCreate) SaveX(ctx context.Context) *Relation {
	v, err := rc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rc *RelationCreate) Exec(ctx context.Context) error {
	_, err := rc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rc *RelationCreate) ExecX(ctx context.Context) {
	if err := rc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rc *RelationCreate) check() error {
	if _, ok := rc.mutation.SourceWordID(); !ok {
		return &ValidationError{Name: "source_word_id", err: errors.New(`ent: missing required field "Relation.source_word_id"`)}
	}
	if _, ok := rc.mutation.TargetWordID(); !ok {
		return &ValidationError{Name: "target_word_id", err: errors.New(`ent: missing required field "Relation.target_word_id"`)}
	}
	if _, ok := rc.mutation.RelationType(); !ok {
		return &ValidationError{Name: "relation_type", err: errors.New(`ent: missing required field "Relation.relation_type"`)}
	}
	return nil
}

func (rc *RelationCreate) sqlSave(ctx context.Context) (*Relation, error) {
	if err := rc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	rc.mutation.id = &_node.ID
	rc.mutation.done = true
	return _node, nil
}

func (rc *RelationCreate) createSpec() (*Relation, *sqlgraph.CreateSpec) {
	var (
		_node = &Relation{config: rc.config}
		_spec = sqlgraph.NewCreateSpec(relation.Table, sqlgraph.NewFieldSpec(relation.FieldID, field.TypeInt))
	)
	if value, ok := rc.mutation.SourceWordID(); ok {
		_spec.SetField(relation.FieldSourceWordID, field.TypeInt64, value)
		_node.SourceWordID = value
	}
	if value, ok := rc.mutation.TargetWordID(); ok {
		_spec.SetField(relation.FieldTargetWordID, field.TypeInt64, value)
		_node.TargetWordID = value
	}
	if value, ok := rc.mutation.RelationType(); ok {
		_spec.SetField(relation.FieldRelationType, field.TypeString, value)
		_node.RelationType = value
	}
	return _node, _spec
}

// RelationCreateBulk is the builder for creating many Relation entities in bulk.
type RelationCreateBulk struct {
	config
	err      error
	builders []*RelationCreate
}

// Save creates the Relation entities in the database.
func (rcb *RelationCreateBulk) Save(ctx context.Context) ([]*Relation, error) {
	if rcb.err != nil {
		return nil, rcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rcb.builders))
	nodes := make([]*Relation, len(rcb.builders))
	mutators := make([]Mutator, len(rcb.builders))
	for i := range rcb.builders {
		func(i int, root context.Context) {
			builder := rcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RelationMutation)
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
					_, err = mutators[i+1].Mutate(root, rcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, rcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rcb *RelationCreateBulk) SaveX(ctx context.Context) []*Relation {
	v, err := rcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rcb *RelationCreateBulk) Exec(ctx context.Context) error {
	_, err := rcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rcb *RelationCreateBulk) ExecX(ctx context.Context) {
	if err := rcb.Exec(ctx); err != nil {
		panic(err)
	}
}
