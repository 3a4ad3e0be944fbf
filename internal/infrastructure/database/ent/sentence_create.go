// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/sentence"
)

// SentenceCreate is the builder for creating a Sentence entity.
type SentenceCreate struct {
	config
	mutation *SentenceMutation
	hooks    []Hook
}

// SetText sets the "text" field.
func (sc *SentenceCreate) SetText(s string) *SentenceCreate {
	sc.mutation.SetText(s)
	return sc
}

// SetTranslation sets the "translation" field.
func (sc *SentenceCreate) SetTranslation(s string) *SentenceCreate {
	sc.mutation.SetTranslation(s)
	return sc
}

// SetLesson sets the "lesson" field.
func (sc *SentenceCreate) SetLesson(i int32) *SentenceCreate {
	sc.mutation.SetLesson(i)
	return sc
}

// SetNillableLesson sets the "lesson" field if the given value is not nil.
func (sc *SentenceCreate) SetNillableLesson(i *int32) *SentenceCreate {
	if i != nil {
		sc.SetLesson(*i)
	}
	return sc
}

// Mutation returns the SentenceMutation object of the builder.
func (sc *SentenceCreate) Mutation() *SentenceMutation {
	return sc.mutation
}

// Save creates the Sentence in the database.
func (sc *SentenceCreate) Save(ctx context.Context) (*Sentence, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *SentenceCreate) SaveX(ctx context.Context) *Sentence {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *SentenceCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *SentenceCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *SentenceCreate) defaults() {
	if _, ok := sc.mutation.Lesson(); !ok {
		v := sentence.DefaultLesson
		sc.mutation.SetLesson(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *SentenceCreate) check() error {
	if _, ok := sc.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Sentence.text"`)}
	}
	if v, ok := sc.mutation.Text(); ok {
		if err := sentence.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Sentence.text": %w`, err)}
		}
	}
	if _, ok := sc.mutation.Translation(); !ok {
		return &ValidationError{Name: "translation", err: errors.New(`ent: missing required field "Sentence.translation"`)}
	}
	if v, ok := sc.mutation.Translation(); ok {
		if err := sentence.TranslationValidator(v); err != nil {
			return &ValidationError{Name: "translation", err: fmt.Errorf(`ent: validator failed for field "Sentence.translation": %w`, err)}
		}
	}
	if _, ok := sc.mutation.Lesson(); !ok {
		return &ValidationError{Name: "lesson", err: errors.New(`ent: missing required field "Sentence.lesson"`)}
	}
	return nil
}

func (sc *SentenceCreate) sqlSave(ctx context.Context) (*Sentence, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *SentenceCreate) createSpec() (*Sentence, *sqlgraph.CreateSpec) {
	var (
		_node = &Sentence{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(sentence.Table, sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt))
	)
	if value, ok := sc.mutation.Text(); ok {
		_spec.SetField(sentence.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := sc.mutation.Translation(); ok {
		_spec.SetField(sentence.FieldTranslation, field.TypeString, value)
		_node.Translation = value
	}
	if value, ok := sc.mutation.Lesson(); ok {
		_spec.SetField(sentence.FieldLesson, field.TypeInt32, value)
		_node.Lesson = value
	}
	return _node, _spec
}

// SentenceCreateBulk is the builder for creating many Sentence entities in bulk.
type SentenceCreateBulk struct {
	config
	err      error
	builders []*SentenceCreate
}

// Save creates the Sentence entities in the database.
func (scb *SentenceCreateBulk) Save(ctx context.Context) ([]*Sentence, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Sentence, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SentenceMutation)
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
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *SentenceCreateBulk) SaveX(ctx context.Context) []*Sentence {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *SentenceCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *SentenceCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}
