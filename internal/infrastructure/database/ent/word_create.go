// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/word"
)

// WordCreate is the builder for creating a Word entity.
type WordCreate struct {
	config
	mutation *WordMutation
	hooks    []Hook
}

// SetEnglish sets the "english" field.
func (wc *WordCreate) SetEnglish(s string) *WordCreate {
	wc.mutation.SetEnglish(s)
	return wc
}

// SetRussian sets the "russian" field.
func (wc *WordCreate) SetRussian(s string) *WordCreate {
	wc.mutation.SetRussian(s)
	return wc
}

// SetAlternates sets the "alternates" field.
func (wc *WordCreate) SetAlternates(s []string) *WordCreate {
	wc.mutation.SetAlternates(s)
	return wc
}

// SetLesson sets the "lesson" field.
func (wc *WordCreate) SetLesson(i int32) *WordCreate {
	wc.mutation.SetLesson(i)
	return wc
}

// SetNillableLesson sets the "lesson" field if the given value is not nil.
func (wc *WordCreate) SetNillableLesson(i *int32) *WordCreate {
	if i != nil {
		wc.SetLesson(*i)
	}
	return wc
}

// Mutation returns the WordMutation object of the builder.
func (wc *WordCreate) Mutation() *WordMutation {
	return wc.mutation
}

// Save creates the Word in the database.
func (wc *WordCreate) Save(ctx context.Context) (*Word, error) {
	wc.defaults()
	return withHooks(ctx, wc.sqlSave, wc.mutation, wc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wc *WordCreate) SaveX(ctx context.Context) *Word {
	v, err := wc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wc *WordCreate) Exec(ctx context.Context) error {
	_, err := wc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wc *WordCreate) ExecX(ctx context.Context) {
	if err := wc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wc *WordCreate) defaults() {
	if _, ok := wc.mutation.Alternates(); !ok {
		v := word.DefaultAlternates
		wc.mutation.SetAlternates(v)
	}
	if _, ok := wc.mutation.Lesson(); !ok {
		v := word.DefaultLesson
		wc.mutation.SetLesson(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wc *WordCreate) check() error {
	if _, ok := wc.mutation.English(); !ok {
		return &ValidationError{Name: "english", err: errors.New(`ent: missing required field "Word.english"`)}
	}
	if v, ok := wc.mutation.English(); ok {
		if err := word.EnglishValidator(v); err != nil {
			return &ValidationError{Name: "english", err: fmt.Errorf(`ent: validator failed for field "Word.english": %w`, err)}
		}
	}
	if _, ok := wc.mutation.Russian(); !ok {
		return &ValidationError{Name: "russian", err: errors.New(`ent: missing required field "Word.russian"`)}
	}
	if v, ok := wc.mutation.Russian(); ok {
		if err := word.RussianValidator(v); err != nil {
			return &ValidationError{Name: "russian", err: fmt.Errorf(`ent: validator failed for field "Word.russian": %w`, err)}
		}
	}
	if _, ok := wc.mutation.Alternates(); !ok {
		return &ValidationError{Name: "alternates", err: errors.New(`ent: missing required field "Word.alternates"`)}
	}
	if _, ok := wc.mutation.Lesson(); !ok {
		return &ValidationError{Name: "lesson", err: errors.New(`ent: missing required field "Word.lesson"`)}
	}
	return nil
}

func (wc *WordCreate) sqlSave(ctx context.Context) (*Word, error) {
	if err := wc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	wc.mutation.id = &_node.ID
	wc.mutation.done = true
	return _node, nil
}

func (wc *WordCreate) createSpec() (*Word, *sqlgraph.CreateSpec) {
	var (
		_node = &Word{config: wc.config}
		_spec = sqlgraph.NewCreateSpec(word.Table, sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt))
	)
	if value, ok := wc.mutation.English(); ok {
		_spec.SetField(word.FieldEnglish, field.TypeString, value)
		_node.English = value
	}
	if value, ok := wc.mutation.Russian(); ok {
		_spec.SetField(word.FieldRussian, field.TypeString, value)
		_node.Russian = value
	}
	if value, ok := wc.mutation.Alternates(); ok {
		_spec.SetField(word.FieldAlternates, field.TypeJSON, value)
		_node.Alternates = value
	}
	if value, ok := wc.mutation.Lesson(); ok {
		_spec.SetField(word.FieldLesson, field.TypeInt32, value)
		_node.Lesson = value
	}
	return _node, _spec
}

// WordCreateBulk is the builder for creating many Word entities in bulk.
type WordCreateBulk struct {
	config
	err      error
	builders []*WordCreate
}

// Save creates the Word entities in the database.
func (wcb *WordCreateBulk) Save(ctx context.Context) ([]*Word, error) {
	if wcb.err != nil {
		return nil, wcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wcb.builders))
	nodes := make([]*Word, len(wcb.builders))
	mutators := make([]Mutator, len(wcb.builders))
	for i := range wcb.builders {
		func(i int, root context.Context) {
			builder := wcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WordMutation)
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
					_, err = mutators[i+1].Mutate(root, wcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, wcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wcb *WordCreateBulk) SaveX(ctx context.Context) []*Word {
	v, err := wcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wcb *WordCreateBulk) Exec(ctx context.Context) error {
	_, err := wcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wcb *WordCreateBulk) ExecX(ctx context.Context) {
	if err := wcb.Exec(ctx); err != nil {
		panic(err)
	}
}
