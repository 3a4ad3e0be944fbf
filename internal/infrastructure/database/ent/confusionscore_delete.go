// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/confusionscore"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/predicate"
)

// ConfusionScoreDelete is the builder for deleting a ConfusionScore entity.
type ConfusionScoreDelete struct {
	config
	hooks    []Hook
	mutation *ConfusionScoreMutation
}

// Where appends a list predicates to the ConfusionScoreDelete builder.
func (csd *ConfusionScoreDelete) Where(ps ...predicate.ConfusionScore) *ConfusionScoreDelete {
	csd.mutation.Where(ps...)
	return csd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (csd *ConfusionScoreDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, csd.sqlExec, csd.mutation, csd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (csd *ConfusionScoreDelete) ExecX(ctx context.Context) int {
	n, err := csd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (csd *ConfusionScoreDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(confusionscore.Table, sqlgraph.NewFieldSpec(confusionscore.FieldID, field.TypeInt))
	if ps := csd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, csd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	csd.mutation.done = true
	return affected, err
}

// ConfusionScoreDeleteOne is the builder for deleting a single ConfusionScore entity.
type ConfusionScoreDeleteOne struct {
	csd *ConfusionScoreDelete
}

// Where appends a list predicates to the ConfusionScoreDelete builder.
func (csdo *ConfusionScoreDeleteOne) Where(ps ...predicate.ConfusionScore) *ConfusionScoreDeleteOne {
	csdo.csd.mutation.Where(ps...)
	return csdo
}

// Exec executes the deletion query.
func (csdo *ConfusionScoreDeleteOne) Exec(ctx context.Context) error {
	n, err := csdo.csd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{confusionscore.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (csdo *ConfusionScoreDeleteOne) ExecX(ctx context.Context) {
	if err := csdo.Exec(ctx); err != nil {
		panic(err)
	}
}
