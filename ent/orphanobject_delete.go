// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behark/autoanikw-sub000/ent/orphanobject"
	"github.com/behark/autoanikw-sub000/ent/predicate"
)

// OrphanObjectDelete is the builder for deleting a OrphanObject entity.
type OrphanObjectDelete struct {
	config
	hooks    []Hook
	mutation *OrphanObjectMutation
}

// Where appends a list predicates to the OrphanObjectDelete builder.
func (ood *OrphanObjectDelete) Where(ps ...predicate.OrphanObject) *OrphanObjectDelete {
	ood.mutation.Where(ps...)
	return ood
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ood *OrphanObjectDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ood.sqlExec, ood.mutation, ood.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ood *OrphanObjectDelete) ExecX(ctx context.Context) int {
	n, err := ood.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ood *OrphanObjectDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(orphanobject.Table, sqlgraph.NewFieldSpec(orphanobject.FieldID, field.TypeUint))
	if ps := ood.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ood.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ood.mutation.done = true
	return affected, err
}

// OrphanObjectDeleteOne is the builder for deleting a single OrphanObject entity.
type OrphanObjectDeleteOne struct {
	ood *OrphanObjectDelete
}

// Where appends a list predicates to the OrphanObjectDelete builder.
func (oodo *OrphanObjectDeleteOne) Where(ps ...predicate.OrphanObject) *OrphanObjectDeleteOne {
	oodo.ood.mutation.Where(ps...)
	return oodo
}

// Exec executes the deletion query.
func (oodo *OrphanObjectDeleteOne) Exec(ctx context.Context) error {
	n, err := oodo.ood.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{orphanobject.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (oodo *OrphanObjectDeleteOne) ExecX(ctx context.Context) {
	if err := oodo.Exec(ctx); err != nil {
		panic(err)
	}
}
