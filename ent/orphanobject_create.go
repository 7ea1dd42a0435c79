// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behark/autoanikw-sub000/ent/orphanobject"
)

// OrphanObjectCreate is the builder for creating a OrphanObject entity.
type OrphanObjectCreate struct {
	config
	mutation *OrphanObjectMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (ooc *OrphanObjectCreate) SetCreatedAt(t time.Time) *OrphanObjectCreate {
	ooc.mutation.SetCreatedAt(t)
	return ooc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ooc *OrphanObjectCreate) SetNillableCreatedAt(t *time.Time) *OrphanObjectCreate {
	if t != nil {
		ooc.SetCreatedAt(*t)
	}
	return ooc
}

// SetStorageKey sets the "storage_key" field.
func (ooc *OrphanObjectCreate) SetStorageKey(s string) *OrphanObjectCreate {
	ooc.mutation.SetStorageKey(s)
	return ooc
}

// SetAttempts sets the "attempts" field.
func (ooc *OrphanObjectCreate) SetAttempts(i int) *OrphanObjectCreate {
	ooc.mutation.SetAttempts(i)
	return ooc
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (ooc *OrphanObjectCreate) SetNillableAttempts(i *int) *OrphanObjectCreate {
	if i != nil {
		ooc.SetAttempts(*i)
	}
	return ooc
}

// SetLastError sets the "last_error" field.
func (ooc *OrphanObjectCreate) SetLastError(s string) *OrphanObjectCreate {
	ooc.mutation.SetLastError(s)
	return ooc
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (ooc *OrphanObjectCreate) SetNillableLastError(s *string) *OrphanObjectCreate {
	if s != nil {
		ooc.SetLastError(*s)
	}
	return ooc
}

// SetID sets the "id" field.
func (ooc *OrphanObjectCreate) SetID(u uint) *OrphanObjectCreate {
	ooc.mutation.SetID(u)
	return ooc
}

// Mutation returns the OrphanObjectMutation object of the builder.
func (ooc *OrphanObjectCreate) Mutation() *OrphanObjectMutation {
	return ooc.mutation
}

// Save creates the OrphanObject in the database.
func (ooc *OrphanObjectCreate) Save(ctx context.Context) (*OrphanObject, error) {
	ooc.defaults()
	return withHooks(ctx, ooc.sqlSave, ooc.mutation, ooc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ooc *OrphanObjectCreate) SaveX(ctx context.Context) *OrphanObject {
	v, err := ooc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ooc *OrphanObjectCreate) Exec(ctx context.Context) error {
	_, err := ooc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ooc *OrphanObjectCreate) ExecX(ctx context.Context) {
	if err := ooc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ooc *OrphanObjectCreate) defaults() {
	if _, ok := ooc.mutation.CreatedAt(); !ok {
		v := orphanobject.DefaultCreatedAt()
		ooc.mutation.SetCreatedAt(v)
	}
	if _, ok := ooc.mutation.Attempts(); !ok {
		v := orphanobject.DefaultAttempts
		ooc.mutation.SetAttempts(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ooc *OrphanObjectCreate) check() error {
	if _, ok := ooc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OrphanObject.created_at"`)}
	}
	if _, ok := ooc.mutation.StorageKey(); !ok {
		return &ValidationError{Name: "storage_key", err: errors.New(`ent: missing required field "OrphanObject.storage_key"`)}
	}
	if v, ok := ooc.mutation.StorageKey(); ok {
		if err := orphanobject.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "OrphanObject.storage_key": %w`, err)}
		}
	}
	if _, ok := ooc.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "OrphanObject.attempts"`)}
	}
	return nil
}

func (ooc *OrphanObjectCreate) sqlSave(ctx context.Context) (*OrphanObject, error) {
	if err := ooc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ooc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ooc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	ooc.mutation.id = &_node.ID
	ooc.mutation.done = true
	return _node, nil
}

func (ooc *OrphanObjectCreate) createSpec() (*OrphanObject, *sqlgraph.CreateSpec) {
	var (
		_node = &OrphanObject{config: ooc.config}
		_spec = sqlgraph.NewCreateSpec(orphanobject.Table, sqlgraph.NewFieldSpec(orphanobject.FieldID, field.TypeUint))
	)
	if id, ok := ooc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ooc.mutation.CreatedAt(); ok {
		_spec.SetField(orphanobject.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ooc.mutation.StorageKey(); ok {
		_spec.SetField(orphanobject.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = value
	}
	if value, ok := ooc.mutation.Attempts(); ok {
		_spec.SetField(orphanobject.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := ooc.mutation.LastError(); ok {
		_spec.SetField(orphanobject.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	return _node, _spec
}

// OrphanObjectCreateBulk is the builder for creating many OrphanObject entities in bulk.
type OrphanObjectCreateBulk struct {
	config
	err      error
	builders []*OrphanObjectCreate
}

// Save creates the OrphanObject entities in the database.
func (oocb *OrphanObjectCreateBulk) Save(ctx context.Context) ([]*OrphanObject, error) {
	if oocb.err != nil {
		return nil, oocb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(oocb.builders))
	nodes := make([]*OrphanObject, len(oocb.builders))
	mutators := make([]Mutator, len(oocb.builders))
	for i := range oocb.builders {
		func(i int, root context.Context) {
			builder := oocb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrphanObjectMutation)
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
					_, err = mutators[i+1].Mutate(root, oocb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, oocb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = uint(id)
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
		if _, err := mutators[0].Mutate(ctx, oocb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (oocb *OrphanObjectCreateBulk) SaveX(ctx context.Context) []*OrphanObject {
	v, err := oocb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (oocb *OrphanObjectCreateBulk) Exec(ctx context.Context) error {
	_, err := oocb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (oocb *OrphanObjectCreateBulk) ExecX(ctx context.Context) {
	if err := oocb.Exec(ctx); err != nil {
		panic(err)
	}
}
