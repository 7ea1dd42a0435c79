// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behark/autoanikw-sub000/ent/activitylog"
)

// ActivityLogCreate is the builder for creating a ActivityLog entity.
type ActivityLogCreate struct {
	config
	mutation *ActivityLogMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (alc *ActivityLogCreate) SetCreatedAt(t time.Time) *ActivityLogCreate {
	alc.mutation.SetCreatedAt(t)
	return alc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (alc *ActivityLogCreate) SetNillableCreatedAt(t *time.Time) *ActivityLogCreate {
	if t != nil {
		alc.SetCreatedAt(*t)
	}
	return alc
}

// SetUserID sets the "user_id" field.
func (alc *ActivityLogCreate) SetUserID(u uint) *ActivityLogCreate {
	alc.mutation.SetUserID(u)
	return alc
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (alc *ActivityLogCreate) SetNillableUserID(u *uint) *ActivityLogCreate {
	if u != nil {
		alc.SetUserID(*u)
	}
	return alc
}

// SetAction sets the "action" field.
func (alc *ActivityLogCreate) SetAction(s string) *ActivityLogCreate {
	alc.mutation.SetAction(s)
	return alc
}

// SetEntityType sets the "entity_type" field.
func (alc *ActivityLogCreate) SetEntityType(s string) *ActivityLogCreate {
	alc.mutation.SetEntityType(s)
	return alc
}

// SetEntityID sets the "entity_id" field.
func (alc *ActivityLogCreate) SetEntityID(u uint) *ActivityLogCreate {
	alc.mutation.SetEntityID(u)
	return alc
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (alc *ActivityLogCreate) SetNillableEntityID(u *uint) *ActivityLogCreate {
	if u != nil {
		alc.SetEntityID(*u)
	}
	return alc
}

// SetDetail sets the "detail" field.
func (alc *ActivityLogCreate) SetDetail(s string) *ActivityLogCreate {
	alc.mutation.SetDetail(s)
	return alc
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (alc *ActivityLogCreate) SetNillableDetail(s *string) *ActivityLogCreate {
	if s != nil {
		alc.SetDetail(*s)
	}
	return alc
}

// SetID sets the "id" field.
func (alc *ActivityLogCreate) SetID(u uint) *ActivityLogCreate {
	alc.mutation.SetID(u)
	return alc
}

// Mutation returns the ActivityLogMutation object of the builder.
func (alc *ActivityLogCreate) Mutation() *ActivityLogMutation {
	return alc.mutation
}

// Save creates the ActivityLog in the database.
func (alc *ActivityLogCreate) Save(ctx context.Context) (*ActivityLog, error) {
	alc.defaults()
	return withHooks(ctx, alc.sqlSave, alc.mutation, alc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (alc *ActivityLogCreate) SaveX(ctx context.Context) *ActivityLog {
	v, err := alc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (alc *ActivityLogCreate) Exec(ctx context.Context) error {
	_, err := alc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (alc *ActivityLogCreate) ExecX(ctx context.Context) {
	if err := alc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (alc *ActivityLogCreate) defaults() {
	if _, ok := alc.mutation.CreatedAt(); !ok {
		v := activitylog.DefaultCreatedAt()
		alc.mutation.SetCreatedAt(v)
	}
	if _, ok := alc.mutation.UserID(); !ok {
		v := activitylog.DefaultUserID
		alc.mutation.SetUserID(v)
	}
	if _, ok := alc.mutation.EntityID(); !ok {
		v := activitylog.DefaultEntityID
		alc.mutation.SetEntityID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (alc *ActivityLogCreate) check() error {
	if _, ok := alc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ActivityLog.created_at"`)}
	}
	if _, ok := alc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ActivityLog.user_id"`)}
	}
	if _, ok := alc.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ActivityLog.action"`)}
	}
	if v, ok := alc.mutation.Action(); ok {
		if err := activitylog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ActivityLog.action": %w`, err)}
		}
	}
	if _, ok := alc.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "ActivityLog.entity_type"`)}
	}
	if v, ok := alc.mutation.EntityType(); ok {
		if err := activitylog.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "ActivityLog.entity_type": %w`, err)}
		}
	}
	if _, ok := alc.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "ActivityLog.entity_id"`)}
	}
	return nil
}

func (alc *ActivityLogCreate) sqlSave(ctx context.Context) (*ActivityLog, error) {
	if err := alc.check(); err != nil {
		return nil, err
	}
	_node, _spec := alc.createSpec()
	if err := sqlgraph.CreateNode(ctx, alc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	alc.mutation.id = &_node.ID
	alc.mutation.done = true
	return _node, nil
}

func (alc *ActivityLogCreate) createSpec() (*ActivityLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityLog{config: alc.config}
		_spec = sqlgraph.NewCreateSpec(activitylog.Table, sqlgraph.NewFieldSpec(activitylog.FieldID, field.TypeUint))
	)
	if id, ok := alc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := alc.mutation.CreatedAt(); ok {
		_spec.SetField(activitylog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := alc.mutation.UserID(); ok {
		_spec.SetField(activitylog.FieldUserID, field.TypeUint, value)
		_node.UserID = value
	}
	if value, ok := alc.mutation.Action(); ok {
		_spec.SetField(activitylog.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := alc.mutation.EntityType(); ok {
		_spec.SetField(activitylog.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := alc.mutation.EntityID(); ok {
		_spec.SetField(activitylog.FieldEntityID, field.TypeUint, value)
		_node.EntityID = value
	}
	if value, ok := alc.mutation.Detail(); ok {
		_spec.SetField(activitylog.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	return _node, _spec
}

// ActivityLogCreateBulk is the builder for creating many ActivityLog entities in bulk.
type ActivityLogCreateBulk struct {
	config
	err      error
	builders []*ActivityLogCreate
}

// Save creates the ActivityLog entities in the database.
func (alcb *ActivityLogCreateBulk) Save(ctx context.Context) ([]*ActivityLog, error) {
	if alcb.err != nil {
		return nil, alcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(alcb.builders))
	nodes := make([]*ActivityLog, len(alcb.builders))
	mutators := make([]Mutator, len(alcb.builders))
	for i := range alcb.builders {
		func(i int, root context.Context) {
			builder := alcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityLogMutation)
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
					_, err = mutators[i+1].Mutate(root, alcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, alcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, alcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (alcb *ActivityLogCreateBulk) SaveX(ctx context.Context) []*ActivityLog {
	v, err := alcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (alcb *ActivityLogCreateBulk) Exec(ctx context.Context) error {
	_, err := alcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (alcb *ActivityLogCreateBulk) ExecX(ctx context.Context) {
	if err := alcb.Exec(ctx); err != nil {
		panic(err)
	}
}
