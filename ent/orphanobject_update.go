// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behark/autoanikw-sub000/ent/orphanobject"
	"github.com/behark/autoanikw-sub000/ent/predicate"
)

// OrphanObjectUpdate is the builder for updating OrphanObject entities.
type OrphanObjectUpdate struct {
	config
	hooks    []Hook
	mutation *OrphanObjectMutation
}

// Where appends a list predicates to the OrphanObjectUpdate builder.
func (oou *OrphanObjectUpdate) Where(ps ...predicate.OrphanObject) *OrphanObjectUpdate {
	oou.mutation.Where(ps...)
	return oou
}

// SetStorageKey sets the "storage_key" field.
func (oou *OrphanObjectUpdate) SetStorageKey(s string) *OrphanObjectUpdate {
	oou.mutation.SetStorageKey(s)
	return oou
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (oou *OrphanObjectUpdate) SetNillableStorageKey(s *string) *OrphanObjectUpdate {
	if s != nil {
		oou.SetStorageKey(*s)
	}
	return oou
}

// SetAttempts sets the "attempts" field.
func (oou *OrphanObjectUpdate) SetAttempts(i int) *OrphanObjectUpdate {
	oou.mutation.ResetAttempts()
	oou.mutation.SetAttempts(i)
	return oou
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (oou *OrphanObjectUpdate) SetNillableAttempts(i *int) *OrphanObjectUpdate {
	if i != nil {
		oou.SetAttempts(*i)
	}
	return oou
}

// AddAttempts adds i to the "attempts" field.
func (oou *OrphanObjectUpdate) AddAttempts(i int) *OrphanObjectUpdate {
	oou.mutation.AddAttempts(i)
	return oou
}

// SetLastError sets the "last_error" field.
func (oou *OrphanObjectUpdate) SetLastError(s string) *OrphanObjectUpdate {
	oou.mutation.SetLastError(s)
	return oou
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (oou *OrphanObjectUpdate) SetNillableLastError(s *string) *OrphanObjectUpdate {
	if s != nil {
		oou.SetLastError(*s)
	}
	return oou
}

// ClearLastError clears the value of the "last_error" field.
func (oou *OrphanObjectUpdate) ClearLastError() *OrphanObjectUpdate {
	oou.mutation.ClearLastError()
	return oou
}

// Mutation returns the OrphanObjectMutation object of the builder.
func (oou *OrphanObjectUpdate) Mutation() *OrphanObjectMutation {
	return oou.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (oou *OrphanObjectUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, oou.sqlSave, oou.mutation, oou.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (oou *OrphanObjectUpdate) SaveX(ctx context.Context) int {
	affected, err := oou.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (oou *OrphanObjectUpdate) Exec(ctx context.Context) error {
	_, err := oou.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (oou *OrphanObjectUpdate) ExecX(ctx context.Context) {
	if err := oou.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (oou *OrphanObjectUpdate) check() error {
	if v, ok := oou.mutation.StorageKey(); ok {
		if err := orphanobject.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "OrphanObject.storage_key": %w`, err)}
		}
	}
	return nil
}

func (oou *OrphanObjectUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := oou.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(orphanobject.Table, orphanobject.Columns, sqlgraph.NewFieldSpec(orphanobject.FieldID, field.TypeUint))
	if ps := oou.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := oou.mutation.StorageKey(); ok {
		_spec.SetField(orphanobject.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := oou.mutation.Attempts(); ok {
		_spec.SetField(orphanobject.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := oou.mutation.AddedAttempts(); ok {
		_spec.AddField(orphanobject.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := oou.mutation.LastError(); ok {
		_spec.SetField(orphanobject.FieldLastError, field.TypeString, value)
	}
	if oou.mutation.LastErrorCleared() {
		_spec.ClearField(orphanobject.FieldLastError, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, oou.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orphanobject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	oou.mutation.done = true
	return n, nil
}

// OrphanObjectUpdateOne is the builder for updating a single OrphanObject entity.
type OrphanObjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrphanObjectMutation
}

// SetStorageKey sets the "storage_key" field.
func (oouo *OrphanObjectUpdateOne) SetStorageKey(s string) *OrphanObjectUpdateOne {
	oouo.mutation.SetStorageKey(s)
	return oouo
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (oouo *OrphanObjectUpdateOne) SetNillableStorageKey(s *string) *OrphanObjectUpdateOne {
	if s != nil {
		oouo.SetStorageKey(*s)
	}
	return oouo
}

// SetAttempts sets the "attempts" field.
func (oouo *OrphanObjectUpdateOne) SetAttempts(i int) *OrphanObjectUpdateOne {
	oouo.mutation.ResetAttempts()
	oouo.mutation.SetAttempts(i)
	return oouo
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (oouo *OrphanObjectUpdateOne) SetNillableAttempts(i *int) *OrphanObjectUpdateOne {
	if i != nil {
		oouo.SetAttempts(*i)
	}
	return oouo
}

// AddAttempts adds i to the "attempts" field.
func (oouo *OrphanObjectUpdateOne) AddAttempts(i int) *OrphanObjectUpdateOne {
	oouo.mutation.AddAttempts(i)
	return oouo
}

// SetLastError sets the "last_error" field.
func (oouo *OrphanObjectUpdateOne) SetLastError(s string) *OrphanObjectUpdateOne {
	oouo.mutation.SetLastError(s)
	return oouo
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (oouo *OrphanObjectUpdateOne) SetNillableLastError(s *string) *OrphanObjectUpdateOne {
	if s != nil {
		oouo.SetLastError(*s)
	}
	return oouo
}

// ClearLastError clears the value of the "last_error" field.
func (oouo *OrphanObjectUpdateOne) ClearLastError() *OrphanObjectUpdateOne {
	oouo.mutation.ClearLastError()
	return oouo
}

// Mutation returns the OrphanObjectMutation object of the builder.
func (oouo *OrphanObjectUpdateOne) Mutation() *OrphanObjectMutation {
	return oouo.mutation
}

// Where appends a list predicates to the OrphanObjectUpdate builder.
func (oouo *OrphanObjectUpdateOne) Where(ps ...predicate.OrphanObject) *OrphanObjectUpdateOne {
	oouo.mutation.Where(ps...)
	return oouo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (oouo *OrphanObjectUpdateOne) Select(field string, fields ...string) *OrphanObjectUpdateOne {
	oouo.fields = append([]string{field}, fields...)
	return oouo
}

// Save executes the query and returns the updated OrphanObject entity.
func (oouo *OrphanObjectUpdateOne) Save(ctx context.Context) (*OrphanObject, error) {
	return withHooks(ctx, oouo.sqlSave, oouo.mutation, oouo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (oouo *OrphanObjectUpdateOne) SaveX(ctx context.Context) *OrphanObject {
	node, err := oouo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (oouo *OrphanObjectUpdateOne) Exec(ctx context.Context) error {
	_, err := oouo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (oouo *OrphanObjectUpdateOne) ExecX(ctx context.Context) {
	if err := oouo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (oouo *OrphanObjectUpdateOne) check() error {
	if v, ok := oouo.mutation.StorageKey(); ok {
		if err := orphanobject.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "OrphanObject.storage_key": %w`, err)}
		}
	}
	return nil
}

func (oouo *OrphanObjectUpdateOne) sqlSave(ctx context.Context) (_node *OrphanObject, err error) {
	if err := oouo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orphanobject.Table, orphanobject.Columns, sqlgraph.NewFieldSpec(orphanobject.FieldID, field.TypeUint))
	id, ok := oouo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrphanObject.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := oouo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orphanobject.FieldID)
		for _, f := range fields {
			if !orphanobject.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orphanobject.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := oouo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := oouo.mutation.StorageKey(); ok {
		_spec.SetField(orphanobject.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := oouo.mutation.Attempts(); ok {
		_spec.SetField(orphanobject.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := oouo.mutation.AddedAttempts(); ok {
		_spec.AddField(orphanobject.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := oouo.mutation.LastError(); ok {
		_spec.SetField(orphanobject.FieldLastError, field.TypeString, value)
	}
	if oouo.mutation.LastErrorCleared() {
		_spec.ClearField(orphanobject.FieldLastError, field.TypeString)
	}
	_node = &OrphanObject{config: oouo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, oouo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orphanobject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	oouo.mutation.done = true
	return _node, nil
}
