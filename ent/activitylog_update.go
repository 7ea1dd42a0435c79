// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behark/autoanikw-sub000/ent/activitylog"
	"github.com/behark/autoanikw-sub000/ent/predicate"
)

// ActivityLogUpdate is the builder for updating ActivityLog entities.
type ActivityLogUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityLogMutation
}

// Where appends a list predicates to the ActivityLogUpdate builder.
func (alu *ActivityLogUpdate) Where(ps ...predicate.ActivityLog) *ActivityLogUpdate {
	alu.mutation.Where(ps...)
	return alu
}

// SetUserID sets the "user_id" field.
func (alu *ActivityLogUpdate) SetUserID(u uint) *ActivityLogUpdate {
	alu.mutation.ResetUserID()
	alu.mutation.SetUserID(u)
	return alu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (alu *ActivityLogUpdate) SetNillableUserID(u *uint) *ActivityLogUpdate {
	if u != nil {
		alu.SetUserID(*u)
	}
	return alu
}

// AddUserID adds u to the "user_id" field.
func (alu *ActivityLogUpdate) AddUserID(u int) *ActivityLogUpdate {
	alu.mutation.AddUserID(u)
	return alu
}

// SetAction sets the "action" field.
func (alu *ActivityLogUpdate) SetAction(s string) *ActivityLogUpdate {
	alu.mutation.SetAction(s)
	return alu
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (alu *ActivityLogUpdate) SetNillableAction(s *string) *ActivityLogUpdate {
	if s != nil {
		alu.SetAction(*s)
	}
	return alu
}

// SetEntityType sets the "entity_type" field.
func (alu *ActivityLogUpdate) SetEntityType(s string) *ActivityLogUpdate {
	alu.mutation.SetEntityType(s)
	return alu
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (alu *ActivityLogUpdate) SetNillableEntityType(s *string) *ActivityLogUpdate {
	if s != nil {
		alu.SetEntityType(*s)
	}
	return alu
}

// SetEntityID sets the "entity_id" field.
func (alu *ActivityLogUpdate) SetEntityID(u uint) *ActivityLogUpdate {
	alu.mutation.ResetEntityID()
	alu.mutation.SetEntityID(u)
	return alu
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (alu *ActivityLogUpdate) SetNillableEntityID(u *uint) *ActivityLogUpdate {
	if u != nil {
		alu.SetEntityID(*u)
	}
	return alu
}

// AddEntityID adds u to the "entity_id" field.
func (alu *ActivityLogUpdate) AddEntityID(u int) *ActivityLogUpdate {
	alu.mutation.AddEntityID(u)
	return alu
}

// SetDetail sets the "detail" field.
func (alu *ActivityLogUpdate) SetDetail(s string) *ActivityLogUpdate {
	alu.mutation.SetDetail(s)
	return alu
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (alu *ActivityLogUpdate) SetNillableDetail(s *string) *ActivityLogUpdate {
	if s != nil {
		alu.SetDetail(*s)
	}
	return alu
}

// ClearDetail clears the value of the "detail" field.
func (alu *ActivityLogUpdate) ClearDetail() *ActivityLogUpdate {
	alu.mutation.ClearDetail()
	return alu
}

// Mutation returns the ActivityLogMutation object of the builder.
func (alu *ActivityLogUpdate) Mutation() *ActivityLogMutation {
	return alu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (alu *ActivityLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, alu.sqlSave, alu.mutation, alu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (alu *ActivityLogUpdate) SaveX(ctx context.Context) int {
	affected, err := alu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (alu *ActivityLogUpdate) Exec(ctx context.Context) error {
	_, err := alu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (alu *ActivityLogUpdate) ExecX(ctx context.Context) {
	if err := alu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (alu *ActivityLogUpdate) check() error {
	if v, ok := alu.mutation.Action(); ok {
		if err := activitylog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ActivityLog.action": %w`, err)}
		}
	}
	if v, ok := alu.mutation.EntityType(); ok {
		if err := activitylog.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "ActivityLog.entity_type": %w`, err)}
		}
	}
	return nil
}

func (alu *ActivityLogUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := alu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(activitylog.Table, activitylog.Columns, sqlgraph.NewFieldSpec(activitylog.FieldID, field.TypeUint))
	if ps := alu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := alu.mutation.UserID(); ok {
		_spec.SetField(activitylog.FieldUserID, field.TypeUint, value)
	}
	if value, ok := alu.mutation.AddedUserID(); ok {
		_spec.AddField(activitylog.FieldUserID, field.TypeUint, value)
	}
	if value, ok := alu.mutation.Action(); ok {
		_spec.SetField(activitylog.FieldAction, field.TypeString, value)
	}
	if value, ok := alu.mutation.EntityType(); ok {
		_spec.SetField(activitylog.FieldEntityType, field.TypeString, value)
	}
	if value, ok := alu.mutation.EntityID(); ok {
		_spec.SetField(activitylog.FieldEntityID, field.TypeUint, value)
	}
	if value, ok := alu.mutation.AddedEntityID(); ok {
		_spec.AddField(activitylog.FieldEntityID, field.TypeUint, value)
	}
	if value, ok := alu.mutation.Detail(); ok {
		_spec.SetField(activitylog.FieldDetail, field.TypeString, value)
	}
	if alu.mutation.DetailCleared() {
		_spec.ClearField(activitylog.FieldDetail, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, alu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activitylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	alu.mutation.done = true
	return n, nil
}

// ActivityLogUpdateOne is the builder for updating a single ActivityLog entity.
type ActivityLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityLogMutation
}

// SetUserID sets the "user_id" field.
func (aluo *ActivityLogUpdateOne) SetUserID(u uint) *ActivityLogUpdateOne {
	aluo.mutation.ResetUserID()
	aluo.mutation.SetUserID(u)
	return aluo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aluo *ActivityLogUpdateOne) SetNillableUserID(u *uint) *ActivityLogUpdateOne {
	if u != nil {
		aluo.SetUserID(*u)
	}
	return aluo
}

// AddUserID adds u to the "user_id" field.
func (aluo *ActivityLogUpdateOne) AddUserID(u int) *ActivityLogUpdateOne {
	aluo.mutation.AddUserID(u)
	return aluo
}

// SetAction sets the "action" field.
func (aluo *ActivityLogUpdateOne) SetAction(s string) *ActivityLogUpdateOne {
	aluo.mutation.SetAction(s)
	return aluo
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (aluo *ActivityLogUpdateOne) SetNillableAction(s *string) *ActivityLogUpdateOne {
	if s != nil {
		aluo.SetAction(*s)
	}
	return aluo
}

// SetEntityType sets the "entity_type" field.
func (aluo *ActivityLogUpdateOne) SetEntityType(s string) *ActivityLogUpdateOne {
	aluo.mutation.SetEntityType(s)
	return aluo
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (aluo *ActivityLogUpdateOne) SetNillableEntityType(s *string) *ActivityLogUpdateOne {
	if s != nil {
		aluo.SetEntityType(*s)
	}
	return aluo
}

// SetEntityID sets the "entity_id" field.
func (aluo *ActivityLogUpdateOne) SetEntityID(u uint) *ActivityLogUpdateOne {
	aluo.mutation.ResetEntityID()
	aluo.mutation.SetEntityID(u)
	return aluo
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (aluo *ActivityLogUpdateOne) SetNillableEntityID(u *uint) *ActivityLogUpdateOne {
	if u != nil {
		aluo.SetEntityID(*u)
	}
	return aluo
}

// AddEntityID adds u to the "entity_id" field.
func (aluo *ActivityLogUpdateOne) AddEntityID(u int) *ActivityLogUpdateOne {
	aluo.mutation.AddEntityID(u)
	return aluo
}

// SetDetail sets the "detail" field.
func (aluo *ActivityLogUpdateOne) SetDetail(s string) *ActivityLogUpdateOne {
	aluo.mutation.SetDetail(s)
	return aluo
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (aluo *ActivityLogUpdateOne) SetNillableDetail(s *string) *ActivityLogUpdateOne {
	if s != nil {
		aluo.SetDetail(*s)
	}
	return aluo
}

// ClearDetail clears the value of the "detail" field.
func (aluo *ActivityLogUpdateOne) ClearDetail() *ActivityLogUpdateOne {
	aluo.mutation.ClearDetail()
	return aluo
}

// Mutation returns the ActivityLogMutation object of the builder.
func (aluo *ActivityLogUpdateOne) Mutation() *ActivityLogMutation {
	return aluo.mutation
}

// Where appends a list predicates to the ActivityLogUpdate builder.
func (aluo *ActivityLogUpdateOne) Where(ps ...predicate.ActivityLog) *ActivityLogUpdateOne {
	aluo.mutation.Where(ps...)
	return aluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aluo *ActivityLogUpdateOne) Select(field string, fields ...string) *ActivityLogUpdateOne {
	aluo.fields = append([]string{field}, fields...)
	return aluo
}

// Save executes the query and returns the updated ActivityLog entity.
func (aluo *ActivityLogUpdateOne) Save(ctx context.Context) (*ActivityLog, error) {
	return withHooks(ctx, aluo.sqlSave, aluo.mutation, aluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aluo *ActivityLogUpdateOne) SaveX(ctx context.Context) *ActivityLog {
	node, err := aluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aluo *ActivityLogUpdateOne) Exec(ctx context.Context) error {
	_, err := aluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aluo *ActivityLogUpdateOne) ExecX(ctx context.Context) {
	if err := aluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aluo *ActivityLogUpdateOne) check() error {
	if v, ok := aluo.mutation.Action(); ok {
		if err := activitylog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ActivityLog.action": %w`, err)}
		}
	}
	if v, ok := aluo.mutation.EntityType(); ok {
		if err := activitylog.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "ActivityLog.entity_type": %w`, err)}
		}
	}
	return nil
}

func (aluo *ActivityLogUpdateOne) sqlSave(ctx context.Context) (_node *ActivityLog, err error) {
	if err := aluo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activitylog.Table, activitylog.Columns, sqlgraph.NewFieldSpec(activitylog.FieldID, field.TypeUint))
	id, ok := aluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activitylog.FieldID)
		for _, f := range fields {
			if !activitylog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activitylog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aluo.mutation.UserID(); ok {
		_spec.SetField(activitylog.FieldUserID, field.TypeUint, value)
	}
	if value, ok := aluo.mutation.AddedUserID(); ok {
		_spec.AddField(activitylog.FieldUserID, field.TypeUint, value)
	}
	if value, ok := aluo.mutation.Action(); ok {
		_spec.SetField(activitylog.FieldAction, field.TypeString, value)
	}
	if value, ok := aluo.mutation.EntityType(); ok {
		_spec.SetField(activitylog.FieldEntityType, field.TypeString, value)
	}
	if value, ok := aluo.mutation.EntityID(); ok {
		_spec.SetField(activitylog.FieldEntityID, field.TypeUint, value)
	}
	if value, ok := aluo.mutation.AddedEntityID(); ok {
		_spec.AddField(activitylog.FieldEntityID, field.TypeUint, value)
	}
	if value, ok := aluo.mutation.Detail(); ok {
		_spec.SetField(activitylog.FieldDetail, field.TypeString, value)
	}
	if aluo.mutation.DetailCleared() {
		_spec.ClearField(activitylog.FieldDetail, field.TypeString)
	}
	_node = &ActivityLog{config: aluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activitylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aluo.mutation.done = true
	return _node, nil
}
