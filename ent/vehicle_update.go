// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behark/autoanikw-sub000/ent/predicate"
	"github.com/behark/autoanikw-sub000/ent/vehicle"
)

// VehicleUpdate is the builder for updating Vehicle entities.
type VehicleUpdate struct {
	config
	hooks    []Hook
	mutation *VehicleMutation
}

// Where appends a list predicates to the VehicleUpdate builder.
func (vu *VehicleUpdate) Where(ps ...predicate.Vehicle) *VehicleUpdate {
	vu.mutation.Where(ps...)
	return vu
}

// SetUpdatedAt sets the "updated_at" field.
func (vu *VehicleUpdate) SetUpdatedAt(t time.Time) *VehicleUpdate {
	vu.mutation.SetUpdatedAt(t)
	return vu
}

// SetMake sets the "make" field.
func (vu *VehicleUpdate) SetMake(s string) *VehicleUpdate {
	vu.mutation.SetMake(s)
	return vu
}

// SetNillableMake sets the "make" field if the given value is not nil.
func (vu *VehicleUpdate) SetNillableMake(s *string) *VehicleUpdate {
	if s != nil {
		vu.SetMake(*s)
	}
	return vu
}

// SetModel sets the "model" field.
func (vu *VehicleUpdate) SetModel(s string) *VehicleUpdate {
	vu.mutation.SetModel(s)
	return vu
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (vu *VehicleUpdate) SetNillableModel(s *string) *VehicleUpdate {
	if s != nil {
		vu.SetModel(*s)
	}
	return vu
}

// SetYear sets the "year" field.
func (vu *VehicleUpdate) SetYear(i int) *VehicleUpdate {
	vu.mutation.ResetYear()
	vu.mutation.SetYear(i)
	return vu
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (vu *VehicleUpdate) SetNillableYear(i *int) *VehicleUpdate {
	if i != nil {
		vu.SetYear(*i)
	}
	return vu
}

// AddYear adds i to the "year" field.
func (vu *VehicleUpdate) AddYear(i int) *VehicleUpdate {
	vu.mutation.AddYear(i)
	return vu
}

// SetPriceCents sets the "price_cents" field.
func (vu *VehicleUpdate) SetPriceCents(i int64) *VehicleUpdate {
	vu.mutation.ResetPriceCents()
	vu.mutation.SetPriceCents(i)
	return vu
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (vu *VehicleUpdate) SetNillablePriceCents(i *int64) *VehicleUpdate {
	if i != nil {
		vu.SetPriceCents(*i)
	}
	return vu
}

// AddPriceCents adds i to the "price_cents" field.
func (vu *VehicleUpdate) AddPriceCents(i int64) *VehicleUpdate {
	vu.mutation.AddPriceCents(i)
	return vu
}

// SetMileage sets the "mileage" field.
func (vu *VehicleUpdate) SetMileage(i int) *VehicleUpdate {
	vu.mutation.ResetMileage()
	vu.mutation.SetMileage(i)
	return vu
}

// SetNillableMileage sets the "mileage" field if the given value is not nil.
func (vu *VehicleUpdate) SetNillableMileage(i *int) *VehicleUpdate {
	if i != nil {
		vu.SetMileage(*i)
	}
	return vu
}

// AddMileage adds i to the "mileage" field.
func (vu *VehicleUpdate) AddMileage(i int) *VehicleUpdate {
	vu.mutation.AddMileage(i)
	return vu
}

// SetFuelType sets the "fuel_type" field.
func (vu *VehicleUpdate) SetFuelType(s string) *VehicleUpdate {
	vu.mutation.SetFuelType(s)
	return vu
}

// SetNillableFuelType sets the "fuel_type" field if the given value is not nil.
func (vu *VehicleUpdate) SetNillableFuelType(s *string) *VehicleUpdate {
	if s != nil {
		vu.SetFuelType(*s)
	}
	return vu
}

// ClearFuelType clears the value of the "fuel_type" field.
func (vu *VehicleUpdate) ClearFuelType() *VehicleUpdate {
	vu.mutation.ClearFuelType()
	return vu
}

// SetTransmission sets the "transmission" field.
func (vu *VehicleUpdate) SetTransmission(s string) *VehicleUpdate {
	vu.mutation.SetTransmission(s)
	return vu
}

// SetNillableTransmission sets the "transmission" field if the given value is not nil.
func (vu *VehicleUpdate) SetNillableTransmission(s *string) *VehicleUpdate {
	if s != nil {
		vu.SetTransmission(*s)
	}
	return vu
}

// ClearTransmission clears the value of the "transmission" field.
func (vu *VehicleUpdate) ClearTransmission() *VehicleUpdate {
	vu.mutation.ClearTransmission()
	return vu
}

// SetStatus sets the "status" field.
func (vu *VehicleUpdate) SetStatus(s string) *VehicleUpdate {
	vu.mutation.SetStatus(s)
	return vu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (vu *VehicleUpdate) SetNillableStatus(s *string) *VehicleUpdate {
	if s != nil {
		vu.SetStatus(*s)
	}
	return vu
}

// SetFeatured sets the "featured" field.
func (vu *VehicleUpdate) SetFeatured(b bool) *VehicleUpdate {
	vu.mutation.SetFeatured(b)
	return vu
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (vu *VehicleUpdate) SetNillableFeatured(b *bool) *VehicleUpdate {
	if b != nil {
		vu.SetFeatured(*b)
	}
	return vu
}

// SetDescription sets the "description" field.
func (vu *VehicleUpdate) SetDescription(s string) *VehicleUpdate {
	vu.mutation.SetDescription(s)
	return vu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (vu *VehicleUpdate) SetNillableDescription(s *string) *VehicleUpdate {
	if s != nil {
		vu.SetDescription(*s)
	}
	return vu
}

// ClearDescription clears the value of the "description" field.
func (vu *VehicleUpdate) ClearDescription() *VehicleUpdate {
	vu.mutation.ClearDescription()
	return vu
}

// SetDescriptionHTML sets the "description_html" field.
func (vu *VehicleUpdate) SetDescriptionHTML(s string) *VehicleUpdate {
	vu.mutation.SetDescriptionHTML(s)
	return vu
}

// SetNillableDescriptionHTML sets the "description_html" field if the given value is not nil.
func (vu *VehicleUpdate) SetNillableDescriptionHTML(s *string) *VehicleUpdate {
	if s != nil {
		vu.SetDescriptionHTML(*s)
	}
	return vu
}

// ClearDescriptionHTML clears the value of the "description_html" field.
func (vu *VehicleUpdate) ClearDescriptionHTML() *VehicleUpdate {
	vu.mutation.ClearDescriptionHTML()
	return vu
}

// SetCoverMediaID sets the "cover_media_id" field.
func (vu *VehicleUpdate) SetCoverMediaID(u uint) *VehicleUpdate {
	vu.mutation.ResetCoverMediaID()
	vu.mutation.SetCoverMediaID(u)
	return vu
}

// SetNillableCoverMediaID sets the "cover_media_id" field if the given value is not nil.
func (vu *VehicleUpdate) SetNillableCoverMediaID(u *uint) *VehicleUpdate {
	if u != nil {
		vu.SetCoverMediaID(*u)
	}
	return vu
}

// AddCoverMediaID adds u to the "cover_media_id" field.
func (vu *VehicleUpdate) AddCoverMediaID(u int) *VehicleUpdate {
	vu.mutation.AddCoverMediaID(u)
	return vu
}

// ClearCoverMediaID clears the value of the "cover_media_id" field.
func (vu *VehicleUpdate) ClearCoverMediaID() *VehicleUpdate {
	vu.mutation.ClearCoverMediaID()
	return vu
}

// Mutation returns the VehicleMutation object of the builder.
func (vu *VehicleUpdate) Mutation() *VehicleMutation {
	return vu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (vu *VehicleUpdate) Save(ctx context.Context) (int, error) {
	vu.defaults()
	return withHooks(ctx, vu.sqlSave, vu.mutation, vu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vu *VehicleUpdate) SaveX(ctx context.Context) int {
	affected, err := vu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (vu *VehicleUpdate) Exec(ctx context.Context) error {
	_, err := vu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vu *VehicleUpdate) ExecX(ctx context.Context) {
	if err := vu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vu *VehicleUpdate) defaults() {
	if _, ok := vu.mutation.UpdatedAt(); !ok {
		v := vehicle.UpdateDefaultUpdatedAt()
		vu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vu *VehicleUpdate) check() error {
	if v, ok := vu.mutation.Make(); ok {
		if err := vehicle.MakeValidator(v); err != nil {
			return &ValidationError{Name: "make", err: fmt.Errorf(`ent: validator failed for field "Vehicle.make": %w`, err)}
		}
	}
	if v, ok := vu.mutation.Model(); ok {
		if err := vehicle.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "Vehicle.model": %w`, err)}
		}
	}
	if v, ok := vu.mutation.FuelType(); ok {
		if err := vehicle.FuelTypeValidator(v); err != nil {
			return &ValidationError{Name: "fuel_type", err: fmt.Errorf(`ent: validator failed for field "Vehicle.fuel_type": %w`, err)}
		}
	}
	if v, ok := vu.mutation.Transmission(); ok {
		if err := vehicle.TransmissionValidator(v); err != nil {
			return &ValidationError{Name: "transmission", err: fmt.Errorf(`ent: validator failed for field "Vehicle.transmission": %w`, err)}
		}
	}
	if v, ok := vu.mutation.Status(); ok {
		if err := vehicle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Vehicle.status": %w`, err)}
		}
	}
	return nil
}

func (vu *VehicleUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := vu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(vehicle.Table, vehicle.Columns, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeUint))
	if ps := vu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vu.mutation.UpdatedAt(); ok {
		_spec.SetField(vehicle.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := vu.mutation.Make(); ok {
		_spec.SetField(vehicle.FieldMake, field.TypeString, value)
	}
	if value, ok := vu.mutation.Model(); ok {
		_spec.SetField(vehicle.FieldModel, field.TypeString, value)
	}
	if value, ok := vu.mutation.Year(); ok {
		_spec.SetField(vehicle.FieldYear, field.TypeInt, value)
	}
	if value, ok := vu.mutation.AddedYear(); ok {
		_spec.AddField(vehicle.FieldYear, field.TypeInt, value)
	}
	if value, ok := vu.mutation.PriceCents(); ok {
		_spec.SetField(vehicle.FieldPriceCents, field.TypeInt64, value)
	}
	if value, ok := vu.mutation.AddedPriceCents(); ok {
		_spec.AddField(vehicle.FieldPriceCents, field.TypeInt64, value)
	}
	if value, ok := vu.mutation.Mileage(); ok {
		_spec.SetField(vehicle.FieldMileage, field.TypeInt, value)
	}
	if value, ok := vu.mutation.AddedMileage(); ok {
		_spec.AddField(vehicle.FieldMileage, field.TypeInt, value)
	}
	if value, ok := vu.mutation.FuelType(); ok {
		_spec.SetField(vehicle.FieldFuelType, field.TypeString, value)
	}
	if vu.mutation.FuelTypeCleared() {
		_spec.ClearField(vehicle.FieldFuelType, field.TypeString)
	}
	if value, ok := vu.mutation.Transmission(); ok {
		_spec.SetField(vehicle.FieldTransmission, field.TypeString, value)
	}
	if vu.mutation.TransmissionCleared() {
		_spec.ClearField(vehicle.FieldTransmission, field.TypeString)
	}
	if value, ok := vu.mutation.Status(); ok {
		_spec.SetField(vehicle.FieldStatus, field.TypeString, value)
	}
	if value, ok := vu.mutation.Featured(); ok {
		_spec.SetField(vehicle.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := vu.mutation.Description(); ok {
		_spec.SetField(vehicle.FieldDescription, field.TypeString, value)
	}
	if vu.mutation.DescriptionCleared() {
		_spec.ClearField(vehicle.FieldDescription, field.TypeString)
	}
	if value, ok := vu.mutation.DescriptionHTML(); ok {
		_spec.SetField(vehicle.FieldDescriptionHTML, field.TypeString, value)
	}
	if vu.mutation.DescriptionHTMLCleared() {
		_spec.ClearField(vehicle.FieldDescriptionHTML, field.TypeString)
	}
	if value, ok := vu.mutation.CoverMediaID(); ok {
		_spec.SetField(vehicle.FieldCoverMediaID, field.TypeUint, value)
	}
	if value, ok := vu.mutation.AddedCoverMediaID(); ok {
		_spec.AddField(vehicle.FieldCoverMediaID, field.TypeUint, value)
	}
	if vu.mutation.CoverMediaIDCleared() {
		_spec.ClearField(vehicle.FieldCoverMediaID, field.TypeUint)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, vu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehicle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	vu.mutation.done = true
	return n, nil
}

// VehicleUpdateOne is the builder for updating a single Vehicle entity.
type VehicleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VehicleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (vuo *VehicleUpdateOne) SetUpdatedAt(t time.Time) *VehicleUpdateOne {
	vuo.mutation.SetUpdatedAt(t)
	return vuo
}

// SetMake sets the "make" field.
func (vuo *VehicleUpdateOne) SetMake(s string) *VehicleUpdateOne {
	vuo.mutation.SetMake(s)
	return vuo
}

// SetNillableMake sets the "make" field if the given value is not nil.
func (vuo *VehicleUpdateOne) SetNillableMake(s *string) *VehicleUpdateOne {
	if s != nil {
		vuo.SetMake(*s)
	}
	return vuo
}

// SetModel sets the "model" field.
func (vuo *VehicleUpdateOne) SetModel(s string) *VehicleUpdateOne {
	vuo.mutation.SetModel(s)
	return vuo
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (vuo *VehicleUpdateOne) SetNillableModel(s *string) *VehicleUpdateOne {
	if s != nil {
		vuo.SetModel(*s)
	}
	return vuo
}

// SetYear sets the "year" field.
func (vuo *VehicleUpdateOne) SetYear(i int) *VehicleUpdateOne {
	vuo.mutation.ResetYear()
	vuo.mutation.SetYear(i)
	return vuo
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (vuo *VehicleUpdateOne) SetNillableYear(i *int) *VehicleUpdateOne {
	if i != nil {
		vuo.SetYear(*i)
	}
	return vuo
}

// AddYear adds i to the "year" field.
func (vuo *VehicleUpdateOne) AddYear(i int) *VehicleUpdateOne {
	vuo.mutation.AddYear(i)
	return vuo
}

// SetPriceCents sets the "price_cents" field.
func (vuo *VehicleUpdateOne) SetPriceCents(i int64) *VehicleUpdateOne {
	vuo.mutation.ResetPriceCents()
	vuo.mutation.SetPriceCents(i)
	return vuo
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (vuo *VehicleUpdateOne) SetNillablePriceCents(i *int64) *VehicleUpdateOne {
	if i != nil {
		vuo.SetPriceCents(*i)
	}
	return vuo
}

// AddPriceCents adds i to the "price_cents" field.
func (vuo *VehicleUpdateOne) AddPriceCents(i int64) *VehicleUpdateOne {
	vuo.mutation.AddPriceCents(i)
	return vuo
}

// SetMileage sets the "mileage" field.
func (vuo *VehicleUpdateOne) SetMileage(i int) *VehicleUpdateOne {
	vuo.mutation.ResetMileage()
	vuo.mutation.SetMileage(i)
	return vuo
}

// SetNillableMileage sets the "mileage" field if the given value is not nil.
func (vuo *VehicleUpdateOne) SetNillableMileage(i *int) *VehicleUpdateOne {
	if i != nil {
		vuo.SetMileage(*i)
	}
	return vuo
}

// AddMileage adds i to the "mileage" field.
func (vuo *VehicleUpdateOne) AddMileage(i int) *VehicleUpdateOne {
	vuo.mutation.AddMileage(i)
	return vuo
}

// SetFuelType sets the "fuel_type" field.
func (vuo *VehicleUpdateOne) SetFuelType(s string) *VehicleUpdateOne {
	vuo.mutation.SetFuelType(s)
	return vuo
}

// SetNillableFuelType sets the "fuel_type" field if the given value is not nil.
func (vuo *VehicleUpdateOne) SetNillableFuelType(s *string) *VehicleUpdateOne {
	if s != nil {
		vuo.SetFuelType(*s)
	}
	return vuo
}

// ClearFuelType clears the value of the "fuel_type" field.
func (vuo *VehicleUpdateOne) ClearFuelType() *VehicleUpdateOne {
	vuo.mutation.ClearFuelType()
	return vuo
}

// SetTransmission sets the "transmission" field.
func (vuo *VehicleUpdateOne) SetTransmission(s string) *VehicleUpdateOne {
	vuo.mutation.SetTransmission(s)
	return vuo
}

// SetNillableTransmission sets the "transmission" field if the given value is not nil.
func (vuo *VehicleUpdateOne) SetNillableTransmission(s *string) *VehicleUpdateOne {
	if s != nil {
		vuo.SetTransmission(*s)
	}
	return vuo
}

// ClearTransmission clears the value of the "transmission" field.
func (vuo *VehicleUpdateOne) ClearTransmission() *VehicleUpdateOne {
	vuo.mutation.ClearTransmission()
	return vuo
}

// SetStatus sets the "status" field.
func (vuo *VehicleUpdateOne) SetStatus(s string) *VehicleUpdateOne {
	vuo.mutation.SetStatus(s)
	return vuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (vuo *VehicleUpdateOne) SetNillableStatus(s *string) *VehicleUpdateOne {
	if s != nil {
		vuo.SetStatus(*s)
	}
	return vuo
}

// SetFeatured sets the "featured" field.
func (vuo *VehicleUpdateOne) SetFeatured(b bool) *VehicleUpdateOne {
	vuo.mutation.SetFeatured(b)
	return vuo
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (vuo *VehicleUpdateOne) SetNillableFeatured(b *bool) *VehicleUpdateOne {
	if b != nil {
		vuo.SetFeatured(*b)
	}
	return vuo
}

// SetDescription sets the "description" field.
func (vuo *VehicleUpdateOne) SetDescription(s string) *VehicleUpdateOne {
	vuo.mutation.SetDescription(s)
	return vuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (vuo *VehicleUpdateOne) SetNillableDescription(s *string) *VehicleUpdateOne {
	if s != nil {
		vuo.SetDescription(*s)
	}
	return vuo
}

// ClearDescription clears the value of the "description" field.
func (vuo *VehicleUpdateOne) ClearDescription() *VehicleUpdateOne {
	vuo.mutation.ClearDescription()
	return vuo
}

// SetDescriptionHTML sets the "description_html" field.
func (vuo *VehicleUpdateOne) SetDescriptionHTML(s string) *VehicleUpdateOne {
	vuo.mutation.SetDescriptionHTML(s)
	return vuo
}

// SetNillableDescriptionHTML sets the "description_html" field if the given value is not nil.
func (vuo *VehicleUpdateOne) SetNillableDescriptionHTML(s *string) *VehicleUpdateOne {
	if s != nil {
		vuo.SetDescriptionHTML(*s)
	}
	return vuo
}

// ClearDescriptionHTML clears the value of the "description_html" field.
func (vuo *VehicleUpdateOne) ClearDescriptionHTML() *VehicleUpdateOne {
	vuo.mutation.ClearDescriptionHTML()
	return vuo
}

// SetCoverMediaID sets the "cover_media_id" field.
func (vuo *VehicleUpdateOne) SetCoverMediaID(u uint) *VehicleUpdateOne {
	vuo.mutation.ResetCoverMediaID()
	vuo.mutation.SetCoverMediaID(u)
	return vuo
}

// SetNillableCoverMediaID sets the "cover_media_id" field if the given value is not nil.
func (vuo *VehicleUpdateOne) SetNillableCoverMediaID(u *uint) *VehicleUpdateOne {
	if u != nil {
		vuo.SetCoverMediaID(*u)
	}
	return vuo
}

// AddCoverMediaID adds u to the "cover_media_id" field.
func (vuo *VehicleUpdateOne) AddCoverMediaID(u int) *VehicleUpdateOne {
	vuo.mutation.AddCoverMediaID(u)
	return vuo
}

// ClearCoverMediaID clears the value of the "cover_media_id" field.
func (vuo *VehicleUpdateOne) ClearCoverMediaID() *VehicleUpdateOne {
	vuo.mutation.ClearCoverMediaID()
	return vuo
}

// Mutation returns the VehicleMutation object of the builder.
func (vuo *VehicleUpdateOne) Mutation() *VehicleMutation {
	return vuo.mutation
}

// Where appends a list predicates to the VehicleUpdate builder.
func (vuo *VehicleUpdateOne) Where(ps ...predicate.Vehicle) *VehicleUpdateOne {
	vuo.mutation.Where(ps...)
	return vuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (vuo *VehicleUpdateOne) Select(field string, fields ...string) *VehicleUpdateOne {
	vuo.fields = append([]string{field}, fields...)
	return vuo
}

// Save executes the query and returns the updated Vehicle entity.
func (vuo *VehicleUpdateOne) Save(ctx context.Context) (*Vehicle, error) {
	vuo.defaults()
	return withHooks(ctx, vuo.sqlSave, vuo.mutation, vuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vuo *VehicleUpdateOne) SaveX(ctx context.Context) *Vehicle {
	node, err := vuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (vuo *VehicleUpdateOne) Exec(ctx context.Context) error {
	_, err := vuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vuo *VehicleUpdateOne) ExecX(ctx context.Context) {
	if err := vuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vuo *VehicleUpdateOne) defaults() {
	if _, ok := vuo.mutation.UpdatedAt(); !ok {
		v := vehicle.UpdateDefaultUpdatedAt()
		vuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vuo *VehicleUpdateOne) check() error {
	if v, ok := vuo.mutation.Make(); ok {
		if err := vehicle.MakeValidator(v); err != nil {
			return &ValidationError{Name: "make", err: fmt.Errorf(`ent: validator failed for field "Vehicle.make": %w`, err)}
		}
	}
	if v, ok := vuo.mutation.Model(); ok {
		if err := vehicle.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "Vehicle.model": %w`, err)}
		}
	}
	if v, ok := vuo.mutation.FuelType(); ok {
		if err := vehicle.FuelTypeValidator(v); err != nil {
			return &ValidationError{Name: "fuel_type", err: fmt.Errorf(`ent: validator failed for field "Vehicle.fuel_type": %w`, err)}
		}
	}
	if v, ok := vuo.mutation.Transmission(); ok {
		if err := vehicle.TransmissionValidator(v); err != nil {
			return &ValidationError{Name: "transmission", err: fmt.Errorf(`ent: validator failed for field "Vehicle.transmission": %w`, err)}
		}
	}
	if v, ok := vuo.mutation.Status(); ok {
		if err := vehicle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Vehicle.status": %w`, err)}
		}
	}
	return nil
}

func (vuo *VehicleUpdateOne) sqlSave(ctx context.Context) (_node *Vehicle, err error) {
	if err := vuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vehicle.Table, vehicle.Columns, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeUint))
	id, ok := vuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vehicle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := vuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vehicle.FieldID)
		for _, f := range fields {
			if !vehicle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vehicle.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := vuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vuo.mutation.UpdatedAt(); ok {
		_spec.SetField(vehicle.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := vuo.mutation.Make(); ok {
		_spec.SetField(vehicle.FieldMake, field.TypeString, value)
	}
	if value, ok := vuo.mutation.Model(); ok {
		_spec.SetField(vehicle.FieldModel, field.TypeString, value)
	}
	if value, ok := vuo.mutation.Year(); ok {
		_spec.SetField(vehicle.FieldYear, field.TypeInt, value)
	}
	if value, ok := vuo.mutation.AddedYear(); ok {
		_spec.AddField(vehicle.FieldYear, field.TypeInt, value)
	}
	if value, ok := vuo.mutation.PriceCents(); ok {
		_spec.SetField(vehicle.FieldPriceCents, field.TypeInt64, value)
	}
	if value, ok := vuo.mutation.AddedPriceCents(); ok {
		_spec.AddField(vehicle.FieldPriceCents, field.TypeInt64, value)
	}
	if value, ok := vuo.mutation.Mileage(); ok {
		_spec.SetField(vehicle.FieldMileage, field.TypeInt, value)
	}
	if value, ok := vuo.mutation.AddedMileage(); ok {
		_spec.AddField(vehicle.FieldMileage, field.TypeInt, value)
	}
	if value, ok := vuo.mutation.FuelType(); ok {
		_spec.SetField(vehicle.FieldFuelType, field.TypeString, value)
	}
	if vuo.mutation.FuelTypeCleared() {
		_spec.ClearField(vehicle.FieldFuelType, field.TypeString)
	}
	if value, ok := vuo.mutation.Transmission(); ok {
		_spec.SetField(vehicle.FieldTransmission, field.TypeString, value)
	}
	if vuo.mutation.TransmissionCleared() {
		_spec.ClearField(vehicle.FieldTransmission, field.TypeString)
	}
	if value, ok := vuo.mutation.Status(); ok {
		_spec.SetField(vehicle.FieldStatus, field.TypeString, value)
	}
	if value, ok := vuo.mutation.Featured(); ok {
		_spec.SetField(vehicle.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := vuo.mutation.Description(); ok {
		_spec.SetField(vehicle.FieldDescription, field.TypeString, value)
	}
	if vuo.mutation.DescriptionCleared() {
		_spec.ClearField(vehicle.FieldDescription, field.TypeString)
	}
	if value, ok := vuo.mutation.DescriptionHTML(); ok {
		_spec.SetField(vehicle.FieldDescriptionHTML, field.TypeString, value)
	}
	if vuo.mutation.DescriptionHTMLCleared() {
		_spec.ClearField(vehicle.FieldDescriptionHTML, field.TypeString)
	}
	if value, ok := vuo.mutation.CoverMediaID(); ok {
		_spec.SetField(vehicle.FieldCoverMediaID, field.TypeUint, value)
	}
	if value, ok := vuo.mutation.AddedCoverMediaID(); ok {
		_spec.AddField(vehicle.FieldCoverMediaID, field.TypeUint, value)
	}
	if vuo.mutation.CoverMediaIDCleared() {
		_spec.ClearField(vehicle.FieldCoverMediaID, field.TypeUint)
	}
	_node = &Vehicle{config: vuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, vuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehicle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	vuo.mutation.done = true
	return _node, nil
}
