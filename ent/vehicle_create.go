// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behark/autoanikw-sub000/ent/vehicle"
)

// VehicleCreate is the builder for creating a Vehicle entity.
type VehicleCreate struct {
	config
	mutation *VehicleMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (vc *VehicleCreate) SetCreatedAt(t time.Time) *VehicleCreate {
	vc.mutation.SetCreatedAt(t)
	return vc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (vc *VehicleCreate) SetNillableCreatedAt(t *time.Time) *VehicleCreate {
	if t != nil {
		vc.SetCreatedAt(*t)
	}
	return vc
}

// SetUpdatedAt sets the "updated_at" field.
func (vc *VehicleCreate) SetUpdatedAt(t time.Time) *VehicleCreate {
	vc.mutation.SetUpdatedAt(t)
	return vc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (vc *VehicleCreate) SetNillableUpdatedAt(t *time.Time) *VehicleCreate {
	if t != nil {
		vc.SetUpdatedAt(*t)
	}
	return vc
}

// SetMake sets the "make" field.
func (vc *VehicleCreate) SetMake(s string) *VehicleCreate {
	vc.mutation.SetMake(s)
	return vc
}

// SetModel sets the "model" field.
func (vc *VehicleCreate) SetModel(s string) *VehicleCreate {
	vc.mutation.SetModel(s)
	return vc
}

// SetYear sets the "year" field.
func (vc *VehicleCreate) SetYear(i int) *VehicleCreate {
	vc.mutation.SetYear(i)
	return vc
}

// SetPriceCents sets the "price_cents" field.
func (vc *VehicleCreate) SetPriceCents(i int64) *VehicleCreate {
	vc.mutation.SetPriceCents(i)
	return vc
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (vc *VehicleCreate) SetNillablePriceCents(i *int64) *VehicleCreate {
	if i != nil {
		vc.SetPriceCents(*i)
	}
	return vc
}

// SetMileage sets the "mileage" field.
func (vc *VehicleCreate) SetMileage(i int) *VehicleCreate {
	vc.mutation.SetMileage(i)
	return vc
}

// SetNillableMileage sets the "mileage" field if the given value is not nil.
func (vc *VehicleCreate) SetNillableMileage(i *int) *VehicleCreate {
	if i != nil {
		vc.SetMileage(*i)
	}
	return vc
}

// SetFuelType sets the "fuel_type" field.
func (vc *VehicleCreate) SetFuelType(s string) *VehicleCreate {
	vc.mutation.SetFuelType(s)
	return vc
}

// SetNillableFuelType sets the "fuel_type" field if the given value is not nil.
func (vc *VehicleCreate) SetNillableFuelType(s *string) *VehicleCreate {
	if s != nil {
		vc.SetFuelType(*s)
	}
	return vc
}

// SetTransmission sets the "transmission" field.
func (vc *VehicleCreate) SetTransmission(s string) *VehicleCreate {
	vc.mutation.SetTransmission(s)
	return vc
}

// SetNillableTransmission sets the "transmission" field if the given value is not nil.
func (vc *VehicleCreate) SetNillableTransmission(s *string) *VehicleCreate {
	if s != nil {
		vc.SetTransmission(*s)
	}
	return vc
}

// SetStatus sets the "status" field.
func (vc *VehicleCreate) SetStatus(s string) *VehicleCreate {
	vc.mutation.SetStatus(s)
	return vc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (vc *VehicleCreate) SetNillableStatus(s *string) *VehicleCreate {
	if s != nil {
		vc.SetStatus(*s)
	}
	return vc
}

// SetFeatured sets the "featured" field.
func (vc *VehicleCreate) SetFeatured(b bool) *VehicleCreate {
	vc.mutation.SetFeatured(b)
	return vc
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (vc *VehicleCreate) SetNillableFeatured(b *bool) *VehicleCreate {
	if b != nil {
		vc.SetFeatured(*b)
	}
	return vc
}

// SetDescription sets the "description" field.
func (vc *VehicleCreate) SetDescription(s string) *VehicleCreate {
	vc.mutation.SetDescription(s)
	return vc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (vc *VehicleCreate) SetNillableDescription(s *string) *VehicleCreate {
	if s != nil {
		vc.SetDescription(*s)
	}
	return vc
}

// SetDescriptionHTML sets the "description_html" field.
func (vc *VehicleCreate) SetDescriptionHTML(s string) *VehicleCreate {
	vc.mutation.SetDescriptionHTML(s)
	return vc
}

// SetNillableDescriptionHTML sets the "description_html" field if the given value is not nil.
func (vc *VehicleCreate) SetNillableDescriptionHTML(s *string) *VehicleCreate {
	if s != nil {
		vc.SetDescriptionHTML(*s)
	}
	return vc
}

// SetCoverMediaID sets the "cover_media_id" field.
func (vc *VehicleCreate) SetCoverMediaID(u uint) *VehicleCreate {
	vc.mutation.SetCoverMediaID(u)
	return vc
}

// SetNillableCoverMediaID sets the "cover_media_id" field if the given value is not nil.
func (vc *VehicleCreate) SetNillableCoverMediaID(u *uint) *VehicleCreate {
	if u != nil {
		vc.SetCoverMediaID(*u)
	}
	return vc
}

// SetID sets the "id" field.
func (vc *VehicleCreate) SetID(u uint) *VehicleCreate {
	vc.mutation.SetID(u)
	return vc
}

// Mutation returns the VehicleMutation object of the builder.
func (vc *VehicleCreate) Mutation() *VehicleMutation {
	return vc.mutation
}

// Save creates the Vehicle in the database.
func (vc *VehicleCreate) Save(ctx context.Context) (*Vehicle, error) {
	vc.defaults()
	return withHooks(ctx, vc.sqlSave, vc.mutation, vc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (vc *VehicleCreate) SaveX(ctx context.Context) *Vehicle {
	v, err := vc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vc *VehicleCreate) Exec(ctx context.Context) error {
	_, err := vc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vc *VehicleCreate) ExecX(ctx context.Context) {
	if err := vc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vc *VehicleCreate) defaults() {
	if _, ok := vc.mutation.CreatedAt(); !ok {
		v := vehicle.DefaultCreatedAt()
		vc.mutation.SetCreatedAt(v)
	}
	if _, ok := vc.mutation.UpdatedAt(); !ok {
		v := vehicle.DefaultUpdatedAt()
		vc.mutation.SetUpdatedAt(v)
	}
	if _, ok := vc.mutation.PriceCents(); !ok {
		v := vehicle.DefaultPriceCents
		vc.mutation.SetPriceCents(v)
	}
	if _, ok := vc.mutation.Mileage(); !ok {
		v := vehicle.DefaultMileage
		vc.mutation.SetMileage(v)
	}
	if _, ok := vc.mutation.Status(); !ok {
		v := vehicle.DefaultStatus
		vc.mutation.SetStatus(v)
	}
	if _, ok := vc.mutation.Featured(); !ok {
		v := vehicle.DefaultFeatured
		vc.mutation.SetFeatured(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vc *VehicleCreate) check() error {
	if _, ok := vc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Vehicle.created_at"`)}
	}
	if _, ok := vc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Vehicle.updated_at"`)}
	}
	if _, ok := vc.mutation.Make(); !ok {
		return &ValidationError{Name: "make", err: errors.New(`ent: missing required field "Vehicle.make"`)}
	}
	if v, ok := vc.mutation.Make(); ok {
		if err := vehicle.MakeValidator(v); err != nil {
			return &ValidationError{Name: "make", err: fmt.Errorf(`ent: validator failed for field "Vehicle.make": %w`, err)}
		}
	}
	if _, ok := vc.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Vehicle.model"`)}
	}
	if v, ok := vc.mutation.Model(); ok {
		if err := vehicle.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "Vehicle.model": %w`, err)}
		}
	}
	if _, ok := vc.mutation.Year(); !ok {
		return &ValidationError{Name: "year", err: errors.New(`ent: missing required field "Vehicle.year"`)}
	}
	if _, ok := vc.mutation.PriceCents(); !ok {
		return &ValidationError{Name: "price_cents", err: errors.New(`ent: missing required field "Vehicle.price_cents"`)}
	}
	if _, ok := vc.mutation.Mileage(); !ok {
		return &ValidationError{Name: "mileage", err: errors.New(`ent: missing required field "Vehicle.mileage"`)}
	}
	if v, ok := vc.mutation.FuelType(); ok {
		if err := vehicle.FuelTypeValidator(v); err != nil {
			return &ValidationError{Name: "fuel_type", err: fmt.Errorf(`ent: validator failed for field "Vehicle.fuel_type": %w`, err)}
		}
	}
	if v, ok := vc.mutation.Transmission(); ok {
		if err := vehicle.TransmissionValidator(v); err != nil {
			return &ValidationError{Name: "transmission", err: fmt.Errorf(`ent: validator failed for field "Vehicle.transmission": %w`, err)}
		}
	}
	if _, ok := vc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Vehicle.status"`)}
	}
	if v, ok := vc.mutation.Status(); ok {
		if err := vehicle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Vehicle.status": %w`, err)}
		}
	}
	if _, ok := vc.mutation.Featured(); !ok {
		return &ValidationError{Name: "featured", err: errors.New(`ent: missing required field "Vehicle.featured"`)}
	}
	return nil
}

func (vc *VehicleCreate) sqlSave(ctx context.Context) (*Vehicle, error) {
	if err := vc.check(); err != nil {
		return nil, err
	}
	_node, _spec := vc.createSpec()
	if err := sqlgraph.CreateNode(ctx, vc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	vc.mutation.id = &_node.ID
	vc.mutation.done = true
	return _node, nil
}

func (vc *VehicleCreate) createSpec() (*Vehicle, *sqlgraph.CreateSpec) {
	var (
		_node = &Vehicle{config: vc.config}
		_spec = sqlgraph.NewCreateSpec(vehicle.Table, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeUint))
	)
	if id, ok := vc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := vc.mutation.CreatedAt(); ok {
		_spec.SetField(vehicle.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := vc.mutation.UpdatedAt(); ok {
		_spec.SetField(vehicle.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := vc.mutation.Make(); ok {
		_spec.SetField(vehicle.FieldMake, field.TypeString, value)
		_node.Make = value
	}
	if value, ok := vc.mutation.Model(); ok {
		_spec.SetField(vehicle.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := vc.mutation.Year(); ok {
		_spec.SetField(vehicle.FieldYear, field.TypeInt, value)
		_node.Year = value
	}
	if value, ok := vc.mutation.PriceCents(); ok {
		_spec.SetField(vehicle.FieldPriceCents, field.TypeInt64, value)
		_node.PriceCents = value
	}
	if value, ok := vc.mutation.Mileage(); ok {
		_spec.SetField(vehicle.FieldMileage, field.TypeInt, value)
		_node.Mileage = value
	}
	if value, ok := vc.mutation.FuelType(); ok {
		_spec.SetField(vehicle.FieldFuelType, field.TypeString, value)
		_node.FuelType = value
	}
	if value, ok := vc.mutation.Transmission(); ok {
		_spec.SetField(vehicle.FieldTransmission, field.TypeString, value)
		_node.Transmission = value
	}
	if value, ok := vc.mutation.Status(); ok {
		_spec.SetField(vehicle.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := vc.mutation.Featured(); ok {
		_spec.SetField(vehicle.FieldFeatured, field.TypeBool, value)
		_node.Featured = value
	}
	if value, ok := vc.mutation.Description(); ok {
		_spec.SetField(vehicle.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := vc.mutation.DescriptionHTML(); ok {
		_spec.SetField(vehicle.FieldDescriptionHTML, field.TypeString, value)
		_node.DescriptionHTML = value
	}
	if value, ok := vc.mutation.CoverMediaID(); ok {
		_spec.SetField(vehicle.FieldCoverMediaID, field.TypeUint, value)
		_node.CoverMediaID = &value
	}
	return _node, _spec
}

// VehicleCreateBulk is the builder for creating many Vehicle entities in bulk.
type VehicleCreateBulk struct {
	config
	err      error
	builders []*VehicleCreate
}

// Save creates the Vehicle entities in the database.
func (vcb *VehicleCreateBulk) Save(ctx context.Context) ([]*Vehicle, error) {
	if vcb.err != nil {
		return nil, vcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(vcb.builders))
	nodes := make([]*Vehicle, len(vcb.builders))
	mutators := make([]Mutator, len(vcb.builders))
	for i := range vcb.builders {
		func(i int, root context.Context) {
			builder := vcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VehicleMutation)
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
					_, err = mutators[i+1].Mutate(root, vcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, vcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, vcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (vcb *VehicleCreateBulk) SaveX(ctx context.Context) []*Vehicle {
	v, err := vcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vcb *VehicleCreateBulk) Exec(ctx context.Context) error {
	_, err := vcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vcb *VehicleCreateBulk) ExecX(ctx context.Context) {
	if err := vcb.Exec(ctx); err != nil {
		panic(err)
	}
}
