// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behark/autoanikw-sub000/ent/mediaasset"
)

// MediaAssetCreate is the builder for creating a MediaAsset entity.
type MediaAssetCreate struct {
	config
	mutation *MediaAssetMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (mac *MediaAssetCreate) SetCreatedAt(t time.Time) *MediaAssetCreate {
	mac.mutation.SetCreatedAt(t)
	return mac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (mac *MediaAssetCreate) SetNillableCreatedAt(t *time.Time) *MediaAssetCreate {
	if t != nil {
		mac.SetCreatedAt(*t)
	}
	return mac
}

// SetUpdatedAt sets the "updated_at" field.
func (mac *MediaAssetCreate) SetUpdatedAt(t time.Time) *MediaAssetCreate {
	mac.mutation.SetUpdatedAt(t)
	return mac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (mac *MediaAssetCreate) SetNillableUpdatedAt(t *time.Time) *MediaAssetCreate {
	if t != nil {
		mac.SetUpdatedAt(*t)
	}
	return mac
}

// SetStorageKey sets the "storage_key" field.
func (mac *MediaAssetCreate) SetStorageKey(s string) *MediaAssetCreate {
	mac.mutation.SetStorageKey(s)
	return mac
}

// SetOriginalName sets the "original_name" field.
func (mac *MediaAssetCreate) SetOriginalName(s string) *MediaAssetCreate {
	mac.mutation.SetOriginalName(s)
	return mac
}

// SetMimeType sets the "mime_type" field.
func (mac *MediaAssetCreate) SetMimeType(s string) *MediaAssetCreate {
	mac.mutation.SetMimeType(s)
	return mac
}

// SetSize sets the "size" field.
func (mac *MediaAssetCreate) SetSize(i int64) *MediaAssetCreate {
	mac.mutation.SetSize(i)
	return mac
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (mac *MediaAssetCreate) SetNillableSize(i *int64) *MediaAssetCreate {
	if i != nil {
		mac.SetSize(*i)
	}
	return mac
}

// SetURL sets the "url" field.
func (mac *MediaAssetCreate) SetURL(s string) *MediaAssetCreate {
	mac.mutation.SetURL(s)
	return mac
}

// SetRenditions sets the "renditions" field.
func (mac *MediaAssetCreate) SetRenditions(s string) *MediaAssetCreate {
	mac.mutation.SetRenditions(s)
	return mac
}

// SetNillableRenditions sets the "renditions" field if the given value is not nil.
func (mac *MediaAssetCreate) SetNillableRenditions(s *string) *MediaAssetCreate {
	if s != nil {
		mac.SetRenditions(*s)
	}
	return mac
}

// SetAltText sets the "alt_text" field.
func (mac *MediaAssetCreate) SetAltText(s string) *MediaAssetCreate {
	mac.mutation.SetAltText(s)
	return mac
}

// SetNillableAltText sets the "alt_text" field if the given value is not nil.
func (mac *MediaAssetCreate) SetNillableAltText(s *string) *MediaAssetCreate {
	if s != nil {
		mac.SetAltText(*s)
	}
	return mac
}

// SetCaption sets the "caption" field.
func (mac *MediaAssetCreate) SetCaption(s string) *MediaAssetCreate {
	mac.mutation.SetCaption(s)
	return mac
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (mac *MediaAssetCreate) SetNillableCaption(s *string) *MediaAssetCreate {
	if s != nil {
		mac.SetCaption(*s)
	}
	return mac
}

// SetTags sets the "tags" field.
func (mac *MediaAssetCreate) SetTags(s string) *MediaAssetCreate {
	mac.mutation.SetTags(s)
	return mac
}

// SetNillableTags sets the "tags" field if the given value is not nil.
func (mac *MediaAssetCreate) SetNillableTags(s *string) *MediaAssetCreate {
	if s != nil {
		mac.SetTags(*s)
	}
	return mac
}

// SetCategory sets the "category" field.
func (mac *MediaAssetCreate) SetCategory(s string) *MediaAssetCreate {
	mac.mutation.SetCategory(s)
	return mac
}

// SetUploadedBy sets the "uploaded_by" field.
func (mac *MediaAssetCreate) SetUploadedBy(u uint) *MediaAssetCreate {
	mac.mutation.SetUploadedBy(u)
	return mac
}

// SetVehicleID sets the "vehicle_id" field.
func (mac *MediaAssetCreate) SetVehicleID(u uint) *MediaAssetCreate {
	mac.mutation.SetVehicleID(u)
	return mac
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (mac *MediaAssetCreate) SetNillableVehicleID(u *uint) *MediaAssetCreate {
	if u != nil {
		mac.SetVehicleID(*u)
	}
	return mac
}

// SetWidth sets the "width" field.
func (mac *MediaAssetCreate) SetWidth(i int) *MediaAssetCreate {
	mac.mutation.SetWidth(i)
	return mac
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (mac *MediaAssetCreate) SetNillableWidth(i *int) *MediaAssetCreate {
	if i != nil {
		mac.SetWidth(*i)
	}
	return mac
}

// SetHeight sets the "height" field.
func (mac *MediaAssetCreate) SetHeight(i int) *MediaAssetCreate {
	mac.mutation.SetHeight(i)
	return mac
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (mac *MediaAssetCreate) SetNillableHeight(i *int) *MediaAssetCreate {
	if i != nil {
		mac.SetHeight(*i)
	}
	return mac
}

// SetFormat sets the "format" field.
func (mac *MediaAssetCreate) SetFormat(s string) *MediaAssetCreate {
	mac.mutation.SetFormat(s)
	return mac
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (mac *MediaAssetCreate) SetNillableFormat(s *string) *MediaAssetCreate {
	if s != nil {
		mac.SetFormat(*s)
	}
	return mac
}

// SetDominantColor sets the "dominant_color" field.
func (mac *MediaAssetCreate) SetDominantColor(s string) *MediaAssetCreate {
	mac.mutation.SetDominantColor(s)
	return mac
}

// SetNillableDominantColor sets the "dominant_color" field if the given value is not nil.
func (mac *MediaAssetCreate) SetNillableDominantColor(s *string) *MediaAssetCreate {
	if s != nil {
		mac.SetDominantColor(*s)
	}
	return mac
}

// SetID sets the "id" field.
func (mac *MediaAssetCreate) SetID(u uint) *MediaAssetCreate {
	mac.mutation.SetID(u)
	return mac
}

// Mutation returns the MediaAssetMutation object of the builder.
func (mac *MediaAssetCreate) Mutation() *MediaAssetMutation {
	return mac.mutation
}

// Save creates the MediaAsset in the database.
func (mac *MediaAssetCreate) Save(ctx context.Context) (*MediaAsset, error) {
	mac.defaults()
	return withHooks(ctx, mac.sqlSave, mac.mutation, mac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (mac *MediaAssetCreate) SaveX(ctx context.Context) *MediaAsset {
	v, err := mac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mac *MediaAssetCreate) Exec(ctx context.Context) error {
	_, err := mac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mac *MediaAssetCreate) ExecX(ctx context.Context) {
	if err := mac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mac *MediaAssetCreate) defaults() {
	if _, ok := mac.mutation.CreatedAt(); !ok {
		v := mediaasset.DefaultCreatedAt()
		mac.mutation.SetCreatedAt(v)
	}
	if _, ok := mac.mutation.UpdatedAt(); !ok {
		v := mediaasset.DefaultUpdatedAt()
		mac.mutation.SetUpdatedAt(v)
	}
	if _, ok := mac.mutation.Size(); !ok {
		v := mediaasset.DefaultSize
		mac.mutation.SetSize(v)
	}
	if _, ok := mac.mutation.Width(); !ok {
		v := mediaasset.DefaultWidth
		mac.mutation.SetWidth(v)
	}
	if _, ok := mac.mutation.Height(); !ok {
		v := mediaasset.DefaultHeight
		mac.mutation.SetHeight(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mac *MediaAssetCreate) check() error {
	if _, ok := mac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MediaAsset.created_at"`)}
	}
	if _, ok := mac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MediaAsset.updated_at"`)}
	}
	if _, ok := mac.mutation.StorageKey(); !ok {
		return &ValidationError{Name: "storage_key", err: errors.New(`ent: missing required field "MediaAsset.storage_key"`)}
	}
	if v, ok := mac.mutation.StorageKey(); ok {
		if err := mediaasset.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.storage_key": %w`, err)}
		}
	}
	if _, ok := mac.mutation.OriginalName(); !ok {
		return &ValidationError{Name: "original_name", err: errors.New(`ent: missing required field "MediaAsset.original_name"`)}
	}
	if v, ok := mac.mutation.OriginalName(); ok {
		if err := mediaasset.OriginalNameValidator(v); err != nil {
			return &ValidationError{Name: "original_name", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.original_name": %w`, err)}
		}
	}
	if _, ok := mac.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "MediaAsset.mime_type"`)}
	}
	if v, ok := mac.mutation.MimeType(); ok {
		if err := mediaasset.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.mime_type": %w`, err)}
		}
	}
	if _, ok := mac.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "MediaAsset.size"`)}
	}
	if _, ok := mac.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "MediaAsset.url"`)}
	}
	if v, ok := mac.mutation.AltText(); ok {
		if err := mediaasset.AltTextValidator(v); err != nil {
			return &ValidationError{Name: "alt_text", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.alt_text": %w`, err)}
		}
	}
	if _, ok := mac.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "MediaAsset.category"`)}
	}
	if v, ok := mac.mutation.Category(); ok {
		if err := mediaasset.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.category": %w`, err)}
		}
	}
	if _, ok := mac.mutation.UploadedBy(); !ok {
		return &ValidationError{Name: "uploaded_by", err: errors.New(`ent: missing required field "MediaAsset.uploaded_by"`)}
	}
	if _, ok := mac.mutation.Width(); !ok {
		return &ValidationError{Name: "width", err: errors.New(`ent: missing required field "MediaAsset.width"`)}
	}
	if _, ok := mac.mutation.Height(); !ok {
		return &ValidationError{Name: "height", err: errors.New(`ent: missing required field "MediaAsset.height"`)}
	}
	if v, ok := mac.mutation.Format(); ok {
		if err := mediaasset.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.format": %w`, err)}
		}
	}
	if v, ok := mac.mutation.DominantColor(); ok {
		if err := mediaasset.DominantColorValidator(v); err != nil {
			return &ValidationError{Name: "dominant_color", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.dominant_color": %w`, err)}
		}
	}
	return nil
}

func (mac *MediaAssetCreate) sqlSave(ctx context.Context) (*MediaAsset, error) {
	if err := mac.check(); err != nil {
		return nil, err
	}
	_node, _spec := mac.createSpec()
	if err := sqlgraph.CreateNode(ctx, mac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	mac.mutation.id = &_node.ID
	mac.mutation.done = true
	return _node, nil
}

func (mac *MediaAssetCreate) createSpec() (*MediaAsset, *sqlgraph.CreateSpec) {
	var (
		_node = &MediaAsset{config: mac.config}
		_spec = sqlgraph.NewCreateSpec(mediaasset.Table, sqlgraph.NewFieldSpec(mediaasset.FieldID, field.TypeUint))
	)
	if id, ok := mac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := mac.mutation.CreatedAt(); ok {
		_spec.SetField(mediaasset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := mac.mutation.UpdatedAt(); ok {
		_spec.SetField(mediaasset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := mac.mutation.StorageKey(); ok {
		_spec.SetField(mediaasset.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = value
	}
	if value, ok := mac.mutation.OriginalName(); ok {
		_spec.SetField(mediaasset.FieldOriginalName, field.TypeString, value)
		_node.OriginalName = value
	}
	if value, ok := mac.mutation.MimeType(); ok {
		_spec.SetField(mediaasset.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := mac.mutation.Size(); ok {
		_spec.SetField(mediaasset.FieldSize, field.TypeInt64, value)
		_node.Size = value
	}
	if value, ok := mac.mutation.URL(); ok {
		_spec.SetField(mediaasset.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := mac.mutation.Renditions(); ok {
		_spec.SetField(mediaasset.FieldRenditions, field.TypeString, value)
		_node.Renditions = &value
	}
	if value, ok := mac.mutation.AltText(); ok {
		_spec.SetField(mediaasset.FieldAltText, field.TypeString, value)
		_node.AltText = value
	}
	if value, ok := mac.mutation.Caption(); ok {
		_spec.SetField(mediaasset.FieldCaption, field.TypeString, value)
		_node.Caption = value
	}
	if value, ok := mac.mutation.Tags(); ok {
		_spec.SetField(mediaasset.FieldTags, field.TypeString, value)
		_node.Tags = &value
	}
	if value, ok := mac.mutation.Category(); ok {
		_spec.SetField(mediaasset.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := mac.mutation.UploadedBy(); ok {
		_spec.SetField(mediaasset.FieldUploadedBy, field.TypeUint, value)
		_node.UploadedBy = value
	}
	if value, ok := mac.mutation.VehicleID(); ok {
		_spec.SetField(mediaasset.FieldVehicleID, field.TypeUint, value)
		_node.VehicleID = &value
	}
	if value, ok := mac.mutation.Width(); ok {
		_spec.SetField(mediaasset.FieldWidth, field.TypeInt, value)
		_node.Width = value
	}
	if value, ok := mac.mutation.Height(); ok {
		_spec.SetField(mediaasset.FieldHeight, field.TypeInt, value)
		_node.Height = value
	}
	if value, ok := mac.mutation.Format(); ok {
		_spec.SetField(mediaasset.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := mac.mutation.DominantColor(); ok {
		_spec.SetField(mediaasset.FieldDominantColor, field.TypeString, value)
		_node.DominantColor = value
	}
	return _node, _spec
}

// MediaAssetCreateBulk is the builder for creating many MediaAsset entities in bulk.
type MediaAssetCreateBulk struct {
	config
	err      error
	builders []*MediaAssetCreate
}

// Save creates the MediaAsset entities in the database.
func (macb *MediaAssetCreateBulk) Save(ctx context.Context) ([]*MediaAsset, error) {
	if macb.err != nil {
		return nil, macb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(macb.builders))
	nodes := make([]*MediaAsset, len(macb.builders))
	mutators := make([]Mutator, len(macb.builders))
	for i := range macb.builders {
		func(i int, root context.Context) {
			builder := macb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MediaAssetMutation)
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
					_, err = mutators[i+1].Mutate(root, macb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, macb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, macb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (macb *MediaAssetCreateBulk) SaveX(ctx context.Context) []*MediaAsset {
	v, err := macb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (macb *MediaAssetCreateBulk) Exec(ctx context.Context) error {
	_, err := macb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (macb *MediaAssetCreateBulk) ExecX(ctx context.Context) {
	if err := macb.Exec(ctx); err != nil {
		panic(err)
	}
}
