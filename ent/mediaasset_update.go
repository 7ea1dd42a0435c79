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
	"github.com/behark/autoanikw-sub000/ent/mediaasset"
	"github.com/behark/autoanikw-sub000/ent/predicate"
)

// MediaAssetUpdate is the builder for updating MediaAsset entities.
type MediaAssetUpdate struct {
	config
	hooks    []Hook
	mutation *MediaAssetMutation
}

// Where appends a list predicates to the MediaAssetUpdate builder.
func (mau *MediaAssetUpdate) Where(ps ...predicate.MediaAsset) *MediaAssetUpdate {
	mau.mutation.Where(ps...)
	return mau
}

// SetUpdatedAt sets the "updated_at" field.
func (mau *MediaAssetUpdate) SetUpdatedAt(t time.Time) *MediaAssetUpdate {
	mau.mutation.SetUpdatedAt(t)
	return mau
}

// SetStorageKey sets the "storage_key" field.
func (mau *MediaAssetUpdate) SetStorageKey(s string) *MediaAssetUpdate {
	mau.mutation.SetStorageKey(s)
	return mau
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableStorageKey(s *string) *MediaAssetUpdate {
	if s != nil {
		mau.SetStorageKey(*s)
	}
	return mau
}

// SetOriginalName sets the "original_name" field.
func (mau *MediaAssetUpdate) SetOriginalName(s string) *MediaAssetUpdate {
	mau.mutation.SetOriginalName(s)
	return mau
}

// SetNillableOriginalName sets the "original_name" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableOriginalName(s *string) *MediaAssetUpdate {
	if s != nil {
		mau.SetOriginalName(*s)
	}
	return mau
}

// SetMimeType sets the "mime_type" field.
func (mau *MediaAssetUpdate) SetMimeType(s string) *MediaAssetUpdate {
	mau.mutation.SetMimeType(s)
	return mau
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableMimeType(s *string) *MediaAssetUpdate {
	if s != nil {
		mau.SetMimeType(*s)
	}
	return mau
}

// SetSize sets the "size" field.
func (mau *MediaAssetUpdate) SetSize(i int64) *MediaAssetUpdate {
	mau.mutation.ResetSize()
	mau.mutation.SetSize(i)
	return mau
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableSize(i *int64) *MediaAssetUpdate {
	if i != nil {
		mau.SetSize(*i)
	}
	return mau
}

// AddSize adds i to the "size" field.
func (mau *MediaAssetUpdate) AddSize(i int64) *MediaAssetUpdate {
	mau.mutation.AddSize(i)
	return mau
}

// SetURL sets the "url" field.
func (mau *MediaAssetUpdate) SetURL(s string) *MediaAssetUpdate {
	mau.mutation.SetURL(s)
	return mau
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableURL(s *string) *MediaAssetUpdate {
	if s != nil {
		mau.SetURL(*s)
	}
	return mau
}

// SetRenditions sets the "renditions" field.
func (mau *MediaAssetUpdate) SetRenditions(s string) *MediaAssetUpdate {
	mau.mutation.SetRenditions(s)
	return mau
}

// SetNillableRenditions sets the "renditions" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableRenditions(s *string) *MediaAssetUpdate {
	if s != nil {
		mau.SetRenditions(*s)
	}
	return mau
}

// ClearRenditions clears the value of the "renditions" field.
func (mau *MediaAssetUpdate) ClearRenditions() *MediaAssetUpdate {
	mau.mutation.ClearRenditions()
	return mau
}

// SetAltText sets the "alt_text" field.
func (mau *MediaAssetUpdate) SetAltText(s string) *MediaAssetUpdate {
	mau.mutation.SetAltText(s)
	return mau
}

// SetNillableAltText sets the "alt_text" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableAltText(s *string) *MediaAssetUpdate {
	if s != nil {
		mau.SetAltText(*s)
	}
	return mau
}

// ClearAltText clears the value of the "alt_text" field.
func (mau *MediaAssetUpdate) ClearAltText() *MediaAssetUpdate {
	mau.mutation.ClearAltText()
	return mau
}

// SetCaption sets the "caption" field.
func (mau *MediaAssetUpdate) SetCaption(s string) *MediaAssetUpdate {
	mau.mutation.SetCaption(s)
	return mau
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableCaption(s *string) *MediaAssetUpdate {
	if s != nil {
		mau.SetCaption(*s)
	}
	return mau
}

// ClearCaption clears the value of the "caption" field.
func (mau *MediaAssetUpdate) ClearCaption() *MediaAssetUpdate {
	mau.mutation.ClearCaption()
	return mau
}

// SetTags sets the "tags" field.
func (mau *MediaAssetUpdate) SetTags(s string) *MediaAssetUpdate {
	mau.mutation.SetTags(s)
	return mau
}

// SetNillableTags sets the "tags" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableTags(s *string) *MediaAssetUpdate {
	if s != nil {
		mau.SetTags(*s)
	}
	return mau
}

// ClearTags clears the value of the "tags" field.
func (mau *MediaAssetUpdate) ClearTags() *MediaAssetUpdate {
	mau.mutation.ClearTags()
	return mau
}

// SetCategory sets the "category" field.
func (mau *MediaAssetUpdate) SetCategory(s string) *MediaAssetUpdate {
	mau.mutation.SetCategory(s)
	return mau
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableCategory(s *string) *MediaAssetUpdate {
	if s != nil {
		mau.SetCategory(*s)
	}
	return mau
}

// SetUploadedBy sets the "uploaded_by" field.
func (mau *MediaAssetUpdate) SetUploadedBy(u uint) *MediaAssetUpdate {
	mau.mutation.ResetUploadedBy()
	mau.mutation.SetUploadedBy(u)
	return mau
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableUploadedBy(u *uint) *MediaAssetUpdate {
	if u != nil {
		mau.SetUploadedBy(*u)
	}
	return mau
}

// AddUploadedBy adds u to the "uploaded_by" field.
func (mau *MediaAssetUpdate) AddUploadedBy(u int) *MediaAssetUpdate {
	mau.mutation.AddUploadedBy(u)
	return mau
}

// SetVehicleID sets the "vehicle_id" field.
func (mau *MediaAssetUpdate) SetVehicleID(u uint) *MediaAssetUpdate {
	mau.mutation.ResetVehicleID()
	mau.mutation.SetVehicleID(u)
	return mau
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableVehicleID(u *uint) *MediaAssetUpdate {
	if u != nil {
		mau.SetVehicleID(*u)
	}
	return mau
}

// AddVehicleID adds u to the "vehicle_id" field.
func (mau *MediaAssetUpdate) AddVehicleID(u int) *MediaAssetUpdate {
	mau.mutation.AddVehicleID(u)
	return mau
}

// ClearVehicleID clears the value of the "vehicle_id" field.
func (mau *MediaAssetUpdate) ClearVehicleID() *MediaAssetUpdate {
	mau.mutation.ClearVehicleID()
	return mau
}

// SetWidth sets the "width" field.
func (mau *MediaAssetUpdate) SetWidth(i int) *MediaAssetUpdate {
	mau.mutation.ResetWidth()
	mau.mutation.SetWidth(i)
	return mau
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableWidth(i *int) *MediaAssetUpdate {
	if i != nil {
		mau.SetWidth(*i)
	}
	return mau
}

// AddWidth adds i to the "width" field.
func (mau *MediaAssetUpdate) AddWidth(i int) *MediaAssetUpdate {
	mau.mutation.AddWidth(i)
	return mau
}

// SetHeight sets the "height" field.
func (mau *MediaAssetUpdate) SetHeight(i int) *MediaAssetUpdate {
	mau.mutation.ResetHeight()
	mau.mutation.SetHeight(i)
	return mau
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableHeight(i *int) *MediaAssetUpdate {
	if i != nil {
		mau.SetHeight(*i)
	}
	return mau
}

// AddHeight adds i to the "height" field.
func (mau *MediaAssetUpdate) AddHeight(i int) *MediaAssetUpdate {
	mau.mutation.AddHeight(i)
	return mau
}

// SetFormat sets the "format" field.
func (mau *MediaAssetUpdate) SetFormat(s string) *MediaAssetUpdate {
	mau.mutation.SetFormat(s)
	return mau
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableFormat(s *string) *MediaAssetUpdate {
	if s != nil {
		mau.SetFormat(*s)
	}
	return mau
}

// ClearFormat clears the value of the "format" field.
func (mau *MediaAssetUpdate) ClearFormat() *MediaAssetUpdate {
	mau.mutation.ClearFormat()
	return mau
}

// SetDominantColor sets the "dominant_color" field.
func (mau *MediaAssetUpdate) SetDominantColor(s string) *MediaAssetUpdate {
	mau.mutation.SetDominantColor(s)
	return mau
}

// SetNillableDominantColor sets the "dominant_color" field if the given value is not nil.
func (mau *MediaAssetUpdate) SetNillableDominantColor(s *string) *MediaAssetUpdate {
	if s != nil {
		mau.SetDominantColor(*s)
	}
	return mau
}

// ClearDominantColor clears the value of the "dominant_color" field.
func (mau *MediaAssetUpdate) ClearDominantColor() *MediaAssetUpdate {
	mau.mutation.ClearDominantColor()
	return mau
}

// Mutation returns the MediaAssetMutation object of the builder.
func (mau *MediaAssetUpdate) Mutation() *MediaAssetMutation {
	return mau.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (mau *MediaAssetUpdate) Save(ctx context.Context) (int, error) {
	mau.defaults()
	return withHooks(ctx, mau.sqlSave, mau.mutation, mau.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mau *MediaAssetUpdate) SaveX(ctx context.Context) int {
	affected, err := mau.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (mau *MediaAssetUpdate) Exec(ctx context.Context) error {
	_, err := mau.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mau *MediaAssetUpdate) ExecX(ctx context.Context) {
	if err := mau.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mau *MediaAssetUpdate) defaults() {
	if _, ok := mau.mutation.UpdatedAt(); !ok {
		v := mediaasset.UpdateDefaultUpdatedAt()
		mau.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mau *MediaAssetUpdate) check() error {
	if v, ok := mau.mutation.StorageKey(); ok {
		if err := mediaasset.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.storage_key": %w`, err)}
		}
	}
	if v, ok := mau.mutation.OriginalName(); ok {
		if err := mediaasset.OriginalNameValidator(v); err != nil {
			return &ValidationError{Name: "original_name", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.original_name": %w`, err)}
		}
	}
	if v, ok := mau.mutation.MimeType(); ok {
		if err := mediaasset.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.mime_type": %w`, err)}
		}
	}
	if v, ok := mau.mutation.AltText(); ok {
		if err := mediaasset.AltTextValidator(v); err != nil {
			return &ValidationError{Name: "alt_text", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.alt_text": %w`, err)}
		}
	}
	if v, ok := mau.mutation.Category(); ok {
		if err := mediaasset.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.category": %w`, err)}
		}
	}
	if v, ok := mau.mutation.Format(); ok {
		if err := mediaasset.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.format": %w`, err)}
		}
	}
	if v, ok := mau.mutation.DominantColor(); ok {
		if err := mediaasset.DominantColorValidator(v); err != nil {
			return &ValidationError{Name: "dominant_color", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.dominant_color": %w`, err)}
		}
	}
	return nil
}

func (mau *MediaAssetUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := mau.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(mediaasset.Table, mediaasset.Columns, sqlgraph.NewFieldSpec(mediaasset.FieldID, field.TypeUint))
	if ps := mau.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mau.mutation.UpdatedAt(); ok {
		_spec.SetField(mediaasset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := mau.mutation.StorageKey(); ok {
		_spec.SetField(mediaasset.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := mau.mutation.OriginalName(); ok {
		_spec.SetField(mediaasset.FieldOriginalName, field.TypeString, value)
	}
	if value, ok := mau.mutation.MimeType(); ok {
		_spec.SetField(mediaasset.FieldMimeType, field.TypeString, value)
	}
	if value, ok := mau.mutation.Size(); ok {
		_spec.SetField(mediaasset.FieldSize, field.TypeInt64, value)
	}
	if value, ok := mau.mutation.AddedSize(); ok {
		_spec.AddField(mediaasset.FieldSize, field.TypeInt64, value)
	}
	if value, ok := mau.mutation.URL(); ok {
		_spec.SetField(mediaasset.FieldURL, field.TypeString, value)
	}
	if value, ok := mau.mutation.Renditions(); ok {
		_spec.SetField(mediaasset.FieldRenditions, field.TypeString, value)
	}
	if mau.mutation.RenditionsCleared() {
		_spec.ClearField(mediaasset.FieldRenditions, field.TypeString)
	}
	if value, ok := mau.mutation.AltText(); ok {
		_spec.SetField(mediaasset.FieldAltText, field.TypeString, value)
	}
	if mau.mutation.AltTextCleared() {
		_spec.ClearField(mediaasset.FieldAltText, field.TypeString)
	}
	if value, ok := mau.mutation.Caption(); ok {
		_spec.SetField(mediaasset.FieldCaption, field.TypeString, value)
	}
	if mau.mutation.CaptionCleared() {
		_spec.ClearField(mediaasset.FieldCaption, field.TypeString)
	}
	if value, ok := mau.mutation.Tags(); ok {
		_spec.SetField(mediaasset.FieldTags, field.TypeString, value)
	}
	if mau.mutation.TagsCleared() {
		_spec.ClearField(mediaasset.FieldTags, field.TypeString)
	}
	if value, ok := mau.mutation.Category(); ok {
		_spec.SetField(mediaasset.FieldCategory, field.TypeString, value)
	}
	if value, ok := mau.mutation.UploadedBy(); ok {
		_spec.SetField(mediaasset.FieldUploadedBy, field.TypeUint, value)
	}
	if value, ok := mau.mutation.AddedUploadedBy(); ok {
		_spec.AddField(mediaasset.FieldUploadedBy, field.TypeUint, value)
	}
	if value, ok := mau.mutation.VehicleID(); ok {
		_spec.SetField(mediaasset.FieldVehicleID, field.TypeUint, value)
	}
	if value, ok := mau.mutation.AddedVehicleID(); ok {
		_spec.AddField(mediaasset.FieldVehicleID, field.TypeUint, value)
	}
	if mau.mutation.VehicleIDCleared() {
		_spec.ClearField(mediaasset.FieldVehicleID, field.TypeUint)
	}
	if value, ok := mau.mutation.Width(); ok {
		_spec.SetField(mediaasset.FieldWidth, field.TypeInt, value)
	}
	if value, ok := mau.mutation.AddedWidth(); ok {
		_spec.AddField(mediaasset.FieldWidth, field.TypeInt, value)
	}
	if value, ok := mau.mutation.Height(); ok {
		_spec.SetField(mediaasset.FieldHeight, field.TypeInt, value)
	}
	if value, ok := mau.mutation.AddedHeight(); ok {
		_spec.AddField(mediaasset.FieldHeight, field.TypeInt, value)
	}
	if value, ok := mau.mutation.Format(); ok {
		_spec.SetField(mediaasset.FieldFormat, field.TypeString, value)
	}
	if mau.mutation.FormatCleared() {
		_spec.ClearField(mediaasset.FieldFormat, field.TypeString)
	}
	if value, ok := mau.mutation.DominantColor(); ok {
		_spec.SetField(mediaasset.FieldDominantColor, field.TypeString, value)
	}
	if mau.mutation.DominantColorCleared() {
		_spec.ClearField(mediaasset.FieldDominantColor, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, mau.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mediaasset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	mau.mutation.done = true
	return n, nil
}

// MediaAssetUpdateOne is the builder for updating a single MediaAsset entity.
type MediaAssetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MediaAssetMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (mauo *MediaAssetUpdateOne) SetUpdatedAt(t time.Time) *MediaAssetUpdateOne {
	mauo.mutation.SetUpdatedAt(t)
	return mauo
}

// SetStorageKey sets the "storage_key" field.
func (mauo *MediaAssetUpdateOne) SetStorageKey(s string) *MediaAssetUpdateOne {
	mauo.mutation.SetStorageKey(s)
	return mauo
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableStorageKey(s *string) *MediaAssetUpdateOne {
	if s != nil {
		mauo.SetStorageKey(*s)
	}
	return mauo
}

// SetOriginalName sets the "original_name" field.
func (mauo *MediaAssetUpdateOne) SetOriginalName(s string) *MediaAssetUpdateOne {
	mauo.mutation.SetOriginalName(s)
	return mauo
}

// SetNillableOriginalName sets the "original_name" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableOriginalName(s *string) *MediaAssetUpdateOne {
	if s != nil {
		mauo.SetOriginalName(*s)
	}
	return mauo
}

// SetMimeType sets the "mime_type" field.
func (mauo *MediaAssetUpdateOne) SetMimeType(s string) *MediaAssetUpdateOne {
	mauo.mutation.SetMimeType(s)
	return mauo
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableMimeType(s *string) *MediaAssetUpdateOne {
	if s != nil {
		mauo.SetMimeType(*s)
	}
	return mauo
}

// SetSize sets the "size" field.
func (mauo *MediaAssetUpdateOne) SetSize(i int64) *MediaAssetUpdateOne {
	mauo.mutation.ResetSize()
	mauo.mutation.SetSize(i)
	return mauo
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableSize(i *int64) *MediaAssetUpdateOne {
	if i != nil {
		mauo.SetSize(*i)
	}
	return mauo
}

// AddSize adds i to the "size" field.
func (mauo *MediaAssetUpdateOne) AddSize(i int64) *MediaAssetUpdateOne {
	mauo.mutation.AddSize(i)
	return mauo
}

// SetURL sets the "url" field.
func (mauo *MediaAssetUpdateOne) SetURL(s string) *MediaAssetUpdateOne {
	mauo.mutation.SetURL(s)
	return mauo
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableURL(s *string) *MediaAssetUpdateOne {
	if s != nil {
		mauo.SetURL(*s)
	}
	return mauo
}

// SetRenditions sets the "renditions" field.
func (mauo *MediaAssetUpdateOne) SetRenditions(s string) *MediaAssetUpdateOne {
	mauo.mutation.SetRenditions(s)
	return mauo
}

// SetNillableRenditions sets the "renditions" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableRenditions(s *string) *MediaAssetUpdateOne {
	if s != nil {
		mauo.SetRenditions(*s)
	}
	return mauo
}

// ClearRenditions clears the value of the "renditions" field.
func (mauo *MediaAssetUpdateOne) ClearRenditions() *MediaAssetUpdateOne {
	mauo.mutation.ClearRenditions()
	return mauo
}

// SetAltText sets the "alt_text" field.
func (mauo *MediaAssetUpdateOne) SetAltText(s string) *MediaAssetUpdateOne {
	mauo.mutation.SetAltText(s)
	return mauo
}

// SetNillableAltText sets the "alt_text" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableAltText(s *string) *MediaAssetUpdateOne {
	if s != nil {
		mauo.SetAltText(*s)
	}
	return mauo
}

// ClearAltText clears the value of the "alt_text" field.
func (mauo *MediaAssetUpdateOne) ClearAltText() *MediaAssetUpdateOne {
	mauo.mutation.ClearAltText()
	return mauo
}

// SetCaption sets the "caption" field.
func (mauo *MediaAssetUpdateOne) SetCaption(s string) *MediaAssetUpdateOne {
	mauo.mutation.SetCaption(s)
	return mauo
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableCaption(s *string) *MediaAssetUpdateOne {
	if s != nil {
		mauo.SetCaption(*s)
	}
	return mauo
}

// ClearCaption clears the value of the "caption" field.
func (mauo *MediaAssetUpdateOne) ClearCaption() *MediaAssetUpdateOne {
	mauo.mutation.ClearCaption()
	return mauo
}

// SetTags sets the "tags" field.
func (mauo *MediaAssetUpdateOne) SetTags(s string) *MediaAssetUpdateOne {
	mauo.mutation.SetTags(s)
	return mauo
}

// SetNillableTags sets the "tags" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableTags(s *string) *MediaAssetUpdateOne {
	if s != nil {
		mauo.SetTags(*s)
	}
	return mauo
}

// ClearTags clears the value of the "tags" field.
func (mauo *MediaAssetUpdateOne) ClearTags() *MediaAssetUpdateOne {
	mauo.mutation.ClearTags()
	return mauo
}

// SetCategory sets the "category" field.
func (mauo *MediaAssetUpdateOne) SetCategory(s string) *MediaAssetUpdateOne {
	mauo.mutation.SetCategory(s)
	return mauo
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableCategory(s *string) *MediaAssetUpdateOne {
	if s != nil {
		mauo.SetCategory(*s)
	}
	return mauo
}

// SetUploadedBy sets the "uploaded_by" field.
func (mauo *MediaAssetUpdateOne) SetUploadedBy(u uint) *MediaAssetUpdateOne {
	mauo.mutation.ResetUploadedBy()
	mauo.mutation.SetUploadedBy(u)
	return mauo
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableUploadedBy(u *uint) *MediaAssetUpdateOne {
	if u != nil {
		mauo.SetUploadedBy(*u)
	}
	return mauo
}

// AddUploadedBy adds u to the "uploaded_by" field.
func (mauo *MediaAssetUpdateOne) AddUploadedBy(u int) *MediaAssetUpdateOne {
	mauo.mutation.AddUploadedBy(u)
	return mauo
}

// SetVehicleID sets the "vehicle_id" field.
func (mauo *MediaAssetUpdateOne) SetVehicleID(u uint) *MediaAssetUpdateOne {
	mauo.mutation.ResetVehicleID()
	mauo.mutation.SetVehicleID(u)
	return mauo
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableVehicleID(u *uint) *MediaAssetUpdateOne {
	if u != nil {
		mauo.SetVehicleID(*u)
	}
	return mauo
}

// AddVehicleID adds u to the "vehicle_id" field.
func (mauo *MediaAssetUpdateOne) AddVehicleID(u int) *MediaAssetUpdateOne {
	mauo.mutation.AddVehicleID(u)
	return mauo
}

// ClearVehicleID clears the value of the "vehicle_id" field.
func (mauo *MediaAssetUpdateOne) ClearVehicleID() *MediaAssetUpdateOne {
	mauo.mutation.ClearVehicleID()
	return mauo
}

// SetWidth sets the "width" field.
func (mauo *MediaAssetUpdateOne) SetWidth(i int) *MediaAssetUpdateOne {
	mauo.mutation.ResetWidth()
	mauo.mutation.SetWidth(i)
	return mauo
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableWidth(i *int) *MediaAssetUpdateOne {
	if i != nil {
		mauo.SetWidth(*i)
	}
	return mauo
}

// AddWidth adds i to the "width" field.
func (mauo *MediaAssetUpdateOne) AddWidth(i int) *MediaAssetUpdateOne {
	mauo.mutation.AddWidth(i)
	return mauo
}

// SetHeight sets the "height" field.
func (mauo *MediaAssetUpdateOne) SetHeight(i int) *MediaAssetUpdateOne {
	mauo.mutation.ResetHeight()
	mauo.mutation.SetHeight(i)
	return mauo
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableHeight(i *int) *MediaAssetUpdateOne {
	if i != nil {
		mauo.SetHeight(*i)
	}
	return mauo
}

// AddHeight adds i to the "height" field.
func (mauo *MediaAssetUpdateOne) AddHeight(i int) *MediaAssetUpdateOne {
	mauo.mutation.AddHeight(i)
	return mauo
}

// SetFormat sets the "format" field.
func (mauo *MediaAssetUpdateOne) SetFormat(s string) *MediaAssetUpdateOne {
	mauo.mutation.SetFormat(s)
	return mauo
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableFormat(s *string) *MediaAssetUpdateOne {
	if s != nil {
		mauo.SetFormat(*s)
	}
	return mauo
}

// ClearFormat clears the value of the "format" field.
func (mauo *MediaAssetUpdateOne) ClearFormat() *MediaAssetUpdateOne {
	mauo.mutation.ClearFormat()
	return mauo
}

// SetDominantColor sets the "dominant_color" field.
func (mauo *MediaAssetUpdateOne) SetDominantColor(s string) *MediaAssetUpdateOne {
	mauo.mutation.SetDominantColor(s)
	return mauo
}

// SetNillableDominantColor sets the "dominant_color" field if the given value is not nil.
func (mauo *MediaAssetUpdateOne) SetNillableDominantColor(s *string) *MediaAssetUpdateOne {
	if s != nil {
		mauo.SetDominantColor(*s)
	}
	return mauo
}

// ClearDominantColor clears the value of the "dominant_color" field.
func (mauo *MediaAssetUpdateOne) ClearDominantColor() *MediaAssetUpdateOne {
	mauo.mutation.ClearDominantColor()
	return mauo
}

// Mutation returns the MediaAssetMutation object of the builder.
func (mauo *MediaAssetUpdateOne) Mutation() *MediaAssetMutation {
	return mauo.mutation
}

// Where appends a list predicates to the MediaAssetUpdate builder.
func (mauo *MediaAssetUpdateOne) Where(ps ...predicate.MediaAsset) *MediaAssetUpdateOne {
	mauo.mutation.Where(ps...)
	return mauo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (mauo *MediaAssetUpdateOne) Select(field string, fields ...string) *MediaAssetUpdateOne {
	mauo.fields = append([]string{field}, fields...)
	return mauo
}

// Save executes the query and returns the updated MediaAsset entity.
func (mauo *MediaAssetUpdateOne) Save(ctx context.Context) (*MediaAsset, error) {
	mauo.defaults()
	return withHooks(ctx, mauo.sqlSave, mauo.mutation, mauo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mauo *MediaAssetUpdateOne) SaveX(ctx context.Context) *MediaAsset {
	node, err := mauo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (mauo *MediaAssetUpdateOne) Exec(ctx context.Context) error {
	_, err := mauo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mauo *MediaAssetUpdateOne) ExecX(ctx context.Context) {
	if err := mauo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mauo *MediaAssetUpdateOne) defaults() {
	if _, ok := mauo.mutation.UpdatedAt(); !ok {
		v := mediaasset.UpdateDefaultUpdatedAt()
		mauo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mauo *MediaAssetUpdateOne) check() error {
	if v, ok := mauo.mutation.StorageKey(); ok {
		if err := mediaasset.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.storage_key": %w`, err)}
		}
	}
	if v, ok := mauo.mutation.OriginalName(); ok {
		if err := mediaasset.OriginalNameValidator(v); err != nil {
			return &ValidationError{Name: "original_name", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.original_name": %w`, err)}
		}
	}
	if v, ok := mauo.mutation.MimeType(); ok {
		if err := mediaasset.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.mime_type": %w`, err)}
		}
	}
	if v, ok := mauo.mutation.AltText(); ok {
		if err := mediaasset.AltTextValidator(v); err != nil {
			return &ValidationError{Name: "alt_text", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.alt_text": %w`, err)}
		}
	}
	if v, ok := mauo.mutation.Category(); ok {
		if err := mediaasset.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.category": %w`, err)}
		}
	}
	if v, ok := mauo.mutation.Format(); ok {
		if err := mediaasset.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.format": %w`, err)}
		}
	}
	if v, ok := mauo.mutation.DominantColor(); ok {
		if err := mediaasset.DominantColorValidator(v); err != nil {
			return &ValidationError{Name: "dominant_color", err: fmt.Errorf(`ent: validator failed for field "MediaAsset.dominant_color": %w`, err)}
		}
	}
	return nil
}

func (mauo *MediaAssetUpdateOne) sqlSave(ctx context.Context) (_node *MediaAsset, err error) {
	if err := mauo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mediaasset.Table, mediaasset.Columns, sqlgraph.NewFieldSpec(mediaasset.FieldID, field.TypeUint))
	id, ok := mauo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MediaAsset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := mauo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mediaasset.FieldID)
		for _, f := range fields {
			if !mediaasset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mediaasset.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := mauo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mauo.mutation.UpdatedAt(); ok {
		_spec.SetField(mediaasset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := mauo.mutation.StorageKey(); ok {
		_spec.SetField(mediaasset.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := mauo.mutation.OriginalName(); ok {
		_spec.SetField(mediaasset.FieldOriginalName, field.TypeString, value)
	}
	if value, ok := mauo.mutation.MimeType(); ok {
		_spec.SetField(mediaasset.FieldMimeType, field.TypeString, value)
	}
	if value, ok := mauo.mutation.Size(); ok {
		_spec.SetField(mediaasset.FieldSize, field.TypeInt64, value)
	}
	if value, ok := mauo.mutation.AddedSize(); ok {
		_spec.AddField(mediaasset.FieldSize, field.TypeInt64, value)
	}
	if value, ok := mauo.mutation.URL(); ok {
		_spec.SetField(mediaasset.FieldURL, field.TypeString, value)
	}
	if value, ok := mauo.mutation.Renditions(); ok {
		_spec.SetField(mediaasset.FieldRenditions, field.TypeString, value)
	}
	if mauo.mutation.RenditionsCleared() {
		_spec.ClearField(mediaasset.FieldRenditions, field.TypeString)
	}
	if value, ok := mauo.mutation.AltText(); ok {
		_spec.SetField(mediaasset.FieldAltText, field.TypeString, value)
	}
	if mauo.mutation.AltTextCleared() {
		_spec.ClearField(mediaasset.FieldAltText, field.TypeString)
	}
	if value, ok := mauo.mutation.Caption(); ok {
		_spec.SetField(mediaasset.FieldCaption, field.TypeString, value)
	}
	if mauo.mutation.CaptionCleared() {
		_spec.ClearField(mediaasset.FieldCaption, field.TypeString)
	}
	if value, ok := mauo.mutation.Tags(); ok {
		_spec.SetField(mediaasset.FieldTags, field.TypeString, value)
	}
	if mauo.mutation.TagsCleared() {
		_spec.ClearField(mediaasset.FieldTags, field.TypeString)
	}
	if value, ok := mauo.mutation.Category(); ok {
		_spec.SetField(mediaasset.FieldCategory, field.TypeString, value)
	}
	if value, ok := mauo.mutation.UploadedBy(); ok {
		_spec.SetField(mediaasset.FieldUploadedBy, field.TypeUint, value)
	}
	if value, ok := mauo.mutation.AddedUploadedBy(); ok {
		_spec.AddField(mediaasset.FieldUploadedBy, field.TypeUint, value)
	}
	if value, ok := mauo.mutation.VehicleID(); ok {
		_spec.SetField(mediaasset.FieldVehicleID, field.TypeUint, value)
	}
	if value, ok := mauo.mutation.AddedVehicleID(); ok {
		_spec.AddField(mediaasset.FieldVehicleID, field.TypeUint, value)
	}
	if mauo.mutation.VehicleIDCleared() {
		_spec.ClearField(mediaasset.FieldVehicleID, field.TypeUint)
	}
	if value, ok := mauo.mutation.Width(); ok {
		_spec.SetField(mediaasset.FieldWidth, field.TypeInt, value)
	}
	if value, ok := mauo.mutation.AddedWidth(); ok {
		_spec.AddField(mediaasset.FieldWidth, field.TypeInt, value)
	}
	if value, ok := mauo.mutation.Height(); ok {
		_spec.SetField(mediaasset.FieldHeight, field.TypeInt, value)
	}
	if value, ok := mauo.mutation.AddedHeight(); ok {
		_spec.AddField(mediaasset.FieldHeight, field.TypeInt, value)
	}
	if value, ok := mauo.mutation.Format(); ok {
		_spec.SetField(mediaasset.FieldFormat, field.TypeString, value)
	}
	if mauo.mutation.FormatCleared() {
		_spec.ClearField(mediaasset.FieldFormat, field.TypeString)
	}
	if value, ok := mauo.mutation.DominantColor(); ok {
		_spec.SetField(mediaasset.FieldDominantColor, field.TypeString, value)
	}
	if mauo.mutation.DominantColorCleared() {
		_spec.ClearField(mediaasset.FieldDominantColor, field.TypeString)
	}
	_node = &MediaAsset{config: mauo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, mauo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mediaasset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	mauo.mutation.done = true
	return _node, nil
}
