// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/behark/autoanikw-sub000/ent/activitylog"
	"github.com/behark/autoanikw-sub000/ent/mediaasset"
	"github.com/behark/autoanikw-sub000/ent/orphanobject"
	"github.com/behark/autoanikw-sub000/ent/schema"
	"github.com/behark/autoanikw-sub000/ent/user"
	"github.com/behark/autoanikw-sub000/ent/vehicle"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activitylogFields := schema.ActivityLog{}.Fields()
	_ = activitylogFields
	// activitylogDescCreatedAt is the schema descriptor for created_at field.
	activitylogDescCreatedAt := activitylogFields[1].Descriptor()
	// activitylog.DefaultCreatedAt holds the default value on creation for the created_at field.
	activitylog.DefaultCreatedAt = activitylogDescCreatedAt.Default.(func() time.Time)
	// activitylogDescUserID is the schema descriptor for user_id field.
	activitylogDescUserID := activitylogFields[2].Descriptor()
	// activitylog.DefaultUserID holds the default value on creation for the user_id field.
	activitylog.DefaultUserID = activitylogDescUserID.Default.(uint)
	// activitylogDescAction is the schema descriptor for action field.
	activitylogDescAction := activitylogFields[3].Descriptor()
	// activitylog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	activitylog.ActionValidator = activitylogDescAction.Validators[0].(func(string) error)
	// activitylogDescEntityType is the schema descriptor for entity_type field.
	activitylogDescEntityType := activitylogFields[4].Descriptor()
	// activitylog.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	activitylog.EntityTypeValidator = activitylogDescEntityType.Validators[0].(func(string) error)
	// activitylogDescEntityID is the schema descriptor for entity_id field.
	activitylogDescEntityID := activitylogFields[5].Descriptor()
	// activitylog.DefaultEntityID holds the default value on creation for the entity_id field.
	activitylog.DefaultEntityID = activitylogDescEntityID.Default.(uint)
	mediaassetFields := schema.MediaAsset{}.Fields()
	_ = mediaassetFields
	// mediaassetDescCreatedAt is the schema descriptor for created_at field.
	mediaassetDescCreatedAt := mediaassetFields[1].Descriptor()
	// mediaasset.DefaultCreatedAt holds the default value on creation for the created_at field.
	mediaasset.DefaultCreatedAt = mediaassetDescCreatedAt.Default.(func() time.Time)
	// mediaassetDescUpdatedAt is the schema descriptor for updated_at field.
	mediaassetDescUpdatedAt := mediaassetFields[2].Descriptor()
	// mediaasset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mediaasset.DefaultUpdatedAt = mediaassetDescUpdatedAt.Default.(func() time.Time)
	// mediaasset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mediaasset.UpdateDefaultUpdatedAt = mediaassetDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mediaassetDescStorageKey is the schema descriptor for storage_key field.
	mediaassetDescStorageKey := mediaassetFields[3].Descriptor()
	// mediaasset.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	mediaasset.StorageKeyValidator = mediaassetDescStorageKey.Validators[0].(func(string) error)
	// mediaassetDescOriginalName is the schema descriptor for original_name field.
	mediaassetDescOriginalName := mediaassetFields[4].Descriptor()
	// mediaasset.OriginalNameValidator is a validator for the "original_name" field. It is called by the builders before save.
	mediaasset.OriginalNameValidator = mediaassetDescOriginalName.Validators[0].(func(string) error)
	// mediaassetDescMimeType is the schema descriptor for mime_type field.
	mediaassetDescMimeType := mediaassetFields[5].Descriptor()
	// mediaasset.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	mediaasset.MimeTypeValidator = mediaassetDescMimeType.Validators[0].(func(string) error)
	// mediaassetDescSize is the schema descriptor for size field.
	mediaassetDescSize := mediaassetFields[6].Descriptor()
	// mediaasset.DefaultSize holds the default value on creation for the size field.
	mediaasset.DefaultSize = mediaassetDescSize.Default.(int64)
	// mediaassetDescAltText is the schema descriptor for alt_text field.
	mediaassetDescAltText := mediaassetFields[9].Descriptor()
	// mediaasset.AltTextValidator is a validator for the "alt_text" field. It is called by the builders before save.
	mediaasset.AltTextValidator = mediaassetDescAltText.Validators[0].(func(string) error)
	// mediaassetDescCategory is the schema descriptor for category field.
	mediaassetDescCategory := mediaassetFields[12].Descriptor()
	// mediaasset.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	mediaasset.CategoryValidator = mediaassetDescCategory.Validators[0].(func(string) error)
	// mediaassetDescWidth is the schema descriptor for width field.
	mediaassetDescWidth := mediaassetFields[15].Descriptor()
	// mediaasset.DefaultWidth holds the default value on creation for the width field.
	mediaasset.DefaultWidth = mediaassetDescWidth.Default.(int)
	// mediaassetDescHeight is the schema descriptor for height field.
	mediaassetDescHeight := mediaassetFields[16].Descriptor()
	// mediaasset.DefaultHeight holds the default value on creation for the height field.
	mediaasset.DefaultHeight = mediaassetDescHeight.Default.(int)
	// mediaassetDescFormat is the schema descriptor for format field.
	mediaassetDescFormat := mediaassetFields[17].Descriptor()
	// mediaasset.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	mediaasset.FormatValidator = mediaassetDescFormat.Validators[0].(func(string) error)
	// mediaassetDescDominantColor is the schema descriptor for dominant_color field.
	mediaassetDescDominantColor := mediaassetFields[18].Descriptor()
	// mediaasset.DominantColorValidator is a validator for the "dominant_color" field. It is called by the builders before save.
	mediaasset.DominantColorValidator = mediaassetDescDominantColor.Validators[0].(func(string) error)
	orphanobjectFields := schema.OrphanObject{}.Fields()
	_ = orphanobjectFields
	// orphanobjectDescCreatedAt is the schema descriptor for created_at field.
	orphanobjectDescCreatedAt := orphanobjectFields[1].Descriptor()
	// orphanobject.DefaultCreatedAt holds the default value on creation for the created_at field.
	orphanobject.DefaultCreatedAt = orphanobjectDescCreatedAt.Default.(func() time.Time)
	// orphanobjectDescStorageKey is the schema descriptor for storage_key field.
	orphanobjectDescStorageKey := orphanobjectFields[2].Descriptor()
	// orphanobject.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	orphanobject.StorageKeyValidator = orphanobjectDescStorageKey.Validators[0].(func(string) error)
	// orphanobjectDescAttempts is the schema descriptor for attempts field.
	orphanobjectDescAttempts := orphanobjectFields[3].Descriptor()
	// orphanobject.DefaultAttempts holds the default value on creation for the attempts field.
	orphanobject.DefaultAttempts = orphanobjectDescAttempts.Default.(int)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[1].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[2].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[3].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[4].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescNickname is the schema descriptor for nickname field.
	userDescNickname := userFields[5].Descriptor()
	// user.NicknameValidator is a validator for the "nickname" field. It is called by the builders before save.
	user.NicknameValidator = userDescNickname.Validators[0].(func(string) error)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[6].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// user.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	user.RoleValidator = userDescRole.Validators[0].(func(string) error)
	vehicleFields := schema.Vehicle{}.Fields()
	_ = vehicleFields
	// vehicleDescCreatedAt is the schema descriptor for created_at field.
	vehicleDescCreatedAt := vehicleFields[1].Descriptor()
	// vehicle.DefaultCreatedAt holds the default value on creation for the created_at field.
	vehicle.DefaultCreatedAt = vehicleDescCreatedAt.Default.(func() time.Time)
	// vehicleDescUpdatedAt is the schema descriptor for updated_at field.
	vehicleDescUpdatedAt := vehicleFields[2].Descriptor()
	// vehicle.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vehicle.DefaultUpdatedAt = vehicleDescUpdatedAt.Default.(func() time.Time)
	// vehicle.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vehicle.UpdateDefaultUpdatedAt = vehicleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vehicleDescMake is the schema descriptor for make field.
	vehicleDescMake := vehicleFields[3].Descriptor()
	// vehicle.MakeValidator is a validator for the "make" field. It is called by the builders before save.
	vehicle.MakeValidator = vehicleDescMake.Validators[0].(func(string) error)
	// vehicleDescModel is the schema descriptor for model field.
	vehicleDescModel := vehicleFields[4].Descriptor()
	// vehicle.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	vehicle.ModelValidator = vehicleDescModel.Validators[0].(func(string) error)
	// vehicleDescPriceCents is the schema descriptor for price_cents field.
	vehicleDescPriceCents := vehicleFields[6].Descriptor()
	// vehicle.DefaultPriceCents holds the default value on creation for the price_cents field.
	vehicle.DefaultPriceCents = vehicleDescPriceCents.Default.(int64)
	// vehicleDescMileage is the schema descriptor for mileage field.
	vehicleDescMileage := vehicleFields[7].Descriptor()
	// vehicle.DefaultMileage holds the default value on creation for the mileage field.
	vehicle.DefaultMileage = vehicleDescMileage.Default.(int)
	// vehicleDescFuelType is the schema descriptor for fuel_type field.
	vehicleDescFuelType := vehicleFields[8].Descriptor()
	// vehicle.FuelTypeValidator is a validator for the "fuel_type" field. It is called by the builders before save.
	vehicle.FuelTypeValidator = vehicleDescFuelType.Validators[0].(func(string) error)
	// vehicleDescTransmission is the schema descriptor for transmission field.
	vehicleDescTransmission := vehicleFields[9].Descriptor()
	// vehicle.TransmissionValidator is a validator for the "transmission" field. It is called by the builders before save.
	vehicle.TransmissionValidator = vehicleDescTransmission.Validators[0].(func(string) error)
	// vehicleDescStatus is the schema descriptor for status field.
	vehicleDescStatus := vehicleFields[10].Descriptor()
	// vehicle.DefaultStatus holds the default value on creation for the status field.
	vehicle.DefaultStatus = vehicleDescStatus.Default.(string)
	// vehicle.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	vehicle.StatusValidator = vehicleDescStatus.Validators[0].(func(string) error)
	// vehicleDescFeatured is the schema descriptor for featured field.
	vehicleDescFeatured := vehicleFields[11].Descriptor()
	// vehicle.DefaultFeatured holds the default value on creation for the featured field.
	vehicle.DefaultFeatured = vehicleDescFeatured.Default.(bool)
}
