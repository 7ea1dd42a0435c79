// Code generated by ent, DO NOT EDIT.

package vehicle

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the vehicle type in the database.
	Label = "vehicle"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldMake holds the string denoting the make field in the database.
	FieldMake = "make"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldPriceCents holds the string denoting the price_cents field in the database.
	FieldPriceCents = "price_cents"
	// FieldMileage holds the string denoting the mileage field in the database.
	FieldMileage = "mileage"
	// FieldFuelType holds the string denoting the fuel_type field in the database.
	FieldFuelType = "fuel_type"
	// FieldTransmission holds the string denoting the transmission field in the database.
	FieldTransmission = "transmission"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFeatured holds the string denoting the featured field in the database.
	FieldFeatured = "featured"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDescriptionHTML holds the string denoting the description_html field in the database.
	FieldDescriptionHTML = "description_html"
	// FieldCoverMediaID holds the string denoting the cover_media_id field in the database.
	FieldCoverMediaID = "cover_media_id"
	// Table holds the table name of the vehicle in the database.
	Table = "vehicles"
)

// Columns holds all SQL columns for vehicle fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldMake,
	FieldModel,
	FieldYear,
	FieldPriceCents,
	FieldMileage,
	FieldFuelType,
	FieldTransmission,
	FieldStatus,
	FieldFeatured,
	FieldDescription,
	FieldDescriptionHTML,
	FieldCoverMediaID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// MakeValidator is a validator for the "make" field. It is called by the builders before save.
	MakeValidator func(string) error
	// ModelValidator is a validator for the "model" field. It is called by the builders before save.
	ModelValidator func(string) error
	// DefaultPriceCents holds the default value on creation for the "price_cents" field.
	DefaultPriceCents int64
	// DefaultMileage holds the default value on creation for the "mileage" field.
	DefaultMileage int
	// FuelTypeValidator is a validator for the "fuel_type" field. It is called by the builders before save.
	FuelTypeValidator func(string) error
	// TransmissionValidator is a validator for the "transmission" field. It is called by the builders before save.
	TransmissionValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultFeatured holds the default value on creation for the "featured" field.
	DefaultFeatured bool
)

// OrderOption defines the ordering options for the Vehicle queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMake orders the results by the make field.
func ByMake(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMake, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByYear orders the results by the year field.
func ByYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYear, opts...).ToFunc()
}

// ByPriceCents orders the results by the price_cents field.
func ByPriceCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceCents, opts...).ToFunc()
}

// ByMileage orders the results by the mileage field.
func ByMileage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMileage, opts...).ToFunc()
}

// ByFuelType orders the results by the fuel_type field.
func ByFuelType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFuelType, opts...).ToFunc()
}

// ByTransmission orders the results by the transmission field.
func ByTransmission(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransmission, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFeatured orders the results by the featured field.
func ByFeatured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatured, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDescriptionHTML orders the results by the description_html field.
func ByDescriptionHTML(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescriptionHTML, opts...).ToFunc()
}

// ByCoverMediaID orders the results by the cover_media_id field.
func ByCoverMediaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoverMediaID, opts...).ToFunc()
}
