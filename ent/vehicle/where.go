// Code generated by ent, DO NOT EDIT.

package vehicle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/behark/autoanikw-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldUpdatedAt, v))
}

// Make applies equality check predicate on the "make" field. It's identical to MakeEQ.
func Make(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldMake, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldModel, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldYear, v))
}

// PriceCents applies equality check predicate on the "price_cents" field. It's identical to PriceCentsEQ.
func PriceCents(v int64) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldPriceCents, v))
}

// Mileage applies equality check predicate on the "mileage" field. It's identical to MileageEQ.
func Mileage(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldMileage, v))
}

// FuelType applies equality check predicate on the "fuel_type" field. It's identical to FuelTypeEQ.
func FuelType(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldFuelType, v))
}

// Transmission applies equality check predicate on the "transmission" field. It's identical to TransmissionEQ.
func Transmission(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldTransmission, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldStatus, v))
}

// Featured applies equality check predicate on the "featured" field. It's identical to FeaturedEQ.
func Featured(v bool) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldFeatured, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldDescription, v))
}

// DescriptionHTML applies equality check predicate on the "description_html" field. It's identical to DescriptionHTMLEQ.
func DescriptionHTML(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldDescriptionHTML, v))
}

// CoverMediaID applies equality check predicate on the "cover_media_id" field. It's identical to CoverMediaIDEQ.
func CoverMediaID(v uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCoverMediaID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldUpdatedAt, v))
}

// MakeEQ applies the EQ predicate on the "make" field.
func MakeEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldMake, v))
}

// MakeNEQ applies the NEQ predicate on the "make" field.
func MakeNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldMake, v))
}

// MakeIn applies the In predicate on the "make" field.
func MakeIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldMake, vs...))
}

// MakeNotIn applies the NotIn predicate on the "make" field.
func MakeNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldMake, vs...))
}

// MakeGT applies the GT predicate on the "make" field.
func MakeGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldMake, v))
}

// MakeGTE applies the GTE predicate on the "make" field.
func MakeGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldMake, v))
}

// MakeLT applies the LT predicate on the "make" field.
func MakeLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldMake, v))
}

// MakeLTE applies the LTE predicate on the "make" field.
func MakeLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldMake, v))
}

// MakeContains applies the Contains predicate on the "make" field.
func MakeContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldMake, v))
}

// MakeHasPrefix applies the HasPrefix predicate on the "make" field.
func MakeHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldMake, v))
}

// MakeHasSuffix applies the HasSuffix predicate on the "make" field.
func MakeHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldMake, v))
}

// MakeEqualFold applies the EqualFold predicate on the "make" field.
func MakeEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldMake, v))
}

// MakeContainsFold applies the ContainsFold predicate on the "make" field.
func MakeContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldMake, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldModel, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldYear, v))
}

// PriceCentsEQ applies the EQ predicate on the "price_cents" field.
func PriceCentsEQ(v int64) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldPriceCents, v))
}

// PriceCentsNEQ applies the NEQ predicate on the "price_cents" field.
func PriceCentsNEQ(v int64) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldPriceCents, v))
}

// PriceCentsIn applies the In predicate on the "price_cents" field.
func PriceCentsIn(vs ...int64) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldPriceCents, vs...))
}

// PriceCentsNotIn applies the NotIn predicate on the "price_cents" field.
func PriceCentsNotIn(vs ...int64) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldPriceCents, vs...))
}

// PriceCentsGT applies the GT predicate on the "price_cents" field.
func PriceCentsGT(v int64) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldPriceCents, v))
}

// PriceCentsGTE applies the GTE predicate on the "price_cents" field.
func PriceCentsGTE(v int64) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldPriceCents, v))
}

// PriceCentsLT applies the LT predicate on the "price_cents" field.
func PriceCentsLT(v int64) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldPriceCents, v))
}

// PriceCentsLTE applies the LTE predicate on the "price_cents" field.
func PriceCentsLTE(v int64) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldPriceCents, v))
}

// MileageEQ applies the EQ predicate on the "mileage" field.
func MileageEQ(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldMileage, v))
}

// MileageNEQ applies the NEQ predicate on the "mileage" field.
func MileageNEQ(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldMileage, v))
}

// MileageIn applies the In predicate on the "mileage" field.
func MileageIn(vs ...int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldMileage, vs...))
}

// MileageNotIn applies the NotIn predicate on the "mileage" field.
func MileageNotIn(vs ...int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldMileage, vs...))
}

// MileageGT applies the GT predicate on the "mileage" field.
func MileageGT(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldMileage, v))
}

// MileageGTE applies the GTE predicate on the "mileage" field.
func MileageGTE(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldMileage, v))
}

// MileageLT applies the LT predicate on the "mileage" field.
func MileageLT(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldMileage, v))
}

// MileageLTE applies the LTE predicate on the "mileage" field.
func MileageLTE(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldMileage, v))
}

// FuelTypeEQ applies the EQ predicate on the "fuel_type" field.
func FuelTypeEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldFuelType, v))
}

// FuelTypeNEQ applies the NEQ predicate on the "fuel_type" field.
func FuelTypeNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldFuelType, v))
}

// FuelTypeIn applies the In predicate on the "fuel_type" field.
func FuelTypeIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldFuelType, vs...))
}

// FuelTypeNotIn applies the NotIn predicate on the "fuel_type" field.
func FuelTypeNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldFuelType, vs...))
}

// FuelTypeGT applies the GT predicate on the "fuel_type" field.
func FuelTypeGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldFuelType, v))
}

// FuelTypeGTE applies the GTE predicate on the "fuel_type" field.
func FuelTypeGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldFuelType, v))
}

// FuelTypeLT applies the LT predicate on the "fuel_type" field.
func FuelTypeLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldFuelType, v))
}

// FuelTypeLTE applies the LTE predicate on the "fuel_type" field.
func FuelTypeLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldFuelType, v))
}

// FuelTypeContains applies the Contains predicate on the "fuel_type" field.
func FuelTypeContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldFuelType, v))
}

// FuelTypeHasPrefix applies the HasPrefix predicate on the "fuel_type" field.
func FuelTypeHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldFuelType, v))
}

// FuelTypeHasSuffix applies the HasSuffix predicate on the "fuel_type" field.
func FuelTypeHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldFuelType, v))
}

// FuelTypeIsNil applies the IsNil predicate on the "fuel_type" field.
func FuelTypeIsNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIsNull(FieldFuelType))
}

// FuelTypeNotNil applies the NotNil predicate on the "fuel_type" field.
func FuelTypeNotNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotNull(FieldFuelType))
}

// FuelTypeEqualFold applies the EqualFold predicate on the "fuel_type" field.
func FuelTypeEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldFuelType, v))
}

// FuelTypeContainsFold applies the ContainsFold predicate on the "fuel_type" field.
func FuelTypeContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldFuelType, v))
}

// TransmissionEQ applies the EQ predicate on the "transmission" field.
func TransmissionEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldTransmission, v))
}

// TransmissionNEQ applies the NEQ predicate on the "transmission" field.
func TransmissionNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldTransmission, v))
}

// TransmissionIn applies the In predicate on the "transmission" field.
func TransmissionIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldTransmission, vs...))
}

// TransmissionNotIn applies the NotIn predicate on the "transmission" field.
func TransmissionNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldTransmission, vs...))
}

// TransmissionGT applies the GT predicate on the "transmission" field.
func TransmissionGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldTransmission, v))
}

// TransmissionGTE applies the GTE predicate on the "transmission" field.
func TransmissionGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldTransmission, v))
}

// TransmissionLT applies the LT predicate on the "transmission" field.
func TransmissionLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldTransmission, v))
}

// TransmissionLTE applies the LTE predicate on the "transmission" field.
func TransmissionLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldTransmission, v))
}

// TransmissionContains applies the Contains predicate on the "transmission" field.
func TransmissionContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldTransmission, v))
}

// TransmissionHasPrefix applies the HasPrefix predicate on the "transmission" field.
func TransmissionHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldTransmission, v))
}

// TransmissionHasSuffix applies the HasSuffix predicate on the "transmission" field.
func TransmissionHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldTransmission, v))
}

// TransmissionIsNil applies the IsNil predicate on the "transmission" field.
func TransmissionIsNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIsNull(FieldTransmission))
}

// TransmissionNotNil applies the NotNil predicate on the "transmission" field.
func TransmissionNotNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotNull(FieldTransmission))
}

// TransmissionEqualFold applies the EqualFold predicate on the "transmission" field.
func TransmissionEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldTransmission, v))
}

// TransmissionContainsFold applies the ContainsFold predicate on the "transmission" field.
func TransmissionContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldTransmission, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldStatus, v))
}

// FeaturedEQ applies the EQ predicate on the "featured" field.
func FeaturedEQ(v bool) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldFeatured, v))
}

// FeaturedNEQ applies the NEQ predicate on the "featured" field.
func FeaturedNEQ(v bool) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldFeatured, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldDescription, v))
}

// DescriptionHTMLEQ applies the EQ predicate on the "description_html" field.
func DescriptionHTMLEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldDescriptionHTML, v))
}

// DescriptionHTMLNEQ applies the NEQ predicate on the "description_html" field.
func DescriptionHTMLNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldDescriptionHTML, v))
}

// DescriptionHTMLIn applies the In predicate on the "description_html" field.
func DescriptionHTMLIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldDescriptionHTML, vs...))
}

// DescriptionHTMLNotIn applies the NotIn predicate on the "description_html" field.
func DescriptionHTMLNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldDescriptionHTML, vs...))
}

// DescriptionHTMLGT applies the GT predicate on the "description_html" field.
func DescriptionHTMLGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldDescriptionHTML, v))
}

// DescriptionHTMLGTE applies the GTE predicate on the "description_html" field.
func DescriptionHTMLGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldDescriptionHTML, v))
}

// DescriptionHTMLLT applies the LT predicate on the "description_html" field.
func DescriptionHTMLLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldDescriptionHTML, v))
}

// DescriptionHTMLLTE applies the LTE predicate on the "description_html" field.
func DescriptionHTMLLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldDescriptionHTML, v))
}

// DescriptionHTMLContains applies the Contains predicate on the "description_html" field.
func DescriptionHTMLContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldDescriptionHTML, v))
}

// DescriptionHTMLHasPrefix applies the HasPrefix predicate on the "description_html" field.
func DescriptionHTMLHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldDescriptionHTML, v))
}

// DescriptionHTMLHasSuffix applies the HasSuffix predicate on the "description_html" field.
func DescriptionHTMLHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldDescriptionHTML, v))
}

// DescriptionHTMLIsNil applies the IsNil predicate on the "description_html" field.
func DescriptionHTMLIsNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIsNull(FieldDescriptionHTML))
}

// DescriptionHTMLNotNil applies the NotNil predicate on the "description_html" field.
func DescriptionHTMLNotNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotNull(FieldDescriptionHTML))
}

// DescriptionHTMLEqualFold applies the EqualFold predicate on the "description_html" field.
func DescriptionHTMLEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldDescriptionHTML, v))
}

// DescriptionHTMLContainsFold applies the ContainsFold predicate on the "description_html" field.
func DescriptionHTMLContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldDescriptionHTML, v))
}

// CoverMediaIDEQ applies the EQ predicate on the "cover_media_id" field.
func CoverMediaIDEQ(v uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCoverMediaID, v))
}

// CoverMediaIDNEQ applies the NEQ predicate on the "cover_media_id" field.
func CoverMediaIDNEQ(v uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldCoverMediaID, v))
}

// CoverMediaIDIn applies the In predicate on the "cover_media_id" field.
func CoverMediaIDIn(vs ...uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldCoverMediaID, vs...))
}

// CoverMediaIDNotIn applies the NotIn predicate on the "cover_media_id" field.
func CoverMediaIDNotIn(vs ...uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldCoverMediaID, vs...))
}

// CoverMediaIDGT applies the GT predicate on the "cover_media_id" field.
func CoverMediaIDGT(v uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldCoverMediaID, v))
}

// CoverMediaIDGTE applies the GTE predicate on the "cover_media_id" field.
func CoverMediaIDGTE(v uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldCoverMediaID, v))
}

// CoverMediaIDLT applies the LT predicate on the "cover_media_id" field.
func CoverMediaIDLT(v uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldCoverMediaID, v))
}

// CoverMediaIDLTE applies the LTE predicate on the "cover_media_id" field.
func CoverMediaIDLTE(v uint) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldCoverMediaID, v))
}

// CoverMediaIDIsNil applies the IsNil predicate on the "cover_media_id" field.
func CoverMediaIDIsNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIsNull(FieldCoverMediaID))
}

// CoverMediaIDNotNil applies the NotNil predicate on the "cover_media_id" field.
func CoverMediaIDNotNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotNull(FieldCoverMediaID))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Vehicle) predicate.Vehicle {
	return predicate.Vehicle(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Vehicle) predicate.Vehicle {
	return predicate.Vehicle(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Vehicle) predicate.Vehicle {
	return predicate.Vehicle(sql.NotPredicates(p))
}
