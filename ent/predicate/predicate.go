// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityLog is the predicate function for activitylog builders.
type ActivityLog func(*sql.Selector)

// MediaAsset is the predicate function for mediaasset builders.
type MediaAsset func(*sql.Selector)

// OrphanObject is the predicate function for orphanobject builders.
type OrphanObject func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Vehicle is the predicate function for vehicle builders.
type Vehicle func(*sql.Selector)
