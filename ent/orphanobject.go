// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/behark/autoanikw-sub000/ent/orphanobject"
)

// 远端删除失败的对象键登记表，由清理任务消费
type OrphanObject struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StorageKey holds the value of the "storage_key" field.
	StorageKey string `json:"storage_key,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError    string `json:"last_error,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OrphanObject) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case orphanobject.FieldID, orphanobject.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case orphanobject.FieldStorageKey, orphanobject.FieldLastError:
			values[i] = new(sql.NullString)
		case orphanobject.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OrphanObject fields.
func (oo *OrphanObject) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case orphanobject.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			oo.ID = uint(value.Int64)
		case orphanobject.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				oo.CreatedAt = value.Time
			}
		case orphanobject.FieldStorageKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_key", values[i])
			} else if value.Valid {
				oo.StorageKey = value.String
			}
		case orphanobject.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				oo.Attempts = int(value.Int64)
			}
		case orphanobject.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				oo.LastError = value.String
			}
		default:
			oo.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OrphanObject.
// This includes values selected through modifiers, order, etc.
func (oo *OrphanObject) Value(name string) (ent.Value, error) {
	return oo.selectValues.Get(name)
}

// Update returns a builder for updating this OrphanObject.
// Note that you need to call OrphanObject.Unwrap() before calling this method if this OrphanObject
// was returned from a transaction, and the transaction was committed or rolled back.
func (oo *OrphanObject) Update() *OrphanObjectUpdateOne {
	return NewOrphanObjectClient(oo.config).UpdateOne(oo)
}

// Unwrap unwraps the OrphanObject entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (oo *OrphanObject) Unwrap() *OrphanObject {
	_tx, ok := oo.config.driver.(*txDriver)
	if !ok {
		panic("ent: OrphanObject is not a transactional entity")
	}
	oo.config.driver = _tx.drv
	return oo
}

// String implements the fmt.Stringer.
func (oo *OrphanObject) String() string {
	var builder strings.Builder
	builder.WriteString("OrphanObject(")
	builder.WriteString(fmt.Sprintf("id=%v, ", oo.ID))
	builder.WriteString("created_at=")
	builder.WriteString(oo.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("storage_key=")
	builder.WriteString(oo.StorageKey)
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", oo.Attempts))
	builder.WriteString(", ")
	builder.WriteString("last_error=")
	builder.WriteString(oo.LastError)
	builder.WriteByte(')')
	return builder.String()
}

// OrphanObjects is a parsable slice of OrphanObject.
type OrphanObjects []*OrphanObject
