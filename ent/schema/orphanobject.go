package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrphanObject holds the schema definition for the OrphanObject entity.
type OrphanObject struct {
	ent.Schema
}

// Annotations of the OrphanObject.
func (OrphanObject) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("远端删除失败的对象键登记表，由清理任务消费"),
	}
}

// Fields of the OrphanObject.
func (OrphanObject) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("storage_key").
			MaxLen(512).
			Unique(),
		field.Int("attempts").
			Default(0),
		field.Text("last_error").
			Optional(),
	}
}

// Indexes of the OrphanObject.
func (OrphanObject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
