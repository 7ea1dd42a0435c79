package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityLog holds the schema definition for the ActivityLog entity.
type ActivityLog struct {
	ent.Schema
}

// Annotations of the ActivityLog.
func (ActivityLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("操作日志表，只增不改"),
	}
}

// Fields of the ActivityLog.
func (ActivityLog) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Uint("user_id").
			Default(0).
			Comment("操作者用户ID，0 表示系统"),
		field.String("action").
			MaxLen(100).
			Comment("动作，如 media.upload"),
		field.String("entity_type").
			MaxLen(50),
		field.Uint("entity_id").
			Default(0),
		field.Text("detail").
			Optional(),
	}
}

// Indexes of the ActivityLog.
func (ActivityLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("action"),
	}
}
