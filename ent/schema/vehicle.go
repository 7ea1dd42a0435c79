package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Vehicle holds the schema definition for the Vehicle entity.
type Vehicle struct {
	ent.Schema
}

// Annotations of the Vehicle.
func (Vehicle) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("车辆表，后台管理的在售车辆信息"),
	}
}

// Fields of the Vehicle.
func (Vehicle) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("make").
			MaxLen(100).
			Comment("品牌"),
		field.String("model").
			MaxLen(100).
			Comment("型号"),
		field.Int("year"),
		field.Int64("price_cents").
			Default(0).
			Comment("价格（分）"),
		field.Int("mileage").
			Default(0).
			Comment("里程（公里）"),
		field.String("fuel_type").
			MaxLen(50).
			Optional(),
		field.String("transmission").
			MaxLen(50).
			Optional(),
		field.String("status").
			MaxLen(20).
			Default("draft").
			Comment("draft / published / reserved / sold"),
		field.Bool("featured").
			Default(false),
		field.Text("description").
			Optional().
			Comment("Markdown 原文"),
		field.Text("description_html").
			Optional().
			Comment("渲染并消毒后的 HTML"),
		field.Uint("cover_media_id").
			Optional().
			Nillable().
			Comment("封面图的媒体资产ID"),
	}
}

// Indexes of the Vehicle.
func (Vehicle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("make", "model"),
	}
}
