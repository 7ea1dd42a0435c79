package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MediaAsset holds the schema definition for the MediaAsset entity.
type MediaAsset struct {
	ent.Schema
}

// Annotations of the MediaAsset.
func (MediaAsset) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("媒体资产表，记录已上传到远端对象存储的文件元数据"),
	}
}

// Fields of the MediaAsset.
func (MediaAsset) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("storage_key").
			MaxLen(512).
			Comment("远端对象存储返回的对象键，删除时使用"),
		field.String("original_name").
			MaxLen(255).
			Comment("上传时的原始文件名"),
		field.String("mime_type").
			MaxLen(127),
		field.Int64("size").
			Default(0).
			Comment("实际入库对象的字节数"),
		field.Text("url").
			Comment("主访问URL"),
		field.Text("renditions").
			Optional().
			Nillable().
			SchemaType(map[string]string{
				dialect.MySQL:    "json",
				dialect.Postgres: "jsonb",
				dialect.SQLite:   "text",
			}).
			Comment("衍生图列表的JSON数组"),
		field.String("alt_text").
			MaxLen(512).
			Optional(),
		field.Text("caption").
			Optional(),
		field.Text("tags").
			Optional().
			Nillable().
			SchemaType(map[string]string{
				dialect.MySQL:    "json",
				dialect.Postgres: "jsonb",
				dialect.SQLite:   "text",
			}).
			Comment("标签的JSON数组，保留录入顺序"),
		field.String("category").
			MaxLen(50).
			Comment("固定枚举分类，用于远端目录划分和筛选"),
		field.Uint("uploaded_by").
			Comment("上传者用户ID"),
		field.Uint("vehicle_id").
			Optional().
			Nillable().
			Comment("关联的车辆ID"),
		field.Int("width").
			Default(0).
			Comment("图片宽度，非图片为0"),
		field.Int("height").
			Default(0).
			Comment("图片高度，非图片为0"),
		field.String("format").
			MaxLen(20).
			Optional().
			Comment("编码格式，如 jpeg"),
		field.String("dominant_color").
			MaxLen(7).
			Optional().
			Comment("主色调，如 #aabbcc"),
	}
}

// Indexes of the MediaAsset.
func (MediaAsset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category", "created_at"),
		index.Fields("uploaded_by", "created_at"),
		index.Fields("vehicle_id"),
		index.Fields("original_name"),
	}
}
