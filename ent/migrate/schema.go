// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityLogsColumns holds the columns for the "activity_logs" table.
	ActivityLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUint, Comment: "操作者用户ID，0 表示系统", Default: 0},
		{Name: "action", Type: field.TypeString, Size: 100, Comment: "动作，如 media.upload"},
		{Name: "entity_type", Type: field.TypeString, Size: 50},
		{Name: "entity_id", Type: field.TypeUint, Default: 0},
		{Name: "detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// ActivityLogsTable holds the schema information for the "activity_logs" table.
	ActivityLogsTable = &schema.Table{
		Name:       "activity_logs",
		Comment:    "操作日志表，只增不改",
		Columns:    ActivityLogsColumns,
		PrimaryKey: []*schema.Column{ActivityLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activitylog_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[1]},
			},
			{
				Name:    "activitylog_action",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[3]},
			},
		},
	}
	// MediaAssetsColumns holds the columns for the "media_assets" table.
	MediaAssetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "storage_key", Type: field.TypeString, Size: 512, Comment: "远端对象存储返回的对象键，删除时使用"},
		{Name: "original_name", Type: field.TypeString, Size: 255, Comment: "上传时的原始文件名"},
		{Name: "mime_type", Type: field.TypeString, Size: 127},
		{Name: "size", Type: field.TypeInt64, Comment: "实际入库对象的字节数", Default: 0},
		{Name: "url", Type: field.TypeString, Size: 2147483647, Comment: "主访问URL"},
		{Name: "renditions", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "衍生图列表的JSON数组", SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb", "sqlite3": "text"}},
		{Name: "alt_text", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "caption", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tags", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "标签的JSON数组，保留录入顺序", SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb", "sqlite3": "text"}},
		{Name: "category", Type: field.TypeString, Size: 50, Comment: "固定枚举分类，用于远端目录划分和筛选"},
		{Name: "uploaded_by", Type: field.TypeUint, Comment: "上传者用户ID"},
		{Name: "vehicle_id", Type: field.TypeUint, Nullable: true, Comment: "关联的车辆ID"},
		{Name: "width", Type: field.TypeInt, Comment: "图片宽度，非图片为0", Default: 0},
		{Name: "height", Type: field.TypeInt, Comment: "图片高度，非图片为0", Default: 0},
		{Name: "format", Type: field.TypeString, Nullable: true, Size: 20, Comment: "编码格式，如 jpeg"},
		{Name: "dominant_color", Type: field.TypeString, Nullable: true, Size: 7, Comment: "主色调，如 #aabbcc"},
	}
	// MediaAssetsTable holds the schema information for the "media_assets" table.
	MediaAssetsTable = &schema.Table{
		Name:       "media_assets",
		Comment:    "媒体资产表，记录已上传到远端对象存储的文件元数据",
		Columns:    MediaAssetsColumns,
		PrimaryKey: []*schema.Column{MediaAssetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mediaasset_category_created_at",
				Unique:  false,
				Columns: []*schema.Column{MediaAssetsColumns[12], MediaAssetsColumns[1]},
			},
			{
				Name:    "mediaasset_uploaded_by_created_at",
				Unique:  false,
				Columns: []*schema.Column{MediaAssetsColumns[13], MediaAssetsColumns[1]},
			},
			{
				Name:    "mediaasset_vehicle_id",
				Unique:  false,
				Columns: []*schema.Column{MediaAssetsColumns[14]},
			},
			{
				Name:    "mediaasset_original_name",
				Unique:  false,
				Columns: []*schema.Column{MediaAssetsColumns[4]},
			},
		},
	}
	// OrphanObjectsColumns holds the columns for the "orphan_objects" table.
	OrphanObjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "storage_key", Type: field.TypeString, Unique: true, Size: 512},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// OrphanObjectsTable holds the schema information for the "orphan_objects" table.
	OrphanObjectsTable = &schema.Table{
		Name:       "orphan_objects",
		Comment:    "远端删除失败的对象键登记表，由清理任务消费",
		Columns:    OrphanObjectsColumns,
		PrimaryKey: []*schema.Column{OrphanObjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "orphanobject_created_at",
				Unique:  false,
				Columns: []*schema.Column{OrphanObjectsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "password_hash", Type: field.TypeString, Size: 255},
		{Name: "nickname", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "role", Type: field.TypeString, Size: 20, Comment: "admin / editor", Default: "editor"},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Comment:    "后台用户表",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// VehiclesColumns holds the columns for the "vehicles" table.
	VehiclesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "make", Type: field.TypeString, Size: 100, Comment: "品牌"},
		{Name: "model", Type: field.TypeString, Size: 100, Comment: "型号"},
		{Name: "year", Type: field.TypeInt},
		{Name: "price_cents", Type: field.TypeInt64, Comment: "价格（分）", Default: 0},
		{Name: "mileage", Type: field.TypeInt, Comment: "里程（公里）", Default: 0},
		{Name: "fuel_type", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "transmission", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "status", Type: field.TypeString, Size: 20, Comment: "draft / published / reserved / sold", Default: "draft"},
		{Name: "featured", Type: field.TypeBool, Default: false},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "Markdown 原文"},
		{Name: "description_html", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "渲染并消毒后的 HTML"},
		{Name: "cover_media_id", Type: field.TypeUint, Nullable: true, Comment: "封面图的媒体资产ID"},
	}
	// VehiclesTable holds the schema information for the "vehicles" table.
	VehiclesTable = &schema.Table{
		Name:       "vehicles",
		Comment:    "车辆表，后台管理的在售车辆信息",
		Columns:    VehiclesColumns,
		PrimaryKey: []*schema.Column{VehiclesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vehicle_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{VehiclesColumns[10], VehiclesColumns[1]},
			},
			{
				Name:    "vehicle_make_model",
				Unique:  false,
				Columns: []*schema.Column{VehiclesColumns[3], VehiclesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityLogsTable,
		MediaAssetsTable,
		OrphanObjectsTable,
		UsersTable,
		VehiclesTable,
	}
)

func init() {
}
