// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/behark/autoanikw-sub000/ent/mediaasset"
)

// 媒体资产表，记录已上传到远端对象存储的文件元数据
type MediaAsset struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// 远端对象存储返回的对象键，删除时使用
	StorageKey string `json:"storage_key,omitempty"`
	// 上传时的原始文件名
	OriginalName string `json:"original_name,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType string `json:"mime_type,omitempty"`
	// 实际入库对象的字节数
	Size int64 `json:"size,omitempty"`
	// 主访问URL
	URL string `json:"url,omitempty"`
	// 衍生图列表的JSON数组
	Renditions *string `json:"renditions,omitempty"`
	// AltText holds the value of the "alt_text" field.
	AltText string `json:"alt_text,omitempty"`
	// Caption holds the value of the "caption" field.
	Caption string `json:"caption,omitempty"`
	// 标签的JSON数组，保留录入顺序
	Tags *string `json:"tags,omitempty"`
	// 固定枚举分类，用于远端目录划分和筛选
	Category string `json:"category,omitempty"`
	// 上传者用户ID
	UploadedBy uint `json:"uploaded_by,omitempty"`
	// 关联的车辆ID
	VehicleID *uint `json:"vehicle_id,omitempty"`
	// 图片宽度，非图片为0
	Width int `json:"width,omitempty"`
	// 图片高度，非图片为0
	Height int `json:"height,omitempty"`
	// 编码格式，如 jpeg
	Format string `json:"format,omitempty"`
	// 主色调，如 #aabbcc
	DominantColor string `json:"dominant_color,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MediaAsset) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mediaasset.FieldID, mediaasset.FieldSize, mediaasset.FieldUploadedBy, mediaasset.FieldVehicleID, mediaasset.FieldWidth, mediaasset.FieldHeight:
			values[i] = new(sql.NullInt64)
		case mediaasset.FieldStorageKey, mediaasset.FieldOriginalName, mediaasset.FieldMimeType, mediaasset.FieldURL, mediaasset.FieldRenditions, mediaasset.FieldAltText, mediaasset.FieldCaption, mediaasset.FieldTags, mediaasset.FieldCategory, mediaasset.FieldFormat, mediaasset.FieldDominantColor:
			values[i] = new(sql.NullString)
		case mediaasset.FieldCreatedAt, mediaasset.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MediaAsset fields.
func (ma *MediaAsset) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mediaasset.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ma.ID = uint(value.Int64)
		case mediaasset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ma.CreatedAt = value.Time
			}
		case mediaasset.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ma.UpdatedAt = value.Time
			}
		case mediaasset.FieldStorageKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_key", values[i])
			} else if value.Valid {
				ma.StorageKey = value.String
			}
		case mediaasset.FieldOriginalName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_name", values[i])
			} else if value.Valid {
				ma.OriginalName = value.String
			}
		case mediaasset.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				ma.MimeType = value.String
			}
		case mediaasset.FieldSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				ma.Size = value.Int64
			}
		case mediaasset.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				ma.URL = value.String
			}
		case mediaasset.FieldRenditions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field renditions", values[i])
			} else if value.Valid {
				ma.Renditions = new(string)
				*ma.Renditions = value.String
			}
		case mediaasset.FieldAltText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alt_text", values[i])
			} else if value.Valid {
				ma.AltText = value.String
			}
		case mediaasset.FieldCaption:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field caption", values[i])
			} else if value.Valid {
				ma.Caption = value.String
			}
		case mediaasset.FieldTags:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value.Valid {
				ma.Tags = new(string)
				*ma.Tags = value.String
			}
		case mediaasset.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				ma.Category = value.String
			}
		case mediaasset.FieldUploadedBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_by", values[i])
			} else if value.Valid {
				ma.UploadedBy = uint(value.Int64)
			}
		case mediaasset.FieldVehicleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_id", values[i])
			} else if value.Valid {
				ma.VehicleID = new(uint)
				*ma.VehicleID = uint(value.Int64)
			}
		case mediaasset.FieldWidth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field width", values[i])
			} else if value.Valid {
				ma.Width = int(value.Int64)
			}
		case mediaasset.FieldHeight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field height", values[i])
			} else if value.Valid {
				ma.Height = int(value.Int64)
			}
		case mediaasset.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				ma.Format = value.String
			}
		case mediaasset.FieldDominantColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dominant_color", values[i])
			} else if value.Valid {
				ma.DominantColor = value.String
			}
		default:
			ma.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MediaAsset.
// This includes values selected through modifiers, order, etc.
func (ma *MediaAsset) Value(name string) (ent.Value, error) {
	return ma.selectValues.Get(name)
}

// Update returns a builder for updating this MediaAsset.
// Note that you need to call MediaAsset.Unwrap() before calling this method if this MediaAsset
// was returned from a transaction, and the transaction was committed or rolled back.
func (ma *MediaAsset) Update() *MediaAssetUpdateOne {
	return NewMediaAssetClient(ma.config).UpdateOne(ma)
}

// Unwrap unwraps the MediaAsset entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ma *MediaAsset) Unwrap() *MediaAsset {
	_tx, ok := ma.config.driver.(*txDriver)
	if !ok {
		panic("ent: MediaAsset is not a transactional entity")
	}
	ma.config.driver = _tx.drv
	return ma
}

// String implements the fmt.Stringer.
func (ma *MediaAsset) String() string {
	var builder strings.Builder
	builder.WriteString("MediaAsset(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ma.ID))
	builder.WriteString("created_at=")
	builder.WriteString(ma.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ma.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("storage_key=")
	builder.WriteString(ma.StorageKey)
	builder.WriteString(", ")
	builder.WriteString("original_name=")
	builder.WriteString(ma.OriginalName)
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(ma.MimeType)
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(fmt.Sprintf("%v", ma.Size))
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(ma.URL)
	builder.WriteString(", ")
	if v := ma.Renditions; v != nil {
		builder.WriteString("renditions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("alt_text=")
	builder.WriteString(ma.AltText)
	builder.WriteString(", ")
	builder.WriteString("caption=")
	builder.WriteString(ma.Caption)
	builder.WriteString(", ")
	if v := ma.Tags; v != nil {
		builder.WriteString("tags=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(ma.Category)
	builder.WriteString(", ")
	builder.WriteString("uploaded_by=")
	builder.WriteString(fmt.Sprintf("%v", ma.UploadedBy))
	builder.WriteString(", ")
	if v := ma.VehicleID; v != nil {
		builder.WriteString("vehicle_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("width=")
	builder.WriteString(fmt.Sprintf("%v", ma.Width))
	builder.WriteString(", ")
	builder.WriteString("height=")
	builder.WriteString(fmt.Sprintf("%v", ma.Height))
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(ma.Format)
	builder.WriteString(", ")
	builder.WriteString("dominant_color=")
	builder.WriteString(ma.DominantColor)
	builder.WriteByte(')')
	return builder.String()
}

// MediaAssets is a parsable slice of MediaAsset.
type MediaAssets []*MediaAsset
