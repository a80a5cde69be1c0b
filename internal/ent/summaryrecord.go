// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/chat-tldr-bot/internal/ent/summaryrecord"
)

// SummaryRecord is the model entity for the SummaryRecord schema.
type SummaryRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 群聊ID
	ChatID int64 `json:"chat_id,omitempty"`
	// 发起总结的用户ID
	RequestedBy int64 `json:"requested_by,omitempty"`
	// 总结范围描述，如 500条 或 24小时
	RangeLabel string `json:"range_label,omitempty"`
	// 生成时使用的风格
	Style string `json:"style,omitempty"`
	// 参与总结的消息数量
	MessageCount int `json:"message_count,omitempty"`
	// 总结内容
	Content      string `json:"content,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SummaryRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case summaryrecord.FieldID, summaryrecord.FieldChatID, summaryrecord.FieldRequestedBy, summaryrecord.FieldMessageCount:
			values[i] = new(sql.NullInt64)
		case summaryrecord.FieldRangeLabel, summaryrecord.FieldStyle, summaryrecord.FieldContent:
			values[i] = new(sql.NullString)
		case summaryrecord.FieldCreateTime, summaryrecord.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SummaryRecord fields.
func (sr *SummaryRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case summaryrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			sr.ID = int(value.Int64)
		case summaryrecord.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				sr.CreateTime = value.Time
			}
		case summaryrecord.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				sr.UpdateTime = value.Time
			}
		case summaryrecord.FieldChatID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				sr.ChatID = value.Int64
			}
		case summaryrecord.FieldRequestedBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field requested_by", values[i])
			} else if value.Valid {
				sr.RequestedBy = value.Int64
			}
		case summaryrecord.FieldRangeLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field range_label", values[i])
			} else if value.Valid {
				sr.RangeLabel = value.String
			}
		case summaryrecord.FieldStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field style", values[i])
			} else if value.Valid {
				sr.Style = value.String
			}
		case summaryrecord.FieldMessageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field message_count", values[i])
			} else if value.Valid {
				sr.MessageCount = int(value.Int64)
			}
		case summaryrecord.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				sr.Content = value.String
			}
		default:
			sr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SummaryRecord.
// This includes values selected through modifiers, order, etc.
func (sr *SummaryRecord) Value(name string) (ent.Value, error) {
	return sr.selectValues.Get(name)
}

// Update returns a builder for updating this SummaryRecord.
// Note that you need to call SummaryRecord.Unwrap() before calling this method if this SummaryRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (sr *SummaryRecord) Update() *SummaryRecordUpdateOne {
	return NewSummaryRecordClient(sr.config).UpdateOne(sr)
}

// Unwrap unwraps the SummaryRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sr *SummaryRecord) Unwrap() *SummaryRecord {
	_tx, ok := sr.config.driver.(*txDriver)
	if !ok {
		panic("ent: SummaryRecord is not a transactional entity")
	}
	sr.config.driver = _tx.drv
	return sr
}

// String implements the fmt.Stringer.
func (sr *SummaryRecord) String() string {
	var builder strings.Builder
	builder.WriteString("SummaryRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sr.ID))
	builder.WriteString("create_time=")
	builder.WriteString(sr.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(sr.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("chat_id=")
	builder.WriteString(fmt.Sprintf("%v", sr.ChatID))
	builder.WriteString(", ")
	builder.WriteString("requested_by=")
	builder.WriteString(fmt.Sprintf("%v", sr.RequestedBy))
	builder.WriteString(", ")
	builder.WriteString("range_label=")
	builder.WriteString(sr.RangeLabel)
	builder.WriteString(", ")
	builder.WriteString("style=")
	builder.WriteString(sr.Style)
	builder.WriteString(", ")
	builder.WriteString("message_count=")
	builder.WriteString(fmt.Sprintf("%v", sr.MessageCount))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(sr.Content)
	builder.WriteByte(')')
	return builder.String()
}

// SummaryRecords is a parsable slice of SummaryRecord.
type SummaryRecords []*SummaryRecord
