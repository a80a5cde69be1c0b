package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveRange_Count(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		spec      string
		wantCount int
	}{
		{"正常条数", "500", 500},
		{"超过上限被钳制", "10001", 10000},
		{"零条退化为默认", "0", 100},
		{"溢出退化为默认", "99999999999999999999", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRange(tt.spec, now)
			assert.True(t, got.IsCount())
			assert.Equal(t, tt.wantCount, got.Count)
			assert.True(t, got.Since.IsZero())
		})
	}
}

func TestResolveRange_Timeframe(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		spec      string
		wantHours int
	}{
		{"小时简写", "24h", 24},
		{"小时全称", "2 hours", 2},
		{"单数小时", "1 hour", 1},
		{"小时超上限被钳制", "300h", 168},
		{"天简写", "3d", 72},
		{"天全称", "3 days", 72},
		{"天超上限被钳制", "9d", 168},
		{"裸day", "day", 24},
		{"裸week", "week", 168},
		{"多周被钳制", "2 weeks", 168},
		{"大小写不敏感", "DAY", 24},
		{"多余空白被归一", "2   hours", 2},
		{"无法识别退化为1小时", "garbage", 1},
		{"空串退化为1小时", "", 1},
		{"零小时退化为1小时", "0h", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRange(tt.spec, now)
			assert.False(t, got.IsCount())
			assert.Equal(t, tt.wantHours, got.Hours)
			assert.Equal(t, now.Add(-time.Duration(tt.wantHours)*time.Hour), got.Since)
		})
	}
}

func TestParseTimeframeHours_BareInteger(t *testing.T) {
	// 裸数字走 ResolveRange 会按条数处理，parseTimeframeHours 自身按小时兜底
	assert.Equal(t, 72, parseTimeframeHours("72"))
	assert.Equal(t, 168, parseTimeframeHours("500"))
}

func TestResolvedRange_Label(t *testing.T) {
	assert.Equal(t, "最近500条", ResolvedRange{Count: 500}.Label())
	assert.Equal(t, "最近5小时", ResolvedRange{Hours: 5}.Label())
	assert.Equal(t, "最近1天", ResolvedRange{Hours: 24}.Label())
	assert.Equal(t, "最近7天", ResolvedRange{Hours: 168}.Label())
}
