package command

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	defaultMessageCount = 100
	maxMessageCount     = 10000
	maxRangeHours       = 168
	maxRangeDays        = 7
	maxRangeWeeks       = 1
	defaultRangeHours   = 1
)

// ResolvedRange 解析后的总结范围，Count > 0 表示按条数，否则按起始时间
type ResolvedRange struct {
	Count int
	Hours int
	Since time.Time
}

// IsCount 是否为按条数模式
func (r ResolvedRange) IsCount() bool {
	return r.Count > 0
}

// Label 范围的展示文本
func (r ResolvedRange) Label() string {
	if r.Count > 0 {
		return fmt.Sprintf("最近%d条", r.Count)
	}
	if r.Hours >= 24 && r.Hours%24 == 0 {
		return fmt.Sprintf("最近%d天", r.Hours/24)
	}
	return fmt.Sprintf("最近%d小时", r.Hours)
}

var (
	digitsOnly = regexp.MustCompile(`^\d+$`)
	hourSpec   = regexp.MustCompile(`^(\d+)\s*(h|hours?)$`)
	daySpec    = regexp.MustCompile(`^(\d+)\s*(d|days?)$`)
	weekSpec   = regexp.MustCompile(`^(\d+)\s*weeks?$`)
)

// ResolveRange 把范围描述解析为条数或时间范围。任何无法识别的写法都退化为
// 最小安全范围而不是报错：非法条数退化为 100 条，非法时间退化为 1 小时。
func ResolveRange(spec string, now time.Time) ResolvedRange {
	s := strings.TrimSpace(spec)
	if digitsOnly.MatchString(s) {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			n = defaultMessageCount
		}
		if n > maxMessageCount {
			n = maxMessageCount
		}
		return ResolvedRange{Count: n}
	}

	hours := parseTimeframeHours(s)
	return ResolvedRange{
		Hours: hours,
		Since: now.Add(-time.Duration(hours) * time.Hour),
	}
}

// parseTimeframeHours 解析时间范围写法，返回小时数。
// 支持 "2h"、"2 hours"、"3d"、"3 days"、"day"、"week"、"2 weeks" 和裸数字（按小时），
// 大小写不敏感。上限：小时 168、天 7、周 1。无法识别时返回 1 小时。
func parseTimeframeHours(spec string) int {
	s := strings.ToLower(strings.TrimSpace(spec))
	s = strings.Join(strings.Fields(s), " ")

	switch s {
	case "day":
		return 24
	case "week":
		return maxRangeHours
	}

	if m := hourSpec.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			return defaultRangeHours
		}
		if n > maxRangeHours {
			n = maxRangeHours
		}
		return n
	}

	if m := daySpec.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			return defaultRangeHours
		}
		if n > maxRangeDays {
			n = maxRangeDays
		}
		return n * 24
	}

	if m := weekSpec.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			return defaultRangeHours
		}
		if n > maxRangeWeeks {
			n = maxRangeWeeks
		}
		return n * 24 * 7
	}

	if digitsOnly.MatchString(s) {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return defaultRangeHours
		}
		if n > maxRangeHours {
			n = maxRangeHours
		}
		return n
	}

	return defaultRangeHours
}
