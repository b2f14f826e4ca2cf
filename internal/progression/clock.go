package progression

import (
	"math"
	"time"
)

// Clock は「今」と「今日」を返します。テストでは固定値を差し込む
type Clock interface {
	Now() time.Time
	Today() time.Time
}

// SystemClock は指定タイムゾーンの現在時刻を返す Clock
type SystemClock struct {
	Location *time.Location
}

func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return SystemClock{Location: loc}
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.Location)
}

func (c SystemClock) Today() time.Time {
	return DateOf(c.Now())
}

// FixedClock は常に同じ時刻を返す Clock
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.T
}

func (c *FixedClock) Today() time.Time {
	return DateOf(c.T)
}

// Advance は時刻を days 日進めます。
func (c *FixedClock) Advance(days int) {
	c.T = c.T.AddDate(0, 0, days)
}

// DateOf は t の暦日を UTC の 0 時として返します。t 自身のタイムゾーンで日付を決める
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween は from から to までの暦日数を返します (to が前なら負)。
func DaysBetween(from, to time.Time) int {
	return int(math.Round(DateOf(to).Sub(DateOf(from)).Hours() / 24))
}
