package views

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// DateLayout is used for every date column.
const DateLayout = "2006-01-02"

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count with two-decimal precision and
// trailing zeros trimmed: 0 -> "0 Bytes", 1536 -> "1.5 KB".
// Sizes of 1 TiB and above stay in GB.
func FormatFileSize(b int64) string {
	if b <= 0 {
		return "0 Bytes"
	}

	const k = 1024.0
	i := int(math.Floor(math.Log(float64(b)) / math.Log(k)))
	i = max(0, min(i, len(sizeUnits)-1))

	// половина округляется вверх: 1.125 -> 1.13, а не к четному
	v := float64(b) / math.Pow(k, float64(i))
	rounded := math.Floor(v*100+0.5) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[i]
}

// FormatDate renders t as a local calendar date.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(DateLayout)
}

// FormatAge renders how long ago t was, relative to now.
func FormatAge(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// FormatCount renders n with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
