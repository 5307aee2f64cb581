package sample

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	domsample "github.com/stackframe/bentographer/internal/domain/sample"
)

// pointRow is one row of db.SamplesQuery. SQLite columns are dynamically
// typed, so both values are scanned untyped and converted afterwards.
type pointRow struct {
	X any `db:"x"`
	Y any `db:"y"`
}

// numericPrefix matches the leading number SQLite reads from text.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// toFloat converts a SQLite value the way a numeric column read would:
// numbers as-is, the numeric prefix of text parsed, anything else 0.
// Non-finite results are 0.
func toFloat(v any) float64 {
	switch val := v.(type) {
	case nil:
		return 0
	case int64:
		return float64(val)
	case float64:
		return finite(val)
	case bool:
		if val {
			return 1
		}
		return 0
	case []byte:
		return parseFloat(string(val))
	case string:
		return parseFloat(val)
	case time.Time:
		return domsample.FromTime(val)
	default:
		return 0
	}
}

func parseFloat(s string) float64 {
	m := numericPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
