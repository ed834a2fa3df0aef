// Package duration parses loosely formatted loan periods such as
// "14 days", "1d2h3m4s" or "2 hours, 30 min".
package duration

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/Astemirdum/libranet/library/internal/errs"
)

const Day = 24 * time.Hour

// Longest spelling first within a class. Only the leading letter of a unit
// word decides its class, so the order never changes the result.
var unitWords = []string{
	"days", "day", "d",
	"hours", "hour", "hrs", "hr", "h",
	"minutes", "minute", "mins", "min", "m",
	"seconds", "second", "secs", "sec", "s",
}

var token = regexp.MustCompile(`(\d+)\s*(` + foldASCII(unitWords) + `)`)

// foldASCII builds a case-insensitive alternation that only folds ASCII
// letters. (?i) would also fold letters such as U+017F into "s".
func foldASCII(words []string) string {
	alts := make([]string, 0, len(words))
	for _, w := range words {
		var b strings.Builder
		for _, r := range w {
			b.WriteString("[" + string(r) + strings.ToUpper(string(r)) + "]")
		}
		alts = append(alts, b.String())
	}
	return strings.Join(alts, "|")
}

var units = map[string]time.Duration{
	"d":       Day,
	"day":     Day,
	"days":    Day,
	"h":       time.Hour,
	"hr":      time.Hour,
	"hrs":     time.Hour,
	"hour":    time.Hour,
	"hours":   time.Hour,
	"m":       time.Minute,
	"min":     time.Minute,
	"mins":    time.Minute,
	"minute":  time.Minute,
	"minutes": time.Minute,
	"s":       time.Second,
	"sec":     time.Second,
	"secs":    time.Second,
	"second":  time.Second,
	"seconds": time.Second,
}

// Parse sums every "<number><unit>" token found in text. Repeated units add
// up and any characters between tokens are ignored. Totals beyond the range
// of time.Duration (about 292 years) fail with errs.ErrInvalidDuration.
func Parse(text string) (time.Duration, error) {
	if strings.TrimSpace(text) == "" {
		return 0, errors.Wrap(errs.ErrInvalidDuration, "empty duration")
	}

	matches := token.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, errors.Wrapf(errs.ErrInvalidDuration, "could not parse duration %q", text)
	}

	var total time.Duration
	for _, m := range matches {
		unit, ok := units[strings.ToLower(m[2])]
		if !ok {
			return 0, errors.Wrapf(errs.ErrInvalidDuration, "unknown duration unit %q", m[2])
		}
		value, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, errors.Wrapf(errs.ErrInvalidDuration, "number %q out of range", m[1])
		}
		if value > int64(math.MaxInt64/unit) {
			return 0, errors.Wrapf(errs.ErrInvalidDuration, "%s%s out of range", m[1], m[2])
		}
		part := time.Duration(value) * unit
		if total > math.MaxInt64-part {
			return 0, errors.Wrapf(errs.ErrInvalidDuration, "duration %q out of range", text)
		}
		total += part
	}

	return total, nil
}

func MustParse(text string) time.Duration {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}
