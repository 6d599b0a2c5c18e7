package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
)

// Seconds converts a numeric amount of seconds to a duration.
func Seconds[T constraints.Integer | constraints.Float](amount T) time.Duration {
	return time.Duration(float64(amount) * float64(time.Second))
}

// ConvertDuration normalizes text or numbers into a duration. Plain numbers
// mean seconds. Text may be a number ("1.5"), a timer ("01:02:03.250",
// "-1:30"), a verbose time string ("1 day 2 hours 3.5 seconds", "90 ms"),
// or a compact Go duration ("1h30m").
func ConvertDuration(value any) (time.Duration, error) {
	switch v := value.(type) {
	case time.Duration:
		return v, nil
	case string:
		return parseDuration(strings.TrimSpace(v))
	case int:
		return Seconds(v), nil
	case int64:
		return Seconds(v), nil
	case float64:
		return Seconds(v), nil
	case float32:
		return Seconds(v), nil
	}
	return 0, fmt.Errorf("Cannot convert '%v' to a duration.", value)
}

func parseDuration(value string) (time.Duration, error) {
	if seconds, err := strconv.ParseFloat(value, 64); err == nil {
		return Seconds(seconds), nil
	}
	if d, ok := parseTimer(value); ok {
		return d, nil
	}
	if d, ok := parseTimeString(value); ok {
		return d, nil
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}
	return 0, fmt.Errorf("Invalid time string '%s'.", value)
}

// Timer format: [-][hh:]mm:ss[.fraction].
var timerPattern = regexp.MustCompile(`^([+-])?(?:(\d+):)?(\d+):(\d+)(?:[.,](\d{1,9}))?$`)

func parseTimer(value string) (time.Duration, bool) {
	groups := timerPattern.FindStringSubmatch(value)
	if groups == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(groups[2])
	minutes, _ := strconv.Atoi(groups[3])
	seconds, _ := strconv.Atoi(groups[4])
	d := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second
	if fraction := groups[5]; fraction != "" {
		for len(fraction) < 9 {
			fraction += "0"
		}
		nanoseconds, _ := strconv.Atoi(fraction)
		d += time.Duration(nanoseconds)
	}
	if groups[1] == "-" {
		d = -d
	}
	return d, true
}

// Verbose time strings: one or more number/unit pairs like
// "1 day 2 hours 3.5 seconds". A single leading sign negates the whole.
var timeStringPattern = regexp.MustCompile(
	`(?i)^\s*(\d+(?:\.\d+)?)\s*` +
		`(days?|d|hours?|h|minutes?|mins?|m|seconds?|secs?|s|milliseconds?|millis?|ms|microseconds?|us|µs|nanoseconds?|ns)\b`)

var unitDurations = map[string]time.Duration{
	"d": 24 * time.Hour, "day": 24 * time.Hour, "days": 24 * time.Hour,
	"h": time.Hour, "hour": time.Hour, "hours": time.Hour,
	"m": time.Minute, "min": time.Minute, "mins": time.Minute,
	"minute": time.Minute, "minutes": time.Minute,
	"s": time.Second, "sec": time.Second, "secs": time.Second,
	"second": time.Second, "seconds": time.Second,
	"ms": time.Millisecond, "milli": time.Millisecond, "millis": time.Millisecond,
	"millisecond": time.Millisecond, "milliseconds": time.Millisecond,
	"us": time.Microsecond, "µs": time.Microsecond,
	"microsecond": time.Microsecond, "microseconds": time.Microsecond,
	"ns": time.Nanosecond, "nanosecond": time.Nanosecond, "nanoseconds": time.Nanosecond,
}

func parseTimeString(value string) (time.Duration, bool) {
	negative := false
	if strings.HasPrefix(value, "-") {
		negative = true
		value = value[1:]
	} else if strings.HasPrefix(value, "+") {
		value = value[1:]
	}
	var total time.Duration
	matched := false
	for {
		value = strings.TrimSpace(value)
		if value == "" {
			break
		}
		groups := timeStringPattern.FindStringSubmatch(value)
		if groups == nil {
			return 0, false
		}
		amount, err := strconv.ParseFloat(groups[1], 64)
		if err != nil {
			return 0, false
		}
		unit := unitDurations[strings.ToLower(groups[2])]
		total += time.Duration(amount * float64(unit))
		matched = true
		value = value[len(groups[0]):]
	}
	if !matched {
		return 0, false
	}
	if negative {
		total = -total
	}
	return total, true
}
