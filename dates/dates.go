// Package dates parses calendar dates and durations from loosely typed
// input: text in a handful of common formats, numbers, or already-native
// temporal values.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Date is a calendar date without a time of day, distinct from the
// timestamp type time.Time.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates a timestamp to its calendar date.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Timestamps are year, month, day, optionally followed by clock and
// fractional seconds, with any non-digit single character as separator:
// "2018-04-25 14:15:22.123", "2018/04/25T14.15.22" or "20180425 141522".
var timestampPattern = regexp.MustCompile(
	`^(\d{4})\D?(\d{1,2})\D?(\d{1,2})` +
		`(?:\D(\d{1,2})\D?(\d{1,2})(?:\D?(\d{1,2})(?:[.,](\d{1,9}))?)?)?$`)

// ConvertDate normalizes text, epoch numbers or native temporal values into
// a timestamp. Epoch numbers are interpreted as seconds in UTC.
func ConvertDate(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case Date:
		return v.Time(), nil
	case string:
		return parseTimestamp(v)
	case int:
		return time.Unix(int64(v), 0).UTC(), nil
	case int64:
		return time.Unix(v, 0).UTC(), nil
	case float64:
		return epochToTime(v), nil
	case float32:
		return epochToTime(float64(v)), nil
	}
	return time.Time{}, fmt.Errorf("Cannot convert '%v' to a date.", value)
}

func epochToTime(seconds float64) time.Time {
	whole := int64(seconds)
	fraction := seconds - float64(whole)
	return time.Unix(whole, int64(fraction*float64(time.Second))).UTC()
}

func parseTimestamp(value string) (time.Time, error) {
	groups := timestampPattern.FindStringSubmatch(value)
	if groups == nil {
		return time.Time{}, fmt.Errorf("Invalid timestamp '%s'.", value)
	}
	numbers := make([]int, 6)
	for i := range numbers {
		if groups[i+1] != "" {
			numbers[i], _ = strconv.Atoi(groups[i+1])
		}
	}
	nanoseconds := 0
	if fraction := groups[7]; fraction != "" {
		for len(fraction) < 9 {
			fraction += "0"
		}
		nanoseconds, _ = strconv.Atoi(fraction)
	}
	t := time.Date(numbers[0], time.Month(numbers[1]), numbers[2],
		numbers[3], numbers[4], numbers[5], nanoseconds, time.UTC)
	// time.Date normalizes out-of-range components, so "2018-02-30" would
	// silently become March; reject anything that moved.
	if t.Year() != numbers[0] || t.Month() != time.Month(numbers[1]) || t.Day() != numbers[2] {
		return time.Time{}, fmt.Errorf("Invalid timestamp '%s'.", value)
	}
	return t, nil
}
