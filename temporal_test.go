package typeconv

import (
	"github.com/menium878/typeconv/dates"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestDateTimeConversion(t *testing.T) {
	converted := convert(t, NewType(KindDateTime), "2018-04-25 14:15:22.123")
	require.Equal(t, converted, time.Date(2018, 4, 25, 14, 15, 22, 123000000, time.UTC))

	converted = convert(t, NewType(KindDateTime), "20180425 141522")
	require.Equal(t, converted, time.Date(2018, 4, 25, 14, 15, 22, 0, time.UTC))

	// epoch seconds
	converted = convert(t, NewType(KindDateTime), int64(0))
	require.Equal(t, converted, time.Unix(0, 0).UTC())

	err := convertError(t, NewType(KindDateTime), "foobar", "when")
	require.EqualError(t, err,
		"Argument 'when' got value 'foobar' that cannot be converted to datetime: "+
			"Invalid timestamp 'foobar'.")
}

func TestDateConversion(t *testing.T) {
	converted := convert(t, NewType(KindDate), "2018-04-25")
	require.Equal(t, converted, dates.Date{Year: 2018, Month: time.April, Day: 25})

	err := convertError(t, NewType(KindDate), "2018-04-25 14:15:22", "day")
	require.EqualError(t, err,
		"Argument 'day' got value '2018-04-25 14:15:22' that cannot be converted to date: "+
			"Value is datetime, not date.")

	err = convertError(t, NewType(KindDate), "2018-02-30", "day")
	require.EqualError(t, err,
		"Argument 'day' got value '2018-02-30' that cannot be converted to date: "+
			"Invalid timestamp '2018-02-30'.")
}

func TestTimedeltaConversion(t *testing.T) {
	cases := []struct {
		value any
		want  time.Duration
	}{
		{"1.5", 1500 * time.Millisecond},
		{"-10", -10 * time.Second},
		{"01:02:03.004", time.Hour + 2*time.Minute + 3*time.Second + 4*time.Millisecond},
		{"-1:30", -(time.Minute + 30*time.Second)},
		{"2 days 1 hour", 49 * time.Hour},
		{"3.5 seconds", 3500 * time.Millisecond},
		{"90 ms", 90 * time.Millisecond},
		{"1h30m", time.Hour + 30*time.Minute},
		{int64(10), 10 * time.Second},
		{2.5, 2500 * time.Millisecond},
		{time.Minute, time.Minute},
	}
	for _, c := range cases {
		require.Equal(t, convert(t, NewType(KindTimedelta), c.value), c.want)
	}

	err := convertError(t, NewType(KindTimedelta), "tomorrow", "timeout")
	require.EqualError(t, err,
		"Argument 'timeout' got value 'tomorrow' that cannot be converted to timedelta: "+
			"Invalid time string 'tomorrow'.")
}
