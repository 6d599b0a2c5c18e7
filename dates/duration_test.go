package dates

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestConvertDurationFromNumbers(t *testing.T) {
	cases := []struct {
		value any
		want  time.Duration
	}{
		{int(10), 10 * time.Second},
		{int64(-3), -3 * time.Second},
		{1.5, 1500 * time.Millisecond},
		{float32(0.5), 500 * time.Millisecond},
		{time.Minute, time.Minute},
	}
	for _, c := range cases {
		converted, err := ConvertDuration(c.value)
		require.NoError(t, err)
		require.Equal(t, converted, c.want)
	}
}

func TestConvertDurationFromText(t *testing.T) {
	cases := []struct {
		text string
		want time.Duration
	}{
		{"10", 10 * time.Second},
		{"-1.5", -1500 * time.Millisecond},
		{"01:02:03", time.Hour + 2*time.Minute + 3*time.Second},
		{"1:30", time.Minute + 30*time.Second},
		{"-1:30", -(time.Minute + 30*time.Second)},
		{"+01:02:03.250", time.Hour + 2*time.Minute + 3*time.Second + 250*time.Millisecond},
		{"1 day", 24 * time.Hour},
		{"2 days 1 hour", 49 * time.Hour},
		{"1 minute 30 seconds", 90 * time.Second},
		{"3.5 seconds", 3500 * time.Millisecond},
		{"90 ms", 90 * time.Millisecond},
		{"10 us", 10 * time.Microsecond},
		{"- 1 hour", -time.Hour},
		{"1h30m", time.Hour + 30*time.Minute},
	}
	for _, c := range cases {
		converted, err := ConvertDuration(c.text)
		require.NoError(t, err)
		require.Equal(t, converted, c.want, "text: %s", c.text)
	}
}

func TestConvertDurationRejectsInvalidText(t *testing.T) {
	for _, text := range []string{"foobar", "1:2:3:4", "1 lightyear", ""} {
		_, err := ConvertDuration(text)
		require.EqualError(t, err, "Invalid time string '"+text+"'.", "text: %s", text)
	}
}

func TestConvertDurationRejectsUnsupportedInput(t *testing.T) {
	_, err := ConvertDuration(true)
	require.EqualError(t, err, "Cannot convert 'true' to a duration.")
}

func TestSeconds(t *testing.T) {
	require.Equal(t, Seconds(2), 2*time.Second)
	require.Equal(t, Seconds(0.25), 250*time.Millisecond)
	require.Equal(t, Seconds(int64(-1)), -time.Second)
}
