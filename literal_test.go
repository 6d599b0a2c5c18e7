package typeconv

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEvalLiteralScalars(t *testing.T) {
	cases := []struct {
		text string
		want any
	}{
		{"42", int64(42)},
		{"-1", int64(-1)},
		{"0x10", int64(16)},
		{"1_000", int64(1000)},
		{"3.14", 3.14},
		{"1e3", 1000.0},
		{"-.5", -0.5},
		{"True", true},
		{"False", false},
		{"None", nil},
		{"'hello'", "hello"},
		{`"hello"`, "hello"},
		{`'it\'s'`, "it's"},
		{`'a\tb\nc'`, "a\tb\nc"},
		{`'\x41'`, "A"},
		{`'☃'`, "☃"},
	}
	for _, c := range cases {
		value, err := evalLiteral(c.text, KindAny)
		require.NoError(t, err)
		require.Equal(t, value, c.want)
	}
}

func TestEvalLiteralContainers(t *testing.T) {
	cases := []struct {
		text string
		want any
	}{
		{"[1, 2]", []any{int64(1), int64(2)}},
		{"[1, 2,]", []any{int64(1), int64(2)}},
		{"[]", []any{}},
		{"(1, 2)", Tuple{int64(1), int64(2)}},
		{"(1,)", Tuple{int64(1)}},
		{"()", Tuple{}},
		{"{1, 2}", NewSet(int64(1), int64(2))},
		{"{}", map[any]any{}},
		{"{'a': 1}", map[any]any{"a": int64(1)}},
		{"{'a': 1, 'b': 2,}", map[any]any{"a": int64(1), "b": int64(2)}},
		{"[[1], (2,), {'k': None}]", []any{[]any{int64(1)}, Tuple{int64(2)}, map[any]any{"k": nil}}},
		{"  [ 1 ,  2 ]  ", []any{int64(1), int64(2)}},
	}
	for _, c := range cases {
		value, err := evalLiteral(c.text, KindAny)
		require.NoError(t, err)
		require.Equal(t, value, c.want)
	}
}

func TestEvalLiteralGrouping(t *testing.T) {
	// a single parenthesized value without a comma is not a tuple
	value, err := evalLiteral("(42)", KindAny)
	require.NoError(t, err)
	require.Equal(t, value, int64(42))
}

func TestEvalLiteralRejectsInvalidExpressions(t *testing.T) {
	for _, text := range []string{
		"", "foo", "[1", "'unterminated", "1 2", "{1: }", "[1 2]",
		"{[1]}", `'\q'`, "--1", "()garbage",
	} {
		_, err := evalLiteral(text, KindAny)
		require.EqualError(t, err, "Invalid expression.", "text: %s", text)
	}
}

func TestEvalLiteralChecksExpectedKind(t *testing.T) {
	_, err := evalLiteral("[1]", KindDict)
	require.EqualError(t, err, "Value is list, not dict.")

	_, err = evalLiteral("42", KindList)
	require.EqualError(t, err, "Value is integer, not list.")

	_, err = evalLiteral("{'a': 1}", KindSet)
	require.EqualError(t, err, "Value is dictionary, not set.")
}
