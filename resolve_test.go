package typeconv

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func colorEnum() *Enum {
	return NewEnum("Color",
		EnumMember{Name: "RED", Value: 1},
		EnumMember{Name: "GREEN", Value: 2},
	)
}

func TestEnumConversionByName(t *testing.T) {
	red, _ := colorEnum().Member("RED")
	info := EnumType(colorEnum())

	require.Equal(t, convert(t, info, "RED"), red)

	// matching ignores case, spaces, underscores and hyphens
	require.Equal(t, convert(t, info, "red"), red)
	require.Equal(t, convert(t, info, "R_e-d"), red)

	// an already converted member passes through
	require.Equal(t, convert(t, info, red), red)
}

func TestEnumConversionByValue(t *testing.T) {
	enum := colorEnum()
	red, _ := enum.Member("RED")
	green, _ := enum.Member("GREEN")
	info := EnumType(enum)

	require.Equal(t, convert(t, info, "1"), red)
	require.Equal(t, convert(t, info, int64(2)), green)
	require.Equal(t, convert(t, info, 2), green)
}

func TestEnumConversionFailures(t *testing.T) {
	err := convertError(t, EnumType(colorEnum()), "blue", "color")
	require.EqualError(t, err,
		"Argument 'color' got value 'blue' that cannot be converted to Color: "+
			"Color does not have member 'blue'. Available: 'GREEN (2)' and 'RED (1)'")

	err = convertError(t, EnumType(colorEnum()), int64(3), "color")
	require.EqualError(t, err,
		"Argument 'color' got value '3' (integer) that cannot be converted to Color: "+
			"Color does not have value '3'. Available: '1' and '2'")
}

func TestEnumConversionWithoutIntegerValues(t *testing.T) {
	enum := NewEnum("Mode",
		EnumMember{Name: "FAST", Value: "f"},
		EnumMember{Name: "SLOW", Value: "s"},
	)
	fast, _ := enum.Member("FAST")
	require.Equal(t, convert(t, EnumType(enum), "fast"), fast)

	// numeric lookup only applies when every member value is an integer
	err := convertError(t, EnumType(enum), "1", "")
	require.EqualError(t, err,
		"Argument '1' cannot be converted to Mode: "+
			"Mode does not have member '1'. Available: 'FAST' and 'SLOW'")
}

func TestEnumConversionAmbiguousMatch(t *testing.T) {
	enum := NewEnum("Tricky",
		EnumMember{Name: "foo_bar", Value: 1},
		EnumMember{Name: "FooBar", Value: 2},
	)
	err := convertError(t, EnumType(enum), "FOO BAR", "")
	require.EqualError(t, err,
		"Argument 'FOO BAR' cannot be converted to Tricky: "+
			"Tricky has multiple members matching 'FOO BAR'. Available: 'FooBar' and 'foo_bar'")

	// an exact name wins even when normalization is ambiguous
	foobar, _ := enum.Member("FooBar")
	require.Equal(t, convert(t, EnumType(enum), "FooBar"), foobar)
}

func TestUnionConversion(t *testing.T) {
	info := UnionType(NewType(KindInt), NewType(KindNone))

	require.Equal(t, convert(t, info, "42"), int64(42))
	require.Equal(t, convert(t, info, "none"), nil)
	require.Equal(t, convert(t, info, nil), nil)
	require.Equal(t, convert(t, info, int64(7)), int64(7))
}

func TestUnionMembersAreTriedInOrder(t *testing.T) {
	// both members accept "1"; the first one declared wins
	info := UnionType(NewType(KindBool), NewType(KindInt))
	require.Equal(t, convert(t, info, "1"), true)

	info = UnionType(NewType(KindInt), NewType(KindBool))
	require.Equal(t, convert(t, info, "1"), int64(1))
}

func TestUnionKeepsValueMatchingAnyMember(t *testing.T) {
	// text already is a str, so a str member means no conversion at all
	info := UnionType(NewType(KindInt), NewType(KindString))
	require.Equal(t, convert(t, info, "1"), "1")
}

func TestUnionConversionFailure(t *testing.T) {
	err := convertError(t, UnionType(NewType(KindInt), NewType(KindNone)), "banana", "arg")
	require.EqualError(t, err,
		"Argument 'arg' got value 'banana' that cannot be converted to integer or None.")
}

func TestUnionWithUnrecognizedMemberPassesThrough(t *testing.T) {
	info := UnionType(NewType(KindInt), &TypeInfo{Kind: KindUnknown, Name: "Mystery"})
	converter := ConverterFor(info, nil, nil)

	converted, err := converter.Convert("banana", "", "")
	require.NoError(t, err)
	require.Equal(t, converted, "banana")

	// recognized members still convert
	converted, err = converter.Convert("42", "", "")
	require.NoError(t, err)
	require.Equal(t, converted, int64(42))
}

func TestLiteralConversion(t *testing.T) {
	info := LiteralType("on", "off")

	require.Equal(t, convert(t, info, "on"), "on")

	// matching ignores case and separators, but yields the declared constant
	require.Equal(t, convert(t, info, "ON"), "on")

	err := convertError(t, info, "off please", "switch")
	require.EqualError(t, err,
		"Argument 'switch' got value 'off please' that cannot be converted to 'on' or 'off'.")
}

func TestLiteralConversionMatchesExactType(t *testing.T) {
	info := LiteralType(1, true)

	require.Equal(t, convert(t, info, int64(1)), int64(1))
	require.Equal(t, convert(t, info, true), true)

	// text matching both constants is rejected rather than guessed at
	err := convertError(t, info, "1", "")
	require.EqualError(t, err,
		"Argument '1' cannot be converted to 1 or true: No unique match found.")
}

func TestLiteralConversionWithNone(t *testing.T) {
	info := LiteralType("auto", nil)
	require.Equal(t, convert(t, info, nil), nil)
	require.Equal(t, convert(t, info, "AUTO"), "auto")
	require.Equal(t, convert(t, info, "none"), nil)
}
