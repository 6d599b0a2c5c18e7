package typeconv

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/require"
	"reflect"
	"strconv"
	"strings"
	"testing"
)

type temperature struct {
	degrees float64
}

func temperatureConverters() *CustomConverters {
	return NewCustomConverters(&ConverterInfo{
		Type:       reflect.TypeOf((*temperature)(nil)).Elem(),
		ValueTypes: []reflect.Type{reflect.TypeOf((*string)(nil)).Elem()},
		Convert: func(value any) (any, error) {
			text := value.(string)
			suffix := strings.TrimSuffix(text, "C")
			if suffix == text {
				return nil, &ValueError{Message: "Temperature must end with 'C'."}
			}
			degrees, err := strconv.ParseFloat(suffix, 64)
			if err != nil {
				return nil, fmt.Errorf("parse %q: %w", suffix, err)
			}
			return temperature{degrees: degrees}, nil
		},
	})
}

func TestCustomConversion(t *testing.T) {
	info := ObjectType(reflect.TypeOf((*temperature)(nil)).Elem())
	converter := ConverterFor(info, temperatureConverters(), nil)
	require.NoError(t, converter.Validate())

	converted, err := converter.Convert("21.5C", "temp", "")
	require.NoError(t, err)
	require.Equal(t, converted, temperature{degrees: 21.5})

	// an already converted value passes through
	converted, err = converter.Convert(temperature{degrees: 3}, "temp", "")
	require.NoError(t, err)
	require.Equal(t, converted, temperature{degrees: 3})
}

func TestCustomConversionSurfacesValueErrors(t *testing.T) {
	info := ObjectType(reflect.TypeOf((*temperature)(nil)).Elem())
	converter := ConverterFor(info, temperatureConverters(), nil)

	_, err := converter.Convert("21.5", "temp", "")
	require.EqualError(t, err,
		"Argument 'temp' got value '21.5' that cannot be converted to temperature: "+
			"Temperature must end with 'C'.")

	// other errors are not surfaced; their messages are not meant for users
	_, err = converter.Convert("xC", "temp", "")
	require.EqualError(t, err,
		"Argument 'temp' got value 'xC' that cannot be converted to temperature.")
}

func TestCustomConversionRestrictsInputTypes(t *testing.T) {
	info := ObjectType(reflect.TypeOf((*temperature)(nil)).Elem())
	converter := ConverterFor(info, temperatureConverters(), nil)

	_, err := converter.Convert(int64(21), "temp", "")
	require.EqualError(t, err,
		"Argument 'temp' got value '21' (integer) that cannot be converted to temperature.")
}

func TestCustomConversionOverridesBuiltIns(t *testing.T) {
	type level int
	customs := NewCustomConverters(&ConverterInfo{
		Type: reflect.TypeOf((*level)(nil)).Elem(),
		Name: "Level",
		Convert: func(value any) (any, error) {
			if value == "max" {
				return level(9), nil
			}
			return nil, errors.New("nope")
		},
	})

	converter := ConverterFor(ObjectType(reflect.TypeOf((*level)(nil)).Elem()), customs, nil)
	converted, err := converter.Convert("max", "", "")
	require.NoError(t, err)
	require.Equal(t, converted, level(9))

	// without the custom entry the same type resolves structurally
	converter = ConverterFor(ObjectType(reflect.TypeOf((*level)(nil)).Elem()), nil, nil)
	converted, err = converter.Convert("42", "", "")
	require.NoError(t, err)
	require.Equal(t, converted, level(42))
}

func TestObjectTypesResolveStructurally(t *testing.T) {
	type celsius int
	converted := convert(t, ObjectType(reflect.TypeOf((*celsius)(nil)).Elem()), "30")
	require.Equal(t, converted, celsius(30))

	type identifier string
	converted = convert(t, ObjectType(reflect.TypeOf((*identifier)(nil)).Elem()), int64(7))
	require.Equal(t, converted, identifier("7"))

	type flag bool
	converted = convert(t, ObjectType(reflect.TypeOf((*flag)(nil)).Elem()), "yes")
	require.Equal(t, converted, flag(true))
}

func TestUnresolvableObjectTypeFailsValidation(t *testing.T) {
	type opaque struct{ x int }
	converter := ConverterFor(ObjectType(reflect.TypeOf((*opaque)(nil)).Elem()), nil, nil)
	require.EqualError(t, converter.Validate(), "Unrecognized type 'opaque'.")

	// conversion is still a pass-through
	converted, err := converter.Convert("anything", "", "")
	require.NoError(t, err)
	require.Equal(t, converted, "anything")
}
