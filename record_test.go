package typeconv

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func configRecord() *TypeInfo {
	return RecordType("Config", []RecordField{
		{Name: "name", Type: NewType(KindString)},
		{Name: "port", Type: NewType(KindInt)},
		{Name: "debug", Type: NewType(KindBool)},
	}, "name")
}

func TestRecordConversion(t *testing.T) {
	converted := convert(t, configRecord(), "{'name': 'db', 'port': '5432'}")
	require.Equal(t, converted, map[string]any{"name": "db", "port": int64(5432)})

	// mappings convert without going through text
	converted = convert(t, configRecord(), map[string]any{"name": "db", "debug": "yes"})
	require.Equal(t, converted, map[string]any{"name": "db", "debug": true})
}

func TestRecordConversionKeepsMatchingInput(t *testing.T) {
	entries := map[string]any{"name": "db", "port": int64(80)}
	converted, err := ConverterFor(configRecord(), nil, nil).Convert(entries, "", "")
	require.NoError(t, err)
	require.Equal(t, converted, entries)
}

func TestRecordRequiredFields(t *testing.T) {
	err := convertError(t, configRecord(), "{'port': 80}", "cfg")
	require.EqualError(t, err,
		"Argument 'cfg' got value '{'port': 80}' that cannot be converted to Config: "+
			"Required item 'name' missing.")
}

func TestRecordRejectsUnknownFields(t *testing.T) {
	err := convertError(t, configRecord(), "{'name': 'db', 'host': 'x', 'usr': 'y'}", "cfg")
	require.EqualError(t, err,
		"Argument 'cfg' got value '{'name': 'db', 'host': 'x', 'usr': 'y'}' "+
			"that cannot be converted to Config: "+
			"Items 'host' and 'usr' not allowed. Available items: 'debug' and 'port'")
}

func TestRecordFieldConversionFailure(t *testing.T) {
	err := convertError(t, configRecord(), "{'name': 'db', 'port': 'x'}", "cfg")
	require.EqualError(t, err,
		"Argument 'cfg' got value '{'name': 'db', 'port': 'x'}' "+
			"that cannot be converted to Config: "+
			"Item 'port' got value 'x' that cannot be converted to integer.")
}

func TestRecordValidatesFieldTypes(t *testing.T) {
	info := RecordType("Broken", []RecordField{
		{Name: "field", Type: &TypeInfo{Kind: KindUnknown, Name: "Mystery"}},
	})
	err := ConverterFor(info, nil, nil).Validate()
	require.EqualError(t, err, "Unrecognized type 'Mystery'.")
}
