package typeconv

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/menium878/typeconv/languages"
)

type anyConverter struct{ base }

func newAnyConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &anyConverter{}
	c.init(c, info, "Any", customs, langs)
	return c
}

func (c *anyConverter) noConversionNeeded(any) bool { return true }

type stringConverter struct{ base }

func newStringConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &stringConverter{}
	c.init(c, info, "string", customs, langs)
	return c
}

func (c *stringConverter) handlesValue(any) bool { return true }

func (c *stringConverter) convertOther(value any) (any, error) {
	return displayValue(value), nil
}

type booleanConverter struct{ base }

func newBooleanConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &booleanConverter{}
	c.init(c, info, "boolean", customs, langs)
	return c
}

func (c *booleanConverter) handlesValue(value any) bool {
	if _, ok := value.(string); ok {
		return true
	}
	return value == nil || isNumber(value)
}

// Numbers and nil pass through unchanged; callers that need strict booleans
// must check the result type themselves.
func (c *booleanConverter) convertOther(value any) (any, error) {
	return value, nil
}

func (c *booleanConverter) convertText(value string) (any, error) {
	normalized := languages.Title(value)
	if normalized == "None" {
		return nil, nil
	}
	vocabulary := c.languages()
	if vocabulary.IsTrue(normalized) {
		return true, nil
	}
	if vocabulary.IsFalse(normalized) {
		return false, nil
	}
	// Unmatched text is returned unchanged rather than failing.
	return value, nil
}

type integerConverter struct{ base }

func newIntegerConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &integerConverter{}
	c.init(c, info, "integer", customs, langs)
	return c
}

func (c *integerConverter) handlesValue(value any) bool {
	if _, ok := value.(string); ok {
		return true
	}
	return isNumber(value)
}

var errLosePrecision = errors.New("Conversion would lose precision.")

func (c *integerConverter) convertOther(value any) (any, error) {
	if i, ok := asInt64(value); ok {
		return i, nil
	}
	f, _ := asFloat64(value)
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, errLosePrecision
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, errSilent
	}
	return int64(f), nil
}

func (c *integerConverter) convertText(value string) (any, error) {
	value = stripNumberSeparators(value)
	digits, numberBase := splitNumberBase(value)
	if n, err := strconv.ParseInt(digits, numberBase, 64); err == nil {
		return n, nil
	}
	if numberBase != 10 {
		return nil, errSilent
	}
	// Base-10 text that is not a plain integer may still be an exact whole
	// number, e.g. "3.0" or "1e3".
	d, _, err := apd.NewFromString(digits)
	if err != nil {
		return nil, errSilent
	}
	var reduced apd.Decimal
	reduced.Reduce(d)
	if reduced.Exponent < 0 {
		return nil, errLosePrecision
	}
	n, err := d.Int64()
	if err != nil {
		return nil, errSilent
	}
	return n, nil
}

// splitNumberBase detects an optionally signed 0x/0o/0b prefix and returns
// the text with the prefix removed together with the base it selects.
func splitNumberBase(value string) (string, int) {
	value = strings.ToLower(value)
	for _, candidate := range []struct {
		prefix string
		base   int
	}{{"0x", 16}, {"0o", 8}, {"0b", 2}} {
		if !strings.Contains(value, candidate.prefix) {
			continue
		}
		parts := strings.SplitN(value, candidate.prefix, 2)
		if len(parts) == 2 && (parts[0] == "" || parts[0] == "-" || parts[0] == "+") {
			return parts[0] + parts[1], candidate.base
		}
	}
	return value, 10
}

type floatConverter struct{ base }

func newFloatConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &floatConverter{}
	c.init(c, info, "float", customs, langs)
	return c
}

func (c *floatConverter) handlesValue(value any) bool {
	if _, ok := value.(string); ok {
		return true
	}
	return isNumber(value)
}

func (c *floatConverter) convertOther(value any) (any, error) {
	f, _ := asFloat64(value)
	return f, nil
}

func (c *floatConverter) convertText(value string) (any, error) {
	f, err := strconv.ParseFloat(stripNumberSeparators(value), 64)
	if err != nil {
		return nil, errSilent
	}
	return f, nil
}

type decimalConverter struct{ base }

func newDecimalConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &decimalConverter{}
	c.init(c, info, "decimal", customs, langs)
	return c
}

func (c *decimalConverter) handlesValue(value any) bool {
	if _, ok := value.(string); ok {
		return true
	}
	return isNumber(value)
}

func (c *decimalConverter) convertOther(value any) (any, error) {
	if i, ok := asInt64(value); ok {
		return apd.New(i, 0), nil
	}
	f, _ := asFloat64(value)
	d := new(apd.Decimal)
	if _, err := d.SetFloat64(f); err != nil {
		return nil, errSilent
	}
	return d, nil
}

func (c *decimalConverter) convertText(value string) (any, error) {
	// Parse failures carry no detail; the underlying error messages are
	// not useful to end users.
	d, _, err := apd.NewFromString(stripNumberSeparators(value))
	if err != nil {
		return nil, errSilent
	}
	return d, nil
}

type bytesConverter struct{ base }

func newBytesConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &bytesConverter{}
	c.init(c, info, "bytes", customs, langs)
	return c
}

func (c *bytesConverter) handlesValue(value any) bool {
	switch value.(type) {
	case string, ByteArray:
		return true
	}
	return false
}

func (c *bytesConverter) convertOther(value any) (any, error) {
	return []byte(value.(ByteArray)), nil
}

func (c *bytesConverter) convertText(value string) (any, error) {
	return encodeLatin1(value)
}

// encodeLatin1 maps text to bytes one character at a time. Characters
// outside the single-byte range fail, naming the first offender and its
// position.
func encodeLatin1(value string) ([]byte, error) {
	encoded := make([]byte, 0, len(value))
	position := 0
	for _, r := range value {
		if r > 0xFF {
			return nil, fmt.Errorf("Character '%c' at position %d cannot be mapped to a byte.",
				r, position)
		}
		encoded = append(encoded, byte(r))
		position++
	}
	return encoded, nil
}

type byteArrayConverter struct{ base }

func newByteArrayConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &byteArrayConverter{}
	c.init(c, info, "bytearray", customs, langs)
	return c
}

func (c *byteArrayConverter) handlesValue(value any) bool {
	switch value.(type) {
	case string, []byte:
		return true
	}
	return false
}

func (c *byteArrayConverter) convertOther(value any) (any, error) {
	return ByteArray(value.([]byte)), nil
}

func (c *byteArrayConverter) convertText(value string) (any, error) {
	encoded, err := encodeLatin1(value)
	if err != nil {
		return nil, err
	}
	return ByteArray(encoded), nil
}

type pathConverter struct{ base }

func newPathConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &pathConverter{}
	c.init(c, info, "Path", customs, langs)
	return c
}

func (c *pathConverter) convertText(value string) (any, error) {
	return Path(filepath.FromSlash(value)), nil
}

type noneConverter struct{ base }

func newNoneConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &noneConverter{}
	c.init(c, info, "None", customs, langs)
	return c
}

func (c *noneConverter) convertText(value string) (any, error) {
	if strings.EqualFold(value, "NONE") {
		return nil, nil
	}
	return nil, errSilent
}
