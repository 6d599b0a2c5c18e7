package typeconv

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/menium878/typeconv/languages"
)

// ConverterInfo describes one application-supplied conversion.
type ConverterInfo struct {
	// Type is the declared Go type the conversion produces.
	Type reflect.Type

	// Name is the human-readable type name used in error messages.
	// Defaults to the type's name.
	Name string

	// ValueTypes restricts the runtime input types the conversion accepts.
	// Empty means any input is attempted.
	ValueTypes []reflect.Type

	// Convert transforms the input value. Return a [ValueError] (possibly
	// wrapped) to surface the message to the caller unchanged; any other
	// error is reported as a generic conversion failure.
	Convert func(value any) (any, error)
}

func (ci *ConverterInfo) name() string {
	if ci.Name != "" {
		return ci.Name
	}
	return ci.Type.Name()
}

// CustomConverters maps application types to user-defined conversions.
// Entries take dispatch priority over the built-in converters.
type CustomConverters struct {
	converters map[reflect.Type]*ConverterInfo
}

// NewCustomConverters builds a registry from the given conversions.
func NewCustomConverters(infos ...*ConverterInfo) *CustomConverters {
	c := &CustomConverters{converters: make(map[reflect.Type]*ConverterInfo, len(infos))}
	for _, info := range infos {
		c.Register(info)
	}
	return c
}

// Register adds a conversion, replacing any earlier entry for the same type.
func (c *CustomConverters) Register(info *ConverterInfo) {
	c.converters[info.Type] = info
}

// Get returns the conversion registered for exactly the given type, or nil.
func (c *CustomConverters) Get(t reflect.Type) *ConverterInfo {
	return c.converters[t]
}

// customConverter adapts an externally supplied conversion behind the same
// contract as the built-ins.
type customConverter struct {
	base
	converterInfo *ConverterInfo
}

func newCustomConverter(info *TypeInfo, ci *ConverterInfo, langs *languages.Languages) Converter {
	c := &customConverter{converterInfo: ci}
	c.init(c, info, ci.name(), nil, langs)
	c.typeName = ci.name()
	return c
}

func (c *customConverter) handlesValue(value any) bool {
	if len(c.converterInfo.ValueTypes) == 0 {
		return true
	}
	valueType := reflect.TypeOf(value)
	for _, accepted := range c.converterInfo.ValueTypes {
		if valueType == accepted || (valueType != nil && valueType.AssignableTo(accepted)) {
			return true
		}
	}
	return false
}

func (c *customConverter) convertText(value string) (any, error) {
	return c.callConverter(value)
}

func (c *customConverter) convertOther(value any) (any, error) {
	return c.callConverter(value)
}

func (c *customConverter) callConverter(value any) (any, error) {
	converted, err := c.converterInfo.Convert(value)
	if err != nil {
		var valueErr *ValueError
		if errors.As(err, &valueErr) {
			return nil, err
		}
		// Arbitrary failures from external code are not surfaced; their
		// messages may leak internals unrelated to the conversion.
		return nil, errSilent
	}
	return converted, nil
}

// unknownConverter is the sentinel substituted when no strategy recognizes
// the declared type. Conversion is a pass-through; validation fails loudly,
// so a setup-time Validate catches the problem before any data is processed.
type unknownConverter struct{ base }

func newUnknownConverter(info *TypeInfo, langs *languages.Languages) Converter {
	c := &unknownConverter{}
	if info == nil {
		info = &TypeInfo{Kind: KindUnknown}
	}
	c.init(c, info, "", nil, langs)
	return c
}

func (c *unknownConverter) Convert(value any, name, kind string) (any, error) {
	return value, nil
}

func (c *unknownConverter) Validate() error {
	return fmt.Errorf("Unrecognized type '%s'.", c.typeName)
}
