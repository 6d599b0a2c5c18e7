package typeconv

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/menium878/typeconv/languages"
)

// errSilent marks a conversion failure whose cause adds nothing useful to
// the final error message.
var errSilent = errors.New("conversion failed")

// A ValueError carries a conversion failure message meant for the end user.
// Custom converters return it (or wrap it) to have their message surfaced
// unchanged instead of being replaced by a generic one.
type ValueError struct {
	Message string
}

func (e *ValueError) Error() string {
	return e.Message
}

// Converter validates and transforms values against one declared type shape.
// Converters are created through [ConverterFor]; the interface is sealed to
// this package.
type Converter interface {
	// Convert coerces value to the converter's declared type. The optional
	// name and kind identify the value in error messages, e.g. kind
	// "Argument" with name "count". An empty kind defaults to "Argument".
	Convert(value any, name, kind string) (any, error)

	// Validate checks the whole converter tree for unrecognized declared
	// types. It is meant to run once at setup time, before any data.
	Validate() error

	// TypeName is the display name of the declared type.
	TypeName() string

	// The strategy hooks the shared Convert driver dispatches to.
	noConversionNeeded(value any) bool
	handlesValue(value any) bool
	convertText(value string) (any, error)
	convertOther(value any) (any, error)
}

// base carries the state shared by all converters and implements the
// default strategy hooks. The self reference points at the concrete
// converter so the Convert driver dispatches to overridden hooks, mirroring
// virtual dispatch without an inheritance chain.
type base struct {
	self     Converter
	info     *TypeInfo
	typeName string
	nested   []Converter
	customs  *CustomConverters
	langs    *languages.Languages
}

func (b *base) init(self Converter, info *TypeInfo, typeName string, customs *CustomConverters, langs *languages.Languages) {
	b.self = self
	b.info = info
	b.customs = customs
	b.langs = langs
	for _, nested := range info.Nested {
		b.nested = append(b.nested, ConverterFor(nested, customs, langs))
	}
	if typeName != "" && len(info.Nested) == 0 {
		b.typeName = typeName
	} else {
		b.typeName = info.String()
	}
}

func (b *base) TypeName() string {
	return b.typeName
}

// languages returns the boolean vocabulary, constructing the default one
// lazily on first use when the caller supplied none.
func (b *base) languages() *languages.Languages {
	if b.langs == nil {
		b.langs = languages.New()
	}
	return b.langs
}

func (b *base) Convert(value any, name, kind string) (any, error) {
	if kind == "" {
		kind = "Argument"
	}
	if b.self.noConversionNeeded(value) {
		return value, nil
	}
	if !b.self.handlesValue(value) {
		return nil, b.conversionError(value, name, kind, nil)
	}
	var converted any
	var err error
	if text, ok := value.(string); ok {
		converted, err = b.self.convertText(text)
	} else {
		converted, err = b.self.convertOther(value)
	}
	if err != nil {
		return nil, b.conversionError(value, name, kind, err)
	}
	return coerceToObject(b.info, converted), nil
}

func (b *base) Validate() error {
	for _, nested := range b.nested {
		if err := nested.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (b *base) noConversionNeeded(value any) bool {
	return valueMatches(b.info, value)
}

func (b *base) handlesValue(value any) bool {
	_, ok := value.(string)
	return ok
}

func (b *base) convertText(string) (any, error) {
	return nil, errSilent
}

func (b *base) convertOther(any) (any, error) {
	return nil, errSilent
}

// conversionError builds the uniform failure message:
//
//	<Kind> '<name>' got value '<value>' (<type>) that cannot be converted
//	to <declared-type-name>: <detail>
//
// The runtime type is omitted for strings, the name clause when no name was
// given, and the detail when the underlying failure carries none.
func (b *base) conversionError(value any, name, kind string, err error) error {
	runtimeType := ""
	if _, ok := value.(string); !ok {
		runtimeType = fmt.Sprintf(" (%s)", typeNameOf(value))
	}
	kind = capitalize(kind)
	ending := "."
	if err != nil && !errors.Is(err, errSilent) && err.Error() != "" {
		ending = ": " + err.Error()
	}
	cannot := fmt.Sprintf("cannot be converted to %s%s", b.typeName, ending)
	if name == "" {
		return fmt.Errorf("%s '%s'%s %s", kind, displayValue(value), runtimeType, cannot)
	}
	return fmt.Errorf("%s '%s' got value '%s'%s that %s",
		kind, name, displayValue(value), runtimeType, cannot)
}

// valueMatches is the default no-conversion check: the value already has the
// declared type's canonical runtime shape.
func valueMatches(info *TypeInfo, value any) bool {
	if info.Object != nil {
		return value != nil && reflect.TypeOf(value) == info.Object
	}
	switch info.Kind {
	case KindAny:
		return true
	case KindString:
		_, ok := value.(string)
		return ok
	case KindBool:
		_, ok := value.(bool)
		return ok
	case KindInt:
		// only the canonical width; other widths are normalized on input
		_, ok := value.(int64)
		return ok
	case KindFloat:
		_, ok := value.(float64)
		return ok
	case KindDecimal:
		return typeNameOf(value) == "decimal"
	case KindBytes:
		_, ok := value.([]byte)
		return ok
	case KindByteArray:
		_, ok := value.(ByteArray)
		return ok
	case KindDate:
		return typeNameOf(value) == "date"
	case KindDateTime:
		return typeNameOf(value) == "datetime"
	case KindTimedelta:
		return typeNameOf(value) == "timedelta"
	case KindPath:
		_, ok := value.(Path)
		return ok
	case KindNone:
		return value == nil
	case KindList:
		_, ok := value.([]any)
		return ok
	case KindTuple:
		_, ok := value.(Tuple)
		return ok
	case KindSet:
		_, ok := value.(Set)
		return ok
	case KindFrozenSet:
		_, ok := value.(FrozenSet)
		return ok
	case KindDict:
		return isMapping(value)
	case KindEnum:
		member, ok := value.(EnumMember)
		return ok && info.Enum != nil && info.Enum.has(member)
	}
	return false
}

// coerceToObject converts a successfully converted value to the declared
// named Go type when the descriptor carries one, so `type Celsius int`
// yields a Celsius rather than an int64. Only like-kinded conversions are
// applied; anything else is returned as-is.
func coerceToObject(info *TypeInfo, value any) any {
	if info.Object == nil || value == nil {
		return value
	}
	rv := reflect.ValueOf(value)
	if rv.Type() == info.Object {
		return value
	}
	if sameKindGroup(rv.Kind(), info.Object.Kind()) && rv.Type().ConvertibleTo(info.Object) {
		return rv.Convert(info.Object).Interface()
	}
	return value
}

func sameKindGroup(a, b reflect.Kind) bool {
	return kindGroup(a) != 0 && kindGroup(a) == kindGroup(b)
}

func kindGroup(k reflect.Kind) int {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return 1
	case reflect.Float32, reflect.Float64:
		return 2
	case reflect.String:
		return 3
	case reflect.Bool:
		return 4
	case reflect.Slice, reflect.Array:
		return 5
	case reflect.Map:
		return 6
	}
	return 0
}

// A registration binds one built-in converter to its exact kind and to the
// structural predicate used when exact lookup misses. Order matters: the
// fallback scan takes the first predicate that accepts the descriptor.
type registration struct {
	kind    Kind
	handles func(info *TypeInfo) bool
	build   func(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter
}

func objectKindIn(info *TypeInfo, kinds ...reflect.Kind) bool {
	if info.Object == nil {
		return false
	}
	for _, k := range kinds {
		if info.Object.Kind() == k {
			return true
		}
	}
	return false
}

// The built-in table, in registration order. Exact kind lookup wins over the
// structural fallback, and custom converters win over both (see ConverterFor).
// Populated in init because the builder funcs reach ConverterFor for their
// nested types, which reads the table again.
var registry []registration

func init() {
	registry = []registration{
		{kind: KindEnum, build: newEnumConverter},
		{kind: KindAny, build: newAnyConverter},
		{
			kind:    KindString,
			build:   newStringConverter,
			handles: func(info *TypeInfo) bool { return objectKindIn(info, reflect.String) },
		},
		{
			kind:    KindBool,
			build:   newBooleanConverter,
			handles: func(info *TypeInfo) bool { return objectKindIn(info, reflect.Bool) },
		},
		{
			kind:  KindInt,
			build: newIntegerConverter,
			handles: func(info *TypeInfo) bool {
				return objectKindIn(info,
					reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
					reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64)
			},
		},
		{
			kind:    KindFloat,
			build:   newFloatConverter,
			handles: func(info *TypeInfo) bool { return objectKindIn(info, reflect.Float32, reflect.Float64) },
		},
		{kind: KindDecimal, build: newDecimalConverter},
		{
			kind:  KindBytes,
			build: newBytesConverter,
			handles: func(info *TypeInfo) bool {
				return info.Object != nil && info.Object.Kind() == reflect.Slice &&
					info.Object.Elem().Kind() == reflect.Uint8
			},
		},
		{kind: KindByteArray, build: newByteArrayConverter},
		{kind: KindDateTime, build: newDateTimeConverter},
		{kind: KindDate, build: newDateConverter},
		{kind: KindTimedelta, build: newTimedeltaConverter},
		{kind: KindPath, build: newPathConverter},
		{kind: KindNone, build: newNoneConverter},
		{
			kind:    KindList,
			build:   newListConverter,
			handles: func(info *TypeInfo) bool { return objectKindIn(info, reflect.Slice, reflect.Array) },
		},
		{kind: KindTuple, build: newTupleConverter},
		{kind: KindRecord, build: newRecordConverter},
		{
			kind:    KindDict,
			build:   newDictionaryConverter,
			handles: func(info *TypeInfo) bool { return objectKindIn(info, reflect.Map) },
		},
		{kind: KindSet, build: newSetConverter},
		{kind: KindFrozenSet, build: newFrozenSetConverter},
		{kind: KindUnion, build: newUnionConverter},
		{kind: KindLiteral, build: newLiteralConverter},
	}
}

// ConverterFor resolves a type descriptor to a converter. Resolution order:
// custom converters for the exact declared Go type, then the built-in table
// by kind, then the structural fallback in registration order. Descriptors
// nothing recognizes get the unknown sentinel, whose conversion is a
// pass-through but whose validation fails.
func ConverterFor(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	if info == nil || info.Kind == KindUnknown || info.Kind == KindVariadic {
		return newUnknownConverter(info, langs)
	}
	if info.Kind == KindEnum && info.Enum == nil {
		return newUnknownConverter(info, langs)
	}
	if customs != nil && info.Object != nil {
		if ci := customs.Get(info.Object); ci != nil {
			return newCustomConverter(info, ci, langs)
		}
	}
	if info.Kind != KindObject {
		for _, reg := range registry {
			if reg.kind == info.Kind {
				return reg.build(info, customs, langs)
			}
		}
	}
	for _, reg := range registry {
		if reg.handles != nil && reg.handles(info) {
			return reg.build(info, customs, langs)
		}
	}
	return newUnknownConverter(info, langs)
}
