package typeconv

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind identifies a declared target type.
type Kind int

const (
	// KindUnknown marks a type no strategy recognizes. Conversion passes
	// values through unchanged but validation fails.
	KindUnknown Kind = iota
	KindAny
	KindString
	KindBool
	KindInt
	KindFloat
	KindDecimal
	KindBytes
	KindByteArray
	KindDate
	KindDateTime
	KindTimedelta
	KindPath
	KindNone
	KindList
	KindTuple
	KindSet
	KindFrozenSet
	KindDict
	KindEnum
	KindUnion
	KindLiteral
	KindRecord

	// KindVariadic is the trailing "..." slot of a homogeneous tuple,
	// meaning "zero or more of the preceding type".
	KindVariadic

	// KindObject is a user-declared Go type, resolved structurally against
	// the built-in converters by its reflect kind.
	KindObject
)

var kindNames = map[Kind]string{
	KindAny:       "Any",
	KindString:    "str",
	KindBool:      "bool",
	KindInt:       "int",
	KindFloat:     "float",
	KindDecimal:   "decimal",
	KindBytes:     "bytes",
	KindByteArray: "bytearray",
	KindDate:      "date",
	KindDateTime:  "datetime",
	KindTimedelta: "timedelta",
	KindPath:      "Path",
	KindNone:      "None",
	KindList:      "list",
	KindTuple:     "tuple",
	KindSet:       "set",
	KindFrozenSet: "frozenset",
	KindDict:      "dict",
	KindRecord:    "record",
	KindVariadic:  "...",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// RecordField is one named field of a record type, in declaration order.
type RecordField struct {
	Name string
	Type *TypeInfo
}

// TypeInfo is the structural description of a declared type. It is consumed
// read-only: [ConverterFor] builds a converter tree mirroring it and never
// modifies it.
type TypeInfo struct {
	Kind Kind

	// Name overrides the rendered type name. Set for records, enum
	// references and literal constants; empty otherwise.
	Name string

	// Nested holds the ordered generic parameters: element types for
	// containers, member types for unions, constants for literal types.
	Nested []*TypeInfo

	// Fields and Required describe a record schema (KindRecord only).
	Fields   []RecordField
	Required []string

	// Enum is the enumeration referenced by a KindEnum descriptor.
	Enum *Enum

	// Value is the constant of a literal type member.
	Value any

	// Object is the user-declared Go type of a KindObject descriptor, and
	// is also set alongside built-in kinds when the declared type is a
	// named derivative (e.g. `type Celsius int`), so conversion can produce
	// the named type.
	Object reflect.Type
}

// NewType builds a descriptor for a built-in kind with optional nested
// parameter types.
func NewType(kind Kind, nested ...*TypeInfo) *TypeInfo {
	return &TypeInfo{Kind: kind, Nested: nested}
}

// ObjectType builds a descriptor for a user-declared Go type; it resolves
// against custom converters first and the built-in table structurally after.
func ObjectType(t reflect.Type) *TypeInfo {
	return &TypeInfo{Kind: KindObject, Object: t}
}

// UnionType builds a union descriptor over the given member types.
func UnionType(members ...*TypeInfo) *TypeInfo {
	return &TypeInfo{Kind: KindUnion, Nested: members}
}

// EnumType builds a descriptor for an enumeration.
func EnumType(enum *Enum) *TypeInfo {
	return &TypeInfo{Kind: KindEnum, Name: enum.Name, Enum: enum}
}

// LiteralType builds a literal descriptor whose only valid values are the
// given constants. Integer constants are normalized to int64 and float32
// to float64 so matching works against canonical converted values.
func LiteralType(constants ...any) *TypeInfo {
	nested := make([]*TypeInfo, len(constants))
	for i, c := range constants {
		nested[i] = literalMember(c)
	}
	return &TypeInfo{Kind: KindLiteral, Nested: nested}
}

// RecordType builds a record descriptor with a fixed field schema; required
// names the mandatory subset.
func RecordType(name string, fields []RecordField, required ...string) *TypeInfo {
	return &TypeInfo{Kind: KindRecord, Name: name, Fields: fields, Required: required}
}

func literalMember(constant any) *TypeInfo {
	info := &TypeInfo{Name: literalName(constant)}
	switch v := constant.(type) {
	case nil:
		info.Kind = KindNone
	case string:
		info.Kind = KindString
		info.Value = v
	case bool:
		info.Kind = KindBool
		info.Value = v
	case float32:
		info.Kind = KindFloat
		info.Value = float64(v)
	case float64:
		info.Kind = KindFloat
		info.Value = v
	default:
		if i, ok := asInt64(constant); ok {
			info.Kind = KindInt
			info.Value = i
		} else {
			info.Kind = KindUnknown
			info.Value = constant
		}
	}
	return info
}

func literalName(constant any) string {
	if s, ok := constant.(string); ok {
		return "'" + s + "'"
	}
	return displayValue(constant)
}

// IsUnion reports whether the descriptor should be treated as a union.
func (t *TypeInfo) IsUnion() bool {
	return t != nil && t.Kind == KindUnion
}

// IsRecord reports whether the descriptor carries a record field schema.
func (t *TypeInfo) IsRecord() bool {
	return t != nil && t.Kind == KindRecord
}

// String renders the full structural name, e.g. "list[int]",
// "dict[str, int]", "tuple[int, ...]" or "int or None".
func (t *TypeInfo) String() string {
	if t == nil {
		return "unknown"
	}
	switch t.Kind {
	case KindUnion:
		return t.joinNested(" or ")
	case KindLiteral:
		names := make([]string, len(t.Nested))
		for i, n := range t.Nested {
			names[i] = n.Name
		}
		return joinSeq(names, "", " or ")
	case KindObject:
		if t.Object != nil {
			return t.Object.Name()
		}
		return "unknown"
	}
	name := t.Name
	if name == "" {
		name = t.Kind.String()
	}
	if len(t.Nested) == 0 {
		return name
	}
	return fmt.Sprintf("%s[%s]", name, t.joinNested(", "))
}

func (t *TypeInfo) joinNested(sep string) string {
	names := make([]string, len(t.Nested))
	for i, n := range t.Nested {
		names[i] = n.String()
	}
	return strings.Join(names, sep)
}
