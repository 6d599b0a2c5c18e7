package typeconv

import (
	"math"
	"reflect"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/menium878/typeconv/dates"
)

// The canonical runtime representations for converted values. Conversion
// accepts looser shapes on input (any integer width, float32, string-keyed
// maps) but always produces these.
type (
	// Tuple is a fixed sequence of values, distinct from a plain []any list.
	Tuple []any

	// Set is an unordered collection of unique values.
	Set map[any]struct{}

	// FrozenSet is a Set that is conceptually immutable after conversion.
	FrozenSet map[any]struct{}

	// ByteArray is a mutable byte sequence, distinct from immutable bytes.
	ByteArray []byte

	// Path is a filesystem path.
	Path string
)

// NewSet builds a Set from the given values.
func NewSet(values ...any) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// NewFrozenSet builds a FrozenSet from the given values.
func NewFrozenSet(values ...any) FrozenSet {
	s := make(FrozenSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}

func asFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	if i, ok := asInt64(value); ok {
		return float64(i), true
	}
	return 0, false
}

func isInteger(value any) bool {
	_, ok := asInt64(value)
	return ok
}

func isNumber(value any) bool {
	_, ok := asFloat64(value)
	return ok
}

// asSequence interprets the value as an ordered sequence. Strings and byte
// slices are deliberately not sequences here.
func asSequence(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case Tuple:
		return v, true
	}
	return nil, false
}

// asContainer interprets the value as an iterable collection of elements,
// covering sequences and both set flavors.
func asContainer(value any) ([]any, bool) {
	switch v := value.(type) {
	case Set:
		items := make([]any, 0, len(v))
		for item := range v {
			items = append(items, item)
		}
		return items, true
	case FrozenSet:
		items := make([]any, 0, len(v))
		for item := range v {
			items = append(items, item)
		}
		return items, true
	}
	return asSequence(value)
}

type mapEntry struct {
	key   any
	value any
}

// asMapping interprets the value as a key/value mapping.
func asMapping(value any) ([]mapEntry, bool) {
	switch v := value.(type) {
	case map[any]any:
		entries := make([]mapEntry, 0, len(v))
		for k, item := range v {
			entries = append(entries, mapEntry{k, item})
		}
		return entries, true
	case map[string]any:
		entries := make([]mapEntry, 0, len(v))
		for k, item := range v {
			entries = append(entries, mapEntry{k, item})
		}
		return entries, true
	}
	return nil, false
}

func isMapping(value any) bool {
	_, ok := asMapping(value)
	return ok
}

// hashable reports whether a value can be used as a map key or set element.
func hashable(value any) bool {
	return value == nil || reflect.TypeOf(value).Comparable()
}

// typeNameOf names the runtime shape of a value the way conversion errors
// talk about types.
func typeNameOf(value any) string {
	switch value.(type) {
	case nil:
		return "None"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float32, float64:
		return "float"
	case *apd.Decimal:
		return "decimal"
	case []byte:
		return "bytes"
	case ByteArray:
		return "bytearray"
	case []any:
		return "list"
	case Tuple:
		return "tuple"
	case Set:
		return "set"
	case FrozenSet:
		return "frozenset"
	case map[any]any, map[string]any:
		return "dictionary"
	case time.Time:
		return "datetime"
	case dates.Date:
		return "date"
	case time.Duration:
		return "timedelta"
	case Path:
		return "Path"
	case EnumMember:
		return "enum"
	}
	if isInteger(value) {
		return "integer"
	}
	return reflect.TypeOf(value).String()
}
