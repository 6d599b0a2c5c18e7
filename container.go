package typeconv

import (
	"fmt"
	"strconv"

	"github.com/menium878/typeconv/languages"
)

type listConverter struct{ base }

func newListConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &listConverter{}
	c.init(c, info, "list", customs, langs)
	return c
}

func (c *listConverter) handlesValue(value any) bool {
	if _, ok := value.(string); ok {
		return true
	}
	_, ok := asSequence(value)
	return ok
}

func (c *listConverter) noConversionNeeded(value any) bool {
	if !c.base.noConversionNeeded(value) {
		return false
	}
	if len(c.nested) == 0 {
		return true
	}
	items, _ := asSequence(value)
	return allSatisfy(c.nested[0], items)
}

func (c *listConverter) convertOther(value any) (any, error) {
	items, _ := asSequence(value)
	return c.convertItems(append([]any{}, items...))
}

func (c *listConverter) convertText(value string) (any, error) {
	parsed, err := evalLiteral(value, KindList)
	if err != nil {
		return nil, err
	}
	return c.convertItems(parsed.([]any))
}

func (c *listConverter) convertItems(items []any) (any, error) {
	if len(c.nested) == 0 {
		return items, nil
	}
	return convertIndexed(c.nested[0], items)
}

// convertIndexed converts every element with the same converter, naming the
// failing element by its 0-based index.
func convertIndexed(converter Converter, items []any) ([]any, error) {
	converted := make([]any, len(items))
	for i, item := range items {
		out, err := converter.Convert(item, strconv.Itoa(i), "Item")
		if err != nil {
			return nil, err
		}
		converted[i] = out
	}
	return converted, nil
}

func allSatisfy(converter Converter, items []any) bool {
	for _, item := range items {
		if !converter.noConversionNeeded(item) {
			return false
		}
	}
	return true
}

type tupleConverter struct{ base }

func newTupleConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &tupleConverter{}
	c.init(c, info, "tuple", customs, langs)
	return c
}

// homogeneous reports whether the tuple is "zero or more of one type",
// marked by a trailing variadic slot in the declared parameters.
func (c *tupleConverter) homogeneous() bool {
	n := c.info.Nested
	return len(n) > 0 && n[len(n)-1].Kind == KindVariadic
}

func (c *tupleConverter) handlesValue(value any) bool {
	if _, ok := value.(string); ok {
		return true
	}
	_, ok := asSequence(value)
	return ok
}

func (c *tupleConverter) noConversionNeeded(value any) bool {
	if !c.base.noConversionNeeded(value) {
		return false
	}
	if len(c.nested) == 0 {
		return true
	}
	items, _ := asSequence(value)
	if c.homogeneous() {
		return allSatisfy(c.nested[0], items)
	}
	if len(items) != len(c.nested) {
		return false
	}
	for i, item := range items {
		if !c.nested[i].noConversionNeeded(item) {
			return false
		}
	}
	return true
}

func (c *tupleConverter) convertOther(value any) (any, error) {
	items, _ := asSequence(value)
	return c.convertItems(append(Tuple{}, items...))
}

func (c *tupleConverter) convertText(value string) (any, error) {
	parsed, err := evalLiteral(value, KindTuple)
	if err != nil {
		return nil, err
	}
	return c.convertItems(parsed.(Tuple))
}

func (c *tupleConverter) convertItems(items Tuple) (any, error) {
	if len(c.nested) == 0 {
		return items, nil
	}
	if c.homogeneous() {
		converted, err := convertIndexed(c.nested[0], items)
		if err != nil {
			return nil, err
		}
		return Tuple(converted), nil
	}
	if len(items) != len(c.nested) {
		return nil, fmt.Errorf("Expected %d item%s, got %d.",
			len(c.nested), plural(len(c.nested)), len(items))
	}
	converted := make(Tuple, len(items))
	for i, item := range items {
		out, err := c.nested[i].Convert(item, strconv.Itoa(i), "Item")
		if err != nil {
			return nil, err
		}
		converted[i] = out
	}
	return converted, nil
}

// The trailing variadic slot has no converter of its own to validate.
func (c *tupleConverter) Validate() error {
	nested := c.nested
	if c.homogeneous() {
		nested = nested[:len(nested)-1]
	}
	for _, converter := range nested {
		if err := converter.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type setConverter struct{ base }

func newSetConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &setConverter{}
	c.init(c, info, "set", customs, langs)
	return c
}

func (c *setConverter) handlesValue(value any) bool {
	if _, ok := value.(string); ok {
		return true
	}
	_, ok := asContainer(value)
	return ok
}

func (c *setConverter) noConversionNeeded(value any) bool {
	if !c.base.noConversionNeeded(value) {
		return false
	}
	if len(c.nested) == 0 {
		return true
	}
	items, _ := asContainer(value)
	return allSatisfy(c.nested[0], items)
}

func (c *setConverter) convertOther(value any) (any, error) {
	items, _ := asContainer(value)
	return c.convertItems(items)
}

func (c *setConverter) convertText(value string) (any, error) {
	// The literal syntax has no empty-set literal, so "set()" is special.
	if value == "set()" {
		return Set{}, nil
	}
	parsed, err := evalLiteral(value, KindSet)
	if err != nil {
		return nil, err
	}
	items, _ := asContainer(parsed)
	return c.convertItems(items)
}

func (c *setConverter) convertItems(items []any) (any, error) {
	set := make(Set, len(items))
	for _, item := range items {
		if len(c.nested) > 0 {
			converted, err := c.nested[0].Convert(item, "", "Item")
			if err != nil {
				return nil, err
			}
			item = converted
		}
		if !hashable(item) {
			return nil, fmt.Errorf("Item '%s' is not hashable.", displayValue(item))
		}
		set[item] = struct{}{}
	}
	return set, nil
}

type frozenSetConverter struct{ setConverter }

func newFrozenSetConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &frozenSetConverter{}
	c.init(c, info, "frozenset", customs, langs)
	return c
}

func (c *frozenSetConverter) convertText(value string) (any, error) {
	// "set()" is already special-cased by the delegated set conversion
	if value == "frozenset()" {
		return FrozenSet{}, nil
	}
	converted, err := c.setConverter.convertText(value)
	if err != nil {
		return nil, err
	}
	return FrozenSet(converted.(Set)), nil
}

func (c *frozenSetConverter) convertOther(value any) (any, error) {
	converted, err := c.setConverter.convertOther(value)
	if err != nil {
		return nil, err
	}
	return FrozenSet(converted.(Set)), nil
}

type dictionaryConverter struct{ base }

func newDictionaryConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &dictionaryConverter{}
	c.init(c, info, "dictionary", customs, langs)
	return c
}

func (c *dictionaryConverter) handlesValue(value any) bool {
	if _, ok := value.(string); ok {
		return true
	}
	return isMapping(value)
}

func (c *dictionaryConverter) noConversionNeeded(value any) bool {
	if !c.base.noConversionNeeded(value) {
		return false
	}
	if len(c.nested) < 2 {
		return true
	}
	entries, _ := asMapping(value)
	for _, entry := range entries {
		if !c.nested[0].noConversionNeeded(entry.key) {
			return false
		}
		if !c.nested[1].noConversionNeeded(entry.value) {
			return false
		}
	}
	return true
}

func (c *dictionaryConverter) convertOther(value any) (any, error) {
	entries, _ := asMapping(value)
	return c.convertEntries(entries)
}

func (c *dictionaryConverter) convertText(value string) (any, error) {
	parsed, err := evalLiteral(value, KindDict)
	if err != nil {
		return nil, err
	}
	entries, _ := asMapping(parsed)
	return c.convertEntries(entries)
}

func (c *dictionaryConverter) convertEntries(entries []mapEntry) (any, error) {
	converted := make(map[any]any, len(entries))
	for _, entry := range entries {
		key, value := entry.key, entry.value
		if len(c.nested) >= 2 {
			var err error
			if key, err = c.nested[0].Convert(key, "", "Key"); err != nil {
				return nil, err
			}
			// the value is named after its original key
			if value, err = c.nested[1].Convert(value, displayValue(entry.key), "Item"); err != nil {
				return nil, err
			}
		}
		if !hashable(key) {
			return nil, fmt.Errorf("Key '%s' is not hashable.", displayValue(key))
		}
		converted[key] = value
	}
	return converted, nil
}
