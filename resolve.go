package typeconv

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/menium878/typeconv/languages"
)

// enumConverter matches input against an enumeration's members: by exact
// name, by case- and separator-insensitive name, and for int-backed
// enumerations by numeric value.
type enumConverter struct{ base }

func newEnumConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &enumConverter{}
	c.init(c, info, info.Enum.Name, customs, langs)
	return c
}

func (c *enumConverter) handlesValue(value any) bool {
	if _, ok := value.(string); ok {
		return true
	}
	return c.info.Enum.IntBacked() && isInteger(value)
}

func (c *enumConverter) convertOther(value any) (any, error) {
	number, _ := asInt64(value)
	return c.findByIntValue(number)
}

func (c *enumConverter) convertText(value string) (any, error) {
	enum := c.info.Enum
	if member, ok := enum.Member(value); ok {
		return member, nil
	}
	return c.findByNormalizedNameOrIntValue(value)
}

func (c *enumConverter) findByNormalizedNameOrIntValue(value string) (any, error) {
	enum := c.info.Enum
	var matches []string
	for _, name := range enum.memberNames() {
		if namesMatch(name, value) {
			matches = append(matches, name)
		}
	}
	if len(matches) == 1 {
		member, _ := enum.Member(matches[0])
		return member, nil
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("%s has multiple members matching '%s'. Available: %s",
			c.typeName, value, seqToString(matches))
	}
	members := enum.memberNames()
	if enum.IntBacked() {
		if number, err := strconv.ParseInt(value, 10, 64); err == nil {
			if member, err := c.findByIntValue(number); err == nil {
				return member, nil
			}
		}
		// list values alongside names when numeric lookup was possible
		for i, name := range members {
			member, _ := enum.Member(name)
			members[i] = fmt.Sprintf("%s (%v)", name, member.Value)
		}
	}
	return nil, fmt.Errorf("%s does not have member '%s'. Available: %s",
		c.typeName, value, seqToString(members))
}

func (c *enumConverter) findByIntValue(value int64) (any, error) {
	enum := c.info.Enum
	for _, member := range enum.Members {
		if memberValue, ok := asInt64(member.Value); ok && memberValue == value {
			return member, nil
		}
	}
	values := make([]int64, 0, len(enum.Members))
	for _, member := range enum.Members {
		if memberValue, ok := asInt64(member.Value); ok {
			values = append(values, memberValue)
		}
	}
	slices.Sort(values)
	rendered := make([]string, len(values))
	for i, v := range values {
		rendered[i] = strconv.FormatInt(v, 10)
	}
	return nil, fmt.Errorf("%s does not have value '%d'. Available: %s",
		c.typeName, value, seqToString(rendered))
}

// unionConverter tries each member type's converter in declared order and
// returns the first success.
type unionConverter struct{ base }

func newUnionConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &unionConverter{}
	c.init(c, info, "", customs, langs)
	names := make([]string, len(c.nested))
	for i, nested := range c.nested {
		names[i] = nested.TypeName()
	}
	c.typeName = joinSeq(names, "", " or ")
	return c
}

func (c *unionConverter) handlesValue(any) bool { return true }

func (c *unionConverter) noConversionNeeded(value any) bool {
	for _, nested := range c.nested {
		if nested.noConversionNeeded(value) {
			return true
		}
	}
	return false
}

func (c *unionConverter) convertText(value string) (any, error) {
	return c.resolve(value)
}

func (c *unionConverter) convertOther(value any) (any, error) {
	return c.resolve(value)
}

func (c *unionConverter) resolve(value any) (any, error) {
	unknownMembers := false
	for _, nested := range c.nested {
		if isUnknown(nested) {
			unknownMembers = true
			continue
		}
		if converted, err := nested.Convert(value, "", ""); err == nil {
			return converted, nil
		}
	}
	if unknownMembers {
		// A union with an unresolvable member is permissive: the value
		// passes through unchanged instead of failing.
		return value, nil
	}
	return nil, errSilent
}

// literalConverter matches input against an explicit set of allowed
// constants.
type literalConverter struct{ base }

func newLiteralConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &literalConverter{}
	c.init(c, info, "", customs, langs)
	c.typeName = info.String()
	return c
}

func (c *literalConverter) handlesValue(any) bool { return true }

func (c *literalConverter) noConversionNeeded(value any) bool {
	for _, member := range c.info.Nested {
		if literalEqual(value, member.Value) {
			return true
		}
	}
	return false
}

func (c *literalConverter) convertText(value string) (any, error) {
	return c.resolve(value)
}

func (c *literalConverter) convertOther(value any) (any, error) {
	return c.resolve(value)
}

func (c *literalConverter) resolve(value any) (any, error) {
	var matches []any
	for i, member := range c.info.Nested {
		expected := member.Value
		if literalEqual(value, expected) {
			return expected, nil
		}
		converted, err := c.nested[i].Convert(value, "", "")
		if err != nil {
			continue
		}
		if expectedText, ok := expected.(string); ok {
			if convertedText, ok := converted.(string); ok && namesMatch(convertedText, expectedText) {
				matches = append(matches, expected)
			}
		} else if literalEqual(converted, expected) {
			matches = append(matches, expected)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, errSilent
	}
	return nil, errors.New("No unique match found.")
}

// literalEqual compares by value and exact runtime type, so int64(1) does
// not match the constant true and vice versa.
func literalEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !hashable(a) || !hashable(b) {
		return false
	}
	return a == b
}

func isUnknown(c Converter) bool {
	_, ok := c.(*unknownConverter)
	return ok
}
