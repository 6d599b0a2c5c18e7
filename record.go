package typeconv

import (
	"fmt"
	"slices"

	"github.com/menium878/typeconv/languages"
)

// recordConverter handles record types: mappings with a fixed, named field
// schema where a subset of fields is mandatory.
type recordConverter struct {
	base
	fields   map[string]Converter
	order    []string
	required map[string]struct{}
}

func newRecordConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &recordConverter{
		fields:   make(map[string]Converter, len(info.Fields)),
		required: make(map[string]struct{}, len(info.Required)),
	}
	c.init(c, info, info.Name, customs, langs)
	for _, field := range info.Fields {
		c.fields[field.Name] = ConverterFor(field.Type, customs, langs)
		c.order = append(c.order, field.Name)
	}
	for _, name := range info.Required {
		c.required[name] = struct{}{}
	}
	return c
}

func (c *recordConverter) Validate() error {
	for _, name := range c.order {
		if err := c.fields[name].Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *recordConverter) handlesValue(value any) bool {
	if _, ok := value.(string); ok {
		return true
	}
	return isMapping(value)
}

func (c *recordConverter) noConversionNeeded(value any) bool {
	entries, ok := asMapping(value)
	if !ok {
		return false
	}
	present := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		name, isString := entry.key.(string)
		if !isString {
			return false
		}
		converter, declared := c.fields[name]
		if !declared || !converter.noConversionNeeded(entry.value) {
			return false
		}
		present[name] = struct{}{}
	}
	for name := range c.required {
		if _, ok := present[name]; !ok {
			return false
		}
	}
	return true
}

func (c *recordConverter) convertOther(value any) (any, error) {
	entries, _ := asMapping(value)
	return c.convertEntries(entries)
}

func (c *recordConverter) convertText(value string) (any, error) {
	parsed, err := evalLiteral(value, KindDict)
	if err != nil {
		return nil, err
	}
	entries, _ := asMapping(parsed)
	return c.convertEntries(entries)
}

func (c *recordConverter) convertEntries(entries []mapEntry) (any, error) {
	converted := make(map[string]any, len(entries))
	var notAllowed []string
	for _, entry := range entries {
		name, isString := entry.key.(string)
		if !isString {
			notAllowed = append(notAllowed, displayValue(entry.key))
			continue
		}
		converter, declared := c.fields[name]
		if !declared {
			notAllowed = append(notAllowed, name)
			continue
		}
		value, err := converter.Convert(entry.value, name, "Item")
		if err != nil {
			return nil, err
		}
		converted[name] = value
	}
	if len(notAllowed) > 0 {
		return nil, c.notAllowedError(notAllowed, converted)
	}
	var missing []string
	for name := range c.required {
		if _, ok := converted[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, fmt.Errorf("Required item%s %s missing.",
			plural(len(missing)), seqToString(missing))
	}
	return converted, nil
}

// Unknown keys are reported together, along with the declared fields the
// input did not use and could have.
func (c *recordConverter) notAllowedError(notAllowed []string, present map[string]any) error {
	slices.Sort(notAllowed)
	message := fmt.Sprintf("Item%s %s not allowed.",
		plural(len(notAllowed)), seqToString(notAllowed))
	var available []string
	for _, name := range c.order {
		if _, ok := present[name]; !ok {
			available = append(available, name)
		}
	}
	if len(available) > 0 {
		slices.Sort(available)
		message += fmt.Sprintf(" Available item%s: %s",
			plural(len(available)), seqToString(available))
	}
	return fmt.Errorf("%s", message)
}
