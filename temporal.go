package typeconv

import (
	"errors"

	"github.com/menium878/typeconv/dates"
	"github.com/menium878/typeconv/languages"
)

type dateTimeConverter struct{ base }

func newDateTimeConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &dateTimeConverter{}
	c.init(c, info, "datetime", customs, langs)
	return c
}

func (c *dateTimeConverter) handlesValue(value any) bool {
	if _, ok := value.(string); ok {
		return true
	}
	return isNumber(value)
}

func (c *dateTimeConverter) convertText(value string) (any, error) {
	return dates.ConvertDate(value)
}

func (c *dateTimeConverter) convertOther(value any) (any, error) {
	return dates.ConvertDate(value)
}

type dateConverter struct{ base }

func newDateConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &dateConverter{}
	c.init(c, info, "date", customs, langs)
	return c
}

func (c *dateConverter) convertText(value string) (any, error) {
	t, err := dates.ConvertDate(value)
	if err != nil {
		return nil, err
	}
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		return nil, errors.New("Value is datetime, not date.")
	}
	return dates.DateOf(t), nil
}

type timedeltaConverter struct{ base }

func newTimedeltaConverter(info *TypeInfo, customs *CustomConverters, langs *languages.Languages) Converter {
	c := &timedeltaConverter{}
	c.init(c, info, "timedelta", customs, langs)
	return c
}

func (c *timedeltaConverter) handlesValue(value any) bool {
	if _, ok := value.(string); ok {
		return true
	}
	return isNumber(value)
}

func (c *timedeltaConverter) convertText(value string) (any, error) {
	return dates.ConvertDuration(value)
}

func (c *timedeltaConverter) convertOther(value any) (any, error) {
	return dates.ConvertDuration(value)
}
