package typeconv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var errBadExpression = errors.New("Invalid expression.")

// evalLiteral parses a restricted literal expression and checks that it
// yields the expected container kind. The grammar covers quoted strings,
// signed numbers (including 0x/0o/0b prefixes and underscore separators),
// True/False/None, and arbitrarily nested lists, tuples, sets and dicts.
// It never evaluates anything beyond literal values.
func evalLiteral(text string, expected Kind) (any, error) {
	p := &literalParser{text: text}
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.text) {
		return nil, errBadExpression
	}
	if !literalKindMatches(value, expected) {
		return nil, fmt.Errorf("Value is %s, not %s.", typeNameOf(value), kindNames[expected])
	}
	return value, nil
}

func literalKindMatches(value any, expected Kind) bool {
	switch expected {
	case KindList:
		_, ok := value.([]any)
		return ok
	case KindTuple:
		_, ok := value.(Tuple)
		return ok
	case KindSet:
		_, ok := value.(Set)
		return ok
	case KindDict:
		_, ok := value.(map[any]any)
		return ok
	}
	return true
}

type literalParser struct {
	text string
	pos  int
}

func (p *literalParser) skipSpace() {
	for p.pos < len(p.text) {
		r, size := utf8.DecodeRuneInString(p.text[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *literalParser) peek() byte {
	if p.pos >= len(p.text) {
		return 0
	}
	return p.text[p.pos]
}

func (p *literalParser) parseValue() (any, error) {
	p.skipSpace()
	switch c := p.peek(); {
	case c == '\'' || c == '"':
		return p.parseString()
	case c == '[':
		p.pos++
		items, _, err := p.parseItems(']')
		if err != nil {
			return nil, err
		}
		return items, nil
	case c == '(':
		return p.parseTuple()
	case c == '{':
		return p.parseSetOrDict()
	case c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.':
		return p.parseNumber()
	case c == 'T' || c == 'F' || c == 'N':
		return p.parseIdentifier()
	}
	return nil, errBadExpression
}

// parseItems parses comma-separated values up to the closing character.
// Trailing commas are allowed. It also reports whether a trailing comma was
// present, which parseTuple needs to tell (1,) from the grouped (1).
func (p *literalParser) parseItems(close byte) ([]any, bool, error) {
	items := []any{}
	trailingComma := false
	for {
		p.skipSpace()
		if p.peek() == close {
			p.pos++
			return items, trailingComma, nil
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, false, err
		}
		items = append(items, value)
		trailingComma = false
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			trailingComma = true
		} else if p.peek() != close {
			return nil, false, errBadExpression
		}
	}
}

func (p *literalParser) parseTuple() (any, error) {
	p.pos++
	items, trailingComma, err := p.parseItems(')')
	if err != nil {
		return nil, err
	}
	// A single parenthesized value without a comma is just grouping.
	if len(items) == 1 && !trailingComma {
		return items[0], nil
	}
	return Tuple(items), nil
}

func (p *literalParser) parseSetOrDict() (any, error) {
	p.pos++
	p.skipSpace()
	if p.peek() == '}' {
		// The literal syntax has no empty-set literal; {} is an empty dict.
		p.pos++
		return map[any]any{}, nil
	}
	first, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() == ':' {
		return p.parseDict(first)
	}
	return p.parseSet(first)
}

func (p *literalParser) parseSet(first any) (any, error) {
	set := Set{}
	if err := addToSet(set, first); err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '}':
			p.pos++
			return set, nil
		case ',':
			p.pos++
			p.skipSpace()
			if p.peek() == '}' {
				p.pos++
				return set, nil
			}
			value, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			if err := addToSet(set, value); err != nil {
				return nil, err
			}
		default:
			return nil, errBadExpression
		}
	}
}

func (p *literalParser) parseDict(firstKey any) (any, error) {
	dict := map[any]any{}
	key := firstKey
	for {
		p.skipSpace()
		if p.peek() != ':' {
			return nil, errBadExpression
		}
		p.pos++
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if !hashable(key) {
			return nil, errBadExpression
		}
		dict[key] = value
		p.skipSpace()
		switch p.peek() {
		case '}':
			p.pos++
			return dict, nil
		case ',':
			p.pos++
			p.skipSpace()
			if p.peek() == '}' {
				p.pos++
				return dict, nil
			}
			key, err = p.parseValue()
			if err != nil {
				return nil, err
			}
		default:
			return nil, errBadExpression
		}
	}
}

func addToSet(set Set, value any) error {
	if !hashable(value) {
		return errBadExpression
	}
	set[value] = struct{}{}
	return nil
}

func (p *literalParser) parseString() (any, error) {
	quote := p.text[p.pos]
	p.pos++
	var b strings.Builder
	for p.pos < len(p.text) {
		r, size := utf8.DecodeRuneInString(p.text[p.pos:])
		p.pos += size
		switch {
		case byte(r) == quote && size == 1:
			return b.String(), nil
		case r == '\\':
			if err := p.parseEscape(&b); err != nil {
				return nil, err
			}
		default:
			b.WriteRune(r)
		}
	}
	return nil, errBadExpression
}

func (p *literalParser) parseEscape(b *strings.Builder) error {
	if p.pos >= len(p.text) {
		return errBadExpression
	}
	c := p.text[p.pos]
	p.pos++
	switch c {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '0':
		b.WriteByte(0)
	case '\\', '\'', '"':
		b.WriteByte(c)
	case 'x':
		return p.parseHexEscape(b, 2)
	case 'u':
		return p.parseHexEscape(b, 4)
	case 'U':
		return p.parseHexEscape(b, 8)
	default:
		return errBadExpression
	}
	return nil
}

func (p *literalParser) parseHexEscape(b *strings.Builder, digits int) error {
	if p.pos+digits > len(p.text) {
		return errBadExpression
	}
	code, err := strconv.ParseUint(p.text[p.pos:p.pos+digits], 16, 32)
	if err != nil {
		return errBadExpression
	}
	p.pos += digits
	b.WriteRune(rune(code))
	return nil
}

func (p *literalParser) parseNumber() (any, error) {
	start := p.pos
	if c := p.peek(); c == '+' || c == '-' {
		p.pos++
	}
	prev := byte(0)
	for p.pos < len(p.text) {
		c := p.text[p.pos]
		isDigitChar := c >= '0' && c <= '9' ||
			c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
			c == '_' || c == '.'
		isExponentSign := (c == '+' || c == '-') && (prev == 'e' || prev == 'E')
		if !isDigitChar && !isExponentSign {
			break
		}
		prev = c
		p.pos++
	}
	token := p.text[start:p.pos]
	if token == "" || token == "+" || token == "-" {
		return nil, errBadExpression
	}
	lower := strings.ToLower(token)
	hasPrefix := strings.Contains(lower, "0x") ||
		strings.Contains(lower, "0o") || strings.Contains(lower, "0b")
	if !hasPrefix && (strings.ContainsAny(token, ".") || strings.ContainsAny(lower, "e")) {
		f, err := strconv.ParseFloat(strings.ReplaceAll(token, "_", ""), 64)
		if err != nil {
			return nil, errBadExpression
		}
		return f, nil
	}
	// base 0 understands the 0x/0o/0b prefixes and underscore separators
	n, err := strconv.ParseInt(token, 0, 64)
	if err != nil {
		return nil, errBadExpression
	}
	return n, nil
}

func (p *literalParser) parseIdentifier() (any, error) {
	for _, ident := range []string{"True", "False", "None"} {
		if strings.HasPrefix(p.text[p.pos:], ident) {
			p.pos += len(ident)
			switch ident {
			case "True":
				return true, nil
			case "False":
				return false, nil
			}
			return nil, nil
		}
	}
	return nil, errBadExpression
}
