package typeconv

import (
	"fmt"
	"strings"
)

// displayValue renders a value for use inside error messages.
func displayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case string:
		return v
	}
	return fmt.Sprintf("%v", value)
}

// plural returns "s" when count is not one, for messages like
// "Expected 2 items".
func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

// seqToString renders items as "'a', 'b' and 'c'".
func seqToString(items []string) string {
	return joinSeq(items, "'", " and ")
}

// joinSeq renders items separated by ", " with lastSep before the final one,
// quoting every item with quote.
func joinSeq(items []string, quote, lastSep string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quote + item + quote
	}
	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	}
	head := strings.Join(quoted[:len(quoted)-1], ", ")
	return head + lastSep + quoted[len(quoted)-1]
}

// normalizeName lowercases a name and drops spaces, underscores and hyphens,
// so "Bad_Rabbit", "bad rabbit" and "BAD-RABBIT" all compare equal.
func normalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '_', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func namesMatch(a, b string) bool {
	return normalizeName(a) == normalizeName(b)
}

// stripNumberSeparators removes spaces and underscores used as digit
// separators in numeric input like "1 000 000" or "1_000_000".
func stripNumberSeparators(value string) string {
	value = strings.ReplaceAll(value, " ", "")
	return strings.ReplaceAll(value, "_", "")
}

// capitalize uppercases the first letter unless the caller already did.
func capitalize(kind string) string {
	if kind == "" {
		return kind
	}
	if strings.ToLower(kind) != kind {
		return kind
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}
