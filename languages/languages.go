// Package languages provides the locale vocabulary used when converting
// text to booleans: the lists of words recognized as true and false.
package languages

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A Language couples a BCP 47 tag with its boolean vocabulary. Words are
// stored in title case, the form input is normalized to before matching.
type Language struct {
	Tag          language.Tag
	TrueStrings  []string
	FalseStrings []string
}

var catalog = []Language{
	{
		Tag:          language.English,
		TrueStrings:  []string{"True", "Yes", "On"},
		FalseStrings: []string{"False", "No", "Off"},
	},
	{
		Tag:          language.German,
		TrueStrings:  []string{"Wahr", "Ja", "An", "Ein"},
		FalseStrings: []string{"Falsch", "Nein", "Aus"},
	},
	{
		Tag:          language.French,
		TrueStrings:  []string{"Vrai", "Oui", "Actif"},
		FalseStrings: []string{"Faux", "Non", "Inactif"},
	},
	{
		Tag:          language.Spanish,
		TrueStrings:  []string{"Verdadero", "Sí", "Si", "Activado"},
		FalseStrings: []string{"Falso", "No", "Desactivado"},
	},
	{
		Tag:          language.Portuguese,
		TrueStrings:  []string{"Verdadeiro", "Sim", "Ativado"},
		FalseStrings: []string{"Falso", "Não", "Nao", "Desativado"},
	},
}

var matcher = language.NewMatcher(catalogTags())

func catalogTags() []language.Tag {
	tags := make([]language.Tag, len(catalog))
	for i, l := range catalog {
		tags[i] = l.Tag
	}
	return tags
}

// Languages is the vocabulary of one or more activated languages. The words
// "True" and "False" and the digits "1" and "0" are recognized regardless of
// the active languages.
type Languages struct {
	active []Language
}

// New activates the languages closest to the given tags, resolved through a
// [language.Matcher], so requesting "en-US" or "pt-BR" finds the catalog
// entry. With no tags only English is active.
func New(tags ...language.Tag) *Languages {
	if len(tags) == 0 {
		return &Languages{active: catalog[:1]}
	}
	l := &Languages{}
	for _, tag := range tags {
		_, index, _ := matcher.Match(tag)
		entry := catalog[index]
		if !slices.ContainsFunc(l.active, func(a Language) bool { return a.Tag == entry.Tag }) {
			l.active = append(l.active, entry)
		}
	}
	return l
}

// TrueStrings returns every word recognized as true, in title case.
func (l *Languages) TrueStrings() []string {
	return l.collect("True", "1", func(lang Language) []string { return lang.TrueStrings })
}

// FalseStrings returns every word recognized as false, in title case.
func (l *Languages) FalseStrings() []string {
	return l.collect("False", "0", func(lang Language) []string { return lang.FalseStrings })
}

// IsTrue reports whether the title-cased word means true.
func (l *Languages) IsTrue(word string) bool {
	return slices.Contains(l.TrueStrings(), word)
}

// IsFalse reports whether the title-cased word means false.
func (l *Languages) IsFalse(word string) bool {
	return slices.Contains(l.FalseStrings(), word)
}

func (l *Languages) collect(always, digit string, words func(Language) []string) []string {
	collected := []string{always, digit}
	for _, lang := range l.active {
		for _, word := range words(lang) {
			if !slices.Contains(collected, word) {
				collected = append(collected, word)
			}
		}
	}
	return collected
}

var titleCaser = cases.Title(language.Und)

// Title normalizes a word the way vocabulary entries are stored: first
// letter of each word uppercased, the rest lowered, so "tRuE" and "TRUE"
// both become "True".
func Title(s string) string {
	return titleCaser.String(strings.ToLower(s))
}
