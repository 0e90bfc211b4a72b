package faker

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Word returns a single filler word like "lantern".
func (f *Faker) Word() string {
	return f.pick(loremWords)
}

// Words returns n filler words. A non-positive n yields an empty slice.
func (f *Faker) Words(n int) []string {
	if n <= 0 {
		return nil
	}
	words := make([]string, n)
	for i := range words {
		words[i] = f.pick(loremWords)
	}
	return words
}

// Sentence returns a capitalized sentence of n filler words, like
// "Copper meadow thicket drift."
func (f *Faker) Sentence(n int) string {
	if n <= 0 {
		return ""
	}
	words := f.Words(n)
	words[0] = titleCaser.String(words[0])
	return strings.Join(words, " ") + "."
}

// Paragraph returns n sentences of four to ten words each.
func (f *Faker) Paragraph(n int) string {
	if n <= 0 {
		return ""
	}
	sentences := make([]string, n)
	for i := range sentences {
		length, _ := f.gen.Int(4, 10)
		sentences[i] = f.Sentence(int(length))
	}
	return strings.Join(sentences, " ")
}

// Title returns a title-cased phrase of n filler words, like
// "Saffron Ridge Hollow".
func (f *Faker) Title(n int) string {
	if n <= 0 {
		return ""
	}
	return titleCaser.String(strings.Join(f.Words(n), " "))
}
