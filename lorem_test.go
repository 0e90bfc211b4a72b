package faker

import (
	"slices"
	"strings"
	"testing"
	"unicode"
)

func TestWord(t *testing.T) {
	t.Parallel()

	f := New(30)
	for i := 0; i < 100; i++ {
		if w := f.Word(); !slices.Contains(loremWords, w) {
			t.Fatalf("Word() = %q, not in vocabulary", w)
		}
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	f := New(31)
	if got := f.Words(0); got != nil {
		t.Fatalf("Words(0) = %v, want nil", got)
	}
	if got := f.Words(-3); got != nil {
		t.Fatalf("Words(-3) = %v, want nil", got)
	}
	words := f.Words(7)
	if len(words) != 7 {
		t.Fatalf("Words(7) returned %d words", len(words))
	}
	for _, w := range words {
		if !slices.Contains(loremWords, w) {
			t.Fatalf("Words() element %q not in vocabulary", w)
		}
	}
}

func TestSentence(t *testing.T) {
	t.Parallel()

	f := New(32)
	if got := f.Sentence(0); got != "" {
		t.Fatalf("Sentence(0) = %q, want empty", got)
	}
	for i := 0; i < 50; i++ {
		s := f.Sentence(5)
		if !strings.HasSuffix(s, ".") {
			t.Fatalf("Sentence() = %q, want trailing period", s)
		}
		if !unicode.IsUpper(rune(s[0])) {
			t.Fatalf("Sentence() = %q, want leading capital", s)
		}
		if got := strings.Count(s, " "); got != 4 {
			t.Fatalf("Sentence(5) = %q, want five words", s)
		}
	}
}

func TestParagraph(t *testing.T) {
	t.Parallel()

	f := New(33)
	if got := f.Paragraph(0); got != "" {
		t.Fatalf("Paragraph(0) = %q, want empty", got)
	}
	for i := 0; i < 20; i++ {
		p := f.Paragraph(3)
		if got := strings.Count(p, "."); got != 3 {
			t.Fatalf("Paragraph(3) = %q, want three sentences", p)
		}
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	f := New(34)
	if got := f.Title(0); got != "" {
		t.Fatalf("Title(0) = %q, want empty", got)
	}
	for i := 0; i < 50; i++ {
		title := f.Title(3)
		words := strings.Fields(title)
		if len(words) != 3 {
			t.Fatalf("Title(3) = %q, want three words", title)
		}
		for _, w := range words {
			if !unicode.IsUpper(rune(w[0])) {
				t.Fatalf("Title() word %q not capitalized", w)
			}
		}
	}
}
