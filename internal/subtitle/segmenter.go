package subtitle

import (
	"strings"
)

// Segmenter splits subtitle text into natural display units. Sentences
// are cut at terminal marks first; sentences still longer than the
// length limit are cut again at the last secondary mark that fits, or
// hard-cut at the limit when none does.
type Segmenter struct {
	TerminalMarks  []rune
	SecondaryMarks []rune
}

// defaults target CJK punctuation
func NewSegmenter() *Segmenter {
	return &Segmenter{
		TerminalMarks:  []rune("。！？；"),
		SecondaryMarks: []rune("，"),
	}
}

// Segment returns the ordered non-empty units of text, each at most
// maxLength runes long. The result never has fewer than one unit.
func (s *Segmenter) Segment(text string, maxLength int) []string {
	if maxLength < 1 {
		maxLength = 1
	}

	var units []string
	for _, sentence := range s.splitSentences(text) {
		units = append(units, s.refine(sentence, maxLength)...)
	}

	if len(units) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	return units
}

// splits text after each terminal mark, keeping the mark with the
// sentence it closes
func (s *Segmenter) splitSentences(text string) []string {
	var sentences []string
	var current []rune

	for _, r := range text {
		current = append(current, r)
		if s.isTerminal(r) {
			sentences = append(sentences, string(current))
			current = nil
		}
	}
	if len(current) > 0 {
		sentences = append(sentences, string(current))
	}

	return sentences
}

// cuts one sentence into units no longer than maxLength runes,
// dropping units that are empty after trimming
func (s *Segmenter) refine(sentence string, maxLength int) []string {
	var units []string

	rest := []rune(strings.TrimSpace(sentence))
	for len(rest) > maxLength {
		var unit string
		unit, rest = cutUnit(rest, maxLength, s.SecondaryMarks)
		if unit != "" {
			units = append(units, unit)
		}
	}

	if leftover := strings.TrimSpace(string(rest)); leftover != "" {
		units = append(units, leftover)
	}

	return units
}

// cutUnit takes one unit off the front of text: through the last
// secondary mark within the first maxLength runes, or exactly
// maxLength runes when no mark is present. The returned unit is
// trimmed of surrounding whitespace.
func cutUnit(text []rune, maxLength int, secondaryMarks []rune) (string, []rune) {
	cut := maxLength
	for i := maxLength - 1; i >= 0; i-- {
		if containsRune(secondaryMarks, text[i]) {
			cut = i + 1
			break
		}
	}

	unit := strings.TrimSpace(string(text[:cut]))
	rest := []rune(strings.TrimSpace(string(text[cut:])))
	return unit, rest
}

func (s *Segmenter) isTerminal(r rune) bool {
	return containsRune(s.TerminalMarks, r)
}

func containsRune(set []rune, r rune) bool {
	for _, m := range set {
		if m == r {
			return true
		}
	}
	return false
}
