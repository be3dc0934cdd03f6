package morphemize

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/words"
)

// SpaceMorphemizer segments languages that separate words with spaces
// (English, German, Spanish, ...). It is a general-use strategy and
// cannot derive a base form from an inflection, so every text field of
// a produced morpheme carries the same lowercased token.
type SpaceMorphemizer struct {
	memo *memo
}

func newSpaceMorphemizer() *SpaceMorphemizer {
	return &SpaceMorphemizer{memo: newMemo(memoCapacity)}
}

// Morphemes implements Morphemizer. It never returns an error.
func (s *SpaceMorphemizer) Morphemes(expression string) ([]Morpheme, error) {
	return s.memo.do(expression, s.segment)
}

// segment splits expression at Unicode (UAX #29) word boundaries and
// emits one morpheme per surviving token. A token survives only if it
// contains a letter and no digit: a digit anywhere disqualifies the
// whole token rather than truncating it, and punctuation-only or
// whitespace segments are dropped. Underscore joins adjacent words
// under UAX #29, which the Vietnamese strategy relies on.
func (s *SpaceMorphemizer) segment(expression string) ([]Morpheme, error) {
	var morphs []Morpheme
	seg := words.NewSegmenter([]byte(expression))
	for seg.Next() {
		token := string(seg.Bytes())
		if !wordToken(token) {
			continue
		}
		morphs = append(morphs, uniformMorpheme(strings.ToLower(token), POSUnknown, POSUnknown))
	}
	// The segmenter only errors on a nil split func; Next has consumed
	// the whole input by the time we get here.
	return morphs, nil
}

// wordToken reports whether token should be emitted as a morpheme.
func wordToken(token string) bool {
	hasLetter := false
	for _, r := range token {
		if unicode.IsDigit(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// Description implements Morphemizer.
func (s *SpaceMorphemizer) Description() string {
	return "Language w/ Spaces"
}

// Name implements Morphemizer.
func (s *SpaceMorphemizer) Name() string {
	return NameSpace
}
