package morphemize

// CjkCharMorphemizer splits an expression into individual
// Chinese-Japanese-Korean logographic characters. Each CJK ideograph
// becomes one morpheme; non-CJK characters are dropped, never merged
// into neighboring tokens.
type CjkCharMorphemizer struct {
	memo *memo
}

func newCjkCharMorphemizer() *CjkCharMorphemizer {
	return &CjkCharMorphemizer{memo: newMemo(memoCapacity)}
}

// Morphemes implements Morphemizer. It never returns an error.
func (c *CjkCharMorphemizer) Morphemes(expression string) ([]Morpheme, error) {
	return c.memo.do(expression, c.segment)
}

func (c *CjkCharMorphemizer) segment(expression string) ([]Morpheme, error) {
	var morphs []Morpheme
	for _, r := range expression {
		if !isCJK(r) {
			continue
		}
		morphs = append(morphs, uniformMorpheme(string(r), POSCJKChar, POSUnknown))
	}
	return morphs, nil
}

// Description implements Morphemizer.
func (c *CjkCharMorphemizer) Description() string {
	return "CJK Characters"
}

// Name implements Morphemizer.
func (c *CjkCharMorphemizer) Name() string {
	return NameCjkChar
}
