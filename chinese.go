package morphemize

import "fmt"

// WordFlag is one (word, part-of-speech flag) pair returned by a
// Chinese POS segmenter.
type WordFlag struct {
	Word string
	Flag string
}

// ChineseSegmenter is the boundary to an external Chinese
// part-of-speech segmenter.
type ChineseSegmenter interface {
	Cut(text string) ([]WordFlag, error)
}

// ChineseMorphemizer delegates segmentation to a Chinese POS
// segmenter. The input is reduced to CJK ideographs first so that
// punctuation, Latin text and whitespace cannot confuse the segmenter.
type ChineseMorphemizer struct {
	segmenter ChineseSegmenter
	memo      *memo
}

func newChineseMorphemizer(segmenter ChineseSegmenter) *ChineseMorphemizer {
	return &ChineseMorphemizer{segmenter: segmenter, memo: newMemo(memoCapacity)}
}

// Morphemes implements Morphemizer. A segmenter failure is surfaced to
// the caller; nothing is cached in that case.
func (c *ChineseMorphemizer) Morphemes(expression string) ([]Morpheme, error) {
	return c.memo.do(expression, c.segment)
}

func (c *ChineseMorphemizer) segment(expression string) ([]Morpheme, error) {
	if c.segmenter == nil {
		return nil, fmt.Errorf("chinese: no segmenter available")
	}
	pairs, err := c.segmenter.Cut(filterCJK(expression))
	if err != nil {
		return nil, fmt.Errorf("chinese: cut: %w", err)
	}
	morphs := make([]Morpheme, 0, len(pairs))
	for _, p := range pairs {
		morphs = append(morphs, uniformMorpheme(p.Word, p.Flag, POSUnknown))
	}
	return morphs, nil
}

// Description implements Morphemizer.
func (c *ChineseMorphemizer) Description() string {
	return "Chinese"
}

// Name implements Morphemizer.
func (c *ChineseMorphemizer) Name() string {
	return NameChinese
}
