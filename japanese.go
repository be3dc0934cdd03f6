package morphemize

import (
	"fmt"
	"strings"
)

// JapaneseAnalyzer is the boundary to an external Japanese
// morphological analyzer.
type JapaneseAnalyzer interface {
	// Analyze segments unspaced Japanese text into morphemes.
	Analyze(text string) ([]Morpheme, error)
	// Identity returns the analyzer's version/build string. It may
	// fail; callers must treat a failure as non-fatal.
	Identity() (string, error)
}

// JapaneseMorphemizer delegates segmentation to a morphological
// analyzer. Japanese has no spaces between morphemes, so an analyzer
// has to do the real work; literal spaces introduced by upstream text
// processing are stripped before delegation because they would corrupt
// the analyzer's output.
type JapaneseMorphemizer struct {
	analyzer JapaneseAnalyzer
	memo     *memo
}

func newJapaneseMorphemizer(analyzer JapaneseAnalyzer) *JapaneseMorphemizer {
	return &JapaneseMorphemizer{analyzer: analyzer, memo: newMemo(memoCapacity)}
}

// Morphemes implements Morphemizer. An analyzer failure is surfaced to
// the caller; nothing is cached in that case.
func (j *JapaneseMorphemizer) Morphemes(expression string) ([]Morpheme, error) {
	return j.memo.do(expression, j.segment)
}

func (j *JapaneseMorphemizer) segment(expression string) ([]Morpheme, error) {
	if j.analyzer == nil {
		return nil, fmt.Errorf("japanese: no analyzer available")
	}
	expression = strings.ReplaceAll(expression, " ", "")
	morphs, err := j.analyzer.Analyze(expression)
	if err != nil {
		return nil, fmt.Errorf("japanese: analyze: %w", err)
	}
	return morphs, nil
}

// Description implements Morphemizer. The analyzer identity probe is
// best-effort: on any failure the identity is reported as UNAVAILABLE.
func (j *JapaneseMorphemizer) Description() string {
	identity := "UNAVAILABLE"
	if j.analyzer != nil {
		if id, err := j.analyzer.Identity(); err == nil {
			identity = id
		}
	}
	return "Japanese " + identity
}

// Name implements Morphemizer.
func (j *JapaneseMorphemizer) Name() string {
	return NameJapanese
}
