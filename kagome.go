package morphemize

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// KagomeAnalyzer is the production JapaneseAnalyzer, backed by the
// kagome morphological analyzer with the IPA dictionary.
type KagomeAnalyzer struct {
	tok *tokenizer.Tokenizer
}

// NewKagomeAnalyzer builds a kagome tokenizer over the IPA dictionary.
func NewKagomeAnalyzer() (*KagomeAnalyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("kagome: new tokenizer: %w", err)
	}
	return &KagomeAnalyzer{tok: t}, nil
}

// Analyze implements JapaneseAnalyzer. Each kagome token maps onto one
// morpheme: the dictionary base form fills Norm and Base (surface when
// the dictionary has none, e.g. unknown words), the surface fills
// Inflected, and the first two POS features fill the tag pair.
func (k *KagomeAnalyzer) Analyze(text string) ([]Morpheme, error) {
	if k == nil || k.tok == nil {
		return nil, fmt.Errorf("kagome: tokenizer not initialized")
	}
	tokens := k.tok.Tokenize(text)
	morphs := make([]Morpheme, 0, len(tokens))
	for _, t := range tokens {
		surface := t.Surface
		base, ok := t.BaseForm()
		if !ok || base == "*" {
			base = surface
		}
		reading, ok := t.Reading()
		if !ok || reading == "*" {
			reading = surface
		}
		pos := t.POS()
		primary, secondary := "*", "*"
		if len(pos) > 0 {
			primary = pos[0]
		}
		if len(pos) > 1 {
			secondary = pos[1]
		}
		morphs = append(morphs, Morpheme{
			Norm:      base,
			Base:      base,
			Inflected: surface,
			Reading:   reading,
			POS:       primary,
			SubPOS:    secondary,
		})
	}
	return morphs, nil
}

// Identity implements JapaneseAnalyzer.
func (k *KagomeAnalyzer) Identity() (string, error) {
	if k == nil || k.tok == nil {
		return "", fmt.Errorf("kagome: tokenizer not initialized")
	}
	return "kagome v2 (IPA dictionary)", nil
}
