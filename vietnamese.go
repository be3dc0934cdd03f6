package morphemize

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

// frequencyHeaderSentinel marks a vocabulary file that carries a study
// plan instead of a frequency list; such a file is ignored entirely.
const frequencyHeaderSentinel = "#study_plan_frequency"

// compoundJoiner replaces the spaces inside a known compound before
// space segmentation, and is turned back into a space in Base after.
const compoundJoiner = "_"

// VietnameseMorphemizer recovers polysyllabic Vietnamese compound
// words. Vietnamese writes the syllables of a compound with spaces
// between them, so a plain space split would break compounds apart;
// the vocabulary's multi-word entries are substituted longest-first
// into the expression before delegating to the space strategy.
type VietnameseMorphemizer struct {
	space *SpaceMorphemizer

	// known holds the space-containing vocabulary entries in
	// descending rune-length order; entries of equal length keep
	// vocabulary-file order. knownJoined is index-aligned with known,
	// with every space replaced by compoundJoiner.
	known       []string
	knownJoined []string

	// loadErr records why the vocabulary was unavailable. It is never
	// surfaced: the strategy then behaves like the space strategy.
	loadErr error

	memo *memo
}

func newVietnameseMorphemizer(prefs *Preferences, space *SpaceMorphemizer) *VietnameseMorphemizer {
	v := &VietnameseMorphemizer{space: space, memo: newMemo(memoCapacity)}
	path := prefs.FrequencyListPath()
	words, err := loadCompoundVocabulary(path)
	if err != nil {
		v.loadErr = err
		slog.Debug("vietnamese vocabulary unavailable, degrading to space segmentation",
			"path", path, "error", err)
		return v
	}
	v.setKnownWords(words)
	return v
}

// loadCompoundVocabulary reads the frequency list at path: UTF-8 text,
// tolerant of a leading byte-order mark, one tab-separated row per
// entry with the phrase in column 0. A file whose first row starts
// with the study-plan sentinel is skipped without error.
func loadCompoundVocabulary(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("no vocabulary path configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	text := strings.TrimPrefix(string(data), "\uFEFF")

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = '\t'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse vocabulary: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty vocabulary file")
	}
	if rows[0][0] == frequencyHeaderSentinel {
		return nil, nil
	}

	words := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		words = append(words, row[0])
	}
	return words, nil
}

// setKnownWords keeps only entries with an interior space (single
// syllables carry no compound information) and orders them so that
// longer compounds are substituted before any shorter compound that is
// a substring of them.
func (v *VietnameseMorphemizer) setKnownWords(words []string) {
	var compounds []string
	for _, w := range words {
		if strings.Contains(w, " ") {
			compounds = append(compounds, w)
		}
	}
	sort.SliceStable(compounds, func(i, j int) bool {
		return utf8.RuneCountInString(compounds[i]) > utf8.RuneCountInString(compounds[j])
	})
	v.known = compounds
	v.knownJoined = make([]string, len(compounds))
	for i, w := range compounds {
		v.knownJoined[i] = strings.ReplaceAll(w, " ", compoundJoiner)
	}
}

// Morphemes implements Morphemizer. It never returns an error.
func (v *VietnameseMorphemizer) Morphemes(expression string) ([]Morpheme, error) {
	return v.memo.do(expression, v.segment)
}

// segment lowercases the expression, substitutes every known compound
// (strictly longest to shortest, each substitution mutating the shared
// working string before the next entry is tried), splits the result
// with the space strategy, and finally restores the spaces inside each
// compound in Base only. Norm, Inflected and Reading keep the joiner.
func (v *VietnameseMorphemizer) segment(expression string) ([]Morpheme, error) {
	working := strings.ToLower(expression)
	for i, w := range v.known {
		working = strings.ReplaceAll(working, w, v.knownJoined[i])
	}
	morphs, err := v.space.segment(working)
	if err != nil {
		return nil, err
	}
	for i := range morphs {
		morphs[i].Base = strings.ReplaceAll(morphs[i].Base, compoundJoiner, " ")
	}
	return morphs, nil
}

// Description implements Morphemizer.
func (v *VietnameseMorphemizer) Description() string {
	return "Vietnamese"
}

// Name implements Morphemizer.
func (v *VietnameseMorphemizer) Name() string {
	return NameVietnamese
}
