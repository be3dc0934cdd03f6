// Package morphemize converts raw text expressions into ordered
// sequences of morphemes using language-specific segmentation
// strategies: space-delimited languages, Japanese, Chinese, generic
// CJK-character splitting, and Vietnamese compound-word recovery.
//
// Strategies implement the Morphemizer interface and are obtained from
// a Registry, which builds the fixed set of five strategies lazily and
// hands out the same instances for the life of the process. Every
// strategy memoizes its results per exact input expression.
package morphemize

// Stable strategy names, used as registry keys.
const (
	NameSpace      = "Space"
	NameJapanese   = "Japanese"
	NameChinese    = "Chinese"
	NameCjkChar    = "CjkChar"
	NameVietnamese = "Vietnamese"
)

// Morphemizer is one segmentation strategy.
type Morphemizer interface {
	// Morphemes converts an expression to its ordered morphemes. The
	// result may be empty and may contain duplicates. Results are
	// memoized per exact input string. An error is returned only when
	// an external backend fails while producing morphemes.
	Morphemes(expression string) ([]Morpheme, error)

	// Description returns a one-line identification of the strategy's
	// target language and backend. It never fails: backend identity
	// probes that error are reported as "UNAVAILABLE" in the text.
	Description() string

	// Name returns the strategy's stable unique identifier.
	Name() string
}
