package morphemize

// Part-of-speech sentinels used by strategies that do not run a real
// POS tagger over their tokens.
const (
	// POSUnknown marks a morpheme whose part of speech was not determined.
	POSUnknown = "UNKNOWN"
	// POSCJKChar marks a morpheme emitted by the CJK-character strategy.
	POSCJKChar = "CJK_CHAR"
)

// Morpheme is a single segmented unit of text. It is a plain value:
// strategies build it once and never mutate it afterwards, with the one
// documented exception of the Vietnamese strategy rewriting Base.
type Morpheme struct {
	// Norm is the normalized form.
	Norm string `json:"norm"`
	// Base is the dictionary (citation) form.
	Base string `json:"base"`
	// Inflected is the surface form as it occurred in the expression.
	Inflected string `json:"inflected"`
	// Reading is the phonetic reading, where the backend provides one.
	Reading string `json:"reading"`
	// POS is the primary part-of-speech tag.
	POS string `json:"pos"`
	// SubPOS is the secondary part-of-speech tag.
	SubPOS string `json:"sub_pos"`
}

// uniformMorpheme builds a Morpheme whose four text fields all carry the
// same token, tagged with the given part-of-speech pair. Most strategies
// in this package produce their output this way.
func uniformMorpheme(token, pos, subPOS string) Morpheme {
	return Morpheme{
		Norm:      token,
		Base:      token,
		Inflected: token,
		Reading:   token,
		POS:       pos,
		SubPOS:    subPOS,
	}
}
