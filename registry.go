package morphemize

import "sync"

// Registry owns the fixed set of five segmentation strategies. It is
// meant to be constructed once at application startup and passed by
// reference to every consumer. The strategies are built lazily on
// first access and live for the life of the registry: every call sees
// the same instances in the same order.
type Registry struct {
	once sync.Once

	prefs       *Preferences
	japanese    JapaneseAnalyzer
	chinese     ChineseSegmenter
	japaneseSet bool
	chineseSet  bool

	all    []Morphemizer
	byName map[string]Morphemizer
}

// RegistryOption configures a Registry before its strategies are built.
type RegistryOption func(*Registry)

// WithPreferences supplies the preferences used to resolve the
// Vietnamese vocabulary path. Defaults to NewPreferences().
func WithPreferences(p *Preferences) RegistryOption {
	return func(r *Registry) { r.prefs = p }
}

// WithJapaneseAnalyzer replaces the default kagome analyzer. Passing
// nil yields a Japanese strategy whose segmentation always errors and
// whose description reports UNAVAILABLE.
func WithJapaneseAnalyzer(a JapaneseAnalyzer) RegistryOption {
	return func(r *Registry) { r.japanese, r.japaneseSet = a, true }
}

// WithChineseSegmenter replaces the default jieba segmenter.
func WithChineseSegmenter(s ChineseSegmenter) RegistryOption {
	return func(r *Registry) { r.chinese, r.chineseSet = s, true }
}

// NewRegistry creates a registry. No strategy is built until the first
// call to All or ByName.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// build constructs the five strategies in their documented order:
// Space, Japanese, Chinese, CjkChar, Vietnamese.
func (r *Registry) build() {
	if r.prefs == nil {
		r.prefs = NewPreferences()
	}
	if !r.japaneseSet {
		// A failed analyzer build leaves the strategy degraded rather
		// than failing registry construction.
		if a, err := NewKagomeAnalyzer(); err == nil {
			r.japanese = a
		}
	}
	if !r.chineseSet {
		r.chinese = NewJiebaSegmenter()
	}

	space := newSpaceMorphemizer()
	r.all = []Morphemizer{
		space,
		newJapaneseMorphemizer(r.japanese),
		newChineseMorphemizer(r.chinese),
		newCjkCharMorphemizer(),
		newVietnameseMorphemizer(r.prefs, space),
	}
	r.byName = make(map[string]Morphemizer, len(r.all))
	for _, m := range r.all {
		r.byName[m.Name()] = m
	}
}

// All returns the five strategies in fixed order. The returned slice
// must not be modified.
func (r *Registry) All() []Morphemizer {
	r.once.Do(r.build)
	return r.all
}

// ByName returns the strategy registered under name. An unknown name
// is not an error: the second result is simply false.
func (r *Registry) ByName(name string) (Morphemizer, bool) {
	r.once.Do(r.build)
	m, ok := r.byName[name]
	return m, ok
}
