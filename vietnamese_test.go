package morphemize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestVietnamese(t *testing.T, path string) *VietnameseMorphemizer {
	t.Helper()
	prefs := NewPreferences()
	prefs.Set(KeyFrequencyListPath, path)
	return newVietnameseMorphemizer(prefs, newSpaceMorphemizer())
}

func TestVietnameseVocabularyLoading(t *testing.T) {
	v := newTestVietnamese(t, filepath.Join("testdata", "frequency.txt"))
	require.NoError(t, v.loadErr)
	// Single-syllable entries are discarded; compounds are ordered by
	// descending length.
	require.Equal(t, []string{"học sinh giỏi", "học sinh", "bánh mì", "xe đạp"}, v.known)
	require.Equal(t, []string{"học_sinh_giỏi", "học_sinh", "bánh_mì", "xe_đạp"}, v.knownJoined)
}

func TestVietnameseCompoundRecovery(t *testing.T) {
	v := newTestVietnamese(t, filepath.Join("testdata", "frequency.txt"))

	morphs, err := v.Morphemes("Tôi ăn bánh mì")
	require.NoError(t, err)
	require.Equal(t, []string{"tôi", "ăn", "bánh mì"}, bases(morphs))

	// Only Base gets the spaces back; the other fields keep the joiner.
	last := morphs[2]
	require.Equal(t, "bánh mì", last.Base)
	require.Equal(t, "bánh_mì", last.Norm)
	require.Equal(t, "bánh_mì", last.Inflected)
	require.Equal(t, "bánh_mì", last.Reading)
}

func TestVietnameseLongestMatchWins(t *testing.T) {
	v := newTestVietnamese(t, filepath.Join("testdata", "frequency.txt"))

	// "học sinh giỏi" must be substituted before its prefix "học sinh"
	// can pre-empt it.
	morphs, err := v.Morphemes("em là học sinh giỏi")
	require.NoError(t, err)
	require.Equal(t, []string{"em", "là", "học sinh giỏi"}, bases(morphs))
}

func TestVietnameseDegradesWithoutVocabulary(t *testing.T) {
	v := newTestVietnamese(t, filepath.Join("testdata", "no_such_file.txt"))
	require.Error(t, v.loadErr)
	require.Empty(t, v.known)

	space := newSpaceMorphemizer()
	for _, expr := range []string{"Tôi ăn bánh mì", "The Quick fox2 jumps", ""} {
		got, err := v.Morphemes(expr)
		require.NoError(t, err)
		want, err := space.Morphemes(expr)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestVietnameseIgnoresStudyPlanFile(t *testing.T) {
	v := newTestVietnamese(t, filepath.Join("testdata", "study_plan.txt"))
	require.NoError(t, v.loadErr)
	require.Empty(t, v.known)

	morphs, err := v.Morphemes("tôi ăn bánh mì")
	require.NoError(t, err)
	require.Equal(t, []string{"tôi", "ăn", "bánh", "mì"}, bases(morphs))
}

func TestVietnameseByteOrderMark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frequency.txt")
	require.NoError(t, os.WriteFile(path, []byte("\uFEFFxe đạp\t12\nxe\t10\n"), 0o644))

	v := newTestVietnamese(t, path)
	require.NoError(t, v.loadErr)
	require.Equal(t, []string{"xe đạp"}, v.known)

	morphs, err := v.Morphemes("chiếc xe đạp")
	require.NoError(t, err)
	require.Equal(t, []string{"chiếc", "xe đạp"}, bases(morphs))
}

func TestVietnameseEmptyFileDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frequency.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	v := newTestVietnamese(t, path)
	require.Error(t, v.loadErr)

	morphs, err := v.Morphemes("bánh mì")
	require.NoError(t, err)
	require.Equal(t, []string{"bánh", "mì"}, bases(morphs))
}

func TestVietnameseEqualLengthKeepsFileOrder(t *testing.T) {
	v := &VietnameseMorphemizer{}
	v.setKnownWords([]string{"xy", "ab cd", "ef gh", "a b c"})
	require.Equal(t, []string{"ab cd", "ef gh", "a b c"}, v.known)
}

func TestVietnameseIdentity(t *testing.T) {
	v := newTestVietnamese(t, "")
	require.Equal(t, NameVietnamese, v.Name())
	require.Equal(t, "Vietnamese", v.Description())
}
