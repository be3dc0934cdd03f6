package morphemize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoRunsSegmenterOnce(t *testing.T) {
	calls := 0
	segment := func(expr string) ([]Morpheme, error) {
		calls++
		return []Morpheme{uniformMorpheme(expr, POSUnknown, POSUnknown)}, nil
	}

	m := newMemo(8)
	first, err := m.do("hello", segment)
	require.NoError(t, err)
	second, err := m.do("hello", segment)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, calls)
	require.EqualValues(t, 1, m.hits.Load())
	require.EqualValues(t, 1, m.misses.Load())
}

func TestMemoKeysAreExact(t *testing.T) {
	calls := 0
	segment := func(expr string) ([]Morpheme, error) {
		calls++
		return nil, nil
	}

	m := newMemo(8)
	_, _ = m.do("a b", segment)
	_, _ = m.do("a  b", segment)
	_, _ = m.do("A b", segment)
	require.Equal(t, 3, calls)
}

func TestMemoEvictsLeastRecentlyUsed(t *testing.T) {
	calls := map[string]int{}
	segment := func(expr string) ([]Morpheme, error) {
		calls[expr]++
		return nil, nil
	}

	m := newMemo(2)
	_, _ = m.do("a", segment)
	_, _ = m.do("b", segment)
	_, _ = m.do("c", segment) // evicts "a"
	_, _ = m.do("a", segment)
	require.Equal(t, 2, calls["a"])
	require.Equal(t, 1, calls["b"])
	require.Equal(t, 1, calls["c"])
}

func TestMemoDoesNotCacheErrors(t *testing.T) {
	calls := 0
	fail := errors.New("backend down")
	segment := func(expr string) ([]Morpheme, error) {
		calls++
		if calls == 1 {
			return nil, fail
		}
		return nil, nil
	}

	m := newMemo(8)
	_, err := m.do("x", segment)
	require.ErrorIs(t, err, fail)
	_, err = m.do("x", segment)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestStrategyMemoization(t *testing.T) {
	s := newSpaceMorphemizer()
	first, err := s.Morphemes("one two three")
	require.NoError(t, err)
	second, err := s.Morphemes("one two three")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.EqualValues(t, 1, s.memo.hits.Load())
	require.EqualValues(t, 1, s.memo.misses.Load())
}
