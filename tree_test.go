package avltree

import (
	"math"
	"strings"
	"testing"

	"github.com/go-avl/avltree/internal/core"
	"github.com/stretchr/testify/require"
)

func intLess(a, b int) bool { return a < b }

func maxHeight(n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Ceil(1.44*math.Log2(float64(n)+1.065) - 0.328))
}

func TestInsertGetRoundTrip(t *testing.T) {
	tr := New[string, int](func(a, b string) bool { return a < b })

	_, replaced := tr.Insert("alpha", 1)
	require.False(t, replaced)
	_, replaced = tr.Insert("beta", 2)
	require.False(t, replaced)

	v, ok := tr.Get("alpha")
	require.True(t, ok)
	require.Equal(t, 1, v)

	v, ok = tr.Get("beta")
	require.True(t, ok)
	require.Equal(t, 2, v)

	_, ok = tr.Get("gamma")
	require.False(t, ok)

	require.Equal(t, 2, tr.Len())
}

func TestInsertReplacesValueKeepsOldKeyIdentity(t *testing.T) {
	// Keys compare case-insensitively, so "K" matches the resident "k"
	// while staying distinguishable from it.
	tr := New[string, int](func(a, b string) bool { return strings.ToLower(a) < strings.ToLower(b) })

	tr.Insert("k", 1)
	prev, replaced := tr.Insert("K", 2)
	require.True(t, replaced)
	require.Equal(t, 1, prev)

	v, ok := tr.Get("k")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 1, tr.Len())

	var keys []string
	tr.Walk(func(k string, _ int) bool {
		keys = append(keys, k)
		return true
	})
	require.Equal(t, []string{"k"}, keys)
}

func intLessString(a, b string) bool { return a < b }

func TestGetOrInsertOnlyBuildsOnMiss(t *testing.T) {
	tr := New[int, string](intLess)
	calls := 0

	v, inserted := tr.GetOrInsert(1, func() string { calls++; return "one" })
	require.True(t, inserted)
	require.Equal(t, "one", v)
	require.Equal(t, 1, calls)

	v, inserted = tr.GetOrInsert(1, func() string { calls++; return "ONE" })
	require.False(t, inserted)
	require.Equal(t, "one", v)
	require.Equal(t, 1, calls)
}

func TestRemove(t *testing.T) {
	tr := New[int, int](intLess)
	for i := 0; i < 100; i++ {
		tr.Insert(i, i*i)
	}
	require.Equal(t, 100, tr.Len())

	for i := 0; i < 100; i += 2 {
		v, ok := tr.Remove(i)
		require.True(t, ok)
		require.Equal(t, i*i, v)
	}
	require.Equal(t, 50, tr.Len())

	for i := 0; i < 100; i++ {
		v, ok := tr.Get(i)
		if i%2 == 0 {
			require.False(t, ok)
		} else {
			require.True(t, ok)
			require.Equal(t, i*i, v)
		}
	}

	_, ok := tr.Remove(9999)
	require.False(t, ok)
}

func TestClear(t *testing.T) {
	tr := New[int, int](intLess)
	for i := 0; i < 50; i++ {
		tr.Insert(i, i)
	}
	tr.Clear()
	require.Equal(t, 0, tr.Len())
	_, ok := tr.Get(0)
	require.False(t, ok)
}

func nodeHeight(h core.Handle) int {
	if h == nil {
		return 0
	}
	lh, rh := nodeHeight(h.Child(core.Left)), nodeHeight(h.Child(core.Right))
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}

func TestHeightStaysWithinAvlBound(t *testing.T) {
	tr := New[int, int](intLess)
	const n = 2000
	for i := 0; i < n; i++ {
		tr.Insert(i, i)
	}

	got := nodeHeight(tr.root)
	require.LessOrEqual(t, got, maxHeight(n))
}

func TestGetMutMutatesInPlace(t *testing.T) {
	tr := New[string, int](intLessString)
	tr.Insert("a", 1)

	p, ok := tr.GetMut("a")
	require.True(t, ok)
	*p = 42

	v, _ := tr.Get("a")
	require.Equal(t, 42, v)
}
