package funimg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	funimg "github.com/tristanphease/fun-images/core"
)

func fractions(pairs ...int) []funimg.Fraction {
	out := make([]funimg.Fraction, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, funimg.Fraction{Num: pairs[i], Den: pairs[i+1]})
	}
	return out
}

func drain(it *funimg.FareyIterator) []funimg.Fraction {
	var out []funimg.Fraction
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		out = append(out, f)
	}
	return out
}

var fareyFive = fractions(0, 1, 1, 5, 1, 4, 1, 3, 2, 5, 1, 2, 3, 5, 2, 3, 3, 4, 4, 5, 1, 1)

func TestFarey_ShouldProduceOrderFiveSequence(t *testing.T) {
	it := funimg.NewFareyIterator(5)
	for i, want := range fareyFive {
		got, ok := it.Next()
		require.True(t, ok, "term %d missing", i)
		assert.Equal(t, want, got, "term %d", i)
	}
	_, ok := it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok, "iterator should stay exhausted")
}

func TestFarey_DescendingShouldBeExactReverse(t *testing.T) {
	got := drain(funimg.NewDescendingFareyIterator(5))
	require.Len(t, got, len(fareyFive))
	for i := range got {
		assert.Equal(t, fareyFive[len(fareyFive)-1-i], got[i])
	}
}

func TestFarey_OrderOneShouldHoldBothEnds(t *testing.T) {
	assert.Equal(t, fractions(0, 1, 1, 1), drain(funimg.NewFareyIterator(1)))
	assert.Equal(t, fractions(1, 1, 0, 1), drain(funimg.NewDescendingFareyIterator(1)))
}

func TestFarey_ShouldBeStrictlyIncreasingAndReduced(t *testing.T) {
	for n := 1; n <= 40; n++ {
		seq := funimg.FareySequence(n)
		require.Len(t, seq, funimg.FareyLength(n), "order %d", n)
		assert.Equal(t, funimg.Fraction{Num: 0, Den: 1}, seq[0])
		assert.Equal(t, funimg.Fraction{Num: 1, Den: 1}, seq[len(seq)-1])

		for i, f := range seq {
			assert.LessOrEqual(t, f.Den, n)
			assert.Equal(t, f, funimg.Reduce(f), "order %d term %s not reduced", n, f)
			if i > 0 {
				assert.True(t, seq[i-1].Less(f), "order %d: %s !< %s", n, seq[i-1], f)
			}
		}

		desc := drain(funimg.NewDescendingFareyIterator(n))
		require.Len(t, desc, len(seq))
		for i := range desc {
			assert.Equal(t, seq[len(seq)-1-i], desc[i])
		}
	}
}

func TestFareyLength_ShouldMatchKnownCounts(t *testing.T) {
	// OEIS A005728
	want := []int{2, 3, 5, 7, 11, 13, 19, 23, 29, 33}
	for i, w := range want {
		assert.Equal(t, w, funimg.FareyLength(i+1))
	}
}
