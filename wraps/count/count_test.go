package count_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/wrap_ive_go/wraps"
	"github.com/on-the-ground/wrap_ive_go/wraps/count"
	"github.com/on-the-ground/wrap_ive_go/wraps/memo"
)

func TestCallsGrowsByOnePerCall(t *testing.T) {
	counter := count.New()
	counted := counter.Wrap(wraps.Lift2("add", "", func(a, b int) int { return a + b }))

	assert.Equal(t, uint64(0), counter.Calls("add"))
	for i := 1; i <= 5; i++ {
		_, err := counted.Invoke(i, i)
		require.NoError(t, err)
		assert.Equal(t, uint64(i), counter.Calls("add"))
	}
}

func TestCallsUnknownNameIsZero(t *testing.T) {
	counter := count.New()
	assert.Equal(t, uint64(0), counter.Calls("never_wrapped"))
}

func TestCallsAggregatesSameNamedInstances(t *testing.T) {
	counter := count.New()
	a := counter.Wrap(wraps.Lift1("twin", "", func(n int) int { return n }))
	b := counter.Wrap(wraps.Lift1("twin", "", func(n int) int { return -n }))

	_, err := a.Invoke(1)
	require.NoError(t, err)
	_, err = b.Invoke(1)
	require.NoError(t, err)
	_, err = b.Invoke(2)
	require.NoError(t, err)

	assert.Equal(t, uint64(3), counter.Calls("twin"))
}

// An outer counter sees every logical call; a counter buried under a memo
// layer only sees cache misses. Both orders are contract.
func TestCompositionOrderDecidesWhatIsCounted(t *testing.T) {
	mk := func() wraps.Func {
		return wraps.Lift2("foo", "", func(a, b int) int { return a + b })
	}

	outer := count.New()
	memoized, _ := memo.Wrap(mk())
	countingEveryCall := outer.Wrap(memoized)

	inner := count.New()
	countingMissesOnly, _ := memo.Wrap(inner.Wrap(mk()))

	for i := 0; i < 3; i++ {
		_, err := countingEveryCall.Invoke(4, 3)
		require.NoError(t, err)
		_, err = countingMissesOnly.Invoke(4, 3)
		require.NoError(t, err)
	}

	assert.Equal(t, uint64(3), outer.Calls("foo"))
	assert.Equal(t, uint64(1), inner.Calls("foo"))
}

func TestWithCounterVecMirrorsCalls(t *testing.T) {
	vec := count.NewCallsVec("wrapkit_test")
	counter := count.New(count.WithCounterVec(vec))
	counted := counter.Wrap(wraps.Lift1("bar", "", func(n int) int { return n }))

	for i := 0; i < 4; i++ {
		_, err := counted.Invoke(i)
		require.NoError(t, err)
	}

	assert.Equal(t, float64(4), testutil.ToFloat64(vec.WithLabelValues("bar")))
}
