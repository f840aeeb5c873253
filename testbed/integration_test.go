package testbed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/delegate"
	"github.com/wippyai/variant/memtrack"
	"github.com/wippyai/variant/randutil"
	"github.com/wippyai/variant/result"
	"github.com/wippyai/variant/scope"
)

// tally counts disposals through a shared counter, so storms can prove
// every constructed payload was destroyed exactly once.
type tally struct {
	n *int
}

func (t tally) Dispose() {
	if t.n != nil {
		*t.n++
	}
}

func TestThreeAlternativeLifecycle(t *testing.T) {
	tr := memtrack.New()
	variant.SetTracker(tr)
	defer variant.SetTracker(nil)

	reg := variant.MustRegistry(
		variant.Alt[int](),
		variant.Alt[float64](),
		variant.Alt[string](),
	)
	v := variant.New(reg)

	variant.Assign(v, 5)
	require.True(t, variant.Is[int](v))
	require.Equal(t, 5, *variant.As[int](v))
	assert.Equal(t, 1, tr.Live())

	variant.Assign(v, 5.0)
	require.True(t, variant.Is[float64](v))
	require.Equal(t, 5.0, *variant.As[float64](v))
	assert.Equal(t, 1, tr.Live())

	variant.Assign(v, "tttttt")
	require.True(t, variant.Is[string](v))
	require.Equal(t, "tttttt", *variant.As[string](v))
	assert.Equal(t, 1, tr.Live())

	v.Reset()
	assert.Equal(t, 0, tr.Live())
	assert.Equal(t, uint64(3), tr.TotalTracked())
	assert.Zero(t, tr.Report(zap.NewNop()))
}

func TestSingleAlternativeRoundTrip(t *testing.T) {
	reg := variant.MustRegistry(variant.Alt[string]())

	v := variant.Of(reg, "Test")
	require.True(t, variant.Is[string](v))
	assert.Equal(t, "Test", *variant.As[string](v))

	v.Reset()
	assert.True(t, v.IsEmpty())
}

func TestGuardFiresAtScopeExit(t *testing.T) {
	fired := 0
	reg := variant.MustRegistry(variant.Alt[*scope.Guard]())

	func() {
		v := variant.Of(reg, scope.New(func() { fired++ }))
		defer v.Reset()
		require.Zero(t, fired, "guard fired before its value was destroyed")
	}()

	assert.Equal(t, 1, fired)
}

func TestMutationStormBalances(t *testing.T) {
	tr := memtrack.New()
	variant.SetTracker(tr)
	defer variant.SetTracker(nil)

	disposed := 0
	reg := variant.MustRegistry(
		variant.Alt[tally](),
		variant.Alt[int](),
		variant.Alt[string](),
	)
	a := variant.New(reg)
	b := variant.New(reg)
	r := randutil.New(2024)

	constructed := 0
	for i := 0; i < 1000; i++ {
		v, other := a, b
		if r.IntBetween(0, 1) == 1 {
			v, other = b, a
		}
		switch r.IntBetween(0, 6) {
		case 0, 1:
			variant.Assign(v, tally{n: &disposed})
			constructed++
		case 2:
			variant.Assign(v, r.IntBetween(0, 99))
			constructed++
		case 3:
			variant.Assign(v, fmt.Sprintf("s%d", r.Uint32()))
			constructed++
		case 4:
			if !other.IsEmpty() {
				constructed++
			}
			v.CopyFrom(other)
		case 5:
			if !other.IsEmpty() {
				constructed++
			}
			v.MoveFrom(other)
		case 6:
			v.Swap(other)
		}
		require.LessOrEqual(t, tr.Live(), 2,
			"more live payloads than values after op %d", i+1)
	}

	a.Reset()
	b.Reset()
	assert.Equal(t, 0, tr.Live(), "payloads leaked by the storm")
	assert.Equal(t, uint64(constructed), tr.TotalTracked())
	assert.Positive(t, disposed, "instrumented payloads were never destroyed")
	assert.Zero(t, tr.Report(zap.NewNop()))
}

func TestObservedMutations(t *testing.T) {
	var log []string
	var d delegate.Dispatcher[string]

	h1 := d.Subscribe(func(s string) { log = append(log, "obs1:"+s) })
	d.Subscribe(func(s string) { log = append(log, "obs2:"+s) })

	reg := variant.MustRegistry(variant.Alt[int](), variant.Alt[string]())
	v := variant.New(reg)

	apply := func(op string, fn func()) {
		fn()
		d.Notify(op)
	}
	apply("assign int", func() { variant.Assign(v, 1) })
	apply("reset", func() { v.Reset() })

	require.True(t, d.Unsubscribe(h1))
	apply("assign string", func() { variant.Assign(v, "x") })

	want := []string{
		"obs1:assign int", "obs2:assign int",
		"obs1:reset", "obs2:reset",
		"obs2:assign string",
	}
	assert.Equal(t, want, log)
	v.Reset()
}

func TestResultBridgesProbing(t *testing.T) {
	lookup := func(v *variant.Value) result.Result[string, string] {
		if p, ok := variant.TryAs[string](v); ok {
			return result.Ok[string, string](*p)
		}
		return result.Err[string]("not a string, holds " + v.TypeName())
	}

	reg := variant.MustRegistry(variant.Alt[int](), variant.Alt[string]())
	v := variant.Of(reg, 7)

	r := lookup(v)
	require.True(t, r.HasError())
	assert.Contains(t, r.GetError(), "int")
	assert.Equal(t, "fallback", r.GetOrDefault("fallback"))

	variant.Assign(v, "hello")
	r = lookup(v)
	require.True(t, r.IsOk())
	assert.Equal(t, "hello", r.Get())

	v.Reset()
}

func TestLeakReportNamesCulprit(t *testing.T) {
	tr := memtrack.New()
	variant.SetTracker(tr)
	defer variant.SetTracker(nil)

	reg := variant.MustRegistry(variant.Alt[int]())
	leaked := variant.Of(reg, 1)
	clean := variant.Of(reg, 2)
	clean.Reset()

	require.Equal(t, 1, tr.Report(zap.NewNop()))
	records := tr.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "int", records[0].Label)
	assert.NotEmpty(t, records[0].Site)

	leaked.Reset()
	assert.Zero(t, tr.Live())
}
