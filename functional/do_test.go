package functional_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-functional/functional"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func letters() *functional.Do[string, string] {
	return functional.With("a", "b", "c", "d", "e")
}

func equalsB(s string) bool { return strings.EqualFold(s, "B") }

func add(acc, n int) int { return acc + n }

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestWithPreservesOrder(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, letters().ToList())
}

func TestWithSliceCopies(t *testing.T) {
	src := []string{"a", "b"}
	d := functional.WithSlice(src)
	src[0] = "z"
	assert.Equal(t, []string{"a", "b"}, d.ToList())
}

func TestWithSliceMutatorsLeaveCallerSlice(t *testing.T) {
	src := []string{"a", "b"}
	d := functional.WithSlice(src)
	d.Add("c")
	d.Remove("a")
	assert.Equal(t, []string{"b", "c"}, d.ToList())
	assert.Equal(t, []string{"a", "b"}, src)

	d.Clear()
	assert.Equal(t, []string{"a", "b"}, src)
}

func TestWithSeq(t *testing.T) {
	d := functional.WithSeq(functional.With(1, 2, 3).All())
	assert.Equal(t, []int{1, 2, 3}, d.ToList())
}

func TestWithNoElements(t *testing.T) {
	d := functional.With[int]()
	assert.True(t, d.IsEmpty())
	assert.Equal(t, "[]", d.String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

func TestSelect(t *testing.T) {
	assert.Equal(t, []string{"b"}, letters().Select(equalsB).ToList())
}

func TestReject(t *testing.T) {
	assert.Equal(t, []string{"a", "c", "d", "e"}, letters().Reject(equalsB).ToList())
}

func TestSelectRejectPartition(t *testing.T) {
	input := functional.With(5, 2, 8, 1, 9, 4, 4, 7)
	even := func(n int) bool { return n%2 == 0 }

	selected := input.Select(even).ToList()
	rejected := input.Reject(even).ToList()

	assert.Equal(t, []int{2, 8, 4, 4}, selected)
	assert.Equal(t, []int{5, 1, 9, 7}, rejected)
	assert.Equal(t, input.Size(), len(selected)+len(rejected))
}

func TestDetect(t *testing.T) {
	v, ok := letters().Detect(equalsB)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = functional.With("a", "B", "b").Detect(equalsB)
	require.True(t, ok)
	assert.Equal(t, "B", v, "first match wins")

	v, ok = letters().Detect(func(s string) bool { return s == "z" })
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestRejectElement(t *testing.T) {
	assert.Equal(t, []string{"a", "c", "d", "e"}, letters().RejectElement("b").ToList())
}

func TestRejectElementRemovesFirstOccurrenceOnly(t *testing.T) {
	d := functional.With("a", "b", "a", "a")

	assert.Equal(t, []string{"b", "a", "a"}, d.RejectElement("a").ToList())
	assert.Equal(t, []string{"b", "a"}, d.RejectElement("a", "a").ToList())
	assert.Equal(t, []string{"b"}, d.Unique().RejectElement("a").ToList())
}

func TestInjectElement(t *testing.T) {
	d := functional.With(1, 2)
	got := d.InjectElement(3, 4)

	assert.Equal(t, []int{1, 2, 3, 4}, got.ToList())
	assert.Equal(t, []int{1, 2}, d.ToList())
}

func TestTransformationsDoNotMutateReceiver(t *testing.T) {
	d := letters()
	d.Select(equalsB)
	d.Reject(equalsB)
	d.RejectElement("a")
	d.InjectElement("f")
	d.Unique()
	functional.Map(d, functional.Lift(strings.ToUpper))

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, d.ToList())
}

// ─────────────────────────────────────────────────────────────────────────────
// De-duplication
// ─────────────────────────────────────────────────────────────────────────────

func TestUnique(t *testing.T) {
	bag := letters().InjectElement("a")
	require.Equal(t, 6, bag.Size())

	got := bag.Unique().ToList()
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e"}, got)
	assert.Len(t, got, 5)
}

func TestRemoveDuplicatesAlias(t *testing.T) {
	assert.Equal(t,
		functional.With(1, 1, 2).Unique().ToList(),
		functional.With(1, 1, 2).RemoveDuplicates().ToList())
}

func TestUniqueUncomparableElements(t *testing.T) {
	got := functional.With([]int{1}, []int{2}, []int{1}).Unique().ToList()
	assert.Equal(t, [][]int{{1}, {2}}, got)
}

func TestUniqueNaN(t *testing.T) {
	d := functional.With(math.NaN(), math.NaN(), 1.0)
	got := d.Unique().ToList()
	require.Len(t, got, 2)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, d.Contains(math.NaN()))
}

func TestToSet(t *testing.T) {
	set := functional.ToSet(functional.With("a", "b", "a"))
	assert.Equal(t, map[string]struct{}{"a": {}, "b": {}}, set)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mapping
// ─────────────────────────────────────────────────────────────────────────────

func TestMap(t *testing.T) {
	got := functional.Map(letters(), functional.Lift(strings.ToUpper)).ToList()
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, got)
}

func TestMapSkipsMissingValues(t *testing.T) {
	got := functional.Map(functional.With("1", "x", "3", ""), parseInt).ToList()
	assert.Equal(t, []int{1, 3}, got)
}

func TestCollect(t *testing.T) {
	got := letters().Collect(functional.Lift(strings.ToUpper)).ToList()
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, got)
}

func TestMapToType(t *testing.T) {
	got := functional.MapTo[int](functional.With("1", "2", "3")).Collect(parseInt).ToList()
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestMapToLeavesAccumulatorUnset(t *testing.T) {
	d := functional.MapTo[int](functional.With("1").WithInitialValue("seed"))
	_, seeded := d.Accumulator()
	assert.False(t, seeded)
}

func TestTryMap(t *testing.T) {
	got, err := functional.TryMap(functional.With("1", "2"), strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got.ToList())

	_, err = functional.TryMap(functional.With("1", "x"), strconv.Atoi)
	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "x", numErr.Num)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reducing
// ─────────────────────────────────────────────────────────────────────────────

func TestReduceSum(t *testing.T) {
	result, err := functional.With(1, 2, 3).WithInitialValue(0).Reduce(add)
	require.NoError(t, err)
	assert.Equal(t, 6, result)
}

func TestReduceConcat(t *testing.T) {
	result, err := functional.With("a", "e", "i", "o", "u").
		WithInitialValue("").
		Reduce(func(acc, s string) string { return acc + s })
	require.NoError(t, err)
	assert.Equal(t, "aeiou", result)
}

func TestReduceCommaSeparated(t *testing.T) {
	join := func(acc, s string) string {
		if strings.TrimSpace(acc) != "" {
			return acc + ", " + s
		}
		return s
	}
	result, err := letters().WithInitialValue("").Reduce(join)
	require.NoError(t, err)
	assert.Equal(t, "a, b, c, d, e", result)
}

func TestReduceEmptyReturnsSeed(t *testing.T) {
	result, err := functional.With[int]().WithInitialValue(42).Reduce(add)
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestReduceWithoutSeed(t *testing.T) {
	_, err := letters().Reduce(func(string, string) string { return "" })
	require.ErrorIs(t, err, functional.ErrMissingSeed)
	assert.Contains(t, err.Error(), "must set starting value before reducing")
}

func TestMustReducePanicsWithoutSeed(t *testing.T) {
	assert.PanicsWithError(t, functional.ErrMissingSeed.Error(), func() {
		functional.With(1).MustReduce(add)
	})
}

func TestReduceNilResultKeepsSeed(t *testing.T) {
	d := functional.InitialValue(functional.With("a"), new(int))
	nilOut := func(*int, string) *int { return nil }

	first, err := d.Reduce(nilOut)
	require.NoError(t, err)
	assert.Nil(t, first)

	_, err = d.Reduce(nilOut)
	assert.NoError(t, err, "a nil accumulator is still a set accumulator")
}

func TestReduceStoresAccumulator(t *testing.T) {
	d := functional.With(1, 2, 3).WithInitialValue(0)

	first, err := d.Reduce(add)
	require.NoError(t, err)
	second, err := d.Reduce(add)
	require.NoError(t, err)

	assert.Equal(t, 6, first)
	assert.Equal(t, 12, second)
	acc, ok := d.Accumulator()
	assert.True(t, ok)
	assert.Equal(t, 12, acc)
}

func TestWithInitialValueReturnsNewPipeline(t *testing.T) {
	d := functional.With(1, 2)
	seeded := d.WithInitialValue(0)

	_, ok := d.Accumulator()
	assert.False(t, ok)
	seeded.Add(3)
	assert.Equal(t, []int{1, 2}, d.ToList())
}

func TestInitialValueChangesAccumulatorType(t *testing.T) {
	count, err := functional.InitialValue(letters(), 0).
		Reduce(func(acc int, _ string) int { return acc + 1 })
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestChain(t *testing.T) {
	result, err := functional.MapTo[int](functional.With("1", "2", "3")).
		Collect(parseInt).
		And().Then().
		WithInitialValue(0).
		Reduce(add)
	require.NoError(t, err)
	assert.Equal(t, 6, result)
}

func TestAndThenReturnReceiver(t *testing.T) {
	d := letters()
	assert.Same(t, d, d.And())
	assert.Same(t, d, d.Then())
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialisation
// ─────────────────────────────────────────────────────────────────────────────

func TestString(t *testing.T) {
	assert.Equal(t, `["a","b"]`, functional.With("a", "b").String())
}

func TestMarshalJSONFallback(t *testing.T) {
	d := functional.With(func() {})
	_, err := d.MarshalJSON()
	require.Error(t, err)
	assert.NotEmpty(t, d.String())
}
