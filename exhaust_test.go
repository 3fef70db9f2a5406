package exhaust

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// strs renders every value of e with fmt.Sprint.
func strs[T, F any](e Enumerable[T, F]) []string {
	var s []string
	for v := range Values(e) {
		s = append(s, fmt.Sprint(v))
	}
	return s
}

func expectSeq(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got=%d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value #%d: got=%s want=%s", i, got[i], want[i])
		}
	}
}

// countingSeq counts calls to Next across all of its clones.
type countingSeq struct {
	cur, max int
	calls    *int
}

func (s *countingSeq) Next() (int, bool) {
	*s.calls++
	if s.cur >= s.max {
		return 0, false
	}
	s.cur++
	return s.cur - 1, true
}

func (s *countingSeq) Clone() Sequence[int] {
	c := *s
	return &c
}

func TestPeekableDoesNotAdvanceTwice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	calls := 0
	p := NewPeekable[int](&countingSeq{max: 2, calls: &calls})
	for range 3 {
		if f, ok := p.Peek(); !ok || f != 0 {
			t.Fatalf("peek: got=%d,%v want=0,true", f, ok)
		}
	}
	if calls != 1 {
		t.Fatalf("expected 1 call to underlying sequence, got=%d", calls)
	}
	if f, _ := p.Next(); f != 0 {
		t.Fatalf("next: got=%d want=0", f)
	}
	if f, _ := p.Next(); f != 1 {
		t.Fatalf("next: got=%d want=1", f)
	}
	if !p.Exhausted() {
		t.Fatalf("expected peekable to be exhausted")
	}
	before := calls
	p.Peek()
	p.Next()
	if calls != before {
		t.Fatalf("exhausted peekable should not call its sequence again")
	}
}

func TestPeekableClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	p := NewPeekable(Range(0, 4).Factories())
	p.Next()
	p.Peek() // buffers 1
	c := p.Clone()
	var fromP, fromC []int
	for v := range All[int](p) {
		fromP = append(fromP, v)
	}
	for v := range All(c) {
		fromC = append(fromC, v)
	}
	if !slices.Equal(fromP, []int{1, 2, 3, 4}) || !slices.Equal(fromP, fromC) {
		t.Fatalf("clone diverged: original=%v clone=%v", fromP, fromC)
	}
}

func TestCarry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	high := NewPeekable(FromSlice("a", "b"))
	low := NewPeekable(FromSlice(1))
	fresh := func() Sequence[int] { return FromSlice(1, 2) }
	if Carry(high, low, fresh) {
		t.Fatalf("expected no carry while low has items")
	}
	low.Next()
	if !Carry(high, low, fresh) {
		t.Fatalf("expected carry for exhausted low")
	}
	if h, _ := high.Peek(); h != "b" {
		t.Fatalf("expected high to advance to b, got=%s", h)
	}
	if l, _ := low.Peek(); l != 1 {
		t.Fatalf("expected low to restart, got=%d", l)
	}
}

func TestProductOfThreeBools(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	expectSeq(t, strs(TripleOf(Bool, Bool, Bool)),
		"{false false false}", "{false false true}", "{false true false}", "{false true true}",
		"{true false false}", "{true false true}", "{true true false}", "{true true true}")
}

func TestProductOfZeroFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	seq := Product()
	if f, ok := seq.Next(); !ok || len(f) != 0 {
		t.Fatalf("expected a single empty tuple, got=%v,%v", f, ok)
	}
	if _, ok := seq.Next(); ok {
		t.Fatalf("expected product of zero lanes to end after one item")
	}
}

func TestSumWithFieldlessVariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	e := Union(func(variant int, v []Erased) string {
		if variant == 0 {
			return fmt.Sprintf("A(%v)", As[bool](v[0]))
		}
		return "B"
	}, VariantOf(FieldOf(Bool)), VariantOf())
	expectSeq(t, strs(e), "A(false)", "A(true)", "B")
}

func TestSumOfZeroVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	e := Union(func(int, []Erased) int { return 0 })
	if n := Count(e); n != 0 {
		t.Fatalf("expected empty union, got=%d values", n)
	}
}

func TestPowerSetOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	var got []string
	for s := range All(PowerSet(FromSlice("a", "b", "c"))) {
		got = append(got, fmt.Sprint(s))
	}
	expectSeq(t, got, "[]", "[a]", "[b]", "[c]", "[a b]", "[a c]", "[b c]", "[a b c]")
	expectSeq(t, strs(SetOf(Bool)),
		"map[]", "map[false:{}]", "map[true:{}]", "map[false:{} true:{}]")
}

func TestPowerSetOfEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	expectSeq(t, strs(SetOf(Range(1, 0))), "map[]")
}

func TestMapOfBools(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	expectSeq(t, strs(MapOf(Bool, Bool)),
		"map[]",
		"map[false:false]", "map[false:true]", "map[true:false]", "map[true:true]",
		"map[false:false true:false]", "map[false:false true:true]",
		"map[false:true true:false]", "map[false:true true:true]")
}

func TestMapWithUninhabitedValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	expectSeq(t, strs(MapOf(Bool, Never)), "map[]")
}

func TestMapWithUninhabitedValuesEndsEarly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	e := MapOf(Uint8, Never)
	seq := e.Factories()
	f, ok := seq.Next()
	if !ok || fmt.Sprint(e.FromFactory(f)) != "map[]" {
		t.Fatalf("expected the empty map first, got=%v,%v", f, ok)
	}
	clone := seq.Clone()
	if _, ok := seq.Next(); ok {
		t.Fatalf("expected no second map over 256 keys")
	}
	if _, ok := seq.Next(); ok {
		t.Fatalf("map sequence is not fused")
	}
	if _, ok := clone.Next(); ok {
		t.Fatalf("clone produced a second map")
	}
	expectSeq(t, strs(MapOf(Uint8, Never)), "map[]")
}

func TestUninhabitedFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	rec := Record(func(v []Erased) int { return 0 }, FieldOf(Bool), FieldOf(Never), FieldOf(Bool))
	if n := Count(rec); n != 0 {
		t.Fatalf("record with uninhabited field: expected no values, got=%d", n)
	}
	e := Union(func(variant int, v []Erased) string {
		switch variant {
		case 0:
			return fmt.Sprintf("A(%v)", As[bool](v[0]))
		case 1:
			return "never"
		}
		return fmt.Sprintf("C(%v)", As[int](v[0]))
	}, VariantOf(FieldOf(Bool)), VariantOf(FieldOf(Bool), FieldOf(Never)), VariantOf(FieldOf(Ordering)))
	expectSeq(t, strs(e), "A(false)", "A(true)", "C(-1)", "C(0)", "C(1)")
	if n := Count(ArrayOf(Never, 3)); n != 0 {
		t.Fatalf("array of uninhabited type: expected no values, got=%d", n)
	}
	expectSeq(t, strs(ArrayOf(Never, 0)), "[]")
}

func TestManyUninhabitedVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	variants := make([]Variant, 10000)
	for i := range variants {
		variants[i] = VariantOf(FieldOf(Never))
	}
	variants = append(variants, VariantOf())
	e := Union(func(variant int, _ []Erased) int { return variant }, variants...)
	got := Collect(e, -1)
	if len(got) != 1 || got[0] != 10000 {
		t.Fatalf("expected only the last variant, got=%v", got)
	}
}

func TestHighArityProduct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	fields := make([]Field, 5000)
	for i := range fields {
		fields[i] = FieldOf(Unit)
	}
	rec := Record(func(v []Erased) int { return len(v) }, fields...)
	if got := Collect(rec, -1); len(got) != 1 || got[0] != 5000 {
		t.Fatalf("expected one value with 5000 fields, got=%v", got)
	}
	wide := Collect(ArrayOf(Bool, 64), 3)
	if len(wide) != 3 || !wide[1][63] || wide[2][63] || !wide[2][62] {
		t.Fatalf("unexpected start of 64-bit array enumeration: %v", wide)
	}
}

func TestArrayOfBools(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	expectSeq(t, strs(ArrayOf(Bool, 0)), "[]")
	expectSeq(t, strs(ArrayOf(Bool, 2)),
		"[false false]", "[false true]", "[true false]", "[true true]")
	defer func() {
		if r := recover(); !errors.Is(asError(r), ErrIllegalArguments) {
			t.Fatalf("expected panic with ErrIllegalArguments, got=%v", r)
		}
	}()
	ArrayOf(Bool, -1)
}

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return nil
}

func TestOptionAndResult(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	var opts []string
	for o := range Values(OptionOf(Bool)) {
		if v, ok := o.Get(); ok {
			opts = append(opts, fmt.Sprintf("Some(%v)", v))
		} else {
			opts = append(opts, "None")
		}
	}
	expectSeq(t, opts, "None", "Some(false)", "Some(true)")
	var results []string
	for r := range Values(ResultOf(Bool, Bool)) {
		if r.IsOk() {
			results = append(results, fmt.Sprintf("Ok(%v)", r.Value()))
		} else {
			results = append(results, fmt.Sprintf("Err(%v)", r.Err()))
		}
	}
	expectSeq(t, results, "Ok(false)", "Ok(true)", "Err(false)", "Err(true)")
}

func TestCursorOverByteArrays(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	cursors := CursorOf(ArrayOf(Uint8, 2), func(b []uint8) int { return len(b) })
	var got []string
	for c := range Values(cursors) {
		got = append(got, fmt.Sprintf("(%d,%v)", c.Pos, c.Buffer))
		if len(got) == 7 {
			break
		}
	}
	expectSeq(t, got, "(0,[0 0])", "(1,[0 0])", "(2,[0 0])",
		"(0,[0 1])", "(1,[0 1])", "(2,[0 1])", "(0,[0 2])")
	if n := Count(cursors); n != 256*256*3 {
		t.Fatalf("expected %d cursors, got=%d", 256*256*3, n)
	}
}

func TestFlatZipMapSkipsEmptyInner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	seq := FlatZipMap(Range(0, 3).Factories(), func(n int) Sequence[int] {
		return Range(1, n).Factories()
	}, func(n, i int) string { return fmt.Sprintf("%d/%d", i, n) })
	var got []string
	for s := range All[string](seq) {
		got = append(got, s)
	}
	expectSeq(t, got, "1/1", "1/2", "2/2", "1/3", "2/3", "3/3")
}

func TestIntegersAndRunes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	if n := Count(Uint8); n != 256 {
		t.Fatalf("Uint8: got=%d want=256", n)
	}
	if n := Count(Int8); n != 256 {
		t.Fatalf("Int8: got=%d want=256", n)
	}
	if n := Count(NonZero(Int8)); n != 255 {
		t.Fatalf("NonZero(Int8): got=%d want=255", n)
	}
	if got := Collect(Range[uint8](253, 255), -1); !slices.Equal(got, []uint8{253, 254, 255}) {
		t.Fatalf("range at type maximum: got=%v", got)
	}
	if got := Collect(Int8, 2); !slices.Equal(got, []int8{-128, -127}) {
		t.Fatalf("Int8 should start at its minimum, got=%v", got)
	}
	if n := Count(Runes); n != 0x110000-0x800 {
		t.Fatalf("Runes: got=%d want=%d", n, 0x110000-0x800)
	}
	expectSeq(t, strs(Ordering), "-1", "0", "1")
	if got := Collect(Float32, 2); got[0] != 0 || got[1] <= 0 || got[1] >= 1e-44 {
		t.Fatalf("Float32 should start with 0 and the smallest denormal, got=%v", got)
	}
}

func TestWrappers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	ptrs := Collect(PointerTo(Bool), -1)
	if len(ptrs) != 2 || *ptrs[0] || !*ptrs[1] || ptrs[0] == ptrs[1] {
		t.Fatalf("unexpected pointers %v", ptrs)
	}
	guarded := Collect(MutexGuarded(Ordering), -1)
	if len(guarded) != 3 || guarded[2].Load() != 1 {
		t.Fatalf("unexpected guarded values")
	}
	guarded[2].Update(func(v *int) { *v = 7 })
	if guarded[2].Load() != 7 {
		t.Fatalf("update of guarded value failed")
	}
	type celsius int8
	temps := Wrap(Range[int8](-1, 1), func(v int8) celsius { return celsius(v) })
	if got := Collect(temps, -1); !slices.Equal(got, []celsius{-1, 0, 1}) {
		t.Fatalf("newtype: got=%v", got)
	}
}

func TestSeqFuncIsNotClonable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	n := 0
	seq := SeqFunc(func() (int, bool) {
		n++
		return n, n <= 2
	})
	var got []int
	for v := range All(seq) {
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("got=%v want=[1 2]", got)
	}
	if _, ok := seq.Next(); ok {
		t.Fatalf("SeqFunc must be fused")
	}
	defer func() {
		if r := recover(); r != ErrNotClonable {
			t.Fatalf("expected panic with ErrNotClonable, got=%v", r)
		}
	}()
	seq.Clone()
}

func TestIteratorHelpers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	for i, v := range Indexed(Range(10, 12)) {
		if v != 10+i {
			t.Fatalf("index %d: got=%d", i, v)
		}
	}
	if got := Collect(Range(1, 100), 3); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("collect with limit: got=%v", got)
	}
	if got := Collect(Range(1, 100), 0); len(got) != 0 {
		t.Fatalf("collect with zero limit: got=%v", got)
	}
	var even []int
	for v := range Search(Range(1, 10), func(v int) bool { return v%2 == 0 }) {
		even = append(even, v)
		if len(even) == 3 {
			break
		}
	}
	if !slices.Equal(even, []int{2, 4, 6}) {
		t.Fatalf("search: got=%v", even)
	}
}
