// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"code.hybscloud.com/hof"
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func plus(a, b int) int { return a + b }

// TestCompressMax: compress(max)(2, 3, 4, 5) == 5.
func TestCompressMax(t *testing.T) {
	got, err := hof.Compress(maxInt).Invoke(2, 3, 4, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Fatalf("got %v, want 5", got)
	}
}

// TestCompressPlusSeeded: compress(plus, 0)(1, 2, 3, 4) == 10.
func TestCompressPlusSeeded(t *testing.T) {
	got, err := hof.Compress(plus, 0).Invoke(1, 2, 3, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10 {
		t.Fatalf("got %v, want 10", got)
	}
}

// TestCompressTerminalBinary: compress(f, z)() == z and f is not invoked.
func TestCompressTerminalBinary(t *testing.T) {
	calls := 0
	f := func(a, b int) int { calls++; return a + b }
	got, err := hof.Compress(f, 5).Invoke()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Fatalf("got %v, want 5", got)
	}
	if calls != 0 {
		t.Fatalf("combining function invoked %d times, want 0", calls)
	}
}

// TestCompressTerminalUnary: compress(f)(x) == x and f is not invoked.
func TestCompressTerminalUnary(t *testing.T) {
	calls := 0
	f := func(a, b int) int { calls++; return a + b }
	got, err := hof.Compress(f).Invoke(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %v, want 42", got)
	}
	if calls != 0 {
		t.Fatalf("combining function invoked %d times, want 0", calls)
	}
}

// TestCompressSingleStep: compress(f, z)(x) == f(z, x).
func TestCompressSingleStep(t *testing.T) {
	got, err := hof.Compress(plus, 7).Invoke(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10 {
		t.Fatalf("got %v, want %v", got, plus(7, 3))
	}
}

// TestCompressInductiveLaw: compress(f, z)(x, y, rest...) ==
// compress(f, f(z, x))(y, rest...).
func TestCompressInductiveLaw(t *testing.T) {
	z, x, y, rest := 1, 2, 3, 4
	left, err := hof.Compress(plus, z).Invoke(x, y, rest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	right, err := hof.Compress(plus, plus(z, x)).Invoke(y, rest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if left != right {
		t.Fatalf("inductive law: %v != %v", left, right)
	}
}

// TestCompressUnaryReducesToBinary: compress(f)(x, y, rest...) ==
// compress(f)(f(x, y), rest...).
func TestCompressUnaryReducesToBinary(t *testing.T) {
	x, y, rest := 2, 5, 3
	left, err := hof.Compress(maxInt).Invoke(x, y, rest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	right, err := hof.Compress(maxInt).Invoke(maxInt(x, y), rest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if left != right {
		t.Fatalf("unary reduction: %v != %v", left, right)
	}
}

// TestCompressUnaryZeroArgs: the unary form applied to zero arguments is a
// constraint failure, not a default result, and the error lists both
// shapes' exclusion reasons.
func TestCompressUnaryZeroArgs(t *testing.T) {
	_, err := hof.Compress(plus).Invoke()
	if !errors.Is(err, hof.ErrNotInvocable) {
		t.Fatalf("got %v, want ErrNotInvocable", err)
	}
	var nie *hof.NotInvocableError
	if !errors.As(err, &nie) {
		t.Fatalf("got %T, want *NotInvocableError", err)
	}
	if len(nie.Excluded) != 2 {
		t.Fatalf("got %d exclusion reasons, want 2: %v", len(nie.Excluded), nie)
	}
}

// TestCompressTypeChangingFold: the accumulator type changes at the first
// step; result and type must match an iterative reimplementation.
func TestCompressTypeChangingFold(t *testing.T) {
	f := func(acc any, x int) string { return fmt.Sprint(acc) + "|" + strconv.Itoa(x) }
	got, err := hof.Compress(f).Invoke(10, 1, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var want any = 10
	for _, x := range []int{1, 2, 3} {
		want = f(want, x)
	}
	s, ok := got.(string)
	if !ok {
		t.Fatalf("result type %T, want string", got)
	}
	if s != want {
		t.Fatalf("got %q, want %q", s, want)
	}
}

// TestCompressAccumulatorTypeThreading: a combiner whose result type does
// not feed back into its state parameter folds one step but excludes two.
func TestCompressAccumulatorTypeThreading(t *testing.T) {
	f := func(acc int, x int) string { return strconv.Itoa(acc + x) }
	got, err := hof.Compress(f, 10).Invoke(5)
	if err != nil {
		t.Fatalf("single step: unexpected error: %v", err)
	}
	if got != "15" {
		t.Fatalf("got %v, want %q", got, "15")
	}

	_, err = hof.Compress(f, 10).Invoke(5, 6)
	if !errors.Is(err, hof.ErrNotInvocable) {
		t.Fatalf("second step must be excluded, got %v", err)
	}
}

// TestCompressLeftToRightSinglePass: each element is consumed exactly once,
// in order.
func TestCompressLeftToRightSinglePass(t *testing.T) {
	var seen []int
	f := func(acc, x int) int { seen = append(seen, x); return acc + x }
	if _, err := hof.Compress(f, 0).Invoke(1, 2, 3, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 3, 4}
	if len(seen) != len(want) {
		t.Fatalf("combining function invoked %d times, want %d", len(seen), len(want))
	}
	for i, x := range want {
		if seen[i] != x {
			t.Fatalf("element %d consumed as %d, want %d", i, seen[i], x)
		}
	}
}

// TestCompressStepErrorPropagation: an error from the combining function
// aborts the fold and is returned pointer-identical; later elements are
// never consumed.
func TestCompressStepErrorPropagation(t *testing.T) {
	sentinel := errors.New("boom")
	calls := 0
	f := func(acc, x int) (int, error) {
		calls++
		if x == 3 {
			return 0, sentinel
		}
		return acc + x, nil
	}
	_, err := hof.Compress(f, 0).Invoke(1, 2, 3, 4)
	if err != sentinel {
		t.Fatalf("got %v, want the sentinel pointer-identical", err)
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("errors.Is must match the sentinel")
	}
	if calls != 3 {
		t.Fatalf("combining function invoked %d times, want 3", calls)
	}
}

// TestCompressNilState: Compress(f, nil) captures a present-but-untyped-nil
// state, distinct from Compress(f).
func TestCompressNilState(t *testing.T) {
	f := func(acc []int, x int) []int { return append(acc, x) }
	got, err := hof.Compress(f, nil).Invoke(1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := got.([]int)
	if !ok || len(s) != 2 || s[0] != 1 || s[1] != 2 {
		t.Fatalf("got %v, want [1 2]", got)
	}

	got, err = hof.Compress(f, nil).Invoke()
	if err != nil {
		t.Fatalf("terminal with nil state: unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

// TestCompressTooManyStates: more than one initial state panics.
func TestCompressTooManyStates(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		if r != "hof: Compress accepts at most one initial state" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()
	hof.Compress(plus, 1, 2)
}

// TestCompressNoThrowComposition: a pure chain resolves guaranteed
// error-free, any fallible step poisons the mark, terminal shapes are
// vacuously true.
func TestCompressNoThrowComposition(t *testing.T) {
	pure := hof.Compress(plus, 0)
	res, err := pure.Resolve(hof.SignatureOf(1, 2, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.NoThrow {
		t.Fatalf("pure chain must resolve NoThrow")
	}

	fallible := func(a, b int) (int, error) { return a + b, nil }
	res, err = hof.Compress(fallible, 0).Resolve(hof.SignatureOf(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NoThrow {
		t.Fatalf("fallible step must poison NoThrow")
	}

	res, err = hof.Compress(fallible, 0).Resolve(hof.SignatureOf())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.NoThrow {
		t.Fatalf("terminal shape performs no call; NoThrow must hold")
	}
}

// TestCompressComposition: a CompressAdaptor serves as the combining
// function of another Compress.
func TestCompressComposition(t *testing.T) {
	inner := hof.Compress(maxInt)
	got, err := hof.Compress(inner, 0).Invoke(3, 9, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// inner(acc, x) is a two-element fold, i.e. max(acc, x).
	if got != 9 {
		t.Fatalf("got %v, want 9", got)
	}
}

// TestCompressAccessors: the combining function and captured state are
// observable.
func TestCompressAccessors(t *testing.T) {
	a := hof.Compress(plus, 7)
	if _, ok := a.State(); !ok {
		t.Fatalf("captured state not reported")
	}
	if z, _ := a.State(); z != 7 {
		t.Fatalf("state = %v, want 7", z)
	}
	if _, ok := hof.Compress(plus).State(); ok {
		t.Fatalf("unary adaptor must report no captured state")
	}
	if got, err := a.Combiner().Invoke(2, 3); err != nil || got != 5 {
		t.Fatalf("combiner invoke = %v, %v; want 5, nil", got, err)
	}
}
