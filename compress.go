// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

import "reflect"

// CompressAdaptor folds a binary combining function over its call
// arguments. Two call shapes exist, tried in declaration order:
//
//   - binary: a captured initial state seeds the fold.
//     Compress(f, z)() == z with f not invoked;
//     Compress(f, z)(x, xs...) == Compress(f, f(z, x))(xs...).
//   - unary: the first call argument seeds the fold.
//     Compress(f)(x) == x with f not invoked;
//     Compress(f)(x, y, xs...) == Compress(f)(f(x, y), xs...).
//
// Evaluation is strictly left-to-right and single pass; the accumulator
// type may change at every step. The unary shape applied to zero arguments
// is a constraint failure — no default value is ever synthesized.
type CompressAdaptor struct {
	inner    BuiltAdaptor
	f        Callable
	state    any
	hasState bool
}

// Compress builds a left-fold adaptor over combining function f, which must
// be invocable with (state, element). An optional initial state may follow
// f; passing more than one panics. Compress(f, nil) captures a
// present-but-untyped-nil state, distinct from Compress(f).
func Compress(f any, state ...any) CompressAdaptor {
	if len(state) > 1 {
		panic("hof: Compress accepts at most one initial state")
	}
	a := CompressAdaptor{f: Fn(f), hasState: len(state) == 1}
	if a.hasState {
		a.state = state[0]
	}
	a.inner = Build(
		Form{Name: "compress binary form", Resolve: a.resolveBinary},
		Form{Name: "compress unary form", Resolve: a.resolveUnary},
	)
	return a
}

// Combiner returns the normalized combining function.
func (a CompressAdaptor) Combiner() Callable { return a.f }

// State returns the captured initial state and whether one was captured.
func (a CompressAdaptor) State() (any, bool) { return a.state, a.hasState }

// Invoke folds over the arguments. A signature matching neither shape
// returns *NotInvocableError; step errors propagate unchanged.
func (a CompressAdaptor) Invoke(args ...any) (any, error) {
	return a.inner.Invoke(args...)
}

// Resolve reports which fold shape applies to sig, if any.
func (a CompressAdaptor) Resolve(sig Signature) (Resolution, error) {
	return a.inner.Resolve(sig)
}

// resolveBinary is the shape seeded by the captured state. Zero arguments
// is the terminal case: the state is returned unchanged and the combining
// function is not invoked.
func (a CompressAdaptor) resolveBinary(sig Signature) (Resolution, Apply, error) {
	if !a.hasState {
		return Resolution{}, nil, excluded("no captured initial state")
	}
	res, err := foldResolve(a.f, reflect.TypeOf(a.state), sig)
	if err != nil {
		return Resolution{}, nil, err
	}
	f, seed := a.f, valueOf(a.state)
	return res, func(in []reflect.Value) (reflect.Value, error) {
		return foldApply(f, seed, in)
	}, nil
}

// resolveUnary is the shape seeded by the first argument. One argument is
// the terminal case: it is returned unchanged and the combining function is
// not invoked.
func (a CompressAdaptor) resolveUnary(sig Signature) (Resolution, Apply, error) {
	if a.hasState {
		return Resolution{}, nil, excluded("initial state already captured")
	}
	if len(sig) == 0 {
		return Resolution{}, nil, excluded("a fold of zero arguments requires a captured initial state")
	}
	res, err := foldResolve(a.f, sig[0], sig[1:])
	if err != nil {
		return Resolution{}, nil, err
	}
	f := a.f
	return res, func(in []reflect.Value) (reflect.Value, error) {
		return foldApply(f, in[0], in[1:])
	}, nil
}
