// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

import "reflect"

// Left-fold engine shared by the Compress forms.
//
// Resolution walks the element types once, threading the accumulator type:
// the combining function's result type at step k becomes the accumulator
// type at step k+1, so heterogeneous accumulation is legal. Evaluation is a
// flat loop over the elements: strictly left-to-right, single pass, each
// element consumed exactly once, the combining function invoked exactly
// once per element and never for the terminal case.

// foldResolve computes the contract of folding f over elements of the given
// types, starting from accumulator type acc (nil for an untyped nil state).
// Any step whose combination is excluded, or produces no value, excludes
// the whole fold; the reason names the step.
func foldResolve(f Callable, acc reflect.Type, elems Signature) (Resolution, error) {
	noThrow := true
	step := Signature{acc, nil}
	for i, e := range elems {
		step[0], step[1] = acc, e
		r, err := f.Resolve(step)
		if err != nil {
			return Resolution{}, excluded("step %d: %w", i, err)
		}
		if r.Result == nil {
			return Resolution{}, excluded("step %d: combining function produces no value", i)
		}
		acc = r.Result
		noThrow = noThrow && r.NoThrow
	}
	return Resolution{Result: acc, NoThrow: noThrow}, nil
}

// foldApply folds f over elems starting from state. An error from any step
// aborts the fold and propagates unchanged; no further element is consumed.
func foldApply(f Callable, state reflect.Value, elems []reflect.Value) (reflect.Value, error) {
	if len(elems) == 0 {
		return state, nil
	}
	in := acquireScratch(2)
	for _, x := range elems {
		(*in)[0], (*in)[1] = state, x
		v, err := f.call(*in)
		if err != nil {
			releaseScratch(in)
			return reflect.Value{}, err
		}
		state = v
	}
	releaseScratch(in)
	return state, nil
}
