// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

import (
	"reflect"
	"sync"
)

// Invocable is anything callable through the uniform (any, error) contract.
// All adaptors produced by this package implement it.
type Invocable interface {
	Invoke(args ...any) (any, error)
}

// Resolvable reports, for an argument-type signature, whether a call is
// well-formed and what contract it would have. An exclusion is reported as
// an error; it is never a hard failure, only removal from consideration.
type Resolvable interface {
	Resolve(sig Signature) (Resolution, error)
}

// Resolution is the definition-time contract of one applicable call shape.
type Resolution struct {
	// Result is the static result type; nil means the call produces no value.
	Result reflect.Type
	// NoThrow is true only when every nested call the shape performs is
	// statically free of the error channel. It is vacuously true for shapes
	// performing zero calls.
	NoThrow bool
}

// resolver dispatches a signature to the first applicable form, in
// declaration order, and memoizes the outcome per signature. Negative
// outcomes are cached too, so the decision is made once either way.
type resolver struct {
	forms []Form

	mu    sync.RWMutex
	cache map[uint64][]cacheLine
}

// cacheLine is one memoized outcome. Lines are verified by full signature
// equality after a hash hit; collisions chain within the bucket.
type cacheLine struct {
	sig  Signature
	res  Resolution
	plan Apply
	err  error
}

func newResolver(forms []Form) *resolver {
	return &resolver{forms: forms, cache: make(map[uint64][]cacheLine)}
}

// resolve returns the memoized outcome for sig, computing it on first use.
// The returned plan is nil exactly when err is non-nil.
func (r *resolver) resolve(sig Signature) (Resolution, Apply, error) {
	h := sig.hash()

	r.mu.RLock()
	for _, line := range r.cache[h] {
		if line.sig.equal(sig) {
			r.mu.RUnlock()
			return line.res, line.plan, line.err
		}
	}
	r.mu.RUnlock()

	res, plan, err := r.resolveSlow(sig)

	r.mu.Lock()
	// Another goroutine may have resolved the same signature concurrently;
	// outcomes are deterministic, so keeping the first line is enough.
	for _, line := range r.cache[h] {
		if line.sig.equal(sig) {
			r.mu.Unlock()
			return line.res, line.plan, line.err
		}
	}
	stored := make(Signature, len(sig))
	copy(stored, sig)
	r.cache[h] = append(r.cache[h], cacheLine{sig: stored, res: res, plan: plan, err: err})
	r.mu.Unlock()

	return res, plan, err
}

// resolveSlow tries every form in declaration order. The first form that
// returns a plan wins; every error is an exclusion, silently removed from
// consideration. When no form survives the outcome is *NotInvocableError.
func (r *resolver) resolveSlow(sig Signature) (Resolution, Apply, error) {
	var reasons []error
	for _, form := range r.forms {
		res, plan, err := form.Resolve(sig)
		if err != nil {
			reasons = append(reasons, excluded("%s: %w", form.Name, err))
			continue
		}
		return res, plan, nil
	}
	return Resolution{}, nil, &NotInvocableError{Sig: append(Signature(nil), sig...), Excluded: reasons}
}
