// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hof provides composable function adaptors in Go.
//
// An adaptor wraps an arbitrary invocable and exposes a new, richer call
// contract while adding no runtime state beyond what is strictly needed.
// The core machinery is constrained dispatch: an adaptor offers several
// candidate call shapes, and a resolver decides — from argument types alone,
// before any user code runs — which shape applies to a given call signature.
// Shapes that do not apply are excluded from consideration, never turned
// into hard failures, so adaptors can coexist in overload families.
//
// # Design Philosophy
//
// hof provides:
//   - Minimal but complete interfaces for invocation and resolution
//   - Definition-time candidate exclusion instead of runtime branching
//   - Memoized resolution: the applicable form for a signature is decided once
//
// # Resolution Model
//
// "Definition time" in Go terms is resolution time: the first call with a
// given argument-type [Signature] runs every candidate [Form] through the
// resolver, in declaration order, and caches the winner (or the negative
// outcome) per signature. Subsequent calls with the same signature reuse the
// cached plan. The cache is semantically invisible; it never changes what a
// call returns.
//
// Key interfaces:
//
//   - [Invocable]: anything callable through the uniform (any, error) contract
//   - [Resolvable]: anything that can report applicability for a signature
//
// # Core Operations
//
// Factories:
//
//   - [Fn]: Normalize any invocable into a [Callable]
//   - [Compress]: Left-fold adaptor — Compress(f, z) folds with explicit
//     initial state, Compress(f) seeds the fold from the first argument
//   - [Decorate]: Two-stage currying adaptor —
//     Decorate(f).With(x).Wrap(g).Invoke(ys...) == f(x, g, ys...)
//   - [Reveal]: Transparent wrapper that reports exclusion diagnostics
//   - [Build]: Assemble candidate [Form] values into a new adaptor
//
// Every produced adaptor satisfies [Invocable] and [Resolvable], so adaptors
// compose with each other transparently: a [CompressAdaptor] can serve as the
// combining function of another fold, a [DecoratorInvoke] can be folded over.
//
// # Error Model
//
// Two failure kinds, never mixed:
//
//   - Constraint failure: a signature matches no candidate form. Resolution
//     (and invocation) returns [*NotInvocableError] carrying every candidate's
//     exclusion reason. No user code has run.
//   - Runtime failure: an error returned by a user-supplied callable
//     propagates unchanged through every adaptor layer. Adaptors never wrap,
//     translate, or suppress it, and raise no errors of their own during a
//     successfully resolved call.
//
// A resolved call shape also carries a computed no-throw mark: a plan is
// guaranteed error-free only when every nested call it performs is statically
// free of the error channel. The mark is always derived, never asserted.
//
// # Concurrency
//
// Evaluation is fully synchronous: construction and invocation are direct
// function calls with no background goroutines. Adaptor fields are fixed at
// construction, so concurrent invocations of the same adaptor value are safe
// provided the wrapped user callables are safe under concurrent read-only
// invocation. The only interior mutability is the lock-guarded resolution
// cache.
package hof
