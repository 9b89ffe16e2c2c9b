// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

import "reflect"

// Three-stage currying pipeline. Every stage is a pure data transition
// except the last:
//
//	Decorate(f)                     — wraps decorator f, no invocation
//	Decorate(f).With(x)             — captures parameter x, no invocation
//	Decorate(f).With(x).Wrap(g)     — captures wrapped function g, no invocation
//	...Invoke(ys...)                — invokes f(x, g, ys...)
//
// The law is exact: Decorate(f).With(x).Wrap(g).Invoke(ys...) == f(x, g, ys...)
// for all x, g, ys. The decorator has full control of g: it may call it
// zero, one, or many times, before or after arbitrary side effects, or
// never. The wrapped function is forwarded to the decorator exactly as
// supplied, so the decorator's own parameter types decide what it accepts.

var invocableType = reflect.TypeOf((*Invocable)(nil)).Elem()
var decorationType = reflect.TypeOf(Decoration{})
var decoratorInvokeType = reflect.TypeOf(DecoratorInvoke{})

// DecorateAdaptor is the first currying stage: a wrapped decorator awaiting
// its captured parameter.
type DecorateAdaptor struct {
	f Callable
}

// Decorate wraps decorator f. No invocation occurs; f runs only when the
// terminal stage is invoked, as f(x, g, ys...).
func Decorate(f any) DecorateAdaptor {
	return DecorateAdaptor{f: Fn(f)}
}

// Decorator returns the normalized decorator function.
func (d DecorateAdaptor) Decorator() Callable { return d.f }

// With captures parameter x and produces the Decoration awaiting the
// function to wrap. No invocation occurs.
func (d DecorateAdaptor) With(x any) Decoration {
	return Decoration{p: MakePair(d.f, x)}
}

// Invoke is the uniform path of With: applicable to exactly one argument,
// returning the Decoration as a value.
func (d DecorateAdaptor) Invoke(args ...any) (any, error) {
	if _, err := d.Resolve(SignatureOf(args...)); err != nil {
		return nil, err
	}
	return d.With(args[0]), nil
}

// Resolve reports applicability of the capture stage: exactly one argument
// of any type.
func (d DecorateAdaptor) Resolve(sig Signature) (Resolution, error) {
	if len(sig) != 1 {
		return Resolution{}, &NotInvocableError{
			Sig:      append(Signature(nil), sig...),
			Excluded: []error{excluded("parameter capture: got %d arguments, want 1", len(sig))},
		}
	}
	return Resolution{Result: decorationType, NoThrow: true}, nil
}

// Decoration is the second currying stage: a decorator plus its captured
// parameter, awaiting the function it will wrap. Pure data; it performs no
// invocation by itself.
type Decoration struct {
	p Pair[Callable, any]
}

// Decorator returns the normalized decorator function.
func (d Decoration) Decorator() Callable { return d.p.First() }

// Parameter returns the captured parameter.
func (d Decoration) Parameter() any { return d.p.Second() }

// Wrap captures the function to decorate and produces the terminal
// callable stage. No invocation occurs. g must be a func or an
// [Invocable]; anything else panics, as in [Fn].
func (d Decoration) Wrap(g any) DecoratorInvoke {
	di := DecoratorInvoke{p: MakePair(d.p, Fn(g)), target: g}
	di.inner = Build(Form{Name: "decorator invoke", Resolve: di.resolveCall})
	return di
}

// Invoke is the uniform path of Wrap: applicable to exactly one
// normalizable argument, returning the DecoratorInvoke as a value.
func (d Decoration) Invoke(args ...any) (any, error) {
	if _, err := d.Resolve(SignatureOf(args...)); err != nil {
		return nil, err
	}
	return d.Wrap(args[0]), nil
}

// Resolve reports applicability of the wrap stage: exactly one argument
// that is itself invocable (a func or an [Invocable] value).
func (d Decoration) Resolve(sig Signature) (Resolution, error) {
	var reason error
	switch {
	case len(sig) != 1:
		reason = excluded("function capture: got %d arguments, want 1", len(sig))
	case sig[0] == nil:
		reason = excluded("function capture: untyped nil is not invocable")
	case sig[0].Kind() != reflect.Func && !sig[0].Implements(invocableType):
		reason = excluded("function capture: %s is not invocable", sig[0])
	default:
		return Resolution{Result: decoratorInvokeType, NoThrow: true}, nil
	}
	return Resolution{}, &NotInvocableError{
		Sig:      append(Signature(nil), sig...),
		Excluded: []error{reason},
	}
}

// DecoratorInvoke is the terminal stage: decorator, captured parameter, and
// wrapped function. It is a full adaptor and may be passed anywhere a
// callable is expected; only its invocation runs the decorator.
type DecoratorInvoke struct {
	p      Pair[Pair[Callable, any], Callable]
	target any
	inner  BuiltAdaptor
}

// Decorator returns the normalized decorator function.
func (di DecoratorInvoke) Decorator() Callable { return di.p.First().First() }

// Parameter returns the captured parameter.
func (di DecoratorInvoke) Parameter() any { return di.p.First().Second() }

// Target returns the normalized wrapped function.
func (di DecoratorInvoke) Target() Callable { return di.p.Second() }

// Invoke runs f(x, g, ys...) — the only point in the pipeline at which the
// decorator (and, at its discretion, the wrapped function) is called.
func (di DecoratorInvoke) Invoke(ys ...any) (any, error) {
	return di.inner.Invoke(ys...)
}

// Resolve reports whether the decorator applies to (x, g, ys...). When it
// does not, this stage is simply not invocable for those ys — it still
// exists and may apply to other signatures.
func (di DecoratorInvoke) Resolve(sig Signature) (Resolution, error) {
	return di.inner.Resolve(sig)
}

// resolveCall resolves the decorator against the full argument shape
// (x, g, ys...). The no-throw mark conjoins the decorator's resolved shape
// with the wrapped function's static mark: the shapes the decorator calls
// it with are unknowable here, so the conjunction is a sound
// under-approximation — the guarantee is never asserted falsely.
func (di DecoratorInvoke) resolveCall(sig Signature) (Resolution, Apply, error) {
	f := di.Decorator()
	x := di.Parameter()
	full := make(Signature, 0, len(sig)+2)
	full = append(full, reflect.TypeOf(x), reflect.TypeOf(di.target))
	full = append(full, sig...)
	res, err := f.Resolve(full)
	if err != nil {
		return Resolution{}, nil, err
	}
	res.NoThrow = res.NoThrow && di.Target().NoThrow()
	xv, gv := valueOf(x), valueOf(di.target)
	return res, func(in []reflect.Value) (reflect.Value, error) {
		buf := acquireScratch(len(in) + 2)
		(*buf)[0], (*buf)[1] = xv, gv
		copy((*buf)[2:], in)
		out, err := f.call(*buf)
		releaseScratch(buf)
		return out, err
	}, nil
}
