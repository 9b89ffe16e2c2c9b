// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()
var anyType = reflect.TypeOf((*any)(nil)).Elem()

// notInvocable panics with a descriptive message for values Fn cannot wrap.
// Extracted as a noinline function so that Fn remains inlineable.
//
//go:noinline
func notInvocable(v any) {
	panic(fmt.Sprintf("hof: not an invocable: %T", v))
}

type callableKind uint8

const (
	kindFunc callableKind = iota + 1
	kindResolvable
	kindOpaque
)

// Callable is an immutable, normalized invocable. It wraps exactly one of:
//
//   - a Go func value — full static contract derived from its type
//   - a value implementing both [Invocable] and [Resolvable] — full static
//     contract by delegation (every adaptor in this package qualifies)
//   - a value implementing only [Invocable] — opaque contract: result type
//     any, never guaranteed error-free
//
// A Callable is never mutated after construction; invocation goes through a
// read-only access path. Callable itself satisfies [Invocable] and
// [Resolvable], so normalizer output composes anywhere an invocable is
// expected. The zero Callable is not usable; always construct through [Fn].
type Callable struct {
	kind callableKind
	fn   reflect.Value
	inv  Invocable
	res  Resolvable
}

// Fn normalizes v into a [Callable]. It is idempotent on Callable and on
// anything already normalized. Anything that is neither a func nor an
// [Invocable] panics.
func Fn(v any) Callable {
	if c, ok := v.(Callable); ok {
		return c
	}
	if inv, ok := v.(Invocable); ok {
		if res, ok := v.(Resolvable); ok {
			return Callable{kind: kindResolvable, inv: inv, res: res}
		}
		return Callable{kind: kindOpaque, inv: inv}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		notInvocable(v)
	}
	return Callable{kind: kindFunc, fn: rv}
}

// Invoke resolves the argument signature and applies the callable.
// A constraint failure returns the resolution error without calling
// anything; errors from the wrapped func propagate unchanged.
func (c Callable) Invoke(args ...any) (any, error) {
	if c.kind != kindFunc {
		return c.inv.Invoke(args...)
	}
	if _, err := c.Resolve(SignatureOf(args...)); err != nil {
		return nil, err
	}
	in := acquireScratch(len(args))
	for i, a := range args {
		(*in)[i] = valueOf(a)
	}
	out, err := c.call(*in)
	releaseScratch(in)
	if err != nil {
		return nil, err
	}
	return resultValue(out), nil
}

// Resolve reports whether the callable applies to sig and with what
// contract. For the func kind the check is arity and per-parameter
// assignability against the func's static type; for the resolvable kind it
// is delegated; the opaque kind is always applicable with an any result.
func (c Callable) Resolve(sig Signature) (Resolution, error) {
	switch c.kind {
	case kindResolvable:
		return c.res.Resolve(sig)
	case kindOpaque:
		return Resolution{Result: anyType}, nil
	}
	ft := c.fn.Type()
	if ft.IsVariadic() {
		if len(sig) < ft.NumIn()-1 {
			return Resolution{}, excluded("arity: got %d arguments, want at least %d", len(sig), ft.NumIn()-1)
		}
	} else if len(sig) != ft.NumIn() {
		return Resolution{}, excluded("arity: got %d arguments, want %d", len(sig), ft.NumIn())
	}
	for i, argt := range sig {
		param := variadicParam(ft, i)
		if argt == nil {
			if !nilable(param) {
				return Resolution{}, excluded("argument %d: untyped nil is not assignable to %s", i, param)
			}
			continue
		}
		if !argt.AssignableTo(param) {
			return Resolution{}, excluded("argument %d: %s is not assignable to %s", i, argt, param)
		}
	}
	return c.resultShape()
}

// resultShape maps the func's results onto the uniform call contract.
// A trailing error result is the error channel; zero non-error results mean
// a void value; exactly one non-error result is the value. Two or more
// non-error results are an exclusion, not an error at normalization.
func (c Callable) resultShape() (Resolution, error) {
	ft := c.fn.Type()
	n := ft.NumOut()
	hasErr := n > 0 && ft.Out(n-1) == errorType
	if hasErr {
		n--
	}
	if n > 1 {
		return Resolution{}, excluded("func returns %d non-error results; at most one is supported", n)
	}
	res := Resolution{NoThrow: !hasErr}
	if n == 1 {
		res.Result = ft.Out(0)
	}
	return res, nil
}

// NoThrow reports whether every possible call is statically free of the
// error channel: a func without a trailing error result, or a wrapped value
// that itself reports so. Opaque invocables are never guaranteed.
func (c Callable) NoThrow() bool {
	if c.kind == kindFunc {
		ft := c.fn.Type()
		return ft.NumOut() == 0 || ft.Out(ft.NumOut()-1) != errorType
	}
	if nt, ok := c.inv.(interface{ NoThrow() bool }); ok {
		return nt.NoThrow()
	}
	return false
}

// call applies the callable to already-boxed arguments. An invalid element
// denotes an untyped nil argument and is materialized as the parameter's
// zero value. The input slice is left untouched.
func (c Callable) call(in []reflect.Value) (reflect.Value, error) {
	if c.kind != kindFunc {
		args := make([]any, len(in))
		for i, v := range in {
			if v.IsValid() {
				args[i] = v.Interface()
			}
		}
		out, err := c.inv.Invoke(args...)
		if err != nil {
			return reflect.Value{}, err
		}
		return valueOf(out), nil
	}
	ft := c.fn.Type()
	args := in
	var buf *[]reflect.Value
	for i, v := range in {
		if v.IsValid() {
			continue
		}
		if buf == nil {
			buf = acquireScratch(len(in))
			copy(*buf, in)
			args = *buf
		}
		(*buf)[i] = reflect.Zero(variadicParam(ft, i))
	}
	out := c.fn.Call(args)
	if buf != nil {
		releaseScratch(buf)
	}
	n := len(out)
	if n > 0 && ft.Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			return reflect.Value{}, e.Interface().(error)
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return reflect.Value{}, nil
	}
	return out[0], nil
}

// variadicParam returns the declared type of parameter i, unrolling the
// variadic tail to its element type.
func variadicParam(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}

// nilable reports whether t can hold an untyped nil.
func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// valueOf boxes an argument; nil maps to the invalid value.
func valueOf(a any) reflect.Value {
	if a == nil {
		return reflect.Value{}
	}
	return reflect.ValueOf(a)
}

// resultValue unboxes a call result; the invalid value maps to nil.
func resultValue(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}
