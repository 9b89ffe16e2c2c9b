// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

import "reflect"

// Apply is a resolved call plan. Arguments arrive already boxed and flow
// between layers without re-boxing; an invalid element denotes an untyped
// nil argument, and an invalid result denotes a void value.
type Apply func(in []reflect.Value) (reflect.Value, error)

// Form is one candidate call shape of an adaptor. Resolve inspects a
// signature and returns either the shape's contract plus its plan, or an
// exclusion error. By contract, any error returned from Resolve is an
// exclusion: the form is removed from consideration for that signature and
// the next form is tried.
type Form struct {
	Name    string
	Resolve func(sig Signature) (Resolution, Apply, error)
}

// BuiltAdaptor is an adaptor assembled from candidate forms. Its call
// operator consults the resolver: the first form, in declaration order,
// whose constraints are satisfied for the argument signature wins, and that
// decision is made once per signature, never per call. Copies of a
// BuiltAdaptor share one resolution cache.
type BuiltAdaptor struct {
	r *resolver
}

// Build assembles forms into an adaptor. Declaration order is the only
// priority policy: a later form is reached exactly when every earlier form
// excluded itself for the signature.
func Build(forms ...Form) BuiltAdaptor {
	return BuiltAdaptor{r: newResolver(forms)}
}

// Resolve reports the contract of the winning form for sig, or
// *NotInvocableError listing every form's exclusion reason. No user code
// runs in either case.
func (a BuiltAdaptor) Resolve(sig Signature) (Resolution, error) {
	res, _, err := a.r.resolve(sig)
	return res, err
}

// Invoke dispatches to the winning form's plan. Errors returned by wrapped
// user callables propagate unchanged.
func (a BuiltAdaptor) Invoke(args ...any) (any, error) {
	_, plan, err := a.r.resolve(SignatureOf(args...))
	if err != nil {
		return nil, err
	}
	in := acquireScratch(len(args))
	for i, arg := range args {
		(*in)[i] = valueOf(arg)
	}
	out, err := plan(*in)
	releaseScratch(in)
	if err != nil {
		return nil, err
	}
	return resultValue(out), nil
}
