// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RevealAdaptor wraps any invocable transparently and reports resolution
// outcomes for tooling. Results and errors pass through unchanged; a failed
// resolution is reported at error level with every candidate's exclusion
// reason, a successful one at debug level with the resolved contract.
// Reporting never alters outcomes: "excluded" and "applicable" stay
// distinguishable through the error value alone, with no logger configured.
type RevealAdaptor struct {
	base Callable
	log  *zap.Logger
	tag  string
}

// RevealOption configures a RevealAdaptor.
type RevealOption func(*RevealAdaptor)

// WithLogger sets the report destination. The default is zap.NewNop().
func WithLogger(log *zap.Logger) RevealOption {
	return func(a *RevealAdaptor) { a.log = log }
}

// WithTag sets the correlation tag attached to every report. The default is
// a fresh uuid.
func WithTag(tag string) RevealOption {
	return func(a *RevealAdaptor) { a.tag = tag }
}

// Reveal wraps f with resolution reporting. Revealing a RevealAdaptor
// collapses to a single layer: the existing base is reused and opts apply
// on top of the existing configuration.
func Reveal(f any, opts ...RevealOption) RevealAdaptor {
	a := RevealAdaptor{log: zap.NewNop(), tag: uuid.NewString()}
	if prev, ok := f.(RevealAdaptor); ok {
		a = prev
	} else {
		a.base = Fn(f)
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Base returns the wrapped callable.
func (a RevealAdaptor) Base() Callable { return a.base }

// Tag returns the correlation tag.
func (a RevealAdaptor) Tag() string { return a.tag }

// Resolve delegates to the base and reports the outcome.
func (a RevealAdaptor) Resolve(sig Signature) (Resolution, error) {
	res, err := a.base.Resolve(sig)
	a.report(sig, res, err)
	return res, err
}

// Invoke delegates to the base, reporting the resolution outcome first.
// Runtime errors from the base are returned unchanged and not reported;
// only resolution outcomes are diagnostics.
func (a RevealAdaptor) Invoke(args ...any) (any, error) {
	sig := SignatureOf(args...)
	res, err := a.base.Resolve(sig)
	a.report(sig, res, err)
	if err != nil {
		return nil, err
	}
	return a.base.Invoke(args...)
}

// NoThrow delegates to the base's static mark.
func (a RevealAdaptor) NoThrow() bool { return a.base.NoThrow() }

func (a RevealAdaptor) report(sig Signature, res Resolution, err error) {
	if err != nil {
		var nie *NotInvocableError
		if errors.As(err, &nie) {
			a.log.Error("no applicable form",
				zap.String("tag", a.tag),
				zap.Stringer("signature", sig),
				zap.Errors("excluded", nie.Excluded),
			)
			return
		}
		a.log.Error("excluded",
			zap.String("tag", a.tag),
			zap.Stringer("signature", sig),
			zap.Error(err),
		)
		return
	}
	result := "<void>"
	if res.Result != nil {
		result = res.Result.String()
	}
	a.log.Debug("resolved",
		zap.String("tag", a.tag),
		zap.Stringer("signature", sig),
		zap.String("result", result),
		zap.Bool("nothrow", res.NoThrow),
	)
}
