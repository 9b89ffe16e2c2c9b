// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ErrNotInvocable is the sentinel matched by errors.Is when no candidate
// form of an adaptor applies to a signature.
var ErrNotInvocable = errors.New("hof: not invocable")

// NotInvocableError reports that a signature matched no candidate form.
// It carries every candidate's exclusion reason, in declaration order.
// No user code has run when this error is produced.
type NotInvocableError struct {
	Sig      Signature
	Excluded []error
}

// Error renders the signature and each candidate's exclusion reason.
func (e *NotInvocableError) Error() string {
	var b strings.Builder
	b.WriteString("hof: no applicable form for ")
	b.WriteString(e.Sig.String())
	for _, x := range e.Excluded {
		b.WriteString("\n\t")
		b.WriteString(x.Error())
	}
	return b.String()
}

// Unwrap returns the exclusion reasons combined into one traversable error.
func (e *NotInvocableError) Unwrap() error {
	return multierr.Combine(e.Excluded...)
}

// Is matches the ErrNotInvocable sentinel.
func (e *NotInvocableError) Is(target error) bool {
	return target == ErrNotInvocable
}

// excluded builds an exclusion reason. Any error returned from a
// Form.Resolve is an exclusion by contract; this constructor exists so
// internal reasons read uniformly.
func excluded(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
