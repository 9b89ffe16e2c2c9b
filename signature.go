// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

import (
	"encoding/binary"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Signature is the ordered list of argument types of a call.
// A nil element denotes an untyped nil argument.
type Signature []reflect.Type

// SignatureOf returns the signature of a concrete argument list.
// Each element is the argument's dynamic type; nil arguments map to nil.
func SignatureOf(args ...any) Signature {
	if len(args) == 0 {
		return nil
	}
	sig := make(Signature, len(args))
	for i, a := range args {
		sig[i] = reflect.TypeOf(a)
	}
	return sig
}

// String renders the signature for diagnostics, e.g. "(int, string, <nil>)".
func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		if t == nil {
			b.WriteString("<nil>")
		} else {
			b.WriteString(t.String())
		}
	}
	b.WriteByte(')')
	return b.String()
}

// equal reports whether two signatures are identical element-wise.
func (s Signature) equal(o Signature) bool {
	if len(s) != len(o) {
		return false
	}
	for i, t := range s {
		if t != o[i] {
			return false
		}
	}
	return true
}

// Type interning for signature hashing. Each distinct reflect.Type is
// assigned a stable 64-bit id; the signature digest is xxhash over the id
// stream. A hash collision degrades to recomputation via equal, never to a
// wrong plan.

var typeIDs sync.Map // reflect.Type -> uint64
var nextTypeID atomic.Uint64

// typeID returns the interned id of t. The nil type uses id 0.
func typeID(t reflect.Type) uint64 {
	if t == nil {
		return 0
	}
	if id, ok := typeIDs.Load(t); ok {
		return id.(uint64)
	}
	id := nextTypeID.Add(1)
	actual, _ := typeIDs.LoadOrStore(t, id)
	return actual.(uint64)
}

// hash returns the xxhash digest of the signature's interned type ids.
func (s Signature) hash() uint64 {
	var d xxhash.Digest
	d.Reset()
	var buf [8]byte
	for _, t := range s {
		binary.LittleEndian.PutUint64(buf[:], typeID(t))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
