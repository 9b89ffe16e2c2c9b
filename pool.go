// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

import (
	"reflect"
	"sync"
)

// Scratch pools for argument buffers on the invocation hot path.
// releaseScratch zeroes all elements before returning a buffer, so a pooled
// buffer never pins values from a previous call. Buffers never escape a
// single invocation; pooling is invisible to callers.

var scratchPool = sync.Pool{New: func() any {
	s := make([]reflect.Value, 0, 8)
	return &s
}}

// acquireScratch returns a buffer of length n.
func acquireScratch(n int) *[]reflect.Value {
	p := scratchPool.Get().(*[]reflect.Value)
	if cap(*p) < n {
		s := make([]reflect.Value, n)
		*p = s
		return p
	}
	*p = (*p)[:n]
	return p
}

// releaseScratch zeroes and returns a buffer to the pool.
func releaseScratch(p *[]reflect.Value) {
	s := *p
	for i := range s {
		s[i] = reflect.Value{}
	}
	*p = s[:0]
	scratchPool.Put(p)
}
