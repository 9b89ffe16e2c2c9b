// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

// Pair owns two components with construction order fixed: A before B.
// Access is read-only; the components never alias each other.
//
// Zero-size components occupy no space under Go struct layout, so a pair
// whose first component is stateless is as small as its second component
// alone. The one caveat is a trailing zero-size field, which Go pads to
// keep interior pointers valid; that is a size delta only, never a
// correctness concern.
type Pair[A, B any] struct {
	first  A
	second B
}

// MakePair constructs a pair from its two components.
func MakePair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{first: first, second: second}
}

// First returns the first component.
func (p Pair[A, B]) First() A { return p.first }

// Second returns the second component.
func (p Pair[A, B]) Second() B { return p.second }
