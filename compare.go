// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"hash/maphash"

	"golang.org/x/exp/constraints"
)

// Equal forces both holders and compares the realized values with ==.
// Forcing is a deliberate, observable side effect of comparison: after a
// successful Equal both operands report HasValue.
func Equal[T comparable](a, b *Deferred[T]) (bool, error) {
	av, err := a.Value()
	if err != nil {
		return false, err
	}
	bv, err := b.Value()
	if err != nil {
		return false, err
	}
	return av == bv, nil
}

// EqualValue forces a and compares its realized value against v.
func EqualValue[T comparable](a *Deferred[T], v T) (bool, error) {
	av, err := a.Value()
	if err != nil {
		return false, err
	}
	return av == v, nil
}

// Compare forces both holders and orders the realized values: -1 if
// a < b, 0 if equal, +1 if a > b. The sign covers all four ordering
// relations of the underlying type.
func Compare[T constraints.Ordered](a, b *Deferred[T]) (int, error) {
	av, err := a.Value()
	if err != nil {
		return 0, err
	}
	bv, err := b.Value()
	if err != nil {
		return 0, err
	}
	return order(av, bv), nil
}

// CompareValue forces a and orders its realized value against v.
func CompareValue[T constraints.Ordered](a *Deferred[T], v T) (int, error) {
	av, err := a.Value()
	if err != nil {
		return 0, err
	}
	return order(av, v), nil
}

func order[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Hash forces the holder and hashes the realized value with
// maphash.Comparable under seed. Equal values under the same seed hash
// equal.
func Hash[T comparable](seed maphash.Seed, d *Deferred[T]) (uint64, error) {
	v, err := d.Value()
	if err != nil {
		return 0, err
	}
	return maphash.Comparable(seed, v), nil
}
