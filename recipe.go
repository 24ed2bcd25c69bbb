// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Recipe produces a value of type T on demand. A recipe has no observable
// side effects before it is invoked, and is invoked at most once per
// realization generation.
type Recipe[T any] func() (T, error)

// Bind returns a holder that applies ctor to a copy of a on first access.
// The argument is captured by value at the call site: it may go out of
// scope, or be mutated by the caller, without affecting the deferred
// construction.
func Bind[A, T any](ctor func(A) T, a A) *Deferred[T] {
	return &Deferred[T]{recipe: func() (T, error) {
		return ctor(a), nil
	}}
}

// Bind2 is Bind for two-argument constructors.
func Bind2[A, B, T any](ctor func(A, B) T, a A, b B) *Deferred[T] {
	return &Deferred[T]{recipe: func() (T, error) {
		return ctor(a, b), nil
	}}
}

// Bind3 is Bind for three-argument constructors.
func Bind3[A, B, C, T any](ctor func(A, B, C) T, a A, b B, c C) *Deferred[T] {
	return &Deferred[T]{recipe: func() (T, error) {
		return ctor(a, b, c), nil
	}}
}

// ConstructAt runs the recipe and writes the result into the storage at p.
// The prior contents of *p are overwritten only on success; a recipe
// failure leaves *p untouched. A nil recipe reports ErrNoRecipe.
func ConstructAt[T any](p *T, r Recipe[T]) error {
	if r == nil {
		return ErrNoRecipe
	}
	v, err := r()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// DestroyAt releases the value at p without releasing the backing
// storage: the teardown hook runs on the live value (nil = no-op), then
// *p is overwritten with the zero value so interior references are
// dropped.
func DestroyAt[T any](p *T, teardown func(*T)) {
	if teardown != nil {
		teardown(p)
	}
	var zero T
	*p = zero
}
