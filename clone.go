// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Clone returns an independent copy of d. A realized source yields a
// realized copy of the value (with its own fresh generation); an
// unrealized source yields a holder sharing the same recipe and teardown,
// still unrealized. The source is never touched: realizing the clone does
// not realize the original and vice versa.
func (d *Deferred[T]) Clone() *Deferred[T] {
	c := &Deferred[T]{recipe: d.recipe, teardown: d.teardown}
	if d.realized {
		c.value = d.value
		c.realized = true
		c.gen = nextGeneration()
	}
	return c
}

// Move transfers d's state into a new holder and empties d. A realized
// value moves without running the teardown hook: ownership transfers, and
// the new holder runs teardown on its eventual Reset. An unrealized
// recipe is stolen. Afterward d is unrealized with no recipe; forcing it
// reports ErrNoRecipe.
func (d *Deferred[T]) Move() *Deferred[T] {
	m := &Deferred[T]{recipe: d.recipe, teardown: d.teardown}
	if d.realized {
		m.value = d.value
		m.realized = true
		m.gen = d.gen
	}
	d.release()
	return m
}

// Assign copies rhs into d following the assignment contract:
//
//   - both realized: plain value assignment; d keeps its identity
//     (recipe, teardown, generation).
//   - d realized, rhs not: d's live value is left untouched; d adopts
//     rhs's recipe and teardown for any future Reset.
//   - d not realized, rhs realized: d realizes immediately with a copy of
//     rhs's value; d keeps its own recipe and teardown — a copy does not
//     duplicate resource ownership.
//   - neither realized: d takes rhs's recipe and teardown and stays
//     unrealized.
//
// rhs is never modified.
func (d *Deferred[T]) Assign(rhs *Deferred[T]) {
	switch {
	case d.realized && rhs.realized:
		d.value = rhs.value
	case d.realized:
		d.recipe = rhs.recipe
		d.teardown = rhs.teardown
	case rhs.realized:
		d.value = rhs.value
		d.realized = true
		d.gen = nextGeneration()
	default:
		d.recipe = rhs.recipe
		d.teardown = rhs.teardown
	}
}

// AssignMove is Assign with transfer semantics: the same destination
// branching, but rhs relinquishes its claim afterward. A realized rhs
// value transfers without its teardown running; the hook travels with the
// value, and rhs ends unrealized with no recipe.
func (d *Deferred[T]) AssignMove(rhs *Deferred[T]) {
	switch {
	case d.realized && rhs.realized:
		d.value = rhs.value
	case d.realized:
		d.recipe = rhs.recipe
		d.teardown = rhs.teardown
	case rhs.realized:
		d.value = rhs.value
		d.realized = true
		d.gen = rhs.gen
		d.teardown = rhs.teardown
	default:
		d.recipe = rhs.recipe
		d.teardown = rhs.teardown
	}
	rhs.release()
}

// release empties the holder without running teardown.
func (d *Deferred[T]) release() {
	var zero T
	d.value = zero
	d.realized = false
	d.recipe = nil
	d.teardown = nil
	d.gen = 0
}

// Convert returns a Deferred[T] copied from a Deferred[U] through conv.
// A realized source converts immediately into a realized holder; an
// unrealized source contributes its recipe, composed with conv and still
// deferred. The source is never touched or forced.
//
// The source teardown cannot carry across types; attach a new one with
// WithTeardown if the converted value needs it.
func Convert[T, U any](src *Deferred[U], conv func(U) T) *Deferred[T] {
	if src.realized {
		return &Deferred[T]{
			value:    conv(src.value),
			realized: true,
			gen:      nextGeneration(),
		}
	}
	recipe := src.recipe
	if recipe == nil {
		return &Deferred[T]{}
	}
	return &Deferred[T]{recipe: func() (T, error) {
		u, err := recipe()
		if err != nil {
			var zero T
			return zero, err
		}
		return conv(u), nil
	}}
}

// ConvertMove is Convert with transfer semantics: a realized source value
// moves through conv (no teardown runs), an unrealized recipe is stolen,
// and the source ends unrealized with no recipe.
func ConvertMove[T, U any](src *Deferred[U], conv func(U) T) *Deferred[T] {
	d := Convert(src, conv)
	src.release()
	return d
}
