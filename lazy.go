// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Deferred is a holder that constructs its value of type T on first access.
//
// The zero value has no recipe: forcing it reports ErrNoRecipe until a
// value is supplied via Set or Assign. Constructed holders always carry a
// recipe and start unrealized.
//
// A Deferred is not safe for concurrent use; see Synced for the
// synchronized first-touch variant.
type Deferred[T any] struct {
	value    T
	realized bool
	recipe   Recipe[T]
	teardown func(*T)
	gen      Generation
}

// New returns a holder whose recipe produces the zero value of T,
// the Go analog of default construction.
func New[T any]() *Deferred[T] {
	return &Deferred[T]{recipe: func() (T, error) {
		var zero T
		return zero, nil
	}}
}

// Of returns a holder whose recipe yields a copy of v captured now.
// The holder stays unrealized: handing it a live value does not
// construct anything before first access.
func Of[T any](v T) *Deferred[T] {
	return &Deferred[T]{recipe: func() (T, error) {
		return v, nil
	}}
}

// From returns a holder whose recipe invokes the generator ctor on first
// access.
//
// A nil ctor yields a holder with no recipe; forcing it reports
// ErrNoRecipe.
func From[T any](ctor func() T) *Deferred[T] {
	if ctor == nil {
		return &Deferred[T]{}
	}
	return &Deferred[T]{recipe: func() (T, error) {
		return ctor(), nil
	}}
}

// FromErr returns a holder whose recipe invokes the fallible generator
// ctor on first access. A failure leaves the holder unrealized and
// propagates to the forcing caller, which may retry.
//
// A nil ctor yields a holder with no recipe; forcing it reports
// ErrNoRecipe.
func FromErr[T any](ctor func() (T, error)) *Deferred[T] {
	if ctor == nil {
		return &Deferred[T]{}
	}
	return &Deferred[T]{recipe: Recipe[T](ctor)}
}

// WithTeardown attaches a hook invoked on the live value immediately
// before it is released by Reset, for side effects outside the value
// itself (e.g. closing an externally owned handle stored inside T).
// Returns d for chaining at construction sites.
func (d *Deferred[T]) WithTeardown(fn func(*T)) *Deferred[T] {
	d.teardown = fn
	return d
}

// HasValue reports whether the holder currently contains a realized value.
// Never forces.
func (d *Deferred[T]) HasValue() bool {
	return d.realized
}

// Generation returns the realization stamp of the current live value,
// or 0 if the holder is unrealized. Never forces.
func (d *Deferred[T]) Generation() Generation {
	return d.gen
}

// Initialize forces realization. Idempotent: a realized holder is left
// untouched. The realized flag flips only after the recipe returns
// without error, so a failing recipe never leaves the holder claiming a
// value it does not have.
func (d *Deferred[T]) Initialize() error {
	if d.realized {
		return nil
	}
	if d.recipe == nil {
		return ErrNoRecipe
	}
	if err := ConstructAt(&d.value, d.recipe); err != nil {
		return err
	}
	d.realized = true
	d.gen = nextGeneration()
	return nil
}

// Value forces realization and returns the held value.
func (d *Deferred[T]) Value() (T, error) {
	if err := d.Initialize(); err != nil {
		var zero T
		return zero, err
	}
	return d.value, nil
}

// Ptr forces realization and returns a pointer to the stored value.
// Mutations through the pointer are visible to later accesses. The
// pointer is invalidated by Reset, Move, and Swap.
func (d *Deferred[T]) Ptr() (*T, error) {
	if err := d.Initialize(); err != nil {
		return nil, err
	}
	return &d.value, nil
}

// MustValue is like Value but panics on recipe failure. Intended for
// recipes that cannot fail (New, Of, From, Bind), where an error is a
// programming bug rather than a recoverable condition.
func (d *Deferred[T]) MustValue() T {
	v, err := d.Value()
	if err != nil {
		panic("lazy: MustValue on holder that failed to realize: " + err.Error())
	}
	return v
}

// MustPtr is like Ptr but panics on recipe failure.
func (d *Deferred[T]) MustPtr() *T {
	p, err := d.Ptr()
	if err != nil {
		panic("lazy: MustPtr on holder that failed to realize: " + err.Error())
	}
	return p
}

// ValueOr returns the held value if already realized, else def.
// This is the one accessor guaranteed not to force realization.
func (d *Deferred[T]) ValueOr(def T) T {
	if d.realized {
		return d.value
	}
	return def
}

// Set assigns a raw value. On a realized holder this is ordinary value
// assignment. On an unrealized holder it realizes immediately with v and
// discards the pending recipe; a later Reset therefore leaves the holder
// with nothing to reconstruct from until a new recipe or value arrives.
func (d *Deferred[T]) Set(v T) {
	if d.realized {
		d.value = v
		return
	}
	d.value = v
	d.realized = true
	d.gen = nextGeneration()
	d.recipe = nil
}

// Reset tears down the live value: the teardown hook runs first, then the
// value slot is released. No-op on an unrealized holder. The recipe is
// retained, so a subsequent access reconstructs from the original recipe.
func (d *Deferred[T]) Reset() {
	if !d.realized {
		return
	}
	DestroyAt(&d.value, d.teardown)
	d.realized = false
	d.gen = 0
}

// Swap exchanges the complete states of d and other: value, realized
// flag, recipe, teardown, and generation travel together. A mixed
// realized/unrealized swap therefore moves the live value to the other
// holder along with its bookkeeping; neither side is forced.
func (d *Deferred[T]) Swap(other *Deferred[T]) {
	*d, *other = *other, *d
}
