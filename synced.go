// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Synced state word values. Transitions: empty → building (CAS by the
// constructing goroutine), building → ready (success) or building → empty
// (recipe failure, allowing a retry).
const (
	syncedEmpty uint32 = iota
	syncedBuilding
	syncedReady
)

// Synced is the synchronized first-touch variant of Deferred: safe for
// concurrent access, with the recipe invoked by exactly one goroutine.
// Losers of the construction race wait with adaptive backoff until the
// winner publishes the value.
//
// Synced covers first-touch only. There is no Reset, Swap, or assignment:
// the value, once published, is immutable. The rich lifecycle stays on
// Deferred under caller-provided synchronization.
type Synced[T any] struct {
	state  atomix.Uint32
	value  T
	recipe Recipe[T]
}

// NewSynced returns a synchronized holder constructing from r on first
// touch. A nil r yields a holder that reports ErrNoRecipe.
func NewSynced[T any](r Recipe[T]) *Synced[T] {
	return &Synced[T]{recipe: r}
}

// HasValue reports whether the value has been published. Never forces.
func (s *Synced[T]) HasValue() bool {
	return s.state.Load() == syncedReady
}

// Value returns the published value, constructing it on first touch.
// Exactly one goroutine runs the recipe; concurrent callers wait with
// iox.Backoff until it publishes. A recipe failure returns the state to
// empty so a later caller can retry, and reports the error to the caller
// that ran the recipe.
func (s *Synced[T]) Value() (T, error) {
	var bo iox.Backoff
	for {
		switch s.state.Load() {
		case syncedReady:
			return s.value, nil
		case syncedEmpty:
			if !s.state.CompareAndSwap(syncedEmpty, syncedBuilding) {
				continue
			}
			if s.recipe == nil {
				s.state.Store(syncedEmpty)
				var zero T
				return zero, ErrNoRecipe
			}
			v, err := s.recipe()
			if err != nil {
				s.state.Store(syncedEmpty)
				var zero T
				return zero, err
			}
			s.value = v
			s.state.Store(syncedReady)
			return v, nil
		default:
			bo.Wait()
		}
	}
}

// MustValue is like Value but panics on recipe failure.
func (s *Synced[T]) MustValue() T {
	v, err := s.Value()
	if err != nil {
		panic("lazy: MustValue on synced holder that failed to realize: " + err.Error())
	}
	return v
}
