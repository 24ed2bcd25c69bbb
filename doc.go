// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lazy provides a deferred-construction value container.
//
// A [Deferred] holds a recipe for constructing a value of type T and
// postpones the construction until first access. After that it behaves
// like the value itself: accessors, assignment, comparison, and swap all
// operate on the realized value. Reset tears the value down and returns
// the holder to the unrealized state.
//
// # Architecture
//
//   - Recipes: A [Recipe] produces the value on demand. Recipes come from
//     [New] (zero value), [Of] (captured value), [From]/[FromErr]
//     (generator callables), and [Bind]/[Bind2]/[Bind3] (constructor
//     function plus captured arguments).
//   - At-most-once: Every access operator forces realization; the recipe
//     runs exactly once per generation. [Deferred.ValueOr] is the one
//     observer that never forces.
//   - Lifecycle: [Deferred.Reset] runs the teardown hook, releases the
//     value, and retains the recipe so a later touch reconstructs it.
//   - Transfer: [Deferred.Clone] and [Deferred.Move] copy or transfer both
//     realized values and pending recipes. [Convert]/[ConvertMove] cross
//     value types through an explicit conversion function.
//   - Error Handling: A missing recipe reports [ErrNoRecipe]; recipe
//     failures propagate unchanged. [Try] reports the outcome as
//     [code.hybscloud.com/kont.Either] for sum-typed consumers.
//   - Concurrency: [Deferred] is not safe for concurrent use. [Synced] is
//     the synchronized first-touch variant, built on
//     [code.hybscloud.com/atomix] state transitions with
//     [code.hybscloud.com/iox.Backoff] contention waiting.
//
// # Forcing Semantics
//
//   - Forcing: [Deferred.Value], [Deferred.Ptr], [Deferred.MustValue],
//     [Deferred.MustPtr], [Deferred.Initialize], [Equal], [Compare],
//     [Hash], [Try].
//   - Never forcing: [Deferred.ValueOr], [Deferred.HasValue],
//     [Deferred.Generation], [Deferred.Reset], [Deferred.Swap].
//
// # Example
//
//	d := lazy.Bind2(func(s string, n int) string { return s[:n] }, "Hello World", 5)
//	_ = d.HasValue() // false: nothing constructed yet
//	v, _ := d.Value() // "Hello": constructed on first access
//	d.Reset()         // torn down; the recipe is retained
package lazy
