// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import "errors"

// ErrNoRecipe reports a construction trigger on a holder with no recipe:
// a zero-value Deferred, a moved-from holder, or FromErr(nil). Recoverable:
// supply a value via Set or Assign and retry.
var ErrNoRecipe = errors.New("lazy: no recipe to construct value")

// IsNoRecipe reports whether err is, or wraps, ErrNoRecipe.
func IsNoRecipe(err error) bool {
	return errors.Is(err, ErrNoRecipe)
}
