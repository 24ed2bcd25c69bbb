// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import "code.hybscloud.com/kont"

// Try forces the holder and reports the outcome as a sum: Right carries
// the realized value, Left the recipe failure (including ErrNoRecipe).
// The kont.Either form composes with kont pipelines where a (T, error)
// pair cannot.
func Try[T any](d *Deferred[T]) kont.Either[error, T] {
	v, err := d.Value()
	if err != nil {
		return kont.Left[error, T](err)
	}
	return kont.Right[error](v)
}
