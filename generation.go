// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import "code.hybscloud.com/atomix"

// Generation is a monotonically increasing realization stamp. Every
// successful realization is assigned the next generation; 0 means
// unrealized. Two holders never share a generation, and a holder that is
// reset and re-realized receives a fresh one.
type Generation = uint32

// counter is the global monotonic counter for realization generations.
var counter atomix.Uint32

// nextGeneration returns the next monotonically increasing generation.
func nextGeneration() Generation {
	return counter.Add(1)
}
