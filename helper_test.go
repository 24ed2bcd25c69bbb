// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy_test

import (
	"testing"

	"code.hybscloud.com/lazy"
)

// mustValue forces d and fails the test on recipe error.
// Used wherever a test asserts on the realized value itself.
func mustValue[T any](t *testing.T, d *lazy.Deferred[T]) T {
	t.Helper()
	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	return v
}

// conn is a fake externally-owned resource for teardown tests.
// The teardown hook is expected to see it live (open) and close it.
type conn struct {
	id   int
	open bool
}
