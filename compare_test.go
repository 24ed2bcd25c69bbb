// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy_test

import (
	"hash/maphash"
	"testing"

	"code.hybscloud.com/lazy"
)

func TestEqualForcesBothOperands(t *testing.T) {
	a := lazy.Of(3)
	b := lazy.Of(3)

	eq, err := lazy.Equal(a, b)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if !eq {
		t.Fatal("equal values compared unequal")
	}
	// Forcing is the documented side effect of comparison.
	if !a.HasValue() || !b.HasValue() {
		t.Fatal("comparison did not realize both operands")
	}
}

func TestEqualValue(t *testing.T) {
	a := lazy.Of("Hello World")
	eq, err := lazy.EqualValue(a, "Hello World")
	if err != nil {
		t.Fatalf("EqualValue: %v", err)
	}
	if !eq {
		t.Fatal("equal values compared unequal")
	}
	ne, err := lazy.EqualValue(a, "other")
	if err != nil {
		t.Fatalf("EqualValue: %v", err)
	}
	if ne {
		t.Fatal("unequal values compared equal")
	}
}

func TestCompareOrdering(t *testing.T) {
	cases := []struct {
		a, b int
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{2, 2, 0},
	}
	for _, tc := range cases {
		got, err := lazy.Compare(lazy.Of(tc.a), lazy.Of(tc.b))
		if err != nil {
			t.Fatalf("Compare(%d, %d): %v", tc.a, tc.b, err)
		}
		if got != tc.want {
			t.Fatalf("Compare(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}

	got, err := lazy.CompareValue(lazy.Of("a"), "b")
	if err != nil {
		t.Fatalf("CompareValue: %v", err)
	}
	if got != -1 {
		t.Fatalf("CompareValue = %d, want -1", got)
	}
}

func TestCompareErrorPropagates(t *testing.T) {
	var empty lazy.Deferred[int]
	if _, err := lazy.Compare(&empty, lazy.Of(1)); !lazy.IsNoRecipe(err) {
		t.Fatalf("got %v, want ErrNoRecipe", err)
	}
	if _, err := lazy.Equal(lazy.Of(1), &empty); !lazy.IsNoRecipe(err) {
		t.Fatalf("got %v, want ErrNoRecipe", err)
	}
}

func TestHashForcesAndMatchesEqualValues(t *testing.T) {
	seed := maphash.MakeSeed()
	a := lazy.Of("Hello World")
	b := lazy.Of("Hello World")

	ha, err := lazy.Hash(seed, a)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !a.HasValue() {
		t.Fatal("hashing did not realize the holder")
	}
	hb, err := lazy.Hash(seed, b)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if ha != hb {
		t.Fatalf("equal values hashed differently: %#x vs %#x", ha, hb)
	}

	var empty lazy.Deferred[string]
	if _, err := lazy.Hash(seed, &empty); !lazy.IsNoRecipe(err) {
		t.Fatalf("got %v, want ErrNoRecipe", err)
	}
}
