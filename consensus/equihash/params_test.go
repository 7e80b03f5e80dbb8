// Copyright 2018 The aquachain Authors
// This file is part of the aquachain library.
//
// The aquachain library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The aquachain library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the aquachain library. If not, see <http://www.gnu.org/licenses/>.

package equihash

import "testing"

func TestParamsDerivedQuantities(t *testing.T) {
	cases := []struct {
		n, k                                        uint32
		cbl, cbyte, exp, initSize, solnSize, indexLen uint32
	}{
		{200, 9, 20, 3, 30, 1 << 21, 1 << 9, 21},
		{216, 8, 24, 3, 27, 1 << 25, 1 << 8, 25},
		{208, 12, 16, 2, 26, 1 << 17, 1 << 12, 17},
		{144, 5, 24, 3, 18, 1 << 25, 1 << 5, 25},
		{96, 3, 24, 3, 12, 1 << 25, 1 << 3, 25},
		{96, 5, 16, 2, 12, 1 << 17, 1 << 5, 17},
		{48, 5, 8, 1, 6, 1 << 9, 1 << 5, 9},
	}
	for _, tc := range cases {
		p := Params{N: tc.n, K: tc.k}
		if !p.Supported() {
			t.Errorf("(%d,%d): expected to be a supported parameter set", tc.n, tc.k)
		}
		if got := p.CollisionBitLength(); got != tc.cbl {
			t.Errorf("(%d,%d): CollisionBitLength = %d, want %d", tc.n, tc.k, got, tc.cbl)
		}
		if got := p.CollisionByteLength(); got != tc.cbyte {
			t.Errorf("(%d,%d): CollisionByteLength = %d, want %d", tc.n, tc.k, got, tc.cbyte)
		}
		if got := p.ExpandedHashLength(); got != tc.exp {
			t.Errorf("(%d,%d): ExpandedHashLength = %d, want %d", tc.n, tc.k, got, tc.exp)
		}
		if got := p.InitialListSize(); got != tc.initSize {
			t.Errorf("(%d,%d): InitialListSize = %d, want %d", tc.n, tc.k, got, tc.initSize)
		}
		if got := p.SolutionSize(); got != tc.solnSize {
			t.Errorf("(%d,%d): SolutionSize = %d, want %d", tc.n, tc.k, got, tc.solnSize)
		}
		if got := p.IndexLen(); got != tc.indexLen {
			t.Errorf("(%d,%d): IndexLen = %d, want %d", tc.n, tc.k, got, tc.indexLen)
		}
	}
}

func TestParamsUnsupported(t *testing.T) {
	p := Params{N: 64, K: 4}
	if p.Supported() {
		t.Fatalf("(64,4) should not be a supported parameter set")
	}
}
