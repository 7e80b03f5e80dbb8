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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func oneValidSolution(t *testing.T, base *BaseState) []uint32 {
	t.Helper()
	solns, err := SolveBasic(base, nil)
	require.NoError(t, err)
	require.NotEmpty(t, solns, "need at least one solution to exercise the verifier")
	return append([]uint32(nil), solns[0]...)
}

// TestVerifierRejectsWrongLength is S3.
func TestVerifierRejectsWrongLength(t *testing.T) {
	base, err := InitialiseState(96, 5)
	require.NoError(t, err)

	short := make([]uint32, int(base.params.SolutionSize())-1)
	require.False(t, IsValidSolution(base, short))
}

// TestVerifierRejectsReorderedSolution is S4: swapping the first two
// indices of a valid solution breaks canonical ordering (I3) and must
// be rejected.
func TestVerifierRejectsReorderedSolution(t *testing.T) {
	base, err := InitialiseState(48, 5)
	require.NoError(t, err)

	soln := oneValidSolution(t, base)
	require.True(t, IsValidSolution(base, soln))

	reordered := append([]uint32(nil), soln...)
	reordered[0], reordered[1] = reordered[1], reordered[0]
	require.False(t, IsValidSolution(base, reordered))
}

// TestVerifierRejectsDuplicateIndex is S5.
func TestVerifierRejectsDuplicateIndex(t *testing.T) {
	base, err := InitialiseState(48, 5)
	require.NoError(t, err)

	soln := oneValidSolution(t, base)
	require.True(t, IsValidSolution(base, soln))

	dup := append([]uint32(nil), soln...)
	dup[1] = dup[0]
	require.False(t, IsValidSolution(base, dup))
}

func TestVerifierAcceptsKnownValidSolution(t *testing.T) {
	base, err := InitialiseState(48, 5)
	require.NoError(t, err)
	soln := oneValidSolution(t, base)
	require.True(t, IsValidSolution(base, soln))
	// Verifying twice exercises the memoization cache path.
	require.True(t, IsValidSolution(base, soln))
}
