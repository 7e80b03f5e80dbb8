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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCancelAtListGeneration is S6/P7: a probe that always returns true
// must short-circuit the solver at ListGeneration, with no solutions
// returned and no other label ever observed first.
func TestCancelAtListGeneration(t *testing.T) {
	base, err := InitialiseState(48, 5)
	require.NoError(t, err)

	var sawLabel CancelLabel
	var sawAny bool
	probe := func(label CancelLabel) bool {
		if !sawAny {
			sawLabel = label
			sawAny = true
		}
		return true
	}

	solns, err := SolveBasic(base, probe)
	require.Nil(t, solns)
	require.True(t, errors.Is(err, ErrSolverCancelled))
	require.True(t, sawAny)
	require.Equal(t, ListGeneration, sawLabel)
}

func TestCancelNeverFiresReturnsNormally(t *testing.T) {
	base, err := InitialiseState(48, 5)
	require.NoError(t, err)

	probe := func(CancelLabel) bool { return false }
	solns, err := SolveBasic(base, probe)
	require.NoError(t, err)
	require.NotNil(t, solns)
}
