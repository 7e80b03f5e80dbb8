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

func mkrow(hash []byte, idx byte) row {
	return row{hash: append([]byte(nil), hash...), indices: []byte{idx}, stride: 1}
}

// TestReduceRoundCompaction exercises the posFree in-place compaction
// path of section 4.2 on a small synthetic list with two disjoint
// collision runs.
func TestReduceRoundCompaction(t *testing.T) {
	rows := []row{
		mkrow([]byte{0x00, 0xAA}, 1),
		mkrow([]byte{0x00, 0xBB}, 2),
		mkrow([]byte{0x01, 0xCC}, 3),
		mkrow([]byte{0x01, 0xDD}, 4),
	}

	out, err := reduceRound(rows, 1, distinctAdmit, ListSorting, ListColliding, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)

	for _, r := range out {
		require.Len(t, r.hash, 1)
		require.Equal(t, []byte{0x11}, r.hash)
		require.Len(t, r.indices, 2)
	}
}

// TestReduceRoundDropsUnpairedSingleton checks the edge case documented
// in section 4.2: a run of length one produces no merge, and an
// unpaired row is dropped from the output list entirely (matching the
// reference algorithm's erase-to-posFree behavior).
func TestReduceRoundDropsUnpairedSingleton(t *testing.T) {
	rows := []row{mkrow([]byte{0x00}, 1)}
	out, err := reduceRound(rows, 1, distinctAdmit, ListSorting, ListColliding, nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

// TestReduceRoundRejectsNonDistinct checks that a collision whose
// parents already share an index is discarded rather than merged (I2).
func TestReduceRoundRejectsNonDistinct(t *testing.T) {
	shared := mkrow([]byte{0x00, 0xAA}, 9)
	dup := row{hash: []byte{0x00, 0xBB}, indices: []byte{9}, stride: 1}
	rows := []row{shared, dup}

	out, err := reduceRound(rows, 1, distinctAdmit, ListSorting, ListColliding, nil)
	require.NoError(t, err)
	require.Empty(t, out, "merging two rows that already contain the same index must be rejected")
}
