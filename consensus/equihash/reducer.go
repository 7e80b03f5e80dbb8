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
	"bytes"
	"sort"

	"github.com/zecpow/equihash/common/log"
)

func sortRowsByPrefix(rows []row, c int) {
	sort.Slice(rows, func(i, j int) bool {
		return bytes.Compare(rows[i].hash[:c], rows[j].hash[:c]) < 0
	})
}

// mergeAdmit decides whether a merge of a and b should be kept. For
// full rows it is the distinctness predicate (I2), checked before the
// (cheap) merge is even used. For truncated rows it is the
// probabilistic-duplicate filter, which needs the merged row itself.
type mergeAdmit func(a, b, merged row) bool

func distinctAdmit(a, b, merged row) bool {
	return distinct(a, b)
}

// truncatedAdmit rejects a merged truncated row only when its remaining
// hash prefix is zero and its index history is perfectly paired —
// section 4.1's probabilistic-duplicate filter. Non-terminal rows
// (nonzero prefix) are always kept regardless of pairing.
func truncatedAdmit(a, b, merged row) bool {
	if merged.isZero(len(merged.hash)) && probablyDuplicate(merged) {
		return false
	}
	return true
}

// reduceRound runs one collision-reduction round over rows, grouping by
// the leading c bytes of hash, in place per section 4.2. sortLabel and
// collideLabel are the cancellation checkpoints consulted after sorting
// and after each collision run, respectively.
func reduceRound(rows []row, c int, admit mergeAdmit, sortLabel, collideLabel CancelLabel, cancel CancelFunc) ([]row, error) {
	sortRowsByPrefix(rows, c)
	if err := checkCancel(cancel, sortLabel); err != nil {
		return nil, err
	}

	n := len(rows)
	posFree := 0
	var xc []row
	i := 0
	for i < n-1 {
		j := 1
		for i+j < n && hasCollision(rows[i], rows[i+j], c) {
			j++
		}

		for l := 0; l < j-1; l++ {
			for m := l + 1; m < j; m++ {
				a, b := rows[i+l], rows[i+m]
				merged := merge(a, b, c)
				if admit(a, b, merged) {
					xc = append(xc, merged)
				}
			}
		}

		for posFree < i+j && len(xc) > 0 {
			rows[posFree] = xc[len(xc)-1]
			xc = xc[:len(xc)-1]
			posFree++
		}

		i += j
		if err := checkCancel(cancel, collideLabel); err != nil {
			return nil, err
		}
	}

	for posFree < len(rows) && len(xc) > 0 {
		rows[posFree] = xc[len(xc)-1]
		xc = xc[:len(xc)-1]
		posFree++
	}
	if len(xc) > 0 {
		rows = append(rows, xc...)
	} else if posFree < len(rows) {
		rows = rows[:posFree]
	}

	log.Trace("equihash: reduced round", "remaining", len(rows), "collisionBytes", c)
	return rows, nil
}

// collideBranches is the reconstruction-tree specialisation of
// reduceRound used by Phase B: rows arrive pre-sorted by the caller, a
// merge is admitted only when the pair's truncated-index projections
// match the expected (lt, rt) assignment in either order, and no
// cancellation points are consulted (the enclosing loop in solver.go
// checks PartialSubtreeEnd once per subtree instead).
func collideBranches(rows []row, clen int, ilen uint32, lt, rt byte) []row {
	n := len(rows)
	posFree := 0
	var xc []row
	i := 0
	for i < n-1 {
		j := 1
		for i+j < n && hasCollision(rows[i], rows[i+j], clen) {
			j++
		}

		for l := 0; l < j-1; l++ {
			for m := l + 1; m < j; m++ {
				a, b := rows[i+l], rows[i+m]
				if !distinct(a, b) {
					continue
				}
				at := truncateIndex(a.leftmostFullIndex(), ilen)
				bt := truncateIndex(b.leftmostFullIndex(), ilen)
				if (at == lt && bt == rt) || (bt == lt && at == rt) {
					xc = append(xc, merge(a, b, clen))
				}
			}
		}

		for posFree < i+j && len(xc) > 0 {
			rows[posFree] = xc[len(xc)-1]
			xc = xc[:len(xc)-1]
			posFree++
		}

		i += j
	}

	for posFree < len(rows) && len(xc) > 0 {
		rows[posFree] = xc[len(xc)-1]
		xc = xc[:len(xc)-1]
		posFree++
	}
	if len(xc) > 0 {
		rows = append(rows, xc...)
	} else if posFree < len(rows) {
		rows = rows[:posFree]
	}
	return rows
}

func (r row) leftmostFullIndex() uint32 {
	return uint32(r.indices[0])<<24 | uint32(r.indices[1])<<16 | uint32(r.indices[2])<<8 | uint32(r.indices[3])
}
