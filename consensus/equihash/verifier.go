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
	"github.com/zecpow/equihash/common/log"
)

// IsValidSolution rebuilds the reduction tree bottom-up from soln and
// checks collision length, canonical ordering, global distinctness, and
// the final zero (section 4.4). Every rejection reason is logged at
// Debug before the corresponding return, so the observable boolean
// contract never hides why a solution failed.
func IsValidSolution(base *BaseState, soln []uint32) bool {
	if cached, ok := verifyCache.get(base.params, soln); ok {
		return cached
	}
	ok := isValidSolutionUncached(base, soln)
	verifyCache.put(base.params, soln, ok)
	return ok
}

func isValidSolutionUncached(base *BaseState, soln []uint32) bool {
	p := base.params
	if uint32(len(soln)) != p.SolutionSize() {
		log.Debug("equihash: invalid solution size", "got", len(soln), "want", p.SolutionSize())
		return false
	}

	rows := make([]row, len(soln))
	for i, seed := range soln {
		rows[i] = fullRowFromSeed(base, seed)
	}

	c := int(p.CollisionByteLength())
	hashLen := int(p.ExpandedHashLength())
	for len(rows) > 1 {
		next := make([]row, 0, len(rows)/2)
		for i := 0; i < len(rows); i += 2 {
			a, b := rows[i], rows[i+1]
			if !hasCollision(a, b, c) {
				log.Debug("equihash: invalid solution, no collision between adjacent rows", "bytes", c)
				return false
			}
			if !before(a, b) {
				log.Debug("equihash: invalid solution, index tree incorrectly ordered")
				return false
			}
			if !distinct(a, b) {
				log.Debug("equihash: invalid solution, duplicate indices")
				return false
			}
			next = append(next, merge(a, b, c))
		}
		rows = next
		hashLen -= c
	}

	if len(rows) != 1 {
		log.Debug("equihash: invalid solution, reduction did not converge to one row")
		return false
	}
	if !rows[0].isZero(hashLen) {
		log.Debug("equihash: invalid solution, final hash not zero")
		return false
	}
	return true
}
