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

// SolveBasic enumerates every 2^K-index solution keeping full index
// histories throughout (section 4.3, basic variant). It is the
// memory-heavy, straightforward reference path.
func SolveBasic(base *BaseState, cancel CancelFunc) ([][]uint32, error) {
	p := base.params
	log.Debug("equihash: basic solve starting", "params", p.String())

	initSize := int(p.InitialListSize())
	rows := make([]row, 0, initSize)
	for i := 0; i < initSize; i++ {
		rows = append(rows, fullRowFromSeed(base, uint32(i)))
		if err := checkCancel(cancel, ListGeneration); err != nil {
			return nil, err
		}
	}

	c := int(p.CollisionByteLength())
	hashLen := int(p.ExpandedHashLength())
	for r := 1; r < int(p.K) && len(rows) > 0; r++ {
		var err error
		rows, err = reduceRound(rows, c, distinctAdmit, ListSorting, ListColliding, cancel)
		if err != nil {
			return nil, err
		}
		hashLen -= c
		if err := checkCancel(cancel, RoundEnd); err != nil {
			return nil, err
		}
	}

	solutions := make(map[string][]uint32)
	if len(rows) > 1 {
		sortRowsByPrefix(rows, hashLen)
		if err := checkCancel(cancel, FinalSorting); err != nil {
			return nil, err
		}
		n := len(rows)
		i := 0
		for i < n-1 {
			j := 1
			for i+j < n && hasCollision(rows[i], rows[i+j], hashLen) {
				j++
			}
			for l := 0; l < j-1; l++ {
				for m := l + 1; m < j; m++ {
					a, b := rows[i+l], rows[i+m]
					if distinct(a, b) {
						merged := merge(a, b, 0)
						solutions[string(merged.indices)] = merged.fullIndices()
					}
				}
			}
			i += j
			if err := checkCancel(cancel, FinalColliding); err != nil {
				return nil, err
			}
		}
	}

	out := make([][]uint32, 0, len(solutions))
	for _, s := range solutions {
		out = append(out, s)
	}
	log.Debug("equihash: basic solve complete", "params", p.String(), "solutions", len(out))
	return out, nil
}

// SolveOptimised runs the memory-optimised two-phase variant: a
// truncated-index search (Phase A) that yields partial solutions,
// followed by per-partial-solution full-index reconstruction (Phase B).
func SolveOptimised(base *BaseState, cancel CancelFunc) ([][]uint32, error) {
	p := base.params
	log.Debug("equihash: optimised solve starting", "params", p.String())

	partials, err := solvePhaseA(base, cancel)
	if err != nil {
		return nil, err
	}
	log.Debug("equihash: phase A complete", "params", p.String(), "partials", len(partials))

	solutions := make(map[string][]uint32)
	invalid := 0
	for _, partial := range partials {
		top, ok, err := reconstructPartial(base, partial, cancel)
		if err != nil {
			return nil, err
		}
		if !ok {
			invalid++
			continue
		}
		for _, r := range top {
			solutions[string(r.indices)] = r.fullIndices()
		}
	}

	out := make([][]uint32, 0, len(solutions))
	for _, s := range solutions {
		out = append(out, s)
	}
	log.Debug("equihash: optimised solve complete", "params", p.String(), "solutions", len(out), "invalid", invalid)
	return out, nil
}

// solvePhaseA is the truncated-index search of section 4.3: it mirrors
// SolveBasic's round structure exactly but on 1-byte truncated rows,
// emitting partial solutions (2^K-long truncated-index sequences)
// instead of full-index solutions.
func solvePhaseA(base *BaseState, cancel CancelFunc) ([][]byte, error) {
	p := base.params
	initSize := int(p.InitialListSize())
	rows := make([]row, 0, initSize)
	for i := 0; i < initSize; i++ {
		rows = append(rows, truncatedRowFromSeed(base, uint32(i)))
		if err := checkCancel(cancel, ListGeneration); err != nil {
			return nil, err
		}
	}

	c := int(p.CollisionByteLength())
	hashLen := int(p.ExpandedHashLength())
	for r := 1; r < int(p.K) && len(rows) > 0; r++ {
		var err error
		rows, err = reduceRound(rows, c, truncatedAdmit, ListSorting, ListColliding, cancel)
		if err != nil {
			return nil, err
		}
		hashLen -= c
		if err := checkCancel(cancel, RoundEnd); err != nil {
			return nil, err
		}
	}

	var partials [][]byte
	if len(rows) > 1 {
		sortRowsByPrefix(rows, hashLen)
		if err := checkCancel(cancel, FinalSorting); err != nil {
			return nil, err
		}
		n := len(rows)
		i := 0
		for i < n-1 {
			j := 1
			for i+j < n && hasCollision(rows[i], rows[i+j], hashLen) {
				j++
			}
			for l := 0; l < j-1; l++ {
				for m := l + 1; m < j; m++ {
					merged := merge(rows[i+l], rows[i+m], 0)
					if !truncatedAdmit(rows[i+l], rows[i+m], merged) {
						continue
					}
					partials = append(partials, append([]byte(nil), merged.indices...))
				}
			}
			i += j
			if err := checkCancel(cancel, FinalColliding); err != nil {
				return nil, err
			}
		}
	}
	return partials, nil
}

// reconstructPartial recovers the full 32-bit indices underlying one
// Phase-A partial solution (section 4.3, Phase B). It returns ok=false,
// with no error, when the partial solution turns out not to recover to
// a valid set of full rows (the probabilistic filter's false positives).
func reconstructPartial(base *BaseState, partial []byte, cancel CancelFunc) ([]row, bool, error) {
	p := base.params
	K := int(p.K)
	clen := int(p.CollisionByteLength())
	ilen := p.IndexLen()
	recreateSize := 1 << (ilen - 8)
	solnSize := int(p.SolutionSize())

	subtrees := make([][]row, K+1)
	occupied := make([]bool, K+1)

	for idx := 0; idx < solnSize; idx++ {
		ic := make([]row, 0, recreateSize)
		for j := 0; j < recreateSize; j++ {
			newIndex := untruncateIndex(partial[idx], uint32(j), ilen)
			ic = append(ic, fullRowFromSeed(base, newIndex))
			if err := checkCancel(cancel, PartialGeneration); err != nil {
				return nil, false, err
			}
		}

		rti := idx
		for r := 0; r <= K; r++ {
			if occupied[r] {
				lti := rti - (1 << uint(r))
				combined := append(ic, subtrees[r]...)
				sortRowsByPrefix(combined, clen)
				if err := checkCancel(cancel, PartialSorting); err != nil {
					return nil, false, err
				}
				combined = collideBranches(combined, clen, ilen, partial[lti], partial[rti])
				if r == K-1 {
					// Top-level merge: collideBranches only matched the
					// leading clen bytes, same as every other level, but
					// there is no further round to trim the remaining
					// clen bytes away. Mirror IsValidSolution's explicit
					// final check and drop anything whose leftover hash
					// isn't actually zero (I4), rather than returning a
					// row that only looks like a collision.
					combined = filterZeroHash(combined)
				}
				occupied[r] = false
				subtrees[r] = nil
				if len(combined) == 0 {
					return nil, false, nil
				}
				ic = combined
				rti = lti
			} else {
				subtrees[r] = ic
				occupied[r] = true
				break
			}
			if err := checkCancel(cancel, PartialSubtreeEnd); err != nil {
				return nil, false, err
			}
		}
		if err := checkCancel(cancel, PartialIndexEnd); err != nil {
			return nil, false, err
		}
	}

	if err := checkCancel(cancel, PartialEnd); err != nil {
		return nil, false, err
	}
	return subtrees[K], true, nil
}

// filterZeroHash keeps only rows whose entire remaining hash is zero. Used
// at the top of reconstructPartial, where no further round exists to trim
// away (and thereby implicitly re-check) the bytes past the collision
// length collideBranches already matched.
func filterZeroHash(rows []row) []row {
	out := rows[:0]
	for _, r := range rows {
		if r.isZero(len(r.hash)) {
			out = append(out, r)
		}
	}
	return out
}
