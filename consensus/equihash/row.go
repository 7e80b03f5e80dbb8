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
	"encoding/binary"

	mapset "github.com/deckarep/golang-set"
)

// row is the single type backing both the "full" rows used by
// SolveBasic/IsValidSolution (4-byte big-endian index entries) and the
// "truncated" rows used by SolveOptimised's first phase (1-byte index
// entries). Stride selects which; the merge and ordering logic is
// otherwise identical, matching the design note that row polymorphism
// is best captured by one struct parameterised on stride rather than
// an interface hierarchy.
type row struct {
	hash    []byte
	indices []byte
	stride  int
}

func fullRowFromSeed(b *BaseState, seed uint32) row {
	p := b.params
	hash := b.ExpandSeed(seed, int(p.ExpandedHashLength()))
	maskRow(hash, p)
	indices := make([]byte, 4)
	binary.BigEndian.PutUint32(indices, seed)
	return row{hash: hash, indices: indices, stride: 4}
}

func truncatedRowFromSeed(b *BaseState, seed uint32) row {
	p := b.params
	hash := b.ExpandSeed(seed, int(p.ExpandedHashLength()))
	maskRow(hash, p)
	t := truncateIndex(seed, p.IndexLen())
	return row{hash: hash, indices: []byte{t}, stride: 1}
}

// maskRow zeroes the padding bits introduced in each collision-length
// block when CollisionBitLength isn't a multiple of 8 (I1/P1).
func maskRow(hash []byte, p Params) {
	cbl := p.CollisionBitLength()
	cbyte := p.CollisionByteLength()
	mask := byte(0xFF >> (8*cbyte - cbl))
	for i := uint32(0); i < p.K+1; i++ {
		off := i * cbyte
		if off < uint32(len(hash)) {
			hash[off] &= mask
		}
	}
}

func truncateIndex(i uint32, ilen uint32) byte {
	return byte((i >> (ilen - 8)) & 0xFF)
}

func untruncateIndex(t byte, r uint32, ilen uint32) uint32 {
	return (uint32(t) << (ilen - 8)) | r
}

// hasCollision reports whether a and b agree on their leading c hash bytes.
func hasCollision(a, b row, c int) bool {
	return bytes.Equal(a.hash[:c], b.hash[:c])
}

// leftmost returns the bytes of a row's first (leftmost) index-history
// entry, the only part of the history canonical ordering inspects.
func (r row) leftmost() []byte { return r.indices[:r.stride] }

// before implements canonical subtree ordering (I3): a ⊲ b iff a's
// leftmost index is strictly less than b's.
func before(a, b row) bool {
	return bytes.Compare(a.leftmost(), b.leftmost()) < 0
}

// distinct reports whether a and b's index histories are disjoint (I2),
// via a genuine set-intersection check rather than a hand-rolled sorted
// scan.
func distinct(a, b row) bool {
	as := indexSet(a)
	bs := indexSet(b)
	return as.Intersect(bs).Cardinality() == 0
}

func indexSet(r row) mapset.Set {
	s := mapset.NewThreadUnsafeSet()
	for i := 0; i < len(r.indices); i += r.stride {
		s.Add(string(r.indices[i : i+r.stride]))
	}
	return s
}

// merge XOR-combines a and b, trimming the first trim hash bytes (the
// collision already verified by the caller) and concatenating index
// histories in canonical order.
func merge(a, b row, trim int) row {
	hlen := len(a.hash)
	newHash := make([]byte, hlen-trim)
	for i := trim; i < hlen; i++ {
		newHash[i-trim] = a.hash[i] ^ b.hash[i]
	}
	newIndices := make([]byte, 0, len(a.indices)+len(b.indices))
	if before(a, b) {
		newIndices = append(newIndices, a.indices...)
		newIndices = append(newIndices, b.indices...)
	} else {
		newIndices = append(newIndices, b.indices...)
		newIndices = append(newIndices, a.indices...)
	}
	return row{hash: newHash, indices: newIndices, stride: a.stride}
}

// isZero reports whether the row's leading n hash bytes are all zero.
func (r row) isZero(n int) bool {
	for i := 0; i < n; i++ {
		if r.hash[i] != 0 {
			return false
		}
	}
	return true
}

// probablyDuplicate is the truncated-row filter of section 4.1: every
// distinct truncated-index byte value in the history must appear an
// even number of times, i.e. the greedy pairing the original algorithm
// performs covers every position.
func probablyDuplicate(r row) bool {
	counts := make(map[byte]int, len(r.indices))
	for _, b := range r.indices {
		counts[b]++
	}
	for _, c := range counts {
		if c%2 != 0 {
			return false
		}
	}
	return true
}

// fullIndices decodes a full-variant row's index history into a slice
// of seeds, in index-history order.
func (r row) fullIndices() []uint32 {
	out := make([]uint32, 0, len(r.indices)/4)
	for i := 0; i+4 <= len(r.indices); i += 4 {
		out = append(out, binary.BigEndian.Uint32(r.indices[i:i+4]))
	}
	return out
}

// truncIndices returns a truncated-variant row's raw 8-bit history bytes.
func (r row) truncIndices() []byte {
	return r.indices
}
