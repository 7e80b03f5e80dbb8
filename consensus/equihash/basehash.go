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
	"encoding/binary"

	"github.com/zecpow/equihash/crypto/blake2b"
)

// BaseState is the opaque, cloneable personalised hash handle every row
// is expanded from. It is produced once per solve/verify call via
// InitialiseState and cloned per seed.
type BaseState struct {
	params Params
	d      *blake2b.Digest
}

// InitialiseState builds the personalised base hash state for the given
// (N,K) pair: output length N/8, personalisation "ZcashPoW" || le32(N)
// || le32(K), no key, no salt.
func InitialiseState(n, k uint32) (*BaseState, error) {
	p := Params{N: n, K: k}
	if !p.Supported() {
		return nil, ErrUnsupportedParams
	}

	var person [16]byte
	copy(person[:8], "ZcashPoW")
	binary.LittleEndian.PutUint32(person[8:12], n)
	binary.LittleEndian.PutUint32(person[12:16], k)

	cfg := &blake2b.Config{
		Size:   uint8(n / 8),
		Person: person,
	}
	d := blake2b.New(cfg)
	return &BaseState{params: p, d: d}, nil
}

// Params returns the (N,K) pair this state was initialised with.
func (b *BaseState) Params() Params { return b.params }

// Absorb feeds header-derived bytes into the base state ahead of any
// ExpandSeed clone, the way a caller seeds a block header's pre-nonce
// material into the personalised state before the solver forks it per
// index. Header framing itself is out of this package's scope; Absorb
// is the seam a caller uses to supply it.
func (b *BaseState) Absorb(data []byte) {
	b.d.Write(data)
}

// ExpandSeed clones the base state, feeds in seed as a little-endian
// 32-bit word, and squeezes outLen bytes. outLen is independent of the
// digest size the state was initialised with: BLAKE2b's digest-length
// parameter only perturbs the IV, so a state configured at N/8 can
// still be squeezed at the wider ExpandedHashLength needed for row
// expansion.
func (b *BaseState) ExpandSeed(seed uint32, outLen int) []byte {
	clone := b.d.Clone()
	var le [4]byte
	binary.LittleEndian.PutUint32(le[:], seed)
	clone.Write(le[:])
	return clone.SumLen(nil, outLen)
}

// Evaluate clones the state, absorbs data, and squeezes the clone at its
// configured N/8 output length. Nothing in this package calls it; it
// gives a caller the raw digest independent of row framing.
func (b *BaseState) Evaluate(data []byte) []byte {
	clone := b.d.Clone()
	clone.Write(data)
	return clone.Sum(nil)
}
