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

// Package equihash implements the solver and verifier for the Equihash
// proof-of-work (Biryukov & Khovratovich, NDSS '16), a memory-hard PoW
// built on the Generalized Birthday Problem.
package equihash

import "fmt"

// Params bundles the two compile-time constants that determine an
// Equihash instance: N (total solution bit width) and K (number of
// collision rounds). All derived quantities are computed from these.
type Params struct {
	N uint32
	K uint32
}

// CollisionBitLength is the number of bits collided on per round.
func (p Params) CollisionBitLength() uint32 { return p.N / (p.K + 1) }

// CollisionByteLength is CollisionBitLength rounded up to a whole byte.
func (p Params) CollisionByteLength() uint32 { return (p.CollisionBitLength() + 7) / 8 }

// ExpandedHashLength is the number of bytes a freshly expanded row occupies.
func (p Params) ExpandedHashLength() uint32 { return (p.K + 1) * p.CollisionByteLength() }

// InitialListSize is the number of seed rows the first round starts from.
func (p Params) InitialListSize() uint32 { return 1 << (p.CollisionBitLength() + 1) }

// SolutionSize is the number of indices in a complete solution, 2^K.
func (p Params) SolutionSize() uint32 { return 1 << p.K }

// IndexLen is the bit width a truncated index is recovered against:
// CollisionBitLength + 1.
func (p Params) IndexLen() uint32 { return p.CollisionBitLength() + 1 }

// String renders the parameter pair the way Equihash is conventionally
// written in the literature and in block headers: "N,K".
func (p Params) String() string { return fmt.Sprintf("%d,%d", p.N, p.K) }

// supportedParams lists every (N,K) pair this package instantiates, per
// the external interface contract: all must share the same code path.
var supportedParams = map[Params]bool{
	{N: 200, K: 9}:  true,
	{N: 216, K: 8}:  true,
	{N: 208, K: 12}: true,
	{N: 144, K: 5}:  true,
	{N: 96, K: 3}:   true,
	{N: 96, K: 5}:   true,
	{N: 48, K: 5}:   true,
}

// Supported reports whether p is one of the parameter sets this package
// is validated against.
func (p Params) Supported() bool { return supportedParams[p] }
