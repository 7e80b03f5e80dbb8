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

// Package blake2b implements BLAKE2b (RFC 7693) with support for the
// salt and personalization parameters. golang.org/x/crypto/blake2b only
// exposes a keyed hash.Hash, not the personalization knob that a
// personalised Equihash base state needs, so this package wraps the
// compression function directly, the same way crypto/sha3 wraps
// golang.org/x/crypto/sha3 for the hashes the rest of the tree needs.
package blake2b

import (
	"encoding/binary"
)

const (
	// BlockSize is the block size of BLAKE2b in bytes.
	BlockSize = 128
	// Size512 is the default (maximum) Digest size in bytes.
	Size512 = 64
	// saltSize and personSize are fixed by RFC 7693 section 2.5.
	saltSize   = 16
	personSize = 16
)

var iv = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var sigma = [12][16]byte{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
}

// Config carries the non-default BLAKE2b parameters Equihash relies on:
// a variable Digest size and a 16-byte personalization string. Salt and
// key are accepted for completeness but Equihash leaves them zero.
type Config struct {
	Size   uint8
	Key    []byte
	Salt   [saltSize]byte
	Person [personSize]byte
}

// Digest is an unkeyed or keyed BLAKE2b hash.Hash implementation that
// also threads the salt/personalization words into the IV, per RFC
// 7693 section 3.2.
type Digest struct {
	h      [8]uint64
	t      [2]uint64
	f      [2]uint64
	buf    [BlockSize]byte
	buflen int
	size   uint8
	key    []byte
}

// New returns a new BLAKE2b hash.Hash-compatible Digest configured with
// cfg. cfg.Size must be in [1,64]; zero defaults to 64.
func New(cfg *Config) *Digest {
	size := cfg.Size
	if size == 0 {
		size = Size512
	}
	d := &Digest{size: size}
	d.initialize(cfg)
	if len(cfg.Key) > 0 {
		d.key = make([]byte, BlockSize)
		copy(d.key, cfg.Key)
		d.Write(d.key)
		// the zero-padded key block is buffered like any other full
		// block: it is compressed (and counted in t) when more data is
		// written, or as the final block if none is.
	}
	return d
}

func (d *Digest) initialize(cfg *Config) {
	var p [64]byte
	p[0] = cfg.Size
	if p[0] == 0 {
		p[0] = Size512
	}
	p[1] = byte(len(cfg.Key))
	p[2] = 1 // fanout
	p[3] = 1 // depth
	copy(p[32:48], cfg.Salt[:])
	copy(p[48:64], cfg.Person[:])

	for i := 0; i < 8; i++ {
		d.h[i] = iv[i] ^ binary.LittleEndian.Uint64(p[i*8:i*8+8])
	}
}

func (d *Digest) Size() int      { return int(d.size) }
func (d *Digest) BlockSize() int { return BlockSize }

func (d *Digest) Reset() {
	panic("blake2b: Reset is not supported on a personalised Digest; create a new one with the same Config")
}

// Write absorbs p into the running hash state, compressing full blocks
// immediately and buffering the remainder, mirroring hash.Hash.
func (d *Digest) Write(p []byte) (n int, err error) {
	n = len(p)
	if d.buflen > 0 {
		fill := BlockSize - d.buflen
		if fill > len(p) {
			fill = len(p)
		}
		copy(d.buf[d.buflen:], p[:fill])
		d.buflen += fill
		p = p[fill:]
		if len(p) > 0 {
			d.incrementCounter(BlockSize)
			d.compress(d.buf[:], false)
			d.buflen = 0
		}
	}
	for len(p) > BlockSize {
		d.incrementCounter(BlockSize)
		d.compress(p[:BlockSize], false)
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		copy(d.buf[d.buflen:], p)
		d.buflen += len(p)
	}
	return n, nil
}

// Sum appends the Digest to b and returns the resulting slice, without
// mutating the receiver's already-absorbed state (it operates on a
// value copy, as hash.Hash requires). The output is truncated to the
// Size configured at New.
func (d *Digest) Sum(b []byte) []byte {
	return d.SumLen(b, int(d.size))
}

// SumLen is like Sum but squeezes outLen bytes out of the 64-byte
// internal state regardless of the Digest size configured at New.
// BLAKE2b's Digest-length parameter only perturbs the IV; the actual
// squeeze can take any length up to 64 bytes, which Equihash relies on
// to configure the personalised state once at N/8 and then reuse it to
// expand rows at the wider ExpandedHashLength.
func (d *Digest) SumLen(b []byte, outLen int) []byte {
	cp := *d
	cp.incrementCounter(uint64(cp.buflen))
	for i := cp.buflen; i < BlockSize; i++ {
		cp.buf[i] = 0
	}
	cp.f[0] = ^uint64(0)
	cp.compress(cp.buf[:], true)

	out := make([]byte, 8*8)
	for i, v := range cp.h {
		binary.LittleEndian.PutUint64(out[i*8:], v)
	}
	if outLen > len(out) {
		outLen = len(out)
	}
	return append(b, out[:outLen]...)
}

func (d *Digest) incrementCounter(inc uint64) {
	d.t[0] += inc
	if d.t[0] < inc {
		d.t[1]++
	}
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

func (d *Digest) compress(block []byte, last bool) {
	var m [16]uint64
	for i := 0; i < 16; i++ {
		m[i] = binary.LittleEndian.Uint64(block[i*8:])
	}

	v := [16]uint64{
		d.h[0], d.h[1], d.h[2], d.h[3], d.h[4], d.h[5], d.h[6], d.h[7],
		iv[0], iv[1], iv[2], iv[3], iv[4] ^ d.t[0], iv[5] ^ d.t[1], iv[6] ^ d.f[0], iv[7] ^ d.f[1],
	}

	g := func(a, b, c, dd, x, y int) {
		v[a] = v[a] + v[b] + m[x]
		v[dd] = rotr64(v[dd]^v[a], 32)
		v[c] = v[c] + v[dd]
		v[b] = rotr64(v[b]^v[c], 24)
		v[a] = v[a] + v[b] + m[y]
		v[dd] = rotr64(v[dd]^v[a], 16)
		v[c] = v[c] + v[dd]
		v[b] = rotr64(v[b]^v[c], 63)
	}

	for round := 0; round < 12; round++ {
		s := sigma[round]
		g(0, 4, 8, 12, int(s[0]), int(s[1]))
		g(1, 5, 9, 13, int(s[2]), int(s[3]))
		g(2, 6, 10, 14, int(s[4]), int(s[5]))
		g(3, 7, 11, 15, int(s[6]), int(s[7]))
		g(0, 5, 10, 15, int(s[8]), int(s[9]))
		g(1, 6, 11, 12, int(s[10]), int(s[11]))
		g(2, 7, 8, 13, int(s[12]), int(s[13]))
		g(3, 4, 9, 14, int(s[14]), int(s[15]))
	}

	for i := 0; i < 8; i++ {
		d.h[i] ^= v[i] ^ v[i+8]
	}
}

// Clone returns an independent copy of d, suitable for the "clone base
// state per seed" pattern Equihash row expansion requires: the personalized
// prefix is hashed once and every seed forks from that point.
func (d *Digest) Clone() *Digest {
	cp := *d
	return &cp
}
