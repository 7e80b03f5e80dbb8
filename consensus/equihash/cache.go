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

	lru "github.com/hashicorp/golang-lru"
)

// solutionCache memoizes IsValidSolution results keyed by (N, K, soln),
// the same way the teacher's core package caches recently-seen
// block/transaction hashes with golang-lru rather than re-deriving them
// on every lookup.
type solutionCache struct {
	cache *lru.Cache
}

const verifyCacheSize = 4096

func newSolutionCache(size int) *solutionCache {
	c, err := lru.New(size)
	if err != nil {
		// Only returns an error for a non-positive size, which never
		// happens with the package constant above.
		panic(err)
	}
	return &solutionCache{cache: c}
}

var verifyCache = newSolutionCache(verifyCacheSize)

func (c *solutionCache) key(p Params, soln []uint32) string {
	buf := make([]byte, 8+4*len(soln))
	binary.LittleEndian.PutUint32(buf[0:4], p.N)
	binary.LittleEndian.PutUint32(buf[4:8], p.K)
	for i, s := range soln {
		binary.BigEndian.PutUint32(buf[8+4*i:12+4*i], s)
	}
	return string(buf)
}

func (c *solutionCache) get(p Params, soln []uint32) (bool, bool) {
	v, ok := c.cache.Get(c.key(p, soln))
	if !ok {
		return false, false
	}
	return v.(bool), true
}

func (c *solutionCache) put(p Params, soln []uint32, valid bool) {
	c.cache.Add(c.key(p, soln), valid)
}
