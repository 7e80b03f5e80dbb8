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

package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultByName(t *testing.T) {
	cfg := Default()
	ps, ok := cfg.ByName("zcash")
	require.True(t, ok)
	require.Equal(t, uint32(200), ps.N)
	require.Equal(t, uint32(9), ps.K)

	_, ok = cfg.ByName("does-not-exist")
	require.False(t, ok)
}

func TestByNameNilConfigFallsBackToDefaults(t *testing.T) {
	var cfg *EquihashConfig
	ps, ok := cfg.ByName("minimal-48-5")
	require.True(t, ok)
	require.Equal(t, uint32(48), ps.N)
	require.Equal(t, uint32(5), ps.K)
}

func TestDecodeRoundTrip(t *testing.T) {
	doc := `
[[paramsets]]
name = "custom"
n = 96
k = 5
`
	cfg, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, cfg.ParamSets, 1)
	ps, ok := cfg.ByName("custom")
	require.True(t, ok)
	require.Equal(t, uint32(96), ps.N)
	require.Equal(t, uint32(5), ps.K)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/equihash.toml")
	require.Error(t, err)
}
