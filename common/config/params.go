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

// Package config loads the Equihash (N,K) parameter-set table, the way
// the teacher's own aquaconfig.go loaded its node configuration: a
// struct tagged for github.com/naoina/toml, with an in-code default so
// a caller never strictly needs a file on disk.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/naoina/toml"

	"github.com/zecpow/equihash/common/log"
)

// ParamSet names one supported Equihash (N,K) instantiation.
type ParamSet struct {
	Name string `toml:"name"`
	N    uint32 `toml:"n"`
	K    uint32 `toml:"k"`
}

// EquihashConfig is the top-level TOML document: a named list of
// parameter sets, so operators can pick one by name from a config file
// instead of hard-coding N and K.
type EquihashConfig struct {
	ParamSets []ParamSet `toml:"paramsets"`
}

// DefaultParamSets mirrors the external-interface contract's supported
// list exactly (section 6 of the design): all seven pairs must remain
// instantiable through the same code path.
var DefaultParamSets = []ParamSet{
	{Name: "zcash", N: 200, K: 9},
	{Name: "bitcoingold", N: 144, K: 5},
	{Name: "zero", N: 144, K: 5},
	{Name: "komodo", N: 200, K: 9},
	{Name: "minimal-96-3", N: 96, K: 3},
	{Name: "minimal-96-5", N: 96, K: 5},
	{Name: "minimal-48-5", N: 48, K: 5},
	{Name: "mid-208-12", N: 208, K: 12},
	{Name: "mid-216-8", N: 216, K: 8},
}

// Default returns the built-in parameter-set table, used when no TOML
// file is supplied.
func Default() *EquihashConfig {
	return &EquihashConfig{ParamSets: append([]ParamSet(nil), DefaultParamSets...)}
}

// Load reads and decodes a TOML parameter-set file from path.
func Load(path string) (*EquihashConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a TOML parameter-set document from r.
func Decode(r io.Reader) (*EquihashConfig, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("config: reading: %w", err)
	}
	var cfg EquihashConfig
	if err := toml.Unmarshal(buf.Bytes(), &cfg); err != nil {
		return nil, fmt.Errorf("config: decoding toml: %w", err)
	}
	log.Debug("config: loaded equihash parameter sets", "count", len(cfg.ParamSets))
	return &cfg, nil
}

// ByName looks up a parameter set by its configured name, falling back
// to the built-in defaults when cfg is nil.
func (cfg *EquihashConfig) ByName(name string) (ParamSet, bool) {
	sets := DefaultParamSets
	if cfg != nil {
		sets = cfg.ParamSets
	}
	for _, s := range sets {
		if s.Name == name {
			return s, true
		}
	}
	return ParamSet{}, false
}
