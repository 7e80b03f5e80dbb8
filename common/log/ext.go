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

package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/zecpow/equihash/common/sense"
)

var NoSync = !sense.EnvBoolDisabled("NO_LOGSYNC")

var PrintfDefaultLevel = LvlInfo

func (l *logger) Printf(msg string, stuff ...any) {
	msg = fmt.Sprintf(msg, stuff...)
	l.writeskip(0, msg, PrintfDefaultLevel, nil)
}

func Printf(msg string, stuff ...any) {
	root.Printf(msg, stuff...)
}

func Infof(msg string, stuff ...any) {
	msg = strings.TrimSuffix(msg, "\n")
	msg = fmt.Sprintf(msg, stuff...)
	root.writeskip(0, msg, LvlInfo, nil)
}

func Warnf(msg string, stuff ...any) {
	msg = strings.TrimSuffix(msg, "\n")
	msg = fmt.Sprintf(msg, stuff...)
	root.writeskip(0, msg, LvlWarn, nil)
}

var testloghandler Handler

// ResetForTesting points the root logger at a terminal handler whose
// verbosity is controlled by TESTLOGLVL (falling back to LOGLEVEL), so
// `go test -v` output isn't drowned out by default.
func ResetForTesting() {
	if testloghandler != nil {
		return
	}
	lvl := LvlWarn
	envlvl := os.Getenv("TESTLOGLVL")
	if envlvl == "" {
		envlvl = os.Getenv("LOGLEVEL")
	}
	if envlvl != "" && envlvl != "0" {
		lvl = MustParseLevel(envlvl)
	}
	testloghandler = LvlFilterHandler(lvl, StreamHandler(os.Stderr, TerminalFormat(true)))
	Root().SetHandler(testloghandler)
}

func MustParseLevel(s string) Lvl {
	switch s {
	case "":
		return LvlInfo
	case "trace", "5", "6", "7", "8", "9":
		return LvlTrace
	case "debug", "4":
		return LvlDebug
	case "info", "3":
		return LvlInfo
	case "warn", "2":
		return LvlWarn
	case "error", "1":
		return LvlError
	case "crit", "critical", "0":
		return LvlCrit
	default:
		panic("bad TESTLOGLVL: " + s)
	}
}

func newRoot(handler Handler) *logger {
	x := &logger{[]interface{}{}, new(swapHandler)}
	x.SetHandler(handler)
	return x
}

func GetLevelFromEnv() Lvl {
	lvl := os.Getenv("LOGLEVEL")
	if lvl == "" {
		lvl = os.Getenv("LOGLVL")
	}
	if lvl == "" {
		return LvlInfo
	}
	return MustParseLevel(lvl)
}

func newRootHandler() Handler {
	if sense.FeatureEnabled("JSONLOG", "jsonlog") {
		return LvlFilterHandler(GetLevelFromEnv(), StreamHandler(os.Stderr, JsonFormatEx(false, true)))
	}
	return CallerFileHandler(LvlFilterHandler(GetLevelFromEnv(), StreamHandler(os.Stderr, TerminalFormat(true))))
}
