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
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Format turns a Record into a line of output bytes.
type Format interface {
	Format(r *Record) []byte
}

type formatFunc func(*Record) []byte

func (f formatFunc) Format(r *Record) []byte { return f(r) }

var lvlColor = map[Lvl]*color.Color{
	LvlCrit:  color.New(color.FgMagenta, color.Bold),
	LvlError: color.New(color.FgRed),
	LvlWarn:  color.New(color.FgYellow),
	LvlInfo:  color.New(color.FgGreen),
	LvlDebug: color.New(color.FgCyan),
	LvlTrace: color.New(color.FgWhite),
}

// TerminalFormat renders records as "LVL[time] msg key=val key=val ...",
// coloring the level when color is true and writing to a terminal.
func TerminalFormat(useColor bool) Format {
	return formatFunc(func(r *Record) []byte {
		var b bytes.Buffer
		lvl := r.Lvl.String()
		if useColor {
			if c, ok := lvlColor[r.Lvl]; ok {
				lvl = c.Sprint(lvl)
			}
		}
		fmt.Fprintf(&b, "%s[%s] %s", lvl, r.Time.Format("01-02|15:04:05.000"), r.Msg)
		ctx := r.Ctx
		for i := 0; i+1 < len(ctx); i += 2 {
			fmt.Fprintf(&b, " %v=%v", ctx[i], formatValue(ctx[i+1]))
		}
		b.WriteByte('\n')
		return b.Bytes()
	})
}

// JsonFormatEx renders each record as a single JSON object, optionally
// pretty-printed and with the timestamp included.
func JsonFormatEx(pretty, includeTime bool) Format {
	return formatFunc(func(r *Record) []byte {
		props := make(map[string]interface{}, 3+len(r.Ctx)/2)
		props["lvl"] = r.Lvl.String()
		props["msg"] = r.Msg
		if includeTime {
			props["t"] = r.Time
		}
		ctx := r.Ctx
		for i := 0; i+1 < len(ctx); i += 2 {
			k := fmt.Sprintf("%v", ctx[i])
			props[k] = formatValue(ctx[i+1])
		}
		var (
			b   []byte
			err error
		)
		if pretty {
			b, err = json.MarshalIndent(props, "", "  ")
		} else {
			b, err = json.Marshal(props)
		}
		if err != nil {
			b, _ = json.Marshal(map[string]string{"LOG_ERROR": err.Error()})
		}
		return append(b, '\n')
	})
}

func formatValue(v interface{}) interface{} {
	switch x := v.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	case string:
		if strings.ContainsAny(x, " \t\n\"") {
			return fmt.Sprintf("%q", x)
		}
		return x
	default:
		return x
	}
}
