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
	"io"
	"sync"

	"github.com/go-stack/stack"
)

// Handler defines where and how log records are written.
type Handler interface {
	Log(r *Record) error
}

// FuncHandler turns a plain function into a Handler.
type FuncHandler func(r *Record) error

func (h FuncHandler) Log(r *Record) error {
	return h(r)
}

// StreamHandler writes records to wr, formatted by fmtr, through
// SyncHandler (so writes are serialized only while NoSync is false).
func StreamHandler(wr io.Writer, fmtr Format) Handler {
	h := FuncHandler(func(r *Record) error {
		_, err := wr.Write(fmtr.Format(r))
		return err
	})
	return SyncHandler(h)
}

// SyncHandler synchronizes concurrent writes to a handler with a mutex
// when NoSync is false. When NoSync is true (the default unless
// NO_LOGSYNC is set to a falsy value) records go straight to h unlocked.
func SyncHandler(h Handler) Handler {
	var mu sync.Mutex
	return FuncHandler(func(r *Record) error {
		if NoSync {
			return h.Log(r)
		}
		mu.Lock()
		defer mu.Unlock()
		return h.Log(r)
	})
}

// LvlFilterHandler returns a Handler that only lets records at or above
// the given verbosity level through to h.
func LvlFilterHandler(maxLvl Lvl, h Handler) Handler {
	return FuncHandler(func(r *Record) error {
		if r.Lvl > maxLvl {
			return nil
		}
		return h.Log(r)
	})
}

// CallerFileHandler annotates each record with the file:line of the
// immediate caller outside of this package, mirroring the teacher's use
// of go-stack/stack for caller attribution.
func CallerFileHandler(h Handler) Handler {
	return FuncHandler(func(r *Record) error {
		self := fmt.Sprintf("%+k", stack.Caller(0))
		for _, call := range stack.Trace().TrimRuntime() {
			if fmt.Sprintf("%+k", call) != self {
				r.Ctx = append(r.Ctx, "caller", call.String())
				break
			}
		}
		return h.Log(r)
	})
}

// MultiHandler dispatches every record to all of the given handlers.
func MultiHandler(hs ...Handler) Handler {
	return FuncHandler(func(r *Record) error {
		for _, h := range hs {
			_ = h.Log(r)
		}
		return nil
	})
}

// DiscardHandler discards every record; useful in tests.
func DiscardHandler() Handler {
	return FuncHandler(func(r *Record) error { return nil })
}
