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
	"sync/atomic"
	"time"
)

// Lvl is a verbosity level, lower is more severe.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

func (l Lvl) String() string {
	switch l {
	case LvlCrit:
		return "crit"
	case LvlError:
		return "eror"
	case LvlWarn:
		return "warn"
	case LvlInfo:
		return "info"
	case LvlDebug:
		return "dbug"
	case LvlTrace:
		return "trce"
	default:
		return "unkn"
	}
}

// Record is a single log event generated by a logger.
type Record struct {
	Time time.Time
	Lvl  Lvl
	Msg  string
	Ctx  []interface{}
}

// LoggerI is the interface satisfied by loggers returned from New().
type LoggerI interface {
	New(ctx ...interface{}) LoggerI
	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
	GetHandler() Handler
	SetHandler(h Handler)
}

// swapHandler wraps another handler that may be swapped out dynamically
// at runtime in a thread-safe fashion.
type swapHandler struct {
	handler atomic.Pointer[Handler]
}

func (h *swapHandler) Log(r *Record) error {
	return (*h.handler.Load()).Log(r)
}

func (h *swapHandler) Swap(newHandler Handler) {
	h.handler.Store(&newHandler)
}

// logger is the concrete LoggerI implementation, holding a fixed context
// that is prepended to every record it emits.
type logger struct {
	ctx     []interface{}
	handler *swapHandler
}

func (l *logger) write(msg string, lvl Lvl, ctx []interface{}) {
	l.writeskip(1, msg, lvl, ctx)
}

// writeskip writes a record, allowing callers that wrap write (such as
// Printf-style helpers) to keep the reported line number pointed at the
// real call site. skip is currently unused by the handler chain but kept
// so call sites document intent.
func (l *logger) writeskip(skip int, msg string, lvl Lvl, ctx []interface{}) {
	_ = skip
	r := &Record{
		Time: time.Now(),
		Lvl:  lvl,
		Msg:  msg,
		Ctx:  normalize(append(append([]interface{}{}, l.ctx...), ctx...)),
	}
	l.handler.Log(r)
}

func (l *logger) New(ctx ...interface{}) LoggerI {
	child := &logger{
		ctx:     append(append([]interface{}{}, l.ctx...), ctx...),
		handler: l.handler,
	}
	return child
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.write(msg, LvlTrace, ctx) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(msg, LvlDebug, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(msg, LvlInfo, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(msg, LvlWarn, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(msg, LvlError, ctx) }
func (l *logger) Crit(msg string, ctx ...interface{})  { l.write(msg, LvlCrit, ctx) }

func (l *logger) GetHandler() Handler   { return *l.handler.handler.Load() }
func (l *logger) SetHandler(h Handler)  { l.handler.Swap(h) }

// normalize ensures ctx has an even number of elements, padding with a
// marker value if a caller forgot a value for a trailing key.
func normalize(ctx []interface{}) []interface{} {
	if len(ctx)%2 != 0 {
		ctx = append(ctx, "LOG_ERROR_MISSING_VALUE")
	}
	return ctx
}
