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

import "errors"

var (
	// ErrSolverCancelled is returned when the caller's cancellation probe
	// returned true. It is distinct from an empty solution set: no
	// partial results are returned alongside it.
	ErrSolverCancelled = errors.New("equihash: solver cancelled")

	// ErrUnsupportedParams is returned by InitialiseState for an (N,K)
	// pair outside the supported list.
	ErrUnsupportedParams = errors.New("equihash: unsupported (N,K) parameters")

	// ErrHashInitFailure wraps a failure from the underlying hash
	// primitive during InitialiseState.
	ErrHashInitFailure = errors.New("equihash: hash primitive init failure")
)
