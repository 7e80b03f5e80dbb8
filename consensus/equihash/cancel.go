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

// CancelLabel names a point in the solver's inner loop where the
// cancellation probe is consulted.
type CancelLabel int

const (
	ListGeneration CancelLabel = iota
	ListSorting
	ListColliding
	RoundEnd
	FinalSorting
	FinalColliding
	PartialGeneration
	PartialSorting
	PartialSubtreeEnd
	PartialIndexEnd
	PartialEnd
)

func (l CancelLabel) String() string {
	switch l {
	case ListGeneration:
		return "ListGeneration"
	case ListSorting:
		return "ListSorting"
	case ListColliding:
		return "ListColliding"
	case RoundEnd:
		return "RoundEnd"
	case FinalSorting:
		return "FinalSorting"
	case FinalColliding:
		return "FinalColliding"
	case PartialGeneration:
		return "PartialGeneration"
	case PartialSorting:
		return "PartialSorting"
	case PartialSubtreeEnd:
		return "PartialSubtreeEnd"
	case PartialIndexEnd:
		return "PartialIndexEnd"
	case PartialEnd:
		return "PartialEnd"
	default:
		return "Unknown"
	}
}

// CancelFunc is consulted at each CancelLabel point during a solve. A
// true return aborts the solve immediately with ErrSolverCancelled; no
// partial results are returned. A nil CancelFunc never cancels.
type CancelFunc func(label CancelLabel) bool

func checkCancel(cancel CancelFunc, label CancelLabel) error {
	if cancel != nil && cancel(label) {
		return ErrSolverCancelled
	}
	return nil
}
