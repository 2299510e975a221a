// Copyright 2026 The exstatic Authors
// This file is part of exstatic.
//
// exstatic is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// exstatic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with exstatic. If not, see <http://www.gnu.org/licenses/>.

package distribution

import (
	"errors"
	"fmt"
)

// Error kinds returned by distribution constructors and evaluators.
// Callers branch on them with errors.Is; the wrapped message carries the offending values.
var (
	// ErrInvalidParameter signals that a distribution cannot be constructed.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidArgument signals that a function-specific input is outside its domain.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUndefinedStatistic signals that a statistic does not exist for valid parameters.
	ErrUndefinedStatistic = errors.New("undefined statistic")
	// ErrComputation signals that an underlying numeric routine failed.
	ErrComputation = errors.New("computation error")

	ErrUndefinedVariance = fmt.Errorf("%w: variance is undefined for df ≤ 1", ErrUndefinedStatistic)
	ErrInfiniteVariance  = fmt.Errorf("%w: variance is infinite for 1 < df ≤ 2", ErrUndefinedStatistic)
	ErrUndefinedMean     = fmt.Errorf("%w: mean is undefined for df ≤ 1", ErrUndefinedStatistic)
)

// Kind classifies err into one of the error kinds above, the most specific kind first.
// It returns nil for errors which do not originate from this module.
func Kind(err error) error {
	for _, kind := range []error{
		ErrUndefinedVariance,
		ErrInfiniteVariance,
		ErrUndefinedMean,
		ErrUndefinedStatistic,
		ErrInvalidParameter,
		ErrInvalidArgument,
		ErrComputation,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
