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
	"fmt"
	"math"
)

// CheckLocationScale validates the location and scale shared by both families.
func CheckLocationScale(mean, stdDev float64) error {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return fmt.Errorf("%w: mean must be finite, got %v", ErrInvalidParameter, mean)
	}
	if math.IsNaN(stdDev) || math.IsInf(stdDev, 0) {
		return fmt.Errorf("%w: std_dev must be finite, got %v", ErrInvalidParameter, stdDev)
	}
	if stdDev <= 0 {
		return fmt.Errorf("%w: std_dev must be positive, got %v", ErrInvalidParameter, stdDev)
	}
	return nil
}

// CheckProbability rejects p outside the closed interval [0, 1] (NaN included).
func CheckProbability(p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("%w: p must be in [0, 1], got %v", ErrInvalidArgument, p)
	}
	return nil
}

// CheckFinite turns a non-finite statistic into a computation error.
func CheckFinite(name string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: failed to calculate %v", ErrComputation, name)
	}
	return v, nil
}
