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

// Package special wraps the special functions needed by the distribution
// families. Arguments outside the domain of the underlying gonum routines are
// resolved here, so the routines never panic on a validated distribution.
package special

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	LnSqrt2Pi  = 0.91893853320467274178032973640561763986139747363778 // ln(√(2π))
	InvSqrt2Pi = 0.39894228040143267793994605993438186847585863116493 // 1/√(2π)
)

// NormalCdf is the standard normal CDF evaluated through the complementary error function.
func NormalCdf(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

// NormalSf is the standard normal survival function; it keeps full relative
// precision in the upper tail where 1-NormalCdf(z) would round to zero.
func NormalSf(z float64) float64 {
	return 0.5 * math.Erfc(z/math.Sqrt2)
}

// NormalQuantile is the inverse of NormalCdf for p in [0, 1].
func NormalQuantile(p float64) float64 {
	switch {
	case math.IsNaN(p):
		return math.NaN()
	case p <= 0:
		return math.Inf(-1)
	case p >= 1:
		return math.Inf(1)
	}
	return distuv.UnitNormal.Quantile(p)
}

// LnGamma is the logarithm of the absolute value of the gamma function.
func LnGamma(x float64) float64 {
	lg, _ := math.Lgamma(x)
	return lg
}

// RegIncBeta is the regularized incomplete beta function I_x(a, b).
func RegIncBeta(a, b, x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	return mathext.RegIncBeta(a, b, x)
}

// InvRegIncBeta returns x such that I_x(a, b) = y.
func InvRegIncBeta(a, b, y float64) float64 {
	switch {
	case math.IsNaN(y):
		return math.NaN()
	case y <= 0:
		return 0
	case y >= 1:
		return 1
	}
	return mathext.InvRegIncBeta(a, b, y)
}
