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

//go:generate mockgen -source continuous.go -destination continuous_mocks.go -package distribution

// Continuous is a univariate continuous distribution with validated parameters.
// Implementations are immutable values and safe for concurrent use.
type Continuous interface {
	// Pdf is the probability density at x.
	Pdf(x float64) float64
	// LnPdf is the natural logarithm of the density at x, computed without exp/log round trip.
	LnPdf(x float64) float64
	// Cdf is the probability that the variable is less than or equal to x.
	Cdf(x float64) float64
	// Sf is the survival function, the probability that the variable exceeds x.
	Sf(x float64) float64
	// InverseCdf is the quantile function; p must lie in [0, 1].
	InverseCdf(p float64) (float64, error)
	// Variance of the distribution, if it exists.
	Variance() (float64, error)
	// String names the distribution and its parameters.
	String() string
}
