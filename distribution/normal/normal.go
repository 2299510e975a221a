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

// Package normal evaluates the Normal (Gaussian) distribution.
package normal

import (
	"fmt"
	"math"

	"github.com/exstatic/exstatic/distribution"
	"github.com/exstatic/exstatic/distribution/special"
)

// Normal is a normal distribution with validated mean and standard deviation.
// The zero value is not usable; construct it with New.
type Normal struct {
	mean   float64
	stdDev float64
}

// New returns the normal distribution with the given mean and standard deviation.
// Both must be finite and stdDev must be positive.
func New(mean, stdDev float64) (Normal, error) {
	if err := distribution.CheckLocationScale(mean, stdDev); err != nil {
		return Normal{}, fmt.Errorf("normal: %w", err)
	}
	return Normal{mean: mean, stdDev: stdDev}, nil
}

// lnSqrt2PiE is ln √(2πe).
var lnSqrt2PiE = 0.5 * math.Log(2*math.Pi*math.E)

// Standard is the normal distribution with zero mean and unit standard deviation.
var Standard = Normal{mean: 0, stdDev: 1}

func (n Normal) z(x float64) float64 {
	return (x - n.mean) / n.stdDev
}

// Pdf is the probability density at x.
func (n Normal) Pdf(x float64) float64 {
	z := n.z(x)
	return math.Exp(-z*z/2) * special.InvSqrt2Pi / n.stdDev
}

// LnPdf is the log-density at x. It stays finite far in the tails where Pdf underflows.
func (n Normal) LnPdf(x float64) float64 {
	z := n.z(x)
	return -z*z/2 - math.Log(n.stdDev) - special.LnSqrt2Pi
}

// Cdf is the cumulative probability at x.
func (n Normal) Cdf(x float64) float64 {
	return special.NormalCdf(n.z(x))
}

// Sf is the survival probability at x.
func (n Normal) Sf(x float64) float64 {
	return special.NormalSf(n.z(x))
}

// InverseCdf is the quantile function. It fails for p outside [0, 1] and returns
// -Inf and +Inf for p equal to 0 and 1.
func (n Normal) InverseCdf(p float64) (float64, error) {
	if err := distribution.CheckProbability(p); err != nil {
		return 0, err
	}
	return n.mean + n.stdDev*special.NormalQuantile(p), nil
}

// Entropy is the differential entropy 0.5*ln(2πeσ²), evaluated as ln σ + ln √(2πe)
// so that σ² never has to be formed.
func (n Normal) Entropy() (float64, error) {
	return distribution.CheckFinite("entropy", math.Log(n.stdDev)+lnSqrt2PiE)
}

// Variance is σ². It fails only if σ² overflows.
func (n Normal) Variance() (float64, error) {
	return distribution.CheckFinite("variance", n.stdDev*n.stdDev)
}

func (n Normal) Mean() float64   { return n.mean }
func (n Normal) Median() float64 { return n.mean }
func (n Normal) Mode() float64   { return n.mean }
func (n Normal) StdDev() float64 { return n.stdDev }

func (n Normal) String() string {
	return fmt.Sprintf("Normal(μ=%v, σ=%v)", n.mean, n.stdDev)
}
