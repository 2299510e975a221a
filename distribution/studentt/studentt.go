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

// Package studentt evaluates the location-scale Student's t distribution.
package studentt

import (
	"fmt"
	"math"

	"github.com/exstatic/exstatic/distribution"
	"github.com/exstatic/exstatic/distribution/normal"
	"github.com/exstatic/exstatic/distribution/special"
)

// normalLimit is the degrees of freedom above which the density and the
// probabilities are evaluated as the Normal limit. Beyond it the log-gamma
// difference in the normalizing constant loses all precision.
const normalLimit = 1e8

// StudentsT is a Student's t distribution with location mean, scale stdDev
// and df degrees of freedom.
type StudentsT struct {
	mean   float64
	stdDev float64
	df     float64
}

// New returns the Student's t distribution for the given parameters.
// mean and stdDev must be finite, stdDev and df must be positive. df may be +Inf.
func New(mean, stdDev, df float64) (StudentsT, error) {
	if err := distribution.CheckLocationScale(mean, stdDev); err != nil {
		return StudentsT{}, fmt.Errorf("students t: %w", err)
	}
	if math.IsNaN(df) || df <= 0 {
		return StudentsT{}, fmt.Errorf("students t: %w: df must be positive, got %v", distribution.ErrInvalidParameter, df)
	}
	return StudentsT{mean: mean, stdDev: stdDev, df: df}, nil
}

// asNormal returns the Normal limit with the same location and scale.
func (t StudentsT) asNormal() (normal.Normal, bool) {
	if t.df < normalLimit {
		return normal.Normal{}, false
	}
	n, err := normal.New(t.mean, t.stdDev)
	return n, err == nil
}

func (t StudentsT) z(x float64) float64 {
	return (x - t.mean) / t.stdDev
}

// Pdf is the probability density at x.
func (t StudentsT) Pdf(x float64) float64 {
	if n, ok := t.asNormal(); ok {
		return n.Pdf(x)
	}
	return math.Exp(t.LnPdf(x))
}

// LnPdf is the log-density at x.
func (t StudentsT) LnPdf(x float64) float64 {
	if n, ok := t.asNormal(); ok {
		return n.LnPdf(x)
	}
	z := t.z(x)
	v := t.df
	return special.LnGamma((v+1)/2) - special.LnGamma(v/2) - 0.5*math.Log(v*math.Pi) -
		math.Log(t.stdDev) - (v+1)/2*lnKernel(z, v)
}

// lnKernel is ln(1 + z²/ν). Far out, where z² overflows, it is expanded as
// 2·ln|z| - ln ν + ln(1 + ν/z²).
func lnKernel(z, v float64) float64 {
	if a := math.Abs(z); a > 1e100 {
		return 2*math.Log(a) - math.Log(v) + math.Log1p(v/a/a)
	}
	return math.Log1p(z * z / v)
}

// tail is the probability mass beyond |z|, i.e. P(T > |z|). Inside |z| < √ν it is
// taken from the central mass I_{z²/(ν+z²)}(½, ν/2), as ν/(ν+z²) rounds to 1 there.
func (t StudentsT) tail(z float64) float64 {
	v := t.df
	z2 := z * z
	if z2 < v {
		return 0.5 - 0.5*special.RegIncBeta(0.5, v/2, z2/(v+z2))
	}
	return 0.5 * special.RegIncBeta(v/2, 0.5, v/(v+z2))
}

// Cdf is the cumulative probability at x.
func (t StudentsT) Cdf(x float64) float64 {
	if n, ok := t.asNormal(); ok {
		return n.Cdf(x)
	}
	z := t.z(x)
	if math.IsNaN(z) {
		return math.NaN()
	}
	if z <= 0 {
		return t.tail(z)
	}
	return 1 - t.tail(z)
}

// Sf is the survival probability at x, evaluated as the upper tail directly.
func (t StudentsT) Sf(x float64) float64 {
	if n, ok := t.asNormal(); ok {
		return n.Sf(x)
	}
	z := t.z(x)
	if math.IsNaN(z) {
		return math.NaN()
	}
	if z >= 0 {
		return t.tail(z)
	}
	return 1 - t.tail(z)
}

// InverseCdf is the quantile function, inverting the incomplete beta relation of Cdf.
// It fails for p outside [0, 1] and returns -Inf and +Inf for p equal to 0 and 1.
func (t StudentsT) InverseCdf(p float64) (float64, error) {
	if err := distribution.CheckProbability(p); err != nil {
		return 0, err
	}
	if n, ok := t.asNormal(); ok {
		return n.InverseCdf(p)
	}
	if p == 0.5 {
		return t.mean, nil
	}
	v := t.df
	q := math.Min(p, 1-p)
	var z float64
	if 2*q > 0.5 {
		// near the median y = I⁻¹(ν/2, ½, 2q) is close to 1, so 1-y is inverted directly
		w := special.InvRegIncBeta(0.5, v/2, 1-2*q)
		z = math.Sqrt(v * w / (1 - w))
	} else {
		y := special.InvRegIncBeta(v/2, 0.5, 2*q)
		z = math.Sqrt(v * (1 - y) / y)
	}
	if p < 0.5 {
		z = -z
	}
	return t.mean + t.stdDev*z, nil
}

// Variance follows an ordered range policy on df: undefined up to 1,
// infinite up to 2, σ²·df/(df-2) beyond.
func (t StudentsT) Variance() (float64, error) {
	switch {
	case t.df <= 1:
		return 0, distribution.ErrUndefinedVariance
	case t.df <= 2:
		return 0, distribution.ErrInfiniteVariance
	case math.IsInf(t.df, 1):
		return distribution.CheckFinite("variance", t.stdDev*t.stdDev)
	}
	return distribution.CheckFinite("variance", t.stdDev*t.stdDev*t.df/(t.df-2))
}

// StdDev is the square root of Variance and fails whenever Variance does.
func (t StudentsT) StdDev() (float64, error) {
	v, err := t.Variance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Mean is the location; it does not exist for df ≤ 1.
func (t StudentsT) Mean() (float64, error) {
	if t.df <= 1 {
		return 0, distribution.ErrUndefinedMean
	}
	return t.mean, nil
}

func (t StudentsT) Median() float64 { return t.mean }
func (t StudentsT) Mode() float64   { return t.mean }

// Location, Scale and DegreesOfFreedom return the parameters.
func (t StudentsT) Location() float64         { return t.mean }
func (t StudentsT) Scale() float64            { return t.stdDev }
func (t StudentsT) DegreesOfFreedom() float64 { return t.df }

func (t StudentsT) String() string {
	return fmt.Sprintf("StudentsT(μ=%v, σ=%v, ν=%v)", t.mean, t.stdDev, t.df)
}
