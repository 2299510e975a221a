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

// Package native is the caller-facing surface of the distribution library.
// Every function takes primitive parameters, reconstructs the distribution on
// each call and returns either the result or an error classifiable with
// distribution.Kind.
package native

import (
	"github.com/exstatic/exstatic/distribution"
	"github.com/exstatic/exstatic/distribution/normal"
	"github.com/exstatic/exstatic/distribution/studentt"
)

// NormalPdf is the density of Normal(mean, stdDev) at x.
func NormalPdf(mean, stdDev, x float64) (float64, error) {
	n, err := normal.New(mean, stdDev)
	if err != nil {
		return 0, err
	}
	return n.Pdf(x), nil
}

// NormalCdf is the cumulative probability of Normal(mean, stdDev) at x.
func NormalCdf(mean, stdDev, x float64) (float64, error) {
	n, err := normal.New(mean, stdDev)
	if err != nil {
		return 0, err
	}
	return n.Cdf(x), nil
}

// NormalSf is the survival probability of Normal(mean, stdDev) at x.
func NormalSf(mean, stdDev, x float64) (float64, error) {
	n, err := normal.New(mean, stdDev)
	if err != nil {
		return 0, err
	}
	return n.Sf(x), nil
}

// NormalLnPdf is the log-density of Normal(mean, stdDev) at x.
func NormalLnPdf(mean, stdDev, x float64) (float64, error) {
	n, err := normal.New(mean, stdDev)
	if err != nil {
		return 0, err
	}
	return n.LnPdf(x), nil
}

// NormalInverseCdf is the quantile of Normal(mean, stdDev) for p.
// Parameters are validated before p.
func NormalInverseCdf(mean, stdDev, p float64) (float64, error) {
	n, err := normal.New(mean, stdDev)
	if err != nil {
		return 0, err
	}
	return n.InverseCdf(p)
}

// NormalEntropy is the entropy of Normal(0, stdDev); the mean does not affect it.
func NormalEntropy(stdDev float64) (float64, error) {
	n, err := normal.New(0, stdDev)
	if err != nil {
		return 0, err
	}
	return n.Entropy()
}

// NormalVariance is the variance of Normal(0, stdDev).
func NormalVariance(stdDev float64) (float64, error) {
	n, err := normal.New(0, stdDev)
	if err != nil {
		return 0, err
	}
	return n.Variance()
}

// TPdf is the density of StudentsT(mean, stdDev, df) at x.
func TPdf(mean, stdDev, df, x float64) (float64, error) {
	t, err := studentt.New(mean, stdDev, df)
	if err != nil {
		return 0, err
	}
	return t.Pdf(x), nil
}

// TLnPdf is the log-density of StudentsT(mean, stdDev, df) at x.
func TLnPdf(mean, stdDev, df, x float64) (float64, error) {
	t, err := studentt.New(mean, stdDev, df)
	if err != nil {
		return 0, err
	}
	return t.LnPdf(x), nil
}

// TCdf is the cumulative probability of StudentsT(mean, stdDev, df) at x.
func TCdf(mean, stdDev, df, x float64) (float64, error) {
	t, err := studentt.New(mean, stdDev, df)
	if err != nil {
		return 0, err
	}
	return t.Cdf(x), nil
}

// TSf is the survival probability of StudentsT(mean, stdDev, df) at x.
func TSf(mean, stdDev, df, x float64) (float64, error) {
	t, err := studentt.New(mean, stdDev, df)
	if err != nil {
		return 0, err
	}
	return t.Sf(x), nil
}

// TInverseCdf is the quantile of StudentsT(mean, stdDev, df) for p.
// p is validated before the parameters.
func TInverseCdf(mean, stdDev, df, p float64) (float64, error) {
	if err := distribution.CheckProbability(p); err != nil {
		return 0, err
	}
	t, err := studentt.New(mean, stdDev, df)
	if err != nil {
		return 0, err
	}
	return t.InverseCdf(p)
}

// TVariance is the variance of StudentsT(0, stdDev, df). The df policy is applied
// before the parameters are validated: it fails with distribution.ErrUndefinedVariance
// for df ≤ 1 and distribution.ErrInfiniteVariance for 1 < df ≤ 2, whatever stdDev is.
func TVariance(stdDev, df float64) (float64, error) {
	switch {
	case df <= 1:
		return 0, distribution.ErrUndefinedVariance
	case df <= 2:
		return 0, distribution.ErrInfiniteVariance
	}
	t, err := studentt.New(0, stdDev, df)
	if err != nil {
		return 0, err
	}
	return t.Variance()
}
