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

package normal

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/exstatic/exstatic/distribution"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

const eps = 1e-12

var parameters = [][2]float64{{0, 1}, {-3.5, 0.25}, {10, 7}, {1e3, 1e-3}, {0, 1e5}}

// TestNew_RejectsInvalidParameters checks that non-positive and non-finite parameters
// fail with an invalid parameter error.
func TestNew_RejectsInvalidParameters(t *testing.T) {
	for _, p := range [][2]float64{
		{0, 0},
		{0, -1},
		{0, math.Inf(1)},
		{0, math.NaN()},
		{math.NaN(), 1},
		{math.Inf(-1), 1},
	} {
		t.Run(fmt.Sprintf("mean=%v/std_dev=%v", p[0], p[1]), func(t *testing.T) {
			_, err := New(p[0], p[1])
			if !errors.Is(err, distribution.ErrInvalidParameter) {
				t.Fatalf("expected invalid parameter error, got %v", err)
			}
		})
	}
}

// TestPdf_PeakAtMean checks the density at the mean is 1/(σ√(2π)).
func TestPdf_PeakAtMean(t *testing.T) {
	for _, p := range parameters {
		n, err := New(p[0], p[1])
		if err != nil {
			t.Fatalf("failed to construct distribution: %v", err)
		}
		want := 1 / (p[1] * math.Sqrt(2*math.Pi))
		if got := n.Pdf(p[0]); !floats.EqualWithinAbsOrRel(got, want, eps, eps) {
			t.Errorf("%v: unexpected peak density; expected %v, got %v", n, want, got)
		}
	}
}

// TestLnPdf_MatchesLogOfPdf checks the log-density against log(Pdf) where Pdf does
// not underflow, and checks that it stays finite where Pdf does.
func TestLnPdf_MatchesLogOfPdf(t *testing.T) {
	n := Standard
	for x := -10.0; x <= 10; x += 0.5 {
		if got, want := n.LnPdf(x), math.Log(n.Pdf(x)); !floats.EqualWithinAbsOrRel(got, want, eps, eps) {
			t.Errorf("unexpected log-density at %v; expected %v, got %v", x, want, got)
		}
	}
	if n.Pdf(60) != 0 {
		t.Fatalf("expected density to underflow at 60")
	}
	if got, want := n.LnPdf(60), -1800-0.5*math.Log(2*math.Pi); !floats.EqualWithinAbsOrRel(got, want, eps, eps) {
		t.Errorf("unexpected log-density in the tail; expected %v, got %v", want, got)
	}
}

// TestCdfSf_Complementary checks Cdf(x) + Sf(x) = 1.
func TestCdfSf_Complementary(t *testing.T) {
	for _, p := range parameters {
		n, _ := New(p[0], p[1])
		for z := -8.0; z <= 8; z += 0.25 {
			x := p[0] + z*p[1]
			if sum := n.Cdf(x) + n.Sf(x); math.Abs(sum-1) > eps {
				t.Errorf("%v: cdf+sf at %v is %v", n, x, sum)
			}
		}
	}
}

// TestSf_KeepsPrecisionInTail checks the survival function where 1-Cdf rounds to zero.
func TestSf_KeepsPrecisionInTail(t *testing.T) {
	n := Standard
	if 1-n.Cdf(10) != 0 {
		t.Fatalf("expected 1-cdf to round to zero at 10")
	}
	want := 7.619853024160527e-24
	if got := n.Sf(10); !floats.EqualWithinRel(got, want, 1e-10) {
		t.Errorf("unexpected survival probability; expected %v, got %v", want, got)
	}
}

// TestInverseCdf_RoundTrip checks InverseCdf(Cdf(x)) ≈ x away from the tails.
func TestInverseCdf_RoundTrip(t *testing.T) {
	for _, p := range parameters {
		n, _ := New(p[0], p[1])
		for z := -5.0; z <= 5; z += 0.5 {
			x := p[0] + z*p[1]
			got, err := n.InverseCdf(n.Cdf(x))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !floats.EqualWithinAbsOrRel(got, x, 1e-9*p[1], 1e-9) {
				t.Errorf("%v: round trip of %v returned %v", n, x, got)
			}
		}
	}
}

// TestInverseCdf_ProbabilityRange checks the closed interval [0, 1] for p.
func TestInverseCdf_ProbabilityRange(t *testing.T) {
	n, _ := New(2, 3)
	for _, p := range []float64{-0.1, 1.1, math.NaN(), math.Inf(1)} {
		if _, err := n.InverseCdf(p); !errors.Is(err, distribution.ErrInvalidArgument) {
			t.Errorf("expected invalid argument for p=%v, got %v", p, err)
		}
	}

	tests := map[float64]float64{0: math.Inf(-1), 0.5: 2, 1: math.Inf(1)}
	for p, want := range tests {
		got, err := n.InverseCdf(p)
		if err != nil {
			t.Fatalf("unexpected error for p=%v: %v", p, err)
		}
		if got != want {
			t.Errorf("unexpected quantile for p=%v; expected %v, got %v", p, want, got)
		}
	}
}

// TestEntropy_Formula checks the closed-form entropy.
func TestEntropy_Formula(t *testing.T) {
	for _, s := range []float64{0.1, 1, 2.5, 100} {
		n, _ := New(0, s)
		got, err := n.Entropy()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := 0.5 * math.Log(2*math.Pi*math.E*s*s); !floats.EqualWithinAbsOrRel(got, want, 1e-14, 1e-14) {
			t.Errorf("unexpected entropy for std_dev %v; expected %v, got %v", s, want, got)
		}
	}
}

// TestEntropy_ExtremeScales checks scales whose square over- or underflows.
func TestEntropy_ExtremeScales(t *testing.T) {
	tests := map[float64]float64{
		1e-200: -459.0980800656045,
		1e-160: -366.99467634584266,
		1e160:  369.83255341225197,
		1e200:  461.9359571320138,
	}
	for s, want := range tests {
		n, _ := New(0, s)
		got, err := n.Entropy()
		if err != nil {
			t.Fatalf("unexpected error for std_dev %v: %v", s, err)
		}
		if !floats.EqualWithinRel(got, want, 1e-13) {
			t.Errorf("unexpected entropy for std_dev %v; expected %v, got %v", s, want, got)
		}
	}
}

// TestVariance_OverflowIsComputationError checks that an overflowing σ² is reported.
func TestVariance_OverflowIsComputationError(t *testing.T) {
	n, _ := New(0, 3)
	if v, err := n.Variance(); err != nil || v != 9 {
		t.Fatalf("unexpected variance %v, %v", v, err)
	}

	n, _ = New(0, 1e200)
	if _, err := n.Variance(); !errors.Is(err, distribution.ErrComputation) {
		t.Errorf("expected computation error, got %v", err)
	}
}

// TestNormal_MatchesGonum cross-checks against gonum's implementation.
func TestNormal_MatchesGonum(t *testing.T) {
	for _, p := range parameters {
		n, _ := New(p[0], p[1])
		ref := distuv.Normal{Mu: p[0], Sigma: p[1]}
		for z := -6.0; z <= 6; z += 0.75 {
			x := p[0] + z*p[1]
			if !floats.EqualWithinAbsOrRel(n.Pdf(x), ref.Prob(x), eps, 1e-10) {
				t.Errorf("%v: pdf mismatch at %v", n, x)
			}
			if !floats.EqualWithinAbsOrRel(n.LnPdf(x), ref.LogProb(x), eps, 1e-10) {
				t.Errorf("%v: ln pdf mismatch at %v", n, x)
			}
			if !floats.EqualWithinAbsOrRel(n.Cdf(x), ref.CDF(x), eps, 1e-10) {
				t.Errorf("%v: cdf mismatch at %v", n, x)
			}
		}
	}
}

// TestEndToEnd checks reference values of the standard normal.
func TestEndToEnd(t *testing.T) {
	n, _ := New(0, 1)
	if got := n.Pdf(0); !floats.EqualWithinAbsOrRel(got, 0.3989422804014327, eps, eps) {
		t.Errorf("unexpected pdf(0): %v", got)
	}
	if got := n.Cdf(1.959963985); math.Abs(got-0.975) > 1e-9 {
		t.Errorf("unexpected cdf(1.959963985): %v", got)
	}
}

// TestNaN_Propagates checks that non-finite query points follow IEEE-754 semantics.
func TestNaN_Propagates(t *testing.T) {
	n := Standard
	if !math.IsNaN(n.Pdf(math.NaN())) || !math.IsNaN(n.Cdf(math.NaN())) {
		t.Errorf("expected NaN to propagate")
	}
	if n.Cdf(math.Inf(1)) != 1 || n.Sf(math.Inf(1)) != 0 || n.Pdf(math.Inf(-1)) != 0 {
		t.Errorf("unexpected values at infinity")
	}
}
