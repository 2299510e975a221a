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

package native

import (
	"math"
	"sync"
	"testing"

	"github.com/exstatic/exstatic/distribution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNative_EndToEnd(t *testing.T) {
	pdf, err := NormalPdf(0, 1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.3989422804014327, pdf, 1e-15)

	cdf, err := NormalCdf(0, 1, 1.959963985)
	require.NoError(t, err)
	assert.InDelta(t, 0.975, cdf, 1e-9)

	tpdf, err := TPdf(0, 1, 5, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.3796066898224944, tpdf, 1e-14)
}

func TestNative_PeakDensityAndComplement(t *testing.T) {
	for _, stdDev := range []float64{0.5, 1, 4} {
		peak, err := NormalPdf(2, stdDev, 2)
		require.NoError(t, err)
		assert.InEpsilon(t, 1/(stdDev*math.Sqrt(2*math.Pi)), peak, 1e-14)

		for x := -10.0; x <= 10; x += 1.25 {
			c, err := NormalCdf(2, stdDev, x)
			require.NoError(t, err)
			s, err := NormalSf(2, stdDev, x)
			require.NoError(t, err)
			assert.InDelta(t, 1, c+s, 1e-14)

			tc, err := TCdf(2, stdDev, 3, x)
			require.NoError(t, err)
			ts, err := TSf(2, stdDev, 3, x)
			require.NoError(t, err)
			assert.InDelta(t, 1, tc+ts, 1e-12)
		}
	}
}

func TestNative_LnPdfMatchesPdf(t *testing.T) {
	l, err := NormalLnPdf(1, 2, 3)
	require.NoError(t, err)
	p, err := NormalPdf(1, 2, 3)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(p), l, 1e-14)

	l, err = TLnPdf(1, 2, 7, 3)
	require.NoError(t, err)
	p, err = TPdf(1, 2, 7, 3)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(p), l, 1e-13)
}

func TestNative_InverseCdfRoundTrip(t *testing.T) {
	for x := -3.0; x <= 3; x += 0.5 {
		p, err := NormalCdf(1, 2, x)
		require.NoError(t, err)
		got, err := NormalInverseCdf(1, 2, p)
		require.NoError(t, err)
		assert.InDelta(t, x, got, 1e-9)
	}
}

func TestNative_InverseCdfProbabilityRange(t *testing.T) {
	for _, p := range []float64{-0.1, 1.1} {
		_, err := NormalInverseCdf(0, 1, p)
		assert.ErrorIs(t, err, distribution.ErrInvalidArgument)
		_, err = TInverseCdf(0, 1, 5, p)
		assert.ErrorIs(t, err, distribution.ErrInvalidArgument)
	}
	for _, p := range []float64{0, 0.5, 1} {
		v, err := NormalInverseCdf(0, 1, p)
		assert.NoError(t, err)
		assert.False(t, math.IsNaN(v))
		v, err = TInverseCdf(0, 1, 5, p)
		assert.NoError(t, err)
		assert.False(t, math.IsNaN(v))
	}
}

func TestNative_ValidationOrder(t *testing.T) {
	// the normal quantile validates its parameters first
	_, err := NormalInverseCdf(0, -1, 2)
	assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
	// the t quantile validates its probability first
	_, err = TInverseCdf(0, -1, 5, 2)
	assert.ErrorIs(t, err, distribution.ErrInvalidArgument)
}

func TestNative_InvalidParameters(t *testing.T) {
	for _, stdDev := range []float64{0, -1} {
		_, err := NormalPdf(0, stdDev, 0)
		assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
		_, err = NormalEntropy(stdDev)
		assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
		_, err = NormalVariance(stdDev)
		assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
		_, err = TCdf(0, stdDev, 3, 0)
		assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
		_, err = TVariance(stdDev, 3)
		assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
	}
	for _, df := range []float64{0, -1} {
		_, err := TPdf(0, 1, df, 0)
		assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
	}
	_, err := TVariance(1, math.NaN())
	assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
}

func TestNative_TVarianceChecksDfFirst(t *testing.T) {
	for _, df := range []float64{0, -1} {
		_, err := TVariance(1, df)
		assert.ErrorIs(t, err, distribution.ErrUndefinedVariance, "df=%v", df)
	}
	_, err := TVariance(0, 0.5)
	assert.ErrorIs(t, err, distribution.ErrUndefinedVariance)
	_, err = TVariance(-1, 1.5)
	assert.ErrorIs(t, err, distribution.ErrInfiniteVariance)
	_, err = TVariance(0, 3)
	assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
}

func TestNative_Entropy(t *testing.T) {
	for _, stdDev := range []float64{0.3, 1, 12} {
		got, err := NormalEntropy(stdDev)
		require.NoError(t, err)
		assert.InDelta(t, 0.5*math.Log(2*math.Pi*math.E*stdDev*stdDev), got, 1e-14)
	}
	for _, stdDev := range []float64{1e-200, 1e-160, 1e200} {
		got, err := NormalEntropy(stdDev)
		require.NoError(t, err, "std_dev=%v", stdDev)
		assert.InEpsilon(t, math.Log(stdDev)+0.5*math.Log(2*math.Pi*math.E), got, 1e-14)
	}
	v, err := NormalVariance(3)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
}

func TestNative_TVariancePolicy(t *testing.T) {
	for _, df := range []float64{0.5, 1.0} {
		_, err := TVariance(2, df)
		assert.ErrorIs(t, err, distribution.ErrUndefinedVariance, "df=%v", df)
	}
	for _, df := range []float64{1.5, 2.0} {
		_, err := TVariance(2, df)
		assert.ErrorIs(t, err, distribution.ErrInfiniteVariance, "df=%v", df)
	}
	for _, df := range []float64{3.0, 10.0} {
		v, err := TVariance(2, df)
		require.NoError(t, err)
		assert.Equal(t, 2*2*df/(df-2), v)
	}
}

func TestRegistry_LookupAndCall(t *testing.T) {
	assert.Len(t, Names(), 13)

	f, err := Lookup("t_pdf")
	require.NoError(t, err)
	assert.Equal(t, []string{"mean", "std_dev", "df", "x"}, f.Args)
	v, err := f.Call(0, 1, 5, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.3796066898224944, v, 1e-14)

	_, err = f.Call(0, 1)
	assert.Error(t, err)

	f, err = Lookup("t_variance")
	require.NoError(t, err)
	_, err = f.Call(1, 1)
	assert.ErrorIs(t, err, distribution.ErrUndefinedVariance)

	_, err = Lookup("normal_skewness")
	assert.Error(t, err)
}

func TestRegistry_NamesMatchEntries(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.Name)
	}
}

func TestEvaluator_CachesValidDistributions(t *testing.T) {
	e, err := NewEvaluator(2)
	require.NoError(t, err)

	a, err := e.Distribution(NormalFamily, 0, 1, 0)
	require.NoError(t, err)
	b, err := e.Distribution(NormalFamily, 0, 1, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, e.Len())

	_, err = e.Distribution(StudentsFamily, 0, 1, 0)
	assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
	assert.Equal(t, 1, e.Len())

	d, err := e.Distribution(StudentsFamily, 0, 1, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.3796066898224944, d.Pdf(0), 1e-14)
	assert.Equal(t, 2, e.Len())

	_, err = e.Distribution(StudentsFamily, 0, 1, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Len())

	_, err = e.Distribution(Family("cauchy"), 0, 1, 1)
	assert.Error(t, err)

	_, err = NewEvaluator(0)
	assert.Error(t, err)
}

func TestNewDistribution_ValidatesFamilyAndParameters(t *testing.T) {
	d, err := NewDistribution(StudentsFamily, 0, 1, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.3796066898224944, d.Pdf(0), 1e-14)

	d, err = NewDistribution(NormalFamily, 0, 1, -3)
	require.NoError(t, err)
	assert.Equal(t, "Normal(μ=0, σ=1)", d.String())

	d, err = NewDistribution(StudentsFamily, 0, 1, 0)
	assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
	assert.Nil(t, d)

	_, err = NewDistribution(Family("cauchy"), 0, 1, 1)
	assert.Error(t, err)
}

func TestEvaluator_ConcurrentUse(t *testing.T) {
	e, err := NewEvaluator(16)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]float64, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, err := e.Distribution(StudentsFamily, 0, 1, float64(1+i%4))
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results[i] = d.Cdf(1)
		}(i)
	}
	wg.Wait()
	for i := range results {
		assert.Equal(t, results[i%4], results[i])
	}
}
