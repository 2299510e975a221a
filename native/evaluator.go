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
	"fmt"

	"github.com/exstatic/exstatic/distribution"
	"github.com/exstatic/exstatic/distribution/normal"
	"github.com/exstatic/exstatic/distribution/studentt"
	lru "github.com/hashicorp/golang-lru"
)

// Family names a supported distribution family.
type Family string

const (
	NormalFamily   Family = "normal"
	StudentsFamily Family = "t"
)

type key struct {
	family           Family
	mean, stdDev, df float64
}

// Evaluator memoizes validated distributions by their parameters. Only
// successfully constructed distributions are cached; they are immutable so
// sharing them between callers does not change any result.
// An Evaluator is safe for concurrent use.
type Evaluator struct {
	cache *lru.Cache
}

// NewEvaluator creates an evaluator keeping at most size distributions.
func NewEvaluator(size int) (*Evaluator, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("cannot create distribution cache; %v", err)
	}
	return &Evaluator{cache: cache}, nil
}

// Distribution returns the validated distribution of the given family. df is
// ignored for the normal family.
func (e *Evaluator) Distribution(family Family, mean, stdDev, df float64) (distribution.Continuous, error) {
	k := key{family: family, mean: mean, stdDev: stdDev}
	if family == StudentsFamily {
		k.df = df
	}
	if d, found := e.cache.Get(k); found {
		return d.(distribution.Continuous), nil
	}
	d, err := NewDistribution(family, mean, stdDev, df)
	if err != nil {
		return nil, err
	}
	e.cache.Add(k, d)
	return d, nil
}

// NewDistribution constructs the distribution of the given family without
// consulting any cache. df is ignored for the normal family.
func NewDistribution(family Family, mean, stdDev, df float64) (distribution.Continuous, error) {
	var (
		d   distribution.Continuous
		err error
	)
	switch family {
	case NormalFamily:
		d, err = normal.New(mean, stdDev)
	case StudentsFamily:
		d, err = studentt.New(mean, stdDev, df)
	default:
		return nil, fmt.Errorf("unknown distribution family %q", family)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Len is the number of cached distributions.
func (e *Evaluator) Len() int {
	return e.cache.Len()
}
