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
	"sort"
)

// Function is one entry of the exported function table. Args names the
// positional float64 arguments Eval expects, in order.
type Function struct {
	Name string
	Args []string
	Eval func(args ...float64) (float64, error)
}

// Call checks the argument count and evaluates the function.
func (f Function) Call(args ...float64) (float64, error) {
	if len(args) != len(f.Args) {
		return 0, fmt.Errorf("%v expects %d arguments (%v), got %d", f.Name, len(f.Args), f.Args, len(args))
	}
	return f.Eval(args...)
}

var (
	locationScaleX  = []string{"mean", "std_dev", "x"}
	locationScaleP  = []string{"mean", "std_dev", "p"}
	locationScaleDf = []string{"mean", "std_dev", "df", "x"}
)

func three(f func(a, b, c float64) (float64, error)) func(...float64) (float64, error) {
	return func(args ...float64) (float64, error) { return f(args[0], args[1], args[2]) }
}

func four(f func(a, b, c, d float64) (float64, error)) func(...float64) (float64, error) {
	return func(args ...float64) (float64, error) { return f(args[0], args[1], args[2], args[3]) }
}

var functions = map[string]Function{
	"normal_pdf":         {"normal_pdf", locationScaleX, three(NormalPdf)},
	"normal_cdf":         {"normal_cdf", locationScaleX, three(NormalCdf)},
	"normal_sf":          {"normal_sf", locationScaleX, three(NormalSf)},
	"normal_ln_pdf":      {"normal_ln_pdf", locationScaleX, three(NormalLnPdf)},
	"normal_inverse_cdf": {"normal_inverse_cdf", locationScaleP, three(NormalInverseCdf)},
	"normal_entropy": {"normal_entropy", []string{"std_dev"}, func(args ...float64) (float64, error) {
		return NormalEntropy(args[0])
	}},
	"normal_variance": {"normal_variance", []string{"std_dev"}, func(args ...float64) (float64, error) {
		return NormalVariance(args[0])
	}},
	"t_pdf":         {"t_pdf", locationScaleDf, four(TPdf)},
	"t_ln_pdf":      {"t_ln_pdf", locationScaleDf, four(TLnPdf)},
	"t_cdf":         {"t_cdf", locationScaleDf, four(TCdf)},
	"t_sf":          {"t_sf", locationScaleDf, four(TSf)},
	"t_inverse_cdf": {"t_inverse_cdf", []string{"mean", "std_dev", "df", "p"}, four(TInverseCdf)},
	"t_variance": {"t_variance", []string{"std_dev", "df"}, func(args ...float64) (float64, error) {
		return TVariance(args[0], args[1])
	}},
}

// Lookup returns the exported function with the given name, e.g. "normal_pdf".
func Lookup(name string) (Function, error) {
	f, ok := functions[name]
	if !ok {
		return Function{}, fmt.Errorf("unknown function %q", name)
	}
	return f, nil
}

// Names lists the exported functions in lexical order.
func Names() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
